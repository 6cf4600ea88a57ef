package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/florist/internal/config"
	"github.com/muurk/florist/internal/flower"
	"github.com/muurk/florist/internal/logging"
	"github.com/muurk/florist/internal/tui"
	"github.com/muurk/florist/internal/ui"
	"github.com/muurk/florist/internal/urls"
)

// builtInSource names the embedded dataset in logs and output
const builtInSource = "built-in"

// defaultLogName is used when a log level is set for the TUI without a log file
const defaultLogName = "florist.log"

// Global flags
var (
	configPath string
	seedFile   string
	logLevel   string
	logFile    string
	altScreen  bool
)

// Command flags
var (
	outputFormat string
	forceInit    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/florist/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", "", "Seed file with the starting flowers (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty disables logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "File to append log output to")
	rootCmd.Flags().BoolVar(&altScreen, "alt-screen", true, "Run in the terminal's alternate screen")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// overridesFromFlags collects the flags that were set explicitly on the command line
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("seed") {
		o.SeedFile = &seedFile
	}
	if flags.Changed("log-level") {
		o.LogLevel = &logLevel
	}
	if flags.Changed("log-file") {
		o.LogFile = &logFile
	}
	if flags.Lookup("alt-screen") != nil && flags.Changed("alt-screen") {
		o.AltScreen = &altScreen
	}
	return o
}

// loadConfig resolves the effective configuration: defaults, config file,
// .env and environment, then command-line flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.Apply(overridesFromFlags(cmd))

	return cfg, nil
}

// loadSeed returns the starting records and a name for where they came from
func loadSeed(cfg *config.Config) ([]flower.Flower, string, error) {
	if cfg.SeedFile == "" {
		records := flower.DefaultSeed()
		logging.LogSeedLoaded(builtInSource, len(records))
		return records, builtInSource, nil
	}

	records, err := flower.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return nil, "", err
	}
	logging.LogSeedLoaded(cfg.SeedFile, len(records))
	return records, cfg.SeedFile, nil
}

// interactiveLogFile picks where TUI logs go. The TUI owns the terminal, so a
// requested log level without a file logs next to the config file.
func interactiveLogFile(cfg *config.Config) (string, error) {
	if cfg.LogLevel == "" || cfg.LogFile != "" {
		return cfg.LogFile, nil
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return filepath.Join(dir, defaultLogName), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	file, err := interactiveLogFile(cfg)
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.LogLevel, file); err != nil {
		return err
	}
	defer logging.Sync()

	records, _, err := loadSeed(cfg)
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(tui.NewAppModel(flower.NewStore(records)), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	return nil
}

// listCmd prints the seed without starting the TUI
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the seed flowers and exit",
	Long: `Print the starting flower list once, without the interactive table.

The table format fits the terminal width. The json and yaml formats print
the plain list, which can be saved and passed back with --seed.

Seed file format: ` + urls.SeedFiles,
	Example: `  # Show the built-in flowers
  florist list

  # Export the built-in flowers as a YAML seed
  florist list --format yaml > flowers.yaml

  # Check what a seed file contains
  florist list --seed flowers.yaml`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&outputFormat, "format", ui.FormatTable, "Output format (table, json, yaml)")
}

func runList(cmd *cobra.Command, args []string) error {
	if !slices.Contains(ui.Formats, outputFormat) {
		return fmt.Errorf("unsupported format %q (expected one of %v)", outputFormat, ui.Formats)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	defer logging.Sync()

	records, source, err := loadSeed(cfg)
	if err != nil {
		return err
	}

	return ui.NewPrinter(cmd.OutOrStdout()).PrintFlowers(records, outputFormat, source)
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the florist config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Example: `  # Create the config file in the default location
  florist config init

  # Replace an existing file
  florist config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(configPath, forceInit)
		if err != nil {
			return err
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Config file created",
			ui.Detail{Key: "Path", Value: path},
			ui.Detail{Key: "Version", Value: fmt.Sprint(config.CurrentVersion)},
		)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			path = p
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
