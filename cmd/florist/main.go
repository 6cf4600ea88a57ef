// Florist is a terminal table of flower records.
//
// It shows a seeded list of flowers with a form for adding records and
// per-row edit and delete actions. The list lives only in memory; every
// run starts again from the seed.
//
// Usage:
//
//	florist [command] [flags]
//
// Running without arguments launches the interactive table.
// See 'florist --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/florist/internal/urls"
	"github.com/muurk/florist/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "florist",
	Short: "Editable table of flower records",
	Long: `An interactive terminal table of flower records.

Add flowers through the form, edit or delete rows from the table.
Changes last for the session only; the list is rebuilt from the seed
on every start.

If no command is specified, the interactive table launches.

Report bugs at ` + urls.Issues,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "florist "+version.Full())
	},
}
