package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/muurk/florist/internal/logging"
)

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

// Environment variables that override file settings
const (
	SeedFileEnvVar  = "FLORIST_SEED_FILE"
	AltScreenEnvVar = "FLORIST_ALT_SCREEN"
)

// Config represents the user configuration file.
// The flower list itself is never stored here; only startup preferences are.
type Config struct {
	Version   int    `yaml:"version"`
	SeedFile  string `yaml:"seed_file,omitempty"` // JSON or YAML seed; empty means the built-in dataset
	LogLevel  string `yaml:"log_level,omitempty"` // debug, info, warn, error; empty means silent
	LogFile   string `yaml:"log_file,omitempty"`  // Where log output goes while the TUI runs
	AltScreen bool   `yaml:"alt_screen"`          // Run the TUI in the terminal's alternate screen
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:   CurrentVersion,
		AltScreen: true,
	}
}

// ApplyEnv overrides settings with any FLORIST_* environment variables that are set.
// Unparseable booleans are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(SeedFileEnvVar); v != "" {
		c.SeedFile = v
	}
	if v := os.Getenv(logging.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(logging.LogFileEnvVar); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(AltScreenEnvVar)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.AltScreen = b
		}
	}
}

// Overrides holds command-line values. Nil fields were not given on the command line.
type Overrides struct {
	SeedFile  *string
	LogLevel  *string
	LogFile   *string
	AltScreen *bool
}

// Apply copies every set override onto the config.
func (c *Config) Apply(o Overrides) {
	if o.SeedFile != nil {
		c.SeedFile = *o.SeedFile
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.LogFile != nil {
		c.LogFile = *o.LogFile
	}
	if o.AltScreen != nil {
		c.AltScreen = *o.AltScreen
	}
}
