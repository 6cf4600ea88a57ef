// Package config provides user configuration management for florist.
//
// This package manages a YAML configuration file holding startup
// preferences: which seed dataset to load, logging, and terminal mode. The
// flower list itself is never persisted.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/florist/config.yaml or $HOME/.config/florist/config.yaml
//   - macOS: $HOME/.config/florist/config.yaml
//   - Windows: %LOCALAPPDATA%\florist\config.yaml
//
// # Precedence
//
// Settings are resolved in this order, later sources winning:
//
//  1. Defaults (NewConfig)
//  2. The config file
//  3. Environment variables, optionally loaded from a .env file (LoadDotEnv)
//  4. Command-line flags (Config.Apply)
//
// # Usage Example
//
//	_ = config.LoadDotEnv()
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.Apply(config.Overrides{SeedFile: &seedFlag})
//
// # Thread Safety
//
// Save is protected by a mutex and writes atomically via a temporary file.
package config
