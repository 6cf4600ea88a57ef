package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/florist/internal/logging"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{SeedFileEnvVar, AltScreenEnvVar, logging.LogLevelEnvVar, logging.LogFileEnvVar} {
		t.Setenv(key, "")
	}
}

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "florist") {
		t.Errorf("GetConfigDir() = %v, should contain 'florist'", configDir)
	}

	if runtime.GOOS == "linux" && configDir != filepath.Join("/tmp/xdg", "florist") {
		t.Errorf("GetConfigDir() = %v, want XDG_CONFIG_HOME based path", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("NewConfig().Version = %v, want 1", cfg.Version)
	}
	if !cfg.AltScreen {
		t.Error("NewConfig().AltScreen should be true by default")
	}
	if cfg.SeedFile != "" || cfg.LogLevel != "" || cfg.LogFile != "" {
		t.Errorf("NewConfig() should leave optional settings empty, got %+v", cfg)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Version != CurrentVersion || !cfg.AltScreen {
		t.Errorf("LoadFile() missing file should return defaults, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.SeedFile = "/data/flowers.yaml"
	cfg.LogLevel = "debug"
	cfg.LogFile = "/tmp/florist.log"
	cfg.AltScreen = false

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# florist configuration file") {
		t.Error("saved file should start with header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Unsupported version", "version: 2\n", "unsupported config version"},
		{"Invalid YAML", "version: [1\n", "failed to parse"},
		{"Wrong type", "version: 1\nalt_screen: maybe\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("LoadFile() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nseed_file: seed.json\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.SeedFile != "seed.json" {
		t.Errorf("SeedFile = %q, want seed.json", cfg.SeedFile)
	}
	if !cfg.AltScreen {
		t.Error("AltScreen should keep its default when absent from the file")
	}
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(SeedFileEnvVar, "env-seed.yaml")
	t.Setenv(logging.LogLevelEnvVar, "warn")
	t.Setenv(AltScreenEnvVar, "false")

	cfg := NewConfig()
	cfg.ApplyEnv()

	if cfg.SeedFile != "env-seed.yaml" {
		t.Errorf("SeedFile = %q", cfg.SeedFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.AltScreen {
		t.Error("AltScreen should be overridden to false")
	}

	t.Setenv(AltScreenEnvVar, "sometimes")
	cfg.AltScreen = true
	cfg.ApplyEnv()
	if !cfg.AltScreen {
		t.Error("unparseable boolean should be ignored")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := NewConfig()
	cfg.SeedFile = "file.json"
	cfg.LogLevel = "info"

	seed := "flag.yaml"
	alt := false
	cfg.Apply(Overrides{SeedFile: &seed, AltScreen: &alt})

	if cfg.SeedFile != "flag.yaml" {
		t.Errorf("SeedFile = %q, want flag.yaml", cfg.SeedFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, nil override should keep info", cfg.LogLevel)
	}
	if cfg.AltScreen {
		t.Error("AltScreen should be false")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("FLORIST_SEED_FILE=dotenv.json\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	// godotenv does not override variables that already exist, empty or not
	if err := os.Unsetenv(SeedFileEnvVar); err != nil {
		t.Fatalf("Unsetenv() error = %v", err)
	}

	if err := LoadDotEnv(envPath); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(SeedFileEnvVar) })

	if got := os.Getenv(SeedFileEnvVar); got != "dotenv.json" {
		t.Errorf("FLORIST_SEED_FILE = %q, want dotenv.json", got)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("LoadDotEnv() missing file should not error, got %v", err)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	written, err := CreateDefaultConfig(path, false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if written != path {
		t.Errorf("CreateDefaultConfig() path = %q, want %q", written, path)
	}

	if _, err := CreateDefaultConfig(path, false); err == nil {
		t.Error("CreateDefaultConfig() should refuse to overwrite without force")
	}
	if _, err := CreateDefaultConfig(path, true); err != nil {
		t.Errorf("CreateDefaultConfig() with force error = %v", err)
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
