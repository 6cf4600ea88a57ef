package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/muurk/florist/internal/flower"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "FLORIST_LOG_LEVEL"

// LogFileEnvVar names the file log output is appended to.
// The TUI owns stdout, so interactive sessions should always log to a file.
const LogFileEnvVar = "FLORIST_LOG_FILE"

// Initialize creates a new logger with the specified level and output file.
// Empty arguments fall back to FLORIST_LOG_LEVEL and FLORIST_LOG_FILE.
// If no level is set anywhere, logging is disabled (silent mode).
// If no file is set, output goes to stderr.
func Initialize(level, file string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if file == "" {
		file = os.Getenv(LogFileEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	built, err := buildConfig(level, file).Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// buildConfig returns the zap config for level and file.
// With a file, zap's own errors go there too so nothing writes over the TUI.
func buildConfig(level, file string) zap.Config {
	output := "stderr"
	if file != "" {
		output = file
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if file == "" {
		// Colors only make sense on a terminal
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return config
}

// ParseLevel maps a level name to a zap level.
// Unknown names use info, since the caller asked for logging explicitly.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use this with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSeedLoaded logs where the initial list came from and how big it is
func LogSeedLoaded(source string, count int) {
	Info("Seed dataset loaded",
		zap.String("source", source),
		zap.Int("records", count),
	)
}

// LogMutation logs a change to the flower list.
// index is -1 for appends.
func LogMutation(op string, index int, length int) {
	Info("List mutated",
		zap.String("op", op),
		zap.Int("index", index),
		zap.Int("length", length),
	)
}

// LogEditTarget logs a change of the form's edit target
func LogEditTarget(target flower.EditTarget) {
	Debug("Edit target changed",
		zap.Int("target", target.Index()),
		zap.Bool("editing", target.IsSet()),
	)
}

// LogValidationFailure logs a rejected submission with the fields that were empty
func LogValidationFailure(err error) {
	fields := []zap.Field{zap.Error(err)}

	var vErr *flower.ValidationError
	if errors.As(err, &vErr) {
		var empty []string
		for _, f := range vErr.Fields {
			empty = append(empty, f.Key())
		}
		fields = append(fields, zap.Strings("empty_fields", empty))
	}

	Warn("Submission rejected", fields...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
