package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	nop    = zap.NewNop()
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "MYSTORE_LOG_LEVEL"

// LogFileEnvVar overrides the log destination.
const LogFileEnvVar = "MYSTORE_LOG_FILE"

// Options configures Initialize.
type Options struct {
	// Level is one of debug, info, warn, error. Empty falls back to
	// MYSTORE_LOG_LEVEL, and then to silent mode.
	Level string
	// File is the log destination. The TUI owns stdout, so logs never go
	// there while the dashboard is running. Empty falls back to
	// MYSTORE_LOG_FILE, and then to stderr.
	File string
}

// Initialize creates the global logger.
func Initialize(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = nop
		return nil
	}

	output := opts.File
	if output == "" {
		output = os.Getenv(LogFileEnvVar)
	}
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance, or a no-op logger before
// Initialize has been called.
func GetLogger() *zap.Logger {
	if l := logger; l != nil {
		return l
	}
	return nop
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

// LogStoreMutation records a change to the product store.
func LogStoreMutation(op string, id string, index int) {
	Info("Store mutation",
		zap.String("op", op),
		zap.String("product_id", id),
		zap.Int("index", index),
	)
}

// LogScreenTransition records a move between TUI screens.
func LogScreenTransition(from, to string) {
	Debug("Screen transition",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogViewRecompute records one run of the filter/sort pipeline.
func LogViewRecompute(search, category, sort string, in, out int) {
	Debug("View recomputed",
		zap.String("search", search),
		zap.String("category", category),
		zap.String("sort", sort),
		zap.Int("store_len", in),
		zap.Int("view_len", out),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
