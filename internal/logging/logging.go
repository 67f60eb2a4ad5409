// Package logging builds the zap loggers used by the eisim binaries.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects level, encoding and destination of a logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console or json
	// OutputFile receives the logs instead of stderr when set.
	OutputFile string
}

// ParseLevel maps a level name to its zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// New builds a logger. Console output uses the development encoder, json
// the production one.
func New(opts Options) (*zap.Logger, error) {
	zapLevel, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	switch opts.Format {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", opts.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	if opts.OutputFile != "" {
		if dir := filepath.Dir(opts.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		cfg.OutputPaths = []string{opts.OutputFile}
		cfg.ErrorOutputPaths = []string{opts.OutputFile}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
