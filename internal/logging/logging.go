// Package logging builds the process-wide zap logger.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned for level names zap does not know.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Options selects the verbosity and destination of the logger.
type Options struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string
	// File redirects output from stderr to a file.
	File string
	// ShowCaller annotates entries with the calling file and line.
	ShowCaller bool
}

// ParseLevel maps a level name onto a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// New builds a development-style logger and installs it as the zap global,
// so packages can log through zap.S() without plumbing.
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.StacktraceKey = ""
	if !opts.ShowCaller {
		config.EncoderConfig.CallerKey = ""
	}
	if opts.File != "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.OutputPaths = []string{opts.File}
		config.ErrorOutputPaths = []string{opts.File}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
