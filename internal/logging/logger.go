// Package logging builds the zap loggers padlink uses.
//
// The overlay owns the terminal, so it logs JSON to a file. Headless
// commands log human-readable lines to stderr instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how much to log.
type Options struct {
	Level string
	// Path is the log file. When empty, output goes to Writer.
	Path string
	// Writer receives console-formatted output when Path is empty.
	// Defaults to os.Stderr.
	Writer io.Writer
	// Version is attached to every entry.
	Version string
}

// New returns a logger and a function that flushes and closes its output.
func New(opts Options) (*zap.Logger, func() error, error) {
	level := ParseLevel(opts.Level)

	var (
		encoder zapcore.Encoder
		sink    zapcore.WriteSyncer
		closeFn = func() error { return nil }
	)

	if path := strings.TrimSpace(opts.Path); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
		sink = zapcore.AddSync(file)
		closeFn = file.Close
	} else {
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encoder = zapcore.NewConsoleEncoder(cfg)
		sink = zapcore.AddSync(w)
	}

	core := zapcore.NewCore(encoder, sink, level)
	logger := zap.New(core).With(zap.String("service", "padlink"))
	if opts.Version != "" {
		logger = logger.With(zap.String("version", opts.Version))
	}

	return logger, func() error {
		_ = logger.Sync()
		return closeFn()
	}, nil
}

// ParseLevel converts a config level name. Unknown names map to info.
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
