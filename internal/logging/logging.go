// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zap logger used by the fwconv command line.
// Console output always goes to stderr so converted text on stdout stays clean.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels accepted in configuration.
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// Config selects console verbosity and an optional log file.
type Config struct {
	// Level is none, normal or debug. The file sink, when set, uses the same level.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// File is a log file path; it is truncated on every run. Empty disables it.
	File string `json:"file" yaml:"file" mapstructure:"file"`
}

// Logger wraps a zap logger together with the file it may own.
type Logger struct {
	*zap.Logger
	file *os.File
}

// Close flushes the logger and closes the log file, if any.
func (l *Logger) Close() error {
	// Syncing a terminal stderr fails with EINVAL on most platforms.
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	err := multierr.Append(l.file.Sync(), l.file.Close())
	l.file = nil
	return err
}

// NewWithConsole builds a logger writing console output to console, normally
// the command's stderr, plus the optional log file.
func NewWithConsole(cfg Config, console io.Writer) (*Logger, error) {
	level, enabled, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return &Logger{Logger: zap.NewNop()}, nil
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(console), level),
	}

	l := &Logger{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		l.file = f
		fc := zap.NewDevelopmentEncoderConfig()
		fc.EncodeCaller = nil
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fc), zapcore.Lock(f), level))
	}

	l.Logger = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

func parseLevel(s string) (zapcore.Level, bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelNone:
		return zapcore.InfoLevel, false, nil
	case "", LevelNormal:
		return zapcore.InfoLevel, true, nil
	case LevelDebug:
		return zapcore.DebugLevel, true, nil
	default:
		return 0, false, fmt.Errorf("unknown log level %q (want none, normal or debug)", s)
	}
}
