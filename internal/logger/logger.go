package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Debug bool
	Level string
	// File is the rotated log file; empty disables file output.
	File string
	// Stderr receives log lines in debug mode. Defaults to os.Stderr.
	Stderr io.Writer
}

// New builds the application logger. Outside debug mode nothing is written
// to the terminal so log lines do not interleave with the interactive views.
func New(cfg Config) (*log.Logger, error) {
	level := log.WarnLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	if cfg.Debug {
		level = log.DebugLevel
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var writers []io.Writer
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	if cfg.Debug {
		writers = append(writers, stderr)
	}

	var writer io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	return log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "ponto",
	}), nil
}

// Discard returns a logger that drops everything, for tests and callers
// that do not care about logs.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
