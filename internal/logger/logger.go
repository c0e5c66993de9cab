// Package logger provides the process-wide leveled logger used by the CLI and
// the storage layer. Logging calls are no-ops until Init is called.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures the logger.
type Options struct {
	Verbose    bool // enable debug level
	Timestamps bool
}

var singleton *log.Logger

// Init installs the process-wide logger writing to w.
func Init(w io.Writer, opts Options) {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	singleton = log.NewWithOptions(w, log.Options{
		ReportTimestamp: opts.Timestamps,
		Level:           level,
		Prefix:          "rxnpath",
	})
}

// Reset removes the installed logger. Useful for testing.
func Reset() {
	singleton = nil
}

// Debug writes a message at DEBUG level.
func Debug(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Debug(message, keyvals...)
}

// Info writes a message at INFO level.
func Info(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Info(message, keyvals...)
}

// Warn writes a message at WARN level.
func Warn(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Warn(message, keyvals...)
}

// Error writes a message at ERROR level.
func Error(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Error(message, keyvals...)
}
