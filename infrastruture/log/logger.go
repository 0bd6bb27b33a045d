// Package logger provides component loggers with a coloured prefix.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/labiri-api/config"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	out *log.Logger
}

// New creates a logger for one component. color is one of the ANSI colours in config.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, errors.New("logger writer must not be nil")
	}

	return &Logger{
		out: log.New(w, fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset), log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failed operation.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.print(config.ColorCyan, "DEBUG", msg)
}

func (l *Logger) print(color, level, msg string) {
	l.out.Printf("%s[%s]%s %s", color, level, config.LogColorReset, msg)
}
