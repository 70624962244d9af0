// Package logger provides support for constructing the application logger.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New constructs a logger that writes JSON lines to the writer. Debug
// messages are only written when debug is true.
func New(w io.Writer, service string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// NewFile constructs a logger that appends to the specified file. The
// terminal belongs to the game board, so logs can't go to stdout. The
// returned function closes the file.
func NewFile(path string, service string, debug bool) (zerolog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	return New(f, service, debug), f.Close, nil
}
