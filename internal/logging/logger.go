// Package logging implements nasa.Logger on zerolog.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

// Log formats.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects the level, format and destination of log output.
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// Logger writes structured logs through zerolog.
type Logger struct {
	logger zerolog.Logger
}

var _ nasa.Logger = (*Logger)(nil)

// New creates a logger. An unknown level falls back to info. The auto
// format picks console output when Output is a terminal and JSON otherwise.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if useConsole(cfg.Format, output) {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: output, TimeFormat: time.Kitchen})
	} else {
		zl = zerolog.New(output)
	}

	return &Logger{logger: zl.Level(level).With().Timestamp().Logger()}
}

func useConsole(format string, output io.Writer) bool {
	switch strings.ToLower(format) {
	case FormatConsole:
		return true
	case FormatJSON:
		return false
	}

	file, ok := output.(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
