// Package logging provides structured logging for lsr.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog. All log output goes to stderr; stdout is reserved
// for the directory listing itself.
type Logger struct {
	zlog zerolog.Logger
}

// NewLogger creates a console logger writing to stderr.
func NewLogger() *Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Logger()

	return &Logger{zlog: logger}
}

// Debug returns a debug level event.
// Only shown when verbose mode raised the global level.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

func init() {
	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Configure global logger
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	})
}
