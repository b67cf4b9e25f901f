// Package log provides structured logging for the shared library.
//
// The library is loaded into host processes that own stdout and stderr,
// so every logger is disabled unless SSS_LOG_LEVEL is set. When enabled,
// output goes to stderr only.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the root logger instance.
var Logger zerolog.Logger

// Component loggers for different parts of the pipeline.
var (
	Config   zerolog.Logger
	Wallet   zerolog.Logger
	RPC      zerolog.Logger
	Token    zerolog.Logger
	Metadata zerolog.Logger
	FFI      zerolog.Logger
)

func init() {
	Init(os.Getenv("SSS_LOG_LEVEL"))
}

// Init reconfigures the root logger for the given level. An empty level
// disables all output.
func Init(level string) {
	if level == "" {
		Logger = zerolog.Nop()
	} else {
		Logger = NewConsoleLogger(os.Stderr, level)
	}
	initComponentLoggers()
}

// NewConsoleLogger creates a human-readable console logger.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// parseLevel converts a string level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// initComponentLoggers initializes loggers for each component.
func initComponentLoggers() {
	Config = Logger.With().Str("component", "config").Logger()
	Wallet = Logger.With().Str("component", "wallet").Logger()
	RPC = Logger.With().Str("component", "rpc").Logger()
	Token = Logger.With().Str("component", "token").Logger()
	Metadata = Logger.With().Str("component", "metadata").Logger()
	FFI = Logger.With().Str("component", "ffi").Logger()
}

// Component returns a logger tagged with a component field.
func Component(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}
