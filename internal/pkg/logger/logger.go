package logger

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the log level
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Config represents logger configuration
type Config struct {
	// Level is the minimum level written; unknown levels fall back to info
	Level LogLevel
	// Pretty enables the human-readable console format
	Pretty bool
	// Output defaults to os.Stdout
	Output io.Writer
}

var current atomic.Pointer[zerolog.Logger]

// Configure replaces the process logger, including zerolog's global log.Logger
func Configure(config Config) {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(string(config.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	l := zerolog.New(writer).With().Timestamp().Str("service", "registrar").Logger()
	current.Store(&l)
	log.Logger = l
}

// Component returns a logger tagged with the emitting component
func Component(name string) zerolog.Logger {
	return current.Load().With().Str("component", name).Logger()
}

func Debug() *zerolog.Event {
	return current.Load().Debug()
}

func Info() *zerolog.Event {
	return current.Load().Info()
}

func Warn() *zerolog.Event {
	return current.Load().Warn()
}

func Error() *zerolog.Event {
	return current.Load().Error()
}

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
