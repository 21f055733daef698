package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger keeps the printf-style call sites used across services while
// writing structured zerolog events underneath.
type Logger struct {
	zl zerolog.Logger
}

func New() *Logger {
	return NewWithLevel("info")
}

// NewWithLevel builds a console logger; unknown levels fall back to info.
func NewWithLevel(level string) *Logger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, level)
}

func NewWithWriter(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return &Logger{zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

// With returns a child logger carrying an extra field on every event.
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.zl.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.zl.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.zl.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.zl.Error().Msg(fmt.Sprintf(format, args...))
}
