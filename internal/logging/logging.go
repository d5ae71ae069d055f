// Package logging wraps zerolog behind the small interface the rest of the
// service depends on.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	FieldRequestID = "requestId"
	FieldComponent = "component"
)

// Logger is the structured logging surface injected into handlers and
// middleware.
type Logger interface {
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, err error, fields map[string]any)
}

type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// ZeroLogger is the zerolog-backed Logger.
type ZeroLogger struct {
	zl zerolog.Logger
}

func New(opts Options) *ZeroLogger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if opts.Format == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	} else {
		zl = zerolog.New(out)
	}
	zl = zl.Level(level).With().Timestamp().Str("service", "user-discovery-service").Logger()

	return &ZeroLogger{zl: zl}
}

// With returns a child logger carrying the given fields on every record.
func (l *ZeroLogger) With(fields map[string]any) *ZeroLogger {
	return &ZeroLogger{zl: l.zl.With().Fields(fields).Logger()}
}

func (l *ZeroLogger) Info(msg string, fields map[string]any) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]any) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error, fields map[string]any) {
	l.zl.Error().Err(err).Fields(fields).Msg(msg)
}

// Nop discards everything.
func Nop() *ZeroLogger {
	return &ZeroLogger{zl: zerolog.Nop()}
}
