package fields

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface the serializer traces through.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// NopLogger returns a logger that discards everything. It is the serializer
// default.
func NopLogger() Logger { return nopLogger{} }

type charmLogger struct {
	l *charmlog.Logger
}

func (c *charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }
func (c *charmLogger) Info(msg string, keyvals ...any)  { c.l.Info(msg, keyvals...) }
func (c *charmLogger) Warn(msg string, keyvals ...any)  { c.l.Warn(msg, keyvals...) }
func (c *charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }

// NewLogger returns a Logger writing human-readable output to w at the
// given level.
func NewLogger(w io.Writer, level charmlog.Level) Logger {
	l := charmlog.New(w)
	l.SetLevel(level)
	return &charmLogger{l: l}
}
