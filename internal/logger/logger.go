// SPDX-License-Identifier: MIT
// Package logger is the CLI's structured logger, a thin layer over zerolog.
// Library packages never log; only cmd/ndlabel holds a Logger.

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger writes leveled events tagged with a component name.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger emitting JSON lines to w at the given level.
func New(w io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl}
}

// NewConsole returns a human-readable Logger on stderr; stdout stays free for
// command output.
func NewConsole(level zerolog.Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// Nop returns a Logger that discards everything.
func Nop() *Logger { return &Logger{zl: zerolog.Nop()} }

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("logger: unknown level %q", name)
	}
}

func withFields(ev *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	ev = ev.Str("component", component)
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}

	return ev
}

// Debug logs msg at debug level.
func (l *Logger) Debug(component, msg string, fields map[string]interface{}) {
	withFields(l.zl.Debug(), component, fields).Msg(msg)
}

// Info logs msg at info level.
func (l *Logger) Info(component, msg string, fields map[string]interface{}) {
	withFields(l.zl.Info(), component, fields).Msg(msg)
}

// Warn logs msg at warn level.
func (l *Logger) Warn(component, msg string, fields map[string]interface{}) {
	withFields(l.zl.Warn(), component, fields).Msg(msg)
}

// Error logs err at error level with msg as the message.
func (l *Logger) Error(component, msg string, err error, fields map[string]interface{}) {
	withFields(l.zl.Error().Err(err), component, fields).Msg(msg)
}
