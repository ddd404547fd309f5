// Package log provides a minimal pluggable logging interface.
package log

import (
	"log/slog"
)

// Null is a logger that discards everything sent to it.
var Null = slog.New(Discard)

// Attribute keys used in log messages emitted by this module.
const (
	KeyOS         = "os"
	KeyExecutable = "executable"
	KeyElevated   = "elevated"
	KeyError      = "error"
)

// ErrorAttr returns an error attribute for the given error.
func ErrorAttr(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: KeyError, Value: slog.StringValue("")}
	}
	return slog.Attr{Key: KeyError, Value: slog.StringValue(err.Error())}
}

// Logger interface is implemented by slog.Logger and some other logging
// packages and can be easily used via a wrapper with any other logging
// system. The functions are not sprintf-style. Keys and values are
// key-value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

type withAttrs struct {
	logger Logger
	attrs  []any
}

func (w *withAttrs) kv(kv []any) []any {
	return append(w.attrs, kv...)
}

func (w *withAttrs) Debug(msg string, keysAndValues ...any) {
	w.logger.Debug(msg, w.kv(keysAndValues)...)
}

func (w *withAttrs) Info(msg string, keysAndValues ...any) {
	w.logger.Info(msg, w.kv(keysAndValues)...)
}

func (w *withAttrs) Warn(msg string, keysAndValues ...any) {
	w.logger.Warn(msg, w.kv(keysAndValues)...)
}

func (w *withAttrs) Error(msg string, keysAndValues ...any) {
	w.logger.Error(msg, w.kv(keysAndValues)...)
}

// WithAttrs returns a logger that prepends the given attributes to every
// message.
func WithAttrs(logger Logger, attrs ...any) Logger {
	return &withAttrs{logger, attrs}
}

type injectable interface {
	SetLogger(logger Logger)
}

// InjectLogger sets the logger for the given object if it accepts one.
func InjectLogger(l Logger, obj any, attrs ...any) {
	o, ok := obj.(injectable)
	if !ok {
		return
	}
	if len(attrs) > 0 {
		o.SetLogger(WithAttrs(l, attrs...))
	} else {
		o.SetLogger(l)
	}
}

// LoggerInjectable can be embedded in other structs to provide a logger
// and a log setter.
type LoggerInjectable struct {
	logger Logger
}

// SetLogger sets the logger for the embedding object.
func (li *LoggerInjectable) SetLogger(logger Logger) {
	li.logger = logger
}

// HasLogger returns true if a logger has been set.
func (li *LoggerInjectable) HasLogger() bool {
	return li.logger != nil && li.logger != Null
}

// Log returns the logger for the embedding object.
func (li *LoggerInjectable) Log() Logger {
	if li.logger == nil {
		return Null
	}
	return li.logger
}

// InjectLoggerTo passes the embedding object's logger on to obj, optionally
// decorated with extra attributes.
func (li *LoggerInjectable) InjectLoggerTo(obj any, attrs ...any) {
	if li.HasLogger() {
		InjectLogger(li.logger, obj, attrs...)
	}
}
