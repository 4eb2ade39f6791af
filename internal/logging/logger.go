// Package logging is the thin structured-logging facade used by the
// observable layers of the conversion library — the table self check and
// the instrumented service — which emit a handful of event shapes:
// progress counters, durations, operation labels and failures. The
// facade covers exactly those shapes with typed fields and hands them to
// zerolog; the conversion core itself never logs.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is what the library's observable layers log through.
type Logger interface {
	// Info records a progress event.
	Info(msg string, fields ...Field)

	// Debug records a per-operation event.
	Debug(msg string, fields ...Field)

	// Error records a failure with its cause.
	Error(msg string, err error, fields ...Field)
}

// fieldKind discriminates the typed payload of a Field.
type fieldKind uint8

const (
	kindString fieldKind = iota
	kindInt
	kindUint64
	kindFloat64
	kindBool
	kindError
)

// Field is one typed key/value attachment. The closed set of
// constructors below is the whole vocabulary the library's events need,
// so no reflection or interface boxing is involved on the logging path.
type Field struct {
	key  string
	kind fieldKind
	str  string
	num  int64
	u64  uint64
	f64  float64
	b    bool
	err  error
}

// String attaches a string value, typically an operation label.
func String(key, value string) Field {
	return Field{key: key, kind: kindString, str: value}
}

// Int attaches an integer value, typically a table size or count.
func Int(key string, value int) Field {
	return Field{key: key, kind: kindInt, num: int64(value)}
}

// Uint64 attaches a carrier-sized value, typically a bit pattern.
func Uint64(key string, value uint64) Field {
	return Field{key: key, kind: kindUint64, u64: value}
}

// Float64 attaches a float value, typically a duration in seconds.
func Float64(key string, value float64) Field {
	return Field{key: key, kind: kindFloat64, f64: value}
}

// Bool attaches a flag.
func Bool(key string, value bool) Field {
	return Field{key: key, kind: kindBool, b: value}
}

// Err attaches an error under the conventional "error" key.
func Err(err error) Field {
	return Field{key: "error", kind: kindError, err: err}
}

// ZerologAdapter implements Logger on a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a Logger writing timestamped events to
// stderr.
func NewDefaultLogger() *ZerologAdapter {
	return NewZerologAdapter(
		zerolog.New(os.Stderr).With().Timestamp().Logger(),
	)
}

// NewLogger returns a Logger writing to w, with every event tagged by
// the originating component.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	return NewZerologAdapter(
		zerolog.New(w).With().Str("component", component).Timestamp().Logger(),
	)
}

func applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch f.kind {
		case kindString:
			event = event.Str(f.key, f.str)
		case kindInt:
			event = event.Int64(f.key, f.num)
		case kindUint64:
			event = event.Uint64(f.key, f.u64)
		case kindFloat64:
			event = event.Float64(f.key, f.f64)
		case kindBool:
			event = event.Bool(f.key, f.b)
		case kindError:
			event = event.Err(f.err)
		}
	}
	return event
}

// Info records a progress event.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(z.logger.Info(), fields).Msg(msg)
}

// Debug records a per-operation event.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Error records a failure with its cause.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}
