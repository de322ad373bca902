// Package logger wraps log/slog with context-first, field-based logging.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// emit -> level method -> caller
const callerDepth = 3

// Logger defines the logging interface.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	Debug(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	// Fatal logs at error level and exits the process.
	Fatal(ctx context.Context, msg string, fields ...Field)

	Named(name string) Logger
}

// Field is a structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

func String(key, val string) Field                 { return Field{Key: key, Value: val} }
func Int(key string, val int) Field                { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field        { return Field{Key: key, Value: val} }
func Bool(key string, val bool) Field              { return Field{Key: key, Value: val} }
func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }
func Any(key string, val interface{}) Field        { return Field{Key: key, Value: val} }
func Error(err error) Field                        { return Field{Key: "error", Value: err} }

// exit is swapped out in tests.
var exit = os.Exit

type slogLogger struct {
	sl *slog.Logger
}

func (l *slogLogger) Named(name string) Logger {
	return &slogLogger{sl: l.sl.WithGroup(name)}
}

func (l *slogLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelInfo, msg, fields)
}

func (l *slogLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelError, msg, fields)
}

func (l *slogLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelDebug, msg, fields)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelWarn, msg, fields)
}

func (l *slogLogger) Fatal(ctx context.Context, msg string, fields ...Field) {
	l.emit(ctx, slog.LevelError, msg, fields)
	exit(1)
}

func (l *slogLogger) emit(ctx context.Context, level slog.Level, msg string, fields []Field) {
	if !l.sl.Enabled(ctx, level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields)+1)
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	attrs = append(attrs, slog.String("source", caller(callerDepth)))
	l.sl.LogAttrs(ctx, level, msg, attrs...)
}

var workDir = sync.OnceValue(func() string {
	wd, _ := os.Getwd()
	return wd
})

// caller returns file:line relative to the working directory when possible.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown:0"
	}
	if wd := workDir(); wd != "" {
		if rel, err := filepath.Rel(wd, file); err == nil {
			file = rel
		}
	} else {
		file = filepath.Base(file)
	}
	return fmt.Sprintf("%s:%d", file, line)
}

var (
	global   Logger
	levelVar slog.LevelVar
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type settings struct {
	format string
	out    io.Writer
}

// Option configures a logger built by Init or New.
type Option func(*settings)

// WithFormat selects FormatText (default) or FormatJSON.
func WithFormat(format string) Option {
	return func(s *settings) { s.format = strings.ToLower(strings.TrimSpace(format)) }
}

// WithOutput redirects log output. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

// Init replaces the global logger and resets its level to info.
func Init(opts ...Option) error {
	levelVar.Set(slog.LevelInfo)
	l, err := build(&levelVar, opts)
	if err != nil {
		return err
	}
	global = l
	return nil
}

// New builds a standalone info-level logger; the global one is untouched.
func New(opts ...Option) (Logger, error) {
	return build(new(slog.LevelVar), opts)
}

func build(level *slog.LevelVar, opts []Option) (Logger, error) {
	s := settings{format: FormatText, out: os.Stdout}
	for _, opt := range opts {
		opt(&s)
	}
	ho := &slog.HandlerOptions{Level: level}
	switch s.format {
	case "", FormatText:
		return &slogLogger{sl: slog.New(slog.NewTextHandler(s.out, ho))}, nil
	case FormatJSON:
		return &slogLogger{sl: slog.New(slog.NewJSONHandler(s.out, ho))}, nil
	default:
		return nil, fmt.Errorf("unknown log format: %q", s.format)
	}
}

// Get returns the global logger. It panics before Init.
func Get() Logger {
	if global == nil {
		panic("logger: Init has not been called")
	}
	return global
}

// Named returns the global logger with its attributes grouped under name.
func Named(name string) Logger {
	return Get().Named(name)
}

// Sync is a no-op; slog writes through.
func Sync() error { return nil }

// SetLevel sets the global logger's level.
func SetLevel(level slog.Level) { levelVar.Set(level) }

// SetLevelString sets the global level from debug, info, warn, warning or
// error, case-insensitively. Empty means info.
func SetLevelString(level string) error {
	name := strings.ToLower(strings.TrimSpace(level))
	switch name {
	case "":
		name = "info"
	case "warning":
		name = "warn"
	}
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(name)); err != nil || strings.ContainsAny(name, "+-") {
		return fmt.Errorf("unknown log level: %q", level)
	}
	SetLevel(lv)
	return nil
}
