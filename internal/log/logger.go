package log

import (
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Logger wraps slog.Logger and stamps every record with a component name.
// root is the handler's logger before any component or attribute was added.
type Logger struct {
	*slog.Logger
	root      *slog.Logger
	component string
	attrs     []any
}

type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
	JSON      bool
}

func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Component: ComponentApp,
		Output:    os.Stdout,
	}
}

func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	component := cfg.Component
	if component == "" {
		component = ComponentApp
	}
	root := slog.New(handler)
	return &Logger{
		Logger:    root.With(FieldComponent, component),
		root:      root,
		component: component,
	}
}

// ParseLevel maps debug/info/warn/error to a slog level, info otherwise.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		root:      l.base(),
		component: l.component,
		attrs:     append(slices.Clone(l.attrs), args...),
	}
}

// WithComponent returns a child logger reporting under another component.
// The component key is replaced, not repeated, and attributes added with
// With are kept.
func (l *Logger) WithComponent(component string) *Logger {
	root := l.base()
	return &Logger{
		Logger:    root.With(FieldComponent, component).With(l.attrs...),
		root:      root,
		component: component,
		attrs:     slices.Clone(l.attrs),
	}
}

func (l *Logger) base() *slog.Logger {
	if l.root != nil {
		return l.root
	}
	return l.Logger
}

func (l *Logger) Component() string {
	return l.component
}

// Nop discards everything. Used by tests and optional collaborators.
func Nop() *Logger {
	root := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Logger{
		Logger:    root,
		root:      root,
		component: ComponentApp,
	}
}

func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
