// Package logging configures the process-wide slog logger. Logs are kept
// apart from the scaffolding report: the report goes to stdout and the
// logger is given its own writer, normally stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Accepted values of the --logging-type flag.
const (
	JSON = "json"
	Text = "text"
	Tint = "tint"
)

// Options selects the handler built by NewHandler.
type Options struct {
	Format string
	Level  slog.Level
	// Color enables ANSI colours. Only the tint handler uses it.
	Color bool
}

var handlers = map[string]func(io.Writer, Options) slog.Handler{
	JSON: func(w io.Writer, o Options) slog.Handler {
		return slog.NewJSONHandler(w, o.slogOptions())
	},
	Text: func(w io.Writer, o Options) slog.Handler {
		return slog.NewTextHandler(w, o.slogOptions())
	},
	Tint: func(w io.Writer, o Options) slog.Handler {
		return tint.NewHandler(w, &tint.Options{
			AddSource:  o.withSource(),
			Level:      o.Level,
			TimeFormat: "15:04:05",
			NoColor:    !o.Color,
		})
	},
}

// Source locations are only worth their width when debugging.
func (o Options) withSource() bool {
	return o.Level <= slog.LevelDebug
}

func (o Options) slogOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{AddSource: o.withSource(), Level: o.Level}
}

// Formats returns the accepted handler formats in sorted order.
func Formats() []string {
	return slices.Sorted(maps.Keys(handlers))
}

// ParseLevel accepts the slog level names (debug, info, warn, error),
// case-insensitively and with optional offsets such as "warn+2".
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: expected debug, info, warn or error", name)
	}
	return level, nil
}

// NewHandler builds the handler named by opts.Format.
func NewHandler(w io.Writer, opts Options) (slog.Handler, error) {
	build, ok := handlers[opts.Format]
	if !ok {
		return nil, fmt.Errorf("unknown logging type %q: expected one of %s", opts.Format, strings.Join(Formats(), ", "))
	}
	return build(w, opts), nil
}

// Initialize replaces the default slog logger with one writing to w.
// Colour is enabled only when w is a terminal.
func Initialize(w io.Writer, format, levelName string) error {
	level, err := ParseLevel(levelName)
	if err != nil {
		return err
	}

	handler, err := NewHandler(w, Options{Format: format, Level: level, Color: isTerminal(w)})
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))
	slog.Debug("logger ready", "format", format, "level", level)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}
