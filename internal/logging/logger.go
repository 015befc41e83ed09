// Package logging prints human-readable log lines prefixed by their severity.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LevelCritical sits above slog.LevelError for conditions that end the run.
const LevelCritical = slog.LevelError + 4

var levelNames = map[string]slog.Level{
	"debug":    slog.LevelDebug,
	"info":     slog.LevelInfo,
	"warning":  slog.LevelWarn,
	"error":    slog.LevelError,
	"critical": LevelCritical,
}

// LevelNames lists the accepted level names, from most to least verbose.
var LevelNames = []string{"debug", "info", "warning", "error", "critical"}

// UnknownLevelError denotes a level name outside of LevelNames.
type UnknownLevelError string

// Error returns the formatted level error.
func (e UnknownLevelError) Error() string {
	return fmt.Sprintf("unknown log level %q (choose from %s)", string(e), strings.Join(LevelNames, ", "))
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return 0, UnknownLevelError(name)
	}

	return level, nil
}

// LevelName is the label printed in front of messages logged at level.
func LevelName(level slog.Level) string {
	switch {
	case level >= LevelCritical:
		return "CRITICAL"
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// New returns a logger writing to w every record at or above level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(&handler{w: w, level: level})
}

// Discard returns a logger dropping every record.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// handler formats records as "LEVEL: message key=value ...".
type handler struct {
	w      io.Writer
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	b.WriteString(LevelName(r.Level))
	b.WriteString(": ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}

	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})

	b.WriteByte('\n')

	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)

	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}

	return &h2
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &h2
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')

	s := a.Value.String()
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		s = fmt.Sprintf("%q", s)
	}
	b.WriteString(s)
}

type discardHandler struct{}

func (discardHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (discardHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (h discardHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h discardHandler) WithGroup(_ string) slog.Handler {
	return h
}
