package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// handler formats records as "TIME LEVEL msg key=value ..." lines.
// Each record is handed to the writer in a single Write call.
type handler struct {
	w      io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

func newHandler(w io.Writer, level slog.Leveler) *handler {
	return &handler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level,
	}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(r.Time.Format(timeFormat))
	sb.WriteByte(' ')
	sb.WriteString(r.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		appendAttr(&sb, "", a)
	}

	prefix := h.groupPrefix()
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, prefix, a)
		return true
	})

	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *handler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')

	val := a.Value.Resolve().String()
	if strings.ContainsAny(val, " \t\n\r\"") {
		sb.WriteString(quote(val))
		return
	}
	sb.WriteString(val)
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}

// WithAttrs qualifies attrs with the groups open at this point, so groups
// added later do not apply to them.
func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := h.groupPrefix()
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: prefix + a.Key, Value: a.Value})
	}

	return &handler{w: h.w, mu: h.mu, level: h.level, attrs: merged, groups: h.groups}
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	groups := make([]string, 0, len(h.groups)+1)
	groups = append(groups, h.groups...)
	groups = append(groups, name)

	return &handler{w: h.w, mu: h.mu, level: h.level, attrs: h.attrs, groups: groups}
}
