package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// NewSlogHandler routes log/slog records into l. Returns nil for a nil logger.
func NewSlogHandler(l *Logger) slog.Handler {
	if l == nil {
		return nil
	}
	return &slogHandler{log: l}
}

type slogHandler struct {
	log    *Logger
	groups []string
	// attrs added through WithAttrs, already rendered with the groups active at the time
	preformatted string
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	current := h.log.GetLevel()
	return current != LevelNone && fromSlogLevel(level) >= current
}

func (h *slogHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(h.preformatted)
	record.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.groups, a)
		return true
	})
	line := strings.TrimSpace(sb.String())

	h.log.write(fromSlogLevel(record.Level), "%s", line)
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(h.preformatted)
	for _, a := range attrs {
		writeAttr(&sb, h.groups, a)
	}
	return &slogHandler{
		log:          h.log,
		groups:       h.groups,
		preformatted: sb.String(),
	}
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &slogHandler{
		log:          h.log,
		groups:       append(append([]string(nil), h.groups...), name),
		preformatted: h.preformatted,
	}
}

func fromSlogLevel(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// writeAttr renders a as " group.key=value", flattening nested groups.
func writeAttr(sb *strings.Builder, groups []string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		nested := append(append([]string(nil), groups...), a.Key)
		for _, inner := range a.Value.Group() {
			writeAttr(sb, nested, inner)
		}
		return
	}

	key := a.Key
	if key == "" {
		key = "attr"
	}
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	fmt.Fprintf(sb, " %s=%v", key, a.Value.Resolve())
}
