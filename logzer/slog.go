package logzer

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// SLogHandler writes slog records into the global zerolog logger,
// the demo package logs through slog only.
type SLogHandler struct {
	attrs  []slog.Attr
	groups []string

	CallerSkipFrame int
	// GroupsFieldName is "logger" if empty
	GroupsFieldName string
}

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Enabled implements slog.Handler interface
func (h *SLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return zerologLevel(level) >= zerolog.GlobalLevel()
}

// Handle implements slog.Handler interface
func (h *SLogHandler) Handle(_ context.Context, r slog.Record) error {
	e := zlog.WithLevel(zerologLevel(r.Level))
	if e == nil {
		return nil
	}

	if len(h.groups) > 0 {
		name := h.GroupsFieldName
		if name == "" {
			name = "logger"
		}
		e = e.Strs(name, h.groups)
	}
	add := func(attr slog.Attr) bool {
		v := attr.Value.Resolve()
		switch v.Kind() {
		case slog.KindBool:
			e = e.Bool(attr.Key, v.Bool())
		case slog.KindDuration:
			e = e.Dur(attr.Key, v.Duration())
		case slog.KindFloat64:
			e = e.Float64(attr.Key, v.Float64())
		case slog.KindInt64:
			e = e.Int64(attr.Key, v.Int64())
		case slog.KindUint64:
			e = e.Uint64(attr.Key, v.Uint64())
		case slog.KindString:
			e = e.Str(attr.Key, v.String())
		case slog.KindTime:
			e = e.Time(attr.Key, v.Time())
		case slog.KindGroup:
			e = e.Str(attr.Key, v.String())
		default:
			e = e.Interface(attr.Key, v.Any())
		}
		return true
	}
	for _, attr := range h.attrs {
		add(attr)
	}
	r.Attrs(add)

	e.CallerSkipFrame(h.CallerSkipFrame).Msg(r.Message)
	return nil
}

func (h *SLogHandler) clone() *SLogHandler {
	return &SLogHandler{
		attrs:           append([]slog.Attr(nil), h.attrs...),
		groups:          append([]string(nil), h.groups...),
		CallerSkipFrame: h.CallerSkipFrame,
		GroupsFieldName: h.GroupsFieldName,
	}
}

// WithAttrs implements slog.Handler interface
func (h *SLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nested := h.clone()
	nested.attrs = append(nested.attrs, attrs...)
	return nested
}

// WithGroup implements slog.Handler interface
func (h *SLogHandler) WithGroup(name string) slog.Handler {
	nested := h.clone()
	nested.groups = append(nested.groups, name)
	return nested
}
