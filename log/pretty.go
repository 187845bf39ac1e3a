package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyHandler is a colorized single-line text handler. Keys are gray,
// values are colored by kind, and strings are written without quotes.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	prefix string      // dotted group prefix applied to attribute keys
	attrs  []slog.Attr // preformatted attributes from WithAttrs
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, "", h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	h.writeAttr(buf, "", slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, "",
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.writeAttr(buf, "", slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, "", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], prefixed(h.prefix, attrs)...)

	return &next
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := *h
	next.prefix = h.prefix + name + "."

	return &next
}

// replace applies the configured ReplaceAttr hook to a built-in attribute.
func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func prefixed(prefix string, attrs []slog.Attr) []slog.Attr {
	if prefix == "" {
		return attrs
	}

	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}

	return out
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, group, ga)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray)
	buf.WriteString(prefix)
	buf.WriteString(a.Key)
	buf.WriteString(colorReset)
	buf.WriteByte('=')

	writeValue(buf, a.Value)
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	color, text := colorCyan, v.String()

	switch v.Kind() {
	case slog.KindInt64:
		color, text = colorYellow, strconv.FormatInt(v.Int64(), 10)

	case slog.KindUint64:
		color, text = colorYellow, strconv.FormatUint(v.Uint64(), 10)

	case slog.KindFloat64:
		color, text = colorYellow, strconv.FormatFloat(v.Float64(), 'g', -1, 64)

	case slog.KindBool:
		color = colorRed
		if v.Bool() {
			color = colorGreen
		}

	case slog.KindDuration:
		color = colorMagenta

	case slog.KindTime:
		color = colorBlue

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			switch {
			case level >= slog.LevelError:
				color = colorRed
			case level >= slog.LevelWarn:
				color = colorYellow
			case level >= slog.LevelInfo:
				color = colorGreen
			default:
				color = colorBlue
			}

			text = strings.ToUpper(Level(level).String())
		}
	}

	buf.WriteString(color)
	buf.WriteString(text)
	buf.WriteString(colorReset)
}
