package slogobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Handler is a slog.Handler that renders records in one of the Formats.
// Attributes keep insertion order: handler attributes first, then record
// attributes. Groups prefix keys with "group.".
type Handler struct {
	format Format
	level  slog.Leveler
	colors bool

	mu     *sync.Mutex
	output io.Writer

	attrs  []slog.Attr
	prefix string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Format Format
	Level  slog.Leveler
	Output io.Writer
	Colors bool
}

// NewHandler creates a Handler. Nil options render compact INFO records to
// os.Stderr. Colors are enabled automatically when Output is a terminal.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	h := &Handler{
		format: opts.Format,
		level:  opts.Level,
		colors: opts.Colors,
		mu:     &sync.Mutex{},
		output: opts.Output,
	}
	if h.format == "" {
		h.format = FormatCompact
	}
	if h.level == nil {
		h.level = slog.LevelInfo
	}
	if h.output == nil {
		h.output = os.Stderr
	}
	if !h.colors && h.format != FormatJSON {
		if f, ok := h.output.(*os.File); ok {
			h.colors = isTerminal(f)
		}
	}
	return h
}

// Enabled reports whether level is at or above the configured minimum.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders and writes r.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := h.fields(r)

	var buf bytes.Buffer
	var err error
	switch h.format {
	case FormatJSON:
		err = writeJSON(&buf, r, fields)
	case FormatPretty:
		h.writePretty(&buf, r, fields)
	default:
		err = h.writeCompact(&buf, r, fields)
	}
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.output.Write(buf.Bytes())
	return err
}

// WithAttrs returns a Handler that prepends attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

// WithGroup returns a Handler that prefixes subsequent keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

type field struct {
	key   string
	value any
}

// fields flattens handler and record attributes. Later keys overwrite
// earlier ones in place so each key appears once.
func (h *Handler) fields(r slog.Record) []field {
	out := make([]field, 0, len(h.attrs)+r.NumAttrs())
	index := make(map[string]int, cap(out))
	add := func(key string, v slog.Value) {
		value := v.Resolve().Any()
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		if i, ok := index[key]; ok {
			out[i].value = value
			return
		}
		index[key] = len(out)
		out = append(out, field{key, value})
	}
	for _, a := range h.attrs {
		add(a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		add(h.prefix+a.Key, a.Value)
		return true
	})
	return out
}

func (h *Handler) writeCompact(buf *bytes.Buffer, r slog.Record, fields []field) error {
	buf.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	buf.WriteByte(' ')
	h.writeLevel(buf, r.Level, "%5s")
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	if len(fields) > 0 {
		buf.WriteByte(' ')
		if err := writeObject(buf, fields); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	return nil
}

func (h *Handler) writePretty(buf *bytes.Buffer, r slog.Record, fields []field) {
	buf.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	buf.WriteByte(' ')
	h.writeLevel(buf, r.Level, "%-5s")
	buf.WriteString("  ")
	buf.WriteString(r.Message)
	buf.WriteByte('\n')
	for i, f := range fields {
		branch := "|-"
		if i == len(fields)-1 {
			branch = "`-"
		}
		fmt.Fprintf(buf, "    %s %s: %v\n", branch, f.key, f.value)
	}
}

func (h *Handler) writeLevel(buf *bytes.Buffer, level slog.Level, layout string) {
	label := fmt.Sprintf(layout, levelLabel(level))
	if !h.colors {
		buf.WriteString(label)
		return
	}
	buf.WriteString(colorForLevel(level))
	buf.WriteString(label)
	buf.WriteString(colorReset)
}

func writeJSON(buf *bytes.Buffer, r slog.Record, fields []field) error {
	head := []field{
		{"time", r.Time.Format("2006-01-02T15:04:05.000Z07:00")},
		{"level", levelLabel(r.Level)},
		{"msg", r.Message},
	}
	if err := writeObject(buf, append(head, fields...)); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return nil
}

// writeObject encodes fields as a JSON object in slice order.
func writeObject(buf *bytes.Buffer, fields []field) error {
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return err
		}
		value, err := json.Marshal(f.value)
		if err != nil {
			value, _ = json.Marshal(fmt.Sprint(f.value))
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return nil
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func colorForLevel(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return colorGray
	case level < slog.LevelInfo:
		return colorBlue
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	default:
		return colorRed
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
