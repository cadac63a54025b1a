package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/sassy/internal/ui/output"
	"go.trai.ch/sassy/internal/ui/style"
)

// levelStyle is the icon and color of one severity band.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

// levelStyles is ordered from the most to the least severe band.
var levelStyles = []struct {
	min   slog.Level
	style levelStyle
}{
	{slog.LevelError, levelStyle{icon: style.Cross, color: style.Red}},
	{slog.LevelWarn, levelStyle{icon: style.Warning, color: style.Yellow}},
	{slog.LevelInfo, levelStyle{color: style.Slate}},
}

var debugStyle = levelStyle{icon: style.Dot, color: style.Mist}

func styleFor(level slog.Level) levelStyle {
	for _, band := range levelStyles {
		if level >= band.min {
			return band.style
		}
	}
	return debugStyle
}

// PrettyHandler writes one colored line per record: an icon for the severity, the message,
// then key=value attributes. Informational records carry no icon.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
// opts.Level is consulted for every record, so a *slog.LevelVar can change it later.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	st := styleFor(r.Level)

	var line strings.Builder
	if st.icon != "" {
		line.WriteString(st.icon)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)

	for _, attr := range h.attrs {
		line.WriteByte(' ')
		line.WriteString(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		line.WriteByte(' ')
		line.WriteString(h.render(attr))
		return true
	})

	colored := h.out.String(line.String()).Foreground(termenv.RGBColor(string(st.color)))
	_, err := h.out.WriteString(colored.String() + "\n")
	return err
}

// WithAttrs implements slog.Handler. The attributes are rendered once, up front.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, attr := range attrs {
		c.attrs = append(c.attrs, h.render(attr))
	}
	return c
}

// WithGroup implements slog.Handler. Nested groups join with dots.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.prefix = h.prefix + name + "."
	return c
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		prefix: h.prefix,
		attrs:  append([]string(nil), h.attrs...),
	}
}

func (h *PrettyHandler) render(attr slog.Attr) string {
	return h.prefix + attr.Key + "=" + attr.Value.String()
}
