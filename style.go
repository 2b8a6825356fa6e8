package tint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyleFunc applies styling to a piece of text. Layout code never builds
// escape sequences itself; it only calls the StyleFunc it was given.
type StyleFunc func(text string) string

// Apply calls f on text, treating a nil StyleFunc as the identity.
func (f StyleFunc) Apply(text string) string {
	if f == nil {
		return text
	}
	return f(text)
}

// Compose returns a StyleFunc applying fns in order. Nil entries are skipped.
func Compose(fns ...StyleFunc) StyleFunc {
	return func(text string) string {
		for _, fn := range fns {
			text = fn.Apply(text)
		}
		return text
	}
}

// Render wraps every line of text in the style's SGR sequence followed by a
// reset, so styling never leaks across newlines.
func (s Style) Render(text string) string {
	if s.IsZero() {
		return text
	}
	var prefix strings.Builder
	StyleToAnsi(s, &prefix)

	lines := Lines(text)
	var sb strings.Builder
	sb.Grow(len(text) + len(lines)*(prefix.Len()+len(resetStr)))
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(prefix.String())
		sb.WriteString(line)
		sb.WriteString(resetStr)
	}
	return sb.String()
}

// Func returns s.Render as a StyleFunc.
func (s Style) Func() StyleFunc {
	if s.IsZero() {
		return nil
	}
	return s.Render
}

// Lipgloss adapts a lipgloss style to a StyleFunc.
func Lipgloss(s lipgloss.Style) StyleFunc {
	return func(text string) string {
		return s.Render(text)
	}
}

// StyleSpec is the declarative form of a Style used by YAML documents.
// Colors are names ("red", "bright-blue"), 256-color indexes ("196") or
// hex triplets ("#ff8800").
type StyleSpec struct {
	Color         string `yaml:"color,omitempty"`
	Background    string `yaml:"background,omitempty"`
	Bold          bool   `yaml:"bold,omitempty"`
	Dim           bool   `yaml:"dim,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Inverse       bool   `yaml:"inverse,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
}

// Style converts the document form into a Style.
func (s StyleSpec) Style() (Style, error) {
	style := Style{
		Bold:          s.Bold,
		Dim:           s.Dim,
		Italic:        s.Italic,
		Underline:     s.Underline,
		Inverse:       s.Inverse,
		Strikethrough: s.Strikethrough,
	}
	var err error
	if style.Color, style.ColorRGB, err = parseColor(s.Color); err != nil {
		return Style{}, fmt.Errorf("color: %w", err)
	}
	if style.Background, style.BackgroundRGB, err = parseColor(s.Background); err != nil {
		return Style{}, fmt.Errorf("background: %w", err)
	}
	return style, nil
}

func parseColor(v string) (Color, *RGB, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return ColorNone, nil, nil
	}
	if c, ok := NameToColor[v]; ok {
		return c, nil, nil
	}
	if strings.HasPrefix(v, "#") && len(v) == 7 {
		n, err := strconv.ParseUint(v[1:], 16, 32)
		if err != nil {
			return ColorNone, nil, fmt.Errorf("invalid hex color %q", v)
		}
		return ColorNone, &RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 255 {
		c, rgb := color256(n)
		return c, rgb, nil
	}
	return ColorNone, nil, fmt.Errorf("unknown color %q", v)
}
