package tint

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// PlaceOption customizes the whitespace Place generates.
type PlaceOption func(*whitespace)

type whitespace struct {
	chars []string
	style StyleFunc
}

// WithWhitespaceChars fills empty canvas cells by cycling through chars
// instead of spaces.
func WithWhitespaceChars(chars string) PlaceOption {
	return func(w *whitespace) {
		w.chars = nil
		seg := graphemes.FromString(chars)
		for seg.Next() {
			if g := seg.Value(); widthCondition.StringWidth(g) > 0 {
				w.chars = append(w.chars, g)
			}
		}
	}
}

// WithWhitespaceStyle styles the generated whitespace.
func WithWhitespaceStyle(fn StyleFunc) PlaceOption {
	return func(w *whitespace) {
		w.style = fn
	}
}

func newWhitespace(opts []PlaceOption) *whitespace {
	w := &whitespace{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// render returns exactly n cells of whitespace.
func (w *whitespace) render(n int) string {
	if n <= 0 {
		return ""
	}
	if len(w.chars) == 0 {
		return w.style.Apply(strings.Repeat(" ", n))
	}

	var sb strings.Builder
	filled := 0
	for i := 0; filled < n; i++ {
		g := w.chars[i%len(w.chars)]
		gw := widthCondition.StringWidth(g)
		if filled+gw > n {
			break
		}
		sb.WriteString(g)
		filled += gw
	}
	sb.WriteString(strings.Repeat(" ", n-filled))
	return w.style.Apply(sb.String())
}

// Place renders content inside a width x height canvas at the given
// fractional position. Uncovered cells are whitespace. When content fits,
// the result has exactly height lines of exactly width cells. Content larger
// than the canvas is not clipped: the overflowing axis takes the content's
// size and the content sits at offset 0 on it.
func Place(width, height int, hPos, vPos Position, content string, opts ...PlaceOption) string {
	return PlaceVertical(height, vPos, PlaceHorizontal(width, hPos, content, opts...), opts...)
}

// PlaceHorizontal places content in a row of width cells.
func PlaceHorizontal(width int, pos Position, content string, opts ...PlaceOption) string {
	ws := newWhitespace(opts)
	contentWidth := Width(content)
	if contentWidth > width {
		Logger().Debug().Int("width", width).Int("contentWidth", contentWidth).Msg("placed content overflows horizontally")
	}

	total := max(width, contentWidth)
	left := Offset(pos, width, contentWidth)

	lines := Lines(content)
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(ws.render(left))
		sb.WriteString(line)
		sb.WriteString(ws.render(total - left - StringWidth(line)))
	}
	return sb.String()
}

// PlaceVertical places content in a column of height lines.
func PlaceVertical(height int, pos Position, content string, opts ...PlaceOption) string {
	contentHeight := Height(content)
	if contentHeight >= height {
		if contentHeight > height {
			Logger().Debug().Int("height", height).Int("contentHeight", contentHeight).Msg("placed content overflows vertically")
		}
		return content
	}

	ws := newWhitespace(opts)
	width := Width(content)
	top := Offset(pos, height, contentHeight)
	bottom := height - contentHeight - top

	blank := ws.render(width)
	lines := make([]string, 0, height)
	for range top {
		lines = append(lines, blank)
	}
	for _, line := range Lines(content) {
		lines = append(lines, line+ws.render(width-StringWidth(line)))
	}
	for range bottom {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}
