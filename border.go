package tint

import (
	"fmt"
	"strings"
)

// BorderStyle names a border character set.
type BorderStyle string

const (
	BorderNone    BorderStyle = "none"
	BorderSingle  BorderStyle = "single"
	BorderDouble  BorderStyle = "double"
	BorderRounded BorderStyle = "rounded"
	BorderBold    BorderStyle = "bold"
	BorderASCII   BorderStyle = "ascii"
)

// BorderChars holds the characters for drawing a border.
type BorderChars struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

// BorderCharSets maps each style to its characters.
var BorderCharSets = map[BorderStyle]BorderChars{
	BorderSingle:  {TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘", Horizontal: "─", Vertical: "│"},
	BorderDouble:  {TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝", Horizontal: "═", Vertical: "║"},
	BorderRounded: {TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯", Horizontal: "─", Vertical: "│"},
	BorderBold:    {TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛", Horizontal: "━", Vertical: "┃"},
	BorderASCII:   {TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+", Horizontal: "-", Vertical: "|"},
}

// Frame draws a border around content with the given padding inside it.
// BorderNone only applies the padding. The border is styled with style.
func Frame(content string, border BorderStyle, padding Dimensions, style StyleFunc) (string, error) {
	chars, ok := BorderCharSets[border]
	if !ok && border != BorderNone {
		return "", fmt.Errorf("unknown border style %q", border)
	}

	inner := Width(content) + padding.Horizontal()
	body := make([]string, 0, Height(content)+padding.Vertical())
	blank := strings.Repeat(" ", inner)
	for range padding.Top {
		body = append(body, blank)
	}
	for _, line := range Lines(content) {
		body = append(body, strings.Repeat(" ", padding.Left)+padRight(line, inner-padding.Horizontal())+strings.Repeat(" ", padding.Right))
	}
	for range padding.Bottom {
		body = append(body, blank)
	}

	if border == BorderNone {
		return strings.Join(body, "\n"), nil
	}

	edge := strings.Repeat(chars.Horizontal, inner)
	out := make([]string, 0, len(body)+2)
	out = append(out, style.Apply(chars.TopLeft+edge+chars.TopRight))
	side := style.Apply(chars.Vertical)
	for _, line := range body {
		out = append(out, side+line+side)
	}
	out = append(out, style.Apply(chars.BottomLeft+edge+chars.BottomRight))
	return strings.Join(out, "\n"), nil
}
