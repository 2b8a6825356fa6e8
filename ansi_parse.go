package tint

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// AnsiSegment represents a piece of text with associated style from ANSI codes.
type AnsiSegment struct {
	Text  string
	Style Style
}

// escapeEnd returns the index just past the escape sequence starting at s[i].
// Boundaries come from the same decoder ansi.Strip uses, so anything skipped
// here is also excluded from StringWidth.
func escapeEnd(s string, i int) int {
	_, _, n, _ := ansi.DecodeSequence(s[i:], ansi.NormalState, nil)
	return i + max(n, 1)
}

// sgrParams reports whether seq is an SGR sequence and returns its
// parameter string.
func sgrParams(seq string) (string, bool) {
	if len(seq) < 3 || !strings.HasPrefix(seq, "\x1b[") || seq[len(seq)-1] != 'm' {
		return "", false
	}
	return seq[2 : len(seq)-1], true
}

// ParseAnsiLine splits a line into segments of uniformly styled text.
// SGR sequences update the running style starting from baseStyle; every
// other escape sequence is dropped.
func ParseAnsiLine(line string, baseStyle Style) []AnsiSegment {
	if !ContainsAnsi(line) {
		return []AnsiSegment{{Text: line, Style: baseStyle}}
	}

	var segments []AnsiSegment
	current := baseStyle
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			segments = append(segments, AnsiSegment{Text: text.String(), Style: current})
			text.Reset()
		}
	}

	for i := 0; i < len(line); {
		if line[i] != '\x1b' {
			next := strings.IndexByte(line[i:], '\x1b')
			if next < 0 {
				next = len(line) - i
			}
			text.WriteString(line[i : i+next])
			i += next
			continue
		}

		end := escapeEnd(line, i)
		if params, ok := sgrParams(line[i:end]); ok {
			flush()
			current = applySGR(current, baseStyle, params)
		}
		i = end
	}
	flush()

	return segments
}

// applySGR returns style with the SGR parameters applied. Resets go back to
// base rather than to the empty style.
func applySGR(style, base Style, params string) Style {
	codes := parseSGRParams(params)
	if len(codes) == 0 {
		return base
	}

	for i := 0; i < len(codes); i++ {
		switch p := codes[i]; {
		case p == 0:
			style = base
		case p == 38 || p == 48:
			c, rgb, used := extendedColor(codes[i+1:])
			i += used
			if used == 0 {
				continue
			}
			if p == 38 {
				style.Color, style.ColorRGB = c, rgb
			} else {
				style.Background, style.BackgroundRGB = c, rgb
			}
		case p == 39:
			style.Color, style.ColorRGB = base.Color, base.ColorRGB
		case p == 49:
			style.Background, style.BackgroundRGB = base.Background, base.BackgroundRGB
		case p >= 30 && p <= 37:
			style.Color, style.ColorRGB = ColorBlack+Color(p-30), nil
		case p >= 90 && p <= 97:
			style.Color, style.ColorRGB = ColorBrightBlack+Color(p-90), nil
		case p >= 40 && p <= 47:
			style.Background, style.BackgroundRGB = ColorBlack+Color(p-40), nil
		case p >= 100 && p <= 107:
			style.Background, style.BackgroundRGB = ColorBrightBlack+Color(p-100), nil
		default:
			setAttribute(&style, p)
		}
	}
	return style
}

// setAttribute toggles the text attribute named by an SGR code. Unknown codes
// are ignored.
func setAttribute(style *Style, code int) {
	on := code < 20
	switch code {
	case 1:
		style.Bold = on
	case 2:
		style.Dim = on
	case 22:
		style.Bold, style.Dim = false, false
	case 3, 23:
		style.Italic = on
	case 4, 24:
		style.Underline = on
	case 7, 27:
		style.Inverse = on
	case 9, 29:
		style.Strikethrough = on
	}
}

// extendedColor decodes the arguments following a 38 or 48 code: either
// "5;N" or "2;R;G;B". It returns how many arguments it consumed, which is 0
// when they are malformed.
func extendedColor(args []int) (Color, *RGB, int) {
	switch {
	case len(args) >= 2 && args[0] == 5:
		c, rgb := color256(args[1])
		return c, rgb, 2
	case len(args) >= 4 && args[0] == 2:
		return ColorNone, &RGB{R: uint8(args[1]), G: uint8(args[2]), B: uint8(args[3])}, 4
	}
	return ColorNone, nil, 0
}

// parseSGRParams splits a parameter string on ';' and the ':' sub-parameter
// separator. Empty fields count as 0.
func parseSGRParams(s string) []int {
	if s == "" {
		return nil
	}
	fields := strings.Split(strings.ReplaceAll(s, ":", ";"), ";")
	codes := make([]int, len(fields))
	for i, f := range fields {
		codes[i], _ = strconv.Atoi(f)
	}
	return codes
}

// color256 maps a 256-color index to a named Color or an RGB value.
func color256(n int) (Color, *RGB) {
	switch {
	case n < 0 || n > 255:
		return ColorNone, nil
	case n < 8:
		return ColorBlack + Color(n), nil
	case n < 16:
		return ColorBrightBlack + Color(n-8), nil
	case n < 232:
		n -= 16
		return ColorNone, &RGB{R: cubeLevel(n / 36), G: cubeLevel(n / 6 % 6), B: cubeLevel(n % 6)}
	default:
		v := uint8((n-232)*10 + 8)
		return ColorNone, &RGB{R: v, G: v, B: v}
	}
}

func cubeLevel(i int) uint8 { return uint8(i * 51) }
