package tint

import (
	"strconv"
	"strings"
)

const (
	ESC = "\x1b"
	CSI = ESC + "["
)

// Pre-computed SGR sequences
const (
	resetStr  = "\x1b[0m"
	boldStr   = "\x1b[1m"
	dimStr    = "\x1b[2m"
	italicStr = "\x1b[3m"
	underStr  = "\x1b[4m"
	invStr    = "\x1b[7m"
	strikeStr = "\x1b[9m"
)

// Foreground color codes indexed by Color
var fgCodes = [...]string{
	ColorNone:          "",
	ColorDefault:       "\x1b[39m",
	ColorBlack:         "\x1b[30m",
	ColorRed:           "\x1b[31m",
	ColorGreen:         "\x1b[32m",
	ColorYellow:        "\x1b[33m",
	ColorBlue:          "\x1b[34m",
	ColorMagenta:       "\x1b[35m",
	ColorCyan:          "\x1b[36m",
	ColorWhite:         "\x1b[37m",
	ColorBrightBlack:   "\x1b[90m",
	ColorBrightRed:     "\x1b[91m",
	ColorBrightGreen:   "\x1b[92m",
	ColorBrightYellow:  "\x1b[93m",
	ColorBrightBlue:    "\x1b[94m",
	ColorBrightMagenta: "\x1b[95m",
	ColorBrightCyan:    "\x1b[96m",
	ColorBrightWhite:   "\x1b[97m",
}

// Background color codes indexed by Color
var bgCodes = [...]string{
	ColorNone:          "",
	ColorDefault:       "\x1b[49m",
	ColorBlack:         "\x1b[40m",
	ColorRed:           "\x1b[41m",
	ColorGreen:         "\x1b[42m",
	ColorYellow:        "\x1b[43m",
	ColorBlue:          "\x1b[44m",
	ColorMagenta:       "\x1b[45m",
	ColorCyan:          "\x1b[46m",
	ColorWhite:         "\x1b[47m",
	ColorBrightBlack:   "\x1b[100m",
	ColorBrightRed:     "\x1b[101m",
	ColorBrightGreen:   "\x1b[102m",
	ColorBrightYellow:  "\x1b[103m",
	ColorBrightBlue:    "\x1b[104m",
	ColorBrightMagenta: "\x1b[105m",
	ColorBrightCyan:    "\x1b[106m",
	ColorBrightWhite:   "\x1b[107m",
}

// ColorToAnsi converts a Color to its escape code.
func ColorToAnsi(color Color, rgb *RGB, isFg bool) string {
	if rgb != nil {
		prefix := "48;2;"
		if isFg {
			prefix = "38;2;"
		}
		return CSI + prefix + strconv.Itoa(int(rgb.R)) + ";" + strconv.Itoa(int(rgb.G)) + ";" + strconv.Itoa(int(rgb.B)) + "m"
	}

	if int(color) < len(fgCodes) {
		if isFg {
			return fgCodes[color]
		}
		return bgCodes[color]
	}
	return ""
}

// StyleToAnsi writes the escape codes for a style to sb.
func StyleToAnsi(style Style, sb *strings.Builder) {
	if style.Bold {
		sb.WriteString(boldStr)
	}
	if style.Dim {
		sb.WriteString(dimStr)
	}
	if style.Italic {
		sb.WriteString(italicStr)
	}
	if style.Underline {
		sb.WriteString(underStr)
	}
	if style.Inverse {
		sb.WriteString(invStr)
	}
	if style.Strikethrough {
		sb.WriteString(strikeStr)
	}
	if style.HasColor() {
		sb.WriteString(ColorToAnsi(style.Color, style.ColorRGB, true))
	}
	if style.HasBackground() {
		sb.WriteString(ColorToAnsi(style.Background, style.BackgroundRGB, false))
	}
}

// CellRun is a run of consecutive cells on one row.
type CellRun struct {
	X     int
	Y     int
	Cells []Cell
}

// RunToAnsi encodes a run of cells, switching style only when it changes.
// The run ends with the terminal in its default state.
func RunToAnsi(run CellRun, sb *strings.Builder) {
	current := EmptyStyle
	for _, c := range run.Cells {
		if c.Char == "" {
			continue
		}
		if !current.Equal(c.Style) {
			if !current.IsZero() {
				sb.WriteString(resetStr)
			}
			StyleToAnsi(c.Style, sb)
			current = c.Style
		}
		sb.WriteString(c.Char)
	}
	if !current.IsZero() {
		sb.WriteString(resetStr)
	}
}
