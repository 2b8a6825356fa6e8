// Package tint provides ANSI-aware measurement, box model arithmetic and
// block composition for terminal output.
package tint

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// widthCondition measures East Asian ambiguous runes as narrow regardless of
// the locale, so box drawing glyphs are always one cell.
var widthCondition = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// ContainsAnsi returns true if the string contains an escape sequence.
func ContainsAnsi(s string) bool {
	return strings.IndexByte(s, '\x1b') >= 0
}

// StripAnsi removes escape sequences from a string,
// returning only the visible text content.
func StripAnsi(s string) string {
	if !ContainsAnsi(s) {
		return s
	}
	return ansi.Strip(s)
}

// Lines splits a block into its lines. A block always has at least one line.
func Lines(s string) []string {
	return strings.Split(s, "\n")
}

// StringWidth returns the number of terminal cells a single line occupies.
func StringWidth(line string) int {
	return widthCondition.StringWidth(StripAnsi(line))
}

// RuneWidth returns the number of cells a rune occupies.
func RuneWidth(r rune) int {
	return widthCondition.RuneWidth(r)
}

// Width returns the visual width of the widest line in s.
func Width(s string) int {
	w := 0
	for _, line := range Lines(s) {
		w = max(w, StringWidth(line))
	}
	return w
}

// Height returns the number of lines in s. An empty string is one empty
// line and a trailing newline starts a new (empty) line.
func Height(s string) int {
	return strings.Count(s, "\n") + 1
}

// Size returns the visual width and height of s.
func Size(s string) (width, height int) {
	return Width(s), Height(s)
}
