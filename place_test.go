package tint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		x, y Position
		body string
		want string
	}{
		{"top left", 4, 2, Left, Top, "ab", "ab  \n    "},
		{"bottom right", 4, 2, Right, Bottom, "ab", "    \n  ab"},
		{"center", 5, 3, Center, Middle, "x", "     \n  x  \n     "},
		{"ragged content", 4, 2, Left, Top, "a\nbcd", "a   \nbcd "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Place(tt.w, tt.h, tt.x, tt.y, tt.body))
		})
	}
}

func TestPlaceFitsExactly(t *testing.T) {
	out := Place(10, 4, 0.3, 0.7, "日本\nabc")
	assert.Equal(t, 4, Height(out))
	for _, line := range Lines(out) {
		assert.Equal(t, 10, StringWidth(line))
	}
}

func TestPlaceOverflowIsNotClipped(t *testing.T) {
	out := Place(2, 1, Center, Middle, "abcd\nef")
	assert.Equal(t, "abcd\nef  ", out)
}

func TestPlaceWhitespace(t *testing.T) {
	out := Place(5, 1, Right, Top, "x", WithWhitespaceChars(".-"))
	assert.Equal(t, ".-.-x", out)

	// A wide fill glyph that does not fit leaves a space.
	out = PlaceHorizontal(4, Right, "x", WithWhitespaceChars("日"))
	assert.Equal(t, "日 x", out)

	styled := Place(3, 1, Left, Top, "x", WithWhitespaceStyle(func(s string) string {
		return "[" + s + "]"
	}))
	assert.Equal(t, "x[  ]", styled)
}

func TestPlaceVerticalKeepsWidth(t *testing.T) {
	out := PlaceVertical(3, Bottom, "ab\nc")
	assert.Equal(t, []string{"  ", "ab", "c "}, strings.Split(out, "\n"))
}
