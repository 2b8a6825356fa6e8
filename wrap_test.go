package tint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"disabled", "a b c", 0, []string{"a b c"}},
		{"fits", "hello", 10, []string{"hello"}},
		{"greedy", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"collapses spaces", "a    b", 3, []string{"a b"}},
		{"keeps newlines", "ab\ncd ef", 3, []string{"ab", "cd", "ef"}},
		{"hard splits long words", "abcdefg", 3, []string{"abc", "def", "g"}},
		{"long word continues line", "abcde f", 3, []string{"abc", "de", "f"}},
		{"wide glyphs", "日本語", 4, []string{"日本", "語"}},
		{"empty", "", 5, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapText(tt.text, tt.width))
		})
	}
}

func TestWrapTextRespectsWidth(t *testing.T) {
	text := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod"
	for _, width := range []int{1, 5, 12, 30} {
		for _, line := range WrapText(text, width) {
			assert.LessOrEqual(t, StringWidth(line), width, "width %d line %q", width, line)
		}
	}
}

func TestHardSplit(t *testing.T) {
	assert.Equal(t, []string{""}, HardSplit("", 3))
	assert.Equal(t, []string{"ab", "c"}, HardSplit("abc", 2))
	assert.Equal(t, []string{"日", "x"}, HardSplit("日x", 1))

	chunks := HardSplit("\x1b[31mabcd\x1b[0m", 2)
	assert.Len(t, chunks, 2)
	for _, c := range chunks {
		assert.Equal(t, 2, StringWidth(c))
	}
}

func TestHardSplitSkipsCharsetDesignation(t *testing.T) {
	s := "\x1b(Babcd"
	assert.Equal(t, 4, StringWidth(s))

	chunks := HardSplit(s, 2)
	assert.Equal(t, []string{"\x1b(Bab", "cd"}, chunks)
	for _, c := range chunks {
		assert.Equal(t, 2, StringWidth(c))
	}
}
