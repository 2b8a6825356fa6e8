package tint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinHorizontal(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		blocks []string
		want   string
	}{
		{"no blocks", Top, nil, ""},
		{"single rectangular block unchanged", Bottom, []string{"ab\ncd"}, "ab\ncd"},
		{"single block is rectangularised", Top, []string{"a\nbcd"}, "a  \nbcd"},
		{"top pads below", Top, []string{"A", "B\nC"}, "AB\n C"},
		{"bottom pads above", Bottom, []string{"A", "B\nC"}, " B\nAC"},
		{"center splits padding", Center, []string{"A", "1\n2\n3"}, " 1\nA2\n 3"},
		{"styled widths ignore escapes", Top, []string{"\x1b[31mA\x1b[0m", "B"}, "\x1b[31mA\x1b[0mB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinHorizontal(tt.pos, tt.blocks...))
		})
	}
}

func TestJoinHorizontalDimensions(t *testing.T) {
	out := JoinHorizontal(Center, "ab\ncd", "x", "日本\n語\nz")
	w, h := Size(out)
	assert.Equal(t, 2+1+4, w)
	assert.Equal(t, 3, h)
	for _, line := range Lines(out) {
		assert.Equal(t, w, StringWidth(line))
	}
}

func TestJoinVertical(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		blocks []string
		want   string
	}{
		{"no blocks", Left, nil, ""},
		{"single rectangular block unchanged", Center, []string{"ab\ncd"}, "ab\ncd"},
		{"single block is rectangularised", Right, []string{"a\nbcd"}, "a  \nbcd"},
		{"left", Left, []string{"abc", "d"}, "abc\nd  "},
		{"right", Right, []string{"abc", "d"}, "abc\n  d"},
		{"center", Center, []string{"abcd", "x"}, "abcd\n x  "},
		{"block shifts as a whole", Right, []string{"abcd", "x\nyz"}, "abcd\n  x \n  yz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinVertical(tt.pos, tt.blocks...))
		})
	}
}

func TestJoinVerticalHeightIsSum(t *testing.T) {
	out := JoinVertical(Center, "a\nb", "", "c\nd\ne")
	assert.Equal(t, 2+1+3, Height(out))
	assert.Equal(t, 1, Width(out))
}
