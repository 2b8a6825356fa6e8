package tint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	out, err := Frame("ab\nc", BorderRounded, NewDimensions(0, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, "╭────╮\n│ ab │\n│ c  │\n╰────╯", out)
}

func TestFramePaddingOnly(t *testing.T) {
	out, err := Frame("x", BorderNone, NewDimensions(1, 2), nil)
	require.NoError(t, err)
	assert.Equal(t, "     \n  x  \n     ", out)
}

func TestFrameStyledBorder(t *testing.T) {
	style := Style{Color: ColorBlue}.Func()
	out, err := Frame("x", BorderASCII, ZeroDimensions(), style)
	require.NoError(t, err)
	assert.Equal(t, "+-+\n|x|\n+-+", StripAnsi(out))
	assert.Contains(t, out, "\x1b[34m")
}

func TestFrameUnknownBorder(t *testing.T) {
	_, err := Frame("x", BorderStyle("wavy"), ZeroDimensions(), nil)
	assert.Error(t, err)
}

func TestErrorsMessages(t *testing.T) {
	assert.Equal(t, "remove: index 3 out of bounds [0, 2]", NewIndexError("remove", 3, 0, 2).Error())
	assert.Equal(t, "get: index 0 out of bounds: sequence is empty", NewIndexError("get", 0, 0, -1).Error())
	assert.Equal(t, "spacing: -1 must be at least 0", CheckRange("spacing", -1, 0, -1).Error())
	assert.Equal(t, "indent: 21 outside [0, 20]", CheckRange("indent", 21, 0, 20).Error())
	assert.NoError(t, CheckRange("indent", 20, 0, 20))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, Block("a"), Block("b\nc")))
	assert.Equal(t, "a\nb\nc\n", buf.String())
	assert.Equal(t, "a\nb", Sprint(Block("a"), Block("b")))
}
