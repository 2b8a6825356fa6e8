package tint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleFuncApplyNil(t *testing.T) {
	var fn StyleFunc
	assert.Equal(t, "x", fn.Apply("x"))
	assert.Nil(t, Style{}.Func())
}

func TestCompose(t *testing.T) {
	wrap := func(l, r string) StyleFunc {
		return func(s string) string { return l + s + r }
	}
	fn := Compose(wrap("(", ")"), nil, wrap("[", "]"))
	assert.Equal(t, "[(x)]", fn("x"))
}

func TestStyleRenderPerLine(t *testing.T) {
	s := Style{Bold: true, Color: ColorRed}
	out := s.Render("a\nb")
	assert.Equal(t, "\x1b[1m\x1b[31ma\x1b[0m\n\x1b[1m\x1b[31mb\x1b[0m", out)
	assert.Equal(t, "a\nb", StripAnsi(out))
	assert.Equal(t, "plain", Style{}.Render("plain"))
}

func TestStyleSpec(t *testing.T) {
	tests := []struct {
		name string
		spec StyleSpec
		want Style
	}{
		{"named", StyleSpec{Color: "Red", Bold: true}, Style{Color: ColorRed, Bold: true}},
		{"bright background", StyleSpec{Background: "bright-blue"}, Style{Background: ColorBrightBlue}},
		{"hex", StyleSpec{Color: "#ff8800"}, Style{ColorRGB: &RGB{R: 0xff, G: 0x88}}},
		{"indexed basic", StyleSpec{Color: "9"}, Style{Color: ColorBrightRed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Style()
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %+v", got)
		})
	}

	_, err := StyleSpec{Color: "ultraviolet"}.Style()
	assert.Error(t, err)
	_, err = StyleSpec{Background: "#zzzzzz"}.Style()
	assert.Error(t, err)
}

func TestLipglossAdapter(t *testing.T) {
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.TrueColor)

	fn := Lipgloss(r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff0000")))
	out := fn("hi")

	assert.True(t, ContainsAnsi(out))
	assert.Equal(t, "hi", StripAnsi(out))
	assert.Equal(t, 2, StringWidth(out))

	// Styled markers keep layout arithmetic intact.
	joined := JoinHorizontal(Top, out, "\n"+fn("there"))
	assert.Equal(t, []string{"hi     ", "  there"}, strings.Split(StripAnsi(joined), "\n"))
}
