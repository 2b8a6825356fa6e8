package tint

import (
	"strings"
	"testing"
)

func TestStripAnsi(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"\x1b[32mhello\x1b[0m", "hello"},
		{"\x1b[1;31mERROR\x1b[0m: something", "ERROR: something"},
		{"\x1b[38;5;196mred\x1b[0m", "red"},
		{"\x1b[38;2;255;0;0mrgb\x1b[0m", "rgb"},
		{"\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\", "link"},
		{"no escape codes here", "no escape codes here"},
		{"", ""},
	}

	for _, tt := range tests {
		got := StripAnsi(tt.input)
		if got != tt.expected {
			t.Errorf("StripAnsi(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStringWidthWithAnsi(t *testing.T) {
	// "hello" is 5 cells wide regardless of escape codes
	plain := StringWidth("hello")
	styled := StringWidth("\x1b[32mhello\x1b[0m")
	if plain != styled {
		t.Errorf("StringWidth with ANSI = %d, without = %d, should be equal", styled, plain)
	}
	if plain != 5 {
		t.Errorf("StringWidth('hello') = %d, want 5", plain)
	}
}

func TestParseAnsiLine(t *testing.T) {
	base := Style{}

	// No ANSI, single segment
	segs := ParseAnsiLine("hello", base)
	if len(segs) != 1 || segs[0].Text != "hello" {
		t.Errorf("plain text: got %d segments, text=%q", len(segs), segs[0].Text)
	}

	// Green text + reset
	segs = ParseAnsiLine("\x1b[32mhello\x1b[0m world", base)
	if len(segs) != 2 {
		t.Fatalf("green+reset: got %d segments, want 2", len(segs))
	}
	if segs[0].Text != "hello" {
		t.Errorf("seg[0].Text = %q, want 'hello'", segs[0].Text)
	}
	if segs[0].Style.Color != ColorGreen {
		t.Errorf("seg[0].Color = %d, want ColorGreen(%d)", segs[0].Style.Color, ColorGreen)
	}
	if segs[1].Text != " world" {
		t.Errorf("seg[1].Text = %q, want ' world'", segs[1].Text)
	}
	if segs[1].Style.Color != base.Color {
		t.Errorf("seg[1].Color = %d, want base(%d)", segs[1].Style.Color, base.Color)
	}

	// Combined: bold red
	segs = ParseAnsiLine("\x1b[1;31mtext\x1b[0m", base)
	if len(segs) != 1 {
		t.Fatalf("bold+red: got %d segments", len(segs))
	}
	if !segs[0].Style.Bold || segs[0].Style.Color != ColorRed {
		t.Errorf("expected Bold+Red, got Bold=%v Color=%d", segs[0].Style.Bold, segs[0].Style.Color)
	}

	// Bright background
	segs = ParseAnsiLine("\x1b[104mx", base)
	if segs[0].Style.Background != ColorBrightBlue {
		t.Errorf("bright bg = %d, want ColorBrightBlue(%d)", segs[0].Style.Background, ColorBrightBlue)
	}

	// True color
	segs = ParseAnsiLine("\x1b[38;2;10;20;30mx", base)
	if rgb := segs[0].Style.ColorRGB; rgb == nil || *rgb != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("rgb = %v, want {10 20 30}", rgb)
	}
}

func TestParseAnsiLineDropsNonSGR(t *testing.T) {
	// Cursor movement and hyperlinks carry no visible text
	line := "a\x1b[2Kb\x1b]8;;https://example.com\x07c\x1b]8;;\x07"
	var sb strings.Builder
	for _, seg := range ParseAnsiLine(line, EmptyStyle) {
		sb.WriteString(seg.Text)
	}
	if sb.String() != "abc" {
		t.Errorf("visible text = %q, want 'abc'", sb.String())
	}
}

func TestParseAnsiLineCharsetReset(t *testing.T) {
	// tput sgr0 emits ESC ( B before the SGR reset
	segs := ParseAnsiLine("\x1b[1mon\x1b(B\x1b[moff", EmptyStyle)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].Text != "on" || !segs[0].Style.Bold {
		t.Errorf("seg[0] = %q bold=%v, want 'on' bold", segs[0].Text, segs[0].Style.Bold)
	}
	if segs[1].Text != "off" || segs[1].Style.Bold {
		t.Errorf("seg[1] = %q bold=%v, want 'off' plain", segs[1].Text, segs[1].Style.Bold)
	}
}

func TestParseAnsiLineExtendedColors(t *testing.T) {
	segs := ParseAnsiLine("\x1b[48;5;9;3mx\x1b[23;49;38:5:196my", EmptyStyle)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].Style.Background != ColorBrightRed || !segs[0].Style.Italic {
		t.Errorf("seg[0] bg=%d italic=%v, want ColorBrightRed italic", segs[0].Style.Background, segs[0].Style.Italic)
	}
	if rgb := segs[1].Style.ColorRGB; rgb == nil || *rgb != (RGB{R: 255}) {
		t.Errorf("seg[1] rgb = %v, want {255 0 0}", rgb)
	}
	if segs[1].Style.Italic || segs[1].Style.Background != ColorNone {
		t.Errorf("seg[1] kept italic or background: %+v", segs[1].Style)
	}
}

func TestParseAnsiLineResetsToBase(t *testing.T) {
	base := Style{Color: ColorCyan}
	segs := ParseAnsiLine("\x1b[31mred\x1b[0mbase", base)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[1].Style.Color != ColorCyan {
		t.Errorf("after reset Color = %d, want base ColorCyan(%d)", segs[1].Style.Color, ColorCyan)
	}
}

func TestContainsAnsi(t *testing.T) {
	if ContainsAnsi("hello") {
		t.Error("plain text should not contain ANSI")
	}
	if !ContainsAnsi("\x1b[32mhello\x1b[0m") {
		t.Error("colored text should contain ANSI")
	}
}

func TestRunToAnsiSwitchesOnChange(t *testing.T) {
	red := Style{Color: ColorRed}
	run := CellRun{Cells: []Cell{
		{Char: "a", Style: red},
		{Char: "b", Style: red},
		{Char: "c"},
	}}
	var sb strings.Builder
	RunToAnsi(run, &sb)
	want := "\x1b[31mab\x1b[0mc"
	if sb.String() != want {
		t.Errorf("RunToAnsi = %q, want %q", sb.String(), want)
	}
}
