package tint

// Color represents a named terminal color using a compact uint8
// representation. 24-bit colors use RGB instead.
type Color uint8

const (
	ColorNone    Color = iota // No color set (transparent)
	ColorDefault              // Terminal default
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// NameToColor converts a color name to Color.
var NameToColor = map[string]Color{
	"default":        ColorDefault,
	"black":          ColorBlack,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright-black":   ColorBrightBlack,
	"gray":           ColorBrightBlack,
	"bright-red":     ColorBrightRed,
	"bright-green":   ColorBrightGreen,
	"bright-yellow":  ColorBrightYellow,
	"bright-blue":    ColorBrightBlue,
	"bright-magenta": ColorBrightMagenta,
	"bright-cyan":    ColorBrightCyan,
	"bright-white":   ColorBrightWhite,
}

// RGB represents a 24-bit true color.
type RGB struct {
	R, G, B uint8
}

// Style holds SGR text attributes.
type Style struct {
	Color         Color
	Background    Color
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Inverse       bool
	Strikethrough bool
	// RGB colors take precedence over the named ones when set.
	ColorRGB      *RGB
	BackgroundRGB *RGB
}

// Cell is a single column of a Canvas holding one grapheme cluster.
// An empty Char marks the trailing column of a wide glyph.
type Cell struct {
	Char  string
	Style Style
}

// EmptyStyle is a Style with no attributes set.
var EmptyStyle = Style{}

// EmptyCell is a Cell with a space character and no styling.
var EmptyCell = Cell{Char: " ", Style: EmptyStyle}

// continuationCell occupies the second column of a wide glyph.
var continuationCell = Cell{}

// Equal returns true if two Styles are identical.
func (a Style) Equal(b Style) bool {
	if a.Color != b.Color || a.Background != b.Background {
		return false
	}
	if a.Bold != b.Bold || a.Dim != b.Dim || a.Italic != b.Italic ||
		a.Underline != b.Underline || a.Inverse != b.Inverse ||
		a.Strikethrough != b.Strikethrough {
		return false
	}
	if !rgbEqual(a.ColorRGB, b.ColorRGB) {
		return false
	}
	return rgbEqual(a.BackgroundRGB, b.BackgroundRGB)
}

func rgbEqual(a, b *RGB) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// IsZero reports whether the style sets no attribute at all.
func (s Style) IsZero() bool {
	return s.Equal(EmptyStyle)
}

// HasColor returns true if the style has a foreground color set.
func (s Style) HasColor() bool {
	return s.Color != ColorNone || s.ColorRGB != nil
}

// HasBackground returns true if the style has a background color set.
func (s Style) HasBackground() bool {
	return s.Background != ColorNone || s.BackgroundRGB != nil
}

// Merge creates a new Style by combining two styles.
// The overlay style takes precedence for non-zero values.
func (base Style) Merge(overlay Style) Style {
	result := base

	if overlay.HasColor() {
		result.Color = overlay.Color
		result.ColorRGB = overlay.ColorRGB
	}
	if overlay.HasBackground() {
		result.Background = overlay.Background
		result.BackgroundRGB = overlay.BackgroundRGB
	}
	result.Bold = result.Bold || overlay.Bold
	result.Dim = result.Dim || overlay.Dim
	result.Italic = result.Italic || overlay.Italic
	result.Underline = result.Underline || overlay.Underline
	result.Inverse = result.Inverse || overlay.Inverse
	result.Strikethrough = result.Strikethrough || overlay.Strikethrough

	return result
}
