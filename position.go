package tint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Position is a fractional placement along an axis: 0 is the start
// (left/top), 0.5 the centre and 1 the end (right/bottom).
type Position float64

const (
	Top    Position = 0.0
	Bottom Position = 1.0
	Center Position = 0.5
	Middle Position = Center
	Left   Position = 0.0
	Right  Position = 1.0
)

// HorizontalAlignment is the symbolic name of a horizontal position.
type HorizontalAlignment string

const (
	AlignLeft   HorizontalAlignment = "left"
	AlignCenter HorizontalAlignment = "center"
	AlignRight  HorizontalAlignment = "right"
)

// VerticalAlignment is the symbolic name of a vertical position.
type VerticalAlignment string

const (
	AlignTop    VerticalAlignment = "top"
	AlignMiddle VerticalAlignment = "middle"
	AlignBottom VerticalAlignment = "bottom"
)

// IsValidPosition reports whether p lies within [0, 1].
func IsValidPosition(p Position) bool {
	return p >= 0 && p <= 1
}

// ClampPosition clamps p into [0, 1]. NaN clamps to 0.
func ClampPosition(p Position) Position {
	switch {
	case math.IsNaN(float64(p)), p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Offset returns how far content of contentSize is shifted inside a
// container of containerSize for the given position. Content that does not
// fit is never shifted negatively.
func Offset(p Position, containerSize, contentSize int) int {
	free := max(0, containerSize-contentSize)
	return int(math.Floor(float64(ClampPosition(p)) * float64(free)))
}

// HorizontalAlignmentOf maps a position to left, center or right.
func HorizontalAlignmentOf(p Position) HorizontalAlignment {
	switch {
	case p <= 0:
		return AlignLeft
	case p >= 1:
		return AlignRight
	}
	return AlignCenter
}

// VerticalAlignmentOf maps a position to top, middle or bottom.
func VerticalAlignmentOf(p Position) VerticalAlignment {
	switch {
	case p <= 0:
		return AlignTop
	case p >= 1:
		return AlignBottom
	}
	return AlignMiddle
}

// ParsePosition converts an alignment name or a decimal literal to a
// Position. Decimal values are clamped.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "left", "start":
		return Top, nil
	case "center", "centre", "middle":
		return Center, nil
	case "bottom", "right", "end":
		return Bottom, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", s)
	}
	return ClampPosition(Position(f)), nil
}
