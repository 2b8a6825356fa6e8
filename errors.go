package tint

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by constructors that need at least one element.
var ErrEmptyInput = errors.New("empty input")

// IndexError reports an index outside the valid range of a sequence.
type IndexError struct {
	Op    string
	Index int
	Min   int
	Max   int
}

// NewIndexError constructs an IndexError for index outside [min, max].
func NewIndexError(op string, index, min, max int) error {
	return &IndexError{Op: op, Index: index, Min: min, Max: max}
}

func (e *IndexError) Error() string {
	if e == nil {
		return ""
	}
	if e.Max < e.Min {
		return fmt.Sprintf("%s: index %d out of bounds: sequence is empty", e.Op, e.Index)
	}
	return fmt.Sprintf("%s: index %d out of bounds [%d, %d]", e.Op, e.Index, e.Min, e.Max)
}

// RangeError reports a numeric option outside its documented range.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

// NewRangeError constructs a RangeError. A Max below Min means unbounded.
func NewRangeError(field string, value, min, max int) error {
	return &RangeError{Field: field, Value: value, Min: min, Max: max}
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Max < e.Min {
		return fmt.Sprintf("%s: %d must be at least %d", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s: %d outside [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// CheckRange returns a RangeError when value is outside [min, max]. Pass a
// max below min for an unbounded upper limit.
func CheckRange(field string, value, min, max int) error {
	if value < min || (max >= min && value > max) {
		return NewRangeError(field, value, min, max)
	}
	return nil
}

// CoordinateError reports an absolute placement outside a canvas.
type CoordinateError struct {
	X, Y          int
	Width, Height int
	CanvasWidth   int
	CanvasHeight  int
}

func (e *CoordinateError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("block %dx%d at (%d, %d) does not fit canvas %dx%d",
		e.Width, e.Height, e.X, e.Y, e.CanvasWidth, e.CanvasHeight)
}
