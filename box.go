package tint

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Dimensions represents four-sided spacing such as padding, margin or
// indentation.
type Dimensions struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// NewDimensions builds Dimensions using CSS shorthand:
//
//	NewDimensions(1)          // all sides 1
//	NewDimensions(1, 2)       // vertical 1, horizontal 2
//	NewDimensions(1, 2, 3)    // top 1, horizontal 2, bottom 3
//	NewDimensions(1, 2, 3, 4) // top, right, bottom, left
//
// Values beyond the fourth are ignored.
func NewDimensions(top int, sides ...int) Dimensions {
	switch len(sides) {
	case 0:
		return Uniform(top)
	case 1:
		return Dimensions{Top: top, Right: sides[0], Bottom: top, Left: sides[0]}
	case 2:
		return Dimensions{Top: top, Right: sides[0], Bottom: sides[1], Left: sides[0]}
	default:
		return Dimensions{Top: top, Right: sides[0], Bottom: sides[1], Left: sides[2]}
	}
}

// Uniform returns Dimensions with v on every side.
func Uniform(v int) Dimensions {
	return Dimensions{Top: v, Right: v, Bottom: v, Left: v}
}

// ZeroDimensions returns Dimensions with every side 0.
func ZeroDimensions() Dimensions {
	return Dimensions{}
}

// Horizontal returns Left + Right.
func (d Dimensions) Horizontal() int {
	return d.Left + d.Right
}

// Vertical returns Top + Bottom.
func (d Dimensions) Vertical() int {
	return d.Top + d.Bottom
}

// Add returns the pointwise sum of d and o.
func (d Dimensions) Add(o Dimensions) Dimensions {
	return Dimensions{
		Top:    d.Top + o.Top,
		Right:  d.Right + o.Right,
		Bottom: d.Bottom + o.Bottom,
		Left:   d.Left + o.Left,
	}
}

// Scale multiplies every side by factor, rounding to the nearest integer.
func (d Dimensions) Scale(factor float64) Dimensions {
	scale := func(v int) int {
		return int(math.Round(float64(v) * factor))
	}
	return Dimensions{
		Top:    scale(d.Top),
		Right:  scale(d.Right),
		Bottom: scale(d.Bottom),
		Left:   scale(d.Left),
	}
}

// String renders d in CSS order.
func (d Dimensions) String() string {
	return fmt.Sprintf("%d %d %d %d", d.Top, d.Right, d.Bottom, d.Left)
}

// UnmarshalYAML accepts a scalar, a one to four element sequence (CSS
// shorthand) or a mapping with top/right/bottom/left keys.
func (d *Dimensions) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v int
		if err := node.Decode(&v); err != nil {
			return err
		}
		*d = Uniform(v)
		return nil
	case yaml.SequenceNode:
		var values []int
		if err := node.Decode(&values); err != nil {
			return err
		}
		if len(values) == 0 || len(values) > 4 {
			return fmt.Errorf("line %d: dimensions need 1 to 4 values, got %d", node.Line, len(values))
		}
		*d = NewDimensions(values[0], values[1:]...)
		return nil
	case yaml.MappingNode:
		var m struct {
			Top    int `yaml:"top"`
			Right  int `yaml:"right"`
			Bottom int `yaml:"bottom"`
			Left   int `yaml:"left"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		*d = Dimensions{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}
		return nil
	}
	return fmt.Errorf("line %d: cannot decode dimensions", node.Line)
}
