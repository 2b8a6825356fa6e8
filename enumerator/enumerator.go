// Package enumerator provides the marker functions used by lists: bullets,
// numerals, letters, roman numerals and combinators over them.
//
// An enumerator is a pure function of the item index and nesting depth. It
// keeps no state, so the same Func can be shared by any number of lists.
package enumerator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/germtb/tint"
)

// Func maps a zero-based item index and a zero-based depth to a marker.
type Func func(index, depth int) string

// constant returns a Func that ignores index and depth.
func constant(symbol string) Func {
	return func(int, int) string { return symbol }
}

var (
	Bullet   = constant("•")
	Dash     = constant("-")
	Asterisk = constant("*")
	Plus     = constant("+")
	Arrow    = constant("→")
	Triangle = constant("▸")
	Diamond  = constant("◆")
	Square   = constant("■")
	Circle   = constant("●")
	None     = constant("")
)

// Arabic numbers items "1.", "2.", ...
func Arabic(index, _ int) string {
	return strconv.Itoa(index+1) + "."
}

// ArabicParen numbers items "1)", "2)", ...
func ArabicParen(index, _ int) string {
	return strconv.Itoa(index+1) + ")"
}

// ArabicParens numbers items "(1)", "(2)", ...
func ArabicParens(index, _ int) string {
	return "(" + strconv.Itoa(index+1) + ")"
}

// AlphaLower letters items "a." to "z.", then starts over.
func AlphaLower(index, _ int) string {
	return string(rune('a'+mod(index, 26))) + "."
}

// AlphaUpper letters items "A." to "Z.", then starts over.
func AlphaUpper(index, _ int) string {
	return string(rune('A'+mod(index, 26))) + "."
}

// RomanLower numbers items "i.", "ii.", ...
func RomanLower(index, _ int) string {
	return strings.ToLower(Roman(index+1)) + "."
}

// RomanUpper numbers items "I.", "II.", ...
func RomanUpper(index, _ int) string {
	return Roman(index+1) + "."
}

// Custom numbers items as prefix + (index+1) + suffix.
func Custom(prefix, suffix string) Func {
	return func(index, _ int) string {
		return prefix + strconv.Itoa(index+1) + suffix
	}
}

// Cycle returns a Func that repeats symbols by index. It fails immediately
// when symbols is empty.
func Cycle(symbols ...string) (Func, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("cycle: %w", tint.ErrEmptyInput)
	}
	own := append([]string(nil), symbols...)
	return func(index, _ int) string {
		return own[mod(index, len(own))]
	}, nil
}

// DepthAware returns a Func that delegates to fns[depth mod len(fns)], so
// each nesting level gets its own marker. It fails immediately when fns is
// empty.
func DepthAware(fns ...Func) (Func, error) {
	if len(fns) == 0 {
		return nil, fmt.Errorf("depth aware: %w", tint.ErrEmptyInput)
	}
	own := append([]Func(nil), fns...)
	return func(index, depth int) string {
		return own[mod(depth, len(own))](index, depth)
	}, nil
}

var orderedMarker = regexp.MustCompile(`^\(?[0-9A-Za-z]+[.)]$`)

// IsOrdered reports whether fn numbers its items, judged from the marker it
// produces for the first item.
func IsOrdered(fn Func) bool {
	if fn == nil {
		return false
	}
	return orderedMarker.MatchString(fn(0, 0))
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
