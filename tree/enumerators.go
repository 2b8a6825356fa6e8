package tree

import (
	"maps"
	"slices"
)

// Lines draws box connectors: "├── " for inner siblings, "└── " for the
// last. The root gets no connector.
func Lines(_ *Node, depth int, isLast, _ bool) string {
	return connector(depth, isLast, "├── ", "└── ")
}

// Rounded is Lines with a rounded corner on the last sibling.
func Rounded(_ *Node, depth int, isLast, _ bool) string {
	return connector(depth, isLast, "├── ", "╰── ")
}

// ASCII draws connectors using only ASCII characters.
func ASCII(_ *Node, depth int, isLast, _ bool) string {
	return connector(depth, isLast, "|-- ", "`-- ")
}

// Bullet marks every non-root node with "• ".
func Bullet(_ *Node, depth int, _, _ bool) string {
	if depth == 0 {
		return ""
	}
	return "• "
}

// Disclosure marks nodes with children by their expand state, "▾ " when
// expanded and "▸ " when collapsed. Leaves are indented to match.
func Disclosure(node *Node, _ int, _, hasChildren bool) string {
	switch {
	case !hasChildren:
		return "  "
	case node.Expanded:
		return "▾ "
	default:
		return "▸ "
	}
}

// NoEnumerator draws nothing.
func NoEnumerator(*Node, int, bool, bool) string { return "" }

func connector(depth int, isLast bool, inner, last string) string {
	if depth == 0 {
		return ""
	}
	if isLast {
		return last
	}
	return inner
}

var enumerators = map[string]Enumerator{
	"lines":      Lines,
	"rounded":    Rounded,
	"ascii":      ASCII,
	"bullet":     Bullet,
	"disclosure": Disclosure,
	"none":       NoEnumerator,
}

// LookupEnumerator returns the enumerator registered under name.
func LookupEnumerator(name string) (Enumerator, bool) {
	fn, ok := enumerators[name]
	return fn, ok
}

// EnumeratorNames returns the registered enumerator names, sorted.
func EnumeratorNames() []string {
	return slices.Sorted(maps.Keys(enumerators))
}
