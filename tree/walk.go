package tree

import (
	"slices"

	"github.com/germtb/tint"
)

// WalkFunc is called for every visible node. The path is a fresh copy and
// may be retained.
type WalkFunc func(node *Node, depth int, path Path)

// visit describes a node reached during a walk.
type visit struct {
	node   *Node
	depth  int
	path   Path
	isLast bool
	// lasts holds isLast for each ancestor below the root, outermost first.
	lasts []bool
	// markers holds the enumerator text drawn for each of those ancestors.
	markers []string
}

// Walk visits visible nodes depth first. A node's children are visible when
// the node is expanded or the tree has ExpandAll set. A node that is already
// one of its own ancestors is skipped, so cyclic input terminates.
func (t Tree) Walk(fn WalkFunc) {
	t.walk(0, func(v visit) {
		fn(v.node, v.depth, slices.Clone(v.path))
	})
}

// walk visits nodes down to maxDepth levels; 0 means unlimited.
func (t Tree) walk(maxDepth int, fn func(visit)) {
	if t.root == nil {
		return
	}
	onPath := map[*Node]bool{}

	var rec func(v visit)
	rec = func(v visit) {
		n := v.node
		if onPath[n] {
			tint.Logger().Debug().
				Str("path", v.path.String()).
				Str("value", n.Value).
				Msg("skipping circular reference")
			return
		}
		fn(v)

		if maxDepth > 0 && v.depth+1 >= maxDepth {
			return
		}
		if !n.Expanded && !t.expandAll {
			return
		}

		onPath[n] = true
		defer delete(onPath, n)

		lasts, markers := v.lasts, v.markers
		if v.depth > 0 {
			lasts = append(slices.Clip(lasts), v.isLast)
			markers = append(slices.Clip(markers), t.enumerator(n, v.depth, v.isLast, n.HasChildren()))
		}
		last := lastVisible(n.Children)
		for i, child := range n.Children {
			if child == nil {
				continue
			}
			rec(visit{
				node:    child,
				depth:   v.depth + 1,
				path:    append(slices.Clip(v.path), i),
				isLast:  i == last,
				lasts:   lasts,
				markers: markers,
			})
		}
	}
	rec(visit{node: t.root, isLast: true})
}

// lastVisible returns the index of the last non-nil child, or -1.
func lastVisible(children []*Node) int {
	for i := len(children) - 1; i >= 0; i-- {
		if children[i] != nil {
			return i
		}
	}
	return -1
}
