package tree

import "github.com/germtb/tint"

// Metrics summarises the visible part of a tree.
type Metrics struct {
	TotalNodes int
	MaxDepth   int
	// Width is the widest rendered line in columns.
	Width int
	// Height is the number of rendered lines.
	Height int
}

// Metrics measures the tree as Render would draw it.
func (t Tree) Metrics() Metrics {
	var m Metrics
	t.walk(0, func(v visit) {
		m.TotalNodes++
		m.MaxDepth = max(m.MaxDepth, v.depth)
		line := t.renderLine(v, RenderOptions{SkipItemStyle: true, SkipEnumeratorStyle: true})
		m.Width = max(m.Width, tint.StringWidth(line))
	})
	m.Height = m.TotalNodes
	return m
}

// Count returns the number of nodes in the whole tree, including collapsed
// subtrees. Nodes reached through a cycle are counted once.
func (t Tree) Count() int {
	seen := map[*Node]bool{}
	var rec func(n *Node) int
	rec = func(n *Node) int {
		if n == nil || seen[n] {
			return 0
		}
		seen[n] = true
		total := 1
		for _, c := range n.Children {
			total += rec(c)
		}
		return total
	}
	return rec(t.root)
}
