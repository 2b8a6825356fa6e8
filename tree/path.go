package tree

import (
	"slices"

	"github.com/germtb/tint"
)

// NodeAt returns the node at path, ignoring expand state.
func (t Tree) NodeAt(path Path) (*Node, bool) {
	n := t.root
	for _, i := range path {
		if n == nil || i < 0 || i >= len(n.Children) {
			return nil, false
		}
		n = n.Children[i]
	}
	return n, n != nil
}

// AddChildAt appends a leaf with value under the node at path.
func (t Tree) AddChildAt(path Path, value string) Tree {
	return t.update("add child", path, func(n *Node) (*Node, bool) {
		c := n.clone()
		c.Children = append(c.Children, Leaf(value))
		return c, true
	})
}

// RemoveAt removes the node at path and its subtree. Removing the root
// empties the tree.
func (t Tree) RemoveAt(path Path) Tree {
	if len(path) == 0 {
		t.root = nil
		return t
	}
	parent, idx := path[:len(path)-1], path[len(path)-1]
	return t.update("remove", parent, func(n *Node) (*Node, bool) {
		if idx < 0 || idx >= len(n.Children) {
			return nil, false
		}
		c := n.clone()
		c.Children = slices.Delete(c.Children, idx, idx+1)
		return c, true
	})
}

// ExpandAt marks the node at path expanded.
func (t Tree) ExpandAt(path Path) Tree {
	return t.setExpanded("expand", path, func(bool) bool { return true })
}

// CollapseAt marks the node at path collapsed.
func (t Tree) CollapseAt(path Path) Tree {
	return t.setExpanded("collapse", path, func(bool) bool { return false })
}

// ToggleAt flips the expand state of the node at path.
func (t Tree) ToggleAt(path Path) Tree {
	return t.setExpanded("toggle", path, func(cur bool) bool { return !cur })
}

func (t Tree) setExpanded(op string, path Path, fn func(bool) bool) Tree {
	return t.update(op, path, func(n *Node) (*Node, bool) {
		c := n.clone()
		c.Expanded = fn(n.Expanded)
		return c, true
	})
}

// update replaces the node at path with fn's result, copying every node
// between it and the root. An unknown path leaves the tree unchanged.
func (t Tree) update(op string, path Path, fn func(*Node) (*Node, bool)) Tree {
	if t.root == nil {
		tint.Logger().Debug().Str("op", op).Msg("path operation on empty tree")
		return t
	}
	root, ok := updateNode(t.root, path, fn)
	if !ok {
		tint.Logger().Debug().
			Str("op", op).
			Str("path", path.String()).
			Msg("path does not exist")
		return t
	}
	t.root = root
	return t
}

func updateNode(n *Node, path Path, fn func(*Node) (*Node, bool)) (*Node, bool) {
	if len(path) == 0 {
		return fn(n)
	}
	i := path[0]
	if i < 0 || i >= len(n.Children) || n.Children[i] == nil {
		return nil, false
	}
	child, ok := updateNode(n.Children[i], path[1:], fn)
	if !ok {
		return nil, false
	}
	c := n.clone()
	c.Children[i] = child
	return c, true
}
