// Package tree renders hierarchical node trees with connector lines and
// per-node expand/collapse state.
//
// Trees are persistent: a Tree and the Nodes reachable from it are never
// modified after construction. Path-addressed operations such as AddChildAt
// copy the nodes along the path and share every untouched subtree with the
// original.
package tree

import (
	"slices"
	"strconv"
	"strings"

	"github.com/germtb/tint"
)

// Limits and defaults for the indent size.
const (
	MaxIndentSize     = 20
	DefaultIndentSize = 2
)

// Node is a single tree node. Children are owned by their parent; a node
// must not appear twice in the same tree. Nodes are treated as immutable
// once they are part of a Tree.
type Node struct {
	Value    string
	Children []*Node
	// Style overrides the tree's item style for this node's value.
	Style    tint.StyleFunc
	Expanded bool
}

// NewNode returns an expanded node with the given children.
func NewNode(value string, children ...*Node) *Node {
	return &Node{Value: value, Children: children, Expanded: true}
}

// Leaf returns an expanded node without children.
func Leaf(value string) *Node {
	return &Node{Value: value, Expanded: true}
}

// HasChildren reports whether the node has any children, visible or not.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

func (n *Node) clone() *Node {
	c := *n
	c.Children = slices.Clone(n.Children)
	return &c
}

// Path locates a node by child indices, starting at the root. The empty
// path is the root itself.
type Path []int

// String renders the path as "root/0/2".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("root")
	for _, i := range p {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

// Enumerator draws the marker in front of a node's value. It receives the
// node, its depth (root is 0), whether it is the last of its siblings and
// whether it has children.
type Enumerator func(node *Node, depth int, isLast, hasChildren bool) string

// Tree is an immutable tree configuration.
type Tree struct {
	root            *Node
	enumerator      Enumerator
	itemStyle       tint.StyleFunc
	enumeratorStyle tint.StyleFunc
	indentSize      int
	showLines       bool
	expandAll       bool
}

// New returns a tree drawn with Lines connectors.
func New(root *Node) Tree {
	return Tree{
		root:       root,
		enumerator: Lines,
		indentSize: DefaultIndentSize,
		showLines:  true,
	}
}

// Empty returns a tree without a root.
func Empty() Tree {
	return New(nil)
}

// Root returns the root node, or nil for an empty tree.
func (t Tree) Root() *Node { return t.root }

// IsEmpty reports whether the tree has no root.
func (t Tree) IsEmpty() bool { return t.root == nil }

// Enumerator returns the marker function.
func (t Tree) Enumerator() Enumerator { return t.enumerator }

// IndentSize returns the indentation per depth level.
func (t Tree) IndentSize() int { return t.indentSize }

// ShowLines reports whether ancestor connector lines are drawn.
func (t Tree) ShowLines() bool { return t.showLines }

// ExpandAll reports whether collapsed nodes are rendered expanded.
func (t Tree) ExpandAll() bool { return t.expandAll }

// WithRoot replaces the root node.
func (t Tree) WithRoot(root *Node) Tree {
	t.root = root
	return t
}

// WithEnumerator sets the marker function. A nil fn draws no markers.
func (t Tree) WithEnumerator(fn Enumerator) Tree {
	if fn == nil {
		fn = NoEnumerator
	}
	t.enumerator = fn
	return t
}

// WithItemStyle sets the style applied to node values.
func (t Tree) WithItemStyle(fn tint.StyleFunc) Tree {
	t.itemStyle = fn
	return t
}

// WithEnumeratorStyle sets the style applied to markers and connectors.
func (t Tree) WithEnumeratorStyle(fn tint.StyleFunc) Tree {
	t.enumeratorStyle = fn
	return t
}

// WithLines enables or disables ancestor connector lines.
func (t Tree) WithLines(show bool) Tree {
	t.showLines = show
	return t
}

// WithExpandAll renders every node expanded regardless of its own flag.
func (t Tree) WithExpandAll(expand bool) Tree {
	t.expandAll = expand
	return t
}

// WithIndentSize sets the indentation per level, within [0, MaxIndentSize].
func (t Tree) WithIndentSize(size int) (Tree, error) {
	if err := tint.CheckRange("indent size", size, 0, MaxIndentSize); err != nil {
		return t, err
	}
	t.indentSize = size
	return t, nil
}
