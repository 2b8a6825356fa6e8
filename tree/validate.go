package tree

import (
	"fmt"
	"strings"
)

// Validation thresholds.
const (
	MaxDepthLimit      = 100
	DepthWarningLimit  = 50
	NodeWarningLimit   = 1000
	IndentWarningLimit = 10
)

// ValidationResult lists structural problems found in a tree. Errors make a
// tree invalid; warnings do not.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Validate checks the tree's nodes and configuration.
func (t Tree) Validate() ValidationResult {
	r := Validate(t.root)
	if t.indentSize > IndentWarningLimit {
		r.Warnings = append(r.Warnings, fmt.Sprintf("indent size %d is larger than %d", t.indentSize, IndentWarningLimit))
	}
	return r
}

// Validate checks the nodes reachable from root. It reports empty values,
// nil children, circular references and excessive depth as errors, and
// deep trees, large trees and shared subtrees as warnings. Each node is
// inspected once, so cyclic input terminates.
func Validate(root *Node) ValidationResult {
	v := validation{onPath: map[*Node]bool{}, visited: map[*Node]bool{}}
	if root != nil {
		v.node(root, 0, nil)
	}

	if v.maxDepth > DepthWarningLimit && !v.tooDeep {
		v.warn("tree depth %d is larger than %d", v.maxDepth, DepthWarningLimit)
	}
	if v.count > NodeWarningLimit {
		v.warn("tree has %d nodes, more than %d", v.count, NodeWarningLimit)
	}
	v.result.Valid = len(v.result.Errors) == 0
	return v.result
}

type validation struct {
	result   ValidationResult
	onPath   map[*Node]bool
	visited  map[*Node]bool
	count    int
	maxDepth int
	tooDeep  bool
}

func (v *validation) node(n *Node, depth int, path Path) {
	if n == nil {
		v.fail("nil node at %s", path)
		return
	}
	if v.onPath[n] {
		v.fail("circular reference at %s: node %q is its own ancestor", path, n.Value)
		return
	}
	if v.visited[n] {
		v.warn("node %q at %s appears more than once", n.Value, path)
		return
	}
	if depth > MaxDepthLimit {
		if !v.tooDeep {
			v.fail("tree is deeper than %d levels at %s", MaxDepthLimit, path)
			v.tooDeep = true
		}
		return
	}

	v.visited[n] = true
	v.count++
	v.maxDepth = max(v.maxDepth, depth)
	if strings.TrimSpace(n.Value) == "" {
		v.fail("empty value at %s", path)
	}

	v.onPath[n] = true
	for i, c := range n.Children {
		v.node(c, depth+1, append(path[:len(path):len(path)], i))
	}
	delete(v.onPath, n)
}

func (v *validation) fail(format string, args ...any) {
	v.result.Errors = append(v.result.Errors, fmt.Sprintf(format, args...))
}

func (v *validation) warn(format string, args ...any) {
	v.result.Warnings = append(v.result.Warnings, fmt.Sprintf(format, args...))
}
