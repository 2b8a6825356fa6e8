package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germtb/tint"
)

func sample() *Node {
	return NewNode("R",
		NewNode("A", Leaf("A1"), Leaf("A2")),
		NewNode("B", Leaf("B1")),
	)
}

func TestRenderTwoChildren(t *testing.T) {
	tr := New(NewNode("R", Leaf("A"), Leaf("B")))
	lines := tr.RenderToLines()
	require.Len(t, lines, 3)
	assert.Equal(t, "R", lines[0])
	assert.Equal(t, "├── A", lines[1])
	assert.Equal(t, "└── B", lines[2])
}

func TestRenderConnectors(t *testing.T) {
	want := "R\n" +
		"├── A\n" +
		"│   ├── A1\n" +
		"│   └── A2\n" +
		"└── B\n" +
		"    └── B1"
	assert.Equal(t, want, New(sample()).Render())
}

func TestRenderEnumerators(t *testing.T) {
	tests := []struct {
		name string
		enum Enumerator
		want string
	}{
		{"rounded", Rounded, "R\n├── A\n│   ├── A1\n│   ╰── A2\n╰── B\n    ╰── B1"},
		{"ascii", ASCII, "R\n|-- A\n│   |-- A1\n│   `-- A2\n`-- B\n    `-- B1"},
		{"bullet", Bullet, "R\n• A\n│ • A1\n│ • A2\n• B\n  • B1"},
		{"none", nil, "R\nA\n│ A1\n│ A2\nB\n  B1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(sample()).WithEnumerator(tt.enum).Render())
		})
	}
}

func TestRenderWithoutLines(t *testing.T) {
	tr := New(sample()).WithLines(false).WithEnumerator(Bullet)
	tr, err := tr.WithIndentSize(3)
	require.NoError(t, err)
	want := "R\n   • A\n      • A1\n      • A2\n   • B\n      • B1"
	assert.Equal(t, want, tr.Render())
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Empty().Render())
	assert.Equal(t, []string{}, Empty().RenderToLines())
	assert.True(t, Empty().IsEmpty())
}

func TestVisibility(t *testing.T) {
	child := NewNode("child", Leaf("grandchild"))
	child.Expanded = false
	tr := New(NewNode("root", child))

	var visited []string
	tr.Walk(func(n *Node, _ int, _ Path) { visited = append(visited, n.Value) })
	assert.Equal(t, []string{"root", "child"}, visited)
	assert.Len(t, tr.RenderToLines(), 2)

	visited = nil
	tr.WithExpandAll(true).Walk(func(n *Node, _ int, _ Path) { visited = append(visited, n.Value) })
	assert.Equal(t, []string{"root", "child", "grandchild"}, visited)
	assert.Len(t, tr.WithExpandAll(true).RenderToLines(), 3)
	assert.False(t, child.Expanded, "expandAll never mutates nodes")
}

func TestWalkPaths(t *testing.T) {
	var paths []string
	var depths []int
	New(sample()).Walk(func(_ *Node, depth int, path Path) {
		paths = append(paths, path.String())
		depths = append(depths, depth)
	})
	assert.Equal(t, []string{"root", "root/0", "root/0/0", "root/0/1", "root/1", "root/1/0"}, paths)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2}, depths)
}

func TestRenderSkipsTrailingNilChildren(t *testing.T) {
	root := NewNode("R",
		NewNode("A", Leaf("A1"), nil),
		NewNode("B", Leaf("B1")),
		nil,
	)
	want := "R\n" +
		"├── A\n" +
		"│   └── A1\n" +
		"└── B\n" +
		"    └── B1"
	assert.Equal(t, want, New(root).Render())
}

func TestRenderSurvivesCycle(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b", a)
	a.Children = []*Node{b}

	lines := New(a).RenderToLines()
	assert.Equal(t, []string{"a", "└── b"}, lines)
}

func TestRenderStyles(t *testing.T) {
	red := tint.Style{Color: tint.ColorRed}.Func()
	blue := tint.Style{Color: tint.ColorBlue}.Func()

	root := NewNode("R", Leaf("A"))
	root.Children[0].Style = blue
	tr := New(root).WithItemStyle(red).WithEnumeratorStyle(red)

	lines := tr.RenderToLines()
	assert.Equal(t, "\x1b[31mR\x1b[0m", lines[0])
	assert.Equal(t, "\x1b[31m└── \x1b[0m\x1b[34mA\x1b[0m", lines[1])

	plain := tr.RenderWith(RenderOptions{StripAnsi: true})
	assert.Equal(t, "R\n└── A", plain)

	unstyled := tr.RenderWith(RenderOptions{SkipItemStyle: true, SkipEnumeratorStyle: true})
	assert.Equal(t, "R\n└── A", unstyled)
}

func TestRenderMaxDepth(t *testing.T) {
	tr := New(sample())
	assert.Equal(t, "R", tr.RenderWith(RenderOptions{MaxDepth: 1}))
	assert.Equal(t, "R\n├── A\n└── B", tr.RenderWith(RenderOptions{MaxDepth: 2}))
}

func TestWithIndentSize(t *testing.T) {
	tr := New(sample())
	_, err := tr.WithIndentSize(MaxIndentSize + 1)
	var rangeErr *tint.RangeError
	require.ErrorAs(t, err, &rangeErr)
	_, err = tr.WithIndentSize(-1)
	require.ErrorAs(t, err, &rangeErr)

	wide, err := tr.WithIndentSize(6)
	require.NoError(t, err)
	assert.Equal(t, "│     └── A2", wide.RenderToLines()[3])
	assert.Equal(t, DefaultIndentSize, tr.IndentSize())
}

func TestMetrics(t *testing.T) {
	m := New(sample()).Metrics()
	assert.Equal(t, Metrics{TotalNodes: 6, MaxDepth: 2, Width: 10, Height: 6}, m)

	collapsed := New(sample()).CollapseAt(Path{0})
	assert.Equal(t, 4, collapsed.Metrics().TotalNodes)
	assert.Equal(t, 6, collapsed.Count())

	assert.Equal(t, Metrics{}, Empty().Metrics())
}

func TestEnumeratorRegistry(t *testing.T) {
	fn, ok := LookupEnumerator("rounded")
	require.True(t, ok)
	assert.Equal(t, "╰── ", fn(Leaf("x"), 1, true, false))

	_, ok = LookupEnumerator("zigzag")
	assert.False(t, ok)
	assert.IsIncreasing(t, EnumeratorNames())
}

func TestDisclosure(t *testing.T) {
	root := NewNode("R", NewNode("open", Leaf("x")), Leaf("leaf"))
	tr := New(root).WithEnumerator(Disclosure).WithLines(false)
	tr = tr.CollapseAt(Path{0})
	assert.Equal(t, "▾ R\n  ▸ open\n    leaf", tr.Render())
}
