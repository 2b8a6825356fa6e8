package tree

import (
	"strings"

	"github.com/germtb/tint"
)

// RenderOptions tunes rendering. The zero value renders every visible node
// with styles.
type RenderOptions struct {
	// StripAnsi removes all escape sequences from the output.
	StripAnsi bool
	// MaxDepth limits how many levels are rendered; 0 means unlimited and 1
	// renders only the root.
	MaxDepth int
	// SkipItemStyle renders values without item or node styles.
	SkipItemStyle bool
	// SkipEnumeratorStyle renders markers and connectors unstyled.
	SkipEnumeratorStyle bool
}

// Render renders the tree with default options.
func (t Tree) Render() string {
	return t.RenderWith(RenderOptions{})
}

// RenderWith renders the tree with opts.
func (t Tree) RenderWith(opts RenderOptions) string {
	return strings.Join(t.RenderToLinesWith(opts), "\n")
}

// RenderToLines renders the tree with default options, one line per node.
func (t Tree) RenderToLines() []string {
	return t.RenderToLinesWith(RenderOptions{})
}

// RenderToLinesWith renders the tree with opts, one line per visible node.
// An empty tree renders no lines.
func (t Tree) RenderToLinesWith(opts RenderOptions) []string {
	lines := []string{}
	t.walk(opts.MaxDepth, func(v visit) {
		line := t.renderLine(v, opts)
		if opts.StripAnsi {
			line = tint.StripAnsi(line)
		}
		lines = append(lines, line)
	})
	return lines
}

func (t Tree) renderLine(v visit, opts RenderOptions) string {
	enumStyle := t.enumeratorStyle
	if opts.SkipEnumeratorStyle {
		enumStyle = nil
	}

	var sb strings.Builder
	sb.WriteString(t.prefix(v, enumStyle))

	if marker := t.enumerator(v.node, v.depth, v.isLast, v.node.HasChildren()); marker != "" {
		sb.WriteString(enumStyle.Apply(marker))
	}

	value := v.node.Value
	if !opts.SkipItemStyle {
		if v.node.Style != nil {
			value = v.node.Style.Apply(value)
		} else {
			value = t.itemStyle.Apply(value)
		}
	}
	sb.WriteString(value)
	return sb.String()
}

// prefix draws the columns contributed by ancestors below the root. With
// lines on, each column is "│" under an ancestor that has later siblings and
// blank otherwise, padded to the wider of the indent size and the
// ancestor's own marker.
func (t Tree) prefix(v visit, style tint.StyleFunc) string {
	if !t.showLines {
		return strings.Repeat(" ", t.indentSize*v.depth)
	}

	var sb strings.Builder
	for i, last := range v.lasts {
		w := max(t.indentSize, tint.StringWidth(v.markers[i]))
		if w == 0 {
			continue
		}
		if last {
			sb.WriteString(strings.Repeat(" ", w))
			continue
		}
		sb.WriteString(style.Apply("│"))
		sb.WriteString(strings.Repeat(" ", w-1))
	}
	return sb.String()
}
