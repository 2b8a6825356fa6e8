package list

import (
	"strings"

	"github.com/germtb/tint"
	"github.com/germtb/tint/enumerator"
)

// RenderOptions tunes rendering. The zero value renders with styles and
// escape sequences, no base indent, unlimited depth and hidden lists
// skipped.
type RenderOptions struct {
	// StripAnsi removes all escape sequences from the output.
	StripAnsi bool
	// BaseIndent shifts every non-blank line right by this many spaces.
	BaseIndent int
	// MaxDepth limits how many levels are rendered; 0 means unlimited and
	// 1 renders only the top level.
	MaxDepth int
	// SkipItemStyle renders item text without the item style.
	SkipItemStyle bool
	// SkipEnumeratorStyle renders markers without the enumerator style.
	SkipEnumeratorStyle bool
	// RenderHidden renders lists marked hidden.
	RenderHidden bool
}

// block is the rendered form of one list: the single source for the
// terminal, HTML and Markdown views.
type block struct {
	ordered bool
	spacing int
	entries []entry
}

// entry is a rendered text item or a nested list.
type entry struct {
	text   string
	marker string
	lines  []string
	sub    *block
}

// Render renders the list with default options.
func (l List) Render() string {
	return l.RenderWith(RenderOptions{})
}

// RenderWith renders the list with opts.
func (l List) RenderWith(opts RenderOptions) string {
	return strings.Join(l.RenderToLinesWith(opts), "\n")
}

// RenderToLines renders the list with default options, one string per line.
func (l List) RenderToLines() []string {
	return l.RenderToLinesWith(RenderOptions{})
}

// RenderToLinesWith renders the list with opts, one string per line.
func (l List) RenderToLinesWith(opts RenderOptions) []string {
	b := l.build(0, "", opts)
	if b == nil {
		return []string{}
	}
	lines := b.terminalLines()

	pad := strings.Repeat(" ", max(0, opts.BaseIndent))
	for i, line := range lines {
		if opts.StripAnsi {
			line = tint.StripAnsi(line)
		}
		if line != "" {
			line = pad + line
		}
		lines[i] = line
	}
	return lines
}

func (l List) build(depth int, indent string, opts RenderOptions) *block {
	if l.hidden && !opts.RenderHidden {
		return nil
	}

	b := &block{
		ordered: l.showEnumerators && enumerator.IsOrdered(l.enumerator),
		spacing: l.spacing,
	}
	childIndent := indent + strings.Repeat(l.indentString, l.indentLevel)

	ordinal := 0
	for _, item := range l.items {
		switch item.kind {
		case TextKind:
			b.entries = append(b.entries, l.renderText(item.text, ordinal, depth, indent, opts))
			ordinal++
		case ListKind:
			if opts.MaxDepth > 0 && depth+1 >= opts.MaxDepth {
				continue
			}
			if sub := item.list.build(depth+1, childIndent, opts); sub != nil {
				b.entries = append(b.entries, entry{sub: sub})
			}
		}
	}
	return b
}

func (l List) renderText(text string, ordinal, depth int, indent string, opts RenderOptions) entry {
	e := entry{text: text}

	prefix := ""
	if l.showEnumerators && l.enumerator != nil {
		e.marker = l.enumerator(ordinal, depth)
	}
	if e.marker != "" {
		styled := e.marker
		if !opts.SkipEnumeratorStyle {
			styled = l.enumeratorStyle.Apply(styled)
		}
		prefix = styled + strings.Repeat(" ", l.enumeratorSpacing)
	}
	hanging := strings.Repeat(" ", tint.StringWidth(prefix))

	for i, line := range tint.WrapText(text, l.maxWidth) {
		if !opts.SkipItemStyle {
			line = l.itemStyle.Apply(line)
		}
		if i == 0 {
			e.lines = append(e.lines, indent+prefix+line)
		} else {
			e.lines = append(e.lines, indent+hanging+line)
		}
	}
	return e
}

// terminalLines flattens the block. Spacing separates text items; a nested
// list stays attached to the item before it.
func (b *block) terminalLines() []string {
	lines := []string{}
	for _, e := range b.entries {
		if e.sub != nil {
			lines = append(lines, e.sub.terminalLines()...)
			continue
		}
		if len(lines) > 0 {
			for range b.spacing {
				lines = append(lines, "")
			}
		}
		lines = append(lines, e.lines...)
	}
	return lines
}
