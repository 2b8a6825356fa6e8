package list

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/germtb/tint"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML renders the list as nested <ul>/<ol> elements. Ordered lists
// are detected from the enumerator; text is entity-escaped and stripped of
// escape sequences.
func (l List) RenderHTML() (string, error) {
	b := l.build(0, "", RenderOptions{SkipItemStyle: true, SkipEnumeratorStyle: true})
	if b == nil || len(b.entries) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, b.htmlNode()); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

func (b *block) htmlNode() *html.Node {
	list := element(atom.Ul)
	if b.ordered {
		list = element(atom.Ol)
	}

	var last *html.Node
	for _, e := range b.entries {
		if e.sub != nil {
			if len(e.sub.entries) == 0 {
				continue
			}
			if last == nil {
				last = element(atom.Li)
				list.AppendChild(last)
			}
			last.AppendChild(e.sub.htmlNode())
			continue
		}
		last = element(atom.Li)
		last.AppendChild(&html.Node{Type: html.TextNode, Data: tint.StripAnsi(e.text)})
		list.AppendChild(last)
	}
	return list
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// RenderMarkdown renders the list as Markdown. Ordered lists use "1.",
// "2.", ... and all others use "-". Nested lists are indented to the
// content column of their parent item.
func (l List) RenderMarkdown() string {
	b := l.build(0, "", RenderOptions{SkipItemStyle: true, SkipEnumeratorStyle: true})
	if b == nil {
		return ""
	}
	return strings.Join(b.markdownLines(""), "\n")
}

func (b *block) markdownLines(indent string) []string {
	var lines []string
	childIndent := indent + "  "
	n := 0
	for _, e := range b.entries {
		if e.sub != nil {
			lines = append(lines, e.sub.markdownLines(childIndent)...)
			continue
		}
		marker := "-"
		if b.ordered {
			n++
			marker = strconv.Itoa(n) + "."
		}
		text := strings.Join(strings.Fields(tint.StripAnsi(e.text)), " ")
		lines = append(lines, indent+marker+" "+text)
		childIndent = indent + strings.Repeat(" ", len(marker)+1)
	}
	return lines
}

// RenderBordered renders the list inside a border with padding.
func (l List) RenderBordered(border tint.BorderStyle, padding tint.Dimensions) (string, error) {
	return tint.Frame(l.Render(), border, padding, nil)
}

// RenderNumbered renders the list with right-aligned line numbers in a
// gutter.
func (l List) RenderNumbered() string {
	lines := l.RenderToLines()
	digits := len(strconv.Itoa(len(lines)))
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%*d │ %s", digits, i+1, line)
	}
	return strings.Join(lines, "\n")
}
