package tint

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// WrapText wraps text to fit within maxWidth cells.
//
// Existing newlines are kept. Words are packed greedily, separated by a
// single space; a word wider than maxWidth is split into maxWidth-wide
// chunks at grapheme boundaries. Escape sequences never count toward the
// width and are never split. A maxWidth of 0 or less disables wrapping.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return Lines(text)
	}

	var out []string
	for _, para := range Lines(text) {
		if StringWidth(para) <= maxWidth {
			out = append(out, para)
			continue
		}
		out = append(out, wrapParagraph(para, maxWidth)...)
	}
	return out
}

func wrapParagraph(para string, maxWidth int) []string {
	var lines []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
	}

	for _, word := range strings.Fields(para) {
		w := StringWidth(word)

		if w > maxWidth {
			if cur.Len() > 0 {
				flush()
			}
			chunks := HardSplit(word, maxWidth)
			lines = append(lines, chunks[:len(chunks)-1]...)
			last := chunks[len(chunks)-1]
			cur.WriteString(last)
			curWidth = StringWidth(last)
			continue
		}

		if cur.Len() == 0 {
			cur.WriteString(word)
			curWidth = w
			continue
		}
		if curWidth+1+w <= maxWidth {
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + w
			continue
		}
		flush()
		cur.WriteString(word)
		curWidth = w
	}

	if cur.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// HardSplit cuts s into chunks no wider than width cells. A single grapheme
// wider than width gets a chunk of its own. Always returns at least one
// chunk.
func HardSplit(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	var chunks []string
	var cur strings.Builder
	curWidth := 0

	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			end := escapeEnd(s, i)
			cur.WriteString(s[i:end])
			i = end
			continue
		}

		next := strings.IndexByte(s[i:], '\x1b')
		if next < 0 {
			next = len(s)
		} else {
			next += i
		}

		seg := graphemes.FromString(s[i:next])
		for seg.Next() {
			g := seg.Value()
			gw := widthCondition.StringWidth(g)
			if curWidth > 0 && curWidth+gw > width {
				chunks = append(chunks, cur.String())
				cur.Reset()
				curWidth = 0
			}
			cur.WriteString(g)
			curWidth += gw
		}
		i = next
	}

	if cur.Len() > 0 || len(chunks) == 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
