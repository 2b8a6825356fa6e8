package tint

import "strings"

// JoinHorizontal places blocks side by side.
//
// Every block is first made rectangular (lines right-padded to the block's
// own width) and then padded vertically to the height of the tallest block.
// pos decides where the blank lines go: Top pads below, Bottom pads above,
// and anything in between splits them using Offset. Zero blocks join to an
// empty string.
func JoinHorizontal(pos Position, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}

	columns := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	maxLines := 0
	for i, block := range blocks {
		columns[i] = Lines(block)
		widths[i] = Width(block)
		maxLines = max(maxLines, len(columns[i]))
	}

	for i, lines := range columns {
		if len(lines) == maxLines {
			continue
		}
		padded := make([]string, maxLines)
		copy(padded[Offset(pos, maxLines, len(lines)):], lines)
		columns[i] = padded
	}

	var sb strings.Builder
	for row := 0; row < maxLines; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for i, lines := range columns {
			sb.WriteString(padRight(lines[row], widths[i]))
		}
	}
	return sb.String()
}

// JoinVertical stacks blocks on top of each other.
//
// Each block is treated as a rectangle of its own width and shifted inside
// the width of the widest block according to pos. The result has exactly as
// many lines as all blocks together.
func JoinVertical(pos Position, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}

	maxWidth := 0
	widths := make([]int, len(blocks))
	for i, block := range blocks {
		widths[i] = Width(block)
		maxWidth = max(maxWidth, widths[i])
	}

	var sb strings.Builder
	for i, block := range blocks {
		left := Offset(pos, maxWidth, widths[i])
		right := maxWidth - left - widths[i]
		for j, line := range Lines(block) {
			if i > 0 || j > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(strings.Repeat(" ", left))
			sb.WriteString(padRight(line, widths[i]))
			sb.WriteString(strings.Repeat(" ", right))
		}
	}
	return sb.String()
}

// padRight pads line with spaces up to width cells.
func padRight(line string, width int) string {
	if gap := width - StringWidth(line); gap > 0 {
		return line + strings.Repeat(" ", gap)
	}
	return line
}
