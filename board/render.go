package board

import (
	"strings"
	"unicode/utf8"
)

// String renders a full board one row per line, tiles right-aligned to
// the widest tile. A 2×2 board of "a", "b", "qu", "d" renders as:
//
//	|  a |  b |
//	| qu |  d |
//
// A board that is not full renders as the empty string.
func (b *Board) String() string {
	if !b.IsFull() {
		return ""
	}
	width := 1
	for _, t := range b.tiles {
		if n := utf8.RuneCountInString(t); n > width {
			width = n
		}
	}

	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		sb.WriteString(" |")
		for c := 0; c < b.columns; c++ {
			t := b.tiles[b.Index(r, c)]
			sb.WriteByte(' ')
			sb.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(t)))
			sb.WriteString(t)
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
