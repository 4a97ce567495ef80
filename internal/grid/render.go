package grid

import (
	"fmt"
	"strings"
)

// aliveGlyph and deadGlyph are the two-character blocks used to render a
// single cell: a full block for alive, two spaces for dead.
const (
	aliveGlyph = "██"
	deadGlyph  = "  "
)

// Render draws the grid as a bordered box using box-drawing glyphs, with
// column headers above and row numbers to the left.
func (g *Grid) Render() string {
	var b strings.Builder
	border := strings.Repeat("─", 2*Size)

	b.WriteString("    ")
	for x := 0; x < Size; x++ {
		b.WriteString(pad2(x))
	}
	b.WriteString(" \n")

	b.WriteString("   ┌")
	b.WriteString(border)
	b.WriteString("┐\n")

	for y := 0; y < Size; y++ {
		b.WriteString(pad2(y))
		b.WriteString(" │")
		for x := 0; x < Size; x++ {
			if g.Get(x, y) > 0 {
				b.WriteString(aliveGlyph)
			} else {
				b.WriteString(deadGlyph)
			}
		}
		b.WriteString("│\n")
	}

	b.WriteString("   └")
	b.WriteString(border)
	b.WriteString("┘")
	return b.String()
}

func pad2(n int) string {
	return fmt.Sprintf("%2d", n)
}

// HConcat lays two multi-line renders side by side, separated by gap, one
// line at a time. Lines beyond the shorter render's line count are dropped.
func HConcat(left, right, gap string) string {
	leftLines := strings.Split(left, "\n")
	rightLines := strings.Split(right, "\n")
	n := len(leftLines)
	if len(rightLines) < n {
		n = len(rightLines)
	}
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = leftLines[i] + gap + rightLines[i]
	}
	return strings.Join(lines, "\n")
}
