package guess

import (
	"fmt"
	"strings"

	"undeath/internal/grid"
)

const (
	aliveGlyph   = "██"
	deadGlyph    = "  "
	unknownGlyph = "▒▒"
)

// Render draws the Guess as a bordered box with the same column/row
// labelling as a Grid, but with three states per cell: alive, dead, and
// unknown (cells decided neither way yet).
func (g *Guess) Render() string {
	var b strings.Builder
	border := strings.Repeat("─", 2*grid.Size)

	b.WriteString("    ")
	for x := 0; x < grid.Size; x++ {
		fmt.Fprintf(&b, "%2d", x)
	}
	b.WriteString(" \n")

	b.WriteString("   ┌")
	b.WriteString(border)
	b.WriteString("┐\n")

	for y := 0; y < grid.Size; y++ {
		fmt.Fprintf(&b, "%2d │", y)
		for x := 0; x < grid.Size; x++ {
			switch {
			case g.alive.Get(x, y) > 0:
				b.WriteString(aliveGlyph)
			case g.dead.Get(x, y) > 0:
				b.WriteString(deadGlyph)
			default:
				b.WriteString(unknownGlyph)
			}
		}
		b.WriteString("│\n")
	}

	b.WriteString("   └")
	b.WriteString(border)
	b.WriteString("┘")
	return b.String()
}
