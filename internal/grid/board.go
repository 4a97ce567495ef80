package grid

import (
	"bufio"
	"fmt"
	"io"
)

// ParseBoard reads a board file: one row of text per line, where a space or
// '.' is a dead cell and any other character is alive. Rows shorter than
// Size implicitly pad with dead cells; rows or files longer than Size wrap
// toroidally, matching the board's own topology.
func ParseBoard(r io.Reader) (Grid, error) {
	var g Grid
	scanner := bufio.NewScanner(r)
	y := 0
	for scanner.Scan() {
		line := scanner.Text()
		x := 0
		for _, ch := range line {
			v := Cell(1)
			if ch == ' ' || ch == '.' {
				v = 0
			}
			g.SetWrapped(x, y, v)
			x++
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return g, fmt.Errorf("grid: parse board: %w", err)
	}
	return g, nil
}
