// Package viewer reads the text snapshots the undeath chain driver persists
// to a run directory and plays them back as an animated grid.
package viewer

import (
	"bufio"
	"fmt"
	"strings"
)

// Frame is one rendered grid, decoded from its box-drawing text form back
// into a flat row-major cell buffer.
type Frame struct {
	W, H  int
	Cells []uint8
}

const (
	aliveGlyph = "██"
	deadGlyph  = "  "
	borderCh   = "│"
)

// ParseFrame decodes a single bordered grid render, as produced by the
// solver's grid.Render, into a Frame.
func ParseFrame(block string) (Frame, error) {
	scanner := bufio.NewScanner(strings.NewReader(block))
	var rows [][]uint8
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.Index(line, borderCh)
		if idx < 0 {
			continue
		}
		body := line[idx+len(borderCh):]
		end := strings.LastIndex(body, borderCh)
		if end < 0 {
			continue
		}
		body = body[:end]

		row := make([]uint8, 0, len(body)/2)
		for len(body) > 0 {
			switch {
			case strings.HasPrefix(body, aliveGlyph):
				row = append(row, 1)
				body = body[len(aliveGlyph):]
			case strings.HasPrefix(body, deadGlyph):
				row = append(row, 0)
				body = body[len(deadGlyph):]
			default:
				_, size := decodeRune(body)
				body = body[size:]
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return Frame{}, fmt.Errorf("viewer: parse frame: %w", err)
	}
	if len(rows) == 0 {
		return Frame{}, fmt.Errorf("viewer: parse frame: no grid rows found")
	}

	w, h := len(rows[0]), len(rows)
	cells := make([]uint8, 0, w*h)
	for _, r := range rows {
		cells = append(cells, r...)
	}
	return Frame{W: w, H: h, Cells: cells}, nil
}

// ParseChain splits a persisted snapshot file (frames joined by blank
// lines) into its individual Frames, in file order: the chain driver writes
// the target first and each older predecessor after it.
func ParseChain(text string) ([]Frame, error) {
	blocks := strings.Split(text, "\n\n\n")
	frames := make([]Frame, 0, len(blocks))
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		f, err := ParseFrame(block)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func decodeRune(s string) (rune, int) {
	for i, r := range s {
		if i == 0 {
			return r, len(string(r))
		}
	}
	return 0, 1
}
