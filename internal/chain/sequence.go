// Package chain drives a population of Searchers forward in lockstep
// macro-steps: each Sequence owns one Searcher, chains grow whenever their
// Searcher finds a predecessor, and exhausted Sequences retire into a
// terminated pool. See Driver for the scheduling loop.
package chain

import (
	"undeath/internal/grid"
	"undeath/internal/search"
)

// Sequence is a chain of grids, oldest frame last, each one step forward
// under Life from the grid before it, plus the Searcher still extending it
// backwards from the oldest known frame.
type Sequence struct {
	grids    []grid.Grid
	searcher *search.Searcher
}

// NewSequence starts a Sequence from a single known grid.
func NewSequence(start grid.Grid) *Sequence {
	return &Sequence{
		grids:    []grid.Grid{start},
		searcher: search.New(start),
	}
}

// Oldest returns the furthest-back grid discovered so far — the current
// search target.
func (s *Sequence) Oldest() grid.Grid {
	return s.grids[len(s.grids)-1]
}

// Len returns the chain length (number of grids known, including the
// original target).
func (s *Sequence) Len() int {
	return len(s.grids)
}

// fork returns a new Sequence holding a copy of this one's history plus one
// more predecessor, with a fresh Searcher targeting it. The history is
// copied into a newly allocated slice, so the parent Sequence is left
// untouched and the two never share a backing array.
func (s *Sequence) fork(predecessor grid.Grid) *Sequence {
	extended := make([]grid.Grid, len(s.grids), len(s.grids)+1)
	copy(extended, s.grids)
	extended = append(extended, predecessor)
	return &Sequence{
		grids:    extended,
		searcher: search.New(predecessor),
	}
}

// fitnessKey ranks Sequences for scheduling priority: fewer live cells on
// the oldest known frame and a longer chain both indicate a more promising
// attempt, so lower is better.
func (s *Sequence) fitnessKey() int {
	oldest := s.Oldest()
	return len(oldest.AliveCells()) - s.Len()
}

// render joins every grid in the chain, newest-first as stored, into the
// text form persisted to a snapshot file.
func (s *Sequence) render() string {
	out := ""
	for i, g := range s.grids {
		if i > 0 {
			out += "\n\n\n"
		}
		out += g.Render()
	}
	return out
}
