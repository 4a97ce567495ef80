// Package guess implements the partial previous-frame assignment and its
// unit-propagation closure: given a target "next" grid and a set of
// alive/dead decisions about the frame before it, derive every consequence
// Conway's Life rules force, and detect contradictions.
package guess

import "undeath/internal/grid"

// Guess is a partial three-valued assignment for the frame preceding a
// target, plus the derived neighbour-count bounds that assignment implies.
type Guess struct {
	alive grid.Grid
	dead  grid.Grid

	minNeighbours grid.Grid
	maxNeighbours grid.Grid

	tryAlive grid.Grid
	tryDead  grid.Grid

	contradiction bool
}

// New returns an empty Guess: every cell undecided, min neighbours 0, max
// neighbours 8.
func New() Guess {
	return Guess{maxNeighbours: grid.Fill(8)}
}

// Clone returns an independent copy of the Guess. Grids are plain value
// types, so this is a cheap, ordinary struct copy — there is no shared
// mutable state between a Guess and its clone.
func (g Guess) Clone() Guess { return g }

// Alive returns the grid of cells known alive on the previous frame.
func (g *Guess) Alive() grid.Grid { return g.alive }

// Dead returns the grid of cells known dead on the previous frame.
func (g *Guess) Dead() grid.Grid { return g.dead }

// TryAlive returns the advisory grid of cells the propagator suspects are
// worth branching alive first.
func (g *Guess) TryAlive() grid.Grid { return g.tryAlive }

// TryDead returns the advisory grid of cells the propagator suspects are
// worth branching dead first.
func (g *Guess) TryDead() grid.Grid { return g.tryDead }

// GuessedAlive reports whether (x, y) is decided alive.
func (g *Guess) GuessedAlive(x, y int) bool { return g.alive.Get(x, y) > 0 }

// GuessedDead reports whether (x, y) is decided dead.
func (g *Guess) GuessedDead(x, y int) bool { return g.dead.Get(x, y) > 0 }

// Decided reports whether (x, y) has been assigned either way.
func (g *Guess) Decided(x, y int) bool { return g.GuessedAlive(x, y) || g.GuessedDead(x, y) }

// FoundContradiction reports whether this Guess is known inconsistent.
func (g *Guess) FoundContradiction() bool { return g.contradiction }

// GuessAlive asserts that the previous-frame cell (x, y) is alive and
// propagates the consequences against next. It is idempotent if (x, y) is
// already decided alive, and latches contradiction if (x, y) is already
// decided dead.
func (g *Guess) GuessAlive(next *grid.Grid, x, y int) {
	queue := make([]grid.Point, 0, grid.Size*grid.Size)
	if g.guessAliveQueued(x, y, &queue) {
		g.propagate(next, queue)
	}
}

// GuessDead asserts that the previous-frame cell (x, y) is dead and
// propagates the consequences against next. Symmetric to GuessAlive.
func (g *Guess) GuessDead(next *grid.Grid, x, y int) {
	queue := make([]grid.Point, 0, grid.Size*grid.Size)
	if g.guessDeadQueued(x, y, &queue) {
		g.propagate(next, queue)
	}
}

func (g *Guess) fail() bool {
	g.contradiction = true
	return false
}

// guessAliveQueued performs the assignment step and enqueues affected
// neighbours. It returns false (having latched contradiction) if the cell
// was already known dead.
func (g *Guess) guessAliveQueued(x, y int, queue *[]grid.Point) bool {
	if g.dead.Get(x, y) > 0 {
		return g.fail()
	}
	if g.alive.Get(x, y) > 0 {
		return true
	}
	g.alive.Set(x, y, 1)
	for _, n := range grid.NeighbourPositions(x, y) {
		g.minNeighbours.AddAt(n.X, n.Y, 1)
		*queue = append(*queue, n)
	}
	return true
}

func (g *Guess) guessDeadQueued(x, y int, queue *[]grid.Point) bool {
	if g.alive.Get(x, y) > 0 {
		return g.fail()
	}
	if g.dead.Get(x, y) > 0 {
		return true
	}
	g.dead.Set(x, y, 1)
	for _, n := range grid.NeighbourPositions(x, y) {
		g.maxNeighbours.AddAt(n.X, n.Y, -1)
		*queue = append(*queue, n)
	}
	return true
}

// guessNeighboursAliveQueued forces every still-undecided neighbour of
// (x, y) alive.
func (g *Guess) guessNeighboursAliveQueued(x, y int, queue *[]grid.Point) bool {
	for _, n := range grid.NeighbourPositions(x, y) {
		if !g.Decided(n.X, n.Y) {
			if !g.guessAliveQueued(n.X, n.Y, queue) {
				return false
			}
		}
	}
	return true
}

// guessNeighboursDeadQueued forces every still-undecided neighbour of
// (x, y) dead.
func (g *Guess) guessNeighboursDeadQueued(x, y int, queue *[]grid.Point) bool {
	for _, n := range grid.NeighbourPositions(x, y) {
		if !g.Decided(n.X, n.Y) {
			if !g.guessDeadQueued(n.X, n.Y, queue) {
				return false
			}
		}
	}
	return true
}

// propagate drains queue, deriving and applying every consequence spec'd by
// the min/max bounds, the target next state, and (where known) the cell's
// own previous-frame state. Any contradiction aborts the whole closure —
// the caller must discard this Guess and backtrack.
func (g *Guess) propagate(next *grid.Grid, queue []grid.Point) {
	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		x, y := p.X, p.Y

		min := int(g.minNeighbours.Get(x, y))
		max := int(g.maxNeighbours.Get(x, y))
		nextAlive := next.Get(x, y) > 0

		if min == max {
			switch min {
			case 3:
				if !nextAlive {
					g.fail()
					return
				}
			case 2:
				var ok bool
				if nextAlive {
					ok = g.guessAliveQueued(x, y, &queue)
				} else {
					ok = g.guessDeadQueued(x, y, &queue)
				}
				if !ok {
					return
				}
			default:
				if nextAlive {
					g.fail()
					return
				}
			}
			continue
		}

		switch {
		case max < 2 || min > 3:
			if nextAlive {
				g.fail()
				return
			}
		case max == 2:
			switch {
			case nextAlive:
				if !g.guessAliveQueued(x, y, &queue) {
					return
				}
				if !g.guessNeighboursAliveQueued(x, y, &queue) {
					return
				}
			case min == 2:
				if !g.guessDeadQueued(x, y, &queue) {
					return
				}
			}
		case min == 3:
			switch {
			case nextAlive:
				if !g.guessNeighboursDeadQueued(x, y, &queue) {
					return
				}
			case max == 4:
				for _, n := range grid.NeighbourPositions(x, y) {
					if !g.Decided(n.X, n.Y) {
						if !g.guessAliveQueued(n.X, n.Y, &queue) {
							return
						}
						break
					}
				}
			}
		}

		previouslyDead := g.dead.Get(x, y) > 0
		previouslyAlive := g.alive.Get(x, y) > 0

		switch {
		case nextAlive && previouslyDead:
			// This cell is born next frame: it must have exactly 3
			// neighbours.
			switch {
			case min == 3:
				if !g.guessNeighboursDeadQueued(x, y, &queue) {
					return
				}
			case max == 3:
				if !g.guessNeighboursAliveQueued(x, y, &queue) {
					return
				}
			case min == 2:
				for _, n := range grid.NeighbourPositions(x, y) {
					if !g.Decided(n.X, n.Y) {
						g.tryAlive.Set(n.X, n.Y, 1)
					}
				}
			case max == 4:
				for _, n := range grid.NeighbourPositions(x, y) {
					if !g.Decided(n.X, n.Y) {
						g.tryDead.Set(n.X, n.Y, 1)
					}
				}
			}
		case nextAlive && previouslyAlive:
			// This cell survives: it must have exactly 2 or 3 neighbours.
			switch {
			case min == 3:
				if !g.guessNeighboursDeadQueued(x, y, &queue) {
					return
				}
			case max == 2:
				if !g.guessNeighboursAliveQueued(x, y, &queue) {
					return
				}
			}
			// The !nextAlive, previouslyDead and !nextAlive, previouslyAlive
			// cases admit deductions too (e.g. a cell that was alive and
			// stays dead rules out 2 or 3 neighbours) but are left
			// unexploited here.
		}
	}
}
