// Package search implements the DPLL-style backtracking predecessor solver:
// given a target grid, it enumerates previous-frame grids whose one-step
// Life evolution equals the target, guided by the guess package's
// constraint propagation.
package search

import (
	"fmt"
	"sort"

	"undeath/internal/grid"
	"undeath/internal/guess"
)

// action is one step of the explicit, non-recursive depth-first search.
type actionKind int

const (
	actionMakeGuess actionKind = iota
	actionFirstGuess
	actionSecondGuess
)

type action struct {
	kind     actionKind
	x, y     int
	polarity bool // true: the "first" trial guesses the cell alive.
}

// Result is the outcome of one search call.
type Result struct {
	// Status distinguishes the three possible outcomes.
	Status Status
	// Grid holds the predecessor when Status is Found.
	Grid grid.Grid
	// Iterations is the number of micro-steps consumed by this call.
	Iterations int
}

// Status enumerates the possible outcomes of a search call.
type Status int

const (
	// Working means the budget ran out before a conclusion was reached;
	// call Search again to resume.
	Working Status = iota
	// Found means a complete, consistent predecessor assignment was
	// produced. The searcher remains usable — the next call resumes
	// enumerating further solutions.
	Found
	// Unsatisfiable means the whole search tree has been exhausted.
	Unsatisfiable
)

// Searcher performs a bounded, resumable DPLL search for predecessors of a
// fixed target grid.
type Searcher struct {
	next        grid.Grid
	guessStack  []guess.Guess
	actionStack []action
	allCells    []grid.Point
	aliveCells  map[grid.Point]bool
}

// New constructs a Searcher targeting next, with cells ranked furthest from
// next's live cells first (an outer ring of cells decided dead early prunes
// heavily).
func New(next grid.Grid) *Searcher {
	alive := next.AliveCells()
	aliveSet := make(map[grid.Point]bool, len(alive))
	for _, p := range alive {
		aliveSet[p] = true
	}

	all := make([]grid.Point, 0, grid.Size*grid.Size)
	for x := 0; x < grid.Size; x++ {
		for y := 0; y < grid.Size; y++ {
			all = append(all, grid.Point{X: x, Y: y})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return minDistance(all[i], alive) > minDistance(all[j], alive)
	})

	return &Searcher{
		next:        next,
		guessStack:  []guess.Guess{guess.New()},
		actionStack: []action{{kind: actionMakeGuess}},
		allCells:    all,
		aliveCells:  aliveSet,
	}
}

// minDistance returns the minimum toroidal L1 distance from p to any point
// in targets, or -1000 if targets is empty (so every cell ranks equally).
func minDistance(p grid.Point, targets []grid.Point) int {
	if len(targets) == 0 {
		return -1000
	}
	best := -1
	for _, t := range targets {
		d := wrapAbs(t.X-p.X) + wrapAbs(t.Y-p.Y)
		if best == -1 || d < best {
			best = d
		}
	}
	return best
}

func wrapAbs(d int) int {
	d %= grid.Size
	if d < 0 {
		d = -d
	}
	alt := grid.Size - d
	if alt < d {
		return alt
	}
	return d
}

// CurrentGuess returns a snapshot of the top of the decision stack, for
// display.
func (s *Searcher) CurrentGuess() guess.Guess {
	return s.guessStack[len(s.guessStack)-1]
}

// pickVariable chooses the next cell to branch on: any still-undecided cell
// in try_dead, then try_alive, then the precomputed heuristic order.
func (s *Searcher) pickVariable(g *guess.Guess) (grid.Point, bool) {
	tryDead := g.TryDead()
	for _, p := range tryDead.AliveCells() {
		if !g.Decided(p.X, p.Y) {
			return p, true
		}
	}
	tryAlive := g.TryAlive()
	for _, p := range tryAlive.AliveCells() {
		if !g.Decided(p.X, p.Y) {
			return p, true
		}
	}
	for _, p := range s.allCells {
		if !g.Decided(p.X, p.Y) {
			return p, true
		}
	}
	return grid.Point{}, false
}

// Search advances the search by at most budget micro-steps.
func (s *Searcher) Search(budget int) Result {
	iterations := 0
	for len(s.actionStack) > 0 {
		act := s.actionStack[len(s.actionStack)-1]
		g := s.guessStack[len(s.guessStack)-1]
		iterations++

		switch act.kind {
		case actionMakeGuess:
			s.actionStack = s.actionStack[:len(s.actionStack)-1]
			if p, ok := s.pickVariable(&g); ok {
				s.actionStack = append(s.actionStack, action{
					kind:     actionFirstGuess,
					x:        p.X,
					y:        p.Y,
					polarity: s.aliveCells[p],
				})
			} else {
				result := s.emitSolution(g, iterations)
				return result
			}

		case actionFirstGuess:
			newGuess := g.Clone()
			if act.polarity {
				newGuess.GuessAlive(&s.next, act.x, act.y)
			} else {
				newGuess.GuessDead(&s.next, act.x, act.y)
			}
			if newGuess.FoundContradiction() {
				s.actionStack[len(s.actionStack)-1] = action{kind: actionSecondGuess, x: act.x, y: act.y, polarity: act.polarity}
			} else {
				s.guessStack = append(s.guessStack, newGuess)
				s.actionStack = append(s.actionStack, action{kind: actionMakeGuess})
			}

		case actionSecondGuess:
			newGuess := g.Clone()
			if act.polarity {
				newGuess.GuessDead(&s.next, act.x, act.y)
			} else {
				newGuess.GuessAlive(&s.next, act.x, act.y)
			}
			if newGuess.FoundContradiction() {
				s.backtrack()
			} else {
				s.guessStack = append(s.guessStack, newGuess)
				s.actionStack = append(s.actionStack, action{kind: actionMakeGuess})
			}
		}

		if iterations >= budget {
			return Result{Status: Working, Iterations: iterations}
		}
	}

	return Result{Status: Unsatisfiable, Iterations: iterations}
}

// backtrack pops actions until a FirstGuess is converted into a
// SecondGuess, popping one guess level for every SecondGuess discarded
// along the way. It is also used, with a pre-popped guess level, to resume
// search after emitting a solution.
func (s *Searcher) backtrack() {
	for len(s.actionStack) > 0 {
		top := s.actionStack[len(s.actionStack)-1]
		s.actionStack = s.actionStack[:len(s.actionStack)-1]
		switch top.kind {
		case actionFirstGuess:
			s.actionStack = append(s.actionStack, action{kind: actionSecondGuess, x: top.x, y: top.y, polarity: top.polarity})
			return
		case actionSecondGuess:
			s.guessStack = s.guessStack[:len(s.guessStack)-1]
		case actionMakeGuess:
			panic("search: unexpected MakeGuess while backtracking")
		}
	}
}

// emitSolution validates a complete assignment, then rewinds the search as
// though the branch that produced it had failed, so the next Search call
// resumes enumerating remaining branches.
func (s *Searcher) emitSolution(g guess.Guess, iterations int) Result {
	solution := g.Alive()
	check := solution
	check.Step()
	if !check.Equal(&s.next) {
		panic(fmt.Sprintf("search: propagator produced an inconsistent solution:\n%s",
			grid.HConcat(grid.HConcat(g.Render(), s.next.Render(), "   "), check.Render(), "   ")))
	}

	s.guessStack = s.guessStack[:len(s.guessStack)-1]
	s.backtrack()

	return Result{Status: Found, Grid: solution, Iterations: iterations}
}
