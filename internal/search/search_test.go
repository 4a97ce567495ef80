package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"undeath/internal/grid"
)

const bigBudget = 2_000_000

// stepsToEqual steps g forward once and reports whether the result equals
// target.
func stepsToEqual(g grid.Grid, target *grid.Grid) bool {
	g.Step()
	return g.Equal(target)
}

func TestEmptyTargetFindsAllDeadFirst(t *testing.T) {
	var target grid.Grid
	s := New(target)
	result := s.Search(bigBudget)
	require.Equal(t, Found, result.Status)
	for _, p := range result.Grid.AliveCells() {
		t.Fatalf("expected the first solution for an empty target to be all-dead, found alive cell at %v", p)
	}
	stepped := result.Grid
	stepped.Step()
	require.True(t, stepped.Equal(&target))
}

func TestEmptyTargetContinuesEnumerating(t *testing.T) {
	var target grid.Grid
	s := New(target)
	first := s.Search(bigBudget)
	require.Equal(t, Found, first.Status)
	second := s.Search(bigBudget)
	require.Equal(t, Found, second.Status)
	require.False(t, first.Grid.Equal(&second.Grid), "expected a distinct second predecessor")
	stepped := second.Grid
	stepped.Step()
	require.True(t, stepped.Equal(&target))
}

func TestIsolatedLiveCellIsUnsatisfiable(t *testing.T) {
	var target grid.Grid
	target.Set(6, 6, 1)
	s := New(target)
	result := s.Search(bigBudget)
	require.Equal(t, Unsatisfiable, result.Status)
}

func TestBlockTargetFindsBlockAmongSolutions(t *testing.T) {
	var target grid.Grid
	target.Set(5, 5, 1)
	target.Set(6, 5, 1)
	target.Set(5, 6, 1)
	target.Set(6, 6, 1)

	s := New(target)
	found := false
	for i := 0; i < 200 && !found; i++ {
		result := s.Search(bigBudget)
		if result.Status == Unsatisfiable {
			break
		}
		require.Equal(t, Found, result.Status)
		require.True(t, stepsToEqual(result.Grid, &target))
		if result.Grid.Equal(&target) {
			found = true
		}
	}
	require.True(t, found, "expected the block itself to appear among its own predecessors")
}

func TestGliderTargetProducesValidPredecessor(t *testing.T) {
	var target grid.Grid
	for _, p := range []grid.Point{{1, 1}, {2, 2}, {2, 3}, {1, 3}, {0, 3}} {
		target.Set(p.X, p.Y, 1)
	}
	s := New(target)
	result := s.Search(bigBudget)
	require.Equal(t, Found, result.Status)
	require.True(t, stepsToEqual(result.Grid, &target))
}

func TestWorkingResumesAcrossCalls(t *testing.T) {
	var target grid.Grid
	for _, p := range []grid.Point{{1, 1}, {2, 2}, {2, 3}, {1, 3}, {0, 3}} {
		target.Set(p.X, p.Y, 1)
	}
	s := New(target)
	total := 0
	var result Result
	for {
		result = s.Search(37)
		total += result.Iterations
		if result.Status != Working {
			break
		}
	}
	require.Equal(t, Found, result.Status)
	require.True(t, stepsToEqual(result.Grid, &target))
}
