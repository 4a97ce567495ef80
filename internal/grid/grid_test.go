package grid

import "testing"

func TestBlinkerOscillation(t *testing.T) {
	var g Grid
	set := func(x, y int) { g.Set(x, y, 1) }
	set(5, 4)
	set(5, 5)
	set(5, 6)

	g.Step()

	expect := map[Point]bool{{X: 4, Y: 5}: true, {X: 5, Y: 5}: true, {X: 6, Y: 5}: true}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			alive := g.Get(x, y) > 0
			if alive != expect[Point{X: x, Y: y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, expect[Point{X: x, Y: y}])
			}
		}
	}

	g.Step()
	expect = map[Point]bool{{X: 5, Y: 4}: true, {X: 5, Y: 5}: true, {X: 5, Y: 6}: true}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			alive := g.Get(x, y) > 0
			if alive != expect[Point{X: x, Y: y}] {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, expect[Point{X: x, Y: y}])
			}
		}
	}
}

func TestAllDeadIsFixedPoint(t *testing.T) {
	var g Grid
	g.Step()
	for _, p := range g.AliveCells() {
		t.Fatalf("expected all-dead grid to stay dead, found alive cell at %v", p)
	}
}

func TestToroidalWrapMatchesInterior(t *testing.T) {
	// A block straddling the (0,0) corner must behave like an interior block.
	var corner Grid
	corner.SetWrapped(-1, -1, 1)
	corner.SetWrapped(0, -1, 1)
	corner.SetWrapped(-1, 0, 1)
	corner.SetWrapped(0, 0, 1)

	var interior Grid
	interior.Set(5, 5, 1)
	interior.Set(6, 5, 1)
	interior.Set(5, 6, 1)
	interior.Set(6, 6, 1)

	cornerNeighbours := corner.Neighbours()
	interiorNeighbours := interior.Neighbours()

	if got, want := cornerNeighbours.Get(Size-1, Size-1), interiorNeighbours.Get(5, 5); got != want {
		t.Fatalf("corner neighbour count = %d, want %d (interior equivalent)", got, want)
	}
}

func TestNeighboursRangeAfterStep(t *testing.T) {
	var g Grid
	for _, p := range []Point{{5, 4}, {5, 5}, {5, 6}, {1, 1}, {1, 2}} {
		g.Set(p.X, p.Y, 1)
	}
	n := g.Neighbours()
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if v := n.Get(x, y); v < 0 || v > 8 {
				t.Fatalf("neighbour count out of range at (%d,%d): %d", x, y, v)
			}
		}
	}
}

func TestNeighbourPositionsAreDistinctAndWrapped(t *testing.T) {
	seen := map[Point]bool{}
	for _, p := range NeighbourPositions(0, 0) {
		if p.X < 0 || p.X >= Size || p.Y < 0 || p.Y >= Size {
			t.Fatalf("neighbour position out of bounds: %v", p)
		}
		if seen[p] {
			t.Fatalf("duplicate neighbour position: %v", p)
		}
		seen[p] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct neighbours, got %d", len(seen))
	}
}
