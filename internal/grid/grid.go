// Package grid implements the fixed-size toroidal board the rest of the
// solver operates over: Conway's Game of Life on an N×N torus, plus the
// small arithmetic grid-of-grids used by the constraint propagator to track
// per-cell bounds.
package grid

// Size is the side length of the board. The solver is specified for a fixed
// board size known at build time; 12 matches the target grid the search
// engine is tuned against.
const Size = 12

// cellCount is the number of cells on a Size×Size toroidal board.
const cellCount = Size * Size

// Cell is a signed small integer. Depending on which Grid it lives in it is
// read as a boolean (0 dead, >=1 alive), a neighbour count (0..8), or a
// bound on a neighbour count. It supports addition and subtraction with no
// saturation — an intermediate Grid can legitimately hold values outside
// the range its final, consistent state would occupy.
type Cell int8

// Point is a normalised (already-wrapped) board coordinate.
type Point struct {
	X, Y int
}

// Grid is a logically 2D, row-major array of Cells on a toroidal Size×Size
// board. The zero value is a grid of all-zero cells.
type Grid struct {
	cells [cellCount]Cell
}

// Fill returns a grid with every cell set to v.
func Fill(v Cell) Grid {
	var g Grid
	for i := range g.cells {
		g.cells[i] = v
	}
	return g
}

func index(x, y int) int { return y*Size + x }

// Get reads the cell at already-normalised coordinates (x, y).
func (g *Grid) Get(x, y int) Cell { return g.cells[index(x, y)] }

// Set writes the cell at already-normalised coordinates (x, y).
func (g *Grid) Set(x, y int, v Cell) { g.cells[index(x, y)] = v }

// wrap reduces a coordinate modulo Size, handling negative inputs.
func wrap(v int) int {
	v %= Size
	if v < 0 {
		v += Size
	}
	return v
}

// GetWrapped reads the cell at (x, y), reducing the coordinates modulo Size
// first.
func (g *Grid) GetWrapped(x, y int) Cell { return g.Get(wrap(x), wrap(y)) }

// SetWrapped writes the cell at (x, y), reducing the coordinates modulo Size
// first.
func (g *Grid) SetWrapped(x, y int, v Cell) { g.Set(wrap(x), wrap(y), v) }

// Add returns the elementwise sum of two grids.
func (g Grid) Add(other Grid) Grid {
	for i := range g.cells {
		g.cells[i] += other.cells[i]
	}
	return g
}

// Sub returns the elementwise difference of two grids.
func (g Grid) Sub(other Grid) Grid {
	for i := range g.cells {
		g.cells[i] -= other.cells[i]
	}
	return g
}

// AddAt adds delta to the cell at already-normalised coordinates (x, y).
func (g *Grid) AddAt(x, y int, delta Cell) {
	g.cells[index(x, y)] += delta
}

// AliveCells returns the coordinates of every cell with value >= 1.
func (g *Grid) AliveCells() []Point {
	var out []Point
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.Get(x, y) >= 1 {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Equal reports whether two grids have identical cell values.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// NeighbourPositions returns the eight toroidally-wrapped coordinates
// surrounding (x, y), in a fixed but not semantically significant order.
func NeighbourPositions(x, y int) [8]Point {
	return [8]Point{
		{X: wrap(x - 1), Y: wrap(y - 1)},
		{X: wrap(x), Y: wrap(y - 1)},
		{X: wrap(x + 1), Y: wrap(y - 1)},
		{X: wrap(x - 1), Y: wrap(y)},
		{X: wrap(x + 1), Y: wrap(y)},
		{X: wrap(x - 1), Y: wrap(y + 1)},
		{X: wrap(x), Y: wrap(y + 1)},
		{X: wrap(x + 1), Y: wrap(y + 1)},
	}
}
