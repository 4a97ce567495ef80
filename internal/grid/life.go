package grid

// hcount returns a grid where each cell holds the sum of itself and its
// toroidal left/right neighbours.
func (g *Grid) hcount() Grid {
	var result Grid
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sum := g.GetWrapped(x-1, y) + g.GetWrapped(x, y) + g.GetWrapped(x+1, y)
			result.Set(x, y, sum)
		}
	}
	return result
}

// vcount returns a grid where each cell holds the sum of itself and its
// toroidal up/down neighbours.
func (g *Grid) vcount() Grid {
	var result Grid
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sum := g.GetWrapped(x, y-1) + g.GetWrapped(x, y) + g.GetWrapped(x, y+1)
			result.Set(x, y, sum)
		}
	}
	return result
}

// Neighbours computes, for every cell, the number of living cells in its 3x3
// toroidal neighbourhood excluding itself. It is implemented as a separable
// convolution: horizontal sums, then vertical sums of those give the full
// 3x3 sum including the cell itself, so the self term is subtracted once.
func (g *Grid) Neighbours() Grid {
	h := g.hcount()
	v := h.vcount()
	return v.Sub(*g)
}

// Step replaces the grid with its one-step Game of Life successor under
// Conway's rule: a cell is alive next frame iff it has exactly 3 living
// neighbours, or exactly 2 and was already alive.
func (g *Grid) Step() {
	neighbours := g.Neighbours()
	var next Grid
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			n := neighbours.Get(x, y)
			alive := g.Get(x, y) > 0
			var v Cell
			switch {
			case n == 3:
				v = 1
			case n == 2 && alive:
				v = 1
			}
			next.Set(x, y, v)
		}
	}
	*g = next
}
