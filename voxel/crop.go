package voxel

// Bounds returns the inclusive bounding box (lo, hi) of the occupied cells.
// ok is false when the grid has no occupied cell.
// Complexity: O(X·Y·Z).
func (g *Grid) Bounds() (lo, hi Coord, ok bool) {
	for i, c := range g.cells {
		if c == 0 {
			continue
		}
		p := g.Coordinate(i)
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], p[a])
			hi[a] = max(hi[a], p[a])
		}
	}
	return lo, hi, ok
}

// Crop returns the minimal sub-grid that still contains every occupied cell,
// with the same relative occupancy. Leading and trailing all-empty slices are
// stripped on each axis. The receiver is left untouched.
//
// Returns ErrEmptyGrid if g has no occupied cell; there is nothing to crop to.
// Complexity: O(X·Y·Z).
func (g *Grid) Crop() (*Grid, error) {
	lo, hi, ok := g.Bounds()
	if !ok {
		return nil, ErrEmptyGrid
	}
	c := &Grid{X: hi[0] - lo[0] + 1, Y: hi[1] - lo[1] + 1, Z: hi[2] - lo[2] + 1}
	if c.X == g.X && c.Y == g.Y && c.Z == g.Z {
		return g.Clone(), nil
	}
	c.cells = make([]byte, c.X*c.Y*c.Z)
	for x := 0; x < c.X; x++ {
		for y := 0; y < c.Y; y++ {
			src := g.Index(x+lo[0], y+lo[1], lo[2])
			dst := c.Index(x, y, 0)
			copy(c.cells[dst:dst+c.Z], g.cells[src:src+c.Z])
		}
	}
	return c, nil
}

// IsTight reports whether every boundary slice on every axis holds at least one
// occupied cell, i.e. Crop would return an identical grid.
func (g *Grid) IsTight() bool {
	lo, hi, ok := g.Bounds()
	if !ok {
		return false
	}
	return lo == Coord{} && hi == Coord{g.X - 1, g.Y - 1, g.Z - 1}
}
