package voxel

import (
	"bytes"
	"strings"
)

// New allocates an empty grid of the given extents.
// Returns ErrBadShape if any extent is < 1.
// Complexity: O(X·Y·Z).
func New(x, y, z int) (*Grid, error) {
	if x < 1 || y < 1 || z < 1 {
		return nil, ErrBadShape
	}
	return &Grid{X: x, Y: y, Z: z, cells: make([]byte, x*y*z)}, nil
}

// Ones allocates a fully occupied grid of the given extents.
// Returns ErrBadShape if any extent is < 1.
func Ones(x, y, z int) (*Grid, error) {
	g, err := New(x, y, z)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = 1
	}
	return g, nil
}

// FromCells builds a grid from a row-major cell slice. Any non-zero byte is
// stored as 1. The input is copied.
// Returns ErrBadShape for a bad extent and ErrCellCount if len(cells) != x·y·z.
func FromCells(x, y, z int, cells []byte) (*Grid, error) {
	g, err := New(x, y, z)
	if err != nil {
		return nil, err
	}
	if len(cells) != len(g.cells) {
		return nil, ErrCellCount
	}
	for i, c := range cells {
		if c != 0 {
			g.cells[i] = 1
		}
	}
	return g, nil
}

// FromCoords builds the tight grid holding exactly the given cells. Coordinates
// may be negative; the result is translated so its bounding box starts at the origin.
// Returns ErrEmptyGrid if coords is empty.
func FromCoords(coords []Coord) (*Grid, error) {
	if len(coords) == 0 {
		return nil, ErrEmptyGrid
	}
	lo, hi := coords[0], coords[0]
	for _, c := range coords[1:] {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], c[a])
			hi[a] = max(hi[a], c[a])
		}
	}
	g, err := New(hi[0]-lo[0]+1, hi[1]-lo[1]+1, hi[2]-lo[2]+1)
	if err != nil {
		return nil, err
	}
	for _, c := range coords {
		g.cells[g.Index(c[0]-lo[0], c[1]-lo[1], c[2]-lo[2])] = 1
	}
	return g, nil
}

// Dims returns the extents as (X, Y, Z).
func (g *Grid) Dims() [3]int {
	return [3]int{g.X, g.Y, g.Z}
}

// Len returns the number of cells, X·Y·Z.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index maps (x,y,z) to the row-major offset. It does not check bounds.
func (g *Grid) Index(x, y, z int) int {
	return (x*g.Y+y)*g.Z + z
}

// Coordinate converts a row-major offset back to (x,y,z).
func (g *Grid) Coordinate(idx int) Coord {
	z := idx % g.Z
	idx /= g.Z
	return Coord{idx / g.Y, idx % g.Y, z}
}

// InBounds reports whether (x,y,z) lies inside the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.X && y >= 0 && y < g.Y && z >= 0 && z < g.Z
}

// At reports whether (x,y,z) is occupied. Out-of-range coordinates are empty.
func (g *Grid) At(x, y, z int) bool {
	if !g.InBounds(x, y, z) {
		return false
	}
	return g.cells[g.Index(x, y, z)] != 0
}

// Set marks (x,y,z) occupied or empty. Only call it on a grid nobody else holds.
// Returns ErrOutOfRange for coordinates outside the grid.
func (g *Grid) Set(x, y, z int, occupied bool) error {
	if !g.InBounds(x, y, z) {
		return ErrOutOfRange
	}
	var v byte
	if occupied {
		v = 1
	}
	g.cells[g.Index(x, y, z)] = v
	return nil
}

// Cell returns the raw value (0 or 1) at a row-major offset.
func (g *Grid) Cell(idx int) byte {
	return g.cells[idx]
}

// Cells returns a copy of the row-major cell slice.
func (g *Grid) Cells() []byte {
	out := make([]byte, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{X: g.X, Y: g.Y, Z: g.Z, cells: g.Cells()}
}

// Pad returns a new grid with k empty layers added on every face.
// Complexity: O((X+2k)·(Y+2k)·(Z+2k)).
func (g *Grid) Pad(k int) *Grid {
	if k <= 0 {
		return g.Clone()
	}
	p := &Grid{X: g.X + 2*k, Y: g.Y + 2*k, Z: g.Z + 2*k}
	p.cells = make([]byte, p.X*p.Y*p.Z)
	for x := 0; x < g.X; x++ {
		for y := 0; y < g.Y; y++ {
			src := g.Index(x, y, 0)
			dst := p.Index(x+k, y+k, k)
			copy(p.cells[dst:dst+g.Z], g.cells[src:src+g.Z])
		}
	}
	return p
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Occupied lists the coordinates of all occupied cells in row-major order.
func (g *Grid) Occupied() []Coord {
	out := make([]Coord, 0, g.Count())
	for i, c := range g.cells {
		if c != 0 {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Equal reports whether g and o have the same extents and the same cells.
// Rotated copies of one shape are not Equal; use the canon package for that.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.X == o.X && g.Y == o.Y && g.Z == o.Z && bytes.Equal(g.cells, o.cells)
}

// String renders the grid as one Y×Z layer per x, '#' for occupied and '.' for
// empty, layers separated by a blank line.
func (g *Grid) String() string {
	var sb strings.Builder
	for x := 0; x < g.X; x++ {
		if x > 0 {
			sb.WriteByte('\n')
		}
		for y := 0; y < g.Y; y++ {
			for z := 0; z < g.Z; z++ {
				if g.cells[g.Index(x, y, z)] != 0 {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
