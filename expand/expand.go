package expand

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/polycubes/voxel"
)

// Frontier returns the growth sites of g, as coordinates in g.Pad(1), in
// row-major order and without repeats.
func Frontier(g *voxel.Grid) []voxel.Coord {
	return frontier(g.Pad(1))
}

// frontier marks every empty face neighbour of an occupied cell of the padded
// grid p, then collects the marks in row-major order.
func frontier(p *voxel.Grid) []voxel.Coord {
	mark := make([]bool, p.Len())
	n := 0
	offsets := voxel.FaceOffsets()
	for i := 0; i < p.Len(); i++ {
		if p.Cell(i) == 0 {
			continue
		}
		c := p.Coordinate(i)
		for _, d := range offsets {
			x, y, z := c[0]+d[0], c[1]+d[1], c[2]+d[2]
			// padding guarantees the neighbour is in bounds
			if p.At(x, y, z) {
				continue
			}
			j := p.Index(x, y, z)
			if !mark[j] {
				mark[j] = true
				n++
			}
		}
	}
	out := make([]voxel.Coord, 0, n)
	for j, m := range mark {
		if m {
			out = append(out, p.Coordinate(j))
		}
	}
	return out
}

// Expand lazily yields every grid obtained by adding one face-adjacent cube to g.
// g must be non-empty. Each yielded grid is cropped and owned by the caller.
func Expand(g *voxel.Grid) iter.Seq[*voxel.Grid] {
	return func(yield func(*voxel.Grid) bool) {
		p := g.Pad(1)
		for _, c := range frontier(p) {
			cand := p.Clone()
			if err := cand.Set(c[0], c[1], c[2], true); err != nil {
				panic(fmt.Sprintf("expand: frontier cell %v outside padded grid: %v", c, err))
			}
			out, err := cand.Crop()
			if err != nil {
				panic(fmt.Sprintf("expand: crop of a non-empty candidate failed: %v", err))
			}
			if !yield(out) {
				return
			}
		}
	}
}

// All collects Expand(g) into a slice.
func All(g *voxel.Grid) []*voxel.Grid {
	var out []*voxel.Grid
	for c := range Expand(g) {
		out = append(out, c)
	}
	return out
}
