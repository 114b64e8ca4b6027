package canon

import (
	"iter"

	"github.com/katalvlaran/polycubes/voxel"
)

// NumRotations is the order of the proper rotation group of the cube.
const NumRotations = 24

// Rotation is a proper rotation of the cube, stored as a signed axis
// permutation: output axis i walks input axis perm[i], backwards when flip[i].
// The zero value is not a rotation; use All.
type Rotation struct {
	perm [3]int
	flip [3]bool
}

var identity = Rotation{perm: [3]int{0, 1, 2}}

// table holds the 24 rotations in enumeration order.
var table = buildTable()

// quarter returns r followed by k quarter turns in the plane (a, b), turning
// axis a towards axis b. k may be negative.
//
// One turn maps the new axis a onto the old axis b reversed and the new axis b
// onto the old axis a, so flips compose by XOR.
func (r Rotation) quarter(k, a, b int) Rotation {
	k = ((k % 4) + 4) % 4
	for ; k > 0; k-- {
		pa, fa := r.perm[a], r.flip[a]
		r.perm[a], r.flip[a] = r.perm[b], !r.flip[b]
		r.perm[b], r.flip[b] = pa, fa
	}
	return r
}

// buildTable enumerates the group as six reorientations, each followed by the
// four turns about the axis that the reorientation leaves in place:
//
//	identity          then 4 turns in (1,2)
//	180° in (0,2)     then 4 turns in (1,2)
//	±90° in (0,2)     then 4 turns in (0,1)
//	±90° in (0,1)     then 4 turns in (0,2)
func buildTable() [NumRotations]Rotation {
	type step struct {
		pre  Rotation
		a, b int
	}
	steps := [6]step{
		{identity, 1, 2},
		{identity.quarter(2, 0, 2), 1, 2},
		{identity.quarter(1, 0, 2), 0, 1},
		{identity.quarter(-1, 0, 2), 0, 1},
		{identity.quarter(1, 0, 1), 0, 2},
		{identity.quarter(-1, 0, 1), 0, 2},
	}
	var out [NumRotations]Rotation
	i := 0
	for _, s := range steps {
		for k := 0; k < 4; k++ {
			out[i] = s.pre.quarter(k, s.a, s.b)
			i++
		}
	}
	return out
}

// All returns the 24 rotations in their fixed enumeration order. The first
// entry is the identity.
func All() [NumRotations]Rotation {
	return table
}

// IsIdentity reports whether r leaves every grid unchanged.
func (r Rotation) IsIdentity() bool {
	return r == identity
}

// Dims returns the extents g would have after rotation by r.
func (r Rotation) Dims(g *voxel.Grid) [3]int {
	d := g.Dims()
	return [3]int{d[r.perm[0]], d[r.perm[1]], d[r.perm[2]]}
}

// walk describes how to read g in the row-major order of its rotated image:
// out holds the rotated extents, base the offset of the first cell, step the
// offset increment along each output axis.
func (r Rotation) walk(g *voxel.Grid) (out [3]int, base int, step [3]int) {
	in := g.Dims()
	stride := [3]int{in[1] * in[2], in[2], 1}
	for i := 0; i < 3; i++ {
		a := r.perm[i]
		out[i] = in[a]
		if r.flip[i] {
			base += (in[a] - 1) * stride[a]
			step[i] = -stride[a]
		} else {
			step[i] = stride[a]
		}
	}
	return out, base, step
}

// Apply returns a new grid holding g rotated by r.
// Complexity: O(X·Y·Z).
func (r Rotation) Apply(g *voxel.Grid) *voxel.Grid {
	d, base, step := r.walk(g)
	cells := make([]byte, 0, g.Len())
	o0 := base
	for i := 0; i < d[0]; i++ {
		o1 := o0
		for j := 0; j < d[1]; j++ {
			o2 := o1
			for k := 0; k < d[2]; k++ {
				cells = append(cells, g.Cell(o2))
				o2 += step[2]
			}
			o1 += step[1]
		}
		o0 += step[0]
	}
	rg, err := voxel.FromCells(d[0], d[1], d[2], cells)
	if err != nil {
		// extents come from a valid grid, so this cannot fail
		panic(err)
	}
	return rg
}

// Rotations lazily yields the 24 rotated copies of g in enumeration order.
// It performs no deduplication: a symmetric shape yields repeated grids.
func Rotations(g *voxel.Grid) iter.Seq[*voxel.Grid] {
	return func(yield func(*voxel.Grid) bool) {
		for _, r := range table {
			if !yield(r.Apply(g)) {
				return
			}
		}
	}
}
