package canon

import (
	"bytes"
	"encoding/binary"

	"github.com/katalvlaran/polycubes/voxel"
)

// Fingerprint is the run-length digest of one orientation of a grid:
//
//	X, Y, Z, r1, r2, ...
//
// where each r is a maximal run of equal cells in row-major order, +k for k
// occupied cells and -k for k empty ones. It is not rotation invariant.
type Fingerprint []int

// Key is the exact binary form of a Fingerprint (signed varints), usable as a
// map key. Distinct fingerprints always have distinct keys, so set membership
// on keys is tuple equality, not a hash comparison.
type Key string

// Key encodes f.
func (f Fingerprint) Key() Key {
	buf := make([]byte, 0, len(f)*2)
	for _, v := range f {
		buf = binary.AppendVarint(buf, int64(v))
	}
	return Key(buf)
}

// FingerprintOf returns the fingerprint of g in its stored orientation.
func FingerprintOf(g *voxel.Grid) Fingerprint {
	return identity.Fingerprint(g)
}

// KeyOf returns the key of g in its stored orientation.
func KeyOf(g *voxel.Grid) Key {
	return Key(identity.AppendKey(nil, g))
}

// Fingerprint returns the fingerprint of g rotated by r.
func (r Rotation) Fingerprint(g *voxel.Grid) Fingerprint {
	d := r.Dims(g)
	f := Fingerprint{d[0], d[1], d[2]}
	r.runs(g, func(run int) { f = append(f, run) })
	return f
}

// AppendKey appends the key of g rotated by r to dst and returns the extended
// slice. The rotated grid is never materialised.
func (r Rotation) AppendKey(dst []byte, g *voxel.Grid) []byte {
	d := r.Dims(g)
	for _, v := range d {
		dst = binary.AppendVarint(dst, int64(v))
	}
	r.runs(g, func(run int) { dst = binary.AppendVarint(dst, int64(run)) })
	return dst
}

// runs reports the signed run lengths of g in the row-major order of its image
// under r.
func (r Rotation) runs(g *voxel.Grid, emit func(int)) {
	d, base, step := r.walk(g)
	var cur byte
	n := 0
	o0 := base
	for i := 0; i < d[0]; i++ {
		o1 := o0
		for j := 0; j < d[1]; j++ {
			o2 := o1
			for k := 0; k < d[2]; k++ {
				v := g.Cell(o2)
				switch {
				case n == 0:
					cur, n = v, 1
				case v == cur:
					n++
				default:
					emit(signed(cur, n))
					cur, n = v, 1
				}
				o2 += step[2]
			}
			o1 += step[1]
		}
		o0 += step[0]
	}
	emit(signed(cur, n))
}

func signed(v byte, n int) int {
	if v == 1 {
		return n
	}
	return -n
}

// Canonical returns the smallest key, in byte order, among the 24 rotations of
// g. Two grids are rotations of one another exactly when their canonical keys
// are equal.
// Complexity: O(24·X·Y·Z).
func Canonical(g *voxel.Grid) Key {
	var best, cur []byte
	for i, r := range table {
		cur = r.AppendKey(cur[:0], g)
		if i == 0 || bytes.Compare(cur, best) < 0 {
			best, cur = cur, best
		}
	}
	return Key(best)
}

// Equivalent reports whether b is a rotation of a.
func Equivalent(a, b *voxel.Grid) bool {
	if a.Count() != b.Count() {
		return false
	}
	want := KeyOf(b)
	var buf []byte
	for _, r := range table {
		buf = r.AppendKey(buf[:0], a)
		if string(buf) == string(want) {
			return true
		}
	}
	return false
}
