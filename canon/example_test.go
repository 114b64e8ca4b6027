package canon_test

import (
	"fmt"

	"github.com/katalvlaran/polycubes/canon"
	"github.com/katalvlaran/polycubes/voxel"
)

// ExampleSet_IsDuplicate accepts an L-tromino, then recognises the same piece
// lying in a different orientation.
func ExampleSet_IsDuplicate() {
	l, _ := voxel.FromCoords([]voxel.Coord{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}})
	standing, _ := voxel.FromCoords([]voxel.Coord{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}})

	s := canon.NewSet()
	s.Add(l)
	fmt.Println("fingerprint:", canon.FingerprintOf(l))
	fmt.Println("duplicate:", s.IsDuplicate(standing))

	// Output:
	// fingerprint: [2 2 1 1 -1 2]
	// duplicate: true
}
