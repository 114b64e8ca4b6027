package voxel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polycubes/voxel"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive extents.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z int
	}{
		{"ZeroX", 0, 1, 1},
		{"ZeroY", 1, 0, 1},
		{"NegativeZ", 1, 1, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := voxel.New(tc.x, tc.y, tc.z)
			if !errors.Is(err, voxel.ErrBadShape) {
				t.Errorf("New(%d,%d,%d) error = %v; want %v", tc.x, tc.y, tc.z, err, voxel.ErrBadShape)
			}
		})
	}
}

func TestOnes(t *testing.T) {
	g, err := voxel.Ones(2, 3, 1)
	require.NoError(t, err)
	require.Equal(t, [3]int{2, 3, 1}, g.Dims())
	require.Equal(t, 6, g.Count())
	require.Equal(t, 6, g.Len())
}

func TestFromCells(t *testing.T) {
	g, err := voxel.FromCells(1, 2, 2, []byte{1, 0, 7, 1})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 1, 1}, g.Cells(), "non-zero bytes are normalised to 1")

	_, err = voxel.FromCells(1, 2, 2, []byte{1})
	require.ErrorIs(t, err, voxel.ErrCellCount)
}

func TestFromCoords(t *testing.T) {
	g, err := voxel.FromCoords([]voxel.Coord{{-1, 0, 5}, {0, 0, 5}, {0, 1, 5}})
	require.NoError(t, err)
	require.Equal(t, [3]int{2, 2, 1}, g.Dims())
	require.True(t, g.At(0, 0, 0))
	require.True(t, g.At(1, 0, 0))
	require.True(t, g.At(1, 1, 0))
	require.False(t, g.At(0, 1, 0))

	_, err = voxel.FromCoords(nil)
	require.ErrorIs(t, err, voxel.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Indexing
//----------------------------------------------------------------------------//

// TestIndexing checks that Coordinate inverts the row-major layout (x, y, z).
func TestIndexing(t *testing.T) {
	g, err := voxel.New(2, 3, 4)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 2, 3, true))
	require.Equal(t, byte(1), g.Cell(g.Len()-1), "last cell is (X-1,Y-1,Z-1)")

	require.NoError(t, g.Set(0, 0, 1, true))
	require.Equal(t, byte(1), g.Cell(1), "z is the fastest-varying axis")

	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		require.True(t, g.InBounds(c[0], c[1], c[2]))
	}
	require.Equal(t, voxel.Coord{1, 0, 0}, g.Coordinate(12))
}

func TestSet_OutOfRange(t *testing.T) {
	g, err := voxel.New(1, 1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, g.Set(1, 0, 0, true), voxel.ErrOutOfRange)
	require.False(t, g.At(-1, 0, 0), "out-of-range cells read as empty")
}

//----------------------------------------------------------------------------//
// Value semantics
//----------------------------------------------------------------------------//

func TestClone_IsIndependent(t *testing.T) {
	g, err := voxel.Ones(1, 1, 2)
	require.NoError(t, err)
	c := g.Clone()
	require.True(t, g.Equal(c))
	require.NoError(t, c.Set(0, 0, 0, false))
	require.False(t, g.Equal(c))
	require.True(t, g.At(0, 0, 0), "original must not change")
}

func TestPad(t *testing.T) {
	g, err := voxel.Ones(1, 2, 1)
	require.NoError(t, err)
	p := g.Pad(1)
	require.Equal(t, [3]int{3, 4, 3}, p.Dims())
	require.Equal(t, 2, p.Count())
	require.True(t, p.At(1, 1, 1))
	require.True(t, p.At(1, 2, 1))
	require.False(t, p.IsTight())
	require.True(t, g.Pad(0).Equal(g))
}

func TestOccupied(t *testing.T) {
	g, err := voxel.FromCells(2, 1, 2, []byte{0, 1, 1, 0})
	require.NoError(t, err)
	require.Equal(t, []voxel.Coord{{0, 0, 1}, {1, 0, 0}}, g.Occupied())
}

func TestEqual_Nil(t *testing.T) {
	var a, b *voxel.Grid
	require.True(t, a.Equal(b))
	g, _ := voxel.Ones(1, 1, 1)
	require.False(t, g.Equal(nil))
}

func TestString(t *testing.T) {
	g, err := voxel.FromCells(2, 2, 2, []byte{1, 1, 1, 0, 0, 0, 0, 1})
	require.NoError(t, err)
	want := "##\n#.\n\n..\n.#\n"
	require.Equal(t, want, g.String())
}
