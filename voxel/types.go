package voxel

// Coord addresses one cell as (x, y, z).
type Coord [3]int

// faceOffsets lists the six face-adjacent neighbour offsets.
var faceOffsets = [6]Coord{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// FaceOffsets returns the six face-adjacent neighbour offsets in a fixed order.
func FaceOffsets() [6]Coord {
	return faceOffsets
}

// Grid is a dense 3-D occupancy volume. X, Y and Z are the extents along each
// axis; cells holds X·Y·Z bytes in row-major order, 1 for occupied and 0 for empty.
type Grid struct {
	X, Y, Z int
	cells   []byte
}
