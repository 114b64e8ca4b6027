package polycube

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/polycubes/voxel"
)

// Shape is the renderer-facing view of one polycube: its extents and the
// coordinates of its occupied cells.
type Shape struct {
	Dims  [3]int        `json:"dims"`
	Cells []voxel.Coord `json:"cells"`
}

// Describe returns the view of g.
func Describe(g *voxel.Grid) Shape {
	return Shape{Dims: g.Dims(), Cells: g.Occupied()}
}

// WriteJSON writes shapes as a JSON array of Shape objects.
func WriteJSON(w io.Writer, shapes []*voxel.Grid) error {
	views := make([]Shape, len(shapes))
	for i, g := range shapes {
		views[i] = Describe(g)
	}
	enc := json.NewEncoder(w)
	return enc.Encode(views)
}
