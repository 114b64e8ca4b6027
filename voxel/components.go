package voxel

// Components finds the face-connected groups of occupied cells.
// Returns a slice of components; each component is a slice of row-major cell
// offsets in BFS order. Use Coordinate to turn an offset back into (x,y,z).
//
// Time:   O(X·Y·Z·6).
// Memory: O(X·Y·Z) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, c := range g.cells {
		if c == 0 || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range faceOffsets {
				vx, vy, vz := u[0]+d[0], u[1]+d[1], u[2]+d[2]
				if !g.At(vx, vy, vz) {
					continue
				}
				vi := g.Index(vx, vy, vz)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// IsConnected reports whether the grid holds exactly one face-connected
// component, i.e. whether its occupied cells form a polycube.
func (g *Grid) IsConnected() bool {
	return len(g.Components()) == 1
}
