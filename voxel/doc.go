// Package voxel provides the 3-D occupancy grid that every polycube is stored in.
//
// What:
//
//   - Grid is a dense X×Y×Z volume of one-byte cells (1 = occupied, 0 = empty),
//     flattened row-major over (X,Y,Z): index = (x·Y + y)·Z + z.
//   - Crop trims a grid to its tight bounding box; IsTight checks the invariant.
//   - Components / IsConnected find face-connected groups of occupied cells.
//
// Why:
//
//   - Polycube enumeration compares shapes by their cell layout, so every grid
//     must be cropped to the same canonical extent before it is fingerprinted.
//   - Connectivity is the defining property of a polycube and is verified, not
//     assumed, by the test suite.
//
// Value semantics:
//
//	Pad, Crop and Clone always allocate a new Grid. Set mutates in place and is
//	meant only for grids the caller has just created and not yet shared.
//
// Complexity:
//
//   - Crop:       O(X·Y·Z), Memory: O(result).
//   - Components: O(X·Y·Z·6), Memory: O(X·Y·Z).
//
// Errors:
//
//   - ErrBadShape:   a dimension is < 1.
//   - ErrEmptyGrid:  Crop was asked to trim a grid with no occupied cell.
//   - ErrOutOfRange: a coordinate lies outside the grid.
package voxel
