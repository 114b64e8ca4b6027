// Package expand grows a polycube by one cube.
//
// Expand pads a tight grid by one empty layer on every face, computes the
// frontier once (every empty cell sharing a face with an occupied one), and
// then yields, for each frontier cell in row-major order, the cropped grid
// with that cell filled. Every yielded grid is a fresh, tight, connected
// polycube of size k+1; the sequence may contain rotations of one another,
// deduplication is the caller's job.
//
// Complexity:
//
//   - Frontier: O(X·Y·Z) on the padded grid.
//   - Expand:   O(F·X·Y·Z) for F frontier cells.
package expand
