// Package canon recognises polycubes up to rotation.
//
// What:
//
//   - All / Rotations enumerate the 24 proper rotations of the cube, composed
//     from quarter turns about the coordinate axes.
//   - Fingerprint is a run-length digest of one orientation of a grid:
//     the three extents followed by signed run lengths (+k occupied, -k empty).
//   - Key is the lossless byte form of a Fingerprint, used as a map key.
//   - Set stores one Key per accepted shape; IsDuplicate tests all 24 rotations
//     of a candidate against it.
//   - Canonical picks the smallest Key over all rotations, a rotation-invariant
//     label used when shapes are labelled independently and merged later.
//
// Why:
//
//	A fingerprint of one orientation is cheap but not invariant. Storing one
//	orientation and probing with all 24 keeps inserts at O(1) while the probe
//	short-circuits on the common case, a shape already seen.
//
// Complexity:
//
//   - AppendKey:   O(X·Y·Z), no grid allocation.
//   - IsDuplicate: O(24·X·Y·Z) worst case.
//   - Canonical:   O(24·X·Y·Z).
package canon
