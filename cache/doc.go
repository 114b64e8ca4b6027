// Package cache persists the shape collection of one polycube size so that a
// later run can skip the enumeration of that level.
//
// What:
//
//   - Store is the contract the generator consults: Load / Save / Exists, keyed
//     by the polycube size n alone.
//   - File keeps one "cubes_<n>.bin" file per level in a directory.
//   - SQLite keeps one row per level in a database file (modernc.org/sqlite).
//   - Memory keeps records in process; useful for tests and embedding.
//   - Encode / Decode implement the shared binary record format.
//
// Record format (all integers unsigned varints):
//
//	"PCUB" version count { X Y Z bits... }*
//
// Cells are bit-packed row-major, least significant bit first, padded to a
// whole byte per grid.
//
// Errors:
//
//   - ErrMiss:     no record for n; the caller should recompute.
//   - ErrCorrupt:  a record exists but cannot be decoded. It is never returned
//     together with partial data.
//   - ErrBadLevel: n < 1.
//
// Records are not tagged with the enumeration algorithm that produced them;
// a change in canonicalisation that alters which shapes are emitted is not
// detected here.
package cache
