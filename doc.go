// Package polycubes enumerates every polycube of a given size: connected
// shapes of n unit cubes glued face to face, where two shapes are the same if
// one can be rotated onto the other (mirror images stay distinct).
//
// What is in the module?
//
//	voxel/       the 3D occupancy Grid: padding, cropping, connectivity
//	canon/       the 24 cube rotations, run-length fingerprints, the duplicate Set
//	expand/      grows a shape by one cube in every free face-adjacent cell
//	polycube/    level-by-level generation, sequential or with a worker pool
//	cache/       per-level persistence: binary files, SQLite or in-memory
//	config/      YAML run settings and cache store construction
//	monitoring/  the diagnostic logging hook
//	cmd/polycubes  the command-line tool
//
// How a level is built:
//
//	n-1 shapes ──pad──► expand one cell ──crop──► 24 rotations ──► Set
//	                                                    │
//	                                    new fingerprint? ──► keep
//
// Known counts (rotations identified, reflections distinct):
//
//	n:  1  2  3  4   5    6     7     8
//	    1  1  2  8  29  166  1023  6922
//
// Quick start:
//
//	go run ./cmd/polycubes -workers 0 8
package polycubes
