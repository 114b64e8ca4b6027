// Package polycube enumerates every polycube of a given size, counting two
// shapes as the same when one is a rotation of the other.
//
// 🚀 How it works
//
//	Shapes of size n are grown from the shapes of size n-1: each base shape is
//	expanded by one face-adjacent cube (package expand), every candidate is
//	checked against the shapes already accepted at this size under all 24
//	rotations (package canon), and the new ones are kept in discovery order.
//	The build runs bottom-up from the largest size found in the cache (or from
//	the domino) to n, storing each finished level when a cache is configured.
//
// ⚙️ Usage:
//
//	store := cache.NewFile(".")
//	res, err := polycube.Run(ctx, 8,
//	    polycube.WithCache(store),
//	    polycube.WithWorkers(0), // one worker per CPU
//	    polycube.WithProgress(func(p polycube.Progress) {
//	        fmt.Printf("\rn=%d: %.2f%%", p.N, p.Percent())
//	    }),
//	)
//	fmt.Println(res.Count) // 6922
//
// Performance:
//
//   - Time:   O(Σ candidates · 24 · cells), dominated by the rotation probes.
//   - Memory: the shapes of two consecutive levels plus one key per shape.
//
// Errors:
//
//   - ErrInvalidSize: Run was asked for n < 1.
//   - cache errors (cache.ErrCorrupt, I/O) propagate unchanged; a cache miss is
//     not an error.
package polycube
