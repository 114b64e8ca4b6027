package polycube

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/polycubes/cache"
	"github.com/katalvlaran/polycubes/canon"
	"github.com/katalvlaran/polycubes/expand"
	"github.com/katalvlaran/polycubes/monitoring"
	"github.com/katalvlaran/polycubes/voxel"
)

// Generate returns every polycube of size n, one grid per shape, in discovery
// order.
//
// Behavior:
//  1. n < 1 yields an empty collection; n = 1 and n = 2 are the single cube and
//     the domino, without touching the cache.
//  2. Otherwise the cache is probed from n downwards; the largest stored level
//     k (or the domino when none is stored) seeds the build.
//  3. Levels k+1..n are grown one after another. Each level gets a fresh
//     duplicate set which is dropped once the level is done, and is saved to
//     the cache before the next one starts.
//
// Cache read errors other than cache.ErrMiss, and all save errors, are returned
// as-is; nothing is retried. ctx is checked between base shapes.
func Generate(ctx context.Context, n int, opts ...Option) ([]*voxel.Grid, error) {
	if n < 3 {
		return seed(n), nil
	}
	o := gatherOptions(opts)

	shapes, from, err := o.loadHighest(n)
	if err != nil {
		return nil, err
	}
	if shapes == nil {
		shapes, from = seed(2), 2
	}

	for level := from + 1; level <= n; level++ {
		next, err := o.grow(ctx, level, shapes)
		if err != nil {
			return nil, err
		}
		if o.store != nil {
			if err := o.store.Save(level, next); err != nil {
				return nil, fmt.Errorf("polycube: save n=%d: %w", level, err)
			}
			monitoring.Logf("Saved polycubes n=%d to cache: %d shapes", level, len(next))
		}
		shapes = next
	}
	return shapes, nil
}

// seed returns the base cases: nothing, the single cube, or the domino.
func seed(n int) []*voxel.Grid {
	var g *voxel.Grid
	switch {
	case n < 1:
		return []*voxel.Grid{}
	case n == 1:
		g, _ = voxel.Ones(1, 1, 1)
	default:
		g, _ = voxel.Ones(2, 1, 1)
	}
	return []*voxel.Grid{g}
}

// loadHighest looks for the largest cached level in (2, n]. It returns a nil
// slice when caching is off or nothing is stored.
func (o *Options) loadHighest(n int) ([]*voxel.Grid, int, error) {
	if o.store == nil {
		return nil, 0, nil
	}
	for k := n; k > 2; k-- {
		shapes, err := o.store.Load(k)
		if errors.Is(err, cache.ErrMiss) {
			continue
		}
		if err != nil {
			return nil, 0, fmt.Errorf("polycube: load n=%d: %w", k, err)
		}
		monitoring.Logf("Loading polycubes n=%d from cache: %d shapes", k, len(shapes))
		o.report(Progress{N: k, Shapes: len(shapes), FromCache: true})
		return shapes, k, nil
	}
	return nil, 0, nil
}

// grow builds level n from the complete collection of level n-1.
func (o *Options) grow(ctx context.Context, n int, bases []*voxel.Grid) ([]*voxel.Grid, error) {
	if o.workers > 1 {
		return o.growParallel(ctx, n, bases)
	}
	return o.growSequential(ctx, n, bases)
}

// growSequential is the reference algorithm: every candidate is probed with
// all of its rotations against the shapes accepted so far at this level, and
// only the orientation that was accepted is stored.
func (o *Options) growSequential(ctx context.Context, n int, bases []*voxel.Grid) ([]*voxel.Grid, error) {
	seen := canon.NewSet()
	var out []*voxel.Grid

	for i, base := range bases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for cand := range expand.Expand(base) {
			if seen.IsDuplicate(cand) {
				continue
			}
			out = append(out, cand)
			seen.Add(cand)
		}
		if (i+1)%o.every == 0 && i+1 < len(bases) {
			o.report(Progress{N: n, Done: i + 1, Total: len(bases), Shapes: len(out)})
		}
	}
	o.report(Progress{N: n, Done: len(bases), Total: len(bases), Shapes: len(out)})
	return out, nil
}
