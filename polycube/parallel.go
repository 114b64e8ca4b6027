package polycube

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polycubes/canon"
	"github.com/katalvlaran/polycubes/expand"
	"github.com/katalvlaran/polycubes/voxel"
)

// labelled is a candidate together with its rotation-invariant key.
type labelled struct {
	grid *voxel.Grid
	key  canon.Key
}

// label expands one base shape and keys every candidate by canon.Canonical,
// dropping candidates whose shape this base already produced.
func label(base *voxel.Grid) []labelled {
	local := make(map[canon.Key]struct{})
	var out []labelled
	for cand := range expand.Expand(base) {
		k := canon.Canonical(cand)
		if _, ok := local[k]; ok {
			continue
		}
		local[k] = struct{}{}
		out = append(out, labelled{grid: cand, key: k})
	}
	return out
}

// growParallel partitions the base shapes into batches. Inside a batch the
// bases are expanded and labelled concurrently; the batch is then merged in
// base order on the calling goroutine. Since the canonical key identifies a
// shape exactly, the merge keeps the first candidate of every shape, which is
// the same candidate the sequential algorithm accepts, in the same order.
func (o *Options) growParallel(ctx context.Context, n int, bases []*voxel.Grid) ([]*voxel.Grid, error) {
	seen := make(map[canon.Key]struct{})
	var out []*voxel.Grid

	for lo := 0; lo < len(bases); lo += o.batchSize {
		hi := min(lo+o.batchSize, len(bases))
		results := make([][]labelled, hi-lo)

		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(o.workers)
		for i := lo; i < hi; i++ {
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				results[i-lo] = label(bases[i])
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, batch := range results {
			for _, c := range batch {
				if _, ok := seen[c.key]; ok {
					continue
				}
				seen[c.key] = struct{}{}
				out = append(out, c.grid)
			}
		}
		if hi < len(bases) {
			o.report(Progress{N: n, Done: hi, Total: len(bases), Shapes: len(out)})
		}
	}
	o.report(Progress{N: n, Done: len(bases), Total: len(bases), Shapes: len(out)})
	return out, nil
}
