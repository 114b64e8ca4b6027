package polycube

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/polycubes/voxel"
)

// Result is the outcome of Run.
type Result struct {
	N       int
	Shapes  []*voxel.Grid
	Count   int
	Elapsed time.Duration
}

// Run validates n, generates every polycube of that size and times the work.
// Returns ErrInvalidSize, before any work, if n < 1.
func Run(ctx context.Context, n int, opts ...Option) (Result, error) {
	if n < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	start := time.Now()
	shapes, err := Generate(ctx, n, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{
		N:       n,
		Shapes:  shapes,
		Count:   len(shapes),
		Elapsed: time.Since(start),
	}, nil
}
