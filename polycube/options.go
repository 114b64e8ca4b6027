package polycube

import (
	"runtime"

	"github.com/katalvlaran/polycubes/cache"
)

// Defaults for Options.
const (
	// DefaultProgressEvery is the number of base shapes between progress events.
	DefaultProgressEvery = 100

	// DefaultWorkers selects the sequential reference algorithm.
	DefaultWorkers = 1

	// DefaultBatchSize is the number of base shapes expanded concurrently
	// before their candidates are merged, when Workers > 1.
	DefaultBatchSize = 512
)

const (
	panicProgressEvery = "polycube: WithProgressEvery: k must be >= 1"
	panicBatchSize     = "polycube: WithBatchSize: size must be >= 1"
)

// Progress describes how far the build of one level has come.
type Progress struct {
	N         int  // size being built
	Done      int  // base shapes of size N-1 processed so far
	Total     int  // base shapes of size N-1 in all
	Shapes    int  // distinct shapes of size N found so far
	FromCache bool // level N was loaded, not built
}

// Percent returns Done/Total as a percentage; 100 for an empty level.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 100
	}
	return float64(p.Done) / float64(p.Total) * 100
}

// ProgressFunc receives progress events. It is always called from the
// goroutine that called Generate.
type ProgressFunc func(Progress)

// Options configures Generate. Build it with Option values.
type Options struct {
	store     cache.Store
	progress  ProgressFunc
	every     int
	workers   int
	batchSize int
}

// Option mutates Options.
type Option func(*Options)

// WithCache makes Generate consult store before building a level and save
// every level it builds. A nil store disables caching.
func WithCache(store cache.Store) Option {
	return func(o *Options) { o.store = store }
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) { o.progress = fn }
}

// WithProgressEvery sets how many base shapes pass between progress events.
// Panics if k < 1.
func WithProgressEvery(k int) Option {
	if k < 1 {
		panic(panicProgressEvery)
	}
	return func(o *Options) { o.every = k }
}

// WithWorkers sets the number of goroutines expanding base shapes. 1 runs the
// sequential algorithm; w <= 0 uses runtime.NumCPU(). The result is identical
// for every worker count.
func WithWorkers(w int) Option {
	if w <= 0 {
		w = runtime.NumCPU()
	}
	return func(o *Options) { o.workers = w }
}

// WithBatchSize sets how many base shapes a parallel build expands before
// merging. Larger batches keep workers busier and hold more candidates in
// memory. Panics if size < 1.
func WithBatchSize(size int) Option {
	if size < 1 {
		panic(panicBatchSize)
	}
	return func(o *Options) { o.batchSize = size }
}

func gatherOptions(opts []Option) Options {
	o := Options{
		every:     DefaultProgressEvery,
		workers:   DefaultWorkers,
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *Options) report(p Progress) {
	if o.progress != nil {
		o.progress(p)
	}
}
