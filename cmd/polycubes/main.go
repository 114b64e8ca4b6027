// Command polycubes counts the distinct polycubes of a given size, treating
// rotated copies as one shape.
//
//	polycubes [flags] N
//
// Levels are cached between runs (file, sqlite or memory backend) so a larger
// N resumes from the highest level already built.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/katalvlaran/polycubes/config"
	"github.com/katalvlaran/polycubes/monitoring"
	"github.com/katalvlaran/polycubes/polycube"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("polycubes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		useCache   = fs.Bool("cache", true, "load and save levels in the cache (-cache=false disables)")
		configPath = fs.String("config", "", "YAML config file")
		cacheDir   = fs.String("cache-dir", "", "directory of the file cache")
		backend    = fs.String("backend", "", "cache backend: file, sqlite or memory")
		workers    = fs.Int("workers", 0, "expansion goroutines, 0 = one per CPU")
		exportPath = fs.String("export", "", "write the shapes as JSON to this file")
		printAll   = fs.Bool("print", false, "print every shape")
		quiet      = fs.Bool("quiet", false, "suppress progress and log output")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: polycubes [flags] N\n\nN is the number of cubes per shape (N >= 1).\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil || n < 1 {
		fmt.Fprintf(stderr, "invalid N %q: must be an integer >= 1\n\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	// explicit flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cache":
			cfg.Cache.Enabled = *useCache
		case "cache-dir":
			cfg.Cache.Dir = *cacheDir
		case "backend":
			cfg.Cache.Backend = *backend
		case "workers":
			cfg.Workers = *workers
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if *quiet {
		monitoring.SetLogger(nil)
	}

	store, closeStore, err := cfg.OpenStore()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			fmt.Fprintf(stderr, "Error: closing cache: %v\n", err)
		}
	}()

	opts := cfg.Options(store)
	progressShown := false
	if !*quiet {
		opts = append(opts, polycube.WithProgress(func(p polycube.Progress) {
			if p.FromCache {
				return
			}
			fmt.Fprintf(stdout, "\rGenerating polycubes n=%d: %.2f%%", p.N, p.Percent())
			progressShown = true
		}))
	}

	res, err := polycube.Run(ctx, n, opts...)
	if progressShown {
		fmt.Fprintln(stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *printAll {
		for i, g := range res.Shapes {
			fmt.Fprintf(stdout, "shape %d %v\n%s\n", i+1, g.Dims(), g)
		}
	}
	if *exportPath != "" {
		if err := export(*exportPath, res); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	fmt.Fprintf(stdout, "Found %d unique polycube(s)\n", res.Count)
	fmt.Fprintf(stdout, "Elapsed time: %.3fs\n", res.Elapsed.Seconds())
	return 0
}

func export(path string, res polycube.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close export file: %w", cerr)
		}
	}()
	return polycube.WriteJSON(f, res.Shapes)
}
