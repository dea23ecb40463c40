// Package scan runs a pure word predicate over a word slice, optionally in parallel.
package scan

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

const defaultChunkSize = 4096

// Observer receives scan progress. Calls are serialized.
type Observer func(done, total int)

// Options tunes a scan. The zero value uses one worker per CPU.
type Options struct {
	Workers   int
	ChunkSize int
	Observer  Observer
}

// Filter returns the words for which keep returns true, in input order.
// keep must be safe for concurrent use.
func Filter(ctx context.Context, words []string, keep func(string) bool, opts Options) ([]string, error) {
	total := len(words)
	if total == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if opts.Observer != nil {
			opts.Observer(0, 0)
		}
		return nil, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	size := opts.ChunkSize
	if size <= 0 {
		size = defaultChunkSize
	}
	chunks := (total + size - 1) / size
	results := make([][]string, chunks)

	var mu sync.Mutex
	done := 0
	report := func(n int) {
		if opts.Observer == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		done += n
		opts.Observer(done, total)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < chunks; i++ {
		i := i
		start := i * size
		end := min(start+size, total)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var kept []string
			for _, w := range words[start:end] {
				if keep(w) {
					kept = append(kept, w)
				}
			}
			results[i] = kept
			report(end - start)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	count := 0
	for _, r := range results {
		count += len(r)
	}
	out := make([]string, 0, count)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}
