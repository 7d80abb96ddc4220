// internal/pipeline/match.go
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"mutscan/internal/matcher"
	"mutscan/internal/motif"
	"mutscan/internal/runutil"
)

// Match scans every distinct left pattern of cat against all reads, one task
// per pattern on at most threads workers (0 = all CPUs). onDone, if non-nil,
// is called after each finished pattern and must be safe for concurrent use.
//
// The result holds each pattern's matches in read order, patterns in catalog
// order.
func Match(ctx context.Context, threads int, cat *motif.Catalog, reads []string, onDone func()) ([]matcher.RawMatch, error) {
	lefts := cat.Lefts()
	slots := make([][]matcher.RawMatch, len(lefts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runutil.EffectiveThreads(threads, len(lefts)))
	for i := range lefts {
		g.Go(func() error {
			ms, err := matcher.Scan(gctx, cat.Regexp(i), reads)
			if err != nil {
				return err
			}
			slots[i] = ms
			if onDone != nil {
				onDone()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, s := range slots {
		n += len(s)
	}
	out := make([]matcher.RawMatch, 0, n)
	for _, s := range slots {
		out = append(out, s...)
	}
	return out, nil
}
