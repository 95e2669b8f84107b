package speech

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

type implScheduler struct {
	resolver Resolver
	logger   logger.Logger
	workers  int
}

// NewScheduler wraps a Resolver with bounded parallel execution. Completion
// order is irrelevant; results always come back in page order.
func NewScheduler(resolver Resolver, log logger.Logger, workers int) Scheduler {
	if workers <= 0 {
		workers = 4
	}
	return &implScheduler{
		resolver: resolver,
		logger:   log,
		workers:  workers,
	}
}

// Synthesize resolves every unit concurrently, bounded by the worker count.
// Units whose resolution fails or yields nothing are dropped. The batch
// fails only when no unit at all produced audio.
func (s *implScheduler) Synthesize(ctx context.Context, units []Unit, language, dir string) ([]Result, error) {
	if len(units) == 0 {
		return nil, nil
	}

	paths := make([]string, len(units))
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	for i, u := range units {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}

		wg.Add(1)
		go func(i int, u Unit) {
			defer wg.Done()
			defer func() { <-sem }()

			outPath := filepath.Join(dir, fmt.Sprintf("narration_%03d.mp3", u.Page))
			path, err := s.resolver.Resolve(ctx, u.Text, language, outPath)
			if err != nil {
				s.logger.Warn(ctx, "Page %d narration failed: %v", u.Page, err)
				return
			}
			if path == "" {
				s.logger.Debug(ctx, "Page %d has nothing to synthesize", u.Page)
				return
			}
			paths[i] = path
		}(i, u)
	}

	wg.Wait()

	var results []Result
	for i, u := range units {
		if paths[i] != "" {
			results = append(results, Result{Page: u.Page, Path: paths[i]})
		}
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Page < results[b].Page })

	if len(results) == 0 {
		return nil, ErrNoNarration
	}

	s.logger.Info(ctx, "Synthesized %d/%d script units", len(results), len(units))
	return results, nil
}

// Align maps synthesis results onto exactly one artifact per page 1..pages.
// A page without its own artifact reuses the nearest prior successful one
// (or the first successful one for leading gaps); excess results are
// truncated. Guarantees a 1:1 slide-to-audio pairing downstream.
func Align(results []Result, pages int) []Result {
	if pages <= 0 || len(results) == 0 {
		return nil
	}

	byPage := make(map[int]string, len(results))
	for _, r := range results {
		byPage[r.Page] = r.Path
	}

	aligned := make([]Result, 0, pages)
	last := ""
	for p := 1; p <= pages; p++ {
		if path, ok := byPage[p]; ok {
			last = path
		} else if last == "" {
			last = results[0].Path
		}
		aligned = append(aligned, Result{Page: p, Path: last})
	}
	return aligned
}
