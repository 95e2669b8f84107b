package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Run processes all existing decks, then optionally keeps watching the
// input directory. Decks run in parallel bounded by the worker count; each
// gets its own run directory through the pipeline, so parallel decks never
// share state.
func (b *implBatch) Run(ctx context.Context) error {
	if err := os.MkdirAll(b.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	decks, err := discoverDecks(b.cfg.Paths.Input)
	if err != nil {
		return fmt.Errorf("discover decks: %w", err)
	}
	if len(decks) == 0 && !b.watch {
		return fmt.Errorf("no deck directories in %s", b.cfg.Paths.Input)
	}

	b.logger.Info(ctx, "Found %d decks in %s (workers: %d)", len(decks), b.cfg.Paths.Input, b.cfg.Performance.MaxWorkers)

	sem := make(chan struct{}, b.cfg.Performance.MaxWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, failed := 0, 0

	dispatch := func(deckDir string) {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			ok := b.processDeck(ctx, deckDir)
			mu.Lock()
			if ok {
				succeeded++
			} else {
				failed++
			}
			mu.Unlock()
		}()
	}

	for _, d := range decks {
		dispatch(d)
	}

	if !b.watch {
		wg.Wait()
		b.logger.Info(ctx, "Batch complete: %d succeeded, %d failed", succeeded, failed)
		if succeeded == 0 && failed > 0 {
			return fmt.Errorf("all %d decks failed", failed)
		}
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(b.cfg.Paths.Input); err != nil {
		return fmt.Errorf("watch input dir: %w", err)
	}

	b.logger.Info(ctx, "Watching %s for new decks", b.cfg.Paths.Input)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info(ctx, "Waiting for in-flight decks to finish...")
			wg.Wait()
			b.logger.Info(ctx, "Batch stopped: %d succeeded, %d failed", succeeded, failed)
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil || !info.IsDir() {
				continue
			}
			b.logger.Info(ctx, "New deck detected: %s", event.Name)
			// Give the exporter time to finish writing slides.
			time.Sleep(500 * time.Millisecond)
			dispatch(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			b.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (b *implBatch) processDeck(ctx context.Context, deckDir string) bool {
	name := filepath.Base(filepath.Clean(deckDir))
	log := b.logger.WithPrefix(name)
	outputPath := filepath.Join(b.cfg.Paths.Output, name+".mp4")

	report, err := b.pipe.Run(ctx, deckDir, outputPath)
	if err != nil {
		log.Error(ctx, "Deck failed: %v", err)
		return false
	}

	if report.Dropped > 0 {
		log.Warn(ctx, "Finished with %d silent slides: %s", report.Dropped, report.Output)
	} else {
		log.Info(ctx, "Finished: %s", report.Output)
	}
	return true
}

// discoverDecks lists subdirectories of dir, name-sorted. Every
// subdirectory is treated as a deck; non-decks fail per-deck, not batch.
func discoverDecks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var decks []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		decks = append(decks, filepath.Join(dir, e.Name()))
	}
	sort.Strings(decks)
	return decks, nil
}
