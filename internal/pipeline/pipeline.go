package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/slidecast/internal/deck"
	"github.com/nguyentantai21042004/slidecast/internal/script"
	"github.com/nguyentantai21042004/slidecast/internal/speech"
	"github.com/nguyentantai21042004/slidecast/internal/transcript"
	"github.com/nguyentantai21042004/slidecast/internal/video"
)

// Run drives one deck through every stage: load → script → synthesize →
// align → compose → transcript. Cancellation is cooperative: the context is
// checked at stage boundaries only, in-flight tool calls finish on their own.
func (p *implPipeline) Run(ctx context.Context, deckDir, outputPath string) (*Report, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Starting deck: %s", deckDir)

	d, err := deck.Load(deckDir)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	if p.cfg.Script.CourseName != "" {
		d.Title = p.cfg.Script.CourseName
	}
	p.logger.Info(ctx, "Deck %q: %d slides, %d text units", d.Title, len(d.Images), len(d.Units))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scripts := script.Generate(d.Units)
	if len(scripts) == 0 {
		return nil, fmt.Errorf("deck %q has no narratable content", d.Title)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Run dir is private to this invocation; parallel decks never share.
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	runDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "deck-*")
	if err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(runDir); err != nil {
			p.logger.Warn(ctx, "Failed to remove run dir %s: %v", runDir, err)
		}
	}()

	units := make([]speech.Unit, len(scripts))
	for i, s := range scripts {
		units[i] = speech.Unit{Page: s.Page, Text: s.Text}
	}

	results, err := p.scheduler.Synthesize(ctx, units, p.cfg.TTS.Language, runDir)
	if err != nil {
		return nil, fmt.Errorf("synthesize narration: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	aligned := speech.Align(results, len(d.Images))
	narrated := make(map[int]bool, len(results))
	for _, r := range results {
		narrated[r.Page] = true
	}

	slides := make([]video.Slide, len(aligned))
	for i, r := range aligned {
		if !narrated[r.Page] {
			p.logger.Warn(ctx, "Page %d has no own narration, reusing previous audio", r.Page)
		}
		slides[i] = video.Slide{Page: r.Page, ImagePath: d.Images[i], AudioPath: r.Path}
	}

	meta := video.Metadata{
		Title:     d.Title,
		Author:    p.cfg.Video.Author,
		CreatedAt: time.Now(),
	}
	final, err := p.composer.Compose(ctx, slides, meta, outputPath)
	if err != nil {
		return nil, err
	}

	transcriptPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".docx"
	if err := transcript.Write(d.Title, scripts, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to write transcript: %v", err)
	}

	report := &Report{
		Output:   final.Path,
		Title:    final.Title,
		Slides:   len(d.Images),
		Narrated: len(results),
		Dropped:  len(d.Images) - len(results),
		Seconds:  final.Seconds,
	}

	p.logger.Info(ctx, "Deck %q done in %s: %d/%d slides narrated, %.1fs video",
		d.Title, time.Since(startTime).Round(time.Millisecond), report.Narrated, report.Slides, report.Seconds)

	return report, nil
}
