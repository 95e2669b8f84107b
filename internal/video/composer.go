package video

import (
	"context"
	"fmt"
	"os"
)

// Compose runs durations → segments → assembly for one deck. Segment and
// assembly stages are sequential: both depend on the complete ordered set.
// The working directory is private to this invocation and removed on
// success; removal failures are logged, never propagated.
func (c *implComposer) Compose(ctx context.Context, slides []Slide, meta Metadata, outputPath string) (*Final, error) {
	if len(slides) == 0 {
		return nil, fmt.Errorf("no slides to compose")
	}

	if err := os.MkdirAll(c.cfg.Paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	workDir, err := os.MkdirTemp(c.cfg.Paths.Temp, "compose-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}

	c.logger.Info(ctx, "Composing %d slides -> %s", len(slides), outputPath)

	segments := make([]segment, 0, len(slides))
	total := 0.0
	for _, s := range slides {
		if err := ctx.Err(); err != nil {
			c.cleanupWorkDir(ctx, workDir)
			return nil, err
		}

		seconds := c.durationOf(ctx, s.AudioPath)
		c.logger.Debug(ctx, "Page %d duration: %.2fs", s.Page, seconds)

		seg, err := c.buildSegment(ctx, s, seconds, workDir)
		if err != nil {
			// One missing segment breaks the assembly invariant; the
			// whole run aborts.
			c.cleanupWorkDir(ctx, workDir)
			return nil, err
		}
		segments = append(segments, seg)
		total += seconds
	}

	if err := ctx.Err(); err != nil {
		c.cleanupWorkDir(ctx, workDir)
		return nil, err
	}

	if err := c.assemble(ctx, segments, meta, workDir, outputPath); err != nil {
		c.cleanupWorkDir(ctx, workDir)
		return nil, err
	}

	c.cleanupWorkDir(ctx, workDir)
	c.logger.Info(ctx, "Video assembled: %s (%.1fs, %d slides)", outputPath, total, len(slides))

	return &Final{Path: outputPath, Title: meta.Title, Seconds: total}, nil
}

func (c *implComposer) cleanupWorkDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		c.logger.Warn(ctx, "Failed to remove work dir %s: %v", dir, err)
	}
}
