package video

import (
	"context"
	"strconv"
	"strings"
)

const (
	minSlideSeconds     = 1.0
	maxSlideSeconds     = 30.0
	defaultSlideSeconds = 3.0
)

// durationOf reads the decoded length of an audio artifact via ffprobe and
// clamps it to the slide duration window. Unreadable audio yields the fixed
// default instead of failing the run.
func (c *implComposer) durationOf(ctx context.Context, audioPath string) float64 {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	}

	out, err := c.exec.Execute(ctx, "ffprobe", args...)
	if err != nil {
		c.logger.Warn(ctx, "ffprobe failed for %s, using default duration: %v", audioPath, err)
		return defaultSlideSeconds
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil || seconds <= 0 {
		c.logger.Warn(ctx, "Unparseable duration %q for %s, using default", strings.TrimSpace(out), audioPath)
		return defaultSlideSeconds
	}

	return clampSeconds(seconds)
}

// clampSeconds bounds a measured audio length to [1.0, 30.0] seconds.
func clampSeconds(seconds float64) float64 {
	if seconds < minSlideSeconds {
		return minSlideSeconds
	}
	if seconds > maxSlideSeconds {
		return maxSlideSeconds
	}
	return seconds
}
