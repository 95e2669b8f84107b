package video

import (
	"context"
	"time"
)

// Composer assembles ordered (image, audio) slide pairs into one narrated
// video whose per-slide durations come from the actual audio lengths.
type Composer interface {
	Compose(ctx context.Context, slides []Slide, meta Metadata, outputPath string) (*Final, error)
}

// Slide pairs one slide image with its narration audio. Exactly one audio
// per slide; alignment upstream guarantees it.
type Slide struct {
	Page      int
	ImagePath string
	AudioPath string
}

// Metadata is stamped onto the final container.
type Metadata struct {
	Title     string
	Author    string
	CreatedAt time.Time
}

// Final describes the terminal artifact of a run.
type Final struct {
	Path    string
	Title   string
	Seconds float64
}

// segment is one slide's rendered clip, deleted after assembly.
type segment struct {
	page    int
	path    string
	seconds float64
}
