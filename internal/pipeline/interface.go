package pipeline

import "context"

// Pipeline converts one deck directory into one narrated video.
type Pipeline interface {
	Run(ctx context.Context, deckDir, outputPath string) (*Report, error)
}

// Report is the caller-visible outcome of a run. Partial success (video
// produced, some slides silent) is still success; Dropped carries the
// warning count.
type Report struct {
	Output   string
	Title    string
	Slides   int
	Narrated int
	Dropped  int
	Seconds  float64
}
