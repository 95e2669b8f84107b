package speech

import "context"

// Engine is one synthesis backend in the fallback chain: given text and a
// language, write audio bytes to outputPath or fail. The chain never retries
// inside an engine.
type Engine interface {
	Name() string
	Available() bool
	Synthesize(ctx context.Context, text, language, outputPath string) error
}

// Resolver turns one block of script text into an audio artifact: cache
// lookup, engine chain fallback, cache population. An empty path with a nil
// error means there was nothing to synthesize.
type Resolver interface {
	Resolve(ctx context.Context, text, language, outputPath string) (string, error)
}

// Scheduler runs the Resolver concurrently over all script units of a deck
// and reassembles results in page order.
type Scheduler interface {
	Synthesize(ctx context.Context, units []Unit, language, dir string) ([]Result, error)
}

// Unit is the per-slide synthesis input: page number and script text.
type Unit struct {
	Page int
	Text string
}

// Result is one synthesized audio artifact bound to its page.
type Result struct {
	Page int
	Path string
}
