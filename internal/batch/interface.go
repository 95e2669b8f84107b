package batch

import "context"

// Batch processes every deck directory under the configured input dir,
// producing one video per deck in the output dir. In watch mode it keeps
// running and picks up newly dropped decks.
type Batch interface {
	Run(ctx context.Context) error
}
