package speech

import "errors"

var (
	// ErrSynthesisFailed means every engine in the chain failed for one
	// unit. The unit is dropped; the batch continues.
	ErrSynthesisFailed = errors.New("all speech engines failed")

	// ErrNoNarration means no unit in a batch produced audio at all.
	ErrNoNarration = errors.New("no script unit produced audio")
)
