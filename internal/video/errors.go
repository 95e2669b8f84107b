package video

import "errors"

var (
	// ErrSegmentEncode is fatal: a missing segment would break the
	// one-segment-per-slide assembly invariant.
	ErrSegmentEncode = errors.New("segment encode failed")

	// ErrAssemblyFailed means the final output is missing or empty.
	ErrAssemblyFailed = errors.New("video assembly produced no output")
)
