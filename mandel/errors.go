package mandel

import "errors"

// Sentinel errors for plane construction.
var (
	// ErrBadSamples indicates a non-positive axis sample count.
	ErrBadSamples = errors.New("mandel: sample count must be positive")
)
