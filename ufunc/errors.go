package ufunc

import "errors"

// Sentinel errors for elementwise application.
var (
	// ErrNilKernel indicates a nil kernel function.
	ErrNilKernel = errors.New("ufunc: kernel must be non-nil")
	// ErrBadWorkers indicates a negative Options.Workers value.
	ErrBadWorkers = errors.New("ufunc: Workers must be zero or positive")
)
