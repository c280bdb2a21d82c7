package mandel

import (
	"github.com/katalvlaran/lvlarr/array"
	"github.com/katalvlaran/lvlarr/ufunc"
)

const (
	// MaxIterations caps the recurrence, guaranteeing termination.
	MaxIterations = 100
	// DivergenceThreshold is the squared-magnitude bound beyond which the
	// iteration is considered to have escaped and stops early.
	DivergenceThreshold = 1000.0
)

// Evaluate applies z = z² + c starting from z0, at most MaxIterations
// times, stopping immediately after an update whose squared magnitude
// exceeds DivergenceThreshold, and returns the final value.
//
// Pure and allocation-free: no state outside the two inputs is read or
// written, so it is safe as a ufunc.Kernel under any worker count.
// Non-finite inputs propagate per IEEE-754; Evaluate never fails.
// Complexity: O(MaxIterations), zero allocations.
func Evaluate(z0, c complex128) complex128 {
	zr, zi := real(z0), imag(z0)
	cr, ci := real(c), imag(c)
	for it := 0; it < MaxIterations; it++ {
		// z = z² + c
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi > DivergenceThreshold {
			break
		}
	}

	return complex(zr, zi)
}

// Escaped reports whether z lies beyond the divergence threshold:
// re²+im² > DivergenceThreshold. Values still below it after
// MaxIterations belong to the plotted set.
// Complexity: O(1).
func Escaped(z complex128) bool {
	return real(z)*real(z)+imag(z)*imag(z) > DivergenceThreshold
}

// Mandelbrot sweeps Evaluate with a fixed start of 0 over every parameter
// in c — the conventional Mandelbrot definition. The scalar zero start
// broadcasts against any parameter shape.
//
// The alternate self-start form, applying the recurrence to an ensemble as
// both start and parameter, remains expressible as
// ufunc.Apply(mandel.Evaluate, c, c, opts); it is a broadcasting
// demonstration rather than a second semantic.
//
// Returns the errors of ufunc.Apply.
// Complexity: O(size × MaxIterations) time, O(size) memory.
func Mandelbrot(c *array.Array, opts ufunc.Options) (*array.Array, error) {
	return ufunc.Apply(Evaluate, array.Scalar(0), c, opts)
}
