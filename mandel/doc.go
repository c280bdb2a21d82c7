// Package mandel implements the bounded escape-time iteration z = z² + c
// as a pure scalar kernel, plus helpers to sweep it over a complex plane.
//
// What:
//
//   - Evaluate(z0, c) applies z = z² + c up to MaxIterations times,
//     stopping early once the squared magnitude exceeds
//     DivergenceThreshold, and returns the final value. It is directly
//     assignable to ufunc.Kernel.
//   - Escaped reports whether a final value crossed the threshold.
//   - Mandelbrot sweeps Evaluate with a fixed start of 0 over a parameter
//     array — the conventional Mandelbrot definition.
//   - ReAxis/ImAxis/Plane build the parameter grid the way the classic
//     tutorial does: a (1,n) real row and an (n,1) imaginary column that
//     broadcast into the full plane.
//
// Why:
//
//   - The canonical "write a custom elementwise kernel" example: five
//     lines of arithmetic, with looping and broadcasting delegated to
//     the ufunc machinery.
//   - Escape-time rendering: feed the output and Escaped to any image
//     writer.
//
// Numeric semantics:
//
//   - IEEE-754 float64 real and imaginary components throughout.
//   - Complex multiplication uses (a+bi)(c+di) = (ac−bd) + (ad+bc)i.
//   - Squared magnitude is re²+im², no square root.
//   - Non-finite inputs are not rejected: NaN/∞ propagate through the
//     arithmetic and are a terminal numeric outcome, never an error.
//
// Complexity:
//
//   - Evaluate: O(MaxIterations) time, zero allocations.
//   - Mandelbrot/Plane: O(size × MaxIterations) and O(size) respectively.
//
// Errors:
//
//   - ErrBadSamples: an axis or plane was requested with a non-positive
//     sample count.
//   - Errors from the array and ufunc packages pass through unchanged.
package mandel
