// Package ufunc turns scalar kernels into vectorized, broadcast-aware
// operations over complex arrays — the "universal function" contract.
//
// What:
//
//   - Kernel is any func(x, y complex128) complex128; UnaryKernel is the
//     one-operand variant.
//   - Apply evaluates a Kernel at every coordinate of the broadcast output
//     shape of two arrays; ApplyUnary does the same for one array.
//   - Options.Workers splits the row-major coordinate space into disjoint
//     contiguous ranges, one goroutine per range. Results are bit-identical
//     for any worker count because no coordinate reads another's state.
//
// Why:
//
//   - Write the interesting five lines (the kernel), delegate the looping,
//     broadcasting and partitioning to the machinery.
//   - Parameter sweeps: evaluate an iterated map over a whole complex plane
//     built from two degenerate axes.
//
// Complexity:
//
//   - Apply/ApplyUnary: O(size × kernel) time, O(size) memory for the
//     freshly allocated output; no other allocation per coordinate.
//
// Errors:
//
//   - ErrNilKernel: the kernel argument is nil.
//   - ErrBadWorkers: Options.Workers is negative.
//   - array.ErrNilArray: an operand is nil.
//   - array.ErrShapeMismatch: operand shapes are not broadcast-compatible;
//     Apply fails before any output is produced.
package ufunc
