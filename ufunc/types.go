// Package ufunc defines kernel signatures and options for the ufunc
// subpackage of github.com/katalvlaran/lvlarr.
package ufunc

// Kernel is a pure scalar function applied independently to corresponding
// entries of two broadcast operands. It must not read or mutate any state
// outside its two inputs: the machinery may invoke it from several
// goroutines at once.
type Kernel func(x, y complex128) complex128

// UnaryKernel is the one-operand counterpart of Kernel, applied to every
// entry of a single array. The same purity requirement applies.
type UnaryKernel func(x complex128) complex128

// Options configures elementwise application.
//
// Fields:
//   - Workers — number of goroutines the row-major coordinate space is
//     partitioned across. 0 or 1 evaluates sequentially. Any value never
//     changes the result, only the scheduling: partitions are disjoint and
//     coordinates carry no cross-dependencies. Negative values are
//     rejected with ErrBadWorkers.
//
// Example:
//
//	opts := ufunc.Options{Workers: runtime.NumCPU()}
//	out, err := ufunc.Apply(mandel.Kernel, starts, params, opts)
type Options struct {
	Workers int
}

// DefaultOptions returns Options with sequential evaluation (Workers=1).
func DefaultOptions() Options {
	return Options{Workers: 1}
}
