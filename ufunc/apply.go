package ufunc

import (
	"sync"

	"github.com/katalvlaran/lvlarr/array"
)

// Apply evaluates k at every coordinate of the broadcast output shape of
// a and b and returns the freshly allocated result.
//
// The output shape follows array.BroadcastShapes; incompatible shapes fail
// with array.ErrShapeMismatch before any output exists. Each coordinate is
// computed independently from its resolved operand pair, so results are
// identical for any Options.Workers value.
//
// Returns ErrNilKernel, ErrBadWorkers, array.ErrNilArray or
// array.ErrShapeMismatch.
// Complexity: O(size × kernel) time, O(size) memory.
func Apply(k Kernel, a, b *array.Array, opts Options) (*array.Array, error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	if opts.Workers < 0 {
		return nil, ErrBadWorkers
	}
	br, err := array.NewBroadcaster(a, b)
	if err != nil {
		return nil, err
	}

	buf := make([]complex128, br.Size())
	forEachRange(len(buf), opts.Workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			x, y := br.Pair(i)
			buf[i] = k(x, y)
		}
	})

	return array.New(br.OutShape(), buf)
}

// ApplyUnary evaluates k at every entry of a and returns the freshly
// allocated result with the same shape.
//
// Returns ErrNilKernel, ErrBadWorkers or array.ErrNilArray.
// Complexity: O(size × kernel) time, O(size) memory.
func ApplyUnary(k UnaryKernel, a *array.Array, opts Options) (*array.Array, error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	if opts.Workers < 0 {
		return nil, ErrBadWorkers
	}
	if a == nil {
		return nil, array.ErrNilArray
	}

	buf := a.Data()
	forEachRange(len(buf), opts.Workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			buf[i] = k(buf[i])
		}
	})

	return array.New(a.Shape(), buf)
}

// forEachRange partitions [0,n) into at most workers contiguous disjoint
// ranges and runs fn over each, joining before returning. workers ≤ 1 runs
// inline. Each index belongs to exactly one range, so concurrent writers
// touch non-overlapping output regions and need no locking.
func forEachRange(n, workers int, fn func(lo, hi int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 || n == 0 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
