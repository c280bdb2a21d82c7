// Package lvlarr is your in-memory playground for elementwise numeric
// computation over N-dimensional complex arrays — from shape primitives
// to broadcast evaluation and escape-time fractals.
//
// 🚀 What is lvlarr?
//
//	A modern, thread-safe, zero-dependency library that brings together:
//		• Core primitives: shapes, strides, immutable complex128 arrays
//		• Broadcasting: NumPy-style alignment of compatible shapes
//		• Universal functions: plug a scalar kernel, get a vectorized call
//		• Parallelism: deterministic worker partitioning over coordinates
//		• Escape-time maps: the z = z² + c Mandelbrot iteration, ready-made
//		• Special functions: logit/expit companions for the same contract
//
// ✨ Why choose lvlarr?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable inputs, bit-identical results
//     regardless of worker count
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – any func(complex128, complex128) complex128 becomes
//     a broadcast-aware elementwise operation
//
// Under the hood, everything is organized under small subpackages:
//
//	array/   — Shape, Array, broadcasting rules & sentinel errors
//	ufunc/   — elementwise application of scalar kernels, worker options
//	mandel/  — the bounded iterated-map evaluator z = z² + c
//	special/ — logit & expit scalar/slice kernels
//
// Quick ASCII example:
//
//	    (1,n) ─┐
//	           ├── broadcast ──► (n,n)
//	    (n,1) ─┘
//
//	two degenerate axes combine into a full parameter plane.
//
// Dive into the examples/ walkthroughs and the per-package
// example_test.go files for runnable demonstrations.
//
//	go get github.com/katalvlaran/lvlarr
package lvlarr
