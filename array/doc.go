// Package array provides the core data model for elementwise complex
// computation: declared shapes, row-major strides, immutable complex128
// arrays, and NumPy-style broadcasting between compatible shapes.
//
// What:
//
//   - Shape describes dimension sizes; the empty Shape is a valid scalar.
//   - Array wraps a row-major []complex128 with a Shape; constructors
//     deep-copy their inputs so an Array never aliases caller memory.
//   - BroadcastShapes aligns two shapes right-to-left: sizes must match,
//     or be 1, or be absent (treated as 1); otherwise ErrShapeMismatch.
//   - Broadcaster resolves, for every coordinate of the broadcast output
//     shape, the corresponding element of each operand.
//
// Why:
//
//   - Universal functions: one scalar kernel applied over whole arrays.
//   - Parameter sweeps: combine a (1,n) axis with an (n,1) axis into a
//     full (n,n) plane without materializing either operand expanded.
//   - Deterministic numerics: no shared mutable state, no hidden caches.
//
// Complexity:
//
//   - BroadcastShapes: O(max rank) time, O(max rank) memory.
//   - Broadcaster.Pair: O(rank) per coordinate, zero allocations.
//   - Constructors: O(size) time and memory (one deep copy).
//
// Errors:
//
//   - ErrNegativeDim: a shape dimension is zero or negative.
//   - ErrLengthMismatch: data length does not match the declared shape.
//   - ErrEmptyGrid: a 2D constructor input has no rows or no columns.
//   - ErrRaggedGrid: rows of a 2D constructor input differ in length.
//   - ErrIndexOutOfRange: an accessor coordinate or index is out of range.
//   - ErrShapeMismatch: two shapes are not broadcast-compatible.
//   - ErrNilArray: a nil *Array was passed where a value is required.
package array
