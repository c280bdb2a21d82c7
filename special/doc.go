// Package special provides the logit and expit scalar kernels and their
// elementwise slice forms — the companion exercise to the escape-time
// kernel: same contract, real-valued domain.
//
// What:
//
//   - Logit(p) = log(p / (1-p)), the inverse of the logistic sigmoid.
//   - Expit(x) = 1 / (1 + exp(-x)), the logistic sigmoid itself.
//   - LogitSlice/ExpitSlice apply them independently per element,
//     returning freshly allocated outputs.
//
// Domain edges follow IEEE-754 rather than erroring, matching the
// escape-time kernel's stance on non-finite values:
//
//   - Logit(0) = -Inf, Logit(1) = +Inf
//   - Logit(p) = NaN outside [0,1]
//   - Expit saturates to 0 and 1 at the infinities
//
// Complexity: O(1) per element, zero allocations in the scalar kernels.
package special
