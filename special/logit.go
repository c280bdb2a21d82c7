package special

import "math"

// Logit returns log(p / (1-p)), the log-odds of p.
// Logit(0) = -Inf, Logit(1) = +Inf, NaN outside [0,1]; never errors.
// Complexity: O(1), zero allocations.
func Logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

// Expit returns the logistic sigmoid 1 / (1 + exp(-x)), the inverse of
// Logit. Saturates to 0 and 1 at the infinities.
// Complexity: O(1), zero allocations.
func Expit(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// LogitSlice applies Logit independently to every element of p and
// returns a freshly allocated result; p is left untouched.
// Complexity: O(len).
func LogitSlice(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = Logit(v)
	}

	return out
}

// ExpitSlice applies Expit independently to every element of x and
// returns a freshly allocated result; x is left untouched.
// Complexity: O(len).
func ExpitSlice(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = Expit(v)
	}

	return out
}
