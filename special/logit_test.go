package special_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlarr/special"
	"github.com/stretchr/testify/assert"
)

// TestLogit_KnownValues checks the midpoint and a symmetric pair.
func TestLogit_KnownValues(t *testing.T) {
	assert.Equal(t, 0.0, special.Logit(0.5), "logit of 1/2 is 0")
	assert.InDelta(t, math.Log(3), special.Logit(0.75), 1e-15)
	assert.InDelta(t, -math.Log(3), special.Logit(0.25), 1e-15)
}

// TestLogit_DomainEdges verifies IEEE-754 propagation instead of errors.
func TestLogit_DomainEdges(t *testing.T) {
	assert.True(t, math.IsInf(special.Logit(0), -1), "Logit(0) = -Inf")
	assert.True(t, math.IsInf(special.Logit(1), +1), "Logit(1) = +Inf")
	assert.True(t, math.IsNaN(special.Logit(-0.1)), "below domain is NaN")
	assert.True(t, math.IsNaN(special.Logit(1.1)), "above domain is NaN")
}

// TestExpit_InvertsLogit round-trips interior points through both kernels.
func TestExpit_InvertsLogit(t *testing.T) {
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		assert.InDelta(t, p, special.Expit(special.Logit(p)), 1e-12, "p=%v", p)
	}
	assert.Equal(t, 0.0, special.Expit(math.Inf(-1)))
	assert.Equal(t, 1.0, special.Expit(math.Inf(+1)))
}

// TestLogitSlice_Elementwise checks independence and input immutability.
func TestLogitSlice_Elementwise(t *testing.T) {
	in := []float64{0.25, 0.5, 0.75}
	out := special.LogitSlice(in)

	assert.Len(t, out, 3)
	for i, p := range in {
		assert.Equal(t, special.Logit(p), out[i], "element %d", i)
	}
	assert.Equal(t, []float64{0.25, 0.5, 0.75}, in, "input must be unchanged")
}

// TestExpitSlice_Elementwise mirrors the slice contract for Expit.
func TestExpitSlice_Elementwise(t *testing.T) {
	in := []float64{-2, 0, 2}
	out := special.ExpitSlice(in)

	assert.Len(t, out, 3)
	assert.Equal(t, 0.5, out[1])
	assert.InDelta(t, 1-out[0], out[2], 1e-15, "sigmoid symmetry")
}
