package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEaseOut_Endpoints(t *testing.T) {
	assert.Equal(t, 0.0, EaseOut.At(0))
	assert.Equal(t, 1.0, EaseOut.At(1))
	assert.Equal(t, 0.0, EaseOut.At(-0.5))
	assert.Equal(t, 1.0, EaseOut.At(2))
}

func TestEaseOut_MonotonicAndAheadOfLinear(t *testing.T) {
	prev := 0.0
	for i := 1; i < 100; i++ {
		x := float64(i) / 100
		y := EaseOut.At(x)
		assert.GreaterOrEqual(t, y, prev, "x=%v", x)
		assert.Greater(t, y, x, "ease-out leads linear progress at x=%v", x)
		prev = y
	}
}

func TestEaseOut_KnownValues(t *testing.T) {
	// Reference values for cubic-bezier(0, 0, 0.58, 1).
	tests := []struct {
		x    float64
		want float64
	}{
		{x: 0.25, want: 0.3781},
		{x: 0.5, want: 0.6846},
		{x: 0.75, want: 0.9066},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, EaseOut.At(tt.x), 0.005, "x=%v", tt.x)
	}
}

func TestCubicBezier_CSS(t *testing.T) {
	assert.Equal(t, "cubic-bezier(0, 0, 0.58, 1)", EaseOut.CSS())
	assert.Equal(t, "cubic-bezier(0.25, 0.1, 0.25, 1)", CubicBezier{0.25, 0.1, 0.25, 1}.CSS())
}

func TestCubicBezier_LinearCurve(t *testing.T) {
	linear := CubicBezier{X1: 0, Y1: 0, X2: 1, Y2: 1}
	for _, x := range []float64{0.1, 0.33, 0.5, 0.9} {
		assert.InDelta(t, x, linear.At(x), 1e-4)
	}
}
