package reveal

import (
	"fmt"
	"math"
	"strconv"
)

// CubicBezier is a CSS timing function through (0,0), (X1,Y1), (X2,Y2), (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// EaseOut matches the CSS "ease-out" keyword.
var EaseOut = CubicBezier{X1: 0, Y1: 0, X2: 0.58, Y2: 1}

// At returns the eased value for linear progress t in [0,1].
func (b CubicBezier) At(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return sample(b.Y1, b.Y2, b.solveX(t))
}

// CSS renders the curve as a cubic-bezier() timing function.
func (b CubicBezier) CSS() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)", f(b.X1), f(b.Y1), f(b.X2), f(b.Y2))
}

// solveX finds the curve parameter whose x coordinate is x.
func (b CubicBezier) solveX(x float64) float64 {
	const epsilon = 1e-7

	s := x
	for i := 0; i < 8; i++ {
		dx := sample(b.X1, b.X2, s) - x
		if math.Abs(dx) < epsilon {
			return s
		}
		d := slope(b.X1, b.X2, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= dx / d
	}

	lo, hi := 0.0, 1.0
	s = x
	for lo < hi {
		v := sample(b.X1, b.X2, s)
		if math.Abs(v-x) < epsilon {
			return s
		}
		if x > v {
			lo = s
		} else {
			hi = s
		}
		next := (hi-lo)/2 + lo
		if next == s {
			break
		}
		s = next
	}
	return s
}

// sample evaluates one coordinate of the curve at parameter s.
func sample(p1, p2, s float64) float64 {
	c := 3 * p1
	b := 3*(p2-p1) - c
	a := 1 - c - b
	return ((a*s+b)*s + c) * s
}

func slope(p1, p2, s float64) float64 {
	c := 3 * p1
	b := 3*(p2-p1) - c
	a := 1 - c - b
	return (3*a*s+2*b)*s + c
}
