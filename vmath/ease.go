package vmath

import "math"

// Easing maps linear progress in [0,1] to eased progress
type Easing func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 { return Clamp01(t) }

// CubicBezier is a timing curve through (0,0), (X1,Y1), (X2,Y2), (1,1)
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Ease matches the stock "ease" timing curve
var Ease = CubicBezier{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}

const (
	bezierNewtonIterations = 8
	bezierBisectIterations = 24
	bezierEpsilon          = 1e-6
)

func bezier(a1, a2, t float64) float64 {
	// B(t) with P0=0, P3=1
	u := 1 - t
	return 3*u*u*t*a1 + 3*u*t*t*a2 + t*t*t
}

func bezierSlope(a1, a2, t float64) float64 {
	u := 1 - t
	return 3*u*u*a1 + 6*u*t*(a2-a1) + 3*t*t*(1-a2)
}

// At returns the eased value for progress x
func (c CubicBezier) At(x float64) float64 {
	x = Clamp01(x)
	if x == 0 || x == 1 {
		return x
	}
	return bezier(c.Y1, c.Y2, c.solveT(x))
}

// solveT inverts the x polynomial: Newton first, bisection when the slope flattens
func (c CubicBezier) solveT(x float64) float64 {
	t := x
	for range bezierNewtonIterations {
		dx := bezier(c.X1, c.X2, t) - x
		if math.Abs(dx) < bezierEpsilon {
			return t
		}
		slope := bezierSlope(c.X1, c.X2, t)
		if math.Abs(slope) < bezierEpsilon {
			break
		}
		t -= dx / slope
	}

	lo, hi := 0.0, 1.0
	t = x
	for range bezierBisectIterations {
		v := bezier(c.X1, c.X2, t)
		if math.Abs(v-x) < bezierEpsilon {
			return t
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// Func adapts the curve to an Easing
func (c CubicBezier) Func() Easing {
	return c.At
}
