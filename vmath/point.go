package vmath

import "math"

// Point is a position in cell units; fractional parts are sub-cell offsets
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: float64(x), Y: float64(y)}
func Pt(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Cell rounds to the nearest terminal cell
func (p Point) Cell() (x, y int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Near reports whether both axis deltas are below eps
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

// Lerp interpolates linearly, t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint interpolates both axes with the same t
func LerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// Clamp01 bounds t to [0,1]
func Clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
