// Package geom holds the small world-space value types shared by the
// physics, camera, scene and prompt packages.
package geom

import "math"

// Point is a position in world or screen pixels.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// IsZero reports whether either dimension is unset.
func (s Size) IsZero() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// PercentOf treats r as percentages (0-100) of outer and returns the
// resolved rectangle.
func (r Rect) PercentOf(outer Rect) Rect {
	return Rect{
		X: outer.X + r.X*outer.W/100,
		Y: outer.Y + r.Y*outer.H/100,
		W: r.W * outer.W / 100,
		H: r.H * outer.H / 100,
	}
}

// Percent is a position expressed as percentages (0-100) of a size.
type Percent struct {
	X float64 `yaml:"x_pct" json:"x_pct"`
	Y float64 `yaml:"y_pct" json:"y_pct"`
}

// Resolve converts a percentage anchor into pixels for the given size.
func (p Percent) Resolve(size Size) Point {
	return Point{X: p.X * size.W / 100, Y: p.Y * size.H / 100}
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp moves a toward b by fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
