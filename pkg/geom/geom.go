package geom

import "math"

// Point is a 2D coordinate in pixels. Stored on an element it is relative to
// the element's parent; returned from a public accessor it is world-absolute.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the euclidean length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalized returns the unit vector pointing in p's direction.
// The second return value is false for the zero vector.
func (p Point) Normalized() (Point, bool) {
	l := p.Length()
	if l == 0 {
		return Point{}, false
	}
	return Point{X: p.X / l, Y: p.Y / l}, true
}

// Edge represents the four sides of a box (top, right, bottom, left).
type Edge struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformEdge returns an Edge with the same value on all four sides.
func UniformEdge(v float64) Edge {
	return Edge{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the combined left and right extent.
func (e Edge) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom extent.
func (e Edge) Vertical() float64 {
	return e.Top + e.Bottom
}

// Rect represents a rectangular region.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.Width, o.X+o.Width)
	maxY := math.Max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ExpandedBy returns the rect grown outward by the given edges.
func (r Rect) ExpandedBy(e Edge) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Horizontal(),
		Height: r.Height + e.Vertical(),
	}
}

// InsetBy returns the rect shrunk inward by the given edges.
func (r Rect) InsetBy(e Edge) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Horizontal(),
		Height: r.Height - e.Vertical(),
	}
}
