package shape

import (
	"fmt"
	"math"

	"github.com/beevik/etree"

	"pictor/pkg/element"
	"pictor/pkg/geom"
	"pictor/pkg/svg"
	"pictor/pkg/unit"
)

// LineConfig configures a new line segment. Endpoints are offsets from the
// element's anchor position.
type LineConfig struct {
	X1, Y1      any
	X2, Y2      any
	Stroke      string
	StrokeWidth float64
}

// Line is a straight segment. Its endpoints can be bound to other elements'
// centers, so the line follows them when they move.
type Line struct {
	element.Base

	start geom.Point
	end   geom.Point

	Stroke      string
	StrokeWidth float64
}

// NewLine builds a line from cfg.
func NewLine(cfg LineConfig) (*Line, error) {
	coords := [4]float64{}
	for i, v := range []any{cfg.X1, cfg.Y1, cfg.X2, cfg.Y2} {
		f, err := unit.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("line endpoint: %w", err)
		}
		coords[i] = f
	}
	l := &Line{
		start:       geom.Pt(coords[0], coords[1]),
		end:         geom.Pt(coords[2], coords[3]),
		Stroke:      cfg.Stroke,
		StrokeWidth: cfg.StrokeWidth,
	}
	l.Init(l)
	return l, nil
}

// Start returns the world-absolute start point.
func (l *Line) Start() geom.Point {
	return l.AbsolutePosition().Add(l.start)
}

// End returns the world-absolute end point.
func (l *Line) End() geom.Point {
	return l.AbsolutePosition().Add(l.end)
}

// Angle returns the segment's direction in degrees.
func (l *Line) Angle() float64 {
	d := l.end.Sub(l.start)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

// Size returns the axis-aligned extent of the segment.
func (l *Line) Size() (float64, float64) {
	return math.Abs(l.end.X - l.start.X), math.Abs(l.end.Y - l.start.Y)
}

// Center returns the world-absolute midpoint.
func (l *Line) Center() geom.Point {
	return l.Start().Add(l.End()).Scale(0.5)
}

// AnchorOffset reports where the stored anchor sits within the occupied
// extent, so flow layout places the segment by its bounding box.
func (l *Line) AnchorOffset() geom.Point {
	return geom.Pt(-math.Min(l.start.X, l.end.X), -math.Min(l.start.Y, l.end.Y))
}

// BindStartTo keeps the start endpoint on source's center: it is updated
// now and synchronously whenever source moves.
func (l *Line) BindStartTo(source element.Element) error {
	c, ok := source.(element.Centered)
	if !ok {
		return fmt.Errorf("line: bind source has no center")
	}
	l.Bind("start", source, func() {
		l.start = c.Center().Sub(l.AbsolutePosition())
	})
	return nil
}

// BindEndTo keeps the end endpoint on source's center.
func (l *Line) BindEndTo(source element.Element) error {
	c, ok := source.(element.Centered)
	if !ok {
		return fmt.Errorf("line: bind source has no center")
	}
	l.Bind("end", source, func() {
		l.end = c.Center().Sub(l.AbsolutePosition())
	})
	return nil
}

// Emit appends an SVG line.
func (l *Line) Emit(parent *etree.Element) {
	s, e := l.Start(), l.End()
	el := parent.CreateElement("line")
	el.CreateAttr("x1", svg.Float(s.X))
	el.CreateAttr("y1", svg.Float(s.Y))
	el.CreateAttr("x2", svg.Float(e.X))
	el.CreateAttr("y2", svg.Float(e.Y))
	stroke := l.Stroke
	if stroke == "" {
		stroke = "black"
	}
	el.CreateAttr("stroke", stroke)
	if l.StrokeWidth > 0 {
		el.CreateAttr("stroke-width", svg.Float(l.StrokeWidth))
	}
	l.WriteTransform(el)
}
