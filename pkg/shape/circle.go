package shape

import (
	"fmt"

	"github.com/beevik/etree"

	"pictor/pkg/element"
	"pictor/pkg/geom"
	"pictor/pkg/svg"
	"pictor/pkg/unit"
)

// CircleConfig configures a new circle.
type CircleConfig struct {
	Radius      any
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Circle stores its position as its center rather than a rectangular
// top-left, and aligns using its radius from that center.
type Circle struct {
	element.Base

	radius      float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// NewCircle builds a circle from cfg.
func NewCircle(cfg CircleConfig) (*Circle, error) {
	r, err := unit.Parse(cfg.Radius)
	if err != nil {
		return nil, fmt.Errorf("circle radius: %w", err)
	}
	c := &Circle{
		radius:      r,
		Fill:        cfg.Fill,
		Stroke:      cfg.Stroke,
		StrokeWidth: cfg.StrokeWidth,
	}
	c.Init(c)
	return c, nil
}

// Radius returns the circle's radius in pixels.
func (c *Circle) Radius() float64 { return c.radius }

// Size returns the circle's bounding extent.
func (c *Circle) Size() (float64, float64) {
	return 2 * c.radius, 2 * c.radius
}

// Center is the stored anchor itself.
func (c *Circle) Center() geom.Point {
	return c.AbsolutePosition()
}

// AnchorOffset reports that the stored position is the center, not the
// occupied area's top-left.
func (c *Circle) AnchorOffset() geom.Point {
	return geom.Pt(c.radius, c.radius)
}

// AlignmentPoint aligns using the radius from the center-stored position.
func (c *Circle) AlignmentPoint(h element.HAlign, v element.VAlign) geom.Point {
	p := c.Center()
	switch h {
	case element.HLeft:
		p.X -= c.radius
	case element.HRight:
		p.X += c.radius
	}
	switch v {
	case element.VTop:
		p.Y -= c.radius
	case element.VBottom:
		p.Y += c.radius
	}
	return p
}

// Emit appends an SVG circle.
func (c *Circle) Emit(parent *etree.Element) {
	center := c.Center()
	e := parent.CreateElement("circle")
	e.CreateAttr("cx", svg.Float(center.X))
	e.CreateAttr("cy", svg.Float(center.Y))
	e.CreateAttr("r", svg.Float(c.radius))
	writePaint(e, c.Fill, c.Stroke, c.StrokeWidth)
	c.WriteTransform(e)
}
