// Package shape provides the concrete leaf elements: rectangles, circles,
// lines and text. Shapes embed the element core and implement the capability
// interfaces the layout engine queries.
package shape

import (
	"fmt"

	"github.com/beevik/etree"

	"pictor/pkg/element"
	"pictor/pkg/svg"
	"pictor/pkg/unit"
)

// RectConfig configures a new rectangle.
type RectConfig struct {
	Width        any
	Height       any
	Fill         string
	Stroke       string
	StrokeWidth  float64
	CornerRadius float64
}

// Rect is an axis-aligned rectangle drawn at its border box.
type Rect struct {
	element.Bounded

	Fill         string
	Stroke       string
	StrokeWidth  float64
	CornerRadius float64
}

// NewRect builds a rectangle from cfg.
func NewRect(cfg RectConfig) (*Rect, error) {
	w, err := unit.Parse(cfg.Width)
	if err != nil {
		return nil, fmt.Errorf("rect width: %w", err)
	}
	h, err := unit.Parse(cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("rect height: %w", err)
	}
	r := &Rect{
		Fill:         cfg.Fill,
		Stroke:       cfg.Stroke,
		StrokeWidth:  cfg.StrokeWidth,
		CornerRadius: cfg.CornerRadius,
	}
	r.Init(r)
	r.SetSize(w, h)
	return r, nil
}

// Emit appends an SVG rect at the border box.
func (r *Rect) Emit(parent *etree.Element) {
	bb := r.BorderBox()
	e := parent.CreateElement("rect")
	e.CreateAttr("x", svg.Float(bb.X))
	e.CreateAttr("y", svg.Float(bb.Y))
	e.CreateAttr("width", svg.Float(bb.Width))
	e.CreateAttr("height", svg.Float(bb.Height))
	if r.CornerRadius > 0 {
		e.CreateAttr("rx", svg.Float(r.CornerRadius))
	}
	writePaint(e, r.Fill, r.Stroke, r.StrokeWidth)
	r.WriteTransform(e)
}

// writePaint sets the fill/stroke attributes shared by all shapes.
func writePaint(e *etree.Element, fill, stroke string, strokeWidth float64) {
	if fill == "" {
		fill = "none"
	}
	e.CreateAttr("fill", fill)
	if stroke != "" {
		e.CreateAttr("stroke", stroke)
		if strokeWidth > 0 {
			e.CreateAttr("stroke-width", svg.Float(strokeWidth))
		}
	}
}
