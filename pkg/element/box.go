package element

import "pictor/pkg/geom"

// HAlign selects a horizontal alignment column.
type HAlign int

const (
	HLeft HAlign = iota
	HCenter
	HRight
)

// VAlign selects a vertical alignment row.
type VAlign int

const (
	VTop VAlign = iota
	VMiddle
	VBottom
)

// Box is one of the four derived rectangles of a Bounded element, anchored
// at a world-absolute top-left. It answers the nine named alignment points.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (b Box) TopLeft() geom.Point      { return geom.Pt(b.X, b.Y) }
func (b Box) TopCenter() geom.Point    { return geom.Pt(b.X+b.Width/2, b.Y) }
func (b Box) TopRight() geom.Point     { return geom.Pt(b.X+b.Width, b.Y) }
func (b Box) CenterLeft() geom.Point   { return geom.Pt(b.X, b.Y+b.Height/2) }
func (b Box) Center() geom.Point       { return geom.Pt(b.X+b.Width/2, b.Y+b.Height/2) }
func (b Box) CenterRight() geom.Point  { return geom.Pt(b.X+b.Width, b.Y+b.Height/2) }
func (b Box) BottomLeft() geom.Point   { return geom.Pt(b.X, b.Y+b.Height) }
func (b Box) BottomCenter() geom.Point { return geom.Pt(b.X+b.Width/2, b.Y+b.Height) }
func (b Box) BottomRight() geom.Point  { return geom.Pt(b.X+b.Width, b.Y+b.Height) }

// Point maps a 3x3 alignment request onto the box.
func (b Box) Point(h HAlign, v VAlign) geom.Point {
	p := b.TopLeft()
	switch h {
	case HCenter:
		p.X += b.Width / 2
	case HRight:
		p.X += b.Width
	}
	switch v {
	case VMiddle:
		p.Y += b.Height / 2
	case VBottom:
		p.Y += b.Height
	}
	return p
}

// Rect returns the box as a plain rectangle.
func (b Box) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Bounded adds the box model to an element: margin/border/padding spacing
// around a border-box extent. The element's stored position is the border
// box top-left; all four boxes share that anchor chain and differ only by
// fixed offsets derived from the spacing.
type Bounded struct {
	Base

	margin  geom.Edge
	border  geom.Edge
	padding geom.Edge
	width   float64 // border-box width
	height  float64 // border-box height
}

// SetSize sets the border-box extent.
func (bd *Bounded) SetSize(width, height float64) {
	bd.width = width
	bd.height = height
	bd.invalidateParent()
}

// Size returns the border-box extent.
func (bd *Bounded) Size() (float64, float64) {
	return bd.width, bd.height
}

func (bd *Bounded) SetMargin(e geom.Edge) {
	bd.margin = e
	bd.invalidateParent()
}

func (bd *Bounded) Margin() geom.Edge { return bd.margin }

func (bd *Bounded) SetBorder(e geom.Edge) {
	bd.border = e
	bd.invalidateParent()
}

func (bd *Bounded) Border() geom.Edge { return bd.border }

func (bd *Bounded) SetPadding(e geom.Edge) {
	bd.padding = e
	bd.invalidateParent()
}

func (bd *Bounded) Padding() geom.Edge { return bd.padding }

// BorderBox is the outer rectangle of the element's own drawn extent.
func (bd *Bounded) BorderBox() Box {
	abs := bd.AbsolutePosition()
	return Box{X: abs.X, Y: abs.Y, Width: bd.width, Height: bd.height}
}

// MarginBox is the border box expanded by the margin.
func (bd *Bounded) MarginBox() Box {
	bb := bd.BorderBox()
	return Box{
		X:      bb.X - bd.margin.Left,
		Y:      bb.Y - bd.margin.Top,
		Width:  bb.Width + bd.margin.Horizontal(),
		Height: bb.Height + bd.margin.Vertical(),
	}
}

// PaddingBox is the border box shrunk by the border widths.
func (bd *Bounded) PaddingBox() Box {
	bb := bd.BorderBox()
	return Box{
		X:      bb.X + bd.border.Left,
		Y:      bb.Y + bd.border.Top,
		Width:  bb.Width - bd.border.Horizontal(),
		Height: bb.Height - bd.border.Vertical(),
	}
}

// ContentBox is the border box shrunk by border and padding.
func (bd *Bounded) ContentBox() Box {
	pb := bd.PaddingBox()
	return Box{
		X:      pb.X + bd.padding.Left,
		Y:      pb.Y + bd.padding.Top,
		Width:  pb.Width - bd.padding.Horizontal(),
		Height: pb.Height - bd.padding.Vertical(),
	}
}

// Center returns the border-box center.
func (bd *Bounded) Center() geom.Point {
	return bd.BorderBox().Center()
}

// AlignmentPoint maps the 3x3 alignment grid onto the border box. Shapes
// with non-rectangular anchor semantics shadow this method.
func (bd *Bounded) AlignmentPoint(h HAlign, v VAlign) geom.Point {
	return bd.BorderBox().Point(h, v)
}
