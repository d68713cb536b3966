package shape

import (
	"fmt"

	"github.com/beevik/etree"

	"pictor/pkg/element"
	"pictor/pkg/svg"
	textmeasure "pictor/pkg/text"
	"pictor/pkg/unit"
)

// TextConfig configures a new text label.
type TextConfig struct {
	Content    string
	FontSize   any // unit-parsed; zero means 16px
	Fill       string
	FontFamily string
}

// Text is a single-line label. Its box size comes from measuring the content
// at construction time, so labels participate in flow layout like any other
// sized element.
type Text struct {
	element.Bounded

	Content    string
	FontSize   float64
	Fill       string
	FontFamily string
}

// NewText builds a label from cfg and sizes it by measuring the content.
func NewText(cfg TextConfig) (*Text, error) {
	size, err := unit.Parse(cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("text font size: %w", err)
	}
	if size == 0 {
		size = 16
	}
	t := &Text{
		Content:    cfg.Content,
		FontSize:   size,
		Fill:       cfg.Fill,
		FontFamily: cfg.FontFamily,
	}
	t.Init(t)
	w, h := textmeasure.MeasureDefault(cfg.Content, size)
	t.SetSize(w, h)
	return t, nil
}

// Emit appends an SVG text node. SVG anchors text at the baseline, so the y
// coordinate sits most of the way down the measured box.
func (t *Text) Emit(parent *etree.Element) {
	bb := t.BorderBox()
	e := parent.CreateElement("text")
	e.CreateAttr("x", svg.Float(bb.X))
	e.CreateAttr("y", svg.Float(bb.Y+bb.Height*0.8))
	e.CreateAttr("font-size", svg.Float(t.FontSize))
	if t.FontFamily != "" {
		e.CreateAttr("font-family", t.FontFamily)
	}
	fill := t.Fill
	if fill == "" {
		fill = "black"
	}
	e.CreateAttr("fill", fill)
	t.WriteTransform(e)
	e.SetText(t.Content)
}
