package element

import (
	"fmt"

	"pictor/pkg/svg"
)

// ArtboardConfig configures the root of an element tree.
type ArtboardConfig struct {
	Width      any // unit-parsed; nil or "auto" derives from children
	Height     any
	Background string
	Padding    any

	Direction Direction
	Align     Alignment
	Spacing   float64
	Columns   int
}

// Artboard is the parent-less root container. Its own position is always
// {0,0} in world space; Render forces one arrangement pass over the whole
// tree ("ensure finalized") before serializing, because no parent exists to
// trigger arrangement on the root's behalf.
type Artboard struct {
	Container

	background string
}

// NewArtboard builds a root container from cfg.
func NewArtboard(cfg ArtboardConfig) (*Artboard, error) {
	inner, err := NewContainer(ContainerConfig{
		Direction: cfg.Direction,
		Align:     cfg.Align,
		Spacing:   cfg.Spacing,
		Columns:   cfg.Columns,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Padding:   cfg.Padding,
	})
	if err != nil {
		return nil, fmt.Errorf("artboard: %w", err)
	}
	a := &Artboard{Container: *inner, background: cfg.Background}
	a.Init(a)
	return a, nil
}

// Render resolves the whole tree and returns a self-contained SVG fragment.
// Children are wrapped in a sized canvas element with the configured
// background fill; coordinates are absolute decimal pixels.
func (a *Artboard) Render() (string, error) {
	a.EnsureArranged()

	w, h := a.Size()
	doc, root := svg.NewCanvas(w, h, a.background)

	entries := collectTree(a)
	sortByStacking(entries)
	for _, entry := range entries {
		entry.el.Emit(root)
	}

	doc.Indent(2)
	return doc.WriteToString()
}
