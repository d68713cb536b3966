// Package svg holds the shared helpers for emitting SVG markup through etree:
// numeric formatting, transform expressions and the root canvas element.
package svg

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"pictor/pkg/geom"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Float formats a pixel coordinate as a decimal with no trailing zeros.
func Float(f float64) string {
	// Round away float noise so emitted markup is stable across runs.
	r := math.Round(f*1e9) / 1e9
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// TransformAttr builds the value of a transform attribute from an ordered
// transform list. Rotations without an explicit pivot use fallbackPivot,
// which callers resolve to the element's own center.
func TransformAttr(ts []geom.Transform, fallbackPivot geom.Point) string {
	if len(ts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		switch t.Kind {
		case geom.KindRotation:
			pivot := fallbackPivot
			if t.Pivot != nil {
				pivot = *t.Pivot
			}
			parts = append(parts, "rotate("+Float(t.Deg)+" "+Float(pivot.X)+" "+Float(pivot.Y)+")")
		case geom.KindScale:
			parts = append(parts, "scale("+Float(t.Sx)+" "+Float(t.Sy)+")")
		case geom.KindSkewX:
			parts = append(parts, "skewX("+Float(t.Deg)+")")
		case geom.KindSkewY:
			parts = append(parts, "skewY("+Float(t.Deg)+")")
		}
	}
	return strings.Join(parts, " ")
}

// NewCanvas creates an SVG document with a sized root element and an optional
// background fill covering the full canvas.
func NewCanvas(width, height float64, background string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("width", Float(width))
	root.CreateAttr("height", Float(height))
	root.CreateAttr("viewBox", "0 0 "+Float(width)+" "+Float(height))
	if background != "" {
		bg := root.CreateElement("rect")
		bg.CreateAttr("x", "0")
		bg.CreateAttr("y", "0")
		bg.CreateAttr("width", Float(width))
		bg.CreateAttr("height", Float(height))
		bg.CreateAttr("fill", background)
	}
	return doc, root
}
