package element

import (
	"fmt"
	"math"

	"github.com/beevik/etree"

	"pictor/pkg/geom"
	"pictor/pkg/svg"
	"pictor/pkg/unit"
)

// Direction selects a container's layout arrangement.
type Direction int

const (
	// Freeform containers let children position themselves arbitrarily.
	Freeform Direction = iota
	Horizontal
	Vertical
	Grid
)

// Alignment positions children on the cross axis (and within grid cells).
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ContainerConfig configures a new container. Width/Height accept anything
// the unit parser does; nil or "auto" selects auto-sizing from the arranged
// children.
type ContainerConfig struct {
	Direction Direction
	Align     Alignment
	Spacing   float64
	Columns   int // Grid only; defaults to 1
	Width     any
	Height    any
	Padding   any // edge-parsed: uniform value, 4-slice or per-side map

	// Optional background primitive emitted at the border box.
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Container is a Bounded element owning an ordered list of children. It
// positions them according to its direction and, when auto-sizing, derives
// its own size from the arranged children. Arrangement runs at most once per
// cycle: the arranged guard is cleared by any child mutation and re-derived
// on the next absolute-position-dependent query.
type Container struct {
	Bounded

	children  []Element
	direction Direction
	align     Alignment
	spacing   float64
	columns   int
	autoSize  bool
	arranged  bool

	fill        string
	stroke      string
	strokeWidth float64
}

// NewContainer builds a container from cfg.
func NewContainer(cfg ContainerConfig) (*Container, error) {
	c := &Container{
		direction:   cfg.Direction,
		align:       cfg.Align,
		spacing:     cfg.Spacing,
		columns:     cfg.Columns,
		fill:        cfg.Fill,
		stroke:      cfg.Stroke,
		strokeWidth: cfg.StrokeWidth,
	}
	c.Init(c)
	if c.columns < 1 {
		c.columns = 1
	}
	if err := c.configureSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	if cfg.Padding != nil {
		p, err := unit.ParseEdge(cfg.Padding)
		if err != nil {
			return nil, fmt.Errorf("container: %w", err)
		}
		c.SetPadding(p)
	}
	return c, nil
}

func (c *Container) configureSize(width, height any) error {
	if isAuto(width) || isAuto(height) {
		c.autoSize = true
		return nil
	}
	w, err := unit.Parse(width)
	if err != nil {
		return fmt.Errorf("container width: %w", err)
	}
	h, err := unit.Parse(height)
	if err != nil {
		return fmt.Errorf("container height: %w", err)
	}
	c.SetSize(w, h)
	return nil
}

func isAuto(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == "auto"
}

// Children returns the child list in insertion order.
func (c *Container) Children() []Element { return c.children }

// AddElement attaches child to this container, severing any previous parent
// link. A child that was absolutely positioned keeps its world position: its
// coordinates are converted into this container's space exactly once, here,
// so that moving the container afterward moves the child correctly.
func (c *Container) AddElement(child Element) {
	cb := child.core()
	if cb.absolute {
		abs := cb.AbsolutePosition()
		cb.rel = abs.Sub(c.ChildOrigin())
	}
	if old, ok := cb.parent.(interface{ RemoveElement(Element) }); ok {
		old.RemoveElement(child)
	}
	cb.parent = c.core().self
	c.children = append(c.children, child)
	c.Invalidate()
}

// RemoveElement detaches child. The child keeps its current relative
// coordinates, which become world-relative if it is left parentless.
func (c *Container) RemoveElement(child Element) {
	kept := c.children[:0]
	for _, el := range c.children {
		if el != child {
			kept = append(kept, el)
		}
	}
	c.children = kept
	child.core().parent = nil
	c.Invalidate()
}

// ChildOrigin returns the world-absolute content-box origin children measure
// their relative positions from.
func (c *Container) ChildOrigin() geom.Point {
	abs := c.AbsolutePosition()
	return abs.Add(geom.Pt(c.border.Left+c.padding.Left, c.border.Top+c.padding.Top))
}

// Invalidate clears the arranged guard here and on every ancestor, so the
// next query re-derives the layout instead of serving a stale one.
func (c *Container) Invalidate() {
	c.arranged = false
	c.invalidateParent()
}

// childPositioned is called when a child opts out of flow via Position.
func (c *Container) childPositioned(Element) {
	c.Invalidate()
}

// EnsureArranged runs the arrangement algorithm once per cycle. Re-running
// on an unchanged tree is idempotent: directional layout assigns offsets
// from scratch and the freeform normalization shift is zero once applied.
func (c *Container) EnsureArranged() {
	if c.arranged {
		return
	}
	c.arranged = true

	// Nested containers are arranged first so their auto-derived sizes are
	// current when this layout measures them.
	for _, child := range c.children {
		if arr, ok := child.(Arranger); ok {
			arr.EnsureArranged()
		}
	}

	rels := make([]geom.Point, len(c.children))
	for i, child := range c.children {
		rels[i] = child.core().rel
	}

	switch c.direction {
	case Horizontal, Vertical:
		c.arrangeAxis()
	case Grid:
		c.arrangeGrid()
	}
	if c.autoSize {
		c.fitToChildren()
	}

	// Arrangement writes child positions directly; dependents bound to a
	// moved child are refreshed once the layout has settled.
	for i, child := range c.children {
		if child.core().rel != rels[i] {
			child.core().notifyDependents()
		}
	}
}

// flowChildren returns the children that participate in automatic layout.
func (c *Container) flowChildren() []Element {
	flow := make([]Element, 0, len(c.children))
	for _, child := range c.children {
		if child.core().absolute {
			continue
		}
		flow = append(flow, child)
	}
	return flow
}

// arrangeAxis positions flow children along the layout axis in insertion
// order, using spacing on the main axis and the alignment policy on the
// cross axis.
func (c *Container) arrangeAxis() {
	flow := c.flowChildren()
	if len(flow) == 0 {
		return
	}

	cross := c.crossExtent(flow)
	cursor := 0.0
	for _, child := range flow {
		w, h := outerSize(child)
		var topLeft geom.Point
		if c.direction == Horizontal {
			topLeft = geom.Pt(cursor, alignOffset(c.align, cross, h))
			cursor += w + c.spacing
		} else {
			topLeft = geom.Pt(alignOffset(c.align, cross, w), cursor)
			cursor += h + c.spacing
		}
		placeChild(child, topLeft)
	}
}

// crossExtent returns the cross-axis extent children align within: the
// content-box extent for fixed containers, the largest child for auto-sized
// ones.
func (c *Container) crossExtent(flow []Element) float64 {
	if !c.autoSize {
		if c.direction == Horizontal {
			return c.height - c.border.Vertical() - c.padding.Vertical()
		}
		return c.width - c.border.Horizontal() - c.padding.Horizontal()
	}
	max := 0.0
	for _, child := range flow {
		w, h := outerSize(child)
		ext := h
		if c.direction == Vertical {
			ext = w
		}
		if ext > max {
			max = ext
		}
	}
	return max
}

// arrangeGrid places flow children into fixed-size cells, row-major with
// c.columns cells per row. Cell size is the largest child extent; the
// alignment policy applies inside each cell on both axes.
func (c *Container) arrangeGrid() {
	flow := c.flowChildren()
	if len(flow) == 0 {
		return
	}

	var cellW, cellH float64
	for _, child := range flow {
		w, h := outerSize(child)
		cellW = math.Max(cellW, w)
		cellH = math.Max(cellH, h)
	}
	for i, child := range flow {
		col := i % c.columns
		row := i / c.columns
		w, h := outerSize(child)
		topLeft := geom.Pt(
			float64(col)*(cellW+c.spacing)+alignOffset(c.align, cellW, w),
			float64(row)*(cellH+c.spacing)+alignOffset(c.align, cellH, h),
		)
		placeChild(child, topLeft)
	}
}

// fitToChildren derives the container's own size from the union of the
// children's occupied extents. For freeform containers, children that drifted
// to negative coordinates are first shifted by the negation of the minimum so
// every coordinate becomes non-negative; the shift happens at most once
// because after it the minimum is zero.
func (c *Container) fitToChildren() {
	if len(c.children) == 0 {
		c.width = c.border.Horizontal() + c.padding.Horizontal()
		c.height = c.border.Vertical() + c.padding.Vertical()
		return
	}

	minP := geom.Pt(math.Inf(1), math.Inf(1))
	maxP := geom.Pt(math.Inf(-1), math.Inf(-1))
	for _, child := range c.children {
		r := childExtent(child)
		minP.X = math.Min(minP.X, r.X)
		minP.Y = math.Min(minP.Y, r.Y)
		maxP.X = math.Max(maxP.X, r.X+r.Width)
		maxP.Y = math.Max(maxP.Y, r.Y+r.Height)
	}

	shift := geom.Pt(math.Max(0, -minP.X), math.Max(0, -minP.Y))
	if shift.X != 0 || shift.Y != 0 {
		for _, child := range c.children {
			cb := child.core()
			cb.rel = cb.rel.Add(shift)
		}
		maxP = maxP.Add(shift)
	}

	c.width = maxP.X + c.padding.Horizontal() + c.border.Horizontal()
	c.height = maxP.Y + c.padding.Vertical() + c.border.Vertical()
}

// alignOffset returns the cross-axis offset of a child of extent size within
// the available extent.
func alignOffset(a Alignment, available, size float64) float64 {
	switch a {
	case AlignCenter:
		return (available - size) / 2
	case AlignEnd:
		return available - size
	default:
		return 0
	}
}

// outerSize returns the full extent a child occupies in flow: the margin box
// for box-model elements, the plain size otherwise.
func outerSize(child Element) (float64, float64) {
	if bd, ok := child.(Boundable); ok {
		s, isSized := child.(Sized)
		if !isSized {
			return 0, 0
		}
		w, h := s.Size()
		m := bd.Margin()
		return w + m.Horizontal(), h + m.Vertical()
	}
	if s, ok := child.(Sized); ok {
		return s.Size()
	}
	return 0, 0
}

// placeChild sets a child's relative position so its occupied area's
// top-left is at topLeft in the parent's content space, compensating for
// margins and non-top-left anchors.
func placeChild(child Element, topLeft geom.Point) {
	pos := topLeft
	if bd, ok := child.(Boundable); ok {
		m := bd.Margin()
		pos = pos.Add(geom.Pt(m.Left, m.Top))
	}
	if a, ok := child.(Anchored); ok {
		pos = pos.Add(a.AnchorOffset())
	}
	child.core().rel = pos
}

// childExtent returns the rect a child occupies in the parent's content
// space, derived from its relative position.
func childExtent(child Element) geom.Rect {
	cb := child.core()
	pos := cb.rel
	if a, ok := child.(Anchored); ok {
		pos = pos.Sub(a.AnchorOffset())
	}
	if bd, ok := child.(Boundable); ok {
		m := bd.Margin()
		pos = pos.Sub(geom.Pt(m.Left, m.Top))
	}
	w, h := outerSize(child)
	return geom.Rect{X: pos.X, Y: pos.Y, Width: w, Height: h}
}

// Emit writes the container's background primitive, if any, at its border
// box. Containers themselves never emit other visual primitives; their
// children are serialized separately in z-order.
func (c *Container) Emit(parent *etree.Element) {
	if c.fill == "" && c.stroke == "" {
		return
	}
	bb := c.BorderBox()
	e := parent.CreateElement("rect")
	e.CreateAttr("x", svg.Float(bb.X))
	e.CreateAttr("y", svg.Float(bb.Y))
	e.CreateAttr("width", svg.Float(bb.Width))
	e.CreateAttr("height", svg.Float(bb.Height))
	if c.fill != "" {
		e.CreateAttr("fill", c.fill)
	} else {
		e.CreateAttr("fill", "none")
	}
	if c.stroke != "" {
		e.CreateAttr("stroke", c.stroke)
		if c.strokeWidth > 0 {
			e.CreateAttr("stroke-width", svg.Float(c.strokeWidth))
		}
	}
	c.WriteTransform(e)
}
