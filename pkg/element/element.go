// Package element implements the positioning, box-model and arrangement core:
// the abstract element base, the Bounded box-model mixin, the Container
// arrangement algorithm and the Artboard root that serializes the resolved
// tree to SVG.
package element

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"pictor/pkg/geom"
	"pictor/pkg/logging"
	"pictor/pkg/svg"
	"pictor/pkg/unit"
)

// ErrZeroVector is returned when a direction vector has zero length.
var ErrZeroVector = errors.New("element: zero-length direction vector")

// Element is the contract every positionable entity implements. Concrete
// elements embed Base, which supplies the unexported core accessor, and
// provide their own Emit.
type Element interface {
	core() *Base

	// Emit appends this element's SVG representation to parent. Containers
	// emit at most a background primitive; the root serializes children
	// separately in z-order.
	Emit(parent *etree.Element)
}

// Capability interfaces. Cross-element queries (alignment targets, rotation
// pivots, flow sizing) go through these instead of structural probing.

// Sized is implemented by elements with a drawn extent (border-box for
// Bounded elements, diameter for circles).
type Sized interface {
	Size() (width, height float64)
}

// Centered is implemented by elements that expose a world-absolute center,
// usable as a rotation pivot or binding source.
type Centered interface {
	Center() geom.Point
}

// Angled is implemented by elements with an intrinsic direction, such as
// lines; Rotate can take its angle from one.
type Angled interface {
	Angle() float64
}

// Boundable is implemented by elements carrying the full box model.
type Boundable interface {
	Margin() geom.Edge
	MarginBox() Box
	BorderBox() Box
}

// Aligned is implemented by elements that can answer 3x3 alignment-point
// queries. Bounded maps them onto its border box; shapes with different
// anchor semantics (circles) override.
type Aligned interface {
	AlignmentPoint(h HAlign, v VAlign) geom.Point
}

// Anchored is implemented by elements whose stored position is not their
// visual top-left (a circle stores its center). AnchorOffset is the vector
// from the occupied area's top-left to the stored anchor.
type Anchored interface {
	AnchorOffset() geom.Point
}

// Grouped is implemented by elements that own children.
type Grouped interface {
	Children() []Element
}

// Arranger is implemented by containers: layout state that must be finalized
// before any absolute-position query and invalidated on mutation.
type Arranger interface {
	EnsureArranged()
	Invalidate()
}

// originProvider is implemented by containers; children measure their
// relative position from the parent's content-box origin.
type originProvider interface {
	ChildOrigin() geom.Point
}

// flowParent is notified when a child opts out of flow via Position.
type flowParent interface {
	childPositioned(Element)
}

// creationCounter is the process-lifetime monotonic counter used as the
// stable z-order tie-break.
var creationCounter atomic.Int64

type dependent struct {
	target Element
	update func()
}

type binding struct {
	source Element
	update func()
}

// Base carries the state shared by every element: position relative to the
// parent, the ordered transform list, the non-owning parent reference,
// z-order inputs and the reactive dependency registry.
type Base struct {
	self       Element
	rel        geom.Point
	transforms []geom.Transform
	parent     Element
	zIndex     int
	hasZIndex  bool
	creation   int64
	absolute   bool
	dependents []dependent
	bindings   map[string]binding
}

// Init wires the concrete element into its embedded Base and assigns the
// creation index. Every constructor must call it exactly once.
func (b *Base) Init(self Element) {
	b.self = self
	b.creation = creationCounter.Add(1)
}

func (b *Base) core() *Base { return b }

// BaseOf exposes an element's Base to other packages.
func BaseOf(el Element) *Base { return el.core() }

// Self returns the concrete element this Base belongs to.
func (b *Base) Self() Element { return b.self }

// Parent returns the element's parent, or nil at the root.
func (b *Base) Parent() Element { return b.parent }

// RelativePosition returns the position relative to the parent's content-box
// origin (world-relative with no parent).
func (b *Base) RelativePosition() geom.Point { return b.rel }

// SetRelativePosition moves the element within its parent's space and
// invalidates any arranged ancestor layout.
func (b *Base) SetRelativePosition(p geom.Point) {
	b.rel = p
	b.invalidateParent()
	b.notifyDependents()
}

// CreationIndex returns the monotonic creation counter value.
func (b *Base) CreationIndex() int64 { return b.creation }

// SetZIndex assigns an explicit stacking override.
func (b *Base) SetZIndex(z int) {
	b.zIndex = z
	b.hasZIndex = true
}

// ZIndex returns the explicit z-index and whether one was set.
func (b *Base) ZIndex() (int, bool) { return b.zIndex, b.hasZIndex }

// IsAbsolutelyPositioned reports whether Position removed this element from
// its parent's flow layout.
func (b *Base) IsAbsolutelyPositioned() bool { return b.absolute }

// Transforms returns the ordered transform list.
func (b *Base) Transforms() []geom.Transform { return b.transforms }

// PositionConfig describes a Position call: place this element so that its
// reference point From lands at To plus the extra (X, Y) offset.
type PositionConfig struct {
	From geom.Point // reference point on this element, world-absolute
	To   geom.Point // target anchor point, world-absolute
	X    any        // extra offset, unit-parsed (nil means 0)
	Y    any

	// RespectMargin biases the offset outward by this element's margin on
	// the side of travel.
	RespectMargin bool
}

// Position applies offset = To - From + (X, Y) to the element's relative
// position and marks it absolutely positioned: from this point its position
// is independent of any automatic arrangement by the parent container.
// Dependents are notified synchronously before Position returns.
func (b *Base) Position(cfg PositionConfig) error {
	dx, err := unit.Parse(cfg.X)
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	dy, err := unit.Parse(cfg.Y)
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	off := cfg.To.Sub(cfg.From).Add(geom.Pt(dx, dy))

	if cfg.RespectMargin {
		if bd, ok := b.self.(Boundable); ok {
			m := bd.Margin()
			if off.X > 0 {
				off.X += m.Left
			} else if off.X < 0 {
				off.X -= m.Right
			}
			if off.Y > 0 {
				off.Y += m.Top
			} else if off.Y < 0 {
				off.Y -= m.Bottom
			}
		}
	}

	b.rel = b.rel.Add(off)
	b.absolute = true
	if p, ok := b.parent.(flowParent); ok {
		p.childPositioned(b.self)
	}
	b.notifyDependents()
	return nil
}

// RotateConfig describes a Rotate call. The angle comes from Deg (when
// HasDeg is set) or from an Angled RelativeTo. The pivot comes from Pivot,
// from a Centered RelativeTo, or defaults to the element's own center
// resolved lazily at render time.
type RotateConfig struct {
	Deg        float64
	HasDeg     bool
	RelativeTo Element
	Pivot      *geom.Point
}

// Rotate appends a rotation transform. Multiple calls accumulate. A call
// with no resolvable angle logs a warning and is a no-op.
func (b *Base) Rotate(cfg RotateConfig) {
	deg, ok := cfg.Deg, cfg.HasDeg
	if !ok {
		if a, isAngled := cfg.RelativeTo.(Angled); isAngled {
			deg, ok = a.Angle(), true
		}
	}
	if !ok {
		logging.L().Warn("rotate: no angle given and relativeTo has none; ignoring call",
			zap.Int64("element", b.creation))
		return
	}

	pivot := cfg.Pivot
	if pivot == nil && cfg.RelativeTo != nil {
		if c, isCentered := cfg.RelativeTo.(Centered); isCentered {
			p := c.Center()
			pivot = &p
		}
	}

	b.transforms = append(b.transforms, geom.Rotation(deg, pivot))
	b.notifyDependents()
}

// RotateBy appends a rotation of deg degrees around the lazy self-center.
func (b *Base) RotateBy(deg float64) {
	b.Rotate(RotateConfig{Deg: deg, HasDeg: true})
}

// Translate moves the element by distance along the unit-normalized along
// vector. A zero-length along returns ErrZeroVector.
func (b *Base) Translate(along geom.Point, distance any) error {
	dist, err := unit.Parse(distance)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	dir, ok := along.Normalized()
	if !ok {
		return fmt.Errorf("translate: %w", ErrZeroVector)
	}
	b.rel = b.rel.Add(dir.Scale(dist))
	b.invalidateParent()
	b.notifyDependents()
	return nil
}

// AbsolutePosition resolves the element's world-absolute anchor position.
// With no parent the relative position is the absolute position; otherwise
// it is the parent's content-box origin plus the relative position,
// recursively. Querying through a container forces that container's
// arrangement first, so a child is never observed against a stale layout.
func (b *Base) AbsolutePosition() geom.Point {
	if b.parent == nil {
		return b.rel
	}
	if arr, ok := b.parent.(Arranger); ok {
		arr.EnsureArranged()
	}
	if o, ok := b.parent.(originProvider); ok {
		return o.ChildOrigin().Add(b.rel)
	}
	return b.parent.core().AbsolutePosition().Add(b.rel)
}

// AddDependent registers target to be updated whenever this element's
// position or rotation mutates.
func (b *Base) AddDependent(target Element, update func()) {
	b.dependents = append(b.dependents, dependent{target: target, update: update})
}

// Bind registers a named binding from one of this element's derived points to
// source. update recomputes the derived geometry; it runs once immediately
// and again, synchronously, whenever source mutates. Rebinding the same name
// replaces the previous registration on its source.
func (b *Base) Bind(name string, source Element, update func()) {
	if b.bindings == nil {
		b.bindings = make(map[string]binding)
	}
	if old, ok := b.bindings[name]; ok {
		old.source.core().removeDependent(b.self)
	}
	b.bindings[name] = binding{source: source, update: update}
	source.core().AddDependent(b.self, update)
	update()
}

func (b *Base) removeDependent(target Element) {
	kept := b.dependents[:0]
	for _, d := range b.dependents {
		if d.target != target {
			kept = append(kept, d)
		}
	}
	b.dependents = kept
}

// notifyDependents walks the dependent set depth-first and synchronously, so
// a caller observing a dependent immediately after mutating its source sees
// consistent derived geometry. Binding graphs are acyclic by construction.
func (b *Base) notifyDependents() {
	for _, d := range b.dependents {
		d.update()
		d.target.core().notifyDependents()
	}
}

func (b *Base) invalidateParent() {
	if arr, ok := b.parent.(Arranger); ok {
		arr.Invalidate()
	}
}

// WriteTransform sets the transform attribute on e from the element's
// transform list. Rotations without an explicit pivot resolve to the
// element's own center here, after arrangement has finalized; the center is
// only computed when some rotation actually needs it.
func (b *Base) WriteTransform(e *etree.Element) {
	if len(b.transforms) == 0 {
		return
	}
	var pivot geom.Point
	for _, t := range b.transforms {
		if t.Kind == geom.KindRotation && t.Pivot == nil {
			pivot = b.AbsolutePosition()
			if c, ok := b.self.(Centered); ok {
				pivot = c.Center()
			}
			break
		}
	}
	e.CreateAttr("transform", svg.TransformAttr(b.transforms, pivot))
}
