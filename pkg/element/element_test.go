package element

import (
	"errors"
	"testing"

	"github.com/beevik/etree"

	"pictor/pkg/geom"
)

// testBox is the minimal Bounded element used across the package tests.
type testBox struct {
	Bounded
}

func (tb *testBox) Emit(parent *etree.Element) {}

func newTestBox(w, h float64) *testBox {
	tb := &testBox{}
	tb.Init(tb)
	tb.SetSize(w, h)
	return tb
}

func TestAbsolutePositionParentless(t *testing.T) {
	tb := newTestBox(10, 10)
	tb.SetRelativePosition(geom.Pt(3, 4))
	if got := tb.AbsolutePosition(); got != geom.Pt(3, 4) {
		t.Errorf("AbsolutePosition = %v, want (3,4)", got)
	}
}

func TestAbsolutePositionThroughContainer(t *testing.T) {
	c, err := NewContainer(ContainerConfig{Width: 100, Height: 100, Padding: 8})
	if err != nil {
		t.Fatal(err)
	}
	c.SetRelativePosition(geom.Pt(5, 5))

	child := newTestBox(10, 10)
	c.AddElement(child)
	child.SetRelativePosition(geom.Pt(2, 3))

	// Child coordinates are measured from the container's content-box
	// origin, so the padding shows up in the absolute position.
	if got := child.AbsolutePosition(); got != geom.Pt(15, 16) {
		t.Errorf("AbsolutePosition = %v, want (15,16)", got)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	tb := newTestBox(100, 50)
	err := tb.Position(PositionConfig{
		From: tb.BorderBox().TopRight(),
		To:   geom.Pt(200, 100),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := tb.BorderBox().TopRight(); got != geom.Pt(200, 100) {
		t.Errorf("TopRight after Position = %v, want (200,100)", got)
	}
	if !tb.IsAbsolutelyPositioned() {
		t.Error("Position did not mark the element absolutely positioned")
	}
}

func TestPositionExtraOffset(t *testing.T) {
	tb := newTestBox(10, 10)
	err := tb.Position(PositionConfig{
		From: tb.BorderBox().TopLeft(),
		To:   geom.Pt(30, 40),
		X:    "5px",
		Y:    -2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := tb.AbsolutePosition(); got != geom.Pt(35, 38) {
		t.Errorf("AbsolutePosition = %v, want (35,38)", got)
	}
}

func TestPositionRespectMargin(t *testing.T) {
	tb := newTestBox(10, 10)
	tb.SetMargin(geom.UniformEdge(10))
	err := tb.Position(PositionConfig{
		From:          tb.BorderBox().TopLeft(),
		To:            geom.Pt(100, 100),
		RespectMargin: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	// Moving right and down biases the offset by the left and top margins.
	if got := tb.AbsolutePosition(); got != geom.Pt(110, 110) {
		t.Errorf("AbsolutePosition = %v, want (110,110)", got)
	}
}

func TestPositionBadOffset(t *testing.T) {
	tb := newTestBox(10, 10)
	if err := tb.Position(PositionConfig{X: "bogus"}); err == nil {
		t.Fatal("Position accepted an unparseable offset")
	}
}

func TestTranslate(t *testing.T) {
	tb := newTestBox(10, 10)
	if err := tb.Translate(geom.Pt(0, 2), "10px"); err != nil {
		t.Fatal(err)
	}
	if got := tb.RelativePosition(); got != geom.Pt(0, 10) {
		t.Errorf("RelativePosition = %v, want (0,10)", got)
	}
}

func TestTranslateZeroVector(t *testing.T) {
	tb := newTestBox(10, 10)
	if err := tb.Translate(geom.Pt(0, 0), 10); !errors.Is(err, ErrZeroVector) {
		t.Errorf("err = %v, want ErrZeroVector", err)
	}
}

func TestRotateWithoutAngleIsNoOp(t *testing.T) {
	tb := newTestBox(10, 10)
	tb.Rotate(RotateConfig{})
	if got := len(tb.Transforms()); got != 0 {
		t.Errorf("transform count = %d, want 0", got)
	}
}

func TestRotateByAccumulates(t *testing.T) {
	tb := newTestBox(10, 10)
	tb.RotateBy(30)
	tb.RotateBy(15)
	ts := tb.Transforms()
	if len(ts) != 2 {
		t.Fatalf("transform count = %d, want 2", len(ts))
	}
	if ts[0].Deg != 30 || ts[1].Deg != 15 {
		t.Errorf("angles = %v, %v", ts[0].Deg, ts[1].Deg)
	}
	if ts[0].Pivot != nil {
		t.Error("RotateBy recorded an explicit pivot; want lazy self-center")
	}
}

func TestRotatePivotFromRelativeTo(t *testing.T) {
	target := newTestBox(20, 20)
	target.SetRelativePosition(geom.Pt(100, 100))

	tb := newTestBox(10, 10)
	tb.Rotate(RotateConfig{Deg: 45, HasDeg: true, RelativeTo: target})

	ts := tb.Transforms()
	if len(ts) != 1 {
		t.Fatalf("transform count = %d, want 1", len(ts))
	}
	if ts[0].Pivot == nil || *ts[0].Pivot != geom.Pt(110, 110) {
		t.Errorf("pivot = %v, want target center (110,110)", ts[0].Pivot)
	}
}

func TestWriteTransformExplicitPivotSkipsLayout(t *testing.T) {
	c, err := NewContainer(ContainerConfig{Direction: Vertical})
	if err != nil {
		t.Fatal(err)
	}
	tb := newTestBox(10, 10)
	c.AddElement(tb)

	p := geom.Pt(1, 2)
	tb.Rotate(RotateConfig{Deg: 30, HasDeg: true, Pivot: &p})

	doc := etree.NewDocument()
	e := doc.CreateElement("g")
	tb.WriteTransform(e)

	if got := e.SelectAttrValue("transform", ""); got != "rotate(30 1 2)" {
		t.Errorf("transform = %q, want rotate(30 1 2)", got)
	}
	// With every pivot explicit there is no reason to resolve the element's
	// position, so the parent layout stays untouched.
	if c.arranged {
		t.Error("explicit-pivot transform forced an arrangement")
	}
}

func TestBindPrimesAndFollows(t *testing.T) {
	source := newTestBox(10, 10)
	source.SetRelativePosition(geom.Pt(5, 5))

	follower := newTestBox(10, 10)
	follower.Bind("follow", source, func() {
		follower.rel = source.RelativePosition().Add(geom.Pt(20, 0))
	})

	// The binding runs once immediately.
	if got := follower.RelativePosition(); got != geom.Pt(25, 5) {
		t.Fatalf("primed position = %v, want (25,5)", got)
	}

	source.SetRelativePosition(geom.Pt(50, 60))
	if got := follower.RelativePosition(); got != geom.Pt(70, 60) {
		t.Errorf("position after source move = %v, want (70,60)", got)
	}
}

func TestBindReplacesSameName(t *testing.T) {
	a := newTestBox(10, 10)
	b := newTestBox(10, 10)
	follower := newTestBox(10, 10)

	var fromA, fromB int
	follower.Bind("anchor", a, func() { fromA++ })
	follower.Bind("anchor", b, func() { fromB++ })

	a.SetRelativePosition(geom.Pt(1, 1))
	b.SetRelativePosition(geom.Pt(2, 2))

	if fromA != 1 {
		t.Errorf("replaced binding ran %d times after prime, want 0 more", fromA-1)
	}
	if fromB != 2 {
		t.Errorf("active binding ran %d times, want 2 (prime + move)", fromB)
	}
}

func TestNotifyDependentsIsTransitive(t *testing.T) {
	a := newTestBox(10, 10)
	b := newTestBox(10, 10)
	c := newTestBox(10, 10)

	b.Bind("follow", a, func() { b.rel = a.RelativePosition() })
	c.Bind("follow", b, func() { c.rel = b.RelativePosition() })

	a.SetRelativePosition(geom.Pt(7, 8))
	if got := c.RelativePosition(); got != geom.Pt(7, 8) {
		t.Errorf("transitive dependent = %v, want (7,8)", got)
	}
}

func TestCreationIndexMonotonic(t *testing.T) {
	a := newTestBox(1, 1)
	b := newTestBox(1, 1)
	if a.CreationIndex() >= b.CreationIndex() {
		t.Errorf("creation indexes not monotonic: %d, %d", a.CreationIndex(), b.CreationIndex())
	}
}
