package element

import (
	"testing"

	"pictor/pkg/geom"
)

func TestBoxAlignmentPoints(t *testing.T) {
	b := Box{X: 10, Y: 20, Width: 100, Height: 50}

	cases := []struct {
		name string
		got  geom.Point
		want geom.Point
	}{
		{"TopLeft", b.TopLeft(), geom.Pt(10, 20)},
		{"TopCenter", b.TopCenter(), geom.Pt(60, 20)},
		{"TopRight", b.TopRight(), geom.Pt(110, 20)},
		{"CenterLeft", b.CenterLeft(), geom.Pt(10, 45)},
		{"Center", b.Center(), geom.Pt(60, 45)},
		{"CenterRight", b.CenterRight(), geom.Pt(110, 45)},
		{"BottomLeft", b.BottomLeft(), geom.Pt(10, 70)},
		{"BottomCenter", b.BottomCenter(), geom.Pt(60, 70)},
		{"BottomRight", b.BottomRight(), geom.Pt(110, 70)},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}

	if got := b.Point(HCenter, VBottom); got != b.BottomCenter() {
		t.Errorf("Point(HCenter, VBottom) = %v", got)
	}
}

func TestNestedBoxes(t *testing.T) {
	tb := newTestBox(100, 60)
	tb.SetRelativePosition(geom.Pt(10, 20))
	tb.SetMargin(geom.UniformEdge(5))
	tb.SetBorder(geom.UniformEdge(2))
	tb.SetPadding(geom.UniformEdge(3))

	bb := tb.BorderBox()
	if bb != (Box{X: 10, Y: 20, Width: 100, Height: 60}) {
		t.Errorf("BorderBox = %+v", bb)
	}

	mb := tb.MarginBox()
	if mb != (Box{X: 5, Y: 15, Width: 110, Height: 70}) {
		t.Errorf("MarginBox = %+v", mb)
	}

	pb := tb.PaddingBox()
	if pb != (Box{X: 12, Y: 22, Width: 96, Height: 56}) {
		t.Errorf("PaddingBox = %+v", pb)
	}

	cb := tb.ContentBox()
	if cb != (Box{X: 15, Y: 25, Width: 90, Height: 50}) {
		t.Errorf("ContentBox = %+v", cb)
	}
}

func TestAsymmetricEdges(t *testing.T) {
	tb := newTestBox(50, 50)
	tb.SetBorder(geom.Edge{Top: 1, Right: 2, Bottom: 3, Left: 4})
	tb.SetPadding(geom.Edge{Top: 5, Right: 6, Bottom: 7, Left: 8})

	cb := tb.ContentBox()
	want := Box{X: 12, Y: 6, Width: 30, Height: 34}
	if cb != want {
		t.Errorf("ContentBox = %+v, want %+v", cb, want)
	}
}

func TestBoundedCenter(t *testing.T) {
	tb := newTestBox(40, 20)
	tb.SetRelativePosition(geom.Pt(100, 100))
	if got := tb.Center(); got != geom.Pt(120, 110) {
		t.Errorf("Center = %v, want (120,110)", got)
	}
	if got := tb.AlignmentPoint(HRight, VBottom); got != geom.Pt(140, 120) {
		t.Errorf("AlignmentPoint = %v, want (140,120)", got)
	}
}
