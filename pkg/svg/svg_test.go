package svg

import (
	"testing"

	"pictor/pkg/geom"
)

func TestFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{10.5, "10.5"},
		{-3.25, "-3.25"},
		{0, "0"},
		{0.1 + 0.2, "0.3"}, // float noise must not leak into markup
	}
	for _, tc := range cases {
		if got := Float(tc.in); got != tc.want {
			t.Errorf("Float(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTransformAttr(t *testing.T) {
	pivot := geom.Pt(7, 8)
	explicit := geom.Pt(1, 2)

	ts := []geom.Transform{
		geom.Rotation(45, nil),
		geom.Rotation(90, &explicit),
		geom.Scaling(2, 3),
	}
	got := TransformAttr(ts, pivot)
	want := "rotate(45 7 8) rotate(90 1 2) scale(2 3)"
	if got != want {
		t.Errorf("TransformAttr = %q, want %q", got, want)
	}

	if got := TransformAttr(nil, pivot); got != "" {
		t.Errorf("TransformAttr(nil) = %q, want empty", got)
	}
}

func TestNewCanvas(t *testing.T) {
	doc, root := NewCanvas(100, 80, "white")
	if root.Tag != "svg" {
		t.Fatalf("root tag = %q", root.Tag)
	}
	if got := root.SelectAttrValue("xmlns", ""); got != Namespace {
		t.Errorf("xmlns = %q", got)
	}
	if got := root.SelectAttrValue("viewBox", ""); got != "0 0 100 80" {
		t.Errorf("viewBox = %q", got)
	}

	bg := root.FindElement("rect")
	if bg == nil {
		t.Fatal("background rect missing")
	}
	if got := bg.SelectAttrValue("fill", ""); got != "white" {
		t.Errorf("background fill = %q", got)
	}

	out, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("WriteToString: %v", err)
	}
	if out == "" {
		t.Fatal("empty document")
	}
}

func TestNewCanvasNoBackground(t *testing.T) {
	_, root := NewCanvas(10, 10, "")
	if bg := root.FindElement("rect"); bg != nil {
		t.Error("background rect emitted without a background color")
	}
}
