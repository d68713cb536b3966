package unit

import (
	"errors"
	"testing"

	"pictor/pkg/geom"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"int", 12, 12},
		{"float", 12.5, 12.5},
		{"bare string", "12", 12},
		{"empty string", "", 0},
		{"px", "12px", 12},
		{"pt", "12pt", 16},
		{"in", "1in", 96},
		{"cm", "2.54cm", 96},
		{"mm", "25.4mm", 96},
		{"em", "2em", 32},
		{"rem", "1.5rem", 24},
		{"pc", "2pc", 32},
		{"uppercase", "12PX", 12},
		{"whitespace", "  12px  ", 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%v): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseRemNotEm(t *testing.T) {
	// "1.5rem" must match the rem suffix, never "1.5r"+"em".
	got, err := Parse("1.5rem")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != 24 {
		t.Errorf("Parse(1.5rem) = %v, want 24", got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []any{"abc", "abcpx", "12xyz", true, []int{1}} {
		if _, err := Parse(in); !errors.Is(err, ErrBadUnit) {
			t.Errorf("Parse(%v) err = %v, want ErrBadUnit", in, err)
		}
	}
}

func TestParseEdge(t *testing.T) {
	uniform, err := ParseEdge("4px")
	if err != nil {
		t.Fatal(err)
	}
	if uniform != (geom.Edge{Top: 4, Right: 4, Bottom: 4, Left: 4}) {
		t.Errorf("uniform edge = %+v", uniform)
	}

	listed, err := ParseEdge([]any{1, "2px", 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if listed != (geom.Edge{Top: 1, Right: 2, Bottom: 3, Left: 4}) {
		t.Errorf("listed edge = %+v", listed)
	}

	mapped, err := ParseEdge(map[string]any{"top": 5, "left": "1em"})
	if err != nil {
		t.Fatal(err)
	}
	if mapped != (geom.Edge{Top: 5, Left: 16}) {
		t.Errorf("mapped edge = %+v", mapped)
	}

	if _, err := ParseEdge([]any{1, 2}); !errors.Is(err, ErrBadUnit) {
		t.Errorf("short list err = %v, want ErrBadUnit", err)
	}
	if _, err := ParseEdge("bogus"); !errors.Is(err, ErrBadUnit) {
		t.Errorf("bad value err = %v, want ErrBadUnit", err)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse did not panic on bad input")
		}
	}()
	MustParse("bogus")
}
