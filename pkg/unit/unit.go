// Package unit converts lengths expressed as bare numbers or strings with a
// unit suffix into pixel floats.
package unit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pictor/pkg/geom"
)

// ErrBadUnit is returned when a length string cannot be parsed. A malformed
// length is a programmer error in the calling script, so callers generally
// surface this rather than recover from it.
var ErrBadUnit = errors.New("unit: unparseable length")

// units maps suffixes to their size in CSS reference pixels. rem and em
// resolve against the 16px root font size. Longer suffixes come first so
// "rem" is never matched as "em".
var units = []struct {
	suffix string
	pixels float64
}{
	{"rem", 16},
	{"px", 1},
	{"pt", 96.0 / 72.0},
	{"pc", 16},
	{"in", 96},
	{"cm", 96.0 / 2.54},
	{"mm", 96.0 / 25.4},
	{"em", 16},
	{"q", 96.0 / 101.6},
}

// Parse converts a length into pixels. Accepted inputs: nil (treated as 0),
// any numeric Go type, and strings such as "12", "12px" or "1.5rem".
func Parse(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		return parseString(n)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrBadUnit, v)
	}
}

func parseString(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, nil
	}
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			num, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, u.suffix)), 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrBadUnit, s)
			}
			return num * u.pixels, nil
		}
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadUnit, s)
	}
	return num, nil
}

// ParseEdge converts a four-side spacing value into an Edge. Accepted inputs:
// anything Parse accepts (applied uniformly), a [top right bottom left] slice,
// or a map with top/right/bottom/left keys (missing keys are 0).
func ParseEdge(v any) (geom.Edge, error) {
	switch sides := v.(type) {
	case map[string]any:
		var e geom.Edge
		for key, dst := range map[string]*float64{
			"top": &e.Top, "right": &e.Right, "bottom": &e.Bottom, "left": &e.Left,
		} {
			n, err := Parse(sides[key])
			if err != nil {
				return geom.Edge{}, fmt.Errorf("edge %s: %w", key, err)
			}
			*dst = n
		}
		return e, nil
	case []any:
		if len(sides) != 4 {
			return geom.Edge{}, fmt.Errorf("%w: edge list needs 4 values, got %d", ErrBadUnit, len(sides))
		}
		vals := make([]float64, 4)
		for i, s := range sides {
			n, err := Parse(s)
			if err != nil {
				return geom.Edge{}, err
			}
			vals[i] = n
		}
		return geom.Edge{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	default:
		n, err := Parse(v)
		if err != nil {
			return geom.Edge{}, err
		}
		return geom.UniformEdge(n), nil
	}
}

// MustParse is like Parse but panics on malformed input.
func MustParse(v any) float64 {
	n, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return n
}
