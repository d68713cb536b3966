package geom

// TransformKind discriminates the variants of a Transform.
type TransformKind int

const (
	KindRotation TransformKind = iota
	KindScale
	KindSkewX
	KindSkewY
)

// Transform is one reversible operation in an element's ordered transform
// list. Transforms are applied in insertion order when the serialization-time
// transform expression is produced.
//
// A rotation with a nil Pivot rotates around the owning element's own center,
// resolved lazily at render time because the center may depend on layout that
// has not finalized when the rotation is recorded.
type Transform struct {
	Kind  TransformKind
	Deg   float64 // rotation or skew angle in degrees
	Sx    float64 // scale factors
	Sy    float64
	Pivot *Point
}

// Rotation returns a rotation transform. pivot may be nil for a lazy
// self-center pivot.
func Rotation(deg float64, pivot *Point) Transform {
	return Transform{Kind: KindRotation, Deg: deg, Pivot: pivot}
}

// Scaling returns a scale transform.
func Scaling(sx, sy float64) Transform {
	return Transform{Kind: KindScale, Sx: sx, Sy: sy}
}
