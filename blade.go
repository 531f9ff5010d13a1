package swordforge

import (
	"fmt"
	"math"
)

// RingFunc maps a sample index to the two edge vertices of the blade
// silhouette at that sample. Curved styles bake the lateral offset into the
// two formulas directly instead of computing a true curve normal; at these
// widths the error is invisible and the formulas stay closed-form.
type RingFunc func(i int) (left, right Vertex)

// BladeStrip samples the ring function n times and stitches the vertex
// pairs into a quad strip. n = 1 yields two vertices and no faces rather
// than an error.
func BladeStrip(n int, ring RingFunc) ([]Vertex, []Face) {
	verts := make([]Vertex, 0, n*2)
	for i := 0; i < n; i++ {
		l, r := ring(i)
		verts = append(verts, l, r)
	}
	faces := make([]Face, 0, n)
	for i := 0; i < n-1; i++ {
		faces = append(faces, Face{i * 2, i*2 + 1, i*2 + 3, i*2 + 2})
	}
	return verts, faces
}

// CloseTip appends a tip vertex and the triangle joining it to the last
// ring pair. Needs at least one full pair to close against.
func CloseTip(verts []Vertex, faces []Face, tip Vertex) ([]Vertex, []Face) {
	if len(verts) < 2 {
		return verts, faces
	}
	n := len(verts)
	verts = append(verts, tip)
	faces = append(faces, Face{n - 2, n - 1, n})
	return verts, faces
}

// Blade curve kinds. Each reproduces one family of silhouettes with a small
// closed-form parameter set; the style catalog is pure data on top of these.
const (
	CurveKatana   = "katana"   // bowed centerline with linear edge taper
	CurveArc      = "arc"      // polar arc with constant Z thickness (sickle blades)
	CurveParabola = "parabola" // polynomial rise with decaying width
)

// BladeSpec is the declarative form of a parametric blade, suitable for the
// built-in catalog and for TOML-authored styles alike.
type BladeSpec struct {
	Kind    string `toml:"kind"`
	Samples int    `toml:"samples"`

	// katana
	Step  float64 `toml:"step"`
	Bow   float64 `toml:"bow"`
	Edge  float64 `toml:"edge"`
	Taper float64 `toml:"taper"`
	Width float64 `toml:"width"`

	// arc
	AngleStart float64 `toml:"angle_start"`
	AngleSpan  float64 `toml:"angle_span"`
	Radius     float64 `toml:"radius"`
	RadiusGrow float64 `toml:"radius_grow"`
	YShift     float64 `toml:"y_shift"`
	HalfThick  float64 `toml:"half_thick"`

	// parabola (also uses Step and Width)
	Coeff      float64 `toml:"coeff"`
	WidthDecay float64 `toml:"width_decay"`

	Tip *Vertex `toml:"tip"`
}

// Build evaluates the spec into vertices and faces.
func (b *BladeSpec) Build() ([]Vertex, []Face, error) {
	if b.Samples < 1 {
		return nil, nil, fmt.Errorf("blade spec: sample count %d, need at least 1", b.Samples)
	}

	// Guarded so a single-sample blade stays a degenerate pair instead of
	// dividing by zero.
	span := float64(b.Samples - 1)
	if span == 0 {
		span = 1
	}

	var ring RingFunc
	switch b.Kind {
	case CurveKatana:
		mid := float64(b.Samples-1) / 2
		if mid == 0 {
			mid = 1
		}
		ring = func(i int) (Vertex, Vertex) {
			fi := float64(i)
			y := fi * b.Step
			bow := (1 - math.Pow(math.Abs(fi-mid)/mid, 2)) * b.Bow
			x := b.Edge*(1-(fi/span)*b.Taper) + bow
			return Vertex{x, y, 0}, Vertex{x - b.Width, y, 0}
		}
	case CurveArc:
		ring = func(i int) (Vertex, Vertex) {
			t := float64(i) / span
			angle := b.AngleStart + t*b.AngleSpan
			r := b.Radius + t*b.RadiusGrow
			x := r * -math.Cos(angle)
			y := r*math.Sin(angle) + b.YShift
			return Vertex{x, y, b.HalfThick}, Vertex{x, y, -b.HalfThick}
		}
	case CurveParabola:
		ring = func(i int) (Vertex, Vertex) {
			x := float64(i) * b.Step
			y := x * x * b.Coeff
			w := b.Width * (1 - float64(i)*b.WidthDecay)
			return Vertex{x - w, y, 0}, Vertex{x + w, y, 0}
		}
	default:
		return nil, nil, fmt.Errorf("blade spec: unknown curve kind %q", b.Kind)
	}

	verts, faces := BladeStrip(b.Samples, ring)
	if b.Tip != nil {
		verts, faces = CloseTip(verts, faces, *b.Tip)
	}
	return verts, faces, nil
}
