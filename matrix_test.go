package swordforge

import (
	"math"
	"testing"
)

func transformOne(m *Matrix, v Vertex) Vertex {
	src := NewMatrix()
	src.AddRow([]float64{v[0], v[1], v[2], 1})
	dst := NewMatrix()
	dst.AddRow([]float64{0, 0, 0, 1})
	m.TransformPoints(src, dst)
	return Vertex{dst.Rows[0][0], dst.Rows[0][1], dst.Rows[0][2]}
}

func TestTransMatrix(t *testing.T) {
	m := TransMatrix(1, 2, 3)
	got := transformOne(m, Vertex{10, 20, 30})
	want := Vertex{11, 22, 33}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRotationMatrixY(t *testing.T) {
	m := NewRotationMatrix(ROTY, math.Pi/2)
	got := transformOne(m, Vertex{1, 0, 0})
	if !almostEqual(got[0], 0) || !almostEqual(got[1], 0) || !almostEqual(got[2], -1) {
		t.Errorf("rotated x axis to %v, want (0, 0, -1)", got)
	}
}

func TestMultiplyByComposesLeftFirst(t *testing.T) {
	// For row vectors, rot.MultiplyBy(trans) translates first and rotates
	// second.
	rot := NewRotationMatrix(ROTY, math.Pi)
	trans := TransMatrix(1, 0, 0)
	combined := rot.MultiplyBy(trans)

	got := transformOne(combined, Vertex{0, 0, 0})
	// Translate to (1,0,0), then a half-turn about Y sends it to (-1,0,0).
	if !almostEqual(got[0], -1) || !almostEqual(got[1], 0) || !almostEqual(got[2], 0) {
		t.Errorf("got %v, want (-1, 0, 0)", got)
	}
}

func TestTransformNormalsIgnoresTranslation(t *testing.T) {
	m := TransMatrix(5, 5, 5)
	src := NewMatrix()
	src.AddRow([]float64{0, 0, 1, 1})
	dst := NewMatrix()
	dst.AddRow([]float64{0, 0, 0, 1})

	m.TransformNormals(src, dst)
	if !almostEqual(dst.Rows[0][2], 1) || !almostEqual(dst.Rows[0][0], 0) {
		t.Errorf("normal moved by translation: %v", dst.Rows[0])
	}
}

func TestRotateVector3(t *testing.T) {
	m := NewRotationMatrix(ROTZ, math.Pi/2)
	v := m.RotateVector3(NewVector3(1, 0, 0))
	if !almostEqual(math.Abs(v.Y), 1) || !almostEqual(v.Z, 0) {
		t.Errorf("rotated to %v", v)
	}
}
