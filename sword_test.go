package swordforge

import (
	"image/color"
	"testing"
)

var testGrey = color.RGBA{R: 128, G: 128, B: 128, A: 255}

func mustComponent(t *testing.T, name string, verts []Vertex, faces []Face, offset float64) *Component {
	t.Helper()
	c, err := NewComponent(name, verts, faces, testGrey, offset)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func poolIndex(t *testing.T, m *Mesh, v Vertex) int {
	t.Helper()
	for i, p := range m.Points() {
		if p == v {
			return i
		}
	}
	t.Fatalf("vertex %v not in pool", v)
	return -1
}

func TestJoinDeduplicatesSharedVertices(t *testing.T) {
	// Two triangles sharing an edge, split across two components.
	a := mustComponent(t, "A",
		[]Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]Face{{0, 1, 2}}, 0)
	b := mustComponent(t, "B",
		[]Vertex{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]Face{{0, 1, 2}}, 0)

	sw, err := Join("pair", []*Component{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if sw.Mesh.Len() != 4 {
		t.Errorf("pool has %d verts, want 4", sw.Mesh.Len())
	}
	if len(sw.Faces) != 2 {
		t.Errorf("got %d faces, want 2", len(sw.Faces))
	}
	if len(sw.Parts) != 2 || sw.Parts[0] != "A" || sw.Parts[1] != "B" {
		t.Errorf("parts = %v", sw.Parts)
	}
}

func TestJoinOffsetMismatch(t *testing.T) {
	a := mustComponent(t, "A", []Vertex{{0, 0, 0}}, nil, 0)
	b := mustComponent(t, "B", []Vertex{{1, 0, 0}}, nil, 2)

	if _, err := Join("bad", []*Component{a, b}); err == nil {
		t.Error("expected an error for mismatched offsets")
	}
}

func TestJoinRejectsEmpty(t *testing.T) {
	if _, err := Join("empty", nil); err == nil {
		t.Error("expected an error for no components")
	}
	a := mustComponent(t, "A", []Vertex{{0, 0, 0}}, nil, 0)
	if _, err := Join("", []*Component{a}); err == nil {
		t.Error("expected an error for missing name")
	}
}

func TestJoinComputesNormals(t *testing.T) {
	quad := mustComponent(t, "Q",
		[]Vertex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]Face{{0, 1, 2, 3}}, 0)

	sw, err := Join("flat", []*Component{quad})
	if err != nil {
		t.Fatal(err)
	}
	n := sw.Faces[0].Normal
	if !almostEqual(n.X, 0) || !almostEqual(n.Y, 0) || !almostEqual(n.Z, 1) {
		t.Errorf("normal = %v, want (0, 0, 1)", n)
	}
}

func TestHardEdgeClassification(t *testing.T) {
	// Two quads meeting at a right angle along x=1. The shared edge must
	// classify hard, and the boundary edges always do.
	bent := mustComponent(t, "Bent",
		[]Vertex{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{1, 0, 1}, {1, 1, 1},
		},
		[]Face{
			{0, 1, 2, 3},
			{1, 4, 5, 2},
		}, 0)

	sw, err := Join("corner", []*Component{bent})
	if err != nil {
		t.Fatal(err)
	}

	shared1 := poolIndex(t, sw.Mesh, Vertex{1, 0, 0})
	shared2 := poolIndex(t, sw.Mesh, Vertex{1, 1, 0})
	if !sw.HardEdge(shared1, shared2) {
		t.Error("90 degree fold classified smooth, want hard")
	}

	for i := range sw.Faces {
		if sw.Faces[i].Smooth {
			t.Errorf("face %d smooth, want flat on a hard crease", i)
		}
	}
}

func TestNearlyCoplanarEdgeIsSmooth(t *testing.T) {
	flat := mustComponent(t, "Flat",
		[]Vertex{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{2, 0, 0}, {2, 1, 0},
		},
		[]Face{
			{0, 1, 2, 3},
			{1, 4, 5, 2},
		}, 0)

	sw, err := Join("sheet", []*Component{flat})
	if err != nil {
		t.Fatal(err)
	}

	shared1 := poolIndex(t, sw.Mesh, Vertex{1, 0, 0})
	shared2 := poolIndex(t, sw.Mesh, Vertex{1, 1, 0})
	if sw.HardEdge(shared1, shared2) {
		t.Error("coplanar interior edge classified hard, want smooth")
	}

	// The faces still render flat: their outer edges are boundaries.
	for i := range sw.Faces {
		if sw.Faces[i].Smooth {
			t.Errorf("face %d smooth despite boundary edges", i)
		}
	}
}

func TestDefaultBevelApplied(t *testing.T) {
	quad := mustComponent(t, "Q",
		[]Vertex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]Face{{0, 1, 2, 3}}, 0)
	sw, err := Join("b", []*Component{quad})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(sw.Bevel.Width, 0.01) || sw.Bevel.Segments != 1 {
		t.Errorf("bevel = %+v, want width 0.01 and 1 segment", sw.Bevel)
	}
}
