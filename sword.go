package swordforge

import (
	"fmt"
	"image/color"
)

// MergedFace is a face after component merge: indices into the sword's
// shared vertex pool, the color inherited from its source component, the
// outward normal, and the shading class assigned by edge analysis.
type MergedFace struct {
	Indices []int
	Col     color.RGBA
	Normal  *Vector3
	Smooth  bool
}

// Bevel records the non-destructive edge treatment applied to a sword.
// The geometry itself is left untouched; exporters and renderers read the
// parameters when a target format can express them.
type Bevel struct {
	Width    float64
	Segments int
}

// DefaultBevel is the edge treatment shared by every catalog sword.
var DefaultBevel = Bevel{Width: 0.01, Segments: 1}

// SmoothAngleDeg is the dihedral threshold separating smooth from hard
// edges.
const SmoothAngleDeg = 45.0

// Sword is one assembled entity: a deduplicated vertex pool, the merged
// faces of all its components, and the per-entity placement offset along X.
type Sword struct {
	Name   string
	Offset float64

	Mesh  *Mesh
	Faces []MergedFace

	Bevel     Bevel
	Parts     []string
	hardEdges map[edgeKey]bool
}

// Join merges the components into a single sword. Every component must
// carry the same placement offset; vertices are funnelled through the
// dedup pool so seams between parts share positions, and each face gets
// its normal and shading class computed once here.
func Join(name string, comps []*Component) (*Sword, error) {
	if name == "" {
		return nil, fmt.Errorf("sword has no name")
	}
	if len(comps) == 0 {
		return nil, fmt.Errorf("sword %s: no components", name)
	}
	offset := comps[0].Offset
	for _, c := range comps[1:] {
		if c.Offset != offset {
			return nil, fmt.Errorf("sword %s: component %s has offset %v, want %v",
				name, c.Name, c.Offset, offset)
		}
	}

	sw := &Sword{
		Name:   name,
		Offset: offset,
		Mesh:   NewMesh(),
		Bevel:  DefaultBevel,
	}
	for _, c := range comps {
		sw.Parts = append(sw.Parts, c.Name)
		remap := make([]int, len(c.Verts))
		for i, v := range c.Verts {
			remap[i] = sw.Mesh.Add(v)
		}
		for _, f := range c.Faces {
			idx := make([]int, len(f))
			for j, vi := range f {
				idx[j] = remap[vi]
			}
			sw.Faces = append(sw.Faces, MergedFace{
				Indices: idx,
				Col:     c.Col,
				Normal:  faceNormal(sw.Mesh.Points(), Face(idx)),
			})
		}
	}

	sw.RefreshShading()
	return sw, nil
}

// RefreshShading recomputes the hard-edge classification and per-face
// smooth flags from current geometry. Called at build time and again after
// any pass that moves vertices.
func (s *Sword) RefreshShading() {
	s.hardEdges = classifyEdges(s.Faces, SmoothAngleDeg)
	for i := range s.Faces {
		s.Faces[i].Smooth = faceIsSmooth(s.Faces[i], s.hardEdges)
	}
}

// HardEdge reports whether the edge between pool vertices a and b was
// classified hard. Order of a and b does not matter.
func (s *Sword) HardEdge(a, b int) bool {
	return s.hardEdges[newEdgeKey(a, b)]
}

// RecomputeNormals refreshes every face normal from the current pool
// positions.
func (s *Sword) RecomputeNormals() {
	verts := s.Mesh.Points()
	for i := range s.Faces {
		s.Faces[i].Normal = faceNormal(verts, Face(s.Faces[i].Indices))
	}
}
