package swordforge

import (
	"fmt"
	"image/color"
)

// Component is one named geometric part of a sword: blade, guard, hilt,
// pommel or ornament. Its vertex sequence is immutable once built; the
// component only exists to be merged into a sword.
type Component struct {
	Name   string
	Verts  []Vertex
	Faces  []Face
	Col    color.RGBA
	Offset float64
}

// NewComponent validates the topology before accepting it, so malformed
// index data never reaches the merge step. A component with at least one
// vertex and zero faces is a legal point cloud.
func NewComponent(name string, verts []Vertex, faces []Face, col color.RGBA, offset float64) (*Component, error) {
	if name == "" {
		return nil, fmt.Errorf("component has no name")
	}
	if len(verts) == 0 {
		return nil, fmt.Errorf("component %s: no vertices", name)
	}
	for fi, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(verts) {
				return nil, fmt.Errorf("component %s: face %d references vertex %d, valid range is 0..%d",
					name, fi, idx, len(verts)-1)
			}
		}
		if f.uniqueIndexCount() < 3 {
			return nil, fmt.Errorf("component %s: face %d has fewer than 3 unique vertices", name, fi)
		}
	}
	return &Component{
		Name:   name,
		Verts:  verts,
		Faces:  faces,
		Col:    col,
		Offset: offset,
	}, nil
}
