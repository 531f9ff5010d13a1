package swordforge

// Vertex is a position in local model space. Vertices have no identity
// beyond their coordinates; duplicates are legal inside a component.
type Vertex [3]float64

// Face is an ordered tuple of vertex indices, three for a triangle or four
// for a quadrilateral, referencing positions in the owning vertex sequence.
// Winding is counter-clockwise seen from the outward side.
type Face []int

// uniqueIndexCount reports how many distinct indices a face references.
// A face with fewer than three is degenerate and rejected up front.
func (f Face) uniqueIndexCount() int {
	seen := make(map[int]struct{}, len(f))
	for _, i := range f {
		seen[i] = struct{}{}
	}
	return len(seen)
}

// faceNormal computes the outward unit normal from the first three points
// of the face, following the winding order.
func faceNormal(verts []Vertex, f Face) *Vector3 {
	if len(f) < 3 {
		return NewVector3(0, 0, 1)
	}
	p1, p2, p3 := verts[f[0]], verts[f[1]], verts[f[2]]

	u1, u2, u3 := p2[0]-p1[0], p2[1]-p1[1], p2[2]-p1[2]
	v1, v2, v3 := p3[0]-p2[0], p3[1]-p2[1], p3[2]-p2[2]

	n := NewVector3(
		u2*v3-u3*v2,
		u3*v1-u1*v3,
		u1*v2-u2*v1,
	)
	n.Normalize()
	return n
}

// faceMidpoint is the average of the face's corner positions.
func faceMidpoint(verts []Vertex, f Face) *Vector3 {
	if len(f) == 0 {
		return NewVector3(0, 0, 0)
	}
	var sx, sy, sz float64
	for _, i := range f {
		sx += verts[i][0]
		sy += verts[i][1]
		sz += verts[i][2]
	}
	n := float64(len(f))
	return NewVector3(sx/n, sy/n, sz/n)
}
