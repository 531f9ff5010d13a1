package swordforge

import "math"

// edgeKey identifies an undirected edge in the vertex pool; the smaller
// index always comes first.
type edgeKey [2]int

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// classifyEdges walks every edge shared by two faces and marks it hard
// when the dihedral angle between the face normals exceeds the threshold.
// Boundary edges (used by a single face) are always hard; silhouette
// creases must not be smoothed away.
func classifyEdges(faces []MergedFace, angleDeg float64) map[edgeKey]bool {
	cosLimit := math.Cos(angleDeg * math.Pi / 180)

	owners := make(map[edgeKey][]int)
	for fi, f := range faces {
		n := len(f.Indices)
		for i := 0; i < n; i++ {
			k := newEdgeKey(f.Indices[i], f.Indices[(i+1)%n])
			owners[k] = append(owners[k], fi)
		}
	}

	hard := make(map[edgeKey]bool, len(owners))
	for k, fs := range owners {
		if len(fs) != 2 {
			hard[k] = true
			continue
		}
		a, b := faces[fs[0]].Normal, faces[fs[1]].Normal
		if Dot(a, b) < cosLimit {
			hard[k] = true
		}
	}
	return hard
}

// faceIsSmooth reports whether every edge of the face survived the
// dihedral test. A face touching any hard edge renders flat so creases
// stay visibly sharp.
func faceIsSmooth(f MergedFace, hard map[edgeKey]bool) bool {
	n := len(f.Indices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if hard[newEdgeKey(f.Indices[i], f.Indices[(i+1)%n])] {
			return false
		}
	}
	return true
}
