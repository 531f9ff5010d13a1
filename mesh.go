package swordforge

// Mesh is a deduplicating vertex pool. Components keep their own private
// vertex lists; merging them into a sword funnels every vertex through a
// Mesh so that shared positions (blade root meeting the guard, mirrored
// edge vertices) collapse to one entry.
type Mesh struct {
	points []Vertex
	index  map[Vertex]int
}

func NewMesh() *Mesh {
	return &Mesh{
		points: make([]Vertex, 0, 32),
		index:  make(map[Vertex]int),
	}
}

// Add returns the pool index for v, inserting it if this position has not
// been seen before. Average O(1) via the position map.
func (m *Mesh) Add(v Vertex) int {
	if i, ok := m.index[v]; ok {
		return i
	}
	m.points = append(m.points, v)
	i := len(m.points) - 1
	m.index[v] = i
	return i
}

func (m *Mesh) Len() int {
	return len(m.points)
}

func (m *Mesh) Point(i int) Vertex {
	return m.points[i]
}

// Points returns the backing slice; callers must not append to it.
func (m *Mesh) Points() []Vertex {
	return m.points
}

func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		points: make([]Vertex, len(m.points)),
		index:  make(map[Vertex]int, len(m.index)),
	}
	copy(c.points, m.points)
	for k, v := range m.index {
		c.index[k] = v
	}
	return c
}

// rebuildIndex restores the position map after points have been mutated in
// place (the weathering pass does this).
func (m *Mesh) rebuildIndex() {
	m.index = make(map[Vertex]int, len(m.points))
	for i, p := range m.points {
		if _, ok := m.index[p]; !ok {
			m.index[p] = i
		}
	}
}
