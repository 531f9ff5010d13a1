package swordforge

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteOBJ writes every sword in the scene as one OBJ document, each sword
// an `o` group with its placement offset baked into the X coordinates.
// OBJ indices are global and 1-based, so the running base advances by each
// sword's pool size. Smoothing groups carry the per-face shading class.
func WriteOBJ(w io.Writer, swords []*Sword) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# swordforge lineup")

	base := 1
	for _, sw := range swords {
		fmt.Fprintf(bw, "o %s\n", sw.Name)
		for _, v := range sw.Mesh.Points() {
			fmt.Fprintf(bw, "v %g %g %g\n", v[0]+sw.Offset, v[1], v[2])
		}
		smooth := false
		fmt.Fprintln(bw, "s off")
		for _, f := range sw.Faces {
			if f.Smooth != smooth {
				smooth = f.Smooth
				if smooth {
					fmt.Fprintln(bw, "s 1")
				} else {
					fmt.Fprintln(bw, "s off")
				}
			}
			fmt.Fprint(bw, "f")
			for _, i := range f.Indices {
				fmt.Fprintf(bw, " %d", base+i)
			}
			fmt.Fprintln(bw)
		}
		base += sw.Mesh.Len()
	}
	return bw.Flush()
}

// WritePLY writes a single sword as ascii PLY with per-face colors. The
// placement offset is baked in so a lineup re-imports in position.
func WritePLY(w io.Writer, sw *Sword) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "ply")
	fmt.Fprintln(bw, "format ascii 1.0")
	fmt.Fprintf(bw, "comment %s\n", sw.Name)
	fmt.Fprintf(bw, "element vertex %d\n", sw.Mesh.Len())
	fmt.Fprintln(bw, "property float x")
	fmt.Fprintln(bw, "property float y")
	fmt.Fprintln(bw, "property float z")
	fmt.Fprintf(bw, "element face %d\n", len(sw.Faces))
	fmt.Fprintln(bw, "property list uchar int vertex_indices")
	fmt.Fprintln(bw, "property uchar red")
	fmt.Fprintln(bw, "property uchar green")
	fmt.Fprintln(bw, "property uchar blue")
	fmt.Fprintln(bw, "end_header")

	for _, v := range sw.Mesh.Points() {
		fmt.Fprintf(bw, "%g %g %g\n", v[0]+sw.Offset, v[1], v[2])
	}
	for _, f := range sw.Faces {
		fmt.Fprintf(bw, "%d", len(f.Indices))
		for _, i := range f.Indices {
			fmt.Fprintf(bw, " %d", i)
		}
		fmt.Fprintf(bw, " %d %d %d\n", f.Col.R, f.Col.G, f.Col.B)
	}
	return bw.Flush()
}

// WriteDXF writes a single sword as a minimal DXF of 3DFACE entities.
// DXF faces always carry four corners, so triangles repeat their last
// vertex, which readers treat as a collapsed edge.
func WriteDXF(w io.Writer, sw *Sword) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "0\nSECTION\n2\nENTITIES")
	verts := sw.Mesh.Points()
	for _, f := range sw.Faces {
		if len(f.Indices) < 3 {
			continue
		}
		corners := make([]Vertex, 4)
		for j := 0; j < 4; j++ {
			k := j
			if k >= len(f.Indices) {
				k = len(f.Indices) - 1
			}
			corners[j] = verts[f.Indices[k]]
		}
		fmt.Fprintf(bw, "0\n3DFACE\n8\n%s\n", sw.Name)
		for j, c := range corners {
			fmt.Fprintf(bw, "%d\n%g\n%d\n%g\n%d\n%g\n", 10+j, c[0]+sw.Offset, 20+j, c[1], 30+j, c[2])
		}
	}
	fmt.Fprintln(bw, "0\nENDSEC\n0\nEOF")
	return bw.Flush()
}

// SaveOBJ writes the whole scene lineup to one OBJ file.
func SaveOBJ(path string, scene *Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving obj: %w", err)
	}
	defer f.Close()
	if err := WriteOBJ(f, scene.Swords()); err != nil {
		return fmt.Errorf("saving obj %s: %w", path, err)
	}
	return nil
}

// SavePLY writes one sword per PLY file.
func SavePLY(path string, sw *Sword) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving ply: %w", err)
	}
	defer f.Close()
	if err := WritePLY(f, sw); err != nil {
		return fmt.Errorf("saving ply %s: %w", path, err)
	}
	return nil
}

// SaveDXF writes one sword per DXF file.
func SaveDXF(path string, sw *Sword) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving dxf: %w", err)
	}
	defer f.Close()
	if err := WriteDXF(f, sw); err != nil {
		return fmt.Errorf("saving dxf %s: %w", path, err)
	}
	return nil
}
