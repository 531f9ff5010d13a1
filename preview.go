package swordforge

import (
	"fmt"
	"image"
	"math"
	"os"
	"sort"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Preview lighting. One key light from the upper left plus a flat ambient
// floor keeps the low-poly facets readable without washing out.
var previewLight = func() *Vector3 {
	v := NewVector3(-0.4, 0.6, -1)
	v.Normalize()
	return v
}()

const (
	previewAmbient = 0.35
	previewDirect  = 0.65
	previewMargin  = 24
)

// RenderLineup renders the whole scene as an orthographic front view into
// an NRGBA image of the given size, drawn at size*supersample and meant to
// be passed through Downsample. The lineup is fitted to the frame from its
// bounding box; faces are filled back to front.
func RenderLineup(scene *Scene, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))

	swords := scene.Swords()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sw := range swords {
		for _, v := range sw.Mesh.Points() {
			x := v[0] + sw.Offset
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if v[1] < minY {
				minY = v[1]
			}
			if v[1] > maxY {
				maxY = v[1]
			}
		}
	}
	if minX > maxX {
		return img
	}

	span := maxX - minX
	if maxY-minY > span {
		span = maxY - minY
	}
	if span < 0.001 {
		span = 0.001
	}
	margin := previewMargin * supersample
	scale := float64(renderSize-2*margin) / span
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2

	type drawFace struct {
		sw    *Sword
		face  *MergedFace
		depth float64
	}
	var order []drawFace
	for _, sw := range swords {
		verts := sw.Mesh.Points()
		for i := range sw.Faces {
			f := &sw.Faces[i]
			if len(f.Indices) < 3 {
				continue
			}
			mid := faceMidpoint(verts, Face(f.Indices))
			order = append(order, drawFace{sw: sw, face: f, depth: mid.Z})
		}
	}
	// Back to front: larger Z is further from the front-facing camera.
	sort.Slice(order, func(i, j int) bool {
		return order[i].depth > order[j].depth
	})

	half := float64(renderSize) / 2
	poly := make([][2]float64, 0, 4)
	for _, df := range order {
		verts := df.sw.Mesh.Points()
		poly = poly[:0]
		for _, vi := range df.face.Indices {
			v := verts[vi]
			sx := (v[0]+df.sw.Offset-cx)*scale + half
			sy := half - (v[1]-cy)*scale
			poly = append(poly, [2]float64{sx, sy})
		}

		shade := previewAmbient + previewDirect*math.Abs(Dot(df.face.Normal, previewLight))
		if shade > 1 {
			shade = 1
		}
		r := uint8(float64(df.face.Col.R) * shade)
		g := uint8(float64(df.face.Col.G) * shade)
		b := uint8(float64(df.face.Col.B) * shade)

		fillConvexPolygon(img, poly, r, g, b)
	}
	return img
}

// fillConvexPolygon scanline-fills a convex polygon given in screen space.
func fillConvexPolygon(img *image.NRGBA, poly [][2]float64, r, g, b uint8) {
	if len(poly) < 3 {
		return
	}
	bounds := img.Bounds()

	yMin, yMax := poly[0][1], poly[0][1]
	for _, p := range poly[1:] {
		if p[1] < yMin {
			yMin = p[1]
		}
		if p[1] > yMax {
			yMax = p[1]
		}
	}
	y0 := int(math.Ceil(yMin))
	y1 := int(math.Floor(yMax))
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if y1 >= bounds.Max.Y {
		y1 = bounds.Max.Y - 1
	}

	n := len(poly)
	for y := y0; y <= y1; y++ {
		fy := float64(y) + 0.5
		xL, xR := math.Inf(1), math.Inf(-1)
		for i := 0; i < n; i++ {
			a, bp := poly[i], poly[(i+1)%n]
			if (a[1] <= fy) == (bp[1] <= fy) {
				continue
			}
			t := (fy - a[1]) / (bp[1] - a[1])
			x := a[0] + t*(bp[0]-a[0])
			if x < xL {
				xL = x
			}
			if x > xR {
				xR = x
			}
		}
		if xL > xR {
			continue
		}
		x0 := int(math.Ceil(xL - 0.5))
		x1 := int(math.Floor(xR - 0.5))
		if x0 < bounds.Min.X {
			x0 = bounds.Min.X
		}
		if x1 >= bounds.Max.X {
			x1 = bounds.Max.X - 1
		}
		for x := x0; x <= x1; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
}

// Downsample shrinks a supersampled render back to the target size with
// CatmullRom filtering.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SavePreviewWebP renders the scene lineup and writes it as a lossless
// WebP file.
func SavePreviewWebP(path string, scene *Scene, size, supersample int) error {
	img := RenderLineup(scene, size, supersample)
	if supersample > 1 {
		img = Downsample(img, size)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("saving preview %s: %w", path, err)
	}
	return nil
}
