package swordforge

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

const nearPlaneZ = 0.5
const conversionFactor = 700

const clipEpsilon = 1e-6

// Point is a screen-space position after projection.
type Point struct {
	X, Y float32
}

// ConvertToScreenX projects a camera-space X to screen space. z must be at
// or beyond the near plane so the division is safe.
func ConvertToScreenX(width, height, x, z float64) float32 {
	return float32((conversionFactor*x)/z) + float32(width/2)
}

// ConvertToScreenY projects a camera-space Y to screen space, flipping so
// +Y points up on screen.
func ConvertToScreenY(width, height, y, z float64) float32 {
	return float32(height/2) - float32((conversionFactor*y)/z)
}

// ConvertFromScreen inverts the projection for a known depth.
func ConvertFromScreen(width, height, screenX, screenY, z float64) (float64, float64) {
	x := (screenX - width/2) * z / conversionFactor
	y := (height/2 - screenY) * z / conversionFactor
	return x, y
}

// intersectNearPlane returns the point where the segment p1-p2 crosses the
// near plane. Segments parallel to the plane return p1 unchanged.
func intersectNearPlane(p1, p2 []float64) []float64 {
	dz := p2[2] - p1[2]
	if math.Abs(dz) < clipEpsilon {
		return p1
	}
	t := (nearPlaneZ - p1[2]) / dz
	return []float64{
		p1[0] + t*(p2[0]-p1[0]),
		p1[1] + t*(p2[1]-p1[1]),
		nearPlaneZ,
	}
}

// clipPolygonAgainstNearPlane clips a camera-space polygon so every
// surviving point has z >= nearPlaneZ. Points exactly on the plane count
// as inside.
func clipPolygonAgainstNearPlane(points [][]float64) [][]float64 {
	out := make([][]float64, 0, len(points)+2)
	if len(points) == 0 {
		return out
	}

	prev := points[len(points)-1]
	prevIn := prev[2] >= nearPlaneZ
	for _, cur := range points {
		curIn := cur[2] >= nearPlaneZ
		if curIn {
			if !prevIn {
				out = append(out, intersectNearPlane(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersectNearPlane(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// clipPolygon clips a screen-space polygon to the screen rectangle plus a
// one pixel apron, so outlines on the boundary still draw.
func clipPolygon(points []Point, screenWidth, screenHeight float32) []Point {
	type edge struct {
		inside    func(p Point) bool
		intersect func(a, b Point) Point
	}

	maxX := screenWidth + 1
	maxY := screenHeight + 1
	edges := []edge{
		{ // left
			func(p Point) bool { return p.X >= 0 },
			func(a, b Point) Point {
				t := (0 - a.X) / (b.X - a.X)
				return Point{X: 0, Y: a.Y + t*(b.Y-a.Y)}
			},
		},
		{ // right
			func(p Point) bool { return p.X <= maxX },
			func(a, b Point) Point {
				t := (maxX - a.X) / (b.X - a.X)
				return Point{X: maxX, Y: a.Y + t*(b.Y-a.Y)}
			},
		},
		{ // top
			func(p Point) bool { return p.Y >= 0 },
			func(a, b Point) Point {
				t := (0 - a.Y) / (b.Y - a.Y)
				return Point{X: a.X + t*(b.X-a.X), Y: 0}
			},
		},
		{ // bottom
			func(p Point) bool { return p.Y <= maxY },
			func(a, b Point) Point {
				t := (maxY - a.Y) / (b.Y - a.Y)
				return Point{X: a.X + t*(b.X-a.X), Y: maxY}
			},
		},
	}

	cur := points
	for _, e := range edges {
		if len(cur) == 0 {
			return []Point{}
		}
		next := make([]Point, 0, len(cur)+2)
		prev := cur[len(cur)-1]
		prevIn := e.inside(prev)
		for _, p := range cur {
			pIn := e.inside(p)
			if pIn {
				if !prevIn {
					next = append(next, e.intersect(prev, p))
				}
				next = append(next, p)
			} else if prevIn {
				next = append(next, e.intersect(prev, p))
			}
			prev, prevIn = p, pIn
		}
		cur = next
	}
	return cur
}

// renderModel is one sword prepared for the interactive viewer: base
// geometry centered on its own origin, scratch matrices for per-frame
// transforms, and a persistent rotation the mouse accumulates into.
type renderModel struct {
	sword *Sword

	points       *Matrix
	transPoints  *Matrix
	normals      *Matrix
	transNormals *Matrix

	rot *Matrix
	pos *Vector3
}

func newRenderModel(sw *Sword) *renderModel {
	pts := sw.Mesh.Points()

	minV, maxV := pts[0], pts[0]
	for _, p := range pts {
		for k := 0; k < 3; k++ {
			if p[k] < minV[k] {
				minV[k] = p[k]
			}
			if p[k] > maxV[k] {
				maxV[k] = p[k]
			}
		}
	}
	cx := (minV[0] + maxV[0]) / 2
	cy := (minV[1] + maxV[1]) / 2
	cz := (minV[2] + maxV[2]) / 2

	m := &renderModel{
		sword:        sw,
		points:       NewMatrix(),
		transPoints:  NewMatrix(),
		normals:      NewMatrix(),
		transNormals: NewMatrix(),
		rot:          IdentMatrix(),
		pos:          NewVector3(sw.Offset+cx, cy, cz),
	}
	// Centered so mouse rotation spins each sword about its own axis.
	for _, p := range pts {
		m.points.AddRow([]float64{p[0] - cx, p[1] - cy, p[2] - cz, 1.0})
		m.transPoints.AddRow([]float64{0, 0, 0, 1.0})
	}
	for _, f := range sw.Faces {
		n := f.Normal
		m.normals.AddRow([]float64{n.X, n.Y, n.Z, 1.0})
		m.transNormals.AddRow([]float64{0, 0, 0, 1.0})
	}
	return m
}

// RotateY accumulates a spin about the model's own vertical axis.
func (m *renderModel) RotateY(rads float64) {
	m.rot = NewRotationMatrix(ROTY, rads).MultiplyBy(m.rot)
}

// applyCamera fills the scratch matrices with camera-space geometry.
func (m *renderModel) applyCamera(camRev *Matrix) {
	objToWorld := TransMatrix(m.pos.X, m.pos.Y, m.pos.Z)
	objToCam := camRev.MultiplyBy(objToWorld)
	full := objToCam.MultiplyBy(m.rot)

	full.TransformNormals(m.normals, m.transNormals)
	full.TransformPoints(m.points, m.transPoints)
}

// World owns the viewer's render models and camera and paints the global
// depth-sorted face list each frame.
type World struct {
	models []*renderModel
	camera *Camera
}

func NewWorld() *World {
	return &World{}
}

func (w *World) AddSword(sw *Sword) {
	w.models = append(w.models, newRenderModel(sw))
}

func (w *World) SetCamera(c *Camera) {
	w.camera = c
}

func (w *World) Models() []*renderModel {
	return w.models
}

type paintFace struct {
	model *renderModel
	index int
	depth float64
}

// PaintObjects draws every face of every model, globally sorted far to
// near. A per-face painter sort is enough here: the lineup has no
// interlocking geometry that would need splitting.
func (w *World) PaintObjects(screen *ebiten.Image, xsize, ysize int) {
	if w.camera == nil {
		return
	}
	camRev := w.camera.GetMatrix()

	var order []paintFace
	for _, m := range w.models {
		m.applyCamera(camRev)
		for fi, f := range m.sword.Faces {
			var depth float64
			for _, vi := range f.Indices {
				depth += m.transPoints.Rows[vi][2]
			}
			depth /= float64(len(f.Indices))
			order = append(order, paintFace{model: m, index: fi, depth: depth})
		}
	}
	sort.Slice(order, func(i, j int) bool {
		return order[i].depth > order[j].depth
	})

	for _, pf := range order {
		w.paintFace(screen, pf.model, pf.index, float64(xsize), float64(ysize))
	}
}

func (w *World) paintFace(screen *ebiten.Image, m *renderModel, fi int, width, height float64) {
	f := &m.sword.Faces[fi]
	normal := m.transNormals.Rows[fi]
	first := m.transPoints.Rows[f.Indices[0]]

	// The blades are open sheets, so instead of culling back faces the
	// normal is flipped toward the camera and both sides get lit.
	facing := normal[0]*first[0] + normal[1]*first[1] + normal[2]*first[2]
	shade := normal
	if facing > 0 {
		shade = []float64{-normal[0], -normal[1], -normal[2]}
	}

	camPts := make([][]float64, 0, len(f.Indices))
	for _, vi := range f.Indices {
		camPts = append(camPts, m.transPoints.Rows[vi])
	}

	clipped := clipPolygonAgainstNearPlane(camPts)
	if len(clipped) < 3 {
		return
	}

	screenPts := make([]Point, len(clipped))
	for i, p := range clipped {
		screenPts[i] = Point{
			X: ConvertToScreenX(width, height, p[0], p[2]),
			Y: ConvertToScreenY(width, height, p[1], p[2]),
		}
	}

	final := clipPolygon(screenPts, float32(width), float32(height))
	if len(final) < 3 {
		return
	}

	xs := make([]float32, len(final))
	ys := make([]float32, len(final))
	for i, p := range final {
		xs[i] = p.X
		ys[i] = p.Y
	}

	col := shadeFaceColor(first, shade, f.Col)
	outline := color.RGBA{R: 50, G: 50, B: 50, A: 25}
	fillScreenPolygon(screen, xs, ys, col)
	drawPolygonOutline(screen, xs, ys, 1.0, outline)
}

// shadeFaceColor darkens the face color by a simple camera-space spotlight
// plus an ambient floor.
func shadeFaceColor(firstPoint, normal []float64, polyColor color.RGBA) color.RGBA {
	const ambientLight = 0.65
	const spotlightConePower = 10.0
	const spotlightLightAmount = 1.0 - ambientLight

	diffuseFactor := -normal[2]
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	var spotlightFactor float64
	lenVecToPoint := math.Sqrt(firstPoint[0]*firstPoint[0] +
		firstPoint[1]*firstPoint[1] + firstPoint[2]*firstPoint[2])
	if lenVecToPoint > 0 {
		cosAngle := firstPoint[2] / lenVecToPoint
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	} else {
		spotlightFactor = 1.0
	}

	finalBrightness := ambientLight + diffuseFactor*spotlightFactor*spotlightLightAmount

	c := 240 - int(finalBrightness*240)
	const min = 7
	r := clampInt(int(polyColor.R)-c, min, 255)
	g := clampInt(int(polyColor.G)-c, min, 255)
	b := clampInt(int(polyColor.B)-c, min, 255)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: polyColor.A}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ViewerGame is the ebiten front end: dragging with the left mouse button
// spins every sword about its own vertical axis.
type ViewerGame struct {
	world  *World
	width  int
	height int

	dragging  bool
	lastMouse int
}

func NewViewerGame(scene *Scene, width, height int) *ViewerGame {
	w := NewWorld()
	for _, sw := range scene.Swords() {
		w.AddSword(sw)
	}

	// Frame the whole lineup from the front.
	count := len(scene.Swords())
	centerX := float64(count-1) * Spacing / 2
	dist := float64(count) * Spacing
	if dist < 4 {
		dist = 4
	}
	cam := NewCameraLookAt(
		Vector3{X: centerX, Y: 0.5, Z: -dist},
		Vector3{X: centerX, Y: 0.5, Z: 0},
	)
	w.SetCamera(cam)

	return &ViewerGame{world: w, width: width, height: height}
}

func (g *ViewerGame) Update() error {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		if g.dragging {
			delta := float64(x-g.lastMouse) * 0.01
			for _, m := range g.world.Models() {
				m.RotateY(delta)
			}
		}
		g.dragging = true
		g.lastMouse = x
	} else {
		g.dragging = false
	}
	return nil
}

func (g *ViewerGame) Draw(screen *ebiten.Image) {
	g.world.PaintObjects(screen, g.width, g.height)
}

func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// RunViewer opens an interactive window on the scene. Blocks until the
// window closes.
func RunViewer(scene *Scene, width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("swordforge")
	if err := ebiten.RunGame(NewViewerGame(scene, width, height)); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
