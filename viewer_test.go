package swordforge

import (
	"math"
	"testing"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func deepAlmostEqual(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if !almostEqual(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}

func TestClipPolygonAgainstNearPlane(t *testing.T) {
	// nearPlaneZ is 0.5.
	testCases := []struct {
		name     string
		input    [][]float64
		expected [][]float64
	}{
		{
			name: "Polygon fully in front of near plane",
			input: [][]float64{
				{0, 0, 1},
				{1, 0, 1},
				{0, 1, 1},
			},
			expected: [][]float64{
				{0, 0, 1},
				{1, 0, 1},
				{0, 1, 1},
			},
		},
		{
			name: "Polygon fully behind near plane",
			input: [][]float64{
				{0, 0, 0.25},
				{1, 0, 0.25},
				{0, 1, 0.25},
			},
			expected: [][]float64{},
		},
		{
			name: "Polygon with one point in front",
			input: [][]float64{
				{0, 0, 0.75}, // Inside
				{0, 1, 0.25}, // Outside
				{1, 0, 0.25}, // Outside
			},
			expected: [][]float64{
				{0.5, 0, 0.5},
				{0, 0, 0.75},
				{0, 0.5, 0.5},
			},
		},
		{
			name: "Polygon with two points in front",
			input: [][]float64{
				{0, 0, 0.25}, // Outside
				{0, 1, 0.75}, // Inside
				{1, 0, 0.75}, // Inside
			},
			expected: [][]float64{
				{0.5, 0, 0.5},
				{0, 0.5, 0.5},
				{0, 1, 0.75},
				{1, 0, 0.75},
			},
		},
		{
			name:     "Empty polygon",
			input:    [][]float64{},
			expected: [][]float64{},
		},
		{
			name: "Polygon on the near plane",
			input: [][]float64{
				{0, 0, 0.5},
				{1, 0, 0.5},
				{0, 1, 0.5},
			},
			expected: [][]float64{
				{0, 0, 0.5},
				{1, 0, 0.5},
				{0, 1, 0.5},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := clipPolygonAgainstNearPlane(tc.input)
			if !deepAlmostEqual(clipped, tc.expected) {
				t.Errorf("clipPolygonAgainstNearPlane() = %v, want %v", clipped, tc.expected)
			}
		})
	}
}

func almostEqualSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestIntersectNearPlane(t *testing.T) {
	testCases := []struct {
		name     string
		p1       []float64
		p2       []float64
		expected []float64
	}{
		{
			name:     "Standard intersection",
			p1:       []float64{0, 0, 0},
			p2:       []float64{0, 0, 1},
			expected: []float64{0, 0, 0.5},
		},
		{
			name:     "Intersection with non-zero X and Y",
			p1:       []float64{10, 20, 0},
			p2:       []float64{30, 40, 1},
			expected: []float64{20, 30, 0.5},
		},
		{
			name:     "Line parallel to near plane",
			p1:       []float64{10, 10, 0.25},
			p2:       []float64{20, 20, 0.25},
			expected: []float64{10, 10, 0.25}, // Should return p1
		},
		{
			name:     "Line segment on near plane",
			p1:       []float64{10, 10, 0.5},
			p2:       []float64{20, 20, 0.5},
			expected: []float64{10, 10, 0.5}, // Should return p1
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := intersectNearPlane(tc.p1, tc.p2)
			if !almostEqualSlice(result, tc.expected) {
				t.Errorf("intersectNearPlane() = %v, want %v", result, tc.expected)
			}
		})
	}
}

func TestCoordinateConversion(t *testing.T) {
	width := 800.0
	height := 600.0

	testPoints := []struct {
		name    string
		x, y, z float64
	}{
		{"Center point", 0, 0, 5},
		{"Arbitrary point", 1.5, -2.5, 7.5},
		{"Point with large z", 10, 20, 100},
		{"Point with small z", 0.1, 0.2, 0.6}, // z must be > nearPlaneZ (0.5)
	}

	for _, p := range testPoints {
		t.Run(p.name, func(t *testing.T) {
			screenX := ConvertToScreenX(width, height, p.x, p.z)
			screenY := ConvertToScreenY(width, height, p.y, p.z)

			xBack, yBack := ConvertFromScreen(width, height, float64(screenX), float64(screenY), p.z)

			if math.Abs(p.x-xBack) > 1e-4 || math.Abs(p.y-yBack) > 1e-4 {
				t.Errorf("Coordinate conversion failed. Original: (%f, %f), After converting back: (%f, %f)", p.x, p.y, xBack, yBack)
			}
		})
	}
}

func deepAlmostEqualPoints(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(float64(a[i].X), float64(b[i].X)) || !almostEqual(float64(a[i].Y), float64(b[i].Y)) {
			return false
		}
	}
	return true
}

func TestClipPolygonToScreen(t *testing.T) {
	screenWidth := float32(800)
	screenHeight := float32(600)

	testCases := []struct {
		name     string
		input    []Point
		expected []Point
	}{
		{
			name: "Polygon fully inside",
			input: []Point{
				{X: 100, Y: 100},
				{X: 200, Y: 100},
				{X: 150, Y: 200},
			},
			expected: []Point{
				{X: 100, Y: 100},
				{X: 200, Y: 100},
				{X: 150, Y: 200},
			},
		},
		{
			name: "Polygon fully outside",
			input: []Point{
				{X: 900, Y: 100},
				{X: 1000, Y: 100},
				{X: 950, Y: 200},
			},
			expected: []Point{},
		},
		{
			name: "Polygon clipping right edge",
			input: []Point{
				{X: 700, Y: 100},
				{X: 900, Y: 100},
				{X: 700, Y: 200},
			},
			// The function clips against screenWidth+1, so 801
			expected: []Point{
				{X: 700, Y: 100},
				{X: 801, Y: 100},
				{X: 801, Y: 149.5},
				{X: 700, Y: 200},
			},
		},
		{
			name: "Polygon clipping top-left corner",
			input: []Point{
				{X: -100, Y: -100},
				{X: 100, Y: -100},
				{X: 100, Y: 100},
				{X: -100, Y: 100},
			},
			expected: []Point{
				{X: 0, Y: 0},
				{X: 100, Y: 0},
				{X: 100, Y: 100},
				{X: 0, Y: 100},
			},
		},
		{
			name:     "Empty polygon",
			input:    []Point{},
			expected: []Point{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := clipPolygon(tc.input, screenWidth, screenHeight)
			if !deepAlmostEqualPoints(clipped, tc.expected) {
				t.Errorf("clipPolygon() = %v, want %v", clipped, tc.expected)
			}
		})
	}
}
