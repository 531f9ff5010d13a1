package swordforge

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a row-major matrix over float64 rows. A 4x4 transform and a
// point list (n rows of x, y, z, w) share the same representation so the
// same multiply routines serve both.
type Matrix struct {
	Rows [][]float64
}

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

func NewMatrix() *Matrix {
	return &Matrix{
		Rows: make([][]float64, 0, 64),
	}
}

func NewMatrixFromData(data [][]float64) *Matrix {
	m := &Matrix{
		Rows: make([][]float64, len(data)),
	}
	for i := range data {
		m.Rows[i] = make([]float64, len(data[i]))
		copy(m.Rows[i], data[i])
	}
	return m
}

func IdentMatrix() *Matrix {
	m := make([][]float64, 4)
	for i := range m {
		m[i] = make([]float64, 4)
	}
	m[0][0], m[1][1], m[2][2], m[3][3] = 1.0, 1.0, 1.0, 1.0
	return &Matrix{Rows: m}
}

func NewRotationMatrix(axis int, theta float64) *Matrix {
	m := make([][]float64, 4)
	for i := range m {
		m[i] = make([]float64, 4)
	}
	switch axis {
	case ROTX:
		m[0][0] = 1.0
		m[1][1] = math.Cos(theta)
		m[2][1] = -math.Sin(theta)
		m[1][2] = math.Sin(theta)
		m[2][2] = math.Cos(theta)
		m[3][3] = 1.0
	case ROTY:
		m[0][0] = math.Cos(theta)
		m[2][0] = math.Sin(theta)
		m[0][2] = -math.Sin(theta)
		m[2][2] = math.Cos(theta)
		m[1][1] = 1.0
		m[3][3] = 1.0
	case ROTZ:
		m[2][2] = 1.0
		m[3][3] = 1.0
		m[0][0] = math.Cos(theta)
		m[1][0] = -math.Sin(theta)
		m[0][1] = math.Sin(theta)
		m[1][1] = math.Cos(theta)
	}
	return &Matrix{Rows: m}
}

func TransMatrix(x, y, z float64) *Matrix {
	nm := make([][]float64, 4)
	for i := range nm {
		nm[i] = make([]float64, 4)
	}
	nm[3][0] = x
	nm[3][1] = y
	nm[3][2] = z
	nm[0][0], nm[1][1], nm[2][2], nm[3][3] = 1.0, 1.0, 1.0, 1.0
	return &Matrix{Rows: nm}
}

func (m *Matrix) AddRow(row []float64) {
	m.Rows = append(m.Rows, row)
}

// MultiplyBy composes transforms for row vectors: a point transformed by
// the result passes through aMatrix first, then through m.
func (m *Matrix) MultiplyBy(aMatrix *Matrix) *Matrix {
	result := make([][]float64, len(aMatrix.Rows))
	for i := range result {
		result[i] = make([]float64, 4)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < len(aMatrix.Rows); x++ {
			result[x][y] = m.Rows[0][y]*aMatrix.Rows[x][0] +
				m.Rows[1][y]*aMatrix.Rows[x][1] +
				m.Rows[2][y]*aMatrix.Rows[x][2] +
				m.Rows[3][y]*aMatrix.Rows[x][3]
		}
	}
	return &Matrix{Rows: result}
}

// TransformPoints applies the full transform (rotation and translation) to
// every row of src, writing into the matching row of dest.
func (m *Matrix) TransformPoints(src, dest *Matrix) {
	for x := 0; x < len(src.Rows); x++ {
		sx, sy, sz := src.Rows[x][0], src.Rows[x][1], src.Rows[x][2]
		dest.Rows[x][0] = m.Rows[0][0]*sx + m.Rows[1][0]*sy + m.Rows[2][0]*sz + m.Rows[3][0]
		dest.Rows[x][1] = m.Rows[0][1]*sx + m.Rows[1][1]*sy + m.Rows[2][1]*sz + m.Rows[3][1]
		dest.Rows[x][2] = m.Rows[0][2]*sx + m.Rows[1][2]*sy + m.Rows[2][2]*sz + m.Rows[3][2]
	}
}

// TransformNormals applies only the 3x3 rotation component, which is what
// direction vectors need.
func (m *Matrix) TransformNormals(src, dest *Matrix) {
	for x := 0; x < len(src.Rows); x++ {
		sx, sy, sz := src.Rows[x][0], src.Rows[x][1], src.Rows[x][2]
		dest.Rows[x][0] = m.Rows[0][0]*sx + m.Rows[1][0]*sy + m.Rows[2][0]*sz
		dest.Rows[x][1] = m.Rows[0][1]*sx + m.Rows[1][1]*sy + m.Rows[2][1]*sz
		dest.Rows[x][2] = m.Rows[0][2]*sx + m.Rows[1][2]*sy + m.Rows[2][2]*sz
	}
}

// RotateVector3 rotates a Vector3 by the matrix's 3x3 rotation component.
func (m *Matrix) RotateVector3(v *Vector3) *Vector3 {
	vx, vy, vz := v.X, v.Y, v.Z
	return NewVector3(
		m.Rows[0][0]*vx+m.Rows[1][0]*vy+m.Rows[2][0]*vz,
		m.Rows[0][1]*vx+m.Rows[1][1]*vy+m.Rows[2][1]*vz,
		m.Rows[0][2]*vx+m.Rows[1][2]*vy+m.Rows[2][2]*vz,
	)
}

func (m *Matrix) Copy() *Matrix {
	return NewMatrixFromData(m.Rows)
}

// ToForgeMatrix converts an mgl64 matrix into the row-vector convention
// used here.
func ToForgeMatrix(m mgl64.Mat4) *Matrix {
	return NewMatrixFromData(
		[][]float64{
			{m[0], m[1], m[2], m[3]},
			{m[4], m[5], m[6], m[7]},
			{m[8], m[9], m[10], m[11]},
			{m[12], m[13], m[14], m[15]},
		},
	)
}
