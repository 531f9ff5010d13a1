package swordforge

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera holds the world-to-camera transform for the interactive viewer.
// The matrix maps world-space row vectors into camera space where +Z looks
// into the screen.
type Camera struct {
	camMatrixRev *Matrix
	position     *Vector3
}

func NewCamera(x, y, z float64) *Camera {
	c := &Camera{position: NewVector3(x, y, z)}
	c.camMatrixRev = TransMatrix(-x, -y, -z)
	return c
}

// NewCameraLookAt places the camera at camPos aimed at lookAt. The mgl64
// matrix is column-major for column vectors, so reading it row by row
// transposes it into the row-vector convention used here.
func NewCameraLookAt(camPos, lookAt Vector3) *Camera {
	lookAtMat := mgl64.LookAt(
		lookAt.X, lookAt.Y, lookAt.Z,
		camPos.X, camPos.Y, camPos.Z,
		0, 1, 0,
	)

	return &Camera{
		camMatrixRev: ToForgeMatrix(lookAtMat),
		position:     camPos.Copy(),
	}
}

func (c *Camera) GetMatrix() *Matrix {
	return c.camMatrixRev
}

func (c *Camera) GetPosition() *Vector3 {
	if c.position == nil {
		return NewVector3(0, 0, 0)
	}
	return c.position
}
