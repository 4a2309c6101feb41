// Package camera implements a free-fly first-person camera.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a movement relative to where the camera looks.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// maxPitch keeps the view from flipping over the vertical.
const maxPitch = 89.0

// Camera is positioned by yaw and pitch in degrees around a fixed world up.
type Camera struct {
	Position  mgl32.Vec3
	WorldUp   mgl32.Vec3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	TurnSpeed float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// New returns a camera looking along yaw/pitch.
func New(position, worldUp mgl32.Vec3, yaw, pitch, moveSpeed, turnSpeed float32) *Camera {
	c := &Camera{
		Position:  position,
		WorldUp:   worldUp,
		Yaw:       yaw,
		Pitch:     pitch,
		MoveSpeed: moveSpeed,
		TurnSpeed: turnSpeed,
	}
	c.update()
	return c
}

// Default is at the origin looking down -Z, moving 5 units/s and turning
// 0.5 degrees per cursor unit.
func Default() *Camera {
	return New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, -90, 0, 5, 0.5)
}

// Move translates the camera for dt seconds in direction d.
func (c *Camera) Move(d Direction, dt float32) {
	velocity := c.MoveSpeed * dt
	switch d {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	}
}

// Turn applies a cursor delta, dy positive looking up.
func (c *Camera) Turn(dx, dy float32) {
	c.Yaw += dx * c.TurnSpeed
	c.Pitch += dy * c.TurnSpeed
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.update()
}

func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) Up() mgl32.Vec3    { return c.up }

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

func (c *Camera) update() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	c.front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
