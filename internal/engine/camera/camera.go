// Package camera provides the first-person camera used to navigate the scene.
package camera

import (
	gomath "math"

	"github.com/Faultbox/deskscene/pkg/math"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// MaxPitch keeps the camera from flipping over the vertical.
const MaxPitch = 89.0

// Pose is the part of the camera state that defines where it looks from.
type Pose struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3
	Right    math.Vec3
	Yaw      float32 // Degrees, 0 looks down +X
	Pitch    float32 // Degrees
}

// FlyCamera is a free-flying first-person camera.
type FlyCamera struct {
	Pose

	WorldUp math.Vec3

	Zoom             float32 // Vertical field of view in degrees
	MovementSpeed    float32 // Units per second per unit of speed scalar
	MouseSensitivity float32 // Degrees per pixel
}

// NewFlyCamera creates a camera at position looking along front.
func NewFlyCamera(position, front, up math.Vec3) *FlyCamera {
	c := &FlyCamera{
		WorldUp:          math.Vec3{X: 0, Y: 1, Z: 0},
		Zoom:             45,
		MovementSpeed:    2.5,
		MouseSensitivity: 0.1,
	}
	c.Position = position
	c.Look(front, up)
	return c
}

// Look points the camera along front with the given up vector and derives
// yaw and pitch from it, so later mouse input continues from this heading.
func (c *FlyCamera) Look(front, up math.Vec3) {
	f := front.Normalize()
	c.Front = f
	c.Up = up.Normalize()
	c.Right = f.Cross(c.WorldUp).Normalize()
	c.Pitch = float32(gomath.Asin(float64(f.Y)) * 180 / gomath.Pi)
	c.Yaw = float32(gomath.Atan2(float64(f.Z), float64(f.X)) * 180 / gomath.Pi)
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera. amount is the speed scalar times the
// frame time; the camera scales it by MovementSpeed.
func (c *FlyCamera) ProcessKeyboard(dir Direction, amount float32) {
	velocity := c.MovementSpeed * amount
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Scale(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Scale(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Scale(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Scale(velocity))
	case Up:
		c.Position = c.Position.Add(c.Up.Scale(velocity))
	case Down:
		c.Position = c.Position.Sub(c.Up.Scale(velocity))
	}
}

// ProcessMouseMovement turns the camera by a cursor offset in pixels.
// Positive yOffset looks up.
func (c *FlyCamera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
	c.updateVectors()
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))

	c.Front = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
