package camera

import (
	"testing"

	"github.com/Faultbox/deskscene/pkg/math"
)

func near(a, b, eps float32) bool {
	d := a - b
	return d < eps && d > -eps
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X, 1e-4) && near(a.Y, b.Y, 1e-4) && near(a.Z, b.Z, 1e-4)
}

func TestLookDerivesYawPitch(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 0, Y: 1, Z: 0})
	if !near(c.Yaw, -90, 1e-3) {
		t.Errorf("yaw = %f, want -90", c.Yaw)
	}
	if !near(c.Pitch, 0, 1e-3) {
		t.Errorf("pitch = %f, want 0", c.Pitch)
	}
	if !nearVec(c.Right, math.Vec3{X: 1}) {
		t.Errorf("right = %v, want +X", c.Right)
	}
}

func TestZeroMouseMovementKeepsHeading(t *testing.T) {
	front := math.Vec3{X: 0, Y: -0.5, Z: -2}
	c := NewFlyCamera(math.Vec3{X: 0.5, Y: 5.5, Z: 10}, front, math.Vec3{Y: 1})

	c.ProcessMouseMovement(0, 0)
	if !nearVec(c.Front, front.Normalize()) {
		t.Errorf("front drifted to %v, want %v", c.Front, front.Normalize())
	}
}

func TestProcessKeyboard(t *testing.T) {
	tests := []struct {
		dir  Direction
		want math.Vec3
	}{
		{Forward, math.Vec3{Z: -2}},
		{Backward, math.Vec3{Z: 2}},
		{Left, math.Vec3{X: -2}},
		{Right, math.Vec3{X: 2}},
		{Up, math.Vec3{Y: 2}},
		{Down, math.Vec3{Y: -2}},
	}

	for _, tt := range tests {
		c := NewFlyCamera(math.Vec3{}, math.Vec3{Z: -1}, math.Vec3{Y: 1})
		c.MovementSpeed = 10
		c.ProcessKeyboard(tt.dir, 0.2)
		if !nearVec(c.Position, tt.want) {
			t.Errorf("direction %d: position = %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestPitchIsClamped(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, math.Vec3{Z: -1}, math.Vec3{Y: 1})
	c.MouseSensitivity = 1

	c.ProcessMouseMovement(0, 500)
	if c.Pitch != MaxPitch {
		t.Errorf("pitch = %f, want %f", c.Pitch, float32(MaxPitch))
	}
	c.ProcessMouseMovement(0, -1000)
	if c.Pitch != -MaxPitch {
		t.Errorf("pitch = %f, want %f", c.Pitch, float32(-MaxPitch))
	}
}

func TestMouseYawTurnsRight(t *testing.T) {
	c := NewFlyCamera(math.Vec3{}, math.Vec3{Z: -1}, math.Vec3{Y: 1})
	c.MouseSensitivity = 1

	// Yaw -90 -> 0 looks down +X
	c.ProcessMouseMovement(90, 0)
	if !nearVec(c.Front, math.Vec3{X: 1}) {
		t.Errorf("front = %v, want +X", c.Front)
	}
	if !nearVec(c.Up, math.Vec3{Y: 1}) {
		t.Errorf("up = %v, want +Y", c.Up)
	}
}

func TestViewMatrixMovesEyeToOrigin(t *testing.T) {
	pos := math.Vec3{X: 0.5, Y: 5.5, Z: 10}
	c := NewFlyCamera(pos, math.Vec3{Y: -0.5, Z: -2}, math.Vec3{Y: 1})

	got := c.ViewMatrix().TransformPoint(pos)
	if !nearVec(got, math.Vec3{}) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
}
