// Package view drives the scene camera from per-frame input and produces the
// view and projection matrices.
package view

import (
	"fmt"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/engine/camera"
	"github.com/Faultbox/deskscene/internal/engine/input"
	"github.com/Faultbox/deskscene/internal/engine/uniform"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/pkg/math"
)

// Mode is the projection mode.
type Mode int

const (
	Perspective Mode = iota
	Orthographic
)

func (m Mode) String() string {
	if m == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

var movement = []struct {
	key input.Key
	dir camera.Direction
}{
	{input.KeyW, camera.Forward},
	{input.KeyS, camera.Backward},
	{input.KeyA, camera.Left},
	{input.KeyD, camera.Right},
	{input.KeyQ, camera.Down},
	{input.KeyE, camera.Up},
}

// Controller owns the camera and the navigation state around it.
type Controller struct {
	cam    *camera.FlyCamera
	cfg    config.CameraConfig
	ortho  config.OrthoConfig
	aspect float32

	mode  Mode
	saved camera.Pose
	speed float32

	lastFrame time.Time
	dt        float32

	firstMouse   bool
	lastX, lastY float64

	closeRequested bool

	log *zap.Logger
}

// NewController creates a controller in perspective mode with the camera at
// the configured starting pose.
func NewController(cfg config.CameraConfig, ortho config.OrthoConfig, aspect float32) *Controller {
	cam := camera.NewFlyCamera(math.V3(cfg.Position), math.V3(cfg.Front), math.V3(cfg.Up))
	cam.Zoom = cfg.Zoom
	cam.MovementSpeed = cfg.MovementSpeed
	cam.MouseSensitivity = cfg.MouseSensitivity

	return &Controller{
		cam:        cam,
		cfg:        cfg,
		ortho:      ortho,
		aspect:     aspect,
		speed:      cfg.Speed,
		firstMouse: true,
		log:        logger.Named("view"),
	}
}

// Camera returns the controlled camera.
func (c *Controller) Camera() *camera.FlyCamera {
	return c.cam
}

// Mode returns the current projection mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Speed returns the scroll-adjustable speed scalar.
func (c *Controller) Speed() float32 {
	return c.speed
}

// Status is a short human-readable summary of the mode and speed.
func (c *Controller) Status() string {
	return fmt.Sprintf("%s | speed %.1f", c.mode, c.speed)
}

// DeltaTime returns the seconds elapsed between the last two updates.
func (c *Controller) DeltaTime() float32 {
	return c.dt
}

// CloseRequested reports whether Escape was pressed.
func (c *Controller) CloseRequested() bool {
	return c.closeRequested
}

// SetAspect updates the aspect ratio after a resize.
func (c *Controller) SetAspect(aspect float32) {
	if aspect > 0 {
		c.aspect = aspect
	}
}

// Update advances the controller to now using the frame's input. The first
// update has a zero delta time.
func (c *Controller) Update(now time.Time, s input.State) {
	if !c.lastFrame.IsZero() {
		c.dt = float32(now.Sub(c.lastFrame).Seconds())
	}
	c.lastFrame = now

	c.processMouse(s)
	c.processScroll(s.ScrollY)
	c.processKeyboard(s)

	if c.mode == Orthographic {
		c.cam.Position = math.V3(c.ortho.Position)
		c.cam.Look(math.V3(c.ortho.Front), math.V3(c.cfg.Up))
	}
}

func (c *Controller) processMouse(s input.State) {
	if c.mode == Orthographic || !s.CursorMoved {
		return
	}
	if c.firstMouse {
		c.lastX, c.lastY = s.CursorX, s.CursorY
		c.firstMouse = false
	}

	xOffset := s.CursorX - c.lastX
	yOffset := c.lastY - s.CursorY // screen y grows downward
	c.lastX, c.lastY = s.CursorX, s.CursorY

	c.cam.ProcessMouseMovement(float32(xOffset), float32(yOffset))
}

// processScroll changes the speed by one step per wheel notch.
func (c *Controller) processScroll(offset float64) {
	if offset == 0 {
		return
	}
	notches := max(1, int(gomath.Round(gomath.Abs(offset))))
	for i := 0; i < notches; i++ {
		if offset > 0 {
			c.speed += c.cfg.SpeedStep
		} else {
			c.speed = max(c.speed-c.cfg.SpeedStep, c.cfg.MinSpeed)
		}
	}
	c.log.Debug("camera speed", zap.Float32("speed", c.speed))
}

func (c *Controller) processKeyboard(s input.State) {
	if s.Down(input.KeyEscape) {
		c.closeRequested = true
	}

	amount := c.speed * c.dt
	for _, m := range movement {
		if s.Down(m.key) {
			c.cam.ProcessKeyboard(m.dir, amount)
		}
	}

	if s.Down(input.KeyP) && c.mode == Orthographic {
		c.cam.Pose = c.saved
		c.firstMouse = true
		c.mode = Perspective
		c.log.Info("projection mode", zap.Stringer("mode", c.mode))
	}
	if s.Down(input.KeyO) && c.mode == Perspective {
		c.saved = c.cam.Pose
		c.mode = Orthographic
		c.log.Info("projection mode", zap.Stringer("mode", c.mode))
	}
}

// View returns the camera's look-at matrix.
func (c *Controller) View() math.Mat4 {
	return c.cam.ViewMatrix()
}

// Projection returns the projection matrix for the current mode.
func (c *Controller) Projection() math.Mat4 {
	if c.mode == Orthographic {
		size := c.ortho.Size
		return math.Ortho(-size*c.aspect, size*c.aspect, -size, size, c.cfg.Near, c.cfg.Far)
	}
	return math.Perspective(math.Radians(c.cam.Zoom), c.aspect, c.cfg.Near, c.cfg.Far)
}

// Apply uploads the view, projection and eye position.
func (c *Controller) Apply(u uniform.Uniforms) {
	u.SetMat4(uniform.View, c.View())
	u.SetMat4(uniform.Projection, c.Projection())
	u.SetVec3(uniform.ViewPosition, c.cam.Position)
}
