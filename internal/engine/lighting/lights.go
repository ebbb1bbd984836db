// Package lighting provides the fixed light rig pushed to the scene shader.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/deskscene/internal/engine/uniform"
	"github.com/Faultbox/deskscene/pkg/math"
)

// DirectionalLight is a light at infinity, like the sun.
type DirectionalLight struct {
	Direction math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Active    bool
}

// PointLight radiates from a position in all directions.
type PointLight struct {
	Position math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
	Active   bool
}

// SpotLight is a cone of light. CutOff and OuterCutOff are half-angles in
// degrees; the shader receives their cosines.
type SpotLight struct {
	Position    math.Vec3
	Direction   math.Vec3
	CutOff      float32
	OuterCutOff float32
	Constant    float32
	Linear      float32
	Quadratic   float32
	Ambient     math.Vec3
	Diffuse     math.Vec3
	Specular    math.Vec3
	Active      bool
}

// Rig is the complete set of scene lights.
type Rig struct {
	Directional [2]DirectionalLight
	Point       [2]PointLight
	Spot        SpotLight
}

// SunsetRig returns the desk scene lighting: a low warm sun, a cool twilight
// fill, and the desk lamp. The red and blue point lights are defined but off.
func SunsetRig() Rig {
	return Rig{
		Directional: [2]DirectionalLight{
			{
				Direction: math.Vec3{X: -2.4, Y: -1.0, Z: -0.3},
				Ambient:   math.Vec3{X: 0.8, Y: 0.4, Z: 0.2},
				Diffuse:   math.Vec3{X: 1.0, Y: 0.5, Z: 0.3},
				Specular:  math.Vec3{X: 1.0, Y: 0.6, Z: 0.4},
				Active:    true,
			},
			{
				Direction: math.Vec3{X: 2.2, Y: -0.5, Z: -0.4},
				Ambient:   math.Vec3{X: 0.2, Y: 0.3, Z: 0.7},
				Diffuse:   math.Vec3{X: 0.3, Y: 0.4, Z: 0.8},
				Specular:  math.Vec3{X: 0.5, Y: 0.6, Z: 1.0},
				Active:    true,
			},
		},
		Point: [2]PointLight{
			{
				Position: math.Vec3{X: -8, Y: 15, Z: 5},
				Ambient:  math.Vec3{X: 0.0, Y: 0.0, Z: 0.1},
				Diffuse:  math.Vec3{X: 0.2, Y: 0.2, Z: 0.9},
				Specular: math.Vec3{X: 0.3, Y: 0.3, Z: 1.0},
			},
			{
				Position: math.Vec3{X: 8, Y: 15, Z: 5},
				Ambient:  math.Vec3{X: 0.1, Y: 0.0, Z: 0.0},
				Diffuse:  math.Vec3{X: 0.9, Y: 0.2, Z: 0.2},
				Specular: math.Vec3{X: 1.0, Y: 0.3, Z: 0.3},
			},
		},
		Spot: SpotLight{
			Position:    math.Vec3{X: 4.0, Y: 19.0, Z: 0.5},
			Direction:   math.Vec3{X: 0, Y: -1, Z: 0},
			CutOff:      25,
			OuterCutOff: 35,
			Constant:    1.0,
			Linear:      0.045,
			Quadratic:   0.0075,
			Ambient:     math.Vec3{X: 0.05, Y: 0.05, Z: 0.04},
			Diffuse:     math.Vec3{X: 1.0, Y: 0.9, Z: 0.7},
			Specular:    math.Vec3{X: 1.0, Y: 0.95, Z: 0.8},
			Active:      true,
		},
	}
}

// Apply uploads every light, active or not.
func (r *Rig) Apply(u uniform.Uniforms) {
	for i := range r.Directional {
		r.Directional[i].apply(u, DirectionalName(i))
	}
	for i := range r.Point {
		r.Point[i].apply(u, PointName(i))
	}
	r.Spot.apply(u, "spotLight")
}

// DirectionalName returns the uniform struct name of directional light i.
func DirectionalName(i int) string {
	return "directionalLight" + string(rune('1'+i))
}

// PointName returns the uniform struct name of point light i.
func PointName(i int) string {
	return "pointLights[" + string(rune('0'+i)) + "]"
}

func (l *DirectionalLight) apply(u uniform.Uniforms, name string) {
	u.SetVec3(name+".direction", l.Direction)
	u.SetVec3(name+".ambient", l.Ambient)
	u.SetVec3(name+".diffuse", l.Diffuse)
	u.SetVec3(name+".specular", l.Specular)
	u.SetBool(name+".bActive", l.Active)
}

func (l *PointLight) apply(u uniform.Uniforms, name string) {
	u.SetVec3(name+".position", l.Position)
	u.SetVec3(name+".ambient", l.Ambient)
	u.SetVec3(name+".diffuse", l.Diffuse)
	u.SetVec3(name+".specular", l.Specular)
	u.SetBool(name+".bActive", l.Active)
}

func (l *SpotLight) apply(u uniform.Uniforms, name string) {
	u.SetVec3(name+".position", l.Position)
	u.SetVec3(name+".direction", l.Direction)
	u.SetFloat(name+".cutOff", cosDeg(l.CutOff))
	u.SetFloat(name+".outerCutOff", cosDeg(l.OuterCutOff))
	u.SetFloat(name+".constant", l.Constant)
	u.SetFloat(name+".linear", l.Linear)
	u.SetFloat(name+".quadratic", l.Quadratic)
	u.SetVec3(name+".ambient", l.Ambient)
	u.SetVec3(name+".diffuse", l.Diffuse)
	u.SetVec3(name+".specular", l.Specular)
	u.SetBool(name+".bActive", l.Active)
}

func cosDeg(deg float32) float32 {
	return float32(gomath.Cos(float64(math.Radians(deg))))
}
