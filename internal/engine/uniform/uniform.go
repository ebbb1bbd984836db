// Package uniform defines the name-keyed uniform contract between the scene
// code and the shader program.
package uniform

import (
	"github.com/Faultbox/deskscene/pkg/math"
)

// Uniform names consumed by the scene shader.
const (
	Model        = "model"
	View         = "view"
	Projection   = "projection"
	ViewPosition = "viewPosition"

	ObjectColor   = "objectColor"
	ObjectTexture = "objectTexture"
	UseTexture    = "bUseTexture"
	UseLighting   = "bUseLighting"
	UVScale       = "UVscale"

	MaterialDiffuse   = "material.diffuseColor"
	MaterialSpecular  = "material.specularColor"
	MaterialShininess = "material.shininess"
)

// Uniforms is a sink for named uniform values on the active program.
type Uniforms interface {
	SetMat4(name string, m math.Mat4)
	SetVec4(name string, v math.Vec4)
	SetVec3(name string, v math.Vec3)
	SetVec2(name string, v math.Vec2)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetBool(name string, b bool)
	SetSampler2D(name string, slot int32)
}
