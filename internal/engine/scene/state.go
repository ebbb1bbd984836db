package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/internal/engine/uniform"
	"github.com/Faultbox/deskscene/pkg/math"
)

// ModelMatrix composes T * Rz * Ry * Rx * S. Angles are in degrees.
func ModelMatrix(scale math.Vec3, rx, ry, rz float32, position math.Vec3) math.Mat4 {
	s := math.Scale(scale.X, scale.Y, scale.Z)
	x := math.RotateX(math.Radians(rx))
	y := math.RotateY(math.Radians(ry))
	z := math.RotateZ(math.Radians(rz))
	t := math.Translate(position.X, position.Y, position.Z)
	return t.Mul(z).Mul(y).Mul(x).Mul(s)
}

// SlotFinder resolves texture tags to texture units.
type SlotFinder interface {
	FindSlot(tag string) (int, bool)
}

// MaterialFinder resolves material tags to presets.
type MaterialFinder interface {
	Find(tag string) (material.Material, bool)
}

// State pushes per-draw shader state through a uniform sink.
type State struct {
	u         uniform.Uniforms
	textures  SlotFinder
	materials MaterialFinder

	// Tags already reported as missing, so a bad tag logs once instead of
	// every frame.
	missingTextures  map[string]bool
	missingMaterials map[string]bool

	log *zap.Logger
}

// NewState creates a setter writing to u.
func NewState(u uniform.Uniforms, textures SlotFinder, materials MaterialFinder, log *zap.Logger) *State {
	return &State{
		u:                u,
		textures:         textures,
		materials:        materials,
		missingTextures:  make(map[string]bool),
		missingMaterials: make(map[string]bool),
		log:              log,
	}
}

// SetTransform uploads the model matrix.
func (s *State) SetTransform(scale math.Vec3, rx, ry, rz float32, position math.Vec3) {
	s.u.SetMat4(uniform.Model, ModelMatrix(scale, rx, ry, rz, position))
}

// SetColor switches to flat color shading.
func (s *State) SetColor(r, g, b, a float32) {
	s.u.SetBool(uniform.UseTexture, false)
	s.u.SetVec4(uniform.ObjectColor, math.Vec4{r, g, b, a})
}

// SetTexture switches to texturing from the unit tag is bound to. Unknown
// tags leave the previous color shading in place and return ErrUnknownTag.
func (s *State) SetTexture(tag string) error {
	slot, ok := s.textures.FindSlot(tag)
	if !ok {
		if !s.missingTextures[tag] {
			s.missingTextures[tag] = true
			s.log.Warn("texture not loaded, drawing flat color", zap.String("tag", tag))
		}
		return fmt.Errorf("%w: %q", texture.ErrUnknownTag, tag)
	}
	s.u.SetBool(uniform.UseTexture, true)
	s.u.SetSampler2D(uniform.ObjectTexture, int32(slot))
	return nil
}

// SetUVScale sets the texture coordinate tiling.
func (s *State) SetUVScale(u, v float32) {
	s.u.SetVec2(uniform.UVScale, math.Vec2{X: u, Y: v})
}

// SetMaterial uploads the preset registered under tag, or material.Default
// when there is none.
func (s *State) SetMaterial(tag string) {
	m, ok := s.materials.Find(tag)
	if !ok {
		if !s.missingMaterials[tag] {
			s.missingMaterials[tag] = true
			s.log.Warn("material not registered, using default", zap.String("tag", tag))
		}
		m = material.Default
	}
	s.u.SetVec3(uniform.MaterialDiffuse, m.Diffuse)
	s.u.SetVec3(uniform.MaterialSpecular, m.Specular)
	s.u.SetFloat(uniform.MaterialShininess, m.Shininess)
}
