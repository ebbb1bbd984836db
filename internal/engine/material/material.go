// Package material holds the named surface presets used by the scene shader.
package material

import (
	"errors"
	"fmt"

	"github.com/Faultbox/deskscene/pkg/math"
)

// ErrDuplicateTag is returned when a preset tag is registered twice.
var ErrDuplicateTag = errors.New("material tag already registered")

// Material is a diffuse/specular/shininess preset.
type Material struct {
	Tag       string
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// Default is pushed when a draw step names a preset that does not exist.
var Default = Material{
	Tag:       "default",
	Diffuse:   math.Vec3{X: 1, Y: 1, Z: 1},
	Specular:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
	Shininess: 32,
}

// Library is an append-only list of presets, looked up by tag.
type Library struct {
	materials []Material
	index     map[string]int
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{index: make(map[string]int)}
}

// Add registers a preset. Tags must be unique.
func (l *Library) Add(m Material) error {
	if _, ok := l.index[m.Tag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTag, m.Tag)
	}
	l.index[m.Tag] = len(l.materials)
	l.materials = append(l.materials, m)
	return nil
}

// Find returns the preset registered under tag.
func (l *Library) Find(tag string) (Material, bool) {
	i, ok := l.index[tag]
	if !ok {
		return Material{}, false
	}
	return l.materials[i], true
}

// Len returns the number of registered presets.
func (l *Library) Len() int {
	return len(l.materials)
}

// All returns the presets in registration order.
func (l *Library) All() []Material {
	out := make([]Material, len(l.materials))
	copy(out, l.materials)
	return out
}
