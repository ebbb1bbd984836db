// Package scene composes the desk scene: it loads textures, materials and
// meshes once, then submits a fixed list of draw steps every frame.
package scene

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/shapes"
	"github.com/Faultbox/deskscene/internal/engine/uniform"
	"github.com/Faultbox/deskscene/internal/logger"
)

// TextureStore loads tagged textures and binds them to texture units.
type TextureStore interface {
	SlotFinder
	Load(path, tag string) error
	BindAll()
	Len() int
	Destroy()
}

// MeshStore uploads and draws primitive meshes.
type MeshStore interface {
	Load(kind shapes.Kind) error
	Draw(kind shapes.Kind)
	Delete()
}

// Config contains scene configuration options.
type Config struct {
	TextureDir string
	Lighting   bool
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		TextureDir: "textures",
		Lighting:   true,
	}
}

// Stats describes the last rendered frame.
type Stats struct {
	Draws       int
	DrawsByMesh map[shapes.Kind]int
	// Untextured counts steps that asked for a texture that is not loaded.
	Untextured int
}

// Scene owns the desk scene resources and its draw list.
type Scene struct {
	config Config

	u         uniform.Uniforms
	textures  TextureStore
	meshes    MeshStore
	materials *material.Library
	state     *State
	rig       lighting.Rig
	steps     []DrawStep

	stats Stats
	log   *zap.Logger
}

// New creates a scene that pushes shader state to u.
func New(cfg Config, u uniform.Uniforms, textures TextureStore, meshes MeshStore) *Scene {
	log := logger.Named("scene")
	materials := material.NewLibrary()
	return &Scene{
		config:    cfg,
		u:         u,
		textures:  textures,
		meshes:    meshes,
		materials: materials,
		state:     NewState(u, textures, materials, log),
		rig:       lighting.SunsetRig(),
		steps:     DeskSteps(),
		stats:     Stats{DrawsByMesh: make(map[shapes.Kind]int)},
		log:       log,
	}
}

// Prepare loads every texture, material and mesh the scene needs. A texture
// that fails to load is logged and skipped; the objects using it fall back
// to their flat color. Mesh failures are fatal.
func (s *Scene) Prepare() error {
	var failed int
	for _, t := range Textures {
		path := filepath.Join(s.config.TextureDir, t.File)
		if err := s.textures.Load(path, t.Tag); err != nil {
			failed++
			s.log.Warn("texture skipped", zap.String("tag", t.Tag), zap.Error(err))
		}
	}
	s.textures.BindAll()

	for _, m := range Materials {
		if err := s.materials.Add(m); err != nil && !errors.Is(err, material.ErrDuplicateTag) {
			return fmt.Errorf("register material: %w", err)
		}
	}

	for _, kind := range shapes.Kinds {
		if err := s.meshes.Load(kind); err != nil {
			return fmt.Errorf("load %v mesh: %w", kind, err)
		}
	}

	s.log.Info("scene prepared",
		zap.Int("textures", s.textures.Len()),
		zap.Int("texture_failures", failed),
		zap.Int("materials", s.materials.Len()),
		zap.Int("steps", len(s.steps)),
	)
	return nil
}

// Render pushes the lights and submits every draw step.
func (s *Scene) Render() {
	s.u.SetBool(uniform.UseLighting, s.config.Lighting)
	s.rig.Apply(s.u)

	s.stats.Draws = 0
	s.stats.Untextured = 0
	clear(s.stats.DrawsByMesh)

	for i := range s.steps {
		s.Submit(s.steps[i])
	}
}

// Submit applies a step's shader state and draws its mesh.
func (s *Scene) Submit(step DrawStep) {
	t := step.Transform
	s.state.SetTransform(t.Scale, t.RotationX, t.RotationY, t.RotationZ, t.Position)
	s.state.SetColor(step.Color[0], step.Color[1], step.Color[2], step.Color[3])
	if step.Texture != "" {
		if err := s.state.SetTexture(step.Texture); err != nil {
			s.stats.Untextured++
		}
	}
	s.state.SetUVScale(step.UVScale.X, step.UVScale.Y)
	s.state.SetMaterial(step.Material)

	s.meshes.Draw(step.Mesh)
	s.stats.Draws++
	s.stats.DrawsByMesh[step.Mesh]++
}

// Steps returns a copy of the draw list.
func (s *Scene) Steps() []DrawStep {
	out := make([]DrawStep, len(s.steps))
	copy(out, s.steps)
	return out
}

// Stats returns the statistics of the last Render.
func (s *Scene) Stats() Stats {
	out := s.stats
	out.DrawsByMesh = make(map[shapes.Kind]int, len(s.stats.DrawsByMesh))
	for k, v := range s.stats.DrawsByMesh {
		out.DrawsByMesh[k] = v
	}
	return out
}

// Close releases textures and mesh buffers.
func (s *Scene) Close() {
	s.textures.Destroy()
	s.meshes.Delete()
	s.log.Debug("scene closed")
}
