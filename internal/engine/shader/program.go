package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/uniform"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/pkg/math"
)

var _ uniform.Uniforms = (*Program)(nil)

// Program is a linked shader program that uploads uniforms by name.
// Locations are looked up once and cached; names the driver optimized
// away are cached as -1 and silently skipped.
type Program struct {
	id        uint32
	locations map[string]int32
	log       *zap.Logger
}

// NewProgram compiles and links the given sources.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	p := &Program{
		id:        id,
		locations: make(map[string]int32),
		log:       logger.Named("shader"),
	}
	p.log.Debug("program linked", zap.Uint32("program", id))
	return p, nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
	clear(p.locations)
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	if loc < 0 {
		p.log.Debug("uniform not active", zap.String("name", name))
	}
	p.locations[name] = loc
	return loc
}

func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

func (p *Program) SetVec4(name string, v math.Vec4) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (p *Program) SetVec3(name string, v math.Vec3) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

func (p *Program) SetVec2(name string, v math.Vec2) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform2f(loc, v.X, v.Y)
	}
}

func (p *Program) SetFloat(name string, f float32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1f(loc, f)
	}
}

func (p *Program) SetInt(name string, i int32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1i(loc, i)
	}
}

func (p *Program) SetBool(name string, b bool) {
	var v int32
	if b {
		v = 1
	}
	p.SetInt(name, v)
}

// SetSampler2D points a sampler uniform at a texture unit.
func (p *Program) SetSampler2D(name string, slot int32) {
	p.SetInt(name, slot)
}
