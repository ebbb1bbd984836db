// Package shapes builds the primitive meshes the desk scene is assembled from.
//
// Every mesh is built in object space with unit dimensions; draw steps scale,
// rotate and translate them into place. Triangles wind counter-clockwise when
// seen from outside.
package shapes

import (
	"fmt"
	gomath "math"
)

// Kind identifies a primitive mesh.
type Kind int

const (
	Plane           Kind = iota // ±1 in XZ, facing +Y
	Box                         // ±0.5 on every axis
	Cylinder                    // radius 1, y from 0 to 1, capped
	Sphere                      // radius 1
	Cone                        // radius 1 at y=0, apex at y=1
	TaperedCylinder             // radius 1 at y=0, 0.5 at y=1, capped
)

// Kinds lists every primitive in upload order.
var Kinds = []Kind{Plane, Box, Cylinder, Sphere, Cone, TaperedCylinder}

func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case Sphere:
		return "sphere"
	case Cone:
		return "cone"
	case TaperedCylinder:
		return "tapered_cylinder"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Segment counts for the round primitives.
const (
	RadialSegments = 36
	SphereStacks   = 18
)

// FloatsPerVertex is the interleaved layout: position(3) normal(3) uv(2).
const FloatsPerVertex = 8

// Vertex is a mesh vertex with position, normal and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh is an indexed triangle list ready for GPU upload.
type Mesh struct {
	Kind     Kind
	Vertices []Vertex
	Indices  []uint32
}

// Interleaved flattens the vertices into the FloatsPerVertex layout.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}

// Build returns the mesh for kind.
func Build(kind Kind) (*Mesh, error) {
	var m *Mesh
	switch kind {
	case Plane:
		m = NewPlane()
	case Box:
		m = NewBox()
	case Cylinder:
		m = NewFrustum(1, 1, RadialSegments, true)
	case Sphere:
		m = NewSphere(SphereStacks, RadialSegments)
	case Cone:
		m = NewFrustum(1, 0, RadialSegments, false)
	case TaperedCylinder:
		m = NewFrustum(1, 0.5, RadialSegments, true)
	default:
		return nil, fmt.Errorf("unknown mesh kind %d", int(kind))
	}
	m.Kind = kind
	return m, nil
}

// NewPlane builds a 2x2 quad in the XZ plane.
func NewPlane() *Mesh {
	n := [3]float32{0, 1, 0}
	return &Mesh{
		Kind: Plane,
		Vertices: []Vertex{
			{Position: [3]float32{-1, 0, 1}, Normal: n, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{1, 0, 1}, Normal: n, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{1, 0, -1}, Normal: n, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-1, 0, -1}, Normal: n, TexCoord: [2]float32{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// NewBox builds a unit cube with four vertices per face so each face gets
// its own normal and full texture.
func NewBox() *Mesh {
	faces := []struct{ n, u, v [3]float32 }{
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	m := &Mesh{Kind: Box}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range corners {
			var p [3]float32
			for i := 0; i < 3; i++ {
				p[i] = 0.5 * (f.n[i] + c[0]*f.u[i] + c[1]*f.v[i])
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: p,
				Normal:   f.n,
				TexCoord: [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// NewFrustum builds a surface of revolution around Y from radius bottom at
// y=0 to radius top at y=1. A zero top radius yields a cone; caps closes
// the non-degenerate ends.
func NewFrustum(bottom, top float32, segments int, caps bool) *Mesh {
	m := &Mesh{}

	// Side normals tilt outward by the slope of the wall.
	slope := bottom - top
	for i := 0; i <= segments; i++ {
		u := float32(i) / float32(segments)
		cos, sin := ring(i, segments)
		n := normalize([3]float32{cos, slope, sin})
		m.Vertices = append(m.Vertices,
			Vertex{Position: [3]float32{bottom * cos, 0, bottom * sin}, Normal: n, TexCoord: [2]float32{u, 0}},
			Vertex{Position: [3]float32{top * cos, 1, top * sin}, Normal: n, TexCoord: [2]float32{u, 1}},
		)
	}
	for i := 0; i < segments; i++ {
		b0 := uint32(2 * i)
		t0, b1, t1 := b0+1, b0+2, b0+3
		m.Indices = append(m.Indices, b0, t0, b1, b1, t0, t1)
	}

	if caps {
		m.addCap(bottom, 0, segments)
		if top > 0 {
			m.addCap(top, 1, segments)
		}
	}
	return m
}

// addCap adds a disc at height y facing down at y=0 and up otherwise.
func (m *Mesh) addCap(radius, y float32, segments int) {
	up := y > 0
	n := [3]float32{0, -1, 0}
	if up {
		n = [3]float32{0, 1, 0}
	}

	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{0, y, 0}, Normal: n, TexCoord: [2]float32{0.5, 0.5}})
	for i := 0; i <= segments; i++ {
		cos, sin := ring(i, segments)
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{radius * cos, y, radius * sin},
			Normal:   n,
			TexCoord: [2]float32{0.5 + 0.5*cos, 0.5 + 0.5*sin},
		})
	}
	for i := 0; i < segments; i++ {
		a, b := center+1+uint32(i), center+2+uint32(i)
		if up {
			m.Indices = append(m.Indices, center, b, a)
		} else {
			m.Indices = append(m.Indices, center, a, b)
		}
	}
}

// NewSphere builds a UV sphere of radius 1.
func NewSphere(stacks, slices int) *Mesh {
	m := &Mesh{Kind: Sphere}
	for i := 0; i <= stacks; i++ {
		phi := gomath.Pi * float64(i) / float64(stacks)
		y := float32(gomath.Cos(phi))
		r := float32(gomath.Sin(phi))
		for j := 0; j <= slices; j++ {
			cos, sin := ring(j, slices)
			p := [3]float32{r * cos, y, r * sin}
			m.Vertices = append(m.Vertices, Vertex{
				Position: p,
				Normal:   p,
				TexCoord: [2]float32{float32(j) / float32(slices), 1 - float32(i)/float32(stacks)},
			})
		}
	}

	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j)
			b := a + row
			m.Indices = append(m.Indices, a, a+1, b, a+1, b+1, b)
		}
	}
	return m
}

func ring(i, segments int) (float32, float32) {
	theta := 2 * gomath.Pi * float64(i) / float64(segments)
	return float32(gomath.Cos(theta)), float32(gomath.Sin(theta))
}

func normalize(v [3]float32) [3]float32 {
	l := float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
