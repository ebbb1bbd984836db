package shapes

import (
	gomath "math"
	"testing"
)

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func TestBuildAllKinds(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			m, err := Build(kind)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if m.Kind != kind {
				t.Errorf("Kind = %v, want %v", m.Kind, kind)
			}
			if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
				t.Fatalf("index count %d is not a triangle list", len(m.Indices))
			}
			for _, idx := range m.Indices {
				if int(idx) >= len(m.Vertices) {
					t.Fatalf("index %d out of range (%d vertices)", idx, len(m.Vertices))
				}
			}
			if got := len(m.Interleaved()); got != len(m.Vertices)*FloatsPerVertex {
				t.Errorf("Interleaved length = %d, want %d", got, len(m.Vertices)*FloatsPerVertex)
			}
		})
	}
}

func TestBuildUnknownKind(t *testing.T) {
	if _, err := Build(Kind(99)); err == nil {
		t.Error("expected error for unknown kind")
	}
}

// Every non-degenerate triangle should face the same way as its vertex normals.
func TestWindingMatchesNormals(t *testing.T) {
	for _, kind := range Kinds {
		m, _ := Build(kind)
		for i := 0; i < len(m.Indices); i += 3 {
			a, b, c := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
			face := cross(sub(b.Position, a.Position), sub(c.Position, a.Position))
			if dot(face, face) < 1e-10 {
				continue
			}
			n := [3]float32{
				a.Normal[0] + b.Normal[0] + c.Normal[0],
				a.Normal[1] + b.Normal[1] + c.Normal[1],
				a.Normal[2] + b.Normal[2] + c.Normal[2],
			}
			if dot(face, n) <= 0 {
				t.Fatalf("%v: triangle %d winds against its normals", kind, i/3)
			}
		}
	}
}

func TestExtents(t *testing.T) {
	tests := []struct {
		kind     Kind
		min, max [3]float32
	}{
		{Plane, [3]float32{-1, 0, -1}, [3]float32{1, 0, 1}},
		{Box, [3]float32{-0.5, -0.5, -0.5}, [3]float32{0.5, 0.5, 0.5}},
		{Cylinder, [3]float32{-1, 0, -1}, [3]float32{1, 1, 1}},
		{Sphere, [3]float32{-1, -1, -1}, [3]float32{1, 1, 1}},
		{Cone, [3]float32{-1, 0, -1}, [3]float32{1, 1, 1}},
		{TaperedCylinder, [3]float32{-1, 0, -1}, [3]float32{1, 1, 1}},
	}

	const eps = 1e-5
	for _, tt := range tests {
		m, _ := Build(tt.kind)
		lo := [3]float32{gomath.MaxFloat32, gomath.MaxFloat32, gomath.MaxFloat32}
		hi := [3]float32{-gomath.MaxFloat32, -gomath.MaxFloat32, -gomath.MaxFloat32}
		for _, v := range m.Vertices {
			for i := 0; i < 3; i++ {
				lo[i] = min(lo[i], v.Position[i])
				hi[i] = max(hi[i], v.Position[i])
			}
		}
		for i := 0; i < 3; i++ {
			if gomath.Abs(float64(lo[i]-tt.min[i])) > eps || gomath.Abs(float64(hi[i]-tt.max[i])) > eps {
				t.Errorf("%v: extents %v..%v, want %v..%v", tt.kind, lo, hi, tt.min, tt.max)
				break
			}
		}
	}
}

func TestTaperedTopRadius(t *testing.T) {
	m, _ := Build(TaperedCylinder)
	for _, v := range m.Vertices {
		if v.Position[1] != 1 {
			continue
		}
		r := gomath.Hypot(float64(v.Position[0]), float64(v.Position[2]))
		if r > 0.5+1e-5 {
			t.Fatalf("top vertex at radius %f, want <= 0.5", r)
		}
	}
}

func TestConeHasNoTopCap(t *testing.T) {
	m, _ := Build(Cone)
	for _, v := range m.Vertices {
		if v.Normal == [3]float32{0, 1, 0} {
			t.Fatal("cone should not have an upward-facing cap")
		}
	}
}
