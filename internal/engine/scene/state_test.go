package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/internal/engine/uniform"
	"github.com/Faultbox/deskscene/pkg/math"
)

type slots map[string]int

func (s slots) FindSlot(tag string) (int, bool) {
	slot, ok := s[tag]
	if !ok {
		return texture.NotFound, false
	}
	return slot, true
}

func nearMat(a math.Mat4, b mgl32.Mat4) bool {
	for i := range a {
		d := a[i] - b[i]
		if d > 1e-5 || d < -1e-5 {
			return false
		}
	}
	return true
}

func TestModelMatrixMatchesReference(t *testing.T) {
	tests := []struct {
		name       string
		scale      math.Vec3
		rx, ry, rz float32
		pos        math.Vec3
	}{
		{"scale", math.Vec3{X: 2, Y: 1, Z: 1}, 0, 0, 0, math.Vec3{}},
		{"rotation", math.Vec3{X: 1, Y: 1, Z: 1}, 90, 0, 45, math.Vec3{}},
		{"position", math.Vec3{X: 1, Y: 1, Z: 1}, 0, 0, 0, math.Vec3{X: 1, Y: 2, Z: 3}},
		{"lamp_upper_arm", math.Vec3{X: 0.25, Y: 7.5, Z: 0.25}, 45, 0, 90, math.Vec3{X: 9.8, Y: 20.25, Z: -5}},
		{"all_axes", math.Vec3{X: 3, Y: 0.5, Z: 2}, 30, -60, 15, math.Vec3{X: -4, Y: 7, Z: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := mgl32.Translate3D(tt.pos.X, tt.pos.Y, tt.pos.Z).
				Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(tt.rz))).
				Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(tt.ry))).
				Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(tt.rx))).
				Mul4(mgl32.Scale3D(tt.scale.X, tt.scale.Y, tt.scale.Z))

			got := ModelMatrix(tt.scale, tt.rx, tt.ry, tt.rz, tt.pos)
			if !nearMat(got, want) {
				t.Errorf("ModelMatrix = %v, want %v", got, want)
			}
		})
	}
}

func TestModelMatrixRotationMovesAxes(t *testing.T) {
	// Rx(90) maps +Y to +Z; Rz(45) then leaves Z alone.
	m := ModelMatrix(math.Vec3{X: 1, Y: 1, Z: 1}, 90, 0, 45, math.Vec3{})
	got := m.TransformDirection(math.Vec3{Y: 1})
	if d := got.Sub(math.Vec3{Z: 1}).Length(); d > 1e-5 {
		t.Errorf("Y axis maps to %v, want +Z", got)
	}
}

func newTestState(t *testing.T) (*State, *uniform.Recorder, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	lib := material.NewLibrary()
	for _, m := range Materials {
		if err := lib.Add(m); err != nil {
			t.Fatal(err)
		}
	}
	rec := uniform.NewRecorder()
	return NewState(rec, slots{"deskTop": 0, "copper": 4}, lib, zap.New(core)), rec, logs
}

func TestSetTransformUploadsModel(t *testing.T) {
	s, rec, _ := newTestState(t)
	s.SetTransform(math.Vec3{X: 1, Y: 1, Z: 1}, 0, 0, 0, math.Vec3{X: 1, Y: 2, Z: 3})

	m, ok := rec.Mat4(uniform.Model)
	if !ok {
		t.Fatal("model not uploaded")
	}
	if m != math.Translate(1, 2, 3) {
		t.Errorf("model = %v", m)
	}
}

func TestSetColorDisablesTexture(t *testing.T) {
	s, rec, _ := newTestState(t)
	s.SetColor(0.5, 0.25, 1, 1)

	if use, _ := rec.Bool(uniform.UseTexture); use {
		t.Error("bUseTexture should be false")
	}
	if c := rec.Values[uniform.ObjectColor]; c != (math.Vec4{0.5, 0.25, 1, 1}) {
		t.Errorf("objectColor = %v", c)
	}
}

func TestSetTextureKnownTag(t *testing.T) {
	s, rec, _ := newTestState(t)
	if err := s.SetTexture("copper"); err != nil {
		t.Fatalf("SetTexture: %v", err)
	}
	if use, _ := rec.Bool(uniform.UseTexture); !use {
		t.Error("bUseTexture should be true")
	}
	if slot := rec.Values[uniform.ObjectTexture]; slot != int32(4) {
		t.Errorf("objectTexture = %v, want 4", slot)
	}
}

func TestSetTextureUnknownTagFallsBack(t *testing.T) {
	s, rec, logs := newTestState(t)
	s.SetColor(1, 0, 0, 1)

	for i := 0; i < 3; i++ {
		err := s.SetTexture("missing")
		if !errors.Is(err, texture.ErrUnknownTag) {
			t.Fatalf("err = %v, want ErrUnknownTag", err)
		}
	}

	if use, _ := rec.Bool(uniform.UseTexture); use {
		t.Error("texturing should stay disabled")
	}
	if rec.Count(uniform.ObjectTexture) != 0 {
		t.Error("no sampler should be uploaded for an unknown tag")
	}
	if n := logs.FilterField(zap.String("tag", "missing")).Len(); n != 1 {
		t.Errorf("logged %d times, want once", n)
	}
}

func TestSetUVScale(t *testing.T) {
	s, rec, _ := newTestState(t)
	s.SetUVScale(2, 3)
	if v := rec.Values[uniform.UVScale]; v != (math.Vec2{X: 2, Y: 3}) {
		t.Errorf("UVscale = %v", v)
	}
}

func TestSetMaterial(t *testing.T) {
	tests := []struct {
		tag  string
		want material.Material
	}{
		{Shiny, Materials[0]},
		{Matte, Materials[1]},
		{"velvet", material.Default},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			s, rec, _ := newTestState(t)
			s.SetMaterial(tt.tag)

			if d, _ := rec.Vec3(uniform.MaterialDiffuse); d != tt.want.Diffuse {
				t.Errorf("diffuse = %v, want %v", d, tt.want.Diffuse)
			}
			if sp, _ := rec.Vec3(uniform.MaterialSpecular); sp != tt.want.Specular {
				t.Errorf("specular = %v, want %v", sp, tt.want.Specular)
			}
			if sh := rec.Values[uniform.MaterialShininess]; sh != tt.want.Shininess {
				t.Errorf("shininess = %v, want %v", sh, tt.want.Shininess)
			}
		})
	}
}

func TestSetMaterialEmptyLibraryPushesDefault(t *testing.T) {
	rec := uniform.NewRecorder()
	s := NewState(rec, slots{}, material.NewLibrary(), zap.NewNop())
	s.SetMaterial(Shiny)

	if rec.Count(uniform.MaterialDiffuse) != 1 {
		t.Fatal("material should always be uploaded")
	}
	if sh := rec.Values[uniform.MaterialShininess]; sh != material.Default.Shininess {
		t.Errorf("shininess = %v, want default", sh)
	}
}
