package scene

import (
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/shapes"
	"github.com/Faultbox/deskscene/pkg/math"
)

// Transform places a unit primitive in the world.
type Transform struct {
	Scale     math.Vec3
	RotationX float32 // Degrees
	RotationY float32
	RotationZ float32
	Position  math.Vec3
}

// Matrix returns the model matrix for t.
func (t Transform) Matrix() math.Mat4 {
	return ModelMatrix(t.Scale, t.RotationX, t.RotationY, t.RotationZ, t.Position)
}

// DrawStep describes one object: which mesh, where, and how it is shaded.
// An empty Texture draws the flat Color.
type DrawStep struct {
	Name      string
	Mesh      shapes.Kind
	Transform Transform
	Color     math.Vec4
	Texture   string
	UVScale   math.Vec2
	Material  string
}

// TextureFile maps a texture tag to its file in the texture directory.
type TextureFile struct {
	Tag  string
	File string
}

// Textures are loaded in this order; the order defines the texture units.
var Textures = []TextureFile{
	{"deskTop", "deskTop.jpg"},
	{"deskRod", "deskRod.jpg"},
	{"deskRim", "deskRim.jpg"},
	{"quartz", "granite.jpg"},
	{"copper", "copper.jpg"},
	{"pencil", "pencil.jpg"},
	{"erase", "erase.jpg"},
	{"grain", "grain.jpg"},
}

// Material presets used by the desk.
const (
	Shiny = "shiny"
	Matte = "matte"
)

// Materials are registered during Prepare.
var Materials = []material.Material{
	{
		Tag:       Shiny,
		Diffuse:   math.Vec3{X: 1, Y: 1, Z: 1},
		Specular:  math.Vec3{X: 1, Y: 1, Z: 1},
		Shininess: 128,
	},
	{
		Tag:       Matte,
		Diffuse:   math.Vec3{X: 0.65, Y: 0.16, Z: 0.16},
		Specular:  math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		Shininess: 16,
	},
}

var (
	white = math.Vec4{1, 1, 1, 1}
	brown = math.Vec4{0.65, 0.16, 0.16, 1}
	grey  = math.Vec4{0.5, 0.5, 0.5, 1}
	one   = math.Vec2{X: 1, Y: 1}
	two   = math.Vec2{X: 2, Y: 2}
)

func v3(x, y, z float32) math.Vec3 {
	return math.Vec3{X: x, Y: y, Z: z}
}

func place(scale math.Vec3, rx, ry, rz float32, pos math.Vec3) Transform {
	return Transform{Scale: scale, RotationX: rx, RotationY: ry, RotationZ: rz, Position: pos}
}

// copperPart is a grey, copper-textured, shiny lamp component.
func copperPart(name string, mesh shapes.Kind, t Transform) DrawStep {
	return DrawStep{Name: name, Mesh: mesh, Transform: t, Color: grey, Texture: "copper", UVScale: one, Material: Shiny}
}

// rod is a leg or brace of the desk frame.
func rod(name string, rx float32, pos math.Vec3) DrawStep {
	return DrawStep{
		Name:      name,
		Mesh:      shapes.Cylinder,
		Transform: place(v3(1, 10, 1), rx, 0, 0, pos),
		Color:     grey,
		Texture:   "deskRod",
		UVScale:   two,
		Material:  Shiny,
	}
}

// DeskSteps returns the draw list for the desk scene in submission order.
func DeskSteps() []DrawStep {
	return []DrawStep{
		// Room
		{Name: "floor", Mesh: shapes.Plane, Transform: place(v3(30, 1, 30), 0, 0, 0, v3(0, 0, 0)),
			Color: white, Texture: "quartz", UVScale: one, Material: Shiny},
		{Name: "backdrop", Mesh: shapes.Plane, Transform: place(v3(30, 1, 30), 90, 0, 0, v3(0, 30, -30)),
			Color: white, Texture: "quartz", UVScale: one, Material: Shiny},

		// Desk
		{Name: "desk_body", Mesh: shapes.Box, Transform: place(v3(25, 2, 15), 0, 0, 0, v3(0, 10, 0)),
			Color: brown, Texture: "deskRim", UVScale: one, Material: Matte},
		{Name: "desk_top", Mesh: shapes.Box, Transform: place(v3(25.5, 0.5, 15.5), 0, 0, 0, v3(0, 11, 0)),
			Color: brown, Texture: "deskTop", UVScale: one, Material: Matte},
		rod("leg_back_right", 0, v3(10, 0, -5)),
		rod("leg_front_right", 0, v3(10, 0, 5)),
		rod("leg_back_left", 0, v3(-10, 0, -5)),
		rod("leg_front_left", 0, v3(-10, 0, 5)),
		rod("brace_left", 90, v3(-10, 5, -5)),
		rod("brace_right", 90, v3(10, 5, -5)),

		// Lamp
		copperPart("lamp_base", shapes.Cylinder, place(v3(2, 1, 2), 0, 0, 0, v3(8, 11, -5))),
		copperPart("lamp_base_cap", shapes.Sphere, place(v3(2, 1, 2), 0, 0, 0, v3(8, 12, -5))),
		copperPart("lamp_neck", shapes.Cylinder, place(v3(0.5, 1, 0.5), 0, 0, 0, v3(8, 12.5, -5))),
		copperPart("lamp_lower_arm", shapes.Cylinder, place(v3(0.25, 7.5, 0.25), 0, 0, -15, v3(7.75, 12.5, -5))),
		copperPart("lamp_elbow_cap", shapes.Cylinder, place(v3(0.5, 0.5, 0.5), 0, 0, -15, v3(9.65, 19.5, -5))),
		copperPart("lamp_joint", shapes.Sphere, place(v3(0.65, 0.65, 0.65), 0, 0, 0, v3(9.8, 20.25, -5))),
		copperPart("lamp_upper_arm", shapes.Cylinder, place(v3(0.25, 7.5, 0.25), 45, 0, 90, v3(9.8, 20.25, -5))),
		copperPart("lamp_shade_shell", shapes.Cylinder, place(v3(1, 1.5, 1), 0, 0, 0, v3(4, 19.5, 0.5))),
		copperPart("lamp_shade", shapes.TaperedCylinder, place(v3(1.5, 1, 1.5), 0, 0, 0, v3(4, 19, 0.5))),

		// Props
		{Name: "paper", Mesh: shapes.Box, Transform: place(v3(5, 0.05, 5), 0, 0, 0, v3(0, 11.25, 2.5)),
			Color: white, UVScale: one, Material: Matte},
		{Name: "pencil_body", Mesh: shapes.Cylinder, Transform: place(v3(0.1, 2, 0.1), 90, 0, 0, v3(5, 11.35, 2.5)),
			Color: math.Vec4{1, 0.6, 0.2, 1}, UVScale: one, Material: Matte},
		{Name: "pencil_wood", Mesh: shapes.TaperedCylinder, Transform: place(v3(0.1, 0.08, 0.1), 90, 0, 0, v3(5, 11.35, 4.5)),
			Color: math.Vec4{0.55, 0.27, 0.07, 1}, UVScale: one, Material: Matte},
		{Name: "pencil_tip", Mesh: shapes.Cone, Transform: place(v3(0.06, 0.2, 0.05), 90, 0, 0, v3(5, 11.35, 4.58)),
			Color: math.Vec4{0, 0, 0, 1}, UVScale: one, Material: Matte},
		{Name: "eraser", Mesh: shapes.Cylinder, Transform: place(v3(0.1, 0.25, 0.1), 90, 0, 0, v3(5, 11.35, 2.25)),
			Color: white, Texture: "erase", UVScale: one, Material: Matte},
	}
}
