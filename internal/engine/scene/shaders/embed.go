// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms mesh vertices into clip space and passes the
// world-space position, normal and scaled texture coordinates on.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader shades fragments with Phong lighting from two
// directional lights, two point lights and one spot light.
//
//go:embed scene.frag
var SceneFragmentShader string
