// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ShapeVertexShader is the vertex shader for snake-cube shapes.
//
//go:embed shape.vert
var ShapeVertexShader string

// ShapeFragmentShader is the fragment shader for snake-cube shapes.
//
//go:embed shape.frag
var ShapeFragmentShader string
