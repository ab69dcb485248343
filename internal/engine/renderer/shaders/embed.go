// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PuzzleVertexShader transforms puzzle pieces.
//
//go:embed puzzle.vert
var PuzzleVertexShader string

// PuzzleFragmentShader shades pieces from the atlas or vertex colours.
//
//go:embed puzzle.frag
var PuzzleFragmentShader string
