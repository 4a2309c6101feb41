package shader

import (
	_ "embed"
)

// ────────────────────────────────── Lit, textured ──────────────────────────────────

// Position (vec3), texture coordinate (vec2) and normal (vec3) at locations
// 0, 1 and 2, transformed by model / view / projection.
//
//go:embed glsl/lit.vert
var litVertexSource string

// Samples theTexture and applies the directionalLight struct.
//
//go:embed glsl/lit.frag
var litFragmentSource string

// ──────────────────────────────────── Flat ─────────────────────────────────────

// Position only at location 0, passed through untransformed.
//
//go:embed glsl/flat.vert
var flatVertexSource string

// Writes the `colour` uniform.
//
//go:embed glsl/flat.frag
var flatFragmentSource string

//go:embed glsl/yellow.frag
var yellowFragmentSource string

// ────────────────────────────────── Public API ─────────────────────────────────

func LitVertexSource() string {
	return litVertexSource
}

func LitFragmentSource() string {
	return litFragmentSource
}

func FlatVertexSource() string {
	return flatVertexSource
}

// FlatFragmentSource returns the uniform-colour fragment shader, or the
// constant yellow one when yellow is set.
func FlatFragmentSource(yellow bool) string {
	if yellow {
		return yellowFragmentSource
	}
	return flatFragmentSource
}
