// Package light uploads lighting parameters to shader uniforms.
package light

import "github.com/go-gl/mathgl/mgl32"

// Uniforms is the part of a shader program a light writes to.
// *shader.Program satisfies it.
type Uniforms interface {
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
}

// Directional is a light with no position, like the sun, plus an ambient term
// of the same colour.
type Directional struct {
	Color            mgl32.Vec3
	AmbientIntensity float32
	Direction        mgl32.Vec3
	DiffuseIntensity float32

	// Uniform is the name of the GLSL struct variable; "directionalLight"
	// when empty.
	Uniform string
}

// Default is white, 0.3 ambient, shining down and away from the viewer at
// 0.8 diffuse.
func Default() Directional {
	return Directional{
		Color:            mgl32.Vec3{1, 1, 1},
		AmbientIntensity: 0.3,
		Direction:        mgl32.Vec3{0, -1, -1},
		DiffuseIntensity: 0.8,
	}
}

// Apply sets the light's fields on the active program.
func (l Directional) Apply(u Uniforms) {
	prefix := l.Uniform
	if prefix == "" {
		prefix = "directionalLight"
	}
	u.SetVec3(prefix+".colour", l.Color)
	u.SetFloat(prefix+".ambientIntensity", l.AmbientIntensity)
	u.SetVec3(prefix+".direction", l.Direction)
	u.SetFloat(prefix+".diffuseIntensity", l.DiffuseIntensity)
}
