package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type uniformMap map[string]any

func (u uniformMap) SetFloat(name string, v float32)   { u[name] = v }
func (u uniformMap) SetVec3(name string, v mgl32.Vec3) { u[name] = v }

func TestApply(t *testing.T) {
	u := uniformMap{}
	Default().Apply(u)

	assert.Equal(t, uniformMap{
		"directionalLight.colour":           mgl32.Vec3{1, 1, 1},
		"directionalLight.ambientIntensity": float32(0.3),
		"directionalLight.direction":        mgl32.Vec3{0, -1, -1},
		"directionalLight.diffuseIntensity": float32(0.8),
	}, u)
}

func TestApplyCustomUniform(t *testing.T) {
	u := uniformMap{}
	l := Default()
	l.Uniform = "sun"
	l.Apply(u)
	assert.Contains(t, u, "sun.direction")
	assert.Len(t, u, 4)
}
