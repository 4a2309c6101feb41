package gldevice

import (
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/learngl/graphics"
	"github.com/stretchr/testify/assert"
)

// The graphics enums are passed to GL without translation.
func TestEnumsMatchGL(t *testing.T) {
	assert.Equal(t, uint32(gl.VERTEX_SHADER), graphics.VertexShader)
	assert.Equal(t, uint32(gl.FRAGMENT_SHADER), graphics.FragmentShader)
	assert.Equal(t, uint32(gl.ARRAY_BUFFER), graphics.ArrayBuffer)
	assert.Equal(t, uint32(gl.ELEMENT_ARRAY_BUFFER), graphics.ElementArrayBuffer)
	assert.Equal(t, uint32(gl.TRIANGLES), graphics.Triangles)
	assert.Equal(t, uint32(gl.TEXTURE_2D), graphics.Texture2D)
	assert.Equal(t, uint32(gl.TEXTURE0), graphics.Texture0)
	assert.Equal(t, uint32(gl.TEXTURE_MAG_FILTER), graphics.TextureMagFilter)
	assert.Equal(t, uint32(gl.TEXTURE_MIN_FILTER), graphics.TextureMinFilter)
	assert.Equal(t, uint32(gl.TEXTURE_WRAP_S), graphics.TextureWrapS)
	assert.Equal(t, uint32(gl.TEXTURE_WRAP_T), graphics.TextureWrapT)
	assert.Equal(t, int32(gl.NEAREST), graphics.Nearest)
	assert.Equal(t, int32(gl.LINEAR), graphics.Linear)
	assert.Equal(t, int32(gl.LINEAR_MIPMAP_LINEAR), graphics.LinearMipmapLinear)
	assert.Equal(t, int32(gl.REPEAT), graphics.Repeat)
	assert.Equal(t, int32(gl.CLAMP_TO_EDGE), graphics.ClampToEdge)
	assert.Equal(t, uint32(gl.COLOR_BUFFER_BIT), graphics.ColorBufferBit)
	assert.Equal(t, uint32(gl.DEPTH_BUFFER_BIT), graphics.DepthBufferBit)
	assert.Equal(t, uint32(gl.DEPTH_TEST), graphics.DepthTest)
}
