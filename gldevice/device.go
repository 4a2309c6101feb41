package gldevice

import (
	"fmt"
	"strings"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/learngl/graphics"
)

// glInitOnce makes sure the GL function pointers are loaded only once.
var glInitOnce sync.Once

// Device issues graphics.Device calls against the current OpenGL context.
type Device struct{}

var _ graphics.Device = (*Device)(nil)

// New loads the OpenGL function pointers. A context must be current on the
// calling thread.
func New() (*Device, error) {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	return &Device{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) CreateShader(kind uint32) uint32 {
	return gl.CreateShader(kind)
}

func (d *Device) CompileShader(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
}

func (d *Device) ShaderStatus(shader uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
	return false, strings.TrimRight(logText, "\x00")
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Device) ProgramStatus(program uint32) (bool, string) {
	return programStatus(program, gl.LINK_STATUS)
}

func (d *Device) ValidateProgram(program uint32) (bool, string) {
	gl.ValidateProgram(program)
	return programStatus(program, gl.VALIDATE_STATUS)
}

func programStatus(program, pname uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, pname, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (d *Device) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *Device) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

func (d *Device) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Device) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (d *Device) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (d *Device) BufferFloat32(target uint32, data []float32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) BufferUint32(target uint32, data []uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Device) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Device) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (d *Device) DrawElements(mode uint32, count int32, offset int) {
	gl.DrawElements(mode, count, gl.UNSIGNED_INT, gl.PtrOffset(offset))
}

func (d *Device) GenTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	return texture
}

func (d *Device) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (d *Device) BindTexture(target, texture uint32) {
	gl.BindTexture(target, texture)
}

func (d *Device) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (d *Device) TexImage2DRGBA(target uint32, width, height int32, pixels []byte) {
	gl.TexImage2D(target, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (d *Device) GenerateMipmap(target uint32) {
	gl.GenerateMipmap(target)
}

func (d *Device) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (d *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) Clear(mask uint32) {
	gl.Clear(mask)
}

func (d *Device) Enable(capability uint32) {
	gl.Enable(capability)
}
