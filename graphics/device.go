package graphics

// OpenGL enum values used by the wrappers. They carry the numeric values of
// the GL headers so a Device backed by real GL can pass them through as is.
const (
	VertexShader   uint32 = 0x8B31
	FragmentShader uint32 = 0x8B30

	ArrayBuffer        uint32 = 0x8892
	ElementArrayBuffer uint32 = 0x8893

	Triangles uint32 = 0x0004

	Texture2D          uint32 = 0x0DE1
	Texture0           uint32 = 0x84C0
	TextureMagFilter   uint32 = 0x2800
	TextureMinFilter   uint32 = 0x2801
	TextureWrapS       uint32 = 0x2802
	TextureWrapT       uint32 = 0x2803
	Nearest            int32  = 0x2600
	Linear             int32  = 0x2601
	LinearMipmapLinear int32  = 0x2703
	Repeat             int32  = 0x2901
	ClampToEdge        int32  = 0x812F

	DepthBufferBit uint32 = 0x0100
	ColorBufferBit uint32 = 0x4000
	DepthTest      uint32 = 0x0B71
)

// Device is the subset of OpenGL the resource wrappers issue. Every call must
// be made on the goroutine (OS thread) that holds the current context.
type Device interface {
	CreateShader(kind uint32) uint32
	// CompileShader sets the source of shader and compiles it.
	CompileShader(shader uint32, source string)
	// ShaderStatus reports the compile status and the info log.
	ShaderStatus(shader uint32) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramStatus reports the link status and the info log.
	ProgramStatus(program uint32) (ok bool, infoLog string)
	ValidateProgram(program uint32) (ok bool, infoLog string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 when name is not an active uniform.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x, y, z float32)
	UniformMatrix4fv(location int32, m *[16]float32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferFloat32(target uint32, data []float32)
	BufferUint32(target uint32, data []uint32)
	DeleteBuffer(buffer uint32)
	// VertexAttribPointer describes a float attribute; stride and offset are in bytes.
	VertexAttribPointer(index uint32, size, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode uint32, first, count int32)
	// DrawElements draws count uint32 indices starting at byte offset.
	DrawElements(mode uint32, count int32, offset int)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	// TexImage2DRGBA uploads tightly packed 8-bit RGBA pixels.
	TexImage2DRGBA(target uint32, width, height int32, pixels []byte)
	GenerateMipmap(target uint32)
	DeleteTexture(texture uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Enable(capability uint32)
}
