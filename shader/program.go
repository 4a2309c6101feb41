package shader

import (
	"errors"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/graphics"
)

// Program is a linked vertex + fragment shader program.
type Program struct {
	dev          graphics.Device
	id           uint32
	vertexPath   string
	fragmentPath string
	// uniform name -> location, -1 cached for names the linker dropped
	uniforms map[string]int32
	released bool
}

// New reads the two GLSL files and builds a program from them.
func New(dev graphics.Device, vertexPath, fragmentPath string) (*Program, error) {
	vertexSource, fragmentSource, err := readSources(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	p, err := FromSource(dev, vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	p.vertexPath = vertexPath
	p.fragmentPath = fragmentPath
	return p, nil
}

// FromSource builds a program from in-memory GLSL sources.
func FromSource(dev graphics.Device, vertexSource, fragmentSource string) (*Program, error) {
	id, err := newProgram(dev, vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	return &Program{
		dev:      dev,
		id:       id,
		uniforms: make(map[string]int32),
	}, nil
}

func readSources(vertexPath, fragmentPath string) (string, string, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return "", "", &ReadError{Path: vertexPath, Err: err}
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return "", "", &ReadError{Path: fragmentPath, Err: err}
	}
	return string(vs), string(fs), nil
}

func newProgram(dev graphics.Device, vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(dev, vertexSource, graphics.VertexShader, StageVertex)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(dev, fragmentSource, graphics.FragmentShader, StageFragment)
	if err != nil {
		dev.DeleteShader(vertexShader)
		return 0, err
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vertexShader)
	dev.AttachShader(program, fragmentShader)
	dev.LinkProgram(program)

	// the program keeps the linked binary, the stage objects are no longer needed
	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)

	if ok, infoLog := dev.ProgramStatus(program); !ok {
		dev.DeleteProgram(program)
		return 0, &CompileError{Stage: StageLink, Log: infoLog}
	}

	if ok, infoLog := dev.ValidateProgram(program); !ok {
		log.Printf("Warning: program %d failed validation: %s", program, infoLog)
	}
	return program, nil
}

func compileShader(dev graphics.Device, source string, kind uint32, stage Stage) (uint32, error) {
	shader := dev.CreateShader(kind)
	dev.CompileShader(shader, source)
	if ok, infoLog := dev.ShaderStatus(shader); !ok {
		dev.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: infoLog}
	}
	return shader, nil
}

// ID returns the GPU handle, 0 once released.
func (p *Program) ID() uint32 {
	if p == nil || p.released {
		return 0
	}
	return p.id
}

// Use makes p the active program, replacing whatever was bound. A released
// program binds nothing.
func (p *Program) Use() {
	if p == nil || p.released {
		return
	}
	p.dev.UseProgram(p.id)
}

// UniformLocation returns the location of name, or false when the program has
// no such active uniform.
func (p *Program) UniformLocation(name string) (int32, bool) {
	if p.released {
		return -1, false
	}
	loc, ok := p.uniforms[name]
	if !ok {
		loc = p.dev.UniformLocation(p.id, name)
		p.uniforms[name] = loc
	}
	return loc, loc >= 0
}

// The setters act on the active program and ignore absent uniforms.

func (p *Program) SetInt(name string, v int32) {
	if loc, ok := p.UniformLocation(name); ok {
		p.dev.Uniform1i(loc, v)
	}
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *Program) SetFloat(name string, v float32) {
	if loc, ok := p.UniformLocation(name); ok {
		p.dev.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc, ok := p.UniformLocation(name); ok {
		p.dev.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc, ok := p.UniformLocation(name); ok {
		arr := [16]float32(m)
		p.dev.UniformMatrix4fv(loc, &arr)
	}
}

// Reload rebuilds a program created by New from its files. On failure the
// current program stays in place and the error is returned.
func (p *Program) Reload() error {
	if p.released {
		return errors.New("program has been released")
	}
	if p.vertexPath == "" || p.fragmentPath == "" {
		return errors.New("program was not loaded from files")
	}
	vertexSource, fragmentSource, err := readSources(p.vertexPath, p.fragmentPath)
	if err != nil {
		return err
	}
	id, err := newProgram(p.dev, vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	p.dev.DeleteProgram(p.id)
	p.id = id
	p.uniforms = make(map[string]int32)
	log.Printf("Reloaded program %d from %s, %s", id, p.vertexPath, p.fragmentPath)
	return nil
}

// Paths returns the source files of a program created by New.
func (p *Program) Paths() (vertexPath, fragmentPath string) {
	return p.vertexPath, p.fragmentPath
}

// Release frees the GPU program. It is safe to call more than once and on a
// nil Program.
func (p *Program) Release() {
	if p == nil || p.released {
		return
	}
	p.dev.DeleteProgram(p.id)
	p.released = true
	p.uniforms = nil
}
