// Package graphicstest provides an in-memory graphics.Device that records
// every call, for testing GPU-facing code without a window or driver.
package graphicstest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/richinsley/learngl/graphics"
)

// Call is one recorded Device invocation.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Object kinds tracked by the recorder.
const (
	KindShader      = "shader"
	KindProgram     = "program"
	KindVertexArray = "vertexarray"
	KindBuffer      = "buffer"
	KindTexture     = "texture"
)

type shaderState struct {
	kind     uint32
	source   string
	compiled bool
	log      string
}

type programState struct {
	attached []uint32
	linked   bool
	log      string
	uniforms map[string]int32
}

// Recorder implements graphics.Device. Shader compilation is simulated with a
// line-level syntax check; uniform locations are assigned in declaration
// order to every `uniform` declared by the attached shaders.
type Recorder struct {
	// CompileCheck replaces the built-in syntax check when set.
	CompileCheck func(kind uint32, source string) (ok bool, log string)
	// LinkLog forces every link to fail with this log when non-empty.
	LinkLog string
	// ValidateLog forces every validation to fail with this log when non-empty.
	ValidateLog string

	calls    []Call
	nextID   uint32
	live     map[uint32]string
	shaders  map[uint32]*shaderState
	programs map[uint32]*programState

	// DoubleDeletes lists ids deleted while not live.
	DoubleDeletes []uint32
	// Bound tracks the current binding of each target (program, vao, buffers).
	Bound map[uint32]uint32
	// CurrentProgram is the program set by the last UseProgram.
	CurrentProgram uint32
}

var _ graphics.Device = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		live:     make(map[uint32]string),
		shaders:  make(map[uint32]*shaderState),
		programs: make(map[uint32]*programState),
		Bound:    make(map[uint32]uint32),
	}
}

func (r *Recorder) record(op string, args ...any) {
	r.calls = append(r.calls, Call{Op: op, Args: args})
}

func (r *Recorder) alloc(kind string) uint32 {
	r.nextID++
	r.live[r.nextID] = kind
	return r.nextID
}

func (r *Recorder) free(id uint32, kind string) {
	if id == 0 {
		return
	}
	if k, ok := r.live[id]; !ok || k != kind {
		r.DoubleDeletes = append(r.DoubleDeletes, id)
		return
	}
	delete(r.live, id)
}

// Calls returns the full call trace.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// CallsOf returns the recorded calls named op, in order.
func (r *Recorder) CallsOf(op string) []Call {
	var out []Call
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	return len(r.CallsOf(op))
}

// Reset clears the call trace but keeps object state.
func (r *Recorder) Reset() {
	r.calls = nil
}

// Live returns how many objects of kind are allocated and not deleted.
func (r *Recorder) Live(kind string) int {
	n := 0
	for _, k := range r.live {
		if k == kind {
			n++
		}
	}
	return n
}

// IsLive reports whether id is allocated and not deleted.
func (r *Recorder) IsLive(id uint32) bool {
	_, ok := r.live[id]
	return ok
}

func (r *Recorder) CreateShader(kind uint32) uint32 {
	id := r.alloc(KindShader)
	r.shaders[id] = &shaderState{kind: kind}
	r.record("CreateShader", kind)
	return id
}

func (r *Recorder) CompileShader(shader uint32, source string) {
	r.record("CompileShader", shader)
	s, ok := r.shaders[shader]
	if !ok {
		return
	}
	s.source = source
	check := r.CompileCheck
	if check == nil {
		check = checkSyntax
	}
	s.compiled, s.log = check(s.kind, source)
}

func (r *Recorder) ShaderStatus(shader uint32) (bool, string) {
	r.record("ShaderStatus", shader)
	s, ok := r.shaders[shader]
	if !ok {
		return false, "invalid shader object"
	}
	return s.compiled, s.log
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader", shader)
	r.free(shader, KindShader)
}

func (r *Recorder) CreateProgram() uint32 {
	id := r.alloc(KindProgram)
	r.programs[id] = &programState{}
	r.record("CreateProgram")
	return id
}

func (r *Recorder) AttachShader(program, shader uint32) {
	r.record("AttachShader", program, shader)
	if p, ok := r.programs[program]; ok {
		p.attached = append(p.attached, shader)
	}
}

// Attached returns the shaders attached to program.
func (r *Recorder) Attached(program uint32) []uint32 {
	if p, ok := r.programs[program]; ok {
		return p.attached
	}
	return nil
}

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*(\[\s*\d+\s*\])?\s*;`)

func (r *Recorder) LinkProgram(program uint32) {
	r.record("LinkProgram", program)
	p, ok := r.programs[program]
	if !ok {
		return
	}
	if r.LinkLog != "" {
		p.linked, p.log = false, r.LinkLog
		return
	}
	var stages = map[uint32]bool{}
	p.uniforms = make(map[string]int32)
	var next int32
	for _, id := range p.attached {
		s := r.shaders[id]
		if s == nil || !s.compiled {
			p.linked, p.log = false, "error: attached shader is not compiled"
			return
		}
		stages[s.kind] = true
		for _, m := range uniformDecl.FindAllStringSubmatch(stripComments(s.source), -1) {
			if _, dup := p.uniforms[m[1]]; !dup {
				p.uniforms[m[1]] = next
				next++
			}
		}
	}
	if !stages[graphics.VertexShader] || !stages[graphics.FragmentShader] {
		p.linked, p.log = false, "error: program lacks a vertex or fragment stage"
		return
	}
	p.linked, p.log = true, ""
}

func (r *Recorder) ProgramStatus(program uint32) (bool, string) {
	r.record("ProgramStatus", program)
	p, ok := r.programs[program]
	if !ok {
		return false, "invalid program object"
	}
	return p.linked, p.log
}

func (r *Recorder) ValidateProgram(program uint32) (bool, string) {
	r.record("ValidateProgram", program)
	if r.ValidateLog != "" {
		return false, r.ValidateLog
	}
	return true, ""
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
	r.CurrentProgram = program
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", program)
	r.free(program, KindProgram)
}

func (r *Recorder) UniformLocation(program uint32, name string) int32 {
	r.record("UniformLocation", program, name)
	p, ok := r.programs[program]
	if !ok || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) Uniform1i(location int32, v int32) {
	r.record("Uniform1i", location, v)
}

func (r *Recorder) Uniform1f(location int32, v float32) {
	r.record("Uniform1f", location, v)
}

func (r *Recorder) Uniform3f(location int32, x, y, z float32) {
	r.record("Uniform3f", location, x, y, z)
}

func (r *Recorder) UniformMatrix4fv(location int32, m *[16]float32) {
	r.record("UniformMatrix4fv", location, *m)
}

func (r *Recorder) GenVertexArray() uint32 {
	id := r.alloc(KindVertexArray)
	r.record("GenVertexArray")
	return id
}

func (r *Recorder) BindVertexArray(vao uint32) {
	r.record("BindVertexArray", vao)
}

func (r *Recorder) DeleteVertexArray(vao uint32) {
	r.record("DeleteVertexArray", vao)
	r.free(vao, KindVertexArray)
}

func (r *Recorder) GenBuffer() uint32 {
	id := r.alloc(KindBuffer)
	r.record("GenBuffer")
	return id
}

func (r *Recorder) BindBuffer(target, buffer uint32) {
	r.record("BindBuffer", target, buffer)
	r.Bound[target] = buffer
}

func (r *Recorder) BufferFloat32(target uint32, data []float32) {
	r.record("BufferFloat32", target, len(data))
}

func (r *Recorder) BufferUint32(target uint32, data []uint32) {
	r.record("BufferUint32", target, len(data))
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.record("DeleteBuffer", buffer)
	r.free(buffer, KindBuffer)
}

func (r *Recorder) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	r.record("VertexAttribPointer", index, size, stride, offset)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawElements(mode uint32, count int32, offset int) {
	r.record("DrawElements", mode, count, offset)
}

func (r *Recorder) GenTexture() uint32 {
	id := r.alloc(KindTexture)
	r.record("GenTexture")
	return id
}

func (r *Recorder) ActiveTexture(unit uint32) {
	r.record("ActiveTexture", unit)
}

func (r *Recorder) BindTexture(target, texture uint32) {
	r.record("BindTexture", target, texture)
	r.Bound[target] = texture
}

func (r *Recorder) TexParameteri(target, pname uint32, param int32) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) TexImage2DRGBA(target uint32, width, height int32, pixels []byte) {
	r.record("TexImage2DRGBA", target, width, height, append([]byte(nil), pixels...))
}

func (r *Recorder) GenerateMipmap(target uint32) {
	r.record("GenerateMipmap", target)
}

func (r *Recorder) DeleteTexture(texture uint32) {
	r.record("DeleteTexture", texture)
	r.free(texture, KindTexture)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask uint32) {
	r.record("Clear", mask)
}

func (r *Recorder) Enable(capability uint32) {
	r.record("Enable", capability)
}

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)
)

func stripComments(src string) string {
	src = blockComment.ReplaceAllStringFunc(src, func(s string) string {
		// keep line numbers stable
		return strings.Repeat("\n", strings.Count(s, "\n"))
	})
	return lineComment.ReplaceAllString(src, "")
}

// checkSyntax is a coarse stand-in for a GLSL front end: it requires a main
// function and flags statements that do not end in ';'. A line ending in ')'
// is accepted only when the next line opens a block, so valid GLSL such as a
// brace-less "if (x)" followed by a statement on the next line is rejected.
// Test sources must put block braces after every such line.
func checkSyntax(_ uint32, source string) (bool, string) {
	lines := strings.Split(stripComments(source), "\n")
	if !strings.Contains(source, "main") {
		return false, "0:0(0): error: function `main' is not defined"
	}
	next := func(i int) string {
		for j := i + 1; j < len(lines); j++ {
			if t := strings.TrimSpace(lines[j]); t != "" {
				return t
			}
		}
		return ""
	}
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch line[len(line)-1] {
		case ';', '{', '}', ',', '(':
			continue
		case ')':
			if strings.HasPrefix(next(i), "{") {
				continue
			}
		}
		return false, fmt.Sprintf("0:%d(%d): error: syntax error, unexpected end of statement, expecting ';'", i+1, len(raw)+1)
	}
	return true, ""
}
