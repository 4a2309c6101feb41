package mesh

import (
	"errors"
	"fmt"

	"github.com/richinsley/learngl/graphics"
)

// ErrUnknownRange is returned by DrawNamed for a name no WithRange declared.
var ErrUnknownRange = errors.New("unknown mesh range")

// Range is a sub-range of a mesh: indices when the mesh is indexed, vertices
// otherwise.
type Range struct {
	First int32
	Count int32
}

// Option configures a Mesh at creation.
type Option func(*Mesh)

// WithRange names a sub-range so several programs can draw parts of one
// shared buffer.
func WithRange(name string, first, count int32) Option {
	return func(m *Mesh) {
		m.ranges[name] = Range{First: first, Count: count}
	}
}

// Mesh owns a vertex array, a vertex buffer and an optional index buffer
// holding static triangle geometry.
type Mesh struct {
	dev         graphics.Device
	vao         uint32
	vbo         uint32
	ibo         uint32
	indexCount  int32
	vertexCount int32
	layout      Layout
	ranges      map[string]Range
	released    bool
}

// New uploads vertices (and indices, when non-empty) once and binds one
// attribute per layout entry.
//
// len(vertices) must be a multiple of layout.FloatsPerVertex() and every index
// must address an existing vertex. Violations are not detected and render
// garbage.
func New(dev graphics.Device, vertices []float32, layout Layout, indices []uint32, opts ...Option) *Mesh {
	m := &Mesh{
		dev:        dev,
		indexCount: int32(len(indices)),
		layout:     append(Layout(nil), layout...),
		ranges:     make(map[string]Range),
	}
	if n := layout.FloatsPerVertex(); n > 0 {
		m.vertexCount = int32(len(vertices) / n)
	}
	for _, opt := range opts {
		opt(m)
	}

	// the VAO records the attribute layout and the element buffer binding
	m.vao = dev.GenVertexArray()
	dev.BindVertexArray(m.vao)

	if len(indices) > 0 {
		m.ibo = dev.GenBuffer()
		dev.BindBuffer(graphics.ElementArrayBuffer, m.ibo)
		dev.BufferUint32(graphics.ElementArrayBuffer, indices)
	}

	m.vbo = dev.GenBuffer()
	dev.BindBuffer(graphics.ArrayBuffer, m.vbo)
	dev.BufferFloat32(graphics.ArrayBuffer, vertices)

	for _, a := range layout {
		dev.VertexAttribPointer(a.Slot, a.Components, a.Stride, a.Offset)
		dev.EnableVertexAttribArray(a.Slot)
	}

	dev.BindBuffer(graphics.ArrayBuffer, 0)
	dev.BindVertexArray(0)
	// only safe once the VAO is unbound
	if m.ibo != 0 {
		dev.BindBuffer(graphics.ElementArrayBuffer, 0)
	}
	return m
}

// Draw draws every index (or every vertex) as triangles.
func (m *Mesh) Draw() {
	if m.Indexed() {
		m.DrawRange(0, m.indexCount)
		return
	}
	m.DrawRange(0, m.vertexCount)
}

// DrawRange draws count indices (or vertices) starting at first.
func (m *Mesh) DrawRange(first, count int32) {
	if m.released || count <= 0 {
		return
	}
	m.dev.BindVertexArray(m.vao)
	if m.Indexed() {
		m.dev.DrawElements(graphics.Triangles, count, int(first)*4)
	} else {
		m.dev.DrawArrays(graphics.Triangles, first, count)
	}
	m.dev.BindVertexArray(0)
}

// DrawNamed draws the sub-range registered under name.
func (m *Mesh) DrawNamed(name string) error {
	r, ok := m.ranges[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRange, name)
	}
	m.DrawRange(r.First, r.Count)
	return nil
}

// Range returns the sub-range registered under name.
func (m *Mesh) Range(name string) (Range, bool) {
	r, ok := m.ranges[name]
	return r, ok
}

func (m *Mesh) Indexed() bool {
	return m.indexCount > 0
}

func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

func (m *Mesh) VertexCount() int32 {
	return m.vertexCount
}

func (m *Mesh) Layout() Layout {
	return m.layout
}

// Release deletes the GPU objects. Further calls, and calls on a nil Mesh, do
// nothing.
func (m *Mesh) Release() {
	if m == nil || m.released {
		return
	}
	if m.ibo != 0 {
		m.dev.DeleteBuffer(m.ibo)
	}
	m.dev.DeleteBuffer(m.vbo)
	m.dev.DeleteVertexArray(m.vao)
	m.vao, m.vbo, m.ibo = 0, 0, 0
	m.released = true
}
