package mesh

// floatSize is the byte size of one float32 vertex component.
const floatSize = 4

// Attribute describes one float vertex attribute inside an interleaved buffer.
// Stride and Offset are in bytes; a Stride of 0 means tightly packed.
type Attribute struct {
	Slot       uint32
	Components int32
	Stride     int32
	Offset     int
}

// Layout is the vertex schema of a mesh, one entry per attribute binding.
type Layout []Attribute

// Interleaved builds a layout for vertices made of consecutive attributes with
// the given component counts, bound to slots 0..n-1. Interleaved(3, 2, 3) is
// position, texture coordinate and normal packed into 8 floats.
func Interleaved(components ...int32) Layout {
	var total int32
	for _, c := range components {
		total += c
	}
	layout := make(Layout, 0, len(components))
	offset := 0
	for i, c := range components {
		layout = append(layout, Attribute{
			Slot:       uint32(i),
			Components: c,
			Stride:     total * floatSize,
			Offset:     offset,
		})
		offset += int(c) * floatSize
	}
	return layout
}

// FloatsPerVertex returns the number of floats one vertex occupies.
func (l Layout) FloatsPerVertex() int {
	var stride int32
	var packed int32
	for _, a := range l {
		if a.Stride > stride {
			stride = a.Stride
		}
		packed += a.Components
	}
	if stride > 0 {
		return int(stride / floatSize)
	}
	return int(packed)
}
