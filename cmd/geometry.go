package main

import "github.com/go-gl/mathgl/mgl32"

// Interleaved as position (3), texture coordinate (2), normal (3).
var quadVertices = []float32{
	-1, -1, 0, 0, 0, 0, 0, 1,
	1, -1, 0, 1, 0, 0, 0, 1,
	1, 1, 0, 1, 1, 0, 0, 1,
	-1, 1, 0, 0, 1, 0, 0, 1,
}

var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// cubeFace is the outward normal of a face and two axes spanning it.
type cubeFace struct {
	normal, u, v mgl32.Vec3
}

var cubeFaces = []cubeFace{
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
}

// cube returns a unit cube centred on the origin with four vertices per face,
// so every face has its own normal and full texture.
func cube() ([]float32, []uint32) {
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	vertices := make([]float32, 0, len(cubeFaces)*4*8)
	indices := make([]uint32, 0, len(cubeFaces)*6)
	for i, f := range cubeFaces {
		for _, c := range corners {
			p := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1])).Mul(0.5)
			vertices = append(vertices,
				p[0], p[1], p[2],
				(c[0]+1)/2, (c[1]+1)/2,
				f.normal[0], f.normal[1], f.normal[2])
		}
		base := uint32(i * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return vertices, indices
}
