// Command subranges draws two parts of one vertex buffer with two programs:
// the bars in a configurable flat colour and the trims in yellow.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/richinsley/learngl/gldevice"
	"github.com/richinsley/learngl/glfwcontext"
	"github.com/richinsley/learngl/graphics"
	"github.com/richinsley/learngl/mesh"
	"github.com/richinsley/learngl/options"
	"github.com/richinsley/learngl/shader"
)

func init() {
	runtime.LockOSThread()
}

// Positions only. The first 18 vertices are three bars, the last 12 are two
// trims across them.
var vertices = []float32{
	// left bar
	-0.8, -0.6, 0, -0.5, -0.6, 0, -0.5, 0.6, 0,
	-0.5, 0.6, 0, -0.8, 0.6, 0, -0.8, -0.6, 0,
	// middle bar
	-0.15, -0.6, 0, 0.15, -0.6, 0, 0.15, 0.6, 0,
	0.15, 0.6, 0, -0.15, 0.6, 0, -0.15, -0.6, 0,
	// right bar
	0.5, -0.6, 0, 0.8, -0.6, 0, 0.8, 0.6, 0,
	0.8, 0.6, 0, 0.5, 0.6, 0, 0.5, -0.6, 0,
	// top trim
	-0.9, 0.6, 0, 0.9, 0.6, 0, 0.9, 0.7, 0,
	0.9, 0.7, 0, -0.9, 0.7, 0, -0.9, 0.6, 0,
	// bottom trim
	-0.9, -0.7, 0, 0.9, -0.7, 0, 0.9, -0.6, 0,
	0.9, -0.6, 0, -0.9, -0.6, 0, -0.9, -0.7, 0,
}

func newMesh(dev graphics.Device) *mesh.Mesh {
	return mesh.New(dev, vertices, mesh.Interleaved(3), nil,
		mesh.WithRange("bars", 0, 18),
		mesh.WithRange("trims", 18, 12))
}

func main() {
	opts, err := options.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	win, err := glfwcontext.New(opts.Width, opts.Height, opts.Title)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Destroy()

	dev, err := gldevice.New()
	if err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}
	width, height := win.FramebufferSize()
	dev.Viewport(0, 0, int32(width), int32(height))
	win.OnFramebufferResize(func(width, height int) {
		dev.Viewport(0, 0, int32(width), int32(height))
	})

	flat, err := shader.FromSource(dev, shader.FlatVertexSource(), shader.FlatFragmentSource(false))
	if err != nil {
		log.Fatalf("Failed to build flat program: %v", err)
	}
	defer flat.Release()
	yellow, err := shader.FromSource(dev, shader.FlatVertexSource(), shader.FlatFragmentSource(true))
	if err != nil {
		log.Fatalf("Failed to build yellow program: %v", err)
	}
	defer yellow.Release()

	shape := newMesh(dev)
	defer shape.Release()

	barColour := mgl32.Vec3{1.0, 0.5, 0.2}
	graphics.RunFrames(win, func(float64, float32) {
		dev.ClearColor(opts.ClearColor[0], opts.ClearColor[1], opts.ClearColor[2], 1)
		dev.Clear(graphics.ColorBufferBit)

		flat.Use()
		flat.SetVec3("colour", barColour)
		if err := shape.DrawNamed("bars"); err != nil {
			log.Fatalf("Draw failed: %v", err)
		}

		yellow.Use()
		if err := shape.DrawNamed("trims"); err != nil {
			log.Fatalf("Draw failed: %v", err)
		}
	})
}
