package main

import (
	"context"
	"flag"
	"image/color"
	"log"
	"os"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/richinsley/learngl/camera"
	"github.com/richinsley/learngl/gldevice"
	"github.com/richinsley/learngl/glfwcontext"
	"github.com/richinsley/learngl/graphics"
	"github.com/richinsley/learngl/light"
	"github.com/richinsley/learngl/mesh"
	"github.com/richinsley/learngl/options"
	"github.com/richinsley/learngl/shader"
	"github.com/richinsley/learngl/texture"
)

func init() {
	runtime.LockOSThread()
}

// loadProgram builds the lit program from the configured files, or from the
// built-in sources when none are set.
func loadProgram(dev graphics.Device, opts *options.ExerciseOptions) (*shader.Program, error) {
	if opts.UsesShaderFiles() {
		return shader.New(dev, opts.VertexShader, opts.FragmentShader)
	}
	return shader.FromSource(dev, shader.LitVertexSource(), shader.LitFragmentSource())
}

func loadTexture(dev graphics.Device, path string, a, b color.Color) (*texture.Texture, error) {
	texOpts := texture.Options{Wrap: "repeat", Filter: "mipmap"}
	if path == "" {
		return texture.FromImage(dev, texture.Checkerboard(256, 8, a, b), texOpts)
	}
	return texture.Load(dev, path, texOpts)
}

func projection(width, height int) mgl32.Mat4 {
	if height == 0 {
		height = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(45), float32(width)/float32(height), 0.1, 100)
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
	win.SetCursorDisabled(opts.CaptureCursor)

	dev, err := gldevice.New()
	if err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}
	log.Printf("OpenGL version: %s", dev.Version())
	dev.Enable(graphics.DepthTest)

	fbWidth, fbHeight := win.FramebufferSize()
	dev.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	proj := projection(fbWidth, fbHeight)
	win.OnFramebufferResize(func(width, height int) {
		dev.Viewport(0, 0, int32(width), int32(height))
		proj = projection(width, height)
	})

	prog, err := loadProgram(dev, opts)
	if err != nil {
		log.Fatalf("Failed to build shader program: %v", err)
	}
	defer prog.Release()

	layout := mesh.Interleaved(3, 2, 3)
	quad := mesh.New(dev, quadVertices, layout, quadIndices)
	defer quad.Release()
	cubeVertices, cubeIndices := cube()
	box := mesh.New(dev, cubeVertices, layout, cubeIndices)
	defer box.Release()

	brick, err := loadTexture(dev, opts.QuadTexture, color.RGBA{178, 34, 34, 255}, color.RGBA{205, 133, 63, 255})
	if err != nil {
		log.Fatalf("Failed to load quad texture: %v", err)
	}
	defer brick.Release()
	dirt, err := loadTexture(dev, opts.CubeTexture, color.RGBA{101, 67, 33, 255}, color.RGBA{139, 90, 43, 255})
	if err != nil {
		log.Fatalf("Failed to load cube texture: %v", err)
	}
	defer dirt.Release()

	cam := camera.New(mgl32.Vec3(opts.Camera.Position), mgl32.Vec3{0, 1, 0},
		opts.Camera.Yaw, opts.Camera.Pitch, opts.Camera.MoveSpeed, opts.Camera.TurnSpeed)
	sun := light.Directional{
		Color:            mgl32.Vec3(opts.Light.Color),
		AmbientIntensity: opts.Light.Ambient,
		Direction:        mgl32.Vec3(opts.Light.Direction),
		DiffuseIntensity: opts.Light.Diffuse,
	}

	// Reloads are requested by the R key or by the file watcher and always
	// run here, on the thread that owns the GL context.
	reload := false
	win.RegisterKeyCallback(glfw.KeyR, func() { reload = true })

	var changes <-chan string
	if opts.Watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		vp, fp := prog.Paths()
		if changes, err = shader.Watch(ctx, vp, fp); err != nil {
			log.Fatalf("Failed to watch shaders: %v", err)
		}
	}

	movement := map[glfw.Key]camera.Direction{
		glfw.KeyW: camera.Forward,
		glfw.KeyS: camera.Backward,
		glfw.KeyA: camera.Left,
		glfw.KeyD: camera.Right,
	}

	log.Println("Starting render loop...")
	graphics.RunFrames(win, func(now float64, dt float32) {
		var changed bool
		if changed, changes = drainChanges(changes); changed {
			reload = true
		}
		if reload {
			reload = false
			if !opts.UsesShaderFiles() {
				log.Printf("Built-in shaders have no files to reload")
			} else if err := prog.Reload(); err != nil {
				log.Printf("Shader reload failed, keeping the previous program: %v", err)
			}
		}

		for key, dir := range movement {
			if win.IsKeyDown(key) {
				cam.Move(dir, dt)
			}
		}
		cam.Turn(win.ConsumeCursorDelta())

		dev.ClearColor(opts.ClearColor[0], opts.ClearColor[1], opts.ClearColor[2], 1)
		dev.Clear(graphics.ColorBufferBit | graphics.DepthBufferBit)

		prog.Use()
		prog.SetInt("theTexture", 0)
		prog.SetMat4("projection", proj)
		prog.SetMat4("view", cam.ViewMatrix())
		sun.Apply(prog)

		model := mgl32.Translate3D(0, -1, -2.5).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(-90)))
		prog.SetMat4("model", model)
		brick.Use(0)
		quad.Draw()

		angle := float32(now) * mgl32.DegToRad(30)
		model = mgl32.Translate3D(0, 0, -4).Mul4(mgl32.HomogRotate3D(angle, mgl32.Vec3{0.5, 1, 0}.Normalize()))
		prog.SetMat4("model", model)
		dirt.Use(0)
		box.Draw()
	})
	log.Printf("Window %s, shutting down", win.State())
}
