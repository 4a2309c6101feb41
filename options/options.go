package options

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LightOptions struct {
	Color     [3]float32 `yaml:"color"`
	Ambient   float32    `yaml:"ambient"`
	Direction [3]float32 `yaml:"direction"`
	Diffuse   float32    `yaml:"diffuse"`
}

type CameraOptions struct {
	Position  [3]float32 `yaml:"position"`
	Yaw       float32    `yaml:"yaw"`
	Pitch     float32    `yaml:"pitch"`
	MoveSpeed float32    `yaml:"move_speed"`
	TurnSpeed float32    `yaml:"turn_speed"`
}

// ExerciseOptions configures an exercise program. Empty shader paths select
// the built-in GLSL sources; empty texture paths select a checkerboard.
type ExerciseOptions struct {
	Width          int           `yaml:"width"`
	Height         int           `yaml:"height"`
	Title          string        `yaml:"title"`
	VertexShader   string        `yaml:"vertex_shader"`
	FragmentShader string        `yaml:"fragment_shader"`
	QuadTexture    string        `yaml:"quad_texture"`
	CubeTexture    string        `yaml:"cube_texture"`
	Watch          bool          `yaml:"watch"`          // Rebuild the program when a shader file changes
	CaptureCursor  bool          `yaml:"capture_cursor"` // Hide the cursor and use it for free look
	ClearColor     [3]float32    `yaml:"clear_color"`
	Light          LightOptions  `yaml:"light"`
	Camera         CameraOptions `yaml:"camera"`
}

// Default returns the exercise defaults: an 800x600 window,
// a white sun light and a camera at the origin looking down -Z.
func Default() *ExerciseOptions {
	return &ExerciseOptions{
		Width:         800,
		Height:        600,
		Title:         "GL Test Window",
		CaptureCursor: true,
		Light: LightOptions{
			Color:     [3]float32{1, 1, 1},
			Ambient:   0.3,
			Direction: [3]float32{0, -1, -1},
			Diffuse:   0.8,
		},
		Camera: CameraOptions{
			Yaw:       -90,
			MoveSpeed: 5,
			TurnSpeed: 0.5,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*ExerciseOptions, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return opts, nil
}

// Parse reads command-line flags. A -config file is applied first and
// explicitly set flags override it.
func Parse(fs *flag.FlagSet, args []string) (*ExerciseOptions, error) {
	var (
		config        = fs.String("config", "", "YAML exercise configuration file")
		width         = fs.Int("width", 800, "Window width")
		height        = fs.Int("height", 600, "Window height")
		title         = fs.String("title", "GL Test Window", "Window title")
		vertexShader  = fs.String("vert", "", "Vertex shader file (built-in source if empty)")
		fragShader    = fs.String("frag", "", "Fragment shader file (built-in source if empty)")
		quadTexture   = fs.String("quad-texture", "", "Texture image for the quad")
		cubeTexture   = fs.String("cube-texture", "", "Texture image for the cube")
		watch         = fs.Bool("watch", false, "Rebuild the shader program when its files change")
		captureCursor = fs.Bool("capture-cursor", true, "Capture the cursor for free look")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := Default()
	if *config != "" {
		var err error
		if opts, err = Load(*config); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			opts.Width = *width
		case "height":
			opts.Height = *height
		case "title":
			opts.Title = *title
		case "vert":
			opts.VertexShader = *vertexShader
		case "frag":
			opts.FragmentShader = *fragShader
		case "quad-texture":
			opts.QuadTexture = *quadTexture
		case "cube-texture":
			opts.CubeTexture = *cubeTexture
		case "watch":
			opts.Watch = *watch
		case "capture-cursor":
			opts.CaptureCursor = *captureCursor
		}
	})

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks the window size and that shader files come in pairs.
func (o *ExerciseOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", o.Width, o.Height)
	}
	if (o.VertexShader == "") != (o.FragmentShader == "") {
		return errors.New("vertex and fragment shader files must be given together")
	}
	if o.Watch && o.VertexShader == "" {
		return errors.New("watch needs shader files")
	}
	return nil
}

// UsesShaderFiles reports whether the program is loaded from disk.
func (o *ExerciseOptions) UsesShaderFiles() bool {
	return o.VertexShader != ""
}
