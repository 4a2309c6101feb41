package glfwcontext

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync/atomic"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/learngl/graphics"
)

// State is the lifecycle of a Context.
type State int

const (
	Uninitialized State = iota
	Ready
	// Closing is entered when the OS asks to close or Escape is pressed. The
	// frame loop should exit; there is no way back to Ready.
	Closing
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Closing:
		return "closing"
	case Destroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrAlreadyCreated is returned by New while another Context is alive. GLFW
// state is process wide and Destroy terminates it.
var ErrAlreadyCreated = errors.New("a window context already exists in this process")

// WindowError reports a failure to set up the window or its GL context.
type WindowError struct {
	Op  string
	Err error
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("window: %s: %v", e.Op, e.Err)
}

func (e *WindowError) Unwrap() error {
	return e.Err
}

var alive atomic.Bool

// Context owns the GLFW window, its OpenGL context and the input state the
// window callbacks feed.
type Context struct {
	window          *glfw.Window
	requestedWidth  int
	requestedHeight int
	fbWidth         int
	fbHeight        int
	input           inputState
	state           State
	onResize        func(width, height int)
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
}

var _ graphics.Context = (*Context)(nil)

// New initializes GLFW and opens a window with a current OpenGL 4.1 core
// context. It must be called from the main thread.
func New(width, height int, title string) (*Context, error) {
	if !alive.CompareAndSwap(false, true) {
		return nil, &WindowError{Op: "create", Err: ErrAlreadyCreated}
	}
	if err := InitGraphics(); err != nil {
		alive.Store(false)
		return nil, &WindowError{Op: "init", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		TerminateGraphics()
		alive.Store(false)
		return nil, &WindowError{Op: "create window", Err: err}
	}
	win.MakeContextCurrent()

	c := &Context{
		window:          win,
		requestedWidth:  width,
		requestedHeight: height,
		state:           Ready,
		keyCallbacks:    make(map[glfw.Key]func()),
	}
	c.fbWidth, c.fbHeight = win.GetFramebufferSize()

	// The callbacks are methods of this instance, so no user pointer or
	// package state is needed to find it again.
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)

	log.Printf("Window %q created: %dx%d, framebuffer %dx%d", title, width, height, c.fbWidth, c.fbHeight)
	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

// OnFramebufferResize registers f to be called with the new framebuffer size,
// in pixels, whenever it changes. The owner uses it to update the viewport.
func (c *Context) OnFramebufferResize(f func(width, height int)) {
	c.onResize = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if c.handleKey(key, action) {
		w.SetShouldClose(true)
	}
}

// handleKey updates the key table and runs registered callbacks. It reports
// whether the key requests the window to close.
func (c *Context) handleKey(key glfw.Key, action glfw.Action) bool {
	switch action {
	case glfw.Press:
		c.input.setKey(int(key), true)
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	case glfw.Release:
		c.input.setKey(int(key), false)
	}
	if key == glfw.KeyEscape && action == glfw.Press {
		if c.state == Ready {
			c.state = Closing
		}
		return true
	}
	return false
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, x, y float64) {
	c.input.cursorMoved(x, y)
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	c.handleFramebufferSize(width, height)
}

func (c *Context) handleFramebufferSize(width, height int) {
	c.fbWidth, c.fbHeight = width, height
	if c.onResize != nil {
		c.onResize(width, height)
	}
}

// PollEvents processes pending OS events without waiting. Call it once per
// frame before reading input.
func (c *Context) PollEvents() {
	glfw.PollEvents()
	if c.state == Ready && c.window.ShouldClose() {
		c.state = Closing
	}
}

// ShouldClose reports whether the frame loop should stop.
func (c *Context) ShouldClose() bool {
	if c.state == Ready && c.window.ShouldClose() {
		c.state = Closing
	}
	return c.state != Ready
}

func (c *Context) SwapBuffers() {
	if c.window == nil {
		return
	}
	c.window.SwapBuffers()
}

// ConsumeCursorDelta returns the cursor movement accumulated since the last
// call and resets it.
func (c *Context) ConsumeCursorDelta() (dx, dy float32) {
	return c.input.consumeDelta()
}

func (c *Context) IsKeyDown(key glfw.Key) bool {
	return c.input.keyDown(int(key))
}

// SetCursorDisabled hides and captures the cursor for free-look movement.
func (c *Context) SetCursorDisabled(disabled bool) {
	if c.window == nil {
		return
	}
	mode := glfw.CursorNormal
	if disabled {
		mode = glfw.CursorDisabled
	}
	c.window.SetInputMode(glfw.CursorMode, mode)
}

// FramebufferSize returns the drawable size in pixels, which exceeds the
// requested window size on scaled displays.
func (c *Context) FramebufferSize() (int, int) {
	return c.fbWidth, c.fbHeight
}

// RequestedSize returns the window size passed to New.
func (c *Context) RequestedSize() (int, int) {
	return c.requestedWidth, c.requestedHeight
}

func (c *Context) State() State {
	return c.state
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	if c.window == nil {
		return
	}
	c.window.MakeContextCurrent()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// Destroy closes the window and terminates GLFW. It may be called in any
// state and more than once.
func (c *Context) Destroy() {
	if c == nil || c.state == Destroyed {
		return
	}
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
		TerminateGraphics()
		alive.Store(false)
	}
	c.state = Destroyed
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
