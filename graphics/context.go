package graphics

// Context defines the interface for a window that owns an OpenGL context.
type Context interface {
	MakeCurrent()
	Destroy()
	ShouldClose() bool
	PollEvents()
	SwapBuffers()
	FramebufferSize() (int, int)
	Time() float64
	// ConsumeCursorDelta returns the cursor movement since the previous call
	// and resets it to zero.
	ConsumeCursorDelta() (dx, dy float32)
}

// RunFrames drives a frame loop on ctx until it asks to close. Each frame
// polls events, calls frame with the current time and the seconds since the
// previous frame, then swaps buffers.
func RunFrames(ctx Context, frame func(now float64, dt float32)) {
	last := ctx.Time()
	for !ctx.ShouldClose() {
		ctx.PollEvents()
		now := ctx.Time()
		frame(now, float32(now-last))
		last = now
		ctx.SwapBuffers()
	}
}
