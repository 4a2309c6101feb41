package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type scriptedContext struct {
	frames int
	clock  float64
	trace  []string
}

func (c *scriptedContext) MakeCurrent()                           {}
func (c *scriptedContext) Destroy()                               {}
func (c *scriptedContext) ShouldClose() bool                      { return c.frames == 0 }
func (c *scriptedContext) PollEvents()                            { c.trace = append(c.trace, "poll") }
func (c *scriptedContext) FramebufferSize() (int, int)            { return 800, 600 }
func (c *scriptedContext) ConsumeCursorDelta() (float32, float32) { return 0, 0 }

func (c *scriptedContext) SwapBuffers() {
	c.trace = append(c.trace, "swap")
	c.frames--
}

func (c *scriptedContext) Time() float64 {
	c.clock += 0.5
	return c.clock
}

func TestRunFrames(t *testing.T) {
	ctx := &scriptedContext{frames: 2}
	var deltas []float32
	RunFrames(ctx, func(now float64, dt float32) {
		ctx.trace = append(ctx.trace, "frame")
		deltas = append(deltas, dt)
	})

	assert.Equal(t, []string{"poll", "frame", "swap", "poll", "frame", "swap"}, ctx.trace)
	assert.Equal(t, []float32{0.5, 0.5}, deltas)
}

func TestRunFramesClosedContext(t *testing.T) {
	ctx := &scriptedContext{}
	RunFrames(ctx, func(float64, float32) { t.Fatal("no frame expected") })
	assert.Empty(t, ctx.trace)
}
