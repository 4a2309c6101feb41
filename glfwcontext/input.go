package glfwcontext

// maxKeys bounds the key table; GLFW key codes stop at KeyLast (348).
const maxKeys = 1024

// inputState is the keyboard and cursor state fed by the GLFW callbacks.
type inputState struct {
	keys [maxKeys]bool

	lastX, lastY float64
	seenCursor   bool
	dx, dy       float32
}

func (s *inputState) setKey(key int, pressed bool) {
	if key < 0 || key >= maxKeys {
		return
	}
	s.keys[key] = pressed
}

func (s *inputState) keyDown(key int) bool {
	if key < 0 || key >= maxKeys {
		return false
	}
	return s.keys[key]
}

// cursorMoved accumulates movement since the last consumeDelta. Y grows
// upward, the opposite of window coordinates. The first position only seeds
// the reference point so the initial jump is not reported.
func (s *inputState) cursorMoved(x, y float64) {
	if !s.seenCursor {
		s.lastX, s.lastY = x, y
		s.seenCursor = true
	}
	s.dx += float32(x - s.lastX)
	s.dy += float32(s.lastY - y)
	s.lastX, s.lastY = x, y
}

func (s *inputState) consumeDelta() (float32, float32) {
	dx, dy := s.dx, s.dy
	s.dx, s.dy = 0, 0
	return dx, dy
}
