package game

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"shootingrange/internal/sim"
)

var keyMap = map[glfw.Key]sim.Key{
	glfw.KeyW:     sim.KeyForward,
	glfw.KeyUp:    sim.KeyForward,
	glfw.KeyS:     sim.KeyBack,
	glfw.KeyDown:  sim.KeyBack,
	glfw.KeyA:     sim.KeyLeft,
	glfw.KeyLeft:  sim.KeyLeft,
	glfw.KeyD:     sim.KeyRight,
	glfw.KeyRight: sim.KeyRight,
}

// Controls translates GLFW callbacks into world input. All callbacks run
// on the main thread inside PollEvents, before the tick that consumes them.
type Controls struct {
	window *glfw.Window
	world  *sim.World
	log    *slog.Logger

	captured     bool
	lastX, lastY float64
	haveLast     bool
}

func NewControls(window *glfw.Window, world *sim.World, log *slog.Logger) *Controls {
	c := &Controls{window: window, world: world, log: log}
	window.SetKeyCallback(c.onKey)
	window.SetMouseButtonCallback(c.onMouseButton)
	window.SetCursorPosCallback(c.onCursorPos)
	window.SetFocusCallback(c.onFocus)
	return c
}

// Captured reports whether the pointer is locked to the window.
func (c *Controls) Captured() bool { return c.captured }

func (c *Controls) capture() {
	if c.captured {
		return
	}
	c.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		c.window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	c.captured = true
	c.haveLast = false
	c.log.Debug("pointer captured")
}

// release frees the pointer and drops everything held, so no key stays
// stuck after alt-tab or Escape.
func (c *Controls) release() {
	if !c.captured {
		return
	}
	c.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	c.captured = false
	c.world.Input().Clear()
	c.world.SetAiming(false)
	c.log.Debug("pointer released")
}

func (c *Controls) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	if key == glfw.KeyEscape && action == glfw.Press {
		if c.captured {
			c.release()
		} else {
			w.SetShouldClose(true)
		}
		return
	}
	if !c.captured {
		return
	}
	if key == glfw.KeyR && action == glfw.Press {
		c.world.Reload()
		return
	}
	k, ok := keyMap[key]
	if !ok {
		return
	}
	if action == glfw.Press {
		c.world.Input().Press(k)
	} else {
		c.world.Input().Release(k)
	}
}

func (c *Controls) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	switch button {
	case glfw.MouseButtonLeft:
		if action != glfw.Press {
			return
		}
		// The capturing click does not shoot.
		if !c.captured {
			c.capture()
			return
		}
		c.world.Fire()
	case glfw.MouseButtonRight:
		if !c.captured {
			return
		}
		c.world.SetAiming(action == glfw.Press)
	}
}

func (c *Controls) onCursorPos(_ *glfw.Window, x, y float64) {
	if !c.captured {
		return
	}
	if c.haveLast {
		c.world.Input().AddLook(x-c.lastX, y-c.lastY)
	}
	c.lastX, c.lastY = x, y
	c.haveLast = true
}

func (c *Controls) onFocus(_ *glfw.Window, focused bool) {
	if !focused {
		c.release()
	}
}
