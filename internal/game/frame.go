package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"shootingrange/internal/sim"
	"shootingrange/internal/view"
)

// Frame draws the world at the end of each tick. It implements
// sim.FrameRenderer.
type Frame struct {
	window    *glfw.Window
	rend      *Renderer
	env       *Environment
	scene     *view.Scene
	hud       *view.HUD
	particles *view.ParticleSystem
	controls  *Controls

	sparkBuf []float32
}

func (f *Frame) RenderFrame(w *sim.World) {
	fbW, fbH := f.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return
	}
	f.scene.SetClock(w.Clock())
	f.particles.Update(w.Delta())

	cam := CameraFor(w.Player(), w.FOV(), fbW, fbH)
	f.rend.BeginFrame(cam, fbW, fbH)
	f.env.DrawArena(f.rend)

	radius := w.Config().TargetRadius
	for id, t := range w.Targets().All() {
		f.env.DrawTarget(f.rend, t, radius, f.scene.TargetScale(id))
	}
	for id, p := range w.Projectiles() {
		f.env.DrawRound(f.rend, p, f.scene.ProjectileScale(id))
	}
	f.sparkBuf = f.particles.RenderData(f.sparkBuf, sparkColour)
	f.rend.DrawSparks(f.sparkBuf)

	f.rend.BeginViewmodel()
	f.env.DrawGun(f.rend, cam, w.Viewmodel())

	RenderHUD(f.rend, f.hud, f.controls != nil && f.controls.Captured(), fbW, fbH)
}
