package game

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"shootingrange/internal/sim"
	"shootingrange/internal/view"
)

// RunDesktop opens the window and runs the range until it is closed. Any
// error is an initialization failure; nothing fails once play starts.
func RunDesktop(log *slog.Logger, cfg sim.Config, seed uint64) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Debug("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	audio, err := InitAudio()
	if err != nil {
		log.Warn("audio init failed, continuing without sound", "err", err)
	}

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	scene := view.NewScene(PopInTime)
	hud := &view.HUD{MaxAmmo: cfg.MaxAmmo}
	particles := view.NewParticleSystem(MaxParticles, seed^0xBEAD)
	frame := &Frame{
		window:    window,
		rend:      rend,
		env:       NewEnvironment(rend, seed),
		scene:     scene,
		hud:       hud,
		particles: particles,
	}

	world := sim.NewWorld(cfg,
		sim.WithScene(scene),
		sim.WithHUD(hud),
		sim.WithRenderer(frame),
		sim.WithLogger(log),
		sim.WithSeed(seed),
	)
	defer world.Close()
	frame.controls = NewControls(window, world, log)

	bus := world.Events()
	bus.Subscribe(sim.EventFired, func(sim.Event) { audio.Play(SoundGunshot, 1) })
	bus.Subscribe(sim.EventDryFire, func(sim.Event) { audio.Play(SoundDryFire, 0.8) })
	bus.Subscribe(sim.EventReloaded, func(sim.Event) { audio.Play(SoundReload, 0.9) })
	bus.Subscribe(sim.EventTargetHit, func(e sim.Event) {
		particles.Burst(vec32(e.Pos), SparksPerHit)
		audio.Play(SoundHit, 0.8)
	})
	bus.Subscribe(sim.EventTargetRespawned, func(sim.Event) { audio.Play(SoundRespawn, 0.3) })

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		log.Debug("framebuffer resized", "width", w, "height", h)
	})

	log.Info("range ready", "targets", world.Targets().Len(), "seed", seed)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		now := glfw.GetTime()
		dt := now - last
		last = now

		world.Tick(dt)
		window.SwapBuffers()
	}

	log.Info("range closed", "score", world.Score(), "ammo", world.Ammo())
	return nil
}
