package sim

import (
	"iter"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . HUD,Scene

// Scene is told when visual entities come and go.
type Scene interface {
	AddTarget(id ID, t Target)
	RemoveTarget(id ID)
	AddProjectile(id ID, p Projectile)
	RemoveProjectile(id ID)
}

// HUD receives score and ammo whenever either changes.
type HUD interface {
	SetScore(score int)
	SetAmmo(ammo int)
}

// FrameRenderer draws the world once at the end of every tick.
type FrameRenderer interface {
	RenderFrame(w *World)
}

type nopScene struct{}

func (nopScene) AddTarget(ID, Target)         {}
func (nopScene) RemoveTarget(ID)              {}
func (nopScene) AddProjectile(ID, Projectile) {}
func (nopScene) RemoveProjectile(ID)          {}

type nopHUD struct{}

func (nopHUD) SetScore(int) {}
func (nopHUD) SetAmmo(int)  {}

type nopRenderer struct{}

func (nopRenderer) RenderFrame(*World) {}

type Option func(*World)

func WithScene(s Scene) Option { return func(w *World) { w.scene = s } }

func WithHUD(h HUD) Option { return func(w *World) { w.hud = h } }

func WithRenderer(r FrameRenderer) Option { return func(w *World) { w.renderer = r } }

func WithLogger(l *slog.Logger) Option { return func(w *World) { w.log = l } }

// WithSeed makes target placement reproducible.
func WithSeed(seed uint64) Option { return func(w *World) { w.seed = seed } }

// World owns every piece of simulation state. It is not safe for concurrent
// use; the frame loop is its only caller.
type World struct {
	cfg  Config
	seed uint64
	log  *slog.Logger

	clock float64
	delta float64

	input     *Input
	player    Player
	view      Viewmodel
	fireReady bool
	score     int

	projectiles Slots[Projectile]
	targets     *TargetPool
	timers      Scheduler
	events      *EventBus

	scene    Scene
	hud      HUD
	renderer FrameRenderer
}

func NewWorld(cfg Config, opts ...Option) *World {
	w := &World{
		cfg:       cfg,
		seed:      1,
		log:       slog.Default(),
		input:     NewInput(),
		fireReady: true,
		events:    NewEventBus(),
		scene:     nopScene{},
		hud:       nopHUD{},
		renderer:  nopRenderer{},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.player = Player{Position: cfg.StartPosition, Ammo: cfg.MaxAmmo}
	w.player.Position[1] = cfg.EyeHeight
	w.targets = NewTargetPool(cfg, NewRand(w.seed))
	for _, id := range w.targets.Fill() {
		t, _ := w.targets.Get(id)
		w.scene.AddTarget(id, t)
	}
	w.hud.SetScore(w.score)
	w.hud.SetAmmo(w.player.Ammo)
	return w
}

func (w *World) Config() Config       { return w.cfg }
func (w *World) Input() *Input        { return w.input }
func (w *World) Events() *EventBus    { return w.events }
func (w *World) Player() Player       { return w.player }
func (w *World) Viewmodel() Viewmodel { return w.view }
func (w *World) Score() int           { return w.score }
func (w *World) Ammo() int            { return w.player.Ammo }
func (w *World) FireReady() bool      { return w.fireReady }
func (w *World) Targets() *TargetPool { return w.targets }
func (w *World) PendingTimers() int   { return w.timers.Len() }

// Clock is the simulation time in seconds.
func (w *World) Clock() float64 { return w.clock }

// Delta is the clamped step used by the last tick.
func (w *World) Delta() float64 { return w.delta }

func (w *World) ProjectileCount() int { return w.projectiles.Len() }

// Projectiles yields live rounds by value.
func (w *World) Projectiles() iter.Seq2[ID, Projectile] {
	return func(yield func(ID, Projectile) bool) {
		for id, p := range w.projectiles.All() {
			if !yield(id, *p) {
				return
			}
		}
	}
}

// FOV is the vertical field of view in degrees.
func (w *World) FOV() float64 {
	if w.player.Aiming {
		return w.cfg.AimFOV
	}
	return w.cfg.HipFOV
}

// Tick runs one frame: due timers, look, movement, projectiles, target
// animation, then the renderer. dt is wall time since the previous tick;
// the clock advances by the full dt while motion uses dt clamped to MaxDelta.
// A non-finite or negative dt counts as 0.
func (w *World) Tick(dt float64) {
	dt = frameDelta(dt)
	w.clock += dt
	w.timers.RunDue(w.clock, w.runTimer)

	step := clampF(dt, 0, w.cfg.MaxDelta)
	w.delta = step

	dx, dy := w.input.ConsumeLook()
	w.player.Look(dx, dy, w.cfg.MouseSensitivity)
	w.player = Integrate(w.player, w.input, step, w.cfg)

	w.stepProjectiles(step)
	w.targets.Animate(w.clock, step)

	w.renderer.RenderFrame(w)
}

// Fire shoots one round from the muzzle along the view direction. It
// returns false while the cooldown is engaged or the magazine is empty.
func (w *World) Fire() bool {
	if !w.fireReady {
		return false
	}
	if w.player.Ammo <= 0 {
		w.events.Emit(Event{Type: EventDryFire})
		return false
	}

	w.player.Ammo--
	w.hud.SetAmmo(w.player.Ammo)

	origin := w.player.ToWorld(w.view.Muzzle())
	p := Projectile{
		Origin: origin,
		Pos:    origin,
		Dir:    w.player.LookDir(),
		Speed:  w.cfg.ProjectileSpeed,
	}
	id := w.projectiles.Insert(p)
	w.scene.AddProjectile(id, p)

	w.view.Flash = w.cfg.MuzzleFlash
	w.timers.Schedule(w.clock+w.cfg.MuzzleFlashTime, TimerFlashFade, 0)
	w.view.Recoil = true
	w.timers.Schedule(w.clock+w.cfg.RecoilTime, TimerRecoilRecover, 0)
	w.fireReady = false
	w.timers.Schedule(w.clock+w.cfg.FireCooldown, TimerFireReady, 0)

	w.events.Emit(Event{Type: EventFired, Pos: origin, Data: w.player.Ammo})
	return true
}

// Reload refills the magazine instantly. It is a no-op when already full.
func (w *World) Reload() bool {
	if w.player.Ammo >= w.cfg.MaxAmmo {
		return false
	}
	w.player.Ammo = w.cfg.MaxAmmo
	w.hud.SetAmmo(w.player.Ammo)
	w.log.Debug("reloaded", "ammo", w.player.Ammo)
	w.events.Emit(Event{Type: EventReloaded, Pos: w.player.Position, Data: w.player.Ammo})
	return true
}

// SetAiming narrows the field of view and centres the gun. It does not
// change where rounds go.
func (w *World) SetAiming(on bool) {
	w.player.Aiming = on
	w.view.Aiming = on
}

func (w *World) hitTarget(id ID, at mgl64.Vec3) {
	if _, ok := w.targets.Remove(id); !ok {
		return
	}
	w.scene.RemoveTarget(id)
	w.score += w.cfg.HitReward
	w.hud.SetScore(w.score)
	w.timers.Schedule(w.clock+w.cfg.RespawnDelay, TimerRespawn, int(id.Index))
	w.log.Debug("target hit", "target", id.String(), "score", w.score)
	w.events.Emit(Event{Type: EventTargetHit, Pos: at, Data: w.score})
}

func (w *World) runTimer(t Timer) {
	switch t.Kind {
	case TimerFlashFade:
		w.view.Flash = 0
	case TimerRecoilRecover:
		w.view.Recoil = false
	case TimerFireReady:
		w.fireReady = true
	case TimerRespawn:
		id, tgt, ok := w.targets.Spawn(t.Slot)
		if !ok {
			return
		}
		w.scene.AddTarget(id, tgt)
		w.log.Debug("target respawned", "target", id.String())
		w.events.Emit(Event{Type: EventTargetRespawned, Pos: tgt.Pos})
	}
}

// Close drops pending timers so nothing fires after teardown.
func (w *World) Close() {
	w.timers.Reset()
}
