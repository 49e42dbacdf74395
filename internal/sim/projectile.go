package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projectile is a round in flight. Dir is unit length.
type Projectile struct {
	Origin   mgl64.Vec3
	Pos      mgl64.Vec3
	Dir      mgl64.Vec3
	Speed    float64
	Traveled float64
}

// sweepSphere reports where the segment start + dir*[0, length] first
// touches a sphere, as a distance along dir. A segment starting inside the
// sphere hits at 0.
func sweepSphere(start, dir mgl64.Vec3, length float64, center mgl64.Vec3, radius float64) (float64, bool) {
	m := start.Sub(center)
	b := m.Dot(dir)
	c := m.Dot(m) - radius*radius
	if c > 0 && b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	if t > length {
		return 0, false
	}
	return t, true
}

// stepProjectiles advances every round, retires the ones past MaxRange and
// credits at most one target per round. Only the segment flown this tick is
// tested, so a round scores once it reaches a sphere, never ahead of it.
func (w *World) stepProjectiles(dt float64) {
	for id, p := range w.projectiles.All() {
		step := p.Speed * dt
		prev := p.Pos
		p.Pos = p.Pos.Add(p.Dir.Mul(step))
		p.Traveled += step

		if p.Traveled > w.cfg.MaxRange {
			end := p.Pos
			w.removeProjectile(id)
			w.events.Emit(Event{Type: EventProjectileExpired, Pos: end})
			continue
		}

		tid, dist, ok := w.targets.Nearest(prev, p.Dir, step)
		if !ok {
			continue
		}
		hitPos := prev.Add(p.Dir.Mul(dist))
		w.removeProjectile(id)
		w.hitTarget(tid, hitPos)
	}
}

func (w *World) removeProjectile(id ID) {
	if _, ok := w.projectiles.Remove(id); ok {
		w.scene.RemoveProjectile(id)
	}
}
