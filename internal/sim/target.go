package sim

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Target is a floating sphere. Pos.Y is animated around BaseY.
type Target struct {
	Pos   mgl64.Vec3
	BaseY float64
	Phase float64
	Spin  float64 // radians about +Y, visual only
}

// TargetPool keeps a fixed number of target slots. A destroyed target frees
// its slot until a respawn fills the same slot again.
type TargetPool struct {
	cfg   Config
	rng   *Rand
	slots Slots[Target]
}

func NewTargetPool(cfg Config, rng *Rand) *TargetPool {
	if rng == nil {
		rng = NewRand(1)
	}
	return &TargetPool{cfg: cfg, rng: rng}
}

// Fill spawns a target into every empty slot up to TargetCount.
func (tp *TargetPool) Fill() []ID {
	ids := make([]ID, 0, tp.cfg.TargetCount)
	for i := 0; i < tp.cfg.TargetCount; i++ {
		if id, _, ok := tp.Spawn(i); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Spawn places a target at a random spot in the arena in the given slot.
func (tp *TargetPool) Spawn(slot int) (ID, Target, bool) {
	s := tp.cfg.TargetSpread
	pos := mgl64.Vec3{
		tp.rng.RangeF(-s, s),
		tp.rng.RangeF(tp.cfg.TargetMinY, tp.cfg.TargetMaxY),
		tp.rng.RangeF(-s, s),
	}
	return tp.SpawnAt(slot, pos)
}

// SpawnAt places a target with base position pos in the given slot.
func (tp *TargetPool) SpawnAt(slot int, pos mgl64.Vec3) (ID, Target, bool) {
	t := Target{Pos: pos, BaseY: pos[1], Phase: float64(slot)}
	id, ok := tp.slots.InsertAt(slot, t)
	return id, t, ok
}

func (tp *TargetPool) Remove(id ID) (Target, bool) {
	return tp.slots.Remove(id)
}

func (tp *TargetPool) Get(id ID) (Target, bool) {
	t, ok := tp.slots.Get(id)
	if !ok {
		return Target{}, false
	}
	return *t, true
}

func (tp *TargetPool) Len() int { return tp.slots.Len() }

// Clear removes every target without scheduling respawns.
func (tp *TargetPool) Clear() { tp.slots.Clear() }

// All yields live targets by value.
func (tp *TargetPool) All() iter.Seq2[ID, Target] {
	return func(yield func(ID, Target) bool) {
		for id, t := range tp.slots.All() {
			if !yield(id, *t) {
				return
			}
		}
	}
}

// Animate bobs and spins every target. now is the simulation clock.
func (tp *TargetPool) Animate(now, dt float64) {
	for _, t := range tp.slots.All() {
		t.Spin += tp.cfg.SpinRate * dt
		t.Pos[1] = t.BaseY + math.Sin(now*tp.cfg.BobRate+t.Phase)*tp.cfg.BobAmplitude
	}
}

// Nearest finds the closest target touched by the segment
// start + dir*[0, length].
func (tp *TargetPool) Nearest(start, dir mgl64.Vec3, length float64) (ID, float64, bool) {
	var (
		best    ID
		bestD   = math.Inf(1)
		hitSome bool
	)
	for id, t := range tp.slots.All() {
		d, ok := sweepSphere(start, dir, length, t.Pos, tp.cfg.TargetRadius)
		if ok && d < bestD {
			best, bestD, hitSome = id, d, true
		}
	}
	return best, bestD, hitSome
}
