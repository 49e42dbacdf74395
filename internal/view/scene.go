// Package view holds the presentation state the renderer reads each frame:
// when entities appeared, the HUD values and the hit sparks. None of it
// feeds back into the simulation.
package view

import "shootingrange/internal/sim"

// Scene tracks when each visible entity appeared so the renderer can scale
// it in. It implements sim.Scene.
type Scene struct {
	popIn       float64
	clock       float64
	targets     map[sim.ID]float64
	projectiles map[sim.ID]float64
}

// NewScene returns a Scene whose entities grow to full size over popIn
// seconds.
func NewScene(popIn float64) *Scene {
	return &Scene{
		popIn:       popIn,
		targets:     make(map[sim.ID]float64),
		projectiles: make(map[sim.ID]float64),
	}
}

// SetClock is called once per frame with the simulation clock.
func (s *Scene) SetClock(t float64) { s.clock = t }

func (s *Scene) AddTarget(id sim.ID, _ sim.Target)         { s.targets[id] = s.clock }
func (s *Scene) RemoveTarget(id sim.ID)                    { delete(s.targets, id) }
func (s *Scene) AddProjectile(id sim.ID, _ sim.Projectile) { s.projectiles[id] = s.clock }
func (s *Scene) RemoveProjectile(id sim.ID)                { delete(s.projectiles, id) }

func (s *Scene) TargetScale(id sim.ID) float32     { return s.scale(s.targets, id) }
func (s *Scene) ProjectileScale(id sim.ID) float32 { return s.scale(s.projectiles, id) }

// Tracked is the number of live entities the scene knows about.
func (s *Scene) Tracked() int { return len(s.targets) + len(s.projectiles) }

func (s *Scene) scale(born map[sim.ID]float64, id sim.ID) float32 {
	t, ok := born[id]
	if !ok || s.popIn <= 0 {
		return 1
	}
	return float32(clampF((s.clock-t)/s.popIn, 0.05, 1))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
