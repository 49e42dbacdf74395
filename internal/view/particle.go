package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"shootingrange/internal/sim"
)

// Hit spark tuning.
const (
	SparkLife      = 0.35
	SparkSpeed     = 6.0
	SparkGravity   = 9.8
	SparkPointSize = 6.0
)

const defaultMaxParticles = 512

type Particle struct {
	Pos, Vel mgl32.Vec3
	Size     float32
	Life     float64
	MaxLife  float64
}

// ParticleSystem holds short-lived hit sparks.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *sim.Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = defaultMaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: sim.NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Burst throws n sparks from at in random directions, biased upward.
func (ps *ParticleSystem) Burst(at mgl32.Vec3, n int) {
	for i := 0; i < n; i++ {
		yaw := ps.rng.RangeF(0, 2*math.Pi)
		up := ps.rng.RangeF(-0.3, 1)
		flat := math.Sqrt(1 - up*up)
		speed := ps.rng.RangeF(0.4, 1) * SparkSpeed
		dir := mgl32.Vec3{
			float32(math.Cos(yaw) * flat),
			float32(up),
			float32(math.Sin(yaw) * flat),
		}
		ps.Add(Particle{
			Pos:     at,
			Vel:     dir.Mul(float32(speed)),
			Size:    float32(ps.rng.RangeF(0.6, 1.2)) * SparkPointSize,
			MaxLife: SparkLife * ps.rng.RangeF(0.6, 1),
		})
	}
}

// Update ages and moves sparks, dropping the expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	g := float32(SparkGravity * dt)
	fdt := float32(dt)
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			last := len(ps.P) - 1
			ps.P[i] = ps.P[last]
			ps.P = ps.P[:last]
			continue
		}
		p.Vel[1] -= g
		p.Pos = p.Pos.Add(p.Vel.Mul(fdt))
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// RenderData fills buf with [x, y, z, size, r, g, b, a] per spark. colour
// maps age in [0, 1] to RGB; RGB is pre-multiplied for additive blend.
func (ps *ParticleSystem) RenderData(buf []float32, colour func(t float64) mgl32.Vec3) []float32 {
	buf = buf[:0]
	for _, p := range ps.P {
		t := clampF(p.Life/p.MaxLife, 0, 1)
		c := colour(t)
		a := float32(1 - t)
		buf = append(buf, p.Pos[0], p.Pos[1], p.Pos[2], p.Size, c[0]*a, c[1]*a, c[2]*a, a)
	}
	return buf
}
