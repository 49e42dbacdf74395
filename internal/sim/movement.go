package sim

import "github.com/go-gl/mathgl/mgl64"

// InputAxis turns held keys into a local movement axis: X is strafe (right
// positive), Z is forward. Opposed keys cancel and the result never exceeds
// unit length.
func InputAxis(in *Input) mgl64.Vec3 {
	var axis mgl64.Vec3
	if in == nil {
		return axis
	}
	if in.Held(KeyForward) {
		axis[2]++
	}
	if in.Held(KeyBack) {
		axis[2]--
	}
	if in.Held(KeyRight) {
		axis[0]++
	}
	if in.Held(KeyLeft) {
		axis[0]--
	}
	if l := axis.Len(); l > 0 {
		axis = axis.Mul(1 / l)
	}
	return axis
}

// Integrate advances the player by dt seconds. Velocity decays by
// friction*dt each step and input accelerates it by MoveSpeed*Friction*dt,
// so held input converges on MoveSpeed without ever reaching it.
func Integrate(p Player, in *Input, dt float64, cfg Config) Player {
	dt = clampF(frameDelta(dt), 0, cfg.MaxDelta)

	damp := 1 - cfg.Friction*dt
	if damp < 0 {
		damp = 0
	}
	v := p.Velocity.Mul(damp)

	axis := InputAxis(in)
	if axis[0] != 0 || axis[2] != 0 {
		wish := p.Forward().Mul(axis[2]).Add(p.Right().Mul(axis[0]))
		v = v.Add(wish.Mul(cfg.MoveSpeed * cfg.Friction * dt))
	}
	v[1] = 0

	pos := p.Position.Add(v.Mul(dt))
	pos[1] = cfg.EyeHeight
	pos[0] = clampF(pos[0], -cfg.Boundary, cfg.Boundary)
	pos[2] = clampF(pos[2], -cfg.Boundary, cfg.Boundary)

	p.Position = pos
	p.Velocity = v
	return p
}
