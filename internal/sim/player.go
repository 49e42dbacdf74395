package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
)

// Player is the first-person camera body. Velocity is world space; its Y
// component is always zero.
type Player struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Yaw      float64 // radians about +Y, 0 looks down -Z
	Pitch    float64 // radians about +X, clamped to [-pi/2, pi/2]
	Ammo     int
	Aiming   bool
}

// Look applies a pointer delta. Roll stays locked.
func (p *Player) Look(dx, dy, sensitivity float64) {
	p.Yaw -= dx * sensitivity
	p.Pitch -= dy * sensitivity
	p.Pitch = clampF(p.Pitch, -math.Pi/2, math.Pi/2)
}

// Orientation is yaw about +Y followed by pitch about +X.
func (p Player) Orientation() mgl64.Quat {
	return mgl64.QuatRotate(p.Yaw, axisY).Mul(mgl64.QuatRotate(p.Pitch, axisX))
}

// LookDir is the unit view direction.
func (p Player) LookDir() mgl64.Vec3 {
	return p.Orientation().Rotate(mgl64.Vec3{0, 0, -1}).Normalize()
}

// Forward is the horizontal unit vector the player faces.
func (p Player) Forward() mgl64.Vec3 {
	return mgl64.Vec3{-math.Sin(p.Yaw), 0, -math.Cos(p.Yaw)}
}

// Right is the horizontal unit vector to the player's right.
func (p Player) Right() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(p.Yaw), 0, -math.Sin(p.Yaw)}
}

// ToWorld maps a camera-space point into the world.
func (p Player) ToWorld(local mgl64.Vec3) mgl64.Vec3 {
	return p.Position.Add(p.Orientation().Rotate(local))
}

// Gun poses in camera space.
var (
	hipOffset   = mgl64.Vec3{0.3, -0.3, -0.5}
	aimOffset   = mgl64.Vec3{0, -0.15, -0.3}
	barrelTip   = mgl64.Vec3{0, 0.05, -0.65}
	recoilShift = mgl64.Vec3{0, 0, 0.05}
)

const (
	hipYaw      = -0.1
	recoilPitch = -0.05
)

// Viewmodel is the held gun. It is purely visual apart from locating the muzzle.
type Viewmodel struct {
	Aiming bool
	Recoil bool
	Flash  float64 // muzzle flash opacity
}

// Offset is the gun origin in camera space.
func (v Viewmodel) Offset() mgl64.Vec3 {
	off := hipOffset
	if v.Aiming {
		off = aimOffset
	}
	if v.Recoil {
		off = off.Add(recoilShift)
	}
	return off
}

// Angles returns the gun's local yaw and pitch.
func (v Viewmodel) Angles() (yaw, pitch float64) {
	if !v.Aiming {
		yaw = hipYaw
	}
	if v.Recoil {
		pitch = recoilPitch
	}
	return yaw, pitch
}

func (v Viewmodel) Rotation() mgl64.Quat {
	yaw, pitch := v.Angles()
	return mgl64.QuatRotate(yaw, axisY).Mul(mgl64.QuatRotate(pitch, axisX))
}

// Muzzle is the barrel tip in camera space.
func (v Viewmodel) Muzzle() mgl64.Vec3 {
	return v.Offset().Add(v.Rotation().Rotate(barrelTip))
}
