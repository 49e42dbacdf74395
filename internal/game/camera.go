package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"shootingrange/internal/sim"
)

// Camera is the first-person view taken from the player each frame.
type Camera struct {
	Eye         mgl32.Vec3
	Orientation mgl32.Quat
	FOV         float32 // vertical, degrees
	Aspect      float32
}

func CameraFor(p sim.Player, fov float64, fbW, fbH int) Camera {
	aspect := float32(1)
	if fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	return Camera{
		Eye:         vec32(p.Position),
		Orientation: quat32(p.Orientation()),
		FOV:         float32(fov),
		Aspect:      aspect,
	}
}

// View is the inverse of the camera's world transform.
func (c Camera) View() mgl32.Mat4 {
	return c.Orientation.Conjugate().Mat4().Mul4(mgl32.Translate3D(-c.Eye[0], -c.Eye[1], -c.Eye[2]))
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, NearPlane, FarPlane)
}

// Attached maps a camera-space transform (the viewmodel) to world space.
func (c Camera) Attached(local mgl32.Mat4) mgl32.Mat4 {
	world := mgl32.Translate3D(c.Eye[0], c.Eye[1], c.Eye[2]).Mul4(c.Orientation.Mat4())
	return world.Mul4(local)
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func quat32(q mgl64.Quat) mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: vec32(q.V)}
}
