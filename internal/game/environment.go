package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"shootingrange/internal/mesh"
	"shootingrange/internal/sim"
)

type prop struct {
	model mgl32.Mat4
	mat   Material
}

// Environment is the static arena plus the shared meshes for targets,
// rounds and the gun.
type Environment struct {
	ground, box, target, round gpuMesh
	props                      []prop

	gunBody, gunBarrel, gunHandle, gunSight, flash gpuMesh
}

func NewEnvironment(r *Renderer, seed uint64) *Environment {
	e := &Environment{
		ground: r.Upload(mesh.Plane(GroundSize, GroundSize)),
		box:    r.Upload(mesh.Box(1, 1, 1)),
		target: r.Upload(mesh.Sphere(1, TargetSegments, TargetRings)),
		round:  r.Upload(mesh.Sphere(ProjectileRadius, ProjectileSegments, ProjectileRings)),

		gunBody:   r.Upload(mesh.Box(0.1, 0.15, 0.8)),
		gunBarrel: r.Upload(alongMinusZ(mesh.Cylinder(0.025, 0.3, 8), 0.3).Translate(mgl32.Vec3{0, 0.05, -0.5})),
		gunHandle: r.Upload(mesh.Box(0.08, 0.25, 0.15).Translate(mgl32.Vec3{0, -0.15, 0.1})),
		gunSight:  r.Upload(mesh.Box(0.03, 0.03, 0.1).Translate(mgl32.Vec3{0, 0.1, -0.2})),
		flash:     r.Upload(alongMinusZ(mesh.Cone(0.05, 0.15, 8), 0.15).Translate(mgl32.Vec3{0, 0.05, -0.65})),
	}

	h := float32(WallHeight)
	half := float32(ArenaSize / 2)
	wall := Solid(Palette.Wall)
	for _, w := range []struct{ pos, size mgl32.Vec3 }{
		{mgl32.Vec3{0, h / 2, -half}, mgl32.Vec3{ArenaSize, h, WallThickness}},
		{mgl32.Vec3{0, h / 2, half}, mgl32.Vec3{ArenaSize, h, WallThickness}},
		{mgl32.Vec3{-half, h / 2, 0}, mgl32.Vec3{WallThickness, h, ArenaSize}},
		{mgl32.Vec3{half, h / 2, 0}, mgl32.Vec3{WallThickness, h, ArenaSize}},
	} {
		e.props = append(e.props, prop{model: boxModel(w.pos, w.size), mat: wall})
	}

	rng := sim.NewRand(seed ^ 0xC0FFEE)
	size := mgl32.Vec3{CrateSize, CrateSize, CrateSize}
	for i := 0; i < CrateCount; i++ {
		pos := mgl32.Vec3{
			float32(rng.RangeF(-CrateSpread, CrateSpread)),
			CrateSize / 2,
			float32(rng.RangeF(-CrateSpread, CrateSpread)),
		}
		col := Hex(uint32(rng.NextU64() & 0xFFFFFF))
		e.props = append(e.props, prop{model: boxModel(pos, size), mat: Solid(col)})
	}
	return e
}

// alongMinusZ centres an upright mesh of the given height on the origin and
// turns it so +Y points down -Z.
func alongMinusZ(m *mesh.Mesh, height float32) *mesh.Mesh {
	return m.Translate(mgl32.Vec3{0, -height / 2, 0}).Rotate(mgl32.QuatRotate(-math.Pi/2, mgl32.Vec3{1, 0, 0}))
}

func boxModel(pos, size mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(mgl32.Scale3D(size[0], size[1], size[2]))
}

// DrawArena draws ground, walls and crates.
func (e *Environment) DrawArena(r *Renderer) {
	r.DrawMesh(e.ground, mgl32.Ident4(), Solid(Palette.Ground))
	for _, p := range e.props {
		r.DrawMesh(e.box, p.model, p.mat)
	}
}

// DrawTarget draws a target sphere of the given radius and pop-in scale.
func (e *Environment) DrawTarget(r *Renderer, t sim.Target, radius float64, scale float32) {
	s := float32(radius) * scale
	pos := vec32(t.Pos)
	model := mgl32.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(mgl32.HomogRotate3DY(float32(t.Spin))).
		Mul4(mgl32.Scale3D(s, s, s))
	r.DrawMesh(e.target, model, Solid(Palette.Target))
}

func (e *Environment) DrawRound(r *Renderer, p sim.Projectile, scale float32) {
	pos := vec32(p.Pos)
	model := mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(mgl32.Scale3D(scale, scale, scale))
	r.DrawMesh(e.round, model, Material{Color: Palette.Projectile, Alpha: 1, Unlit: true})
}

// DrawGun draws the viewmodel in camera space. Call after BeginViewmodel.
func (e *Environment) DrawGun(r *Renderer, cam Camera, v sim.Viewmodel) {
	off := vec32(v.Offset())
	local := mgl32.Translate3D(off[0], off[1], off[2]).Mul4(quat32(v.Rotation()).Mat4())
	model := cam.Attached(local)

	r.DrawMesh(e.gunBody, model, Solid(Palette.GunBody))
	r.DrawMesh(e.gunBarrel, model, Solid(Palette.GunBarrel))
	r.DrawMesh(e.gunHandle, model, Solid(Palette.GunHandle))
	r.DrawMesh(e.gunSight, model, Solid(Palette.GunSight))
	r.DrawMesh(e.flash, model, Material{Color: Palette.Flash, Alpha: float32(v.Flash), Unlit: true})
}
