// Package mesh builds the procedural geometry drawn by the renderer. Every
// mesh is a flat triangle list with interleaved position and normal.
package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Stride is the number of float32s per vertex: position then normal.
const Stride = 6

type Mesh struct {
	Vertices []float32
}

func (m *Mesh) VertexCount() int32 { return int32(len(m.Vertices) / Stride) }

// Vertex returns the position and normal of vertex i.
func (m *Mesh) Vertex(i int) (pos, normal mgl32.Vec3) {
	v := m.Vertices[i*Stride : i*Stride+Stride]
	return mgl32.Vec3{v[0], v[1], v[2]}, mgl32.Vec3{v[3], v[4], v[5]}
}

func (m *Mesh) push(p, n mgl32.Vec3) {
	m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2])
}

// tri appends a flat shaded triangle, wound counter-clockwise seen from
// the side the normal points to.
func (m *Mesh) tri(a, b, c mgl32.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() > 0 {
		n = n.Normalize()
	}
	m.push(a, n)
	m.push(b, n)
	m.push(c, n)
}

func (m *Mesh) quad(a, b, c, d mgl32.Vec3) {
	m.tri(a, b, c)
	m.tri(a, c, d)
}

// Box is centred on the origin.
func Box(w, h, d float32) *Mesh {
	x, y, z := w/2, h/2, d/2
	c := [8]mgl32.Vec3{
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
	}
	m := &Mesh{Vertices: make([]float32, 0, 36*Stride)}
	m.quad(c[0], c[1], c[2], c[3]) // +z
	m.quad(c[5], c[4], c[7], c[6]) // -z
	m.quad(c[1], c[5], c[6], c[2]) // +x
	m.quad(c[4], c[0], c[3], c[7]) // -x
	m.quad(c[3], c[2], c[6], c[7]) // +y
	m.quad(c[4], c[5], c[1], c[0]) // -y
	return m
}

// Plane lies in XZ at y=0 facing +Y.
func Plane(w, d float32) *Mesh {
	x, z := w/2, d/2
	m := &Mesh{}
	m.quad(
		mgl32.Vec3{-x, 0, z},
		mgl32.Vec3{x, 0, z},
		mgl32.Vec3{x, 0, -z},
		mgl32.Vec3{-x, 0, -z},
	)
	return m
}

// Sphere is a UV sphere with smooth normals.
func Sphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}
	at := func(seg, ring int) mgl32.Vec3 {
		theta := float64(ring) / float64(rings) * math.Pi
		phi := float64(seg) / float64(segments) * 2 * math.Pi
		return mgl32.Vec3{
			float32(math.Sin(theta) * math.Cos(phi)),
			float32(math.Cos(theta)),
			float32(-math.Sin(theta) * math.Sin(phi)),
		}
	}
	m := &Mesh{}
	smooth := func(a, b, c mgl32.Vec3) {
		m.push(a.Mul(radius), a)
		m.push(b.Mul(radius), b)
		m.push(c.Mul(radius), c)
	}
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a, b := at(s, r), at(s, r+1)
			c, d := at(s+1, r+1), at(s+1, r)
			if r != 0 {
				smooth(a, b, d)
			}
			if r != rings-1 {
				smooth(b, c, d)
			}
		}
	}
	return m
}

// Cone has its base at y=0 and its apex at y=height.
func Cone(radius, height float32, segments int) *Mesh {
	return frustum(radius, 0, height, segments)
}

// Cylinder spans y=0 to y=height.
func Cylinder(radius, height float32, segments int) *Mesh {
	return frustum(radius, radius, height, segments)
}

func frustum(bottom, top, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	ring := func(i int, r, y float32) mgl32.Vec3 {
		a := float64(i) / float64(segments) * 2 * math.Pi
		return mgl32.Vec3{r * float32(math.Cos(a)), y, -r * float32(math.Sin(a))}
	}
	m := &Mesh{}
	base := mgl32.Vec3{0, 0, 0}
	apex := mgl32.Vec3{0, height, 0}
	for i := 0; i < segments; i++ {
		b0, b1 := ring(i, bottom, 0), ring(i+1, bottom, 0)
		t0, t1 := ring(i, top, height), ring(i+1, top, height)
		if top == 0 {
			m.tri(b0, b1, apex)
		} else {
			m.quad(b0, b1, t1, t0)
			m.tri(apex, t0, t1)
		}
		m.tri(base, b1, b0)
	}
	return m
}

// Translate shifts every vertex by d and returns m.
func (m *Mesh) Translate(d mgl32.Vec3) *Mesh {
	for i := 0; i < len(m.Vertices); i += Stride {
		m.Vertices[i] += d[0]
		m.Vertices[i+1] += d[1]
		m.Vertices[i+2] += d[2]
	}
	return m
}

// Rotate turns positions and normals by q about the origin and returns m.
func (m *Mesh) Rotate(q mgl32.Quat) *Mesh {
	for i := 0; i < len(m.Vertices); i += Stride {
		p := q.Rotate(mgl32.Vec3{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]})
		n := q.Rotate(mgl32.Vec3{m.Vertices[i+3], m.Vertices[i+4], m.Vertices[i+5]})
		copy(m.Vertices[i:i+Stride], []float32{p[0], p[1], p[2], n[0], n[1], n[2]})
	}
	return m
}

// Merge concatenates meshes into one buffer.
func Merge(parts ...*Mesh) *Mesh {
	n := 0
	for _, p := range parts {
		n += len(p.Vertices)
	}
	m := &Mesh{Vertices: make([]float32, 0, n)}
	for _, p := range parts {
		m.Vertices = append(m.Vertices, p.Vertices...)
	}
	return m
}
