package mesh

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// outward checks that every triangle's normal points away from the
// centroid of the whole mesh, which holds for convex shapes.
func outward(t *testing.T, m *Mesh) {
	t.Helper()
	var centre mgl32.Vec3
	n := int(m.VertexCount())
	for i := 0; i < n; i++ {
		p, _ := m.Vertex(i)
		centre = centre.Add(p)
	}
	centre = centre.Mul(1 / float32(n))
	for i := 0; i < n; i += 3 {
		a, na := m.Vertex(i)
		b, _ := m.Vertex(i + 1)
		c, _ := m.Vertex(i + 2)
		mid := a.Add(b).Add(c).Mul(1.0 / 3)
		if na.Dot(mid.Sub(centre)) <= 0 {
			t.Fatalf("triangle %d faces inward: normal %v at %v", i/3, na, mid)
		}
	}
}

func TestBox(t *testing.T) {
	m := Box(2, 4, 6)
	if m.VertexCount() != 36 {
		t.Fatalf("VertexCount = %d, want 36", m.VertexCount())
	}
	for i := 0; i < int(m.VertexCount()); i++ {
		p, _ := m.Vertex(i)
		if math.Abs(float64(p[0])) != 1 || math.Abs(float64(p[1])) != 2 || math.Abs(float64(p[2])) != 3 {
			t.Fatalf("vertex %d = %v, not a corner", i, p)
		}
	}
	outward(t, m)
}

func TestPlaneFacesUp(t *testing.T) {
	m := Plane(300, 300)
	if m.VertexCount() != 6 {
		t.Fatalf("VertexCount = %d, want 6", m.VertexCount())
	}
	for i := 0; i < 6; i++ {
		p, n := m.Vertex(i)
		if p[1] != 0 || n != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("vertex %d = %v normal %v", i, p, n)
		}
	}
}

func TestSphere(t *testing.T) {
	const r = 0.5
	m := Sphere(r, 16, 12)
	if got, want := m.VertexCount(), int32(16*(2*12-2)*3); got != want {
		t.Fatalf("VertexCount = %d, want %d", got, want)
	}
	for i := 0; i < int(m.VertexCount()); i++ {
		p, n := m.Vertex(i)
		if !mgl32.FloatEqualThreshold(p.Len(), r, 1e-5) {
			t.Fatalf("vertex %d at radius %v", i, p.Len())
		}
		if !n.ApproxEqualThreshold(p.Mul(1/r), 1e-5) {
			t.Fatalf("vertex %d normal %v not radial", i, n)
		}
	}
	outward(t, m)
}

func TestConeAndCylinder(t *testing.T) {
	tests := []struct {
		name string
		m    *Mesh
		want int32
	}{
		{"cone", Cone(0.05, 0.2, 8), 8 * 2 * 3},
		{"cylinder", Cylinder(0.03, 0.4, 8), 8 * 4 * 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.m.VertexCount() != tt.want {
				t.Fatalf("VertexCount = %d, want %d", tt.m.VertexCount(), tt.want)
			}
			for i := 0; i < int(tt.m.VertexCount()); i++ {
				_, n := tt.m.Vertex(i)
				if !mgl32.FloatEqualThreshold(n.Len(), 1, 1e-5) {
					t.Fatalf("vertex %d normal length %v", i, n.Len())
				}
			}
			outward(t, tt.m)
		})
	}
}

func TestTransforms(t *testing.T) {
	m := Box(1, 1, 1).Translate(mgl32.Vec3{0, 0, -2})
	p, _ := m.Vertex(0)
	if p[2] != -1.5 {
		t.Errorf("translated z = %v, want -1.5", p[2])
	}

	r := Plane(2, 2).Rotate(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0}))
	_, n := r.Vertex(0)
	want := mgl32.Vec3{0, 0, 1}
	for i := range n {
		if math.Abs(float64(n[i]-want[i])) > 1e-6 {
			t.Errorf("rotated normal = %v, want +Z", n)
			break
		}
	}

	all := Merge(Box(1, 1, 1), Plane(1, 1))
	if all.VertexCount() != 42 {
		t.Errorf("merged VertexCount = %d, want 42", all.VertexCount())
	}
}
