package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func white(float64) mgl32.Vec3 { return mgl32.Vec3{1, 1, 1} }

func TestParticleSystem_AddOverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(3, 1)
	for i := 0; i < 5; i++ {
		ps.Add(Particle{Size: float32(i), MaxLife: 1})
	}
	if len(ps.P) != 3 {
		t.Fatalf("len = %d, want 3", len(ps.P))
	}
	want := []float32{3, 4, 2}
	for i, p := range ps.P {
		if p.Size != want[i] {
			t.Errorf("P[%d].Size = %v, want %v", i, p.Size, want[i])
		}
	}
}

func TestParticleSystem_Burst(t *testing.T) {
	ps := NewParticleSystem(0, 7)
	if ps.Max != defaultMaxParticles {
		t.Fatalf("Max = %d, want %d", ps.Max, defaultMaxParticles)
	}
	at := mgl32.Vec3{1, 2, 3}
	ps.Burst(at, 24)
	if len(ps.P) != 24 {
		t.Fatalf("len = %d, want 24", len(ps.P))
	}
	for _, p := range ps.P {
		if p.Pos != at {
			t.Errorf("spark starts at %v, want %v", p.Pos, at)
		}
		if p.MaxLife <= 0 || p.MaxLife > SparkLife {
			t.Errorf("MaxLife = %v, want (0, %v]", p.MaxLife, SparkLife)
		}
		if s := p.Vel.Len(); s > SparkSpeed+1e-4 {
			t.Errorf("speed = %v, want <= %v", s, SparkSpeed)
		}
	}
}

func TestParticleSystem_UpdateExpiresAndFalls(t *testing.T) {
	ps := NewParticleSystem(4, 1)
	ps.Add(Particle{MaxLife: 0.05})
	ps.Add(Particle{Pos: mgl32.Vec3{0, 5, 0}, MaxLife: 1})

	ps.Update(0.1)
	if len(ps.P) != 1 {
		t.Fatalf("len = %d, want 1", len(ps.P))
	}
	p := ps.P[0]
	if p.Vel.Y() >= 0 || p.Pos.Y() >= 5 {
		t.Errorf("spark did not fall: pos %v vel %v", p.Pos, p.Vel)
	}
}

func TestParticleSystem_RenderDataFades(t *testing.T) {
	ps := NewParticleSystem(4, 1)
	ps.Add(Particle{Pos: mgl32.Vec3{1, 2, 3}, Size: 5, MaxLife: 1})
	ps.Add(Particle{Life: 0.5, MaxLife: 1})

	buf := ps.RenderData(nil, white)
	if len(buf) != 16 {
		t.Fatalf("len = %d, want 16", len(buf))
	}
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 || buf[3] != 5 || buf[7] != 1 {
		t.Errorf("fresh spark = %v", buf[:8])
	}
	if buf[15] != 0.5 || buf[12] != 0.5 {
		t.Errorf("half-life spark alpha/red = %v/%v, want 0.5/0.5", buf[15], buf[12])
	}

	ps.Clear()
	if got := ps.RenderData(buf, white); len(got) != 0 {
		t.Errorf("len after Clear = %d, want 0", len(got))
	}
}
