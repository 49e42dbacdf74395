package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSweepSphere(t *testing.T) {
	dir := mgl64.Vec3{0, 0, -1}
	center := mgl64.Vec3{0, 0, -10}
	tests := []struct {
		name   string
		start  mgl64.Vec3
		length float64
		hit    bool
		dist   float64
	}{
		{"reaches front face", mgl64.Vec3{}, 10, true, 9.5},
		{"stops short", mgl64.Vec3{}, 9.4, false, 0},
		{"starts inside", mgl64.Vec3{0, 0, -10.2}, 0.1, true, 0},
		{"already past", mgl64.Vec3{0, 0, -11}, 5, false, 0},
		{"passes beside", mgl64.Vec3{0.6, 0, 0}, 20, false, 0},
		{"grazes edge", mgl64.Vec3{0.49, 0, 0}, 20, true, 10 - math.Sqrt(0.25-0.49*0.49)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := sweepSphere(tt.start, dir, tt.length, center, 0.5)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if ok && math.Abs(d-tt.dist) > 1e-9 {
				t.Errorf("dist = %v, want %v", d, tt.dist)
			}
		})
	}
}

func TestTargetPool_NearestPicksClosest(t *testing.T) {
	cfg := DefaultConfig()
	tp := NewTargetPool(cfg, NewRand(7))
	far, _, _ := tp.SpawnAt(0, mgl64.Vec3{0, 0, -20})
	near, _, _ := tp.SpawnAt(1, mgl64.Vec3{0, 0, -8})
	tp.SpawnAt(2, mgl64.Vec3{5, 0, -4})

	id, d, ok := tp.Nearest(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 50)
	if !ok {
		t.Fatal("no hit")
	}
	if id != near {
		t.Errorf("hit %v, want nearer %v (far %v)", id, near, far)
	}
	if math.Abs(d-7.5) > 1e-9 {
		t.Errorf("dist = %v, want 7.5", d)
	}
}

func TestTargetPool_FillStaysInArena(t *testing.T) {
	cfg := DefaultConfig()
	tp := NewTargetPool(cfg, NewRand(42))
	ids := tp.Fill()
	if len(ids) != cfg.TargetCount || tp.Len() != cfg.TargetCount {
		t.Fatalf("filled %d (Len %d), want %d", len(ids), tp.Len(), cfg.TargetCount)
	}
	for id, tgt := range tp.All() {
		if math.Abs(tgt.Pos.X()) > cfg.TargetSpread || math.Abs(tgt.Pos.Z()) > cfg.TargetSpread {
			t.Errorf("target %v outside arena: %v", id, tgt.Pos)
		}
		if tgt.BaseY < cfg.TargetMinY || tgt.BaseY >= cfg.TargetMaxY {
			t.Errorf("target %v base height %v outside band", id, tgt.BaseY)
		}
	}
	if again := tp.Fill(); len(again) != 0 {
		t.Errorf("second Fill spawned %d targets into a full pool", len(again))
	}
}

func TestTargetPool_Animate(t *testing.T) {
	cfg := DefaultConfig()
	tp := NewTargetPool(cfg, NewRand(1))
	id, _, _ := tp.SpawnAt(3, mgl64.Vec3{1, 2, 3})

	tp.Animate(0.7, 0.25)

	tgt, ok := tp.Get(id)
	if !ok {
		t.Fatal("target vanished")
	}
	wantY := 2 + math.Sin(0.7*cfg.BobRate+3)*cfg.BobAmplitude
	if math.Abs(tgt.Pos.Y()-wantY) > 1e-12 {
		t.Errorf("y = %v, want %v", tgt.Pos.Y(), wantY)
	}
	if math.Abs(tgt.Spin-cfg.SpinRate*0.25) > 1e-12 {
		t.Errorf("spin = %v, want %v", tgt.Spin, cfg.SpinRate*0.25)
	}
	if tgt.Pos.X() != 1 || tgt.Pos.Z() != 3 {
		t.Errorf("animation moved target horizontally: %v", tgt.Pos)
	}
}
