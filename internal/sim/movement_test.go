package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rapid"
)

func heldInput(keys ...Key) *Input {
	in := NewInput()
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

func TestInputAxis_NeverFasterDiagonally(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := NewInput()
		for k := KeyForward; k < keyCount; k++ {
			if rapid.Bool().Draw(t, "held") {
				in.Press(k)
			}
		}
		if l := InputAxis(in).Len(); l > 1+1e-12 {
			t.Fatalf("axis length %v > 1", l)
		}
	})
}

func TestInputAxis(t *testing.T) {
	d := 1 / math.Sqrt2
	tests := []struct {
		name string
		keys []Key
		want mgl64.Vec3
	}{
		{"none", nil, mgl64.Vec3{}},
		{"forward", []Key{KeyForward}, mgl64.Vec3{0, 0, 1}},
		{"back", []Key{KeyBack}, mgl64.Vec3{0, 0, -1}},
		{"opposed cancel", []Key{KeyForward, KeyBack}, mgl64.Vec3{}},
		{"strafe left", []Key{KeyLeft}, mgl64.Vec3{-1, 0, 0}},
		{"diagonal", []Key{KeyForward, KeyRight}, mgl64.Vec3{d, 0, d}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InputAxis(heldInput(tt.keys...))
			if !got.ApproxEqual(tt.want) {
				t.Errorf("InputAxis = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntegrate_DampedResponseMatchesClosedForm(t *testing.T) {
	cfg := DefaultConfig()
	in := heldInput(KeyForward)
	p := Player{Position: cfg.StartPosition}
	dt := 1.0 / 60

	for n := 1; n <= 60; n++ {
		p = Integrate(p, in, dt, cfg)
		want := cfg.MoveSpeed * (1 - math.Pow(1-cfg.Friction*dt, float64(n)))
		if got := p.Velocity.Len(); math.Abs(got-want) > 1e-9 {
			t.Fatalf("tick %d: speed %v, want %v", n, got, want)
		}
	}
	speed := p.Velocity.Len()
	if speed >= cfg.MoveSpeed {
		t.Errorf("speed %v reached MoveSpeed %v", speed, cfg.MoveSpeed)
	}
	if speed < 0.99*cfg.MoveSpeed {
		t.Errorf("speed %v did not approach MoveSpeed after 1s", speed)
	}
	// Yaw 0 faces -Z.
	if p.Position.Z() >= cfg.StartPosition.Z() {
		t.Errorf("forward moved to z=%v from %v", p.Position.Z(), cfg.StartPosition.Z())
	}
}

func TestIntegrate_GlidesToRest(t *testing.T) {
	cfg := DefaultConfig()
	p := Player{Velocity: mgl64.Vec3{5, 0, 0}}
	prev := p.Velocity.Len()
	for i := 0; i < 30; i++ {
		p = Integrate(p, NewInput(), 1.0/60, cfg)
		cur := p.Velocity.Len()
		if cur >= prev {
			t.Fatalf("tick %d: speed did not decay (%v -> %v)", i, prev, cur)
		}
		prev = cur
	}
	if prev > 0.05 {
		t.Errorf("speed after 0.5s = %v, want near rest", prev)
	}
}

func TestIntegrate_FollowsYaw(t *testing.T) {
	cfg := DefaultConfig()
	p := Player{Yaw: math.Pi / 2}
	p = Integrate(p, heldInput(KeyForward), 0.05, cfg)
	if p.Position.X() >= 0 || math.Abs(p.Position.Z()) > 1e-9 {
		t.Errorf("yaw pi/2 forward moved to %v, want -X only", p.Position)
	}

	p = Player{}
	p = Integrate(p, heldInput(KeyRight), 0.05, cfg)
	if p.Position.X() <= 0 {
		t.Errorf("strafe right moved to %v, want +X", p.Position)
	}
}

func TestIntegrate_PitchDoesNotLeaveGround(t *testing.T) {
	cfg := DefaultConfig()
	p := Player{Pitch: math.Pi / 2}
	for i := 0; i < 20; i++ {
		p = Integrate(p, heldInput(KeyForward), 0.05, cfg)
	}
	if p.Position.Y() != cfg.EyeHeight {
		t.Errorf("y = %v, want %v", p.Position.Y(), cfg.EyeHeight)
	}
	if p.Velocity.Len() == 0 {
		t.Error("looking straight up stopped horizontal movement")
	}
}

func TestIntegrate_ClampsDelta(t *testing.T) {
	cfg := DefaultConfig()
	in := heldInput(KeyForward)
	big := Integrate(Player{}, in, 5, cfg)
	capped := Integrate(Player{}, in, cfg.MaxDelta, cfg)
	if !big.Position.ApproxEqual(capped.Position) || !big.Velocity.ApproxEqual(capped.Velocity) {
		t.Errorf("dt=5 gave %v/%v, want %v/%v", big.Position, big.Velocity, capped.Position, capped.Velocity)
	}
}

func TestIntegrate_IgnoresNonFiniteDelta(t *testing.T) {
	cfg := DefaultConfig()
	start := Player{
		Position: mgl64.Vec3{cfg.Boundary - 0.01, cfg.EyeHeight, 0},
		Velocity: mgl64.Vec3{5, 0, 0},
	}
	for _, tt := range []struct {
		name string
		dt   float64
	}{
		{"nan", math.NaN()},
		{"+inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
		{"negative", -0.5},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := Integrate(start, heldInput(KeyRight), tt.dt, cfg)
			if got.Position != start.Position {
				t.Errorf("position = %v, want %v", got.Position, start.Position)
			}
			if got.Velocity != start.Velocity {
				t.Errorf("velocity = %v, want %v", got.Velocity, start.Velocity)
			}
		})
	}
}

func TestIntegrate_StaysInsideArena(t *testing.T) {
	cfg := DefaultConfig()
	rapid.Check(t, func(t *rapid.T) {
		b := cfg.Boundary
		p := Player{
			Position: mgl64.Vec3{
				rapid.Float64Range(-b, b).Draw(t, "x"),
				rapid.Float64Range(-10, 10).Draw(t, "y"),
				rapid.Float64Range(-b, b).Draw(t, "z"),
			},
			Velocity: mgl64.Vec3{
				rapid.Float64Range(-1e4, 1e4).Draw(t, "vx"),
				0,
				rapid.Float64Range(-1e4, 1e4).Draw(t, "vz"),
			},
			Yaw: rapid.Float64Range(-10, 10).Draw(t, "yaw"),
		}
		in := NewInput()
		for k := KeyForward; k < keyCount; k++ {
			if rapid.Bool().Draw(t, "held") {
				in.Press(k)
			}
		}
		dt := rapid.Float64Range(0, 10).Draw(t, "dt")

		got := Integrate(p, in, dt, cfg)
		if math.Abs(got.Position.X()) > b || math.Abs(got.Position.Z()) > b {
			t.Fatalf("left arena: %v", got.Position)
		}
		if got.Position.Y() != cfg.EyeHeight {
			t.Fatalf("y = %v, want eye height", got.Position.Y())
		}
	})
}
