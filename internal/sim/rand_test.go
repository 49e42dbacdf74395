package sim

import (
	"testing"

	"pgregory.net/rapid"
)

func TestRand_SeedReproducesLayout(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		a := NewWorld(DefaultConfig(), WithSeed(seed))
		b := NewWorld(DefaultConfig(), WithSeed(seed))

		for id, ta := range a.Targets().All() {
			tb, ok := b.Targets().Get(id)
			if !ok {
				t.Fatalf("target %v missing from second world", id)
			}
			if ta.Pos != tb.Pos {
				t.Fatalf("target %v at %v and %v", id, ta.Pos, tb.Pos)
			}
		}
	})
}

func TestRand_RangeF(t *testing.T) {
	r := NewRand(0)
	for i := 0; i < 1000; i++ {
		if v := r.RangeF(-35, 35); v < -35 || v >= 35 {
			t.Fatalf("RangeF = %v, want [-35, 35)", v)
		}
	}
	if v := r.RangeF(2, 2); v != 2 {
		t.Errorf("empty range = %v, want 2", v)
	}
}

func TestFrameDelta(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.016, 0.016},
		{5, 5},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := frameDelta(tt.in); got != tt.want {
			t.Errorf("frameDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
