package view

import "testing"

func TestHUD_Text(t *testing.T) {
	h := &HUD{MaxAmmo: 30}
	h.SetScore(40)
	h.SetAmmo(7)
	if got := h.ScoreText(); got != "Score: 40" {
		t.Errorf("ScoreText = %q", got)
	}
	if got := h.AmmoText(); got != "Ammo: 7/30" {
		t.Errorf("AmmoText = %q", got)
	}
}

func TestHUD_AmmoLow(t *testing.T) {
	tests := []struct {
		ammo int
		want bool
	}{
		{30, false},
		{7, false},
		{6, true},
		{0, true},
	}
	for _, tt := range tests {
		h := &HUD{Ammo: tt.ammo, MaxAmmo: 30}
		if got := h.AmmoLow(); got != tt.want {
			t.Errorf("AmmoLow(%d/30) = %v, want %v", tt.ammo, got, tt.want)
		}
	}
}
