package view

import "fmt"

// HUD holds the values shown on screen. It implements sim.HUD.
type HUD struct {
	Score   int
	Ammo    int
	MaxAmmo int
}

func (h *HUD) SetScore(score int) { h.Score = score }
func (h *HUD) SetAmmo(ammo int)   { h.Ammo = ammo }

func (h *HUD) ScoreText() string { return fmt.Sprintf("Score: %d", h.Score) }
func (h *HUD) AmmoText() string  { return fmt.Sprintf("Ammo: %d/%d", h.Ammo, h.MaxAmmo) }

// AmmoLow reports whether the magazine is at or below a fifth.
func (h *HUD) AmmoLow() bool { return h.Ammo*5 <= h.MaxAmmo }
