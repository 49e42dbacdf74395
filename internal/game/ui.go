package game

import "shootingrange/internal/view"

// RenderHUD draws score, ammo, the crosshair and, while the pointer is
// free, the click-to-play prompt.
func RenderHUD(r *Renderer, hud *view.HUD, captured bool, fbW, fbH int) {
	s := float32(HUDScale)
	lineH := int(FontCellH * s)

	r.DrawString(hud.ScoreText(), HUDMargin, HUDMargin, s, Palette.Text)
	ammoCol := Palette.Text
	if hud.AmmoLow() {
		ammoCol = Palette.AmmoLow
	}
	r.DrawString(hud.AmmoText(), HUDMargin, HUDMargin+lineH+4, s, ammoCol)

	cx, cy := float32(fbW)/2, float32(fbH)/2
	const arm, gap, w = CrosshairArm, CrosshairGap, CrosshairWeight
	col := Palette.Crosshair
	r.DrawRect(cx-gap-arm, cy-w/2, arm, w, col, 0.9)
	r.DrawRect(cx+gap, cy-w/2, arm, w, col, 0.9)
	r.DrawRect(cx-w/2, cy-gap-arm, w, arm, col, 0.9)
	r.DrawRect(cx-w/2, cy+gap, w, arm, col, 0.9)

	if !captured {
		r.DrawRect(0, 0, float32(fbW), float32(fbH), RGB{}, 0.35)
		title := "SHOOTING RANGE"
		ts := s * 2
		r.DrawString(title, fbW/2-TextWidth(title, ts)/2, fbH/2-3*lineH, ts, Palette.Text)
		hint := "Click to play"
		r.DrawString(hint, fbW/2-TextWidth(hint, s)/2, fbH/2+lineH, s, Palette.Text)
		keys := "WASD move  Mouse look  LMB fire  RMB aim  R reload  Esc release"
		ks := s * 0.75
		r.DrawString(keys, fbW/2-TextWidth(keys, ks)/2, fbH/2+3*lineH, ks, Palette.TextDim)
	}

	r.FlushText(fbW, fbH)
}
