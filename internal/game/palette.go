package game

import "github.com/go-gl/mathgl/mgl32"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex builds a colour from 0xRRGGBB.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Vec returns the colour as normalized floats for shader uniforms.
func (c RGB) Vec() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

// sparkColour cools a spark from white-yellow to orange over its life.
func sparkColour(t float64) mgl32.Vec3 {
	return lerpRGB(Palette.SparkHot, Palette.SparkCool, t).Vec()
}

var Palette = struct {
	Sky        RGB
	Ground     RGB
	Wall       RGB
	Target     RGB
	Projectile RGB
	GunBody    RGB
	GunBarrel  RGB
	GunHandle  RGB
	GunSight   RGB
	Flash      RGB
	SparkHot   RGB
	SparkCool  RGB
	Text       RGB
	TextDim    RGB
	AmmoLow    RGB
	Crosshair  RGB
}{
	Sky:        Hex(0x87CEEB),
	Ground:     Hex(0x228B22),
	Wall:       Hex(0x8B4513),
	Target:     Hex(0xFF0000),
	Projectile: Hex(0xFFFF00),
	GunBody:    Hex(0x2C2C2C),
	GunBarrel:  Hex(0x1A1A1A),
	GunHandle:  Hex(0x4A4A4A),
	GunSight:   Hex(0x1A1A1A),
	Flash:      Hex(0xFFAA00),
	SparkHot:   Hex(0xFFF2A0),
	SparkCool:  Hex(0xFF5A1E),
	Text:       Hex(0xFFFFFF),
	TextDim:    Hex(0xC8C8C8),
	AmmoLow:    Hex(0xFF5050),
	Crosshair:  Hex(0xFFFFFF),
}
