package sim

import "github.com/go-gl/mathgl/mgl64"

// Config holds gameplay tuning. Durations are in seconds of simulation time.
type Config struct {
	// Player.
	StartPosition    mgl64.Vec3
	EyeHeight        float64
	Boundary         float64 // half-extent of the walkable square
	MoveSpeed        float64 // terminal speed, units/s
	Friction         float64
	MaxDelta         float64
	MouseSensitivity float64 // radians per pixel
	HipFOV           float64 // degrees
	AimFOV           float64 // degrees

	// Weapon.
	MaxAmmo         int
	ProjectileSpeed float64
	MaxRange        float64
	FireCooldown    float64
	MuzzleFlash     float64 // opacity right after a shot
	MuzzleFlashTime float64
	RecoilTime      float64

	// Targets.
	TargetCount  int
	TargetRadius float64
	TargetSpread float64 // spawn square half-extent
	TargetMinY   float64
	TargetMaxY   float64
	BobRate      float64
	BobAmplitude float64
	SpinRate     float64
	RespawnDelay float64
	HitReward    int
}

// DefaultConfig returns the stock shooting range tuning.
func DefaultConfig() Config {
	return Config{
		StartPosition:    mgl64.Vec3{0, 1.6, 5},
		EyeHeight:        1.6,
		Boundary:         35,
		MoveSpeed:        10,
		Friction:         10,
		MaxDelta:         0.1,
		MouseSensitivity: 0.002,
		HipFOV:           75,
		AimFOV:           45,

		MaxAmmo:         30,
		ProjectileSpeed: 50,
		MaxRange:        100,
		FireCooldown:    0.1,
		MuzzleFlash:     0.8,
		MuzzleFlashTime: 0.05,
		RecoilTime:      0.08,

		TargetCount:  12,
		TargetRadius: 0.5,
		TargetSpread: 35,
		TargetMinY:   1,
		TargetMaxY:   6,
		BobRate:      3,
		BobAmplitude: 0.5,
		SpinRate:     2,
		RespawnDelay: 2,
		HitReward:    10,
	}
}
