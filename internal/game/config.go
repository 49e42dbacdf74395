package game

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Shooting Range"
)

// Camera projection.
const (
	NearPlane = 0.1
	FarPlane  = 1000.0
)

// Environment layout (world units).
const (
	GroundSize    = 300.0
	ArenaSize     = 80.0
	WallHeight    = 10.0
	WallThickness = 1.0
	CrateCount    = 15
	CrateSize     = 2.0
	CrateSpread   = 35.0
)

// Lighting and fog.
const (
	AmbientLight     = 0.4
	DirectionalLight = 0.8
	FogNear          = 50.0
	FogFar           = 200.0
)

// Mesh tessellation.
const (
	TargetSegments     = 16
	TargetRings        = 16
	ProjectileRadius   = 0.05
	ProjectileSegments = 8
	ProjectileRings    = 8
)

// Hit sparks. MaxParticles also sizes the streaming VBO.
const (
	MaxParticles = 512
	SparksPerHit = 24
)

// Targets and rounds scale in over this long after they appear.
const PopInTime = 0.15

// Font atlas layout. Glyphs come from basicfont.Face7x13; the cell after
// '~' is left solid white for HUD rectangles.
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 16
	FontRows   = 6
	FontFirst  = 32
	FontSolid  = 127
	FontAtlasW = FontCellW * FontCols // 112
	FontAtlasH = FontCellH * FontRows // 78
)

// HUD layout in framebuffer pixels.
const (
	HUDScale        = 2.0
	HUDMargin       = 20
	CrosshairArm    = 10
	CrosshairGap    = 4
	CrosshairWeight = 2
)
