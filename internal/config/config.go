package config

const (
	WindowWidth  = 1200
	WindowHeight = 800

	// Presets must survive any canvas at or above this floor.
	MinCanvasSize = 64

	// Knob ranges and key-press step sizes.
	DensityMin     = 0.4
	DensityMax     = 3.0
	DensityDefault = 1.0
	DensityStep    = 0.1

	SpeedMin     = 0.25
	SpeedMax     = 3.0
	SpeedDefault = 1.0
	SpeedStep    = 0.1

	// Seed scheme for per-preset randomness streams.
	SeedBase   = 1337
	SeedStride = 999

	// Alpha of the dark full-canvas overlay applied each frame while
	// trails are on; old trail content decays exponentially under it.
	TrailFadeAlpha = 24
)
