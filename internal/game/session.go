package game

import (
	"math/rand"

	"github.com/iburimskiy/optical-illusions/internal/config"
	"github.com/iburimskiy/optical-illusions/internal/geom"
	"github.com/iburimskiy/optical-illusions/internal/preset"
)

// Session is the process-wide mutable configuration: active preset,
// density/speed knobs, trails and help flags, and the current canvas
// size. It is mutated only through the command methods below, always
// on the render goroutine between frames.
type Session struct {
	presetIndex int
	density     float64
	speed       float64
	trails      bool
	help        bool
	width       int
	height      int

	rng        *rand.Rand
	trailReset bool
}

// NewSession returns a session with the default knobs and the stream
// for preset 0 seeded.
func NewSession(width, height int) *Session {
	s := &Session{
		density: config.DensityDefault,
		speed:   config.SpeedDefault,
		trails:  true,
		help:    true,
		width:   width,
		height:  height,
	}
	s.reseed()
	return s
}

// SelectPreset activates the preset at index. The trail reset and the
// reseed are unconditional: reselecting the active preset restarts
// its randomness stream and clears the trail too. Index validity is
// the caller's responsibility.
func (s *Session) SelectPreset(index int) {
	s.presetIndex = index
	s.reseed()
	s.trailReset = true
}

// reseed rebuilds the randomness stream as a pure function of the
// base seed and the preset index, so reactivating a preset replays
// the same sequence.
func (s *Session) reseed() {
	s.rng = rand.New(rand.NewSource(int64(config.SeedBase + config.SeedStride*s.presetIndex)))
}

// AdjustDensity moves the density knob, saturating at the bounds.
func (s *Session) AdjustDensity(delta float64) {
	s.density = geom.Clamp(s.density+delta, config.DensityMin, config.DensityMax)
}

// AdjustSpeed moves the speed knob, saturating at the bounds.
func (s *Session) AdjustSpeed(delta float64) {
	s.speed = geom.Clamp(s.speed+delta, config.SpeedMin, config.SpeedMax)
}

// ToggleTrails flips frame persistence. The buffer is reset in both
// directions so re-enabling starts from the next frame's content
// only, with no pre-disable history.
func (s *Session) ToggleTrails() {
	s.trails = !s.trails
	s.trailReset = true
}

// ToggleHelp flips the overlay.
func (s *Session) ToggleHelp() {
	s.help = !s.help
}

// Resize records a new canvas size; the compositor reallocates the
// trail buffer before the next frame renders.
func (s *Session) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.trailReset = true
}

// Params snapshots the knobs for one frame, keeping presets isolated
// from mid-frame state changes.
func (s *Session) Params() preset.Params {
	return preset.Params{Density: s.density, Speed: s.speed}
}

// Rand returns the per-activation randomness stream.
func (s *Session) Rand() *rand.Rand { return s.rng }

// Active returns the selected preset descriptor.
func (s *Session) Active() preset.Preset { return preset.Registry[s.presetIndex] }

func (s *Session) PresetIndex() int    { return s.presetIndex }
func (s *Session) Density() float64    { return s.density }
func (s *Session) Speed() float64      { return s.speed }
func (s *Session) TrailsEnabled() bool { return s.trails }
func (s *Session) HelpVisible() bool   { return s.help }
func (s *Session) Size() (int, int)    { return s.width, s.height }

// TakeTrailReset reports and clears the pending trail-reset flag.
func (s *Session) TakeTrailReset() bool {
	r := s.trailReset
	s.trailReset = false
	return r
}
