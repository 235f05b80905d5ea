package game

import (
	"testing"

	"github.com/iburimskiy/optical-illusions/internal/config"
)

func newTestSession() *Session {
	return NewSession(config.WindowWidth, config.WindowHeight)
}

func TestDensityAdjustSaturates(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 10; i++ {
		s.AdjustDensity(0.5)
	}
	if got := s.Density(); got != config.DensityMax {
		t.Errorf("density after ten +0.5 = %v, want %v", got, config.DensityMax)
	}
	for i := 0; i < 100; i++ {
		s.AdjustDensity(-0.5)
	}
	if got := s.Density(); got != config.DensityMin {
		t.Errorf("density after repeated -0.5 = %v, want %v", got, config.DensityMin)
	}
}

func TestSpeedAdjustSaturates(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 50; i++ {
		s.AdjustSpeed(0.1)
	}
	if got := s.Speed(); got != config.SpeedMax {
		t.Errorf("speed high bound = %v, want %v", got, config.SpeedMax)
	}
	for i := 0; i < 50; i++ {
		s.AdjustSpeed(-0.1)
	}
	if got := s.Speed(); got != config.SpeedMin {
		t.Errorf("speed low bound = %v, want %v", got, config.SpeedMin)
	}
}

func TestSelectPresetReseedsIdentically(t *testing.T) {
	a := newTestSession()
	b := newTestSession()
	a.SelectPreset(5)
	b.SelectPreset(5)

	// Advance a's stream as frames would, then reselect: the stream
	// must restart from the same sequence b is still on.
	for i := 0; i < 100; i++ {
		a.Rand().Float64()
	}
	a.SelectPreset(5)
	for i := 0; i < 32; i++ {
		if got, want := a.Rand().Float64(), b.Rand().Float64(); got != want {
			t.Fatalf("draw %d after reseed = %v, want %v", i, got, want)
		}
	}
}

func TestSelectPresetResetsTrailUnconditionally(t *testing.T) {
	s := newTestSession()
	s.TakeTrailReset()

	s.SelectPreset(5)
	if !s.TakeTrailReset() {
		t.Error("trail reset not flagged on preset select")
	}
	if s.TakeTrailReset() {
		t.Error("trail reset flag not cleared by TakeTrailReset")
	}

	// Reselecting the same preset resets again.
	s.SelectPreset(5)
	if !s.TakeTrailReset() {
		t.Error("trail reset not flagged on reselecting the active preset")
	}
}

func TestToggleTrailsResetsBuffer(t *testing.T) {
	s := newTestSession()
	s.TakeTrailReset()

	s.ToggleTrails()
	if s.TrailsEnabled() {
		t.Error("trails still enabled after toggle")
	}
	if !s.TakeTrailReset() {
		t.Error("trail reset not flagged when disabling trails")
	}

	s.ToggleTrails()
	if !s.TrailsEnabled() {
		t.Error("trails not re-enabled after second toggle")
	}
	if !s.TakeTrailReset() {
		t.Error("trail reset not flagged when re-enabling trails")
	}
}

func TestResize(t *testing.T) {
	s := newTestSession()
	s.TakeTrailReset()

	s.Resize(640, 480)
	if w, h := s.Size(); w != 640 || h != 480 {
		t.Errorf("size after resize = %dx%d, want 640x480", w, h)
	}
	if !s.TakeTrailReset() {
		t.Error("trail reset not flagged on resize")
	}

	// Same-size resize is a no-op.
	s.Resize(640, 480)
	if s.TakeTrailReset() {
		t.Error("trail reset flagged on same-size resize")
	}
}

func TestParamsSnapshot(t *testing.T) {
	s := newTestSession()
	s.AdjustDensity(0.5)
	s.AdjustSpeed(-0.25)

	p := s.Params()
	if p.Density != 1.5 || p.Speed != 0.75 {
		t.Errorf("snapshot = %+v, want density 1.5 speed 0.75", p)
	}

	// Later knob changes must not affect an already taken snapshot.
	s.AdjustDensity(0.5)
	if p.Density != 1.5 {
		t.Errorf("snapshot density changed to %v", p.Density)
	}
}

func TestHelpToggle(t *testing.T) {
	s := newTestSession()
	if !s.HelpVisible() {
		t.Fatal("help should start visible")
	}
	s.ToggleHelp()
	if s.HelpVisible() {
		t.Error("help still visible after toggle")
	}
}
