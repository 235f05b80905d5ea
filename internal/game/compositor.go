package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/optical-illusions/internal/canvas"
	"github.com/iburimskiy/optical-illusions/internal/config"
)

// Background fill used when trails are off.
var backgroundColor = color.RGBA{R: 6, G: 8, B: 12, A: 255}

// Compositor owns the trail buffer and runs the per-frame pipeline:
// background or trail decay, preset drawing, trail accumulation and
// the help overlay.
type Compositor struct {
	trail *ebiten.Image
}

func NewCompositor(width, height int) *Compositor {
	return &Compositor{trail: ebiten.NewImage(width, height)}
}

// Frame renders one complete frame for the session onto screen.
func (c *Compositor) Frame(screen *ebiten.Image, s *Session, t float64) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	c.syncTrail(w, h, s.TakeTrailReset())

	if s.TrailsEnabled() {
		screen.DrawImage(c.trail, nil)
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h),
			color.RGBA{A: config.TrailFadeAlpha}, false)
	} else {
		screen.Fill(backgroundColor)
	}

	active := s.Active()
	active.Draw(canvas.New(screen), t, s.Rand(), s.Params())

	if s.TrailsEnabled() {
		// Premultiplied source-over blend; with the fade above the
		// accumulated brightness converges instead of saturating.
		c.trail.DrawImage(screen, nil)
	}

	// Overlay goes on after the trail copy so it never persists.
	if s.HelpVisible() {
		drawOverlay(screen, s)
	}
}

// syncTrail keeps the buffer canvas-sized, reallocating on resize and
// clearing to transparent after any reset-worthy command.
func (c *Compositor) syncTrail(w, h int, reset bool) {
	b := c.trail.Bounds()
	if b.Dx() != w || b.Dy() != h {
		c.trail.Deallocate()
		c.trail = ebiten.NewImage(w, h)
		return
	}
	if reset {
		c.trail.Clear()
	}
}
