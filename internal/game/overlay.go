package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/optical-illusions/internal/preset"
)

const overlayPad = 10

const legendLine = "1-0/Q-P/A-X switch | [ ] density | - = speed | T trails | F fullscreen | H help | Esc quit"

// drawOverlay renders the title badge, the control legend and the
// knob status at the top left, on top of the finished frame.
func drawOverlay(screen *ebiten.Image, s *Session) {
	face := basicfont.Face7x13

	title := fmt.Sprintf("Preset %d/%d - %s", s.PresetIndex()+1, len(preset.Registry), s.Active().Name)
	bounds := text.BoundString(face, title)
	badgeW := float32(bounds.Dx() + 20)
	badgeH := float32(bounds.Dy() + 10)
	vector.DrawFilledRect(screen, overlayPad, overlayPad, badgeW, badgeH, color.RGBA{A: 120}, false)
	text.Draw(screen, title, face, overlayPad+10, overlayPad+5-bounds.Min.Y, color.White)

	y := overlayPad + int(badgeH) + 8
	ebitenutil.DebugPrintAt(screen, legendLine, overlayPad, y)

	trails := "OFF"
	if s.TrailsEnabled() {
		trails = "ON"
	}
	status := fmt.Sprintf("Density: %.2f   Speed: %.2f   Trails: %s", s.Density(), s.Speed(), trails)
	ebitenutil.DebugPrintAt(screen, status, overlayPad, y+18)
}
