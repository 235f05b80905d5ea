package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/optical-illusions/internal/config"
)

// presetKeys maps keys to registry indices, in registry order. T, H
// and F are deliberately absent: they carry commands of their own.
var presetKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9, ebiten.KeyDigit0,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR, ebiten.KeyY,
	ebiten.KeyU, ebiten.KeyI, ebiten.KeyO, ebiten.KeyP, ebiten.KeyA,
	ebiten.KeyS, ebiten.KeyD, ebiten.KeyG, ebiten.KeyZ, ebiten.KeyX,
}

// Game adapts the session and compositor to the ebiten loop: it
// collects commands in Update, renders in Draw and tracks resizes in
// Layout.
type Game struct {
	session    *Session
	compositor *Compositor
	elapsed    float64
}

func New(width, height int) *Game {
	return &Game{
		session:    NewSession(width, height),
		compositor: NewCompositor(width, height),
	}
}

func (g *Game) Update() error {
	for i, k := range presetKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.session.SelectPreset(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) {
		g.session.AdjustDensity(-config.DensityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
		g.session.AdjustDensity(config.DensityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.session.AdjustSpeed(-config.SpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.session.AdjustSpeed(config.SpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.session.ToggleTrails()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.session.ToggleHelp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.elapsed += 1.0 / 60.0 // fixed 60 TPS
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.compositor.Frame(screen, g.session, g.elapsed)
}

// Layout renders at the window resolution, floored at the minimum
// canvas size every preset is required to survive.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth, config.MinCanvasSize)
	h := max(outsideHeight, config.MinCanvasSize)
	g.session.Resize(w, h)
	return w, h
}
