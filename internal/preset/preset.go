// Package preset contains the 25 illusion drawing routines and the
// fixed ordered registry the host selects from.
package preset

import (
	"math/rand"

	"github.com/iburimskiy/optical-illusions/internal/canvas"
	"github.com/iburimskiy/optical-illusions/internal/geom"
)

// Params is the per-frame snapshot of the user knobs. Presets read
// these, never the live session state, so one frame always renders
// with consistent values.
type Params struct {
	Density float64
	Speed   float64
}

// DrawFunc renders one complete frame of an illusion. t is seconds
// since program start (not since activation), rnd is the
// per-activation randomness stream, and every spatial constant must
// be derived fresh from the canvas size.
type DrawFunc func(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params)

// Preset pairs a display name with its drawing routine.
type Preset struct {
	Name string
	Draw DrawFunc
}

// Registry is the ordered list of all presets. The order is part of
// the interface: it defines the host's selection-key mapping.
var Registry = []Preset{
	{"Triangle Kaleido Orbit", triKaleido},
	{"Kanizsa Implied Triangle", kanizsaTriangle},
	{"Triangle Moire Field", triangleMoire},
	{"Penrose-ish Rotate", penroseRotate},
	{"Triangle Spiral Tunnel", triSpiralTunnel},
	{"Cafe Wall Warp", cafeWall},
	{"Bulge Grid", bulgeGrid},
	{"Radiant Lines (Hering)", radiantLines},
	{"Fraser Spiral-ish", fraserSpiral},
	{"Tri Chroma Drift", triChromaDrift},
	{"Rotating Snakes-ish", rotatingSnakes},
	{"Breathing Checkerboard", checkerBreathe},
	{"Radial Pixel Tunnel", radialTunnel},
	{"Hex Moire Drift", hexMoire},
	{"Wave Interference", waveInterference},
	{"Lissajous Dot Field", lissajousField},
	{"Vortex Spiral Dashes", vortexDashes},
	{"Concentric Zig Rings", zigRings},
	{"Chromatic Grid Drift", chromaGrid},
	{"Pixel Tunnel Zoom", pixelTunnel},
	{"Zollner Tilt Illusion", zollnerTilt},
	{"Spiral Checker Twist", spiralChecker},
	{"Impossible Steps", impossibleSteps},
	{"Parallax Starfield", parallaxStars},
	{"Kaleido Rings", kaleidoRings},
}

// frame reads the canvas size and its center point.
func frame(dst canvas.Canvas) (w, h float64, center geom.Point) {
	w, h = dst.Size()
	return w, h, geom.Point{X: w / 2, Y: h / 2}
}

// atLeast floors a derived element count so lattice math never
// divides by zero on extreme aspect ratios or knob values.
func atLeast(n, lo int) int {
	if n < lo {
		return lo
	}
	return n
}

// shifted returns pts translated by (dx, dy).
func shifted(pts []geom.Point, dx, dy float64) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = geom.Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}
