package preset

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/optical-illusions/internal/canvas"
	"github.com/iburimskiy/optical-illusions/internal/geom"
)

// Luminance-stepped loop for the snakes illusion.
var snakePalette = []color.RGBA{
	{235, 64, 64, 255},
	{255, 200, 0, 255},
	{240, 240, 240, 255},
	{40, 40, 40, 255},
	{64, 64, 235, 255},
	{0, 180, 255, 255},
	{240, 240, 240, 255},
	{40, 40, 40, 255},
}

// triKaleido orbits a swarm of concentric triangles whose radii
// pulse on phase-shifted sinusoids.
func triKaleido(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	n := atLeast(int(60*p.Density), 1)
	base := math.Min(w, h) / 3
	for k := 0; k < n; k++ {
		a := t*p.Speed*0.8 + float64(k)*0.17
		s := math.Sin(a*2 + float64(k)*0.11)
		r := base * (0.25 + 0.7*s*s)
		pts := geom.TriangleVertices(center, r, a+float64(k)*0.2)
		dst.Polygon(pts[:], geom.ColorWheel(a*1.8+float64(k)*0.3), false, 1)
	}
}

// penroseRotate suggests an impossible figure from counter-rotating
// rings of chords spanning a third of a turn.
func penroseRotate(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	m := math.Min(w, h)
	rings := atLeast(int(16*p.Density), 1)
	for r := 0; r < rings; r++ {
		rad := geom.MapRange(float64(r), 0, float64(rings-1), m*0.05, m*0.48)
		segs := 3 * (4 + r%3)
		dir := -1.0
		if r%2 != 0 {
			dir = 1.0
		}
		for k := 0; k < segs; k++ {
			a := float64(k)/float64(segs)*2*math.Pi + t*p.Speed*0.3*dir
			dst.Line(geom.Polar(center, a, rad), geom.Polar(center, a+2*math.Pi/3, rad),
				1, geom.ColorWheel(a*2+float64(r)*0.3))
		}
	}
}

// triSpiralTunnel stacks shrinking rotated triangles into a tunnel.
func triSpiralTunnel(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	layers := atLeast(int(140*p.Density), 1)
	for i := 0; i < layers; i++ {
		s := geom.MapRange(float64(i), 0, float64(layers), math.Min(w, h)*0.5, 6)
		pts := geom.TriangleVertices(center, s, t*p.Speed*0.8+float64(i)*0.21)
		dst.Polygon(pts[:], canvas.Gray(uint8(160+95*math.Sin(float64(i)*0.1+t))), false, 1)
	}
}

// triChromaDrift redraws each triangle three times with small
// per-channel offsets; the misregistration reads as motion.
func triChromaDrift(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	n := atLeast(int(120*p.Density), 1)
	base := math.Min(w, h) * 0.48
	for i := 0; i < n; i++ {
		s := base * float64(i) / float64(n)
		pts := geom.TriangleVertices(center, s, t*p.Speed*0.6+float64(i)*0.07)
		wheel := geom.ColorWheel(float64(i)*0.1 + t*1.2)
		off := 1.5 + 0.8*math.Sin(t+float64(i)*0.2)
		dst.Polygon(shifted(pts[:], off, 0), color.RGBA{R: wheel.R, A: 255}, false, 1)
		dst.Polygon(shifted(pts[:], 0, off), color.RGBA{G: wheel.G, A: 255}, false, 1)
		dst.Polygon(shifted(pts[:], -off, -off), color.RGBA{B: wheel.B, A: 255}, false, 1)
	}
}

// rotatingSnakes cycles an 8-color palette around concentric arc
// rings; the stepped luminance order induces peripheral drift.
func rotatingSnakes(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	rings := int(10*p.Density) + 6
	const seg = 36
	for r := 1; r <= rings; r++ {
		radius := float64(r)*math.Min(w, h)*0.045 + 40
		dir := -1.0
		if r%2 != 0 {
			dir = 1.0
		}
		rot := t * p.Speed * 0.3 * dir
		for k := 0; k < seg; k++ {
			a := float64(k) / seg * 2 * math.Pi
			col := snakePalette[(k+r*2)%len(snakePalette)]
			dst.Arc(center, radius, a+rot, a+rot+2*math.Pi/seg, 10, col)
		}
	}
}

// zigRings draws concentric polygons whose vertex counts and radii
// jitter with time, so the rings appear to writhe.
func zigRings(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	_, _, center := frame(dst)
	rings := atLeast(int(42*p.Density), 1)
	for r := 1; r <= rings; r++ {
		radius := float64(r) * 10
		zig := atLeast(int(10+10*math.Sin(t*0.7+float64(r))), 3)
		pts := make([]geom.Point, 0, zig)
		for k := 0; k < zig; k++ {
			a := float64(k)/float64(zig)*2*math.Pi + float64(r)*0.11 + t*p.Speed*0.3
			jitter := 4 * math.Sin(float64(k)*0.7+float64(r)*0.3+t)
			pts = append(pts, geom.Polar(center, a, radius+jitter))
		}
		dst.Polygon(pts, canvas.Gray(220), false, 1)
	}
}

// spiralChecker tiles rings with alternating quads; the per-ring
// twist makes concentric circles read as a spiral.
func spiralChecker(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	maxR := int(math.Min(w, h) * 0.6)
	for r := 8; r < maxR; r += 10 {
		tiles := int(math.Max(8, float64(r)/10))
		step := 2 * math.Pi / float64(tiles)
		for k := 0; k < tiles; k++ {
			a := float64(k)*step + t*p.Speed*0.4
			quad := []geom.Point{
				geom.Polar(center, a, float64(r)),
				geom.Polar(center, a+step, float64(r)+10),
				geom.Polar(center, a+step, float64(r)),
				geom.Polar(center, a, float64(r)+10),
			}
			col := canvas.Gray(15)
			if (k+r/10)%2 == 0 {
				col = canvas.Gray(255)
			}
			dst.Polygon(quad, col, true, 0)
		}
	}
}

// kaleidoRings scatters color-wheel pixels around dense rings with
// alternating spin directions.
func kaleidoRings(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	rings := atLeast(int(60*p.Density), 1)
	for r := 1; r <= rings; r++ {
		radius := float64(r)*math.Min(w, h)*0.007 + 10
		seg := 12 + (r%6)*2
		dir := -1.0
		if r%2 != 0 {
			dir = 1.0
		}
		for k := 0; k < seg; k++ {
			a := float64(k)/float64(seg)*2*math.Pi + t*p.Speed*0.3*dir
			pt := geom.Polar(center, a, radius)
			dst.Pixel(pt.X, pt.Y, geom.ColorWheel(a*3+float64(r)*0.2))
		}
	}
}
