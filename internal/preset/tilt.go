package preset

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/optical-illusions/internal/canvas"
	"github.com/iburimskiy/optical-illusions/internal/geom"
)

// radiantLines bursts rays from the center under concentric circles;
// the radial field makes the circles look warped.
func radiantLines(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	rays := atLeast(int(220*p.Density), 1)
	reach := math.Min(w, h) * 0.6
	for k := 0; k < rays; k++ {
		a := float64(k) / float64(rays) * 2 * math.Pi
		v := uint8(120 + 120*math.Sin(t+p.Speed*float64(k)*0.02))
		dst.Line(center, geom.Polar(center, a, reach), 1, canvas.Gray(v))
	}
	for r := 0; r < 12; r++ {
		rad := 14 + float64(r)*14 + 6*math.Sin(t*0.8+float64(r)*0.3)
		dst.Circle(center, rad, 2, canvas.Gray(240))
	}
}

// zollnerTilt crosses long horizontals with short oscillating
// transversals; the horizontals appear to converge and diverge.
func zollnerTilt(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, _ := frame(dst)
	mainGap := int(48/p.Density) + 6
	for y := 0; y < int(h); y += mainGap {
		fy := float64(y)
		dst.Line(geom.Point{X: 0, Y: fy}, geom.Point{X: w, Y: fy}, 1, canvas.Gray(230))
	}
	seg := int(24*p.Density) + 12
	for k := 0; k < seg; k++ {
		x := float64(k) * w / float64(seg)
		ang := 0.8 * math.Sin(t*p.Speed*0.7+float64(k)*0.6)
		cs, sn := math.Cos(ang), math.Sin(ang)
		for y := 0; y < int(h); y += mainGap * 2 {
			x1, y1 := x-18, float64(y)-10
			x2, y2 := x+18, float64(y)+10
			cy := float64(y) + float64(mainGap)
			a := geom.Point{
				X: x + (x1-x)*cs - (y1-cy)*sn,
				Y: cy + (x1-x)*sn + (y1-cy)*cs,
			}
			b := geom.Point{
				X: x + (x2-x)*cs - (y2-cy)*sn,
				Y: cy + (x2-x)*sn + (y2-cy)*cs,
			}
			dst.Line(a, b, 1, canvas.Gray(120))
		}
	}
}
