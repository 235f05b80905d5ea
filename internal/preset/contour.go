package preset

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/optical-illusions/internal/canvas"
	"github.com/iburimskiy/optical-illusions/internal/geom"
)

// kanizsaTriangle places three pac-man disks whose cut wedges imply a
// triangle that is never drawn; a faint true outline flickers in and
// out on top.
func kanizsaTriangle(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	r := math.Min(w, h) * 0.28
	bg := canvas.Gray(uint8(14 + 10*math.Sin(t*0.8)))
	dst.FillRect(0, 0, w, h, bg)
	for i := 0; i < 3; i++ {
		ang := t*0.2 + float64(i)*2*math.Pi/3
		disk := geom.Polar(center, ang, r)
		rad := r * 0.38
		start := ang + math.Pi/6 + math.Sin(t*0.6+float64(i))*0.5
		end := start + math.Pi*1.65
		dst.Disc(disk, rad, canvas.Gray(235))
		// Wipe the wedge with a background-colored arc whose stroke
		// spans the full disk radius.
		dst.Arc(disk, rad/2, start, end, float32(rad), bg)
	}
	alpha := uint8(40 + 40*(0.5+0.5*math.Sin(t*2)))
	pts := geom.TriangleVertices(center, r*0.92, 0)
	dst.Polygon(pts[:], canvas.Translucent(canvas.Gray(255), alpha), false, 4)
}

// impossibleSteps rings alternating stair quads around the center
// with a misaligned inner square to confuse the depth ordering.
func impossibleSteps(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	radius := math.Min(w, h) * 0.28
	const segs = 36
	rot := t * p.Speed * 0.4
	for s := 0; s < segs; s++ {
		a0 := float64(s)/segs*2*math.Pi + rot
		a1 := float64(s+1)/segs*2*math.Pi + rot
		quad := []geom.Point{
			geom.Polar(center, a0, radius),
			geom.Polar(center, a1, radius),
			geom.Polar(center, a1, radius+26),
			geom.Polar(center, a0, radius+26),
		}
		col := canvas.Gray(40)
		if s%2 == 0 {
			col = canvas.Gray(220)
		}
		dst.Polygon(quad, col, true, 0)
	}
	side := radius * 0.9
	theta := t * p.Speed * 0.6
	sq := make([]geom.Point, 4)
	for i := range sq {
		sq[i] = geom.Point{
			X: center.X + side*math.Cos(theta+float64(i)*math.Pi/2),
			Y: center.Y + side*math.Sin(theta+float64(i)*math.Pi/2),
		}
	}
	dst.Polygon(sq, canvas.Gray(250), false, 3)
}
