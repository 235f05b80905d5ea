package preset

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/optical-illusions/internal/canvas"
	"github.com/iburimskiy/optical-illusions/internal/geom"
)

// triangleMoire fills a lattice with triangles whose size, rotation
// and brightness are phase-shifted by cell index; nothing moves, yet
// waves sweep the field.
func triangleMoire(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, _ := frame(dst)
	cols := atLeast(int(28*p.Density), 1)
	rows := atLeast(int(float64(cols)*h/w), 1)
	cell := w / float64(cols)
	phase := t * p.Speed * 1.2
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			c := geom.Point{X: float64(i)*cell + cell/2, Y: float64(j)*cell + cell/2}
			r := 0.45 * cell * (1 + 0.6*math.Sin(phase+float64(i)*0.3+float64(j)*0.31))
			pts := geom.TriangleVertices(c, r, phase*0.5+float64(i-j)*0.15)
			v := uint8(geom.Clamp(130+120*math.Sin(phase+float64(i)*0.2+float64(j)*0.19), 0, 255))
			dst.Polygon(pts[:], canvas.Gray(v), false, 1)
		}
	}
}

// cafeWall offsets alternating brick rows with a slow sway; the
// mortar lines appear to tilt.
func cafeWall(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, _ := frame(dst)
	rows := atLeast(int(18*p.Density), 1)
	cols := rows * 2
	cell := h / float64(rows)
	phase := t * p.Speed * 0.8
	for j := 0; j < rows; j++ {
		off := 0.0
		if j%2 != 0 {
			off = cell * 0.4 * math.Sin(phase+float64(j)*0.2)
		}
		for i := 0; i < cols; i++ {
			v := uint8(20)
			if (i+j)%2 == 0 {
				v = 255
			}
			dst.FillRect(float64(i)*cell+off, float64(j)*cell, cell, cell, canvas.Gray(v))
		}
	}
	for j := 0; j <= rows; j++ {
		y := float64(j) * cell
		dst.Line(geom.Point{X: 0, Y: y}, geom.Point{X: w, Y: y}, 2, canvas.Gray(80))
	}
}

// bulgeGrid bows the endpoints of straight grid lines in opposite
// directions, making the flat lattice appear to bulge.
func bulgeGrid(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, _ := frame(dst)
	cols := atLeast(int(36*p.Density), 1)
	rows := atLeast(int(float64(cols)*h/w), 1)
	cellx := w / float64(cols)
	celly := h / float64(rows)
	for j := 0; j <= rows; j++ {
		sway := math.Sin(t*p.Speed*0.6+float64(j)*0.3) * 10
		y := float64(j) * celly
		dst.Line(geom.Point{X: 0, Y: y + sway}, geom.Point{X: w, Y: y - sway}, 1, canvas.Gray(200))
	}
	for i := 0; i <= cols; i++ {
		sway := math.Sin(t*p.Speed*0.7+float64(i)*0.3) * 10
		x := float64(i) * cellx
		dst.Line(geom.Point{X: x + sway, Y: 0}, geom.Point{X: x - sway, Y: h}, 1, canvas.Gray(200))
	}
}

// checkerBreathe shears alternating checkerboard rows on a shared
// sinusoid so the whole board seems to breathe.
func checkerBreathe(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, _ := frame(dst)
	cols := atLeast(int(22*p.Density), 1)
	rows := atLeast(int(float64(cols)*h/w), 1)
	cw := w / float64(cols)
	ch := h / float64(rows)
	off := 0.5 * math.Sin(t*p.Speed*2)
	for j := 0; j < rows; j++ {
		shear := -ch * 0.4
		if j%2 != 0 {
			shear = ch * 0.4
		}
		for i := 0; i < cols; i++ {
			v := uint8(10)
			if (i+j)%2 == 0 {
				v = 255
			}
			dst.FillRect(float64(i)*cw+shear*off, float64(j)*ch, cw, ch, canvas.Gray(v))
		}
	}
}

// hexMoire drifts alternating circles on a hex lattice; the two
// interleaved sublattices beat against each other.
func hexMoire(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, _ := frame(dst)
	size := 16 / math.Max(0.5, p.Density*0.8)
	dx := size * math.Sqrt(3)
	dy := size * 1.5
	cols := int(w/dx) + 2
	rows := int(h/dy) + 2
	ph := t * p.Speed * 0.5
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			x := float64(i)*dx + float64(j%2)*dx/2 + math.Sin(ph+float64(i)*0.3+float64(j)*0.2)*6
			y := float64(j)*dy + math.Cos(ph+float64(i)*0.2+float64(j)*0.3)*3
			col := canvas.Gray(50)
			if (i+j)%2 == 0 {
				col = canvas.Gray(200)
			}
			dst.Circle(geom.Point{X: x, Y: y}, size, 1, col)
		}
	}
}

// waveInterference sums two time-scaled sine fields per cell and maps
// the result to brightness.
func waveInterference(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, _ := frame(dst)
	cols := atLeast(int(110*p.Density), 1)
	rows := atLeast(int(float64(cols)*h/w), 1)
	cw := w / float64(cols)
	ch := h / float64(rows)
	s1 := math.Sin(t*p.Speed*0.8) + 1.2
	s2 := math.Cos(t*p.Speed*0.7) + 1.2
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			val := math.Sin(float64(i)*0.18*s1+t*0.9) + math.Cos(float64(j)*0.15*s2+t*1.1)
			v := uint8(geom.MapRange(val, -2, 2, 20, 235))
			dst.FillRect(float64(i)*cw, float64(j)*ch, cw, ch, canvas.Gray(v))
		}
	}
}

// chromaGrid phases the color wheel across a rectangle lattice.
func chromaGrid(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, _ := frame(dst)
	cols := atLeast(int(36*p.Density), 1)
	rows := atLeast(int(float64(cols)*h/w), 1)
	cw := w / float64(cols)
	ch := h / float64(rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			a := t*p.Speed + float64(i)*0.2 + float64(j)*0.21
			col := color.RGBA{
				R: uint8(120 + 120*math.Sin(a)),
				G: uint8(120 + 120*math.Sin(a+2)),
				B: uint8(120 + 120*math.Sin(a+4)),
				A: 255,
			}
			rw, rh := cw-1, ch-1
			if rw <= 0 {
				rw = cw
			}
			if rh <= 0 {
				rh = ch
			}
			dst.FillRect(float64(i)*cw, float64(j)*ch, rw, rh, col)
		}
	}
}
