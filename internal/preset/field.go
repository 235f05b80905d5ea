package preset

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/optical-illusions/internal/canvas"
	"github.com/iburimskiy/optical-illusions/internal/geom"
)

// fraserSpiral twists dot rings against counter-twisted dashes;
// concentric circles read as a spiral.
func fraserSpiral(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	_, _, center := frame(dst)
	rounds := atLeast(int(56*p.Density), 1)
	for r := 0; r < rounds; r++ {
		rad := 12 + float64(r)*10
		twist := 0.5 * math.Sin(t*0.9+float64(r)*0.25)
		for k := 0; k < 36; k++ {
			a := float64(k)/36*2*math.Pi + twist
			pt := geom.Polar(center, a, rad)
			dst.Pixel(pt.X, pt.Y, canvas.Gray(240))
		}
		for k := 0; k < 12; k++ {
			a := float64(k)/12*2*math.Pi - twist*1.6
			dst.Line(geom.Polar(center, a, rad-6), geom.Polar(center, a+0.08, rad+6),
				1, canvas.Gray(80))
		}
	}
}

// radialTunnel walks a single pixel spiral outward from the center.
func radialTunnel(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	_, _, center := frame(dst)
	rings := atLeast(int(320*p.Density), 1)
	for i := 0; i < rings; i++ {
		a := t*p.Speed*0.6 + float64(i)*0.08
		pt := geom.Polar(center, a, 2+float64(i)*2)
		dst.Pixel(pt.X, pt.Y, canvas.Gray(uint8(140+115*math.Sin(float64(i)*0.1+t))))
	}
}

// lissajousField plots hundreds of dots on index-phased Lissajous
// curves; neighbors stay coherent so the cloud flows as one body.
func lissajousField(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, _ := frame(dst)
	n := atLeast(int(420*p.Density), 1)
	for i := 0; i < n; i++ {
		a := float64(i) * 0.07
		x := w/2 + math.Sin(t*p.Speed*1.1+a*3)*w*0.38*math.Sin(a*0.3)
		y := h/2 + math.Cos(t*p.Speed*1.3+a*4)*h*0.28*math.Cos(a*0.2)
		dst.Pixel(x, y, geom.ColorWheel(a*0.7+t*1.2))
	}
}

// vortexDashes interleaves bright and dark dashes along spiral arms.
func vortexDashes(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	_, _, center := frame(dst)
	arms := int(16*p.Density) + 12
	const segs = 140
	for arm := 0; arm < arms; arm++ {
		base := float64(arm)/float64(arms)*2*math.Pi + t*p.Speed*0.2
		for k := 0; k < segs; k++ {
			pt := geom.Polar(center, base+float64(k)*0.06, 6+float64(k)*3)
			col := canvas.Gray(40)
			if k%2 == 0 {
				col = canvas.Gray(240)
			}
			dst.Pixel(pt.X, pt.Y, col)
		}
	}
}

// pixelTunnel scatters fresh random angles every frame along a
// radius ramp; the deliberate re-randomization gives the tunnel its
// shimmer, especially under trails.
func pixelTunnel(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	n := atLeast(int(1600*p.Density), 1)
	maxR := math.Min(w, h) * 0.5
	for i := 0; i < n; i++ {
		a := rnd.Float64() * 2 * math.Pi
		r := math.Pow(float64(i)/float64(n), 0.6) * maxR
		pt := geom.Polar(center, a+t*p.Speed*0.15, r)
		dst.Pixel(pt.X, pt.Y, canvas.Gray(uint8(100+155*float64(i)/float64(n))))
	}
}

// parallaxStars re-rolls a star cloud each frame, swirled by a
// radius-dependent phase, over faint reference circles that seem to
// wobble against the flicker.
func parallaxStars(dst canvas.Canvas, t float64, rnd *rand.Rand, p Params) {
	w, h, center := frame(dst)
	n := atLeast(int(900*p.Density), 1)
	m := math.Min(w, h)
	for i := 0; i < n; i++ {
		ang := rnd.Float64() * 2 * math.Pi
		r := math.Pow(rnd.Float64(), 0.6) * m * 0.45
		pt := geom.Polar(center, ang+0.1*math.Sin(t*p.Speed*0.6+r*0.01), r)
		dst.Pixel(pt.X, pt.Y, canvas.Gray(230))
	}
	for radius := 60.0; radius < m*0.5; radius += 60 {
		dst.Circle(center, radius, 1, canvas.Gray(100))
	}
}
