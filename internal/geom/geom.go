// Package geom holds the pure geometry and color helpers shared by
// every preset: polar projection, equilateral triangles, range
// mapping, clamping and the cycling color wheel.
package geom

import (
	"image/color"
	"math"
)

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Polar projects a point at the given angle and radius from center.
func Polar(center Point, angle, radius float64) Point {
	return Point{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}

// TriangleVertices returns the three vertices of an equilateral
// triangle centered on center, each at distance radius, oriented by
// rotation.
func TriangleVertices(center Point, radius, rotation float64) [3]Point {
	var pts [3]Point
	for i := 0; i < 3; i++ {
		pts[i] = Polar(center, rotation+float64(i)*2*math.Pi/3, radius)
	}
	return pts
}

// MapRange linearly maps v from [srcLo, srcHi] to [dstLo, dstHi].
// A zero-width source range yields dstLo rather than dividing by zero.
func MapRange(v, srcLo, srcHi, dstLo, dstHi float64) float64 {
	if srcHi-srcLo == 0 {
		return dstLo
	}
	t := (v - srcLo) / (srcHi - srcLo)
	return dstLo + (dstHi-dstLo)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ColorWheel returns a smoothly cycling opaque color for the given
// phase. The three channels are sinusoids of the same frequency
// shifted by a third of a turn each, so the hue cycles with period 2π.
func ColorWheel(phase float64) color.RGBA {
	r := 0.5 + 0.5*math.Sin(phase)
	g := 0.5 + 0.5*math.Sin(phase+2.094)
	b := 0.5 + 0.5*math.Sin(phase+4.188)
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}
