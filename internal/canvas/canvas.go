// Package canvas defines the drawing contract presets render
// through, keeping them independent of the rendering backend.
package canvas

import (
	"image/color"

	"github.com/iburimskiy/optical-illusions/internal/geom"
)

// Canvas is an immediate-mode drawing surface. All operations draw
// directly into the target and clip silently at its bounds.
type Canvas interface {
	// Size reports the current width and height in pixels.
	Size() (w, h float64)

	// Fill covers the whole surface with a color.
	Fill(c color.Color)

	// Pixel stamps a 2x2 square at (x, y) for a crisp pixel-art dot.
	Pixel(x, y float64, c color.Color)

	// Line draws a segment between two points.
	Line(a, b geom.Point, width float32, c color.Color)

	// Polygon draws an ordered ring of at least three points, filled
	// or stroked with the given width.
	Polygon(pts []geom.Point, c color.Color, filled bool, width float32)

	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.Color)

	// Circle strokes a circle outline.
	Circle(center geom.Point, radius float64, width float32, c color.Color)

	// Disc draws a filled circle.
	Disc(center geom.Point, radius float64, c color.Color)

	// Arc strokes a circular arc from start to end angle (radians),
	// centered on radius with the given stroke width.
	Arc(center geom.Point, radius, start, end float64, width float32, c color.Color)
}

// Translucent returns c at the given alpha, premultiplied the way
// image/color and ebiten expect.
func Translucent(c color.RGBA, alpha uint8) color.RGBA {
	a := uint16(alpha)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: alpha,
	}
}

// Gray returns an opaque gray of the given level.
func Gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
