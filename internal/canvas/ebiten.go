package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/optical-illusions/internal/geom"
)

// Texture source for path-based triangles.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Image adapts an *ebiten.Image to the Canvas contract.
type Image struct {
	dst *ebiten.Image
}

// New wraps dst as a Canvas.
func New(dst *ebiten.Image) *Image {
	return &Image{dst: dst}
}

func (c *Image) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Image) Fill(col color.Color) {
	c.dst.Fill(col)
}

func (c *Image) Pixel(x, y float64, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), 2, 2, col, false)
}

func (c *Image) Line(a, b geom.Point, width float32, col color.Color) {
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, col, false)
}

func (c *Image) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *Image) Circle(center geom.Point, radius float64, width float32, col color.Color) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), width, col, false)
}

func (c *Image) Disc(center geom.Point, radius float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), col, false)
}

func (c *Image) Polygon(pts []geom.Point, col color.Color, filled bool, width float32) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	var (
		vs []ebiten.Vertex
		is []uint16
	)
	rule := ebiten.FillRuleFillAll
	if filled {
		vs, is = path.AppendVerticesAndIndicesForFilling(nil, nil)
		rule = ebiten.FillRuleNonZero
	} else {
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	}
	c.drawPath(vs, is, rule, col)
}

func (c *Image) Arc(center geom.Point, radius, start, end float64, width float32, col color.Color) {
	var path vector.Path
	path.Arc(float32(center.X), float32(center.Y), float32(radius), float32(start), float32(end), vector.Clockwise)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	c.drawPath(vs, is, ebiten.FillRuleFillAll, col)
}

func (c *Image) drawPath(vs []ebiten.Vertex, is []uint16, rule ebiten.FillRule, col color.Color) {
	cr, cg, cb, ca := col.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	c.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule: rule,
		// Vertex colors above come from RGBA() and are premultiplied.
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}
