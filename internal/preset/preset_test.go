package preset

import (
	"fmt"
	"image/color"
	"math/rand"
	"testing"

	"github.com/iburimskiy/optical-illusions/internal/config"
	"github.com/iburimskiy/optical-illusions/internal/geom"
)

// opCanvas counts drawing calls so rendering can be checked without a
// graphics context.
type opCanvas struct {
	w, h    float64
	ops     int
	badPoly bool
}

func (c *opCanvas) Size() (float64, float64)                                  { return c.w, c.h }
func (c *opCanvas) Fill(color.Color)                                          { c.ops++ }
func (c *opCanvas) Pixel(x, y float64, _ color.Color)                         { c.ops++ }
func (c *opCanvas) Line(a, b geom.Point, _ float32, _ color.Color)            { c.ops++ }
func (c *opCanvas) FillRect(x, y, w, h float64, _ color.Color)                { c.ops++ }
func (c *opCanvas) Circle(_ geom.Point, _ float64, _ float32, _ color.Color)  { c.ops++ }
func (c *opCanvas) Disc(_ geom.Point, _ float64, _ color.Color)               { c.ops++ }
func (c *opCanvas) Polygon(pts []geom.Point, _ color.Color, _ bool, _ float32) {
	if len(pts) < 3 {
		c.badPoly = true
	}
	c.ops++
}
func (c *opCanvas) Arc(_ geom.Point, _, _, _ float64, _ float32, _ color.Color) { c.ops++ }

func streamFor(index int) *rand.Rand {
	return rand.New(rand.NewSource(int64(config.SeedBase + config.SeedStride*index)))
}

func TestRegistryShape(t *testing.T) {
	if len(Registry) != 25 {
		t.Fatalf("registry has %d presets, want 25", len(Registry))
	}
	seen := make(map[string]bool)
	for i, p := range Registry {
		if p.Name == "" {
			t.Errorf("preset %d has an empty name", i)
		}
		if seen[p.Name] {
			t.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Draw == nil {
			t.Errorf("preset %d (%s) has no drawing routine", i, p.Name)
		}
	}
}

func TestPresetsRenderNonEmpty(t *testing.T) {
	sizes := [][2]float64{
		{config.MinCanvasSize, config.MinCanvasSize},
		{1200, 800},
		{640, 128}, // extreme aspect ratio
	}
	knobs := []Params{
		{Density: config.DensityMin, Speed: config.SpeedMin},
		{Density: config.DensityDefault, Speed: config.SpeedDefault},
		{Density: config.DensityMax, Speed: config.SpeedMax},
	}
	times := []float64{0, 2.5, 300}

	for i, p := range Registry {
		t.Run(p.Name, func(t *testing.T) {
			for _, sz := range sizes {
				for _, k := range knobs {
					rnd := streamFor(i)
					for _, at := range times {
						c := &opCanvas{w: sz[0], h: sz[1]}
						p.Draw(c, at, rnd, k)
						tag := fmt.Sprintf("size %vx%v density %v speed %v t %v", sz[0], sz[1], k.Density, k.Speed, at)
						if c.ops == 0 {
							t.Errorf("blank frame at %s", tag)
						}
						if c.badPoly {
							t.Errorf("degenerate polygon at %s", tag)
						}
					}
				}
			}
		})
	}
}

// The first preset must draw something at t=0 with default knobs:
// its radius term is nonzero for the first element.
func TestFirstPresetNonEmptyAtStart(t *testing.T) {
	c := &opCanvas{w: 1200, h: 800}
	Registry[0].Draw(c, 0, streamFor(0), Params{Density: config.DensityDefault, Speed: config.SpeedDefault})
	if c.ops == 0 {
		t.Fatal("preset 0 drew nothing at t=0")
	}
}
