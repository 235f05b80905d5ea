package canvas

import (
	"image/color"
	"testing"
)

func TestTranslucentPremultiplies(t *testing.T) {
	cases := []struct {
		in    color.RGBA
		alpha uint8
		want  color.RGBA
	}{
		{color.RGBA{255, 255, 255, 255}, 120, color.RGBA{120, 120, 120, 120}},
		{color.RGBA{200, 100, 50, 255}, 255, color.RGBA{200, 100, 50, 255}},
		{color.RGBA{255, 255, 255, 255}, 0, color.RGBA{0, 0, 0, 0}},
	}
	for _, c := range cases {
		if got := Translucent(c.in, c.alpha); got != c.want {
			t.Errorf("Translucent(%v, %d) = %v, want %v", c.in, c.alpha, got, c.want)
		}
	}
}

func TestGray(t *testing.T) {
	if got := Gray(80); got != (color.RGBA{80, 80, 80, 255}) {
		t.Errorf("Gray(80) = %v", got)
	}
}
