package geom

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 3, 3},
		{-2, 0, 3, 0},
		{1.5, 0, 3, 1.5},
		{0, 0, 3, 0},
		{3, 0, 3, 3},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
	// Clamping an already clamped value is a no-op.
	if got := Clamp(Clamp(10, 0, 3), 0, 3); got != 3 {
		t.Errorf("repeated clamp = %v, want 3", got)
	}
}

func TestMapRangeDegenerate(t *testing.T) {
	for _, v := range []float64{-1, 0, 2, 42} {
		if got := MapRange(v, 2, 2, 7, 9); got != 7 {
			t.Errorf("MapRange(%v, 2, 2, 7, 9) = %v, want 7", v, got)
		}
	}
}

func TestMapRangeEndpoints(t *testing.T) {
	if got := MapRange(1, 1, 5, 10, 20); got != 10 {
		t.Errorf("low endpoint = %v, want 10", got)
	}
	if got := MapRange(5, 1, 5, 10, 20); got != 20 {
		t.Errorf("high endpoint = %v, want 20", got)
	}
	if got := MapRange(3, 1, 5, 10, 20); got != 15 {
		t.Errorf("midpoint = %v, want 15", got)
	}
}

func TestColorWheelPeriodic(t *testing.T) {
	for _, phase := range []float64{0, 0.7, 1.9, 3.3, 5.5, 12.0} {
		a := ColorWheel(phase)
		b := ColorWheel(phase + 2*math.Pi)
		if a != b {
			t.Errorf("ColorWheel not periodic at phase %v: %v vs %v", phase, a, b)
		}
		if a.A != 255 {
			t.Errorf("ColorWheel(%v) alpha = %d, want opaque", phase, a.A)
		}
	}
}

func TestTriangleVertices(t *testing.T) {
	center := Point{X: 100, Y: 50}
	const (
		radius   = 40.0
		rotation = 0.3
		tol      = 1e-9
	)
	pts := TriangleVertices(center, radius, rotation)
	for i, p := range pts {
		d := math.Hypot(p.X-center.X, p.Y-center.Y)
		if math.Abs(d-radius) > tol {
			t.Errorf("vertex %d at distance %v, want %v", i, d, radius)
		}
		got := math.Atan2(p.Y-center.Y, p.X-center.X)
		want := rotation + float64(i)*2*math.Pi/3
		diff := math.Mod(got-want+3*math.Pi, 2*math.Pi) - math.Pi
		if math.Abs(diff) > tol {
			t.Errorf("vertex %d angle %v, want %v", i, got, want)
		}
	}
}
