package frame

import (
	"testing"

	"github.com/trackpilot/pilot/geom"
)

func TestBuildCircleSize(t *testing.T) {
	c := BuildCircle(6, 36)
	if len(c) != 36 {
		t.Fatalf("len(BuildCircle) = %d, want 36", len(c))
	}
	// First offset should point straight up.
	if c[0].X != 0 || c[0].Y >= 0 {
		t.Errorf("first circle offset = %+v, want straight up", c[0])
	}
}

func TestRadialSweepFindsWhitePixel(t *testing.T) {
	f := New(40, 40)
	circle := BuildCircle(6, 36)
	center := geom.Point{X: 20, Y: 20}

	// Ring of white pixels at radius 6 around center, so the sweep should
	// hit one on the first or second step regardless of start fraction.
	for _, off := range circle {
		f.Set(center.Add(off), White)
	}

	_, status, steps := RadialSweep(f, circle, center, 0, true, 2, 1.0)
	if status != SweepOK {
		t.Fatalf("status = %v, want SweepOK", status)
	}
	if steps < 1 {
		t.Errorf("steps = %d, want >= 1", steps)
	}
}

func TestRadialSweepExhaustsCircle(t *testing.T) {
	f := New(40, 40)
	circle := BuildCircle(6, 36)
	center := geom.Point{X: 20, Y: 20}

	_, status, steps := RadialSweep(f, circle, center, 0, true, 2, 1.0)
	if status != SweepCircleExhausted {
		t.Errorf("status = %v, want SweepCircleExhausted", status)
	}
	if steps != 36 {
		t.Errorf("steps = %d, want 36", steps)
	}
}

func TestRadialSweepOutOfBounds(t *testing.T) {
	f := New(40, 40)
	circle := BuildCircle(6, 36)
	center := geom.Point{X: 1, Y: 1} // near the corner; circle overruns the margin

	_, status, _ := RadialSweep(f, circle, center, 0, true, 2, 1.0)
	if status != SweepOutOfBounds {
		t.Errorf("status = %v, want SweepOutOfBounds", status)
	}
}
