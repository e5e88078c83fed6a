package frame

import (
	"testing"

	"github.com/trackpilot/pilot/geom"
)

func TestBresenhamOutOfBoundsReturnsZero(t *testing.T) {
	f := New(10, 10)
	n := Bresenham(f, geom.Point{X: 0, Y: 0}, geom.Point{X: 20, Y: 20}, func(*Frame, geom.Point) bool { return false })
	if n != 0 {
		t.Errorf("Bresenham with out-of-bounds end = %d, want 0", n)
	}
}

func TestBresenhamSamePointVisitsOnce(t *testing.T) {
	f := New(10, 10)
	n := Bresenham(f, geom.Point{X: 4, Y: 4}, geom.Point{X: 4, Y: 4}, func(*Frame, geom.Point) bool { return false })
	if n != 1 {
		t.Errorf("Bresenham(p, p) visited %d pixels, want 1", n)
	}
}

func TestBresenhamHorizontalLine(t *testing.T) {
	f := New(10, 10)
	var visited []geom.Point
	Bresenham(f, geom.Point{X: 0, Y: 5}, geom.Point{X: 9, Y: 5}, func(_ *Frame, p geom.Point) bool {
		visited = append(visited, p)
		return false
	})
	if len(visited) != 10 {
		t.Fatalf("visited %d pixels, want 10", len(visited))
	}
	for i, p := range visited {
		if p.X != uint16(i) || p.Y != 5 {
			t.Errorf("visited[%d] = %+v, want {%d,5}", i, p, i)
		}
	}
}

func TestBresenhamEarlyStop(t *testing.T) {
	f := New(10, 10)
	n := Bresenham(f, geom.Point{X: 0, Y: 0}, geom.Point{X: 9, Y: 0}, func(_ *Frame, p geom.Point) bool {
		return p.X == 3
	})
	if n != 4 {
		t.Errorf("Bresenham stopped after %d pixels, want 4", n)
	}
}

func TestRaycastReachesBorder(t *testing.T) {
	f := New(10, 10)
	var last geom.Point
	Raycast(f, geom.Point{X: 5, Y: 5}, geom.Vector{X: 0, Y: -1}, func(_ *Frame, p geom.Point) bool {
		last = p
		return false
	})
	if last.Y != 0 {
		t.Errorf("Raycast straight up ended at y=%d, want 0", last.Y)
	}
}

func TestRaycastOutOfBoundsStart(t *testing.T) {
	f := New(10, 10)
	n := Raycast(f, geom.Point{X: 50, Y: 50}, geom.Vector{X: 0, Y: -1}, func(*Frame, geom.Point) bool { return false })
	if n != 0 {
		t.Errorf("Raycast from out-of-bounds start = %d, want 0", n)
	}
}

func TestDrawLightStopOnWhite(t *testing.T) {
	f := New(5, 5)
	f.Set(geom.Point{X: 2, Y: 0}, White)

	var enqueued []geom.Point
	enqueue := func(p geom.Point, gray byte) { enqueued = append(enqueued, p) }

	n := Bresenham(f, geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, DrawLightStopOnWhite(enqueue))
	if n != 3 {
		t.Errorf("visited %d pixels before white, want 3", n)
	}
	if len(enqueued) != 2 {
		t.Errorf("enqueued %d pixels, want 2 (before the white one)", len(enqueued))
	}
}
