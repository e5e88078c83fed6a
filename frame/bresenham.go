/*
DESCRIPTION
  bresenham.go implements the Bresenham line walker with a pluggable
  per-pixel Visitor, and the border-clipped raycast built on top of it.

LICENSE
  See LICENSE at the repository root.
*/

package frame

import "github.com/trackpilot/pilot/geom"

// Visitor is invoked once per pixel visited by Bresenham or Raycast, in
// traversal order. Returning true stops the traversal early. Variants are
// provided below for the four standard behaviors described in spec.md
// §4.1; Custom behavior is any Visitor value built by the caller.
type Visitor func(f *Frame, p geom.Point) (stop bool)

// DrawLightStopOnWhite enqueues a gray 120 pixel at every non-white point
// and stops as soon as a white pixel is reached. enqueue is normally
// draw.Queue.Pixel, passed in rather than imported directly so this package
// never depends on draw (draw depends on frame, not the reverse).
func DrawLightStopOnWhite(enqueue func(p geom.Point, gray byte)) Visitor {
	return func(f *Frame, p geom.Point) bool {
		if f.At(p) != White {
			enqueue(p, 120)
			return false
		}
		return true
	}
}

// DrawLightNoStop enqueues a gray 120 pixel at every point and never stops
// early.
func DrawLightNoStop(enqueue func(p geom.Point, gray byte)) Visitor {
	return func(f *Frame, p geom.Point) bool {
		enqueue(p, 120)
		return false
	}
}

// DrawPermanentNoStop permanently sets every visited pixel to white and
// never stops early.
func DrawPermanentNoStop() Visitor {
	return func(f *Frame, p geom.Point) bool {
		f.Set(p, White)
		return false
	}
}

// NoDrawStopOnWhite draws nothing and stops as soon as a white pixel is
// reached.
func NoDrawStopOnWhite() Visitor {
	return func(f *Frame, p geom.Point) bool {
		return f.At(p) == White
	}
}

// Bresenham traces an integer line from start to end, invoking visit once
// per pixel in order. It returns the number of pixels visited. If either
// endpoint is out of bounds it fails silently, returning 0, per spec.md
// §4.1. start==end visits exactly that one pixel and returns 1.
func Bresenham(f *Frame, start, end geom.Point, visit Visitor) int {
	if !f.InBounds(start) || !f.InBounds(end) {
		return 0
	}

	x0, y0 := int(start.X), int(start.Y)
	x1, y1 := int(end.X), int(end.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	n := 0
	x, y := x0, y0
	for {
		p := geom.Point{X: uint16(x), Y: uint16(y)}
		n++
		if visit(f, p) {
			break
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return n
}

// Raycast computes the smallest positive scalar k such that start + k*dir
// lies exactly on the nearest frame border, then delegates to Bresenham
// with that endpoint. A direction with any zero component still terminates
// exactly at the border (e.g. {0,-1} walks straight up to y=0), matching
// spec.md §8's testable property. Grounded on the edge-stretch computation
// in original_source/code/trajection.c's shoot_ray.
func Raycast(f *Frame, start geom.Point, dir geom.Vector, visit Visitor) int {
	if !f.InBounds(start) {
		return 0
	}
	if dir.X == 0 && dir.Y == 0 {
		return 0
	}

	const inf = 1 << 30

	tx := inf
	switch {
	case dir.X < 0:
		tx = int(start.X) * 1000 / -int(dir.X)
	case dir.X > 0:
		tx = (f.W - 1 - int(start.X)) * 1000 / int(dir.X)
	}

	ty := inf
	switch {
	case dir.Y < 0:
		ty = int(start.Y) * 1000 / -int(dir.Y)
	case dir.Y > 0:
		ty = (f.H - 1 - int(start.Y)) * 1000 / int(dir.Y)
	}

	t := tx
	if ty < t {
		t = ty
	}

	ex := int(start.X) + (int(dir.X)*t)/1000
	ey := int(start.Y) + (int(dir.Y)*t)/1000
	ex = clamp(ex, 0, f.W-1)
	ey = clamp(ey, 0, f.H-1)

	return Bresenham(f, start, geom.Point{X: uint16(ex), Y: uint16(ey)}, visit)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
