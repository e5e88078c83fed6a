/*
DESCRIPTION
  frame.go provides the Frame type: a dense row-major grayscale frame with
  compile-configured width/height, plus bounds-checked pixel access.

LICENSE
  See LICENSE at the repository root.
*/

// Package frame provides the Frame pixel buffer and the three geometric
// primitives the planner is built from: a Bresenham walker with a pluggable
// per-pixel Visitor, a border-clipped raycast, and radial-sweep contour
// tracing over a precomputed circle of offsets. Grounded on
// original_source/code/trajection.c (shoot_ray/bresenham, edge-stretch
// math) and the radial_sweep call sites in original_source/code/planner.c.
package frame

import "github.com/trackpilot/pilot/geom"

// Pixel values used throughout segmentation and drawing.
const (
	Black = 0
	White = 255
)

// Frame is a dense row-major W*H array of grayscale intensities. The zero
// value is not usable; construct with New.
type Frame struct {
	W, H int
	Pix  []byte
}

// New returns a Frame of the given dimensions, all pixels black.
func New(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]byte, w*h)}
}

// InBounds reports whether p lies within [0,W) x [0,H). All drawing and
// tracing operations reject coordinates outside this range rather than
// wrapping, per the data model's alignment/bounds invariant.
func (f *Frame) InBounds(p geom.Point) bool {
	return int(p.X) < f.W && int(p.Y) < f.H
}

// At returns the pixel at p. Callers must check InBounds first: At does no
// bounds check of its own, so an X past the right edge reads from a
// following row, and only an index past the end of Pix panics.
func (f *Frame) At(p geom.Point) byte {
	return f.Pix[int(p.Y)*f.W+int(p.X)]
}

// Set writes v to the pixel at p.
func (f *Frame) Set(p geom.Point, v byte) {
	f.Pix[int(p.Y)*f.W+int(p.X)] = v
}

// Clone returns a deep copy of f, used by the processor pipeline to hold a
// stack-local scratch frame distinct from the shared processed-frame buffer.
func (f *Frame) Clone() *Frame {
	cp := make([]byte, len(f.Pix))
	copy(cp, f.Pix)
	return &Frame{W: f.W, H: f.H, Pix: cp}
}

// CopyFrom overwrites f's pixels with src's. Panics if dimensions differ —
// a frame-size mismatch is a fatal, not recoverable, condition per spec.md §7.
func (f *Frame) CopyFrom(src *Frame) {
	if f.W != src.W || f.H != src.H {
		panic("frame: size mismatch in CopyFrom")
	}
	copy(f.Pix, src.Pix)
}
