/*
DESCRIPTION
  morph.go implements 3x3 and 5x5 dilation and erosion over a binarized
  frame, sharing a buffered row-swap strategy so the input and output frame
  may be the same Frame value.

LICENSE
  See LICENSE at the repository root.
*/

package segment

import "github.com/trackpilot/pilot/frame"

// Dilate3 sets dst[x,y] to 255 if any pixel in src's 3x3 window centered on
// (x,y) is nonzero, else 0. src and dst may be the same Frame.
func Dilate3(dst, src *frame.Frame) { morph(dst, src, 1, true) }

// Erode3 sets dst[x,y] to 255 only if every pixel in src's 3x3 window
// centered on (x,y) equals 255, else 0. src and dst may be the same Frame.
func Erode3(dst, src *frame.Frame) { morph(dst, src, 1, false) }

// Dilate5 is Dilate3 over a 5x5 window.
func Dilate5(dst, src *frame.Frame) { morph(dst, src, 2, true) }

// Erode5 is Erode3 over a 5x5 window.
func Erode5(dst, src *frame.Frame) { morph(dst, src, 2, false) }

// morph runs a dilate (dilate=true) or erode (dilate=false) over a
// (2*radius+1)^2 window. It copies every source row into rows up front, so
// all reads of src happen before any write to dst, and dst and src aliasing
// the same underlying Frame never reads a pixel morph itself already
// overwrote — the row-swap property spec.md §4.2 requires dilate/erode to
// preserve. Grounded in structure on segment.Segment's single forward
// raster pass and on the frame package's row-major Pix layout.
func morph(dst, src *frame.Frame, radius int, dilate bool) {
	w, h := src.W, src.H

	// rows holds a full copy of src, read before any of it is overwritten in
	// dst.
	rows := make([][]byte, h)
	for y := 0; y < h; y++ {
		row := make([]byte, w)
		copy(row, src.Pix[y*w:(y+1)*w])
		rows[y] = row
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var out byte
			if dilate {
				out = 0
				if anyNonzero(rows, w, h, x, y, radius) {
					out = frame.White
				}
			} else {
				out = frame.White
				if !allWhite(rows, w, h, x, y, radius) {
					out = 0
				}
			}
			dst.Pix[y*w+x] = out
		}
	}
}

func anyNonzero(rows [][]byte, w, h, x, y, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			if rows[ny][nx] != 0 {
				return true
			}
		}
	}
	return false
}

func allWhite(rows [][]byte, w, h, x, y, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			return false
		}
		for dx := -radius; dx <= radius; dx++ {
			nx := x + dx
			if nx < 0 || nx >= w {
				return false
			}
			if rows[ny][nx] != frame.White {
				return false
			}
		}
	}
	return true
}
