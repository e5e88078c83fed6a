/*
DESCRIPTION
  digits.go holds the built-in 4x7 monospace digit bitmap and the
  number-rendering routine that scales and lays it out.

LICENSE
  See LICENSE at the repository root.
*/

package draw

import (
	"strconv"

	"github.com/trackpilot/pilot/frame"
	"github.com/trackpilot/pilot/geom"
)

const (
	digitWidth   = 4
	digitHeight  = 7
	digitSpacing = 4
)

// digitPixels is the 4x7 bitmap for each decimal digit, 1 meaning white and
// 0 meaning black, row-major. Transcribed from
// original_source/code/draw.c's digit_pixels table.
var digitPixels = [10][digitWidth * digitHeight]byte{
	{1, 1, 1, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 1, 1, 1},
	{0, 1, 1, 0,
		0, 0, 1, 0,
		0, 0, 1, 0,
		0, 0, 1, 0,
		0, 0, 1, 0,
		0, 0, 1, 0,
		1, 1, 1, 1},
	{1, 1, 1, 1,
		0, 0, 0, 1,
		0, 0, 0, 1,
		1, 1, 1, 1,
		1, 0, 0, 0,
		1, 0, 0, 0,
		1, 1, 1, 1},
	{1, 1, 1, 1,
		0, 0, 0, 1,
		0, 0, 0, 1,
		1, 1, 1, 1,
		0, 0, 0, 1,
		0, 0, 0, 1,
		1, 1, 1, 1},
	{1, 0, 0, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 1, 1, 1,
		0, 0, 0, 1,
		0, 0, 0, 1,
		0, 0, 0, 1},
	{1, 1, 1, 1,
		1, 0, 0, 0,
		1, 0, 0, 0,
		1, 1, 1, 1,
		0, 0, 0, 1,
		0, 0, 0, 1,
		1, 1, 1, 1},
	{1, 1, 1, 1,
		1, 0, 0, 0,
		1, 0, 0, 0,
		1, 1, 1, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 1, 1, 1},
	{1, 1, 1, 1,
		0, 0, 0, 1,
		0, 0, 0, 1,
		0, 0, 0, 1,
		0, 0, 0, 1,
		0, 0, 0, 1,
		0, 0, 0, 1},
	{1, 1, 1, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 1, 1, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 1, 1, 1},
	{1, 1, 1, 1,
		1, 0, 0, 1,
		1, 0, 0, 1,
		1, 1, 1, 1,
		0, 0, 0, 1,
		0, 0, 0, 1,
		1, 1, 1, 1},
}

// drawNumber renders n in decimal at (startX, startY), each digit scaled
// uniformly by scale and preceded by a gap of digitSpacing*scale columns
// that are left unwritten, clipped to the frame bounds. Grounded on draw_number in
// original_source/code/draw.c, generalized from its fixed scale=4 to a
// caller-supplied scale per spec.md §4.3.
func drawNumber(f *frame.Frame, n uint16, startX, startY uint16, scale byte) {
	digits := strconv.Itoa(int(n))
	s := int(scale)

	x := int(startX)
	for _, ch := range digits {
		d := int(ch - '0')
		x += digitSpacing * s

		for row := 0; row < digitHeight; row++ {
			for col := 0; col < digitWidth; col++ {
				var v byte
				if digitPixels[d][row*digitWidth+col] == 1 {
					v = frame.White
				}
				for sy := 0; sy < s; sy++ {
					py := int(startY) + row*s + sy
					if py < 0 || py >= f.H {
						continue
					}
					for sx := 0; sx < s; sx++ {
						px := x + col*s + sx
						if px < 0 || px >= f.W {
							continue
						}
						f.Set(geom.Point{X: uint16(px), Y: uint16(py)}, v)
					}
				}
			}
		}
		x += digitWidth * s
	}
}
