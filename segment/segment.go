/*
DESCRIPTION
  segment.go implements adaptive threshold segmentation and the dead-zone
  fill applied before it.

LICENSE
  See LICENSE at the repository root.
*/

// Package segment implements adaptive binary segmentation of a grayscale
// frame into track (black) and non-track/edge (white), plus the 3x3/5x5
// morphological cleanup applied afterward. Grounded on
// original_source/code/segmentation.c.
package segment

import "github.com/trackpilot/pilot/frame"

// Config holds the tunable constants of the segmentation stage. The
// reference hardcodes T=110, L=4; spec.md §4.2 widens the plausible range to
// 30-110 for T and 4-10 for L and calls for these to be configurable.
type Config struct {
	// Threshold is the minimum absolute intensity delta that marks a pixel
	// as an edge.
	Threshold uint8
	// LookAhead is the pixel distance, both rightward and downward, used to
	// compute that delta.
	LookAhead uint16
	// DeadZone is the width, in pixels, of the left and right margin
	// force-filled with Floor before segmentation runs. Zero disables it.
	DeadZone uint16
	// Floor is the value written into the dead zone.
	Floor byte
}

// DefaultConfig returns the reference's constants.
func DefaultConfig() Config {
	return Config{Threshold: 110, LookAhead: 4, DeadZone: 0, Floor: frame.Black}
}

// FillDeadZone force-fills the left and right DeadZone-wide margins of f
// with Floor, in place. A zero DeadZone is a no-op.
func FillDeadZone(f *frame.Frame, cfg Config) {
	if cfg.DeadZone == 0 {
		return
	}
	w := int(cfg.DeadZone)
	if w > f.W {
		w = f.W
	}
	for y := 0; y < f.H; y++ {
		for x := 0; x < w; x++ {
			f.Pix[y*f.W+x] = cfg.Floor
			f.Pix[y*f.W+(f.W-1-x)] = cfg.Floor
		}
	}
}

// Segment binarizes f in place: a pixel is declared edge (255) iff its
// absolute intensity delta to the pixel LookAhead to its right, or to the
// pixel LookAhead below it, exceeds Threshold; otherwise it becomes black
// (0). Out-of-frame look-ahead neighbors are skipped, leaving the border
// black by default. Because both look-ahead directions only ever reference
// pixels not yet overwritten by this same pass (strictly greater x or y),
// segmentation is safe to run fully in place in a single raster pass,
// exactly as original_source/code/segmentation.c does.
func Segment(f *frame.Frame, cfg Config) {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			v := int(f.Pix[y*f.W+x])
			edge := false

			if x+int(cfg.LookAhead) < f.W {
				right := int(f.Pix[y*f.W+x+int(cfg.LookAhead)])
				if absInt(v-right) > int(cfg.Threshold) {
					edge = true
				}
			}
			if !edge && y+int(cfg.LookAhead) < f.H {
				below := int(f.Pix[(y+int(cfg.LookAhead))*f.W+x])
				if absInt(v-below) > int(cfg.Threshold) {
					edge = true
				}
			}

			if edge {
				f.Pix[y*f.W+x] = frame.White
			} else {
				f.Pix[y*f.W+x] = frame.Black
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
