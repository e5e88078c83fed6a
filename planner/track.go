/*
DESCRIPTION
  track.go implements the bottom-row center scan, the upward centerline
  climb, and left/right edge localization — spec.md §4.4 steps 1-3.

LICENSE
  See LICENSE at the repository root.
*/

package planner

import (
	"github.com/trackpilot/pilot/frame"
	"github.com/trackpilot/pilot/geom"
	"github.com/trackpilot/pilot/ring"
)

// filledU16 returns the contents of centers written so far, most recent
// first (Count() of them, walking back from LastIndex()), excluding any
// zero-initialized slots the ring has not been written into yet. Medianing
// over this instead of the full Slice() keeps the first CenterHistory-1
// frames from being pulled toward 0 by unfilled history.
func filledU16(centers *ring.Buffer[uint16]) []uint16 {
	n := centers.Count()
	vals := make([]uint16, n)
	for i := 0; i < n; i++ {
		vals[i] = centers.At(centers.LastIndex() - i)
	}
	return vals
}

// trackCenterBottom finds the longest contiguous run of black pixels in
// row y and returns its midpoint, falling back to W/2 if the row has no
// black pixels at all. Grounded on original_source/code/planner.c's
// track_center, with its region_start off-by-one corrected: a reset after
// hitting a white pixel at x starts the next candidate region at x+1, not
// x (the reference's region_start=x double-counts the white pixel as the
// first element of the following black run's length accounting). The
// result is folded into a short median history to damp single-frame noise,
// same as the reference's track_centers ring.
func (p *Planner) trackCenterBottom(f *frame.Frame, y int) geom.Point {
	var (
		regionStart        = 0
		regionSize         = 0
		largestStart       = 0
		largestSize        = 0
	)

	for x := 0; x < f.W; x++ {
		if f.Pix[y*f.W+x] == frame.Black {
			regionSize++
		} else {
			if regionSize > largestSize {
				largestStart = regionStart
				largestSize = regionSize
			}
			regionStart = x + 1
			regionSize = 0
		}
	}
	if regionSize > largestSize {
		largestStart = regionStart
		largestSize = regionSize
	}

	var newCenter uint16
	if largestSize == 0 {
		newCenter = uint16(f.W / 2)
	} else {
		newCenter = uint16(largestStart + largestSize/2)
	}

	p.centers.Add(newCenter)
	medianX := medianU16(filledU16(p.centers))

	return geom.Point{X: medianX, Y: uint16(y)}
}

// medianU16 returns the median of vals using insertion sort (not
// sort.Slice) and the reference's exact even-length tie-break: the average
// of the two central elements, truncated by integer division. Kept
// deliberately un-"fixed" per a resolved Open Question — changing the
// tie-break would shift every historical centerline by up to half a pixel
// in a way the reference's tuned constants were never validated against.
func medianU16(vals []uint16) uint16 {
	cpy := append([]uint16(nil), vals...)
	insertionSortU16(cpy)

	n := len(cpy)
	if n%2 == 0 {
		return (cpy[(n-1)/2] + cpy[(n-1)/2+1]) / 2
	}
	return cpy[n/2]
}

func insertionSortU16(vals []uint16) {
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i - 1
		for j >= 0 && vals[j] > v {
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = v
	}
}

// climbCenterline steps upward from bottomCenter in fixed VerticalStep
// increments, re-scanning each row's longest black run anchored near the
// previous accepted x, for up to MaxCenters iterations. It stops early once
// an upward raycast from the last accepted center terminates in fewer than
// HeightLimitMultiple*VerticalStep pixels — signalling a wall is too close
// to continue climbing. Grounded on spec.md §4.4 step 2; the reference has
// no equivalent multi-step climb (it works from a single fixed row), so
// this loop structure is original to the widened height model but reuses
// track_center's longest-run scan at each row.
func (p *Planner) climbCenterline(f *frame.Frame, bottomCenter geom.Point) geom.Point {
	current := bottomCenter
	anchor := current.X

	for i := 0; i < p.cfg.MaxCenters; i++ {
		nextY := int(current.Y) - p.cfg.VerticalStep
		if nextY < 0 {
			break
		}

		n := frame.Raycast(f, current, geom.Vector{X: 0, Y: -1}, frame.NoDrawStopOnWhite())
		if n < p.cfg.HeightLimitMultiple*p.cfg.VerticalStep {
			break
		}

		row := anchoredRowCenter(f, nextY, anchor)
		current = geom.Point{X: row, Y: uint16(nextY)}
		anchor = row
	}

	return current
}

// anchoredRowCenter finds the longest black run in row y; among runs tied
// for longest, the one whose midpoint is closest to anchor wins.
func anchoredRowCenter(f *frame.Frame, y int, anchor uint16) uint16 {
	type run struct{ start, size int }
	var runs []run

	start, size := 0, 0
	for x := 0; x < f.W; x++ {
		if f.Pix[y*f.W+x] == frame.Black {
			size++
		} else {
			if size > 0 {
				runs = append(runs, run{start, size})
			}
			start = x + 1
			size = 0
		}
	}
	if size > 0 {
		runs = append(runs, run{start, size})
	}

	if len(runs) == 0 {
		return uint16(f.W / 2)
	}

	largest := 0
	for _, r := range runs {
		if r.size > largest {
			largest = r.size
		}
	}

	best := runs[0]
	bestDist := -1
	for _, r := range runs {
		if r.size != largest {
			continue
		}
		mid := r.start + r.size/2
		d := mid - int(anchor)
		if d < 0 {
			d = -d
		}
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = r
		}
	}
	return uint16(best.start + best.size/2)
}

// localizeEdges scans left and right from center along its row until a
// white pixel is hit or the scanned distance exceeds TrackWidth/2,
// clipping results to the frame bounds. Grounded on
// original_source/code/planner.c's track_edge, generalized from its
// unbounded while-loop (which relies on edge_x wrapping past 0 or W on a
// uint16) into an explicit distance bound, per spec.md §4.4 step 3.
func (p *Planner) localizeEdges(f *frame.Frame, center geom.Point) (left, right geom.Point) {
	maxDist := p.cfg.TrackWidth / 2

	left = scanEdge(f, center, -1, maxDist)
	right = scanEdge(f, center, 1, maxDist)
	return left, right
}

func scanEdge(f *frame.Frame, center geom.Point, delta int, maxDist int) geom.Point {
	x := int(center.X)
	y := int(center.Y)

	for dist := 0; dist <= maxDist; dist++ {
		if x < 0 {
			x = 0
			break
		}
		if x >= f.W {
			x = f.W - 1
			break
		}
		if f.Pix[y*f.W+x] == frame.White {
			break
		}
		x += delta
	}

	x = clampInt(x, 0, f.W-1)
	return geom.Point{X: uint16(x), Y: uint16(y)}
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
