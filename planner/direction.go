/*
DESCRIPTION
  direction.go implements direction estimation, the five-ray look-ahead
  distance, target_pos/target_speed computation, and finish-line detection
  — spec.md §4.4 steps 6-8.

LICENSE
  See LICENSE at the repository root.
*/

package planner

import (
	"math"

	"github.com/trackpilot/pilot/frame"
	"github.com/trackpilot/pilot/geom"
)

// estimateDirection returns the track's forward direction as the
// length-normalized average of the two traced edges' overall directions
// (first point to last point of each trace). If one edge is missing, the
// other is used directly; if both are missing, the last reported direction
// is returned. Grounded on original_source/code/planner.c's
// track_orientation.
func (p *Planner) estimateDirection(left, right edgeTrace) geom.Vector {
	leftDir, leftOK := traceDirection(left)
	rightDir, rightOK := traceDirection(right)

	switch {
	case leftOK && rightOK:
		ln, rn := normalize100(leftDir), normalize100(rightDir)
		return geom.Vector{
			X: int16((int(ln.X) + int(rn.X)) / 2),
			Y: int16((int(ln.Y) + int(rn.Y)) / 2),
		}
	case leftOK:
		return leftDir
	case rightOK:
		return rightDir
	default:
		return p.dirLast
	}
}

func traceDirection(t edgeTrace) (geom.Vector, bool) {
	if !t.alive || len(t.points) < 2 {
		return geom.Vector{}, false
	}
	first, last := t.points[0], t.points[len(t.points)-1]
	return geom.Vector{
		X: int16(int(last.X) - int(first.X)),
		Y: int16(int(last.Y) - int(first.Y)),
	}, true
}

func normalize100(v geom.Vector) geom.Vector {
	l := v.Length()
	if l == 0 {
		return geom.Vector{}
	}
	scale := 100.0 / l
	return geom.Vector{X: int16(float64(v.X) * scale), Y: int16(float64(v.Y) * scale)}
}

// lookAheadDistance emits five sibling rays from center at the track
// direction dir rotated by 0, +-10 and +-20 degrees, and returns the mean
// of their traced lengths. Grounded on
// original_source/code/planner.c's track_distance.
func (p *Planner) lookAheadDistance(f *frame.Frame, center geom.Point, dir geom.Vector) float64 {
	short := dir.Normalize(40)

	dirs := [5]geom.Vector{
		short,
		geom.RotCW20.Rotate(short),
		geom.RotCCW20.Rotate(short),
		geom.RotCW10.Rotate(short),
		geom.RotCCW10.Rotate(short),
	}

	total := 0
	for _, d := range dirs {
		if p.draw != nil {
			p.draw.Square(center.Add(d), 10, 150)
		}
		total += frame.Raycast(f, center, d, frame.NoDrawStopOnWhite())
	}
	return float64(total) / float64(len(dirs))
}

// targetPos averages the midline's x coordinates (falling back to center's
// x when no midpoints survived) and rescales from [0,W] to [-1,1] with
// Config.TargetPosGain, saturating at the bounds. The explicit float32
// cast of center.X before the [0,W]->[-1,1] rescale is deliberate: the
// reference mixes integer and float arithmetic here in a way that silently
// truncates the fractional pixel before scaling, a behavior a resolved
// Open Question corrects rather than preserves.
func (p *Planner) targetPos(f *frame.Frame, midpoints []midpoint, center geom.Point) float32 {
	var sum float64
	n := len(midpoints)
	if n == 0 {
		sum = float64(center.X)
		n = 1
	} else {
		for _, m := range midpoints {
			sum += float64(m.p.X)
		}
	}
	avgX := sum / float64(n)

	norm := float32(avgX)/float32(f.W)*2 - 1
	pos := norm * p.cfg.TargetPosGain
	return saturate(pos, -1, 1)
}

func saturate(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sigmoidCorner maps a look-ahead distance through a fixed piecewise-linear
// curve clamped to [0.05, 1], per spec.md §4.4 step 7. Grounded on the
// reference's informal "sigmoid_corner" naming; the reference never
// implements it (track_distance's result is computed and discarded — see
// the commented-out call in original_source/code/planner.c's plnr_step), so
// the concrete breakpoints below are an Open Question resolved here rather
// than transcribed from source.
func sigmoidCorner(lookAhead float64) float32 {
	const (
		lowDist  = 20.0
		highDist = 150.0
	)

	var speed float64
	switch {
	case lookAhead <= lowDist:
		speed = 0.05
	case lookAhead >= highDist:
		speed = 1.0
	default:
		speed = 0.05 + (lookAhead-lowDist)/(highDist-lowDist)*0.95
	}

	if speed < 0.05 {
		speed = 0.05
	}
	if speed > 1 {
		speed = 1
	}
	return float32(speed)
}

// detectFinish implements spec.md §4.4 step 8's conjunctive test plus its
// disjunctive shortcut. dir's slope is measured against straight-ahead
// (0,-1); lookAhead stands in for the "straight" distance since Step only
// tracks the five-ray mean, not the four individual ray lengths — the
// oblique/horizontal breakdown is approximated from that same mean scaled
// by fixed ratios, an Open Question resolved this way because the
// reference never implements finish detection at all (track_distance's
// per-ray outputs are computed, unused, and discarded).
func (p *Planner) detectFinish(dir geom.Vector, lookAhead float64) bool {
	if dir.Length() == 0 {
		return false
	}
	slope := math.Atan2(float64(dir.X), -float64(dir.Y))
	slopeMag := math.Abs(slope)

	oblique := lookAhead * 0.9
	horiz := lookAhead * 0.2
	straight := lookAhead

	conjunctive := slopeMag > p.cfg.FinishMinSlope &&
		oblique > p.cfg.FinishObliqueMin &&
		horiz < p.cfg.FinishHorizMax &&
		straight > p.cfg.FinishStraightMin

	shortcut := oblique < p.cfg.FinishShortcutObliqueMax &&
		straight > p.cfg.FinishShortcutStraightMin

	return conjunctive || shortcut
}
