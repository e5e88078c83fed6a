/*
DESCRIPTION
  trace.go implements radial-sweep edge tracing and midline construction —
  spec.md §4.4 steps 4-5.

LICENSE
  See LICENSE at the repository root.
*/

package planner

import (
	"math"

	"github.com/trackpilot/pilot/frame"
	"github.com/trackpilot/pilot/geom"
)

// edgeTrace holds the points traced along one side of the track, in order
// from the initial edge localization outward.
type edgeTrace struct {
	points []geom.Point
	alive  bool
}

// traceEdge repeatedly runs RadialSweep from start, following the track
// boundary for up to EdgeTraceMaxPoints iterations. left selects
// counter-clockwise sweeping (the left edge per spec.md §4.4 step 4); the
// right edge sweeps clockwise. Each iteration's sweep-start fraction is
// derived from the normal of the previous step vector so tracing follows
// curvature, and the edge is declared diverged once its x drifts more than
// DivergeFrac*TrackWidth from the centerline's x. Grounded on
// original_source/code/planner.c's track_edge_dir, widened there from a
// single-shot radial_sweep call into the multi-point trace spec.md
// describes.
func (p *Planner) traceEdge(f *frame.Frame, start, center geom.Point, left bool) edgeTrace {
	t := edgeTrace{points: []geom.Point{start}, alive: true}

	if f.Pix[int(start.Y)*f.W+int(start.X)] != frame.White {
		t.alive = false
		return t
	}

	sweepStart := 0.0
	cur := start
	centerX := float64(center.X)
	diverge := p.cfg.DivergeFrac * float64(p.cfg.TrackWidth)

	for i := 0; i < p.cfg.EdgeTraceMaxPoints; i++ {
		next, status, _ := frame.RadialSweep(f, p.circle, cur, sweepStart, !left, p.cfg.SweepMargin, p.cfg.SweepMaxFrac)
		if status != frame.SweepOK {
			break
		}

		step := geom.Vector{X: int16(int(next.X) - int(cur.X)), Y: int16(int(next.Y) - int(cur.Y))}
		cur = next
		t.points = append(t.points, cur)

		if math.Abs(float64(cur.X)-centerX) > diverge {
			t.alive = false
			return t
		}

		// Rotate the sweep-start direction by +/-90 degrees (a quarter of
		// the circle) from the normal of the step just taken, so the next
		// sweep begins from where curvature suggests the boundary
		// continues, per spec.md §4.4 step 4.
		normal := math.Atan2(float64(step.Y), float64(step.X))
		if left {
			sweepStart = normal - math.Pi/2
		} else {
			sweepStart = normal + math.Pi/2
		}
	}

	return t
}

// midpoint is one point on the constructed centerline, built either from a
// pair of live edges or a single live edge extrapolated forward.
type midpoint struct {
	p geom.Point
}

// buildMidline walks the two traces index by index and emits a midpoint for
// as long as at least one edge is alive, per spec.md §4.4 step 5. When only
// one edge is alive at index i, a short forward ray is cast from that edge
// in a direction offset from the sweep-start direction, clamped to
// TrackWidth/2, and the midpoint is placed halfway along the hit.
func (p *Planner) buildMidline(f *frame.Frame, left, right edgeTrace) []midpoint {
	var out []midpoint

	n := len(left.points)
	if len(right.points) > n {
		n = len(right.points)
	}

	for i := 0; i < n; i++ {
		haveLeft := i < len(left.points)
		haveRight := i < len(right.points)

		switch {
		case haveLeft && haveRight:
			l, r := left.points[i], right.points[i]
			out = append(out, midpoint{geom.Point{
				X: uint16((int(l.X) + int(r.X)) / 2),
				Y: uint16((int(l.Y) + int(r.Y)) / 2),
			}})
		case haveLeft:
			out = append(out, p.extrapolateMidpoint(f, left.points[i], true))
		case haveRight:
			out = append(out, p.extrapolateMidpoint(f, right.points[i], false))
		default:
			return out
		}

		if !left.alive && !right.alive {
			break
		}
	}

	return out
}

func (p *Planner) extrapolateMidpoint(f *frame.Frame, edge geom.Point, left bool) midpoint {
	const frac = 0.25
	angle := math.Pi / 2
	if !left {
		angle = -math.Pi / 2
	}
	angle += frac * math.Pi

	dir := geom.Vector{
		X: int16(math.Round(40 * math.Cos(angle))),
		Y: int16(math.Round(40 * math.Sin(angle))),
	}

	hitLen := frame.Raycast(f, edge, dir, frame.NoDrawStopOnWhite())
	if hitLen > p.cfg.TrackWidth/2 {
		hitLen = p.cfg.TrackWidth / 2
	}

	half := float64(hitLen) / 2
	l := dir.Length()
	if l == 0 {
		return midpoint{edge}
	}
	return midpoint{geom.Point{
		X: uint16(float64(edge.X) + half*float64(dir.X)/l),
		Y: uint16(float64(edge.Y) + half*float64(dir.Y)/l),
	}}
}
