/*
DESCRIPTION
  sweep.go implements the precomputed offset circle and the radial-sweep
  contour tracer built from it.

LICENSE
  See LICENSE at the repository root.
*/

package frame

import (
	"math"

	"github.com/trackpilot/pilot/geom"
)

// SweepStatus reports how a RadialSweep call terminated.
type SweepStatus int

const (
	// SweepOK means a white pixel was found on the circle before any other
	// termination condition was reached.
	SweepOK SweepStatus = iota
	// SweepCircleExhausted means every offset on the circle was tried, from
	// the starting index all the way around, without a hit.
	SweepCircleExhausted
	// SweepOutOfBounds means the candidate point fell outside the frame's
	// safety margin.
	SweepOutOfBounds
	// SweepRadialLengthExceeded means maxSweepFrac of the circle's length was
	// walked in one direction without a hit, well short of a full revolution
	// — used to detect a track edge that has run off the visible frame.
	SweepRadialLengthExceeded
)

// BuildCircle returns n offset vectors evenly spaced around a circle of the
// given radius, starting due up (0,-radius) and proceeding clockwise, per
// spec.md §4.3's "radius 6, 36 points" sweep circle. Grounded on the
// precomputed offset table built in original_source/code/planner.c's
// radial_sweep setup.
func BuildCircle(radius int, n int) []geom.Vector {
	out := make([]geom.Vector, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x := float64(radius) * math.Sin(theta)
		y := -float64(radius) * math.Cos(theta)
		out[i] = geom.Vector{X: int16(math.Round(x)), Y: int16(math.Round(y))}
	}
	return out
}

// marginOK reports whether p lies at least margin pixels from every frame
// edge, the safety margin RadialSweep enforces before accepting a candidate.
func marginOK(f *Frame, p geom.Point, margin int) bool {
	x, y := int(p.X), int(p.Y)
	return x >= margin && y >= margin && x < f.W-margin && y < f.H-margin
}

// RadialSweep walks the circle of offsets from start, beginning at the
// index nearest sweepStart radians (measured clockwise from due up) and
// advancing clockwise if clockwise is true, counterclockwise otherwise,
// looking for the first offset landing on a white pixel within the frame's
// safety margin. On a hit it returns that point, SweepOK, and the number of
// circle steps taken; the caller is expected to resume the next sweep from
// a quarter-circle rotated index (handled by the planner, not here, since
// the rotation direction depends on which edge — left or right — is being
// traced).
//
// It fails with SweepOutOfBounds if a candidate point falls within the
// frame's margin-enforced border, SweepRadialLengthExceeded if
// maxSweepFrac*len(circle) steps pass with no hit, and SweepCircleExhausted
// if the entire circle is walked with no hit and no earlier failure.
// Grounded on original_source/code/planner.c's radial_sweep.
func RadialSweep(
	f *Frame,
	circle []geom.Vector,
	start geom.Point,
	sweepStart float64,
	clockwise bool,
	margin int,
	maxSweepFrac float64,
) (geom.Point, SweepStatus, int) {
	n := len(circle)
	if n == 0 {
		return geom.Point{}, SweepCircleExhausted, 0
	}

	startIdx := int(math.Round(sweepStart/(2*math.Pi)*float64(n))) % n
	if startIdx < 0 {
		startIdx += n
	}

	step := 1
	if !clockwise {
		step = -1
	}

	maxSteps := int(maxSweepFrac * float64(n))

	for i := 0; i < n; i++ {
		idx := ((startIdx+i*step)%n + n) % n
		cand := start.Add(circle[idx])

		if !f.InBounds(cand) {
			return geom.Point{}, SweepOutOfBounds, i + 1
		}
		if !marginOK(f, cand, margin) {
			return geom.Point{}, SweepOutOfBounds, i + 1
		}
		if maxSteps > 0 && i >= maxSteps {
			return geom.Point{}, SweepRadialLengthExceeded, i + 1
		}
		if f.At(cand) == White {
			return cand, SweepOK, i + 1
		}
	}

	return geom.Point{}, SweepCircleExhausted, n
}
