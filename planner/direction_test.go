package planner

import (
	"testing"

	"github.com/trackpilot/pilot/frame"
	"github.com/trackpilot/pilot/geom"
)

func TestSigmoidCornerClampsLowAndHigh(t *testing.T) {
	if got := sigmoidCorner(0); got != 0.05 {
		t.Errorf("sigmoidCorner(0) = %v, want 0.05", got)
	}
	if got := sigmoidCorner(1000); got != 1.0 {
		t.Errorf("sigmoidCorner(1000) = %v, want 1.0", got)
	}
}

func TestSigmoidCornerMidpoint(t *testing.T) {
	got := sigmoidCorner(85) // halfway between 20 and 150
	if got < 0.5 || got > 0.53 {
		t.Errorf("sigmoidCorner(85) = %v, want ~0.5", got)
	}
}

func TestTraceDirectionRequiresTwoPoints(t *testing.T) {
	_, ok := traceDirection(edgeTrace{alive: true, points: []geom.Point{{X: 1, Y: 1}}})
	if ok {
		t.Errorf("traceDirection with one point reported ok")
	}
}

func TestTraceDirectionDeadTraceFails(t *testing.T) {
	_, ok := traceDirection(edgeTrace{alive: false, points: []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}})
	if ok {
		t.Errorf("traceDirection on a dead trace reported ok")
	}
}

func TestEstimateDirectionFallsBackWhenBothDead(t *testing.T) {
	p := New(nopLogger{}, nil, testConfig(), 20, 20)
	p.dirLast = geom.Vector{X: 1, Y: -2}

	got := p.estimateDirection(edgeTrace{alive: false}, edgeTrace{alive: false})
	if got != p.dirLast {
		t.Errorf("estimateDirection = %+v, want last direction %+v", got, p.dirLast)
	}
}

func TestTargetPosSaturatesAtBounds(t *testing.T) {
	p := New(nopLogger{}, nil, testConfig(), 20, 20)
	f := frame.New(20, 20)

	// All midpoints pinned at the far right edge push targetPos to +1.
	mids := []midpoint{{geom.Point{X: 19, Y: 10}}, {geom.Point{X: 19, Y: 10}}}
	got := p.targetPos(f, mids, geom.Point{X: 10, Y: 10})
	if got != 1 {
		t.Errorf("targetPos = %v, want saturated at 1", got)
	}
}

func TestTargetPosFallsBackToCenterWithNoMidpoints(t *testing.T) {
	p := New(nopLogger{}, nil, testConfig(), 20, 20)
	f := frame.New(20, 20)

	got := p.targetPos(f, nil, geom.Point{X: 10, Y: 10})
	if got < -0.1 || got > 0.1 {
		t.Errorf("targetPos with no midpoints and a centered center = %v, want ~0", got)
	}
}

func TestDetectFinishZeroDirectionNeverFinishes(t *testing.T) {
	p := New(nopLogger{}, nil, testConfig(), 20, 20)
	if p.detectFinish(geom.Vector{}, 1000) {
		t.Errorf("detectFinish reported true with a zero direction vector")
	}
}
