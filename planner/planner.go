/*
DESCRIPTION
  planner.go defines the Planner type, its configuration, and Step, the
  per-frame entry point that runs the nine-stage pipeline described in
  spec.md §4.4 and returns a Plan record.

LICENSE
  See LICENSE at the repository root.
*/

// Package planner consumes a segmented frame and produces a Plan: a lateral
// target position, a target speed, and a latched finish-line flag. Grounded
// on original_source/code/planner.c, generalized from its hardcoded
// TCO_FRAME_WIDTH/HEIGHT constants and single fixed track_center_count=4
// history into configurable fields, and corrected per two deliberate
// deviations recorded in DESIGN.md (the longest-run off-by-one and the
// float/int cast at target_pos rescale).
package planner

import (
	"github.com/trackpilot/pilot/draw"
	"github.com/trackpilot/pilot/frame"
	"github.com/trackpilot/pilot/geom"
	"github.com/trackpilot/pilot/internal/xlog"
	"github.com/trackpilot/pilot/ring"
)

// State is the planner's top-level state machine, per spec.md §4.4.
type State int

const (
	Searching State = iota
	Following
	FinishLatched
)

func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case Following:
		return "following"
	case FinishLatched:
		return "finish-latched"
	default:
		return "unknown"
	}
}

// Plan is one published planning result, matching the shared PLAN region's
// layout (spec.md §6).
type Plan struct {
	TargetPos   float32
	TargetSpeed float32
	LapOfHonor  uint8
	FrameID     uint32
}

// Config holds every tunable constant of the planning pipeline. Field
// names and defaults follow the reference's hardcoded constants, widened
// into configuration per spec.md §4.4.
type Config struct {
	// BottomRowFrac locates the fixed bottom scan row as a fraction of H.
	BottomRowFrac float64
	// VerticalStep is the row spacing of the upward centerline climb.
	VerticalStep int
	// MaxCenters bounds the number of upward centerline iterations.
	MaxCenters int
	// HeightLimitMultiple: the climb stops early once an upward raycast
	// from the last accepted center is shorter than this multiple of
	// VerticalStep.
	HeightLimitMultiple int
	// TrackWidth bounds edge-localization and edge-divergence checks.
	TrackWidth int
	// DivergeFrac is the fraction of TrackWidth beyond which a traced edge
	// is declared diverged.
	DivergeFrac float64
	// EdgeTraceMaxPoints bounds radial-sweep edge tracing iterations.
	EdgeTraceMaxPoints int
	// SweepMargin is the safety margin enforced by radial sweep.
	SweepMargin int
	// SweepMaxFrac is the max fraction of the circle walked per sweep step
	// before declaring the radial length exceeded.
	SweepMaxFrac float64
	// CenterHistory is the depth of the centerline-x median history.
	CenterHistory int
	// TargetPosGain rescales the averaged midline x from [0,W] to [-1,1].
	TargetPosGain float32
	// SpeedWindow is the width of the look-ahead moving-average window.
	SpeedWindow int
	// FinishMinSlope, FinishObliqueMin, FinishHorizMax, FinishStraightMin,
	// FinishShortcutObliqueMax and FinishShortcutStraightMin parameterize
	// finish-line detection (spec.md §4.4 step 8).
	FinishMinSlope            float64
	FinishObliqueMin          float64
	FinishHorizMax            float64
	FinishStraightMin         float64
	FinishShortcutObliqueMax  float64
	FinishShortcutStraightMin float64
}

// DefaultConfig returns the reference's constants, widened where spec.md
// leaves a range (e.g. track_width ~300px) and otherwise chosen to match
// original_source/code/planner.c's literals (history depth 4).
func DefaultConfig() Config {
	return Config{
		BottomRowFrac:             0.43,
		VerticalStep:              8,
		MaxCenters:                192,
		HeightLimitMultiple:       2,
		TrackWidth:                300,
		DivergeFrac:               0.7,
		EdgeTraceMaxPoints:        64,
		SweepMargin:               2,
		SweepMaxFrac:              0.5,
		CenterHistory:             4,
		TargetPosGain:             4,
		SpeedWindow:               4,
		FinishMinSlope:            0.3,
		FinishObliqueMin:          120,
		FinishHorizMax:            40,
		FinishStraightMin:         150,
		FinishShortcutObliqueMax:  20,
		FinishShortcutStraightMin: 180,
	}
}

// Planner holds the per-process state carried between Step calls: the
// centerline history, the last accepted direction and center (used as
// fallbacks), the speed look-ahead window, and the latched state machine.
type Planner struct {
	log  xlog.Logger
	draw *draw.Queue
	cfg  Config

	circle []geom.Vector

	centers *ring.Buffer[uint16]
	speeds  *ring.Buffer[float64]

	state State

	dirLast          geom.Vector
	centerBlackLast  geom.Point
	haveCenterBlack  bool
	frameID          uint32
}

// New returns a Planner ready to Step. q receives the debug draw overlay
// for the frame just stepped; pass a Queue with Enabled=false to suppress
// drawing entirely.
func New(log xlog.Logger, q *draw.Queue, cfg Config, w, h int) *Planner {
	return &Planner{
		log:             log,
		draw:            q,
		cfg:             cfg,
		circle:          frame.BuildCircle(6, 36),
		centers:         ring.New[uint16](cfg.CenterHistory),
		speeds:          ring.New[float64](cfg.SpeedWindow),
		state:           Searching,
		dirLast:         geom.Vector{X: 0, Y: -40},
		centerBlackLast: geom.Point{X: uint16(w / 2), Y: uint16(h) - 20},
	}
}

// State returns the planner's current top-level state.
func (p *Planner) State() State { return p.state }

// Step runs the full nine-stage pipeline against f (must already be
// segmented) and returns the resulting Plan. f's frameID is assigned by the
// caller via the id parameter, since frame identity is owned by the shared
// STATE region, not the planner.
func (p *Planner) Step(f *frame.Frame, id uint32) Plan {
	p.frameID = id

	bottomY := int(p.cfg.BottomRowFrac * float64(f.H))
	bottomCenter := p.trackCenterBottom(f, bottomY)

	centerBlack := p.climbCenterline(f, bottomCenter)
	p.centerBlackLast = centerBlack
	p.haveCenterBlack = true

	edgeLeft, edgeRight := p.localizeEdges(f, centerBlack)

	leftTrace := p.traceEdge(f, edgeLeft, centerBlack, true)
	rightTrace := p.traceEdge(f, edgeRight, centerBlack, false)

	midpoints := p.buildMidline(f, leftTrace, rightTrace)

	dir := p.estimateDirection(leftTrace, rightTrace)
	p.dirLast = dir

	lookAhead := p.lookAheadDistance(f, centerBlack, dir)
	p.speeds.Add(lookAhead)

	targetPos := p.targetPos(f, midpoints, centerBlack)
	targetSpeed := sigmoidCorner(p.windowedLookAhead())

	if p.draw != nil {
		p.draw.Square(centerBlack, 10, 150)
	}

	if p.state == Searching && (len(midpoints) > 0 || edgeLeft != centerBlack || edgeRight != centerBlack) {
		p.state = Following
	}

	if p.state == Following && p.detectFinish(dir, lookAhead) {
		p.state = FinishLatched
	}

	lap := uint8(0)
	if p.state == FinishLatched {
		lap = 1
	}

	return Plan{
		TargetPos:   targetPos,
		TargetSpeed: targetSpeed,
		LapOfHonor:  lap,
		FrameID:     id,
	}
}

func (p *Planner) windowedLookAhead() float64 {
	n := p.speeds.Cap()
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += p.speeds.At(p.speeds.LastIndex() - i)
	}
	return sum / float64(n)
}
