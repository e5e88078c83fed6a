/*
DESCRIPTION
  queue.go implements the four bounded draw queues and their drain into a
  target frame.

LICENSE
  See LICENSE at the repository root.
*/

// Package draw implements the queued debug-drawing overlay: four bounded
// queues (pixels, horizontal lines, squares, decimal numbers) filled during
// planning and flushed onto a frame by a single drain call. Grounded on
// original_source/code/draw.c and draw.h; generalized there from direct
// pixel writes into a queued model so planner code and drain code never
// race over the same frame.
package draw

import (
	"github.com/trackpilot/pilot/frame"
	"github.com/trackpilot/pilot/geom"
	"github.com/trackpilot/pilot/internal/xlog"
)

// Queue capacities, per spec.md §4.3.
const (
	pixelCap = 2096
	lineCap  = 256
	squareCap = 256
	numberCap = 256
)

type pixelReq struct {
	p    geom.Point
	gray byte
}

type lineReq struct {
	row uint16
	val byte
}

type squareReq struct {
	center geom.Point
	size   byte
	color  byte
}

type numberReq struct {
	n          uint16
	startX     uint16
	startY     uint16
	scale      byte
}

// Queue holds the four draw queues. It is not safe for concurrent use: per
// spec.md §3, a Queue belongs exclusively to whatever thread is running the
// planner for one frame.
type Queue struct {
	log xlog.Logger

	// Enabled gates every Enqueue* and Run call. When false they are no-ops,
	// matching the compile-or-config draw_enabled flag.
	Enabled bool

	pixels  []pixelReq
	lines   []lineReq
	squares []squareReq
	numbers []numberReq

	pixelDropLogged  bool
	lineDropLogged   bool
	squareDropLogged bool
	numberDropLogged bool
}

// New returns an empty Queue. log is used to report one message per overflow
// condition; a nil log is not accepted, pass a no-op Logger instead.
func New(log xlog.Logger) *Queue {
	return &Queue{
		log:     log,
		Enabled: true,
		pixels:  make([]pixelReq, 0, pixelCap),
		lines:   make([]lineReq, 0, lineCap),
		squares: make([]squareReq, 0, squareCap),
		numbers: make([]numberReq, 0, numberCap),
	}
}

// Pixel enqueues a single pixel write. Bound as the enqueue callback passed
// to frame.DrawLightStopOnWhite / frame.DrawLightNoStop.
func (q *Queue) Pixel(p geom.Point, gray byte) {
	if !q.Enabled {
		return
	}
	if len(q.pixels) >= pixelCap {
		if !q.pixelDropLogged {
			q.log.Warning("draw: pixel queue overflow, dropping")
			q.pixelDropLogged = true
		}
		return
	}
	q.pixels = append(q.pixels, pixelReq{p: p, gray: gray})
}

// HorizLine enqueues a full-width horizontal line at the given row, filled
// with val.
func (q *Queue) HorizLine(row uint16, val byte) {
	if !q.Enabled {
		return
	}
	if len(q.lines) >= lineCap {
		if !q.lineDropLogged {
			q.log.Warning("draw: line queue overflow, dropping")
			q.lineDropLogged = true
		}
		return
	}
	q.lines = append(q.lines, lineReq{row: row, val: val})
}

// Square enqueues a size x size square centered on center, drawn with color.
// Bounds-clipping happens at drain time.
func (q *Queue) Square(center geom.Point, size, color byte) {
	if !q.Enabled {
		return
	}
	if len(q.squares) >= squareCap {
		if !q.squareDropLogged {
			q.log.Warning("draw: square queue overflow, dropping")
			q.squareDropLogged = true
		}
		return
	}
	q.squares = append(q.squares, squareReq{center: center, size: size, color: color})
}

// Number enqueues a decimal number rendered from the built-in digit bitmap
// at (startX, startY), scaled uniformly by scale.
func (q *Queue) Number(n uint16, startX, startY uint16, scale byte) {
	if !q.Enabled {
		return
	}
	if len(q.numbers) >= numberCap {
		if !q.numberDropLogged {
			q.log.Warning("draw: number queue overflow, dropping")
			q.numberDropLogged = true
		}
		return
	}
	q.numbers = append(q.numbers, numberReq{n: n, startX: startX, startY: startY, scale: scale})
}

// Run drains all four queues onto f in the fixed order pixels, lines,
// squares, numbers, then clears every queue regardless of Enabled (a
// disabled Queue never accumulates entries to clear, but Run is still
// idempotent to call).
func (q *Queue) Run(f *frame.Frame) {
	defer q.clear()

	if !q.Enabled {
		return
	}

	for _, r := range q.pixels {
		if f.InBounds(r.p) {
			f.Set(r.p, r.gray)
		}
	}
	for _, r := range q.lines {
		drawHorizLine(f, r.row, r.val)
	}
	for _, r := range q.squares {
		drawSquare(f, r.center, r.size, r.color)
	}
	for _, r := range q.numbers {
		drawNumber(f, r.n, r.startX, r.startY, r.scale)
	}
}

func (q *Queue) clear() {
	q.pixels = q.pixels[:0]
	q.lines = q.lines[:0]
	q.squares = q.squares[:0]
	q.numbers = q.numbers[:0]
	q.pixelDropLogged = false
	q.lineDropLogged = false
	q.squareDropLogged = false
	q.numberDropLogged = false
}

func drawHorizLine(f *frame.Frame, row uint16, val byte) {
	if int(row) >= f.H {
		return
	}
	for x := 0; x < f.W; x++ {
		f.Set(geom.Point{X: uint16(x), Y: row}, val)
	}
}

// drawSquare draws a size x size block centered on center, clipped to the
// frame bounds. Grounded on original_source/code/draw.c's draw_square;
// clipping is done per pixel, skipping every row and column that falls
// outside the frame.
func drawSquare(f *frame.Frame, center geom.Point, size, color byte) {
	radius := int(size) / 2
	cx, cy := int(center.X), int(center.Y)

	for dy := 0; dy < int(size); dy++ {
		y := cy - radius + dy
		if y < 0 || y >= f.H {
			continue
		}
		for dx := 0; dx < int(size); dx++ {
			x := cx - radius + dx
			if x < 0 || x >= f.W {
				continue
			}
			f.Set(geom.Point{X: uint16(x), Y: uint16(y)}, color)
		}
	}
}
