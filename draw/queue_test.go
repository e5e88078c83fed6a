package draw

import (
	"testing"

	"github.com/trackpilot/pilot/frame"
	"github.com/trackpilot/pilot/geom"
	"github.com/trackpilot/pilot/internal/xlog"
)

type nopLogger struct{}

func (nopLogger) SetLevel(int8)                           {}
func (nopLogger) Debug(string, ...interface{})            {}
func (nopLogger) Info(string, ...interface{})             {}
func (nopLogger) Warning(string, ...interface{})          {}
func (nopLogger) Error(string, ...interface{})            {}
func (nopLogger) Fatal(string, ...interface{})            { panic("fatal") }

var _ xlog.Logger = nopLogger{}

func TestPixelDrainOrder(t *testing.T) {
	q := New(nopLogger{})
	f := frame.New(10, 10)

	q.Pixel(geom.Point{X: 1, Y: 1}, 77)
	// A pixel on row 5 is overwritten by the line, which drains after pixels.
	q.Pixel(geom.Point{X: 2, Y: 5}, 77)
	q.HorizLine(5, frame.White)
	q.Square(geom.Point{X: 3, Y: 3}, 2, 200)

	q.Run(f)

	if got := f.At(geom.Point{X: 1, Y: 1}); got != 77 {
		t.Errorf("pixel at (1,1) = %d, want 77", got)
	}
	if got := f.At(geom.Point{X: 2, Y: 5}); got != frame.White {
		t.Errorf("pixel at (2,5) = %d, want white (line drawn after pixels)", got)
	}
	if got := f.At(geom.Point{X: 0, Y: 5}); got != frame.White {
		t.Errorf("line row 5 at x=0 = %d, want white", got)
	}
}

func TestRunClearsQueues(t *testing.T) {
	q := New(nopLogger{})
	f := frame.New(10, 10)

	q.Pixel(geom.Point{X: 0, Y: 0}, 10)
	q.Run(f)

	if len(q.pixels) != 0 {
		t.Errorf("queue not cleared after Run: %d pixels remain", len(q.pixels))
	}
}

func TestDisabledQueueIsNoOp(t *testing.T) {
	q := New(nopLogger{})
	q.Enabled = false
	f := frame.New(10, 10)

	q.Pixel(geom.Point{X: 0, Y: 0}, 10)
	q.Run(f)

	if got := f.At(geom.Point{X: 0, Y: 0}); got != frame.Black {
		t.Errorf("disabled queue drew a pixel: got %d, want black", got)
	}
}

func TestPixelOverflowDropsSilently(t *testing.T) {
	q := New(nopLogger{})
	f := frame.New(10, 10)

	for i := 0; i < pixelCap+10; i++ {
		q.Pixel(geom.Point{X: 0, Y: 0}, 5)
	}
	if len(q.pixels) != pixelCap {
		t.Errorf("pixel queue length = %d, want %d (capacity)", len(q.pixels), pixelCap)
	}
	q.Run(f) // must not panic
}

func TestSquareClipsToBounds(t *testing.T) {
	q := New(nopLogger{})
	f := frame.New(5, 5)

	q.Square(geom.Point{X: 0, Y: 0}, 4, 150)
	q.Run(f) // must not panic or write out of bounds
}
