package planner

import (
	"testing"

	"github.com/trackpilot/pilot/frame"
	"github.com/trackpilot/pilot/geom"
)

type nopLogger struct{}

func (nopLogger) SetLevel(int8)                  {}
func (nopLogger) Debug(string, ...interface{})   {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Warning(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{})   {}
func (nopLogger) Fatal(string, ...interface{})   { panic("fatal") }

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CenterHistory = 1 // isolate trackCenterBottom from cross-call smoothing
	return cfg
}

func TestMedianU16Odd(t *testing.T) {
	if got := medianU16([]uint16{5, 1, 3}); got != 3 {
		t.Errorf("median of {5,1,3} = %d, want 3", got)
	}
}

func TestMedianU16EvenTieBreak(t *testing.T) {
	// (2+4)/2 = 3, integer division.
	if got := medianU16([]uint16{4, 1, 2, 9}); got != 3 {
		t.Errorf("median of {4,1,2,9} = %d, want 3", got)
	}
}

func TestTrackCenterBottomFallsBackToMidpointWhenAllWhite(t *testing.T) {
	p := New(nopLogger{}, nil, testConfig(), 20, 20)
	f := frame.New(20, 20)
	for i := range f.Pix {
		f.Pix[i] = frame.White
	}
	got := p.trackCenterBottom(f, 10)
	if got.X != 10 {
		t.Errorf("center.X = %d, want W/2 = 10 on an all-white row", got.X)
	}
}

func TestTrackCenterBottomFindsLongestRun(t *testing.T) {
	p := New(nopLogger{}, nil, testConfig(), 20, 20)
	f := frame.New(20, 20)
	for i := range f.Pix {
		f.Pix[i] = frame.White
	}
	// A short black run at [2,5) and a longer one at [10,18).
	for x := 2; x < 5; x++ {
		f.Pix[10*f.W+x] = frame.Black
	}
	for x := 10; x < 18; x++ {
		f.Pix[10*f.W+x] = frame.Black
	}

	got := p.trackCenterBottom(f, 10)
	want := uint16(10 + 8/2)
	if got.X != want {
		t.Errorf("center.X = %d, want %d (midpoint of the longer run)", got.X, want)
	}
}

func TestLocalizeEdgesStopsAtWhite(t *testing.T) {
	p := New(nopLogger{}, nil, testConfig(), 20, 20)
	f := frame.New(20, 20)
	for x := 0; x < 20; x++ {
		f.Pix[10*f.W+x] = frame.Black
	}
	f.Pix[10*f.W+4] = frame.White
	f.Pix[10*f.W+16] = frame.White

	left, right := p.localizeEdges(f, geom.Point{X: 10, Y: 10})
	if left.X != 4 {
		t.Errorf("left edge = %d, want 4", left.X)
	}
	if right.X != 16 {
		t.Errorf("right edge = %d, want 16", right.X)
	}
}

func TestLocalizeEdgesClipsToFrame(t *testing.T) {
	p := New(nopLogger{}, nil, testConfig(), 20, 20)
	f := frame.New(20, 20)
	for i := range f.Pix {
		f.Pix[i] = frame.Black // no white anywhere; scan must still terminate
	}

	left, right := p.localizeEdges(f, geom.Point{X: 10, Y: 10})
	if left.X < 0 || right.X >= 20 {
		t.Errorf("edges out of bounds: left=%d right=%d", left.X, right.X)
	}
}
