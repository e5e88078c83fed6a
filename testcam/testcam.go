/*
DESCRIPTION
  testcam.go implements a camera.Device that replays a fixed sequence of
  in-memory frames, for use by tests.

LICENSE
  See LICENSE at the repository root.
*/

// Package testcam provides an in-memory camera.Device implementation for
// tests: it replays a fixed, caller-supplied sequence of grayscale frames
// rather than reading a real capture device. Supplements the camera
// package's real gocv-backed Device with the injector collaborator
// original_source/code's test harnesses relied on to drive the planner
// deterministically (see _INDEX.md's references to a fixed-frame test
// runner), generalized here into a reusable Device rather than a one-off
// harness.
package testcam

import "sync"

// Replay is a camera.Device that cycles through a fixed list of frames.
// Each frame must be exactly w*h bytes. Once the list is exhausted, Read
// returns false unless Loop is true, in which case it restarts from the
// first frame.
type Replay struct {
	mu     sync.Mutex
	frames [][]byte
	w, h   int
	idx    int
	Loop   bool

	running bool
}

// New returns a Replay device over frames, each exactly w*h bytes.
func New(frames [][]byte, w, h int) *Replay {
	return &Replay{frames: frames, w: w, h: h}
}

func (r *Replay) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = true
	r.idx = 0
	return nil
}

func (r *Replay) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	return nil
}

// Read copies the next frame in sequence into dst. It returns false once
// the sequence is exhausted and Loop is false, or once Stop has been
// called.
func (r *Replay) Read(dst []byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return false
	}
	if r.idx >= len(r.frames) {
		if !r.Loop || len(r.frames) == 0 {
			return false
		}
		r.idx = 0
	}

	copy(dst, r.frames[r.idx])
	r.idx++
	return true
}

func (r *Replay) Width() int  { return r.w }
func (r *Replay) Height() int { return r.h }
