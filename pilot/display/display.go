/*
DESCRIPTION
  display.go defines the Sink interface the display pipeline samples the
  processed-frame buffer into.

LICENSE
  See LICENSE at the repository root.
*/

// Package display provides the display collaborator spec.md §1 treats as
// external: a window that accepts the processed grayscale frame stream.
// The real gocv.Window-backed sink is built only with the debug build tag,
// mirroring github.com/ausocean/av/exp/gocv-exp's
// "//go:build withcv"-gated window code; a no-op sink backs non-debug
// builds so this package needs no OpenCV headers there (pilot/camera
// still imports gocv in every build).
package display

// Sink is the display collaborator. Show is called with one grayscale
// frame (row-major, w*h bytes) per display-pipeline tick.
type Sink interface {
	Show(frame []byte, w, h int) error
	Close() error
}
