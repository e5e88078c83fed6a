//go:build !debug

/*
DESCRIPTION
  noop.go provides the non-debug-build Sink: Show is a no-op so pilot's
  display pipeline has somewhere to sample the processed frame without
  requiring OpenCV headers to build.

LICENSE
  See LICENSE at the repository root.
*/

package display

// Window stands in for the debug gocv.Window sink in non-debug builds, so
// pilot/display's public API is identical regardless of build tags.
type Window struct{}

// NewWindow returns a no-op Window.
func NewWindow(title string) *Window { return &Window{} }

func (w *Window) Show(frame []byte, width, height int) error { return nil }

func (w *Window) Close() error { return nil }
