//go:build debug

/*
DESCRIPTION
  window_debug.go implements Sink with a gocv.Window, compiled only into
  debug builds.

LICENSE
  See LICENSE at the repository root.
*/

package display

import "gocv.io/x/gocv"

// Window is a Sink backed by a gocv debug window, grounded on
// github.com/ausocean/av/exp/gocv-exp's window1/window2 IMShow/WaitKey
// loop.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a named debug display window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show renders one grayscale frame and pumps the window's event loop.
func (w *Window) Show(frame []byte, width, height int) error {
	mat, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8U, frame)
	if err != nil {
		return err
	}
	defer mat.Close()

	w.win.IMShow(mat)
	w.win.WaitKey(1)
	return nil
}

// Close releases the window.
func (w *Window) Close() error {
	return w.win.Close()
}
