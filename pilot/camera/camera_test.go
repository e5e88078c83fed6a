package camera

import (
	"testing"

	"github.com/trackpilot/pilot/internal/xlog"
)

type nopLogger struct{}

func (nopLogger) SetLevel(int8)                  {}
func (nopLogger) Debug(string, ...interface{})   {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Warning(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{})   {}
func (nopLogger) Fatal(string, ...interface{})   {}

var _ xlog.Logger = nopLogger{}

// TestWebcamStart mirrors device/webcam's TestIsRunning: it exercises the
// real capture device if one is present and skips otherwise, since this
// module's test environment is not guaranteed to have a camera attached.
func TestWebcamStart(t *testing.T) {
	c := NewWebcam(nopLogger{}, "0", 320, 240)

	if err := c.Start(); err != nil {
		t.Skipf("no capture device available: %v", err)
	}
	defer c.Stop()

	if c.Width() != 320 || c.Height() != 240 {
		t.Errorf("Width()/Height() = %d/%d, want 320/240", c.Width(), c.Height())
	}

	buf := make([]byte, 320*240)
	if !c.Read(buf) {
		t.Skip("capture device opened but produced no frame")
	}
}
