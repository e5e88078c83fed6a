/*
DESCRIPTION
  camera.go defines the Device interface and a gocv-backed webcam
  implementation producing grayscale frames.

LICENSE
  See LICENSE at the repository root.
*/

// Package camera provides the video-capture collaborator pilot's camera
// pipeline reads from: a Device interface plus a gocv-backed
// implementation, paralleling github.com/ausocean/av/device/webcam's
// Start/Stop/IsRunning device shape but reading decoded grayscale frames
// via gocv.VideoCapture rather than piping an ffmpeg bytestream.
package camera

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/trackpilot/pilot/internal/xlog"
)

// Device is the video-capture collaborator spec.md §1 treats as external:
// a named source producing a raw grayscale frame stream at a fixed
// resolution.
type Device interface {
	// Start opens the underlying capture source.
	Start() error
	// Read blocks until the next frame is available and copies its
	// grayscale pixels (row-major, one byte per pixel) into dst, which must
	// be exactly Width()*Height() bytes. It returns false if the device has
	// stopped producing frames.
	Read(dst []byte) bool
	// Stop closes the underlying capture source.
	Stop() error
	Width() int
	Height() int
}

// Webcam is a Device backed by gocv.VideoCapture, converting each captured
// frame to grayscale at the configured resolution.
type Webcam struct {
	log    xlog.Logger
	source string
	w, h   int

	cap   *gocv.VideoCapture
	frame gocv.Mat
	gray  gocv.Mat

	running bool
}

// NewWebcam returns a Webcam that will open source (a device index such as
// "0", or a path) at w x h once Start is called.
func NewWebcam(log xlog.Logger, source string, w, h int) *Webcam {
	return &Webcam{log: log, source: source, w: w, h: h}
}

// Start opens the capture device and configures its resolution.
func (c *Webcam) Start() error {
	cap, err := gocv.OpenVideoCapture(c.source)
	if err != nil {
		return fmt.Errorf("camera: open video capture %q: %w", c.source, err)
	}
	cap.Set(gocv.VideoCaptureFrameWidth, float64(c.w))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(c.h))

	c.cap = cap
	c.frame = gocv.NewMat()
	c.gray = gocv.NewMat()
	c.running = true
	c.log.Info("camera started", "source", c.source, "width", c.w, "height", c.h)
	return nil
}

// Read captures and grayscale-converts one frame into dst.
func (c *Webcam) Read(dst []byte) bool {
	if !c.running {
		return false
	}
	if ok := c.cap.Read(&c.frame); !ok || c.frame.Empty() {
		return false
	}

	gocv.CvtColor(c.frame, &c.gray, gocv.ColorBGRToGray)
	if c.gray.Cols() != c.w || c.gray.Rows() != c.h {
		gocv.Resize(c.gray, &c.gray, image.Pt(c.w, c.h), 0, 0, gocv.InterpolationLinear)
	}

	buf, err := c.gray.DataPtrUint8()
	if err != nil {
		c.log.Error("camera: read frame data", "error", err)
		return false
	}
	if len(buf) != len(dst) {
		c.log.Error("camera: frame size mismatch", "got", len(buf), "want", len(dst))
		return false
	}
	copy(dst, buf)
	return true
}

// Stop releases the underlying capture device and its scratch mats.
func (c *Webcam) Stop() error {
	if !c.running {
		return nil
	}
	c.running = false
	c.frame.Close()
	c.gray.Close()
	if err := c.cap.Close(); err != nil {
		return fmt.Errorf("camera: close: %w", err)
	}
	return nil
}

func (c *Webcam) Width() int  { return c.w }
func (c *Webcam) Height() int { return c.h }
