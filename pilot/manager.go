/*
DESCRIPTION
  manager.go defines Manager, the pipeline manager that starts and stops
  the camera, processor and display pipelines and runs the main
  exit-polling loop.

LICENSE
  See LICENSE at the repository root.
*/

// Package pilot is the top-level pipeline manager: it starts and stops the
// camera, processor and display cooperative pipelines, owns the
// shared-memory handshake and the processed-frame mutex, and runs the
// signal-driven cooperative shutdown sequence. Grounded on
// github.com/ausocean/av/revid's Revid/Start/Stop/wg/err-channel shape,
// widened from revid's single-pipeline lex/encode/send model into the
// three independent cooperative loops spec.md §4.5 describes.
package pilot

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/trackpilot/pilot/draw"
	"github.com/trackpilot/pilot/frame"
	"github.com/trackpilot/pilot/internal/xlog"
	"github.com/trackpilot/pilot/pilot/camera"
	"github.com/trackpilot/pilot/pilot/config"
	"github.com/trackpilot/pilot/pilot/display"
	"github.com/trackpilot/pilot/planner"
	"github.com/trackpilot/pilot/segment"
	"github.com/trackpilot/pilot/shm"
)

// Manager ties together a camera producer, a shared-memory frame exchange,
// the per-frame processor and an optional display consumer, per spec.md
// §4.5.
type Manager struct {
	cfg config.Config
	log xlog.Logger

	cam  camera.Device
	disp display.Sink

	state *shm.State
	plan  *shm.Plan

	// exitRequested is set by any thread, cleared never; only the main
	// loop loads it, per spec.md §5.
	exitRequested int32

	// processed is the shared processed-frame buffer; procMu guards every
	// copy into or out of it.
	processed []byte
	procMu    sync.Mutex
	procID    uint32

	camCancel  context.CancelFunc
	procCancel context.CancelFunc
	dispCancel context.CancelFunc

	wg sync.WaitGroup

	deinit func() error
}

// New constructs a Manager. cam and disp may be nil for modes that don't
// need them; disp is only used in ModeProcTest, and cmd/pilot passes nil
// for every other mode.
func New(cfg config.Config, log xlog.Logger, cam camera.Device, disp display.Sink) (*Manager, error) {
	state, err := shm.OpenState(cfg.StateShmName, cfg.StateSemName, int(cfg.Width), int(cfg.Height), stateMode(cfg.Mode))
	if err != nil {
		return nil, err
	}

	var plan *shm.Plan
	if cfg.Mode != config.ModeCamera {
		plan, err = shm.OpenPlan(cfg.PlanShmName, cfg.PlanSemName, shm.ReadWrite)
		if err != nil {
			return nil, err
		}
	}

	return &Manager{
		cfg:       cfg,
		log:       log,
		cam:       cam,
		disp:      disp,
		state:     state,
		plan:      plan,
		processed: make([]byte, int(cfg.Width)*int(cfg.Height)),
	}, nil
}

func stateMode(m config.Mode) shm.Mode {
	if m == config.ModeCamera {
		return shm.ReadWrite
	}
	return shm.ReadOnly
}

// SetDeinit registers a user-supplied deinit function run last during
// cleanup, per spec.md §4.5.
func (m *Manager) SetDeinit(fn func() error) { m.deinit = fn }

// RequestExit sets the exit-requested flag. Safe to call from any thread
// or signal handler.
func (m *Manager) RequestExit() { atomic.StoreInt32(&m.exitRequested, 1) }

func (m *Manager) exitWasRequested() bool { return atomic.LoadInt32(&m.exitRequested) == 1 }

// Run starts the pipelines appropriate for cfg.Mode, installs the INT/HUP/
// TERM signal handlers, and blocks in the 100ms exit-polling loop until
// exit is requested, then runs cleanup in the fixed order spec.md §4.5
// mandates. It returns nil on a clean stop.
func (m *Manager) Run() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		<-sigCh
		m.log.Info("signal received, requesting exit")
		m.RequestExit()
	}()

	switch m.cfg.Mode {
	case config.ModeCamera:
		m.startCamera()
	case config.ModeProcReal, config.ModeProcTest:
		m.startCamera()
		m.startProcessor()
		if m.cfg.Mode == config.ModeProcTest {
			m.startDisplay()
		}
	}

	for !m.exitWasRequested() {
		time.Sleep(100 * time.Millisecond)
	}

	m.cleanup()
	return nil
}

// cleanup runs in the exact order spec.md §4.5 mandates: post any held
// semaphores, cancel display, cancel processor, cancel camera, destroy the
// mutex (a no-op for a Go sync.Mutex, recorded here as the point at which
// procMu is never again entered), run the user deinit.
func (m *Manager) cleanup() {
	if err := m.state.Region().Release(); err != nil {
		m.log.Error("cleanup: release state semaphore", "error", err)
	}
	if m.plan != nil {
		if err := m.plan.Region().Release(); err != nil {
			m.log.Error("cleanup: release plan semaphore", "error", err)
		}
	}

	if m.dispCancel != nil {
		m.dispCancel()
	}
	if m.procCancel != nil {
		m.procCancel()
	}
	if m.camCancel != nil {
		m.camCancel()
	}

	m.wg.Wait()

	if err := m.state.Close(); err != nil {
		m.log.Error("cleanup: close state region", "error", err)
	}
	if m.plan != nil {
		if err := m.plan.Close(); err != nil {
			m.log.Error("cleanup: close plan region", "error", err)
		}
	}
	if m.disp != nil {
		if err := m.disp.Close(); err != nil {
			m.log.Error("cleanup: close display", "error", err)
		}
	}

	if m.deinit != nil {
		if err := m.deinit(); err != nil {
			m.log.Error("cleanup: user deinit", "error", err)
		}
	}
}

// startCamera launches the camera pipeline: read frames from m.cam, write
// each into STATE, bumping frame_id, per spec.md §4.5.
func (m *Manager) startCamera() {
	ctx, cancel := context.WithCancel(context.Background())
	m.camCancel = cancel
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()

		if err := m.cam.Start(); err != nil {
			m.log.Error("camera: start failed", "error", err)
			m.RequestExit()
			return
		}

		buf := make([]byte, int(m.cfg.Width)*int(m.cfg.Height))
		for {
			select {
			case <-ctx.Done():
				m.cam.Stop()
				return
			default:
			}

			if !m.cam.Read(buf) {
				m.log.Error("camera: read failed, requesting exit")
				m.RequestExit()
				m.cam.Stop()
				return
			}
			if err := m.state.Write(buf); err != nil {
				m.log.Error("camera: state write failed", "error", err)
				m.RequestExit()
				m.cam.Stop()
				return
			}
		}
	}()
}

// startProcessor launches the processor pipeline: poll STATE.frame_id every
// 20ms, and on change run segmentation, the 3x3 dilate/erode cleanup, and
// planning, then copy the result into the processed-frame buffer under
// procMu, per spec.md §4.5/component #5. Dilate-then-erode (a morphological
// closing) matches original_source/code/pre_proc.c's
// segment()->morph_primitive(...,1,1)->morph_primitive(...,0,1) closing
// sequence.
func (m *Manager) startProcessor() {
	ctx, cancel := context.WithCancel(context.Background())
	m.procCancel = cancel
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()

		segCfg := m.cfg.SegmentConfig()
		q := draw.New(m.log)
		q.Enabled = m.cfg.DrawEnabled
		plnr := planner.New(m.log, q, m.cfg.PlannerConfig(), int(m.cfg.Width), int(m.cfg.Height))

		f := frame.New(int(m.cfg.Width), int(m.cfg.Height))
		scratch := f.Clone()

		var lastID uint32
		first := true

		// fpsCount/fpsSince implement pipeline_mgr.c's frame_raw_processor FPS
		// counter: logged once per second, purely observational.
		fpsCount := 0
		fpsSince := time.Now()

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			id, err := m.state.FrameID()
			if err != nil {
				m.log.Error("processor: frame_id poll failed", "error", err)
				m.RequestExit()
				return
			}
			if !first && id == lastID {
				time.Sleep(20 * time.Millisecond)
				continue
			}
			first = false

			gotID, err := m.state.Read(f.Pix)
			if err != nil {
				m.log.Error("processor: state read failed", "error", err)
				m.RequestExit()
				return
			}
			lastID = gotID

			scratch.CopyFrom(f)
			segment.FillDeadZone(scratch, segCfg)
			segment.Segment(scratch, segCfg)
			segment.Dilate3(scratch, scratch)
			segment.Erode3(scratch, scratch)

			result := plnr.Step(scratch, gotID)
			q.Run(scratch)

			if m.plan != nil {
				if err := m.plan.Write(result.TargetPos, result.TargetSpeed, result.LapOfHonor); err != nil {
					m.log.Error("processor: plan publish failed", "error", err)
					m.RequestExit()
					return
				}
			}

			m.procMu.Lock()
			copy(m.processed, scratch.Pix)
			m.procID = gotID
			m.procMu.Unlock()

			fpsCount++
			if elapsed := time.Since(fpsSince); elapsed >= time.Second {
				m.log.Info("processor fps", "fps", float64(fpsCount)/elapsed.Seconds())
				fpsCount = 0
				fpsSince = time.Now()
			}
		}
	}()
}

// startDisplay launches the display pipeline: repeatedly sample the
// processed-frame buffer under procMu and hand it to m.disp, per spec.md
// §4.5.
func (m *Manager) startDisplay() {
	ctx, cancel := context.WithCancel(context.Background())
	m.dispCancel = cancel
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()

		buf := make([]byte, len(m.processed))
		var lastID uint32
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			m.procMu.Lock()
			id := m.procID
			copy(buf, m.processed)
			m.procMu.Unlock()

			if id != lastID {
				lastID = id
				if err := m.disp.Show(buf, int(m.cfg.Width), int(m.cfg.Height)); err != nil {
					m.log.Error("display: show failed", "error", err)
				}
			}
			time.Sleep(20 * time.Millisecond)
		}
	}()
}
