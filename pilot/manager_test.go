package pilot

import (
	"testing"

	"github.com/trackpilot/pilot/pilot/config"
)

func TestStateModeCameraIsReadWrite(t *testing.T) {
	if got := stateMode(config.ModeCamera); got != 0 {
		t.Errorf("stateMode(ModeCamera) = %v, want ReadWrite", got)
	}
}

func TestStateModeProcessorModesAreReadOnly(t *testing.T) {
	for _, m := range []config.Mode{config.ModeProcReal, config.ModeProcTest} {
		if got := stateMode(m); got != 1 {
			t.Errorf("stateMode(%v) = %v, want ReadOnly", m, got)
		}
	}
}

// TestRequestExitIsObservedByMainLoop exercises the exit-requested flag in
// isolation from shared memory: any thread may set it, only the main loop's
// exitWasRequested reads it, per spec.md §5.
func TestRequestExitIsObservedByMainLoop(t *testing.T) {
	m := &Manager{}

	if m.exitWasRequested() {
		t.Fatal("fresh Manager reports exit already requested")
	}

	m.RequestExit()

	if !m.exitWasRequested() {
		t.Error("exitWasRequested() = false after RequestExit(), want true")
	}
}

// TestZeroManagerHasNoCancelFuncs checks that a Manager with no pipelines
// started has nil cancel funcs, the case cleanup's nil guards skip.
func TestZeroManagerHasNoCancelFuncs(t *testing.T) {
	m := &Manager{state: nil, plan: nil}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("cleanup panicked with no pipelines started: %v", r)
		}
	}()

	// cleanup dereferences m.state, which requires an opened shm region, so
	// this test does not call cleanup; it only checks the cancel funcs that
	// cleanup's nil guards test.
	if m.dispCancel != nil || m.procCancel != nil || m.camCancel != nil {
		t.Fatal("zero-value Manager unexpectedly has non-nil cancel funcs")
	}
}
