/*
DESCRIPTION
  config.go defines the Config struct and the Validate/Update/LogInvalidField
  methods used to configure, default and dynamically adjust pilot's
  tunables.

LICENSE
  See LICENSE at the repository root.
*/

// Package config holds pilot's configuration: frame geometry, segmentation
// and planner tunables, shared-memory region names, and logging settings.
// Grounded on github.com/ausocean/av/revid/config's Config/Variables/Update
// machinery, narrowed from revid's ~80 fields of capture/encode/transport
// settings to the perception-core fields this spec defines.
package config

import (
	"fmt"

	"github.com/trackpilot/pilot/internal/xlog"
)

// Mode selects which of the three cooperative pipelines pilot runs, per
// spec.md §6's CLI surface.
type Mode uint8

const (
	// ModeProcTest runs the processor pipeline with the debug display
	// window enabled.
	ModeProcTest Mode = iota
	// ModeProcReal runs the processor pipeline without a display.
	ModeProcReal
	// ModeCamera runs only the camera producer pipeline.
	ModeCamera
)

func (m Mode) String() string {
	switch m {
	case ModeProcTest:
		return "proc-test"
	case ModeProcReal:
		return "proc-real"
	case ModeCamera:
		return "camera"
	default:
		return "unknown"
	}
}

// Config holds every tunable of a pilot process.
type Config struct {
	Mode Mode

	// Width and Height are the frame geometry; every participant (camera,
	// shared memory, display) must agree on them.
	Width  uint
	Height uint

	// LogPath is the append-only log file path, per spec.md §6.
	LogPath  string
	LogLevel int8

	// SegThreshold and SegLookAhead parameterize adaptive segmentation.
	SegThreshold uint8
	SegLookAhead uint16
	SegDeadZone  uint16

	// DrawEnabled gates the debug draw overlay.
	DrawEnabled bool

	// PlannerBottomRowFrac, PlannerTrackWidth and PlannerTargetPosGain
	// expose the planner knobs most likely to need field tuning; the rest
	// of planner.Config is left at its defaults.
	PlannerBottomRowFrac float64
	PlannerTrackWidth    int
	PlannerTargetPosGain float32

	// StateShmName, StateSemName, PlanShmName and PlanSemName name the two
	// shared-memory regions and their guarding semaphores, per spec.md §6.
	StateShmName string
	StateSemName string
	PlanShmName  string
	PlanSemName  string

	// Logger is the destination for LogInvalidField and is otherwise unused
	// by Config itself; it must be set before calling Validate.
	Logger xlog.Logger
}

// Default returns a Config with the reference's constants (segmentation
// T=110, L=4; frame 320x240, matching webcam.go's common default mode) and
// pilot's fixed shared-memory region names.
func Default() Config {
	return Config{
		Mode:                 ModeProcReal,
		Width:                320,
		Height:               240,
		LogPath:              "log.txt",
		LogLevel:             xlog.Info,
		SegThreshold:         110,
		SegLookAhead:         4,
		SegDeadZone:          0,
		DrawEnabled:          false,
		PlannerBottomRowFrac: 0.43,
		PlannerTrackWidth:    300,
		PlannerTargetPosGain: 4,
		StateShmName:         "/pilot_state",
		StateSemName:         "/pilot_state_sem",
		PlanShmName:          "/pilot_plan",
		PlanSemName:          "/pilot_plan_sem",
	}
}

// Validate runs every registered Variable's validator against c, defaulting
// and logging any bad or unset field. It returns an error only when
// c.Logger is unset; otherwise individual variables are defaulted (logging
// through c.Logger) and it returns nil.
func (c *Config) Validate() error {
	if c.Logger == nil {
		return fmt.Errorf("config: Logger must be set before Validate")
	}
	for _, v := range Variables {
		if v.Validate != nil {
			v.Validate(c)
		}
	}
	return nil
}

// Update applies string-valued overrides (as would arrive from a CLI flag
// map or an environment) to the fields named in vars.
func (c *Config) Update(vars map[string]string) {
	for _, v := range Variables {
		if val, ok := vars[v.Name]; ok && v.Update != nil {
			v.Update(c, val)
		}
	}
}

// LogInvalidField reports that the named field was bad or unset and that
// def is being used instead.
func (c *Config) LogInvalidField(name string, def interface{}) {
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}
