/*
DESCRIPTION
  convert.go derives the segment and planner packages' own Config values
  from pilot/config's flat field set.

LICENSE
  See LICENSE at the repository root.
*/

package config

import (
	"github.com/trackpilot/pilot/planner"
	"github.com/trackpilot/pilot/segment"
)

// SegmentConfig builds a segment.Config from c's segmentation fields.
func (c *Config) SegmentConfig() segment.Config {
	return segment.Config{
		Threshold: c.SegThreshold,
		LookAhead: c.SegLookAhead,
		DeadZone:  c.SegDeadZone,
		Floor:     0,
	}
}

// PlannerConfig builds a planner.Config starting from planner.DefaultConfig
// and overriding the subset of fields pilot/config exposes for field
// tuning.
func (c *Config) PlannerConfig() planner.Config {
	cfg := planner.DefaultConfig()
	cfg.BottomRowFrac = c.PlannerBottomRowFrac
	cfg.TrackWidth = c.PlannerTrackWidth
	cfg.TargetPosGain = c.PlannerTargetPosGain
	return cfg
}
