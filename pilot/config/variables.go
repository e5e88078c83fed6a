/*
DESCRIPTION
  variables.go describes each configurable Config field as a name, an
  Update parser and a Validate defaulter, mirroring the table-driven update
  mechanism Config.Update and Config.Validate drive.

LICENSE
  See LICENSE at the repository root.
*/

package config

import (
	"strconv"
)

// Config map keys, one per dynamically updatable field.
const (
	KeyWidth                = "Width"
	KeyHeight               = "Height"
	KeySegThreshold         = "SegThreshold"
	KeySegLookAhead         = "SegLookAhead"
	KeySegDeadZone          = "SegDeadZone"
	KeyDrawEnabled          = "DrawEnabled"
	KeyPlannerBottomRowFrac = "PlannerBottomRowFrac"
	KeyPlannerTrackWidth    = "PlannerTrackWidth"
	KeyPlannerTargetPosGain = "PlannerTargetPosGain"
)

// Variable describes one updatable, validatable Config field.
type Variable struct {
	Name     string
	Update   func(c *Config, val string)
	Validate func(c *Config)
}

// Variables lists every field Update and Validate iterate over.
var Variables = []Variable{
	{
		Name: KeyWidth,
		Update: func(c *Config, val string) {
			if n, err := strconv.ParseUint(val, 10, 32); err == nil {
				c.Width = uint(n)
			}
		},
		Validate: func(c *Config) {
			if c.Width == 0 {
				c.LogInvalidField(KeyWidth, Default().Width)
				c.Width = Default().Width
			}
		},
	},
	{
		Name: KeyHeight,
		Update: func(c *Config, val string) {
			if n, err := strconv.ParseUint(val, 10, 32); err == nil {
				c.Height = uint(n)
			}
		},
		Validate: func(c *Config) {
			if c.Height == 0 {
				c.LogInvalidField(KeyHeight, Default().Height)
				c.Height = Default().Height
			}
		},
	},
	{
		Name: KeySegThreshold,
		Update: func(c *Config, val string) {
			if n, err := strconv.ParseUint(val, 10, 8); err == nil {
				c.SegThreshold = uint8(n)
			}
		},
		Validate: func(c *Config) {
			if c.SegThreshold == 0 {
				c.LogInvalidField(KeySegThreshold, Default().SegThreshold)
				c.SegThreshold = Default().SegThreshold
			}
		},
	},
	{
		Name: KeySegLookAhead,
		Update: func(c *Config, val string) {
			if n, err := strconv.ParseUint(val, 10, 16); err == nil {
				c.SegLookAhead = uint16(n)
			}
		},
		Validate: func(c *Config) {
			if c.SegLookAhead == 0 {
				c.LogInvalidField(KeySegLookAhead, Default().SegLookAhead)
				c.SegLookAhead = Default().SegLookAhead
			}
		},
	},
	{
		Name: KeySegDeadZone,
		Update: func(c *Config, val string) {
			if n, err := strconv.ParseUint(val, 10, 16); err == nil {
				c.SegDeadZone = uint16(n)
			}
		},
	},
	{
		Name: KeyDrawEnabled,
		Update: func(c *Config, val string) {
			if b, err := strconv.ParseBool(val); err == nil {
				c.DrawEnabled = b
			}
		},
	},
	{
		Name: KeyPlannerBottomRowFrac,
		Update: func(c *Config, val string) {
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				c.PlannerBottomRowFrac = f
			}
		},
		Validate: func(c *Config) {
			if c.PlannerBottomRowFrac <= 0 || c.PlannerBottomRowFrac >= 1 {
				c.LogInvalidField(KeyPlannerBottomRowFrac, Default().PlannerBottomRowFrac)
				c.PlannerBottomRowFrac = Default().PlannerBottomRowFrac
			}
		},
	},
	{
		Name: KeyPlannerTrackWidth,
		Update: func(c *Config, val string) {
			if n, err := strconv.Atoi(val); err == nil {
				c.PlannerTrackWidth = n
			}
		},
		Validate: func(c *Config) {
			if c.PlannerTrackWidth <= 0 {
				c.LogInvalidField(KeyPlannerTrackWidth, Default().PlannerTrackWidth)
				c.PlannerTrackWidth = Default().PlannerTrackWidth
			}
		},
	},
	{
		Name: KeyPlannerTargetPosGain,
		Update: func(c *Config, val string) {
			if f, err := strconv.ParseFloat(val, 32); err == nil {
				c.PlannerTargetPosGain = float32(f)
			}
		},
		Validate: func(c *Config) {
			if c.PlannerTargetPosGain <= 0 {
				c.LogInvalidField(KeyPlannerTargetPosGain, Default().PlannerTargetPosGain)
				c.PlannerTargetPosGain = Default().PlannerTargetPosGain
			}
		},
	},
}
