/*
DESCRIPTION
  Pilot is the entry point that selects one of three cooperative pipeline
  modes, initializes the logger and the planner, and runs until signalled
  to stop.

LICENSE
  See LICENSE at the repository root.
*/

// Package main is pilot's CLI, grounded on
// github.com/ausocean/av/cmd/looper's flag-based single-mode-selection
// entry point, widened to the three mutually exclusive modes spec.md §6
// defines.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/trackpilot/pilot/internal/xlog"
	"github.com/trackpilot/pilot/pilot"
	"github.com/trackpilot/pilot/pilot/camera"
	"github.com/trackpilot/pilot/pilot/config"
	"github.com/trackpilot/pilot/pilot/display"
)

func usage() {
	fmt.Fprintln(os.Stderr, `pilot: perception and path-planning core

Usage:
  pilot --proc-test | -pt    run processor with debug window
  pilot --proc-real | -pr    run processor without debug window
  pilot --camera    | -c     run the camera producer only
  pilot --help      | -h     print this message`)
}

func main() {
	var (
		procTest = flag.Bool("proc-test", false, "run processor with debug window")
		pt       = flag.Bool("pt", false, "alias for --proc-test")
		procReal = flag.Bool("proc-real", false, "run processor without debug window")
		pr       = flag.Bool("pr", false, "alias for --proc-real")
		camOnly  = flag.Bool("camera", false, "run the camera producer only")
		c        = flag.Bool("c", false, "alias for --camera")
		help     = flag.Bool("help", false, "print usage")
		h        = flag.Bool("h", false, "alias for --help")
		source   = flag.String("source", "0", "camera device index or path")
	)
	flag.Usage = usage
	flag.Parse()

	modeFlags := 0
	var mode config.Mode
	for _, set := range []bool{*procTest || *pt, *procReal || *pr, *camOnly || *c} {
		if set {
			modeFlags++
		}
	}

	switch {
	case *help || *h || flag.NFlag() == 0:
		usage()
		os.Exit(0)
	case modeFlags != 1:
		fmt.Fprintln(os.Stderr, "pilot: exactly one mode flag is required")
		usage()
		os.Exit(1)
	case *procTest || *pt:
		mode = config.ModeProcTest
	case *procReal || *pr:
		mode = config.ModeProcReal
	case *camOnly || *c:
		mode = config.ModeCamera
	}

	cfg := config.Default()
	cfg.Mode = mode

	log := xlog.New(cfg.LogPath, cfg.LogLevel)
	cfg.Logger = log

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var cam camera.Device
	if mode == config.ModeCamera || mode == config.ModeProcReal || mode == config.ModeProcTest {
		cam = camera.NewWebcam(log, *source, int(cfg.Width), int(cfg.Height))
	}

	var disp display.Sink
	if mode == config.ModeProcTest {
		disp = display.NewWindow("pilot")
	}

	mgr, err := pilot.New(cfg, log, cam, disp)
	if err != nil {
		log.Error("failed to initialize pipeline manager", "error", err)
		os.Exit(1)
	}

	if err := mgr.Run(); err != nil {
		log.Error("pipeline manager exited with error", "error", err)
		os.Exit(1)
	}
}
