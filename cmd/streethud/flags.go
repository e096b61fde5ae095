// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Paths override the per-user defaults; -headless and -no-monitor pick the front ends

package main

import (
	"flag"

	"github.com/mauromedda/streethud-go/internal/config"
)

type cliArgs struct {
	settings  string
	prefs     string
	state     string
	headless  bool
	noMonitor bool
	keys      bool
	verbose   bool
	version   bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.settings, "settings", "", "Settings file (default: <config dir>/streethud/settings.yaml)")
	flag.StringVar(&args.prefs, "prefs", "", "Overlay placement file (default: <config dir>/streethud/"+config.PreferencesFileName+")")
	flag.StringVar(&args.state, "state", "", "Game-state snapshot file, overrides state_file in settings")
	flag.BoolVar(&args.headless, "headless", false, "Do not open the overlay window; log overlay text instead")
	flag.BoolVar(&args.noMonitor, "no-monitor", false, "Do not show the terminal status monitor")
	flag.BoolVar(&args.keys, "keys", false, "Print the overlay hotkeys and exit")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
