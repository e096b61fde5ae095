// ABOUTME: CLI entry point for streethud, the street-name overlay for GTA San Andreas
// ABOUTME: Wires settings, game-state source, HUD, hotkeys, watchdog, window, and monitor

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/streethud-go/internal/termfix"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/streethud-go/internal/config"
	"github.com/mauromedda/streethud-go/internal/eventbus"
	"github.com/mauromedda/streethud-go/internal/gamestate"
	"github.com/mauromedda/streethud-go/internal/hotkey"
	"github.com/mauromedda/streethud-go/internal/hud"
	shlog "github.com/mauromedda/streethud-go/internal/log"
	"github.com/mauromedda/streethud-go/internal/monitor"
	"github.com/mauromedda/streethud-go/internal/render/headless"
	"github.com/mauromedda/streethud-go/internal/render/window"
	"github.com/mauromedda/streethud-go/internal/watchdog"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("streethud %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if args.keys {
		fmt.Println(monitor.RenderHotkeyHelp(stdoutWidth()))
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, starts every subsystem, and blocks until the
// user quits, a signal arrives, or a subsystem fails.
func run(args cliArgs) error {
	settingsPath := args.settings
	if settingsPath == "" {
		settingsPath = config.SettingsFile()
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	applyLogLevel(settings.LogLevel, args.verbose)
	if args.state != "" {
		settings.StateFile = args.state
	}

	prefsPath := args.prefs
	if prefsPath == "" {
		prefsPath = config.PreferencesFile()
	}
	store := config.PreferencesStore{Path: prefsPath}
	prefs := store.Load()

	textColor, err := config.ParseColor(settings.Color)
	if err != nil {
		shlog.Warn("settings: %v, using %s", err, config.DefaultColor)
		textColor = config.MustParseColor(config.DefaultColor)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	useMonitor := !args.noMonitor &&
		term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stderr.Fd()))
	if useMonitor {
		// The monitor owns the terminal; logs go to a file instead.
		closeLog, err := redirectLog()
		if err != nil {
			return err
		}
		defer closeLog()
	}

	var overlay *window.Overlay
	var newLabel hud.NewLabelFunc
	if args.headless {
		newLabel = headless.NewLayer().NewLabel
	} else {
		overlay = window.New("streethud")
		newLabel = overlay.NewLabel
	}

	api := gamestate.NewFileSource(settings.StateFile)
	bus := eventbus.New[hud.Status]()
	h := hud.New(hud.Options{
		API:         api,
		NewLabel:    newLabel,
		Store:       store,
		Preferences: prefs,
		Font:        settings.Font,
		Color:       textColor,
		Enabled:     settings.Enabled,
		VehicleOnly: settings.VehicleOnly,
		Bus:         bus,
	})

	registry := hotkey.NewRegistry()
	if err := hotkey.Bind(registry, h.Handle); err != nil {
		return fmt.Errorf("binding hotkeys: %w", err)
	}

	lc := hud.NewLifecycle(h, api, registry, settings.TickInterval)
	defer lc.Close()

	watcher := config.NewWatcher([]string{settingsPath}, settings.WatchInterval, func() {
		reloadSettings(settingsPath, h, args.verbose)
	})
	watcher.Start()
	defer watcher.Stop()

	wd := watchdog.New(watchdog.Options{
		Name:     settings.ProcessName,
		Interval: settings.WatchInterval,
		OnOpened: lc.ProcessOpened,
		OnClosed: lc.ProcessClosed,
	})

	shlog.Info("streethud %s: watching for %s, state from %s", version, settings.ProcessName, settings.StateFile)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := wd.Run(gctx); err != nil {
			return fmt.Errorf("process watchdog: %w", err)
		}
		return nil
	})
	if useMonitor {
		g.Go(func() error {
			// Quitting the monitor quits the program.
			defer stop()
			return monitor.Run(gctx, monitor.Options{
				ProcessName: settings.ProcessName,
				Deliver:     registry.Deliver,
				Bus:         bus,
				Initial:     h.Status(),
			})
		})
	}

	// The window must run on the main goroutine.
	if overlay != nil {
		err := overlay.Run(gctx)
		stop()
		if err != nil {
			_ = g.Wait()
			return err
		}
	}
	return g.Wait()
}

// applyLogLevel sets the level from settings unless -verbose forces debug.
func applyLogLevel(level string, verbose bool) {
	if verbose {
		shlog.SetLevel(shlog.LevelDebug)
		return
	}
	l, ok := shlog.ParseLevel(level)
	if !ok {
		shlog.Warn("settings: unknown log_level %q, using info", level)
		l = shlog.LevelInfo
	}
	shlog.SetLevel(l)
}

// reloadSettings re-applies the live-tunable settings after the file changes.
// Everything else needs a restart.
func reloadSettings(path string, h *hud.HUD, verbose bool) {
	s, err := config.LoadSettings(path)
	if err != nil {
		shlog.Warn("settings: reload: %v", err)
		return
	}
	applyLogLevel(s.LogLevel, verbose)
	h.SetEnabled(s.Enabled)
	h.SetVehicleOnly(s.VehicleOnly)
	shlog.Info("settings: reloaded (enabled=%v vehicle_only=%v)", s.Enabled, s.VehicleOnly)
}

func redirectLog() (func(), error) {
	path := config.LogFile()
	if err := config.EnsureDir(config.AppDir()); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	shlog.SetOutput(f)
	return func() {
		shlog.SetOutput(nil)
		_ = f.Close()
	}, nil
}

func stdoutWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
