// ABOUTME: Polls the process table and reports open/close edges for one named process
// ABOUTME: Callbacks run on the polling goroutine and only fire on transitions

package watchdog

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/mauromedda/streethud-go/internal/log"
)

// DefaultInterval is the polling period when none is configured.
const DefaultInterval = time.Second

// Options configures a Watchdog.
type Options struct {
	Name     string
	Interval time.Duration
	List     Lister // defaults to ProcLister("/proc")
	OnOpened func(pid int)
	OnClosed func()
}

// Watchdog tracks whether a process named Options.Name is running.
type Watchdog struct {
	name     string
	interval time.Duration
	list     Lister
	onOpened func(pid int)
	onClosed func()

	pid int
}

// New creates a watchdog. Nothing is polled until Poll or Run.
func New(opts Options) *Watchdog {
	w := &Watchdog{
		name:     opts.Name,
		interval: opts.Interval,
		list:     opts.List,
		onOpened: opts.OnOpened,
		onClosed: opts.OnClosed,
	}
	if w.interval <= 0 {
		w.interval = DefaultInterval
	}
	if w.list == nil {
		w.list = ProcLister("/proc")
	}
	return w
}

// PID returns the tracked pid, 0 when the process is not running.
func (w *Watchdog) PID() int {
	return w.pid
}

// Poll checks the process table once and fires callbacks for any edge.
// Not safe for concurrent use.
func (w *Watchdog) Poll() error {
	procs, err := w.list()
	if err != nil {
		return err
	}

	var candidates []int
	for _, p := range procs {
		if Matches(p, w.name) {
			if p.PID == w.pid {
				return nil
			}
			candidates = append(candidates, p.PID)
		}
	}

	if w.pid != 0 {
		log.Info("watchdog: %s (pid %d) closed", w.name, w.pid)
		w.pid = 0
		if w.onClosed != nil {
			w.onClosed()
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	w.pid = slices.Min(candidates)
	log.Info("watchdog: %s opened (pid %d)", w.name, w.pid)
	if w.onOpened != nil {
		w.onOpened(w.pid)
	}
	return nil
}

// Run polls until ctx is done. It returns ErrUnsupported immediately when
// the process table cannot be read at all; other listing errors are logged
// and retried on the next tick.
func (w *Watchdog) Run(ctx context.Context) error {
	log.Debug("watchdog: watching for %q every %s", w.name, w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.Poll(); err != nil {
			if errors.Is(err, ErrUnsupported) {
				return err
			}
			log.Warn("watchdog: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
