// ABOUTME: Starts and stops sampling in lockstep with the target game process
// ABOUTME: Open binds the pid and starts the ticker; close tears everything down; both idempotent

package hud

import (
	"sync"
	"time"

	"github.com/mauromedda/streethud-go/internal/config"
	"github.com/mauromedda/streethud-go/internal/gamestate"
	"github.com/mauromedda/streethud-go/internal/log"
)

// HotkeyHook is the start/stop surface of the keyboard-hook subsystem.
type HotkeyHook interface {
	Start() error
	Stop()
}

// Lifecycle drives a HUD from process watchdog signals.
type Lifecycle struct {
	hud      *HUD
	api      gamestate.API
	hook     HotkeyHook
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewLifecycle creates a stopped lifecycle ticking every interval.
func NewLifecycle(h *HUD, api gamestate.API, hook HotkeyHook, interval time.Duration) *Lifecycle {
	if interval <= 0 {
		interval = config.DefaultTickInterval
	}
	return &Lifecycle{hud: h, api: api, hook: hook, interval: interval}
}

// Running reports whether the sampling ticker is active.
func (l *Lifecycle) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stop != nil
}

// ProcessOpened binds pid and starts sampling. A second call while running
// only rebinds the pid.
func (l *Lifecycle) ProcessOpened(pid int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.api.SetProcessID(pid)
	l.hud.setAttached(pid)
	if l.hook != nil {
		if err := l.hook.Start(); err != nil {
			log.Warn("lifecycle: starting hotkeys: %v", err)
		}
	}

	if l.stop != nil {
		return
	}
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go l.run(l.stop, l.done)
	log.Info("lifecycle: attached to pid %d", pid)
}

// ProcessClosed stops hotkeys and sampling and drops the label.
func (l *Lifecycle) ProcessClosed() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.hook != nil {
		l.hook.Stop()
	}
	l.api.SetProcessID(0)

	if l.stop != nil {
		close(l.stop)
		<-l.done
		l.stop, l.done = nil, nil
		log.Info("lifecycle: detached")
	}

	l.hud.DropLabel()
	l.hud.setAttached(0)
}

// Close is ProcessClosed for overlay shutdown.
func (l *Lifecycle) Close() {
	l.ProcessClosed()
}

func (l *Lifecycle) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			l.hud.Tick()
		}
	}
}
