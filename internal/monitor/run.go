// ABOUTME: Entry point for the terminal monitor; wires the HUD status bus into a tea.Program
// ABOUTME: Blocks until the user quits or the context is cancelled

package monitor

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/streethud-go/internal/eventbus"
	"github.com/mauromedda/streethud-go/internal/hotkey"
	"github.com/mauromedda/streethud-go/internal/hud"
)

// Options configures Run.
type Options struct {
	ProcessName string
	Deliver     func(hotkey.Chord) bool
	Bus         *eventbus.Bus[hud.Status]
	Initial     hud.Status
}

// Run starts the monitor and blocks until exit. A cancelled ctx is a
// normal exit and returns nil.
func Run(ctx context.Context, opts Options) error {
	m := NewModel(opts.ProcessName, opts.Deliver, opts.Initial)
	if opts.Bus != nil {
		m.feed = newStatusFeed()
		unsubscribe := opts.Bus.Subscribe(m.feed.push, true)
		defer unsubscribe()
	}

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}

// statusFeed hands the newest status to the program without ever blocking
// the publisher; older undelivered statuses are dropped.
type statusFeed struct {
	ch chan hud.Status
}

func newStatusFeed() *statusFeed {
	return &statusFeed{ch: make(chan hud.Status, 1)}
}

func (f *statusFeed) push(s hud.Status) {
	for {
		select {
		case f.ch <- s:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

func (f *statusFeed) next() tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(<-f.ch)
	}
}
