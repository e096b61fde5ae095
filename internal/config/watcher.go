// ABOUTME: Polling file watcher used to hot-reload settings.yaml while the overlay runs
// ABOUTME: Compares mtime and size each interval; Start/Stop are idempotent

package config

import (
	"os"
	"sync"
	"time"
)

// fileStamp identifies a version of a file on disk.
type fileStamp struct {
	mod  time.Time
	size int64
}

// Watcher calls onChange when any of its files is created, modified, or removed.
type Watcher struct {
	paths    []string
	onChange func()
	interval time.Duration

	mu       sync.Mutex
	stamps   map[string]fileStamp
	running  bool
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher polling paths every interval.
// A non-positive interval uses DefaultWatchInterval.
func NewWatcher(paths []string, interval time.Duration, onChange func()) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		interval: interval,
		stamps:   make(map[string]fileStamp),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start records the current state of the files and begins polling.
// Subsequent calls are no-ops.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.snapshotLocked()
	w.mu.Unlock()

	go w.loop()
}

// Stop halts polling and waits for the poll goroutine to exit if it was started.
// Safe to call multiple times and concurrently.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		started := w.running
		w.running = false
		w.mu.Unlock()

		close(w.stopCh)
		if started {
			<-w.done
		}
	})
}

// ForceCheck runs one comparison immediately, calling onChange synchronously on change.
func (w *Watcher) ForceCheck() bool {
	w.mu.Lock()
	changed := w.checkLocked()
	if changed {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if changed {
		w.onChange()
	}
	return changed
}

func (w *Watcher) loop() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.ForceCheck()
		}
	}
}

// checkLocked reports whether any file differs from its snapshot. Must hold mu.
func (w *Watcher) checkLocked() bool {
	for _, path := range w.paths {
		prev, existed := w.stamps[path]
		info, err := os.Stat(path)
		if err != nil {
			if existed {
				return true
			}
			continue
		}
		if !existed || !info.ModTime().Equal(prev.mod) || info.Size() != prev.size {
			return true
		}
	}
	return false
}

// snapshotLocked records the current stamps. Must hold mu.
func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.stamps, path)
			continue
		}
		w.stamps[path] = fileStamp{mod: info.ModTime(), size: info.Size()}
	}
}
