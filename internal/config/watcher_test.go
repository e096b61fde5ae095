// ABOUTME: Tests for the polling settings watcher
// ABOUTME: Validates change detection, removal detection, and idempotent start/stop

package config

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_DetectsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("enabled: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var called atomic.Int32
	w := NewWatcher([]string{path}, 20*time.Millisecond, func() {
		called.Add(1)
	})
	w.Start()
	defer w.Stop()

	// Size differs, so detection does not depend on mtime granularity.
	if err := os.WriteFile(path, []byte("enabled: false\nvehicle_only: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for called.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if called.Load() == 0 {
		t.Error("expected onChange after file modification")
	}
}

func TestWatcher_NoChangeNoCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("enabled: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var called atomic.Int32
	w := NewWatcher([]string{path}, 20*time.Millisecond, func() {
		called.Add(1)
	})
	w.Start()
	time.Sleep(150 * time.Millisecond)
	w.Stop()

	if called.Load() != 0 {
		t.Errorf("expected no onChange calls, got %d", called.Load())
	}
}

func TestWatcher_ForceCheckCreationAndRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	var called atomic.Int32
	w := NewWatcher([]string{path}, time.Hour, func() {
		called.Add(1)
	})

	if w.ForceCheck() {
		t.Fatal("absent file should not count as a change")
	}

	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if !w.ForceCheck() {
		t.Error("creation should be detected")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !w.ForceCheck() {
		t.Error("removal should be detected")
	}
	if called.Load() != 2 {
		t.Errorf("onChange calls = %d; want 2", called.Load())
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w := NewWatcher(nil, 0, func() {})
	w.Stop()
	w.Stop()
}

func TestWatcher_ConcurrentStop(t *testing.T) {
	w := NewWatcher(nil, 10*time.Millisecond, func() {})
	w.Start()
	w.Start()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Stop()
		}()
	}
	wg.Wait()
}
