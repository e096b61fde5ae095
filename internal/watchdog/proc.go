// ABOUTME: Process listing from a procfs mount, matching by comm or argv[0] basename
// ABOUTME: Handles Wine/Proton where the game shows up as "gta_sa.exe" with a Windows path

package watchdog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrUnsupported is returned when the host has no usable process table.
var ErrUnsupported = errors.New("watchdog: process listing unsupported on this host")

// Process is one entry of the process table.
type Process struct {
	PID  int
	Name string
	// Exe is the basename of argv[0], which may differ from Name.
	Exe string
}

// Lister returns the current process table.
type Lister func() ([]Process, error)

// ProcLister lists processes from the procfs mounted at root ("/proc").
func ProcLister(root string) Lister {
	return func() ([]Process, error) {
		entries, err := os.ReadDir(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, ErrUnsupported
			}
			return nil, fmt.Errorf("reading %s: %w", root, err)
		}

		procs := make([]Process, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			pid, err := strconv.Atoi(e.Name())
			if err != nil || pid <= 0 {
				continue
			}
			dir := filepath.Join(root, e.Name())
			comm, err := os.ReadFile(filepath.Join(dir, "comm"))
			if err != nil {
				// Exited between ReadDir and here.
				continue
			}
			p := Process{PID: pid, Name: strings.TrimSpace(string(comm))}
			if cmdline, err := os.ReadFile(filepath.Join(dir, "cmdline")); err == nil {
				p.Exe = argv0Base(cmdline)
			}
			procs = append(procs, p)
		}
		return procs, nil
	}
}

func argv0Base(cmdline []byte) string {
	arg0, _, _ := strings.Cut(string(cmdline), "\x00")
	if i := strings.LastIndexAny(arg0, `/\`); i >= 0 {
		arg0 = arg0[i+1:]
	}
	return arg0
}

// Matches reports whether p is the process called name, with or without
// a trailing ".exe". Comparison ignores case.
func Matches(p Process, name string) bool {
	return nameMatches(p.Name, name) || nameMatches(p.Exe, name)
}

func nameMatches(candidate, name string) bool {
	if candidate == "" || name == "" {
		return false
	}
	return strings.EqualFold(candidate, name) || strings.EqualFold(candidate, name+".exe")
}
