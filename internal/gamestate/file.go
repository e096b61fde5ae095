// ABOUTME: FileSource implements API from a YAML snapshot written by an external memory reader
// ABOUTME: Re-parses only when the file changes; pid mismatch or absent fields mean unavailable

package gamestate

import (
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/mauromedda/streethud-go/internal/log"
)

// Snapshot is the on-disk layout produced by the reader process.
//
//	pid: 4242
//	position: [1523.4, -1670.1, 13.5]
//	facing_angle: 10
//	zone: Rodeo
//	interior: false
//	escape_menu: false
//	vehicle: true
type Snapshot struct {
	PID         int       `yaml:"pid"`
	Position    []float64 `yaml:"position"`
	FacingAngle *float64  `yaml:"facing_angle"`
	Zone        *string   `yaml:"zone"`
	Interior    bool      `yaml:"interior"`
	EscapeMenu  bool      `yaml:"escape_menu"`
	Vehicle     bool      `yaml:"vehicle"`
}

// FileSource serves API queries from the latest snapshot file.
type FileSource struct {
	path string

	mu      sync.Mutex
	pid     int
	modTime time.Time
	size    int64
	snap    *Snapshot
}

var _ API = (*FileSource)(nil)

// NewFileSource creates a source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// SetProcessID binds the source to pid and drops any cached snapshot.
func (s *FileSource) SetProcessID(pid int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pid = pid
	s.snap = nil
	s.modTime = time.Time{}
	s.size = 0
}

// current returns the snapshot for the bound pid, or nil when unavailable.
func (s *FileSource) current() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pid == 0 {
		return nil
	}

	info, err := os.Stat(s.path)
	if err != nil {
		s.snap = nil
		return nil
	}
	if s.snap == nil || !info.ModTime().Equal(s.modTime) || info.Size() != s.size {
		s.snap = s.readLocked()
		s.modTime = info.ModTime()
		s.size = info.Size()
	}

	if s.snap == nil || s.snap.PID != s.pid {
		return nil
	}
	return s.snap
}

func (s *FileSource) readLocked() *Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		// The writer may be mid-rewrite; the next change retries.
		log.Debug("gamestate: parse %s: %v", s.path, err)
		return nil
	}
	return &snap
}

// PlayerCoordinates returns the player's position.
func (s *FileSource) PlayerCoordinates() (Vec3, bool) {
	snap := s.current()
	if snap == nil || len(snap.Position) != 3 {
		return Vec3{}, false
	}
	return Vec3{X: snap.Position[0], Y: snap.Position[1], Z: snap.Position[2]}, true
}

// PlayerFacingAngle returns the player's heading in degrees.
func (s *FileSource) PlayerFacingAngle() (float64, bool) {
	snap := s.current()
	if snap == nil || snap.FacingAngle == nil {
		return 0, false
	}
	return *snap.FacingAngle, true
}

// PlayerCurrentZone returns the normalized zone name.
func (s *FileSource) PlayerCurrentZone() (string, bool) {
	snap := s.current()
	if snap == nil || snap.Zone == nil {
		return "", false
	}
	zone := NormalizeZone(*snap.Zone)
	if zone == "" {
		return "", false
	}
	return zone, true
}

// IsPlayerInAnyInterior reports false when unavailable.
func (s *FileSource) IsPlayerInAnyInterior() bool {
	snap := s.current()
	return snap != nil && snap.Interior
}

// IsPlayerInEscapeMenu reports false when unavailable.
func (s *FileSource) IsPlayerInEscapeMenu() bool {
	snap := s.current()
	return snap != nil && snap.EscapeMenu
}

// IsPlayerInAnyVehicle reports false when unavailable.
func (s *FileSource) IsPlayerInAnyVehicle() bool {
	snap := s.current()
	return snap != nil && snap.Vehicle
}

// NormalizeZone composes the zone name to NFC, drops control characters and
// trims surrounding space.
func NormalizeZone(z string) string {
	z = norm.NFC.String(z)
	z = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, z)
	return strings.TrimSpace(z)
}
