// ABOUTME: Test doubles for the HUD: scripted game-state API, in-memory label, counting store
// ABOUTME: The API records every query so tests can assert short-circuit behavior

package hud

import (
	"errors"
	"sync"

	"github.com/mauromedda/streethud-go/internal/config"
	"github.com/mauromedda/streethud-go/internal/gamestate"
)

type fakeAPI struct {
	mu sync.Mutex

	pid      int
	pos      gamestate.Vec3
	posOK    bool
	angle    float64
	angleOK  bool
	zone     string
	zoneOK   bool
	interior bool
	menu     bool
	vehicle  bool

	calls map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: make(map[string]int)}
}

// ready configures a renderable sample.
func (f *fakeAPI) ready(pos gamestate.Vec3, angle float64, zone string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pos, f.posOK = pos, true
	f.angle, f.angleOK = angle, true
	f.zone, f.zoneOK = zone, true
}

func (f *fakeAPI) set(fn func(f *fakeAPI)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) resetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = make(map[string]int)
}

func (f *fakeAPI) record(name string) {
	f.calls[name]++
}

func (f *fakeAPI) SetProcessID(pid int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pid = pid
}

func (f *fakeAPI) boundPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pid
}

func (f *fakeAPI) PlayerCoordinates() (gamestate.Vec3, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("coords")
	return f.pos, f.posOK
}

func (f *fakeAPI) PlayerFacingAngle() (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("angle")
	return f.angle, f.angleOK
}

func (f *fakeAPI) PlayerCurrentZone() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("zone")
	return f.zone, f.zoneOK
}

func (f *fakeAPI) IsPlayerInAnyInterior() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("interior")
	return f.interior
}

func (f *fakeAPI) IsPlayerInEscapeMenu() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("menu")
	return f.menu
}

func (f *fakeAPI) IsPlayerInAnyVehicle() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("vehicle")
	return f.vehicle
}

type fakeLabel struct {
	mu        sync.Mutex
	spec      LabelSpec
	x, y      int
	size      int
	text      string
	visible   bool
	destroyed bool
}

var _ Label = (*fakeLabel)(nil)

func (l *fakeLabel) Position() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.x, l.y
}

func (l *fakeLabel) SetPosition(x, y int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.x, l.y = x, y
}

func (l *fakeLabel) FontSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

func (l *fakeLabel) SetFontSize(size int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.size = size
}

func (l *fakeLabel) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}

func (l *fakeLabel) SetText(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.text = text
}

func (l *fakeLabel) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.visible
}

func (l *fakeLabel) SetVisible(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.visible = v
}

func (l *fakeLabel) Destroy() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroyed = true
}

// labelFactory records every label it creates.
type labelFactory struct {
	mu     sync.Mutex
	labels []*fakeLabel
}

func (f *labelFactory) New(spec LabelSpec) Label {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := &fakeLabel{spec: spec, x: spec.X, y: spec.Y, size: spec.Size, text: spec.Text}
	f.labels = append(f.labels, l)
	return l
}

func (f *labelFactory) created() []*fakeLabel {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*fakeLabel(nil), f.labels...)
}

type fakeStore struct {
	mu    sync.Mutex
	saves []config.HudPreferences
	err   error
}

func (s *fakeStore) Save(p config.HudPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saves = append(s.saves, p)
	return nil
}

func (s *fakeStore) saved() []config.HudPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]config.HudPreferences(nil), s.saves...)
}

var errDiskFull = errors.New("disk full")

type fixture struct {
	api    *fakeAPI
	labels *labelFactory
	store  *fakeStore
	hud    *HUD
}

func newFixture(prefs config.HudPreferences) *fixture {
	f := &fixture{
		api:    newFakeAPI(),
		labels: &labelFactory{},
		store:  &fakeStore{},
	}
	f.hud = New(Options{
		API:         f.api,
		NewLabel:    f.labels.New,
		Store:       f.store,
		Preferences: prefs,
		Enabled:     true,
	})
	return f
}

// label returns the single label created so far, or nil.
func (f *fixture) label() *fakeLabel {
	ls := f.labels.created()
	if len(ls) == 0 {
		return nil
	}
	return ls[len(ls)-1]
}
