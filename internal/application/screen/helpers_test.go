package screen

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/screenkit/internal/application/input"
	"github.com/younwookim/screenkit/internal/infrastructure/logging"
)

// journal records calls across screens and transitions in order
type journal struct {
	events []string
}

func (j *journal) add(format string, args ...any) {
	j.events = append(j.events, fmt.Sprintf(format, args...))
}

func (j *journal) reset() {
	j.events = nil
}

// mockScreen is a test double for Screen
type mockScreen struct {
	id          int
	log         *journal
	initialised int
	updates     int
	renders     int
	inputs      int
	lastDelta   float64
	updateErr   error
	onUpdate    func(sm Manager)
}

func newMockScreen(id int, log *journal) *mockScreen {
	return &mockScreen{id: id, log: log}
}

func (m *mockScreen) ID() int { return m.id }

func (m *mockScreen) Initialise(Container) {
	m.initialised++
}

func (m *mockScreen) Update(gc Container, sm Manager, delta float64) error {
	m.updates++
	m.lastDelta = delta
	if m.log != nil {
		m.log.add("update %d", m.id)
	}
	if m.onUpdate != nil {
		m.onUpdate(sm)
	}
	return m.updateErr
}

func (m *mockScreen) Render(gc Container, dst *ebiten.Image) {
	m.renders++
	if m.log != nil {
		m.log.add("render %d", m.id)
	}
}

func (m *mockScreen) HandleInput(input.Source) {
	m.inputs++
}

// interpolatingScreen also implements Interpolator
type interpolatingScreen struct {
	*mockScreen
	alphas []float64
}

func (s *interpolatingScreen) Interpolate(gc Container, alpha float64) {
	s.alphas = append(s.alphas, alpha)
}

// listeningScreen also implements TransitionListener
type listeningScreen struct {
	*mockScreen
}

func (s *listeningScreen) PreTransitionOut(next int)     { s.log.add("preOut %d->%d", s.id, next) }
func (s *listeningScreen) PostTransitionOut(next int)    { s.log.add("postOut %d->%d", s.id, next) }
func (s *listeningScreen) PreTransitionIn(previous int)  { s.log.add("preIn %d<-%d", s.id, previous) }
func (s *listeningScreen) PostTransitionIn(previous int) { s.log.add("postIn %d<-%d", s.id, previous) }

// mockTransition finishes after duration seconds of updates
type mockTransition struct {
	name     string
	log      *journal
	elapsed  float64
	duration float64
	updates  int
	renders  []int
}

func newMockTransition(name string, duration float64, log *journal) *mockTransition {
	return &mockTransition{name: name, duration: duration, log: log}
}

func (t *mockTransition) Update(delta float64) {
	t.updates++
	t.elapsed += delta
}

func (t *mockTransition) Render(s Screen, dst *ebiten.Image) {
	id := NoScreen
	if s != nil {
		id = s.ID()
	}
	t.renders = append(t.renders, id)
	if t.log != nil {
		t.log.add("overlay %s %d", t.name, id)
	}
}

func (t *mockTransition) Finished() bool {
	return t.elapsed >= t.duration
}

// stubContainer is a fixed-size Container
type stubContainer struct{}

func (stubContainer) Width() int  { return 320 }
func (stubContainer) Height() int { return 240 }

func newTestManager() *BasicManager {
	return NewManager(logging.Discard())
}
