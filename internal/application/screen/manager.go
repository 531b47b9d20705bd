package screen

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/screenkit/internal/application/input"
	"github.com/younwookim/screenkit/internal/application/state"
	"github.com/younwookim/screenkit/internal/infrastructure/logging"
)

// flight is a screen change in progress.
type flight struct {
	out, in    Transition
	from       int // NoScreen when nothing was showing
	to         int
	next       Screen
	handedOver bool
}

// BasicManager implements the screen/transition state machine.
//
// While steady, every call goes to the current screen. While transitioning,
// the outgoing transition runs first with the outgoing screen; once it
// finishes the current screen is swapped (the handover) and the incoming
// transition runs with the incoming screen. At most one transition is in
// flight.
type BasicManager struct {
	registry *Registry
	current  Screen
	active   *flight
	logger   *slog.Logger
}

// NewManager creates a manager with no screens.
// A nil logger selects the shared logger.
func NewManager(logger *slog.Logger) *BasicManager {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &BasicManager{
		registry: NewRegistry(),
		logger:   logger,
	}
}

// AddScreen registers s. It does not call Initialise; the game container does.
func (m *BasicManager) AddScreen(s Screen) error {
	if err := m.registry.Register(s); err != nil {
		return err
	}
	m.logger.Debug("screen registered", "screen", s.ID())
	return nil
}

// Screen returns the registered screen with the given id
func (m *BasicManager) Screen(id int) (Screen, error) {
	return m.registry.Lookup(id)
}

// ScreenIDs returns the registered ids in ascending order
func (m *BasicManager) ScreenIDs() []int {
	return m.registry.IDs()
}

// EnterScreen switches to the screen registered under id.
//
// With both transitions nil the switch happens before EnterScreen returns.
// Otherwise the manager starts transitioning; a nil side is treated as an
// instant transition. Fails with UnknownScreenError if id is not registered
// and with TransitionInProgressError if a transition is in flight. On error
// the manager state is unchanged.
func (m *BasicManager) EnterScreen(id int, out, in Transition) error {
	if m.active != nil {
		return &TransitionInProgressError{Requested: id, Pending: m.active.to}
	}
	next, err := m.registry.Lookup(id)
	if err != nil {
		return err
	}

	from := m.CurrentScreenID()
	if out == nil && in == nil {
		m.current = next
		m.logger.Debug("screen entered", "from", from, "to", id)
		return nil
	}

	m.active = &flight{
		out:  orInstant(out),
		in:   orInstant(in),
		from: from,
		to:   id,
		next: next,
	}
	m.logger.Debug("screen transition started", "from", from, "to", id)
	if l, ok := m.current.(TransitionListener); ok {
		l.PreTransitionOut(id)
	}
	return nil
}

// Update advances the active transition and forwards delta to the screen that
// currently owns the frame. Negative delta is treated as zero.
func (m *BasicManager) Update(gc Container, delta float64) error {
	if delta < 0 {
		delta = 0
	}

	f := m.active
	if f == nil {
		return m.updateCurrent(gc, delta)
	}

	if !f.handedOver {
		f.out.Update(delta)
		if f.out.Finished() {
			// The incoming screen takes this frame; the incoming transition
			// starts counting on the next update.
			m.handover(f)
		}
		return m.updateCurrent(gc, delta)
	}

	f.in.Update(delta)
	err := m.updateCurrent(gc, delta)
	if f.in.Finished() {
		m.finish(f)
	}
	return err
}

func (m *BasicManager) updateCurrent(gc Container, delta float64) error {
	if m.current == nil {
		return nil
	}
	if err := m.current.Update(gc, m, delta); err != nil {
		return fmt.Errorf("screen %d: %w", m.current.ID(), err)
	}
	return nil
}

func (m *BasicManager) handover(f *flight) {
	if l, ok := m.current.(TransitionListener); ok {
		l.PostTransitionOut(f.to)
	}
	m.current = f.next
	f.handedOver = true
	m.logger.Debug("screen handover", "from", f.from, "to", f.to)
	if l, ok := m.current.(TransitionListener); ok {
		l.PreTransitionIn(f.from)
	}
	if f.in.Finished() {
		m.finish(f)
	}
}

func (m *BasicManager) finish(f *flight) {
	m.active = nil
	m.logger.Debug("screen transition finished", "from", f.from, "to", f.to)
	if l, ok := m.current.(TransitionListener); ok {
		l.PostTransitionIn(f.from)
	}
}

// Interpolate forwards alpha, clamped to [0,1], to the current screen if it
// implements Interpolator.
func (m *BasicManager) Interpolate(gc Container, alpha float64) {
	i, ok := m.current.(Interpolator)
	if !ok {
		return
	}
	i.Interpolate(gc, clamp01(alpha))
}

// Render draws the current screen, then the overlay of the transition that
// governs it.
func (m *BasicManager) Render(gc Container, dst *ebiten.Image) {
	if m.current != nil {
		m.current.Render(gc, dst)
	}

	f := m.active
	if f == nil {
		return
	}
	if f.handedOver {
		f.in.Render(m.current, dst)
	} else {
		f.out.Render(m.current, dst)
	}
}

// HandleInput forwards src to the current screen
func (m *BasicManager) HandleInput(src input.Source) {
	if m.current != nil {
		m.current.HandleInput(src)
	}
}

// State reports whether a transition is in flight
func (m *BasicManager) State() state.ManagerState {
	if m.active != nil {
		return state.StateTransitioning
	}
	return state.StateSteady
}

// IsTransitioning reports whether a transition is in flight
func (m *BasicManager) IsTransitioning() bool {
	return m.active != nil
}

// CurrentScreenID returns the id of the screen receiving updates, or
// NoScreen before the first screen is entered.
func (m *BasicManager) CurrentScreenID() int {
	if m.current == nil {
		return NoScreen
	}
	return m.current.ID()
}

// NextScreenID returns the transition target. ok is false when steady.
func (m *BasicManager) NextScreenID() (id int, ok bool) {
	if m.active == nil {
		return NoScreen, false
	}
	return m.active.to, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
