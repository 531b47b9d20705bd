// Package state defines the states of the screen manager's transition machine.
package state

// ManagerState represents whether the screen manager is switching screens
type ManagerState int

const (
	// StateSteady means a single screen receives every frame call.
	StateSteady ManagerState = iota
	// StateTransitioning means an outgoing/incoming transition pair is in flight.
	StateTransitioning
)

// String returns the string representation of the manager state
func (s ManagerState) String() string {
	switch s {
	case StateSteady:
		return "Steady"
	case StateTransitioning:
		return "Transitioning"
	default:
		return "Unknown"
	}
}
