// Package interaction tracks pointer state for scripted GUI objects.
package interaction

import "fmt"

// EventKind is the kind of a pointer event. The numbering matches what the
// host passes to scripts.
type EventKind int

const (
	Down EventKind = iota
	Up
	Move
	Drag
)

var eventKindNames = [...]string{
	Down: "down",
	Up:   "up",
	Move: "move",
	Drag: "drag",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a pointer event in object-local coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}

// State holds the drag origin and button state of one object.
// The zero value has the button up and the origin at (0, 0).
type State struct {
	x, y int
	down bool
}

// ButtonDown records the press position and marks the button down.
func (s *State) ButtonDown(x, y int) {
	s.x, s.y = x, y
	s.down = true
}

// Drag updates the drag position. Hosts deliver motion before any press,
// so a drag while the button is up is ignored.
func (s *State) Drag(x, y int) {
	if !s.down {
		return
	}
	s.x, s.y = x, y
}

// ButtonUp clears the button state. The last position is kept.
func (s *State) ButtonUp() {
	s.down = false
}

// Apply dispatches ev to the matching method. Move events carry no state.
func (s *State) Apply(ev Event) {
	switch ev.Kind {
	case Down:
		s.ButtonDown(ev.X, ev.Y)
	case Up:
		s.ButtonUp()
	case Drag:
		s.Drag(ev.X, ev.Y)
	}
}

// Down reports whether the button is held.
func (s *State) Down() bool { return s.down }

// Origin returns the last press or drag position.
func (s *State) Origin() (x, y int) { return s.x, s.y }
