package interaction

import "testing"

func TestDragBeforeDownIgnored(t *testing.T) {
	var s State
	s.Drag(10, 20)
	if s.Down() {
		t.Error("Drag before ButtonDown set Down() = true")
	}
	if x, y := s.Origin(); x != 0 || y != 0 {
		t.Errorf("Origin() after stray drag = (%d, %d), want (0, 0)", x, y)
	}
}

func TestPressDragRelease(t *testing.T) {
	var s State
	s.ButtonDown(3, 4)
	if !s.Down() {
		t.Fatal("Down() = false after ButtonDown")
	}
	s.Drag(7, 9)
	if x, y := s.Origin(); x != 7 || y != 9 {
		t.Errorf("Origin() = (%d, %d), want (7, 9)", x, y)
	}
	s.ButtonUp()
	if s.Down() {
		t.Error("Down() = true after ButtonUp")
	}
	s.Drag(100, 100)
	if x, y := s.Origin(); x != 7 || y != 9 {
		t.Errorf("Origin() after release drag = (%d, %d), want (7, 9)", x, y)
	}
}

func TestApply(t *testing.T) {
	var s State
	events := []Event{
		{Kind: Move, X: 1, Y: 1},
		{Kind: Drag, X: 2, Y: 2},
		{Kind: Down, X: 5, Y: 6},
		{Kind: Move, X: 50, Y: 60},
		{Kind: Drag, X: 8, Y: 9},
	}
	for _, ev := range events {
		s.Apply(ev)
	}
	if !s.Down() {
		t.Error("Down() = false, want true")
	}
	if x, y := s.Origin(); x != 8 || y != 9 {
		t.Errorf("Origin() = (%d, %d), want (8, 9)", x, y)
	}
	s.Apply(Event{Kind: Up})
	if s.Down() {
		t.Error("Down() = true after Up event")
	}
}

func TestEventKindString(t *testing.T) {
	tests := map[EventKind]string{Down: "down", Up: "up", Move: "move", Drag: "drag", EventKind(9): "EventKind(9)"}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
