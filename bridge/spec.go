package bridge

import "fmt"

// Spec is the arity and GUI declaration of an object.
// Signal ports are the first SignalInlets inlets and the first
// SignalOutlets outlets.
type Spec struct {
	Inlets        int
	Outlets       int
	SignalInlets  int
	SignalOutlets int

	GUI    bool
	Width  int
	Height int
}

// Validate checks the counts.
func (s Spec) Validate() error {
	switch {
	case s.Inlets < 0 || s.Outlets < 0 || s.SignalInlets < 0 || s.SignalOutlets < 0:
		return fmt.Errorf("%w: negative count in %+v", ErrInvalidSpec, s)
	case s.SignalInlets > s.Inlets:
		return fmt.Errorf("%w: %d signal inlets exceed %d inlets", ErrInvalidSpec, s.SignalInlets, s.Inlets)
	case s.SignalOutlets > s.Outlets:
		return fmt.Errorf("%w: %d signal outlets exceed %d outlets", ErrInvalidSpec, s.SignalOutlets, s.Outlets)
	case s.Width < 0 || s.Height < 0:
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidSpec, s.Width, s.Height)
	}
	return nil
}
