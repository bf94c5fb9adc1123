// Package transform holds the per-object transform stack used while an
// object paints itself.
//
// The stack is an ordered list of scale and translate operations. Entries
// apply in push order: the first entry pushed is applied to a point first.
// There is no pop; the whole stack is reset at the start of every pass.
package transform

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Kind identifies the affine operation of a Transform.
type Kind uint8

const (
	// Scale multiplies x and y by the transform's magnitudes.
	Scale Kind = iota
	// Translate adds the transform's magnitudes to x and y.
	Translate
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Scale:
		return "scale"
	case Translate:
		return "translate"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Transform is one affine operation in a Stack.
type Transform struct {
	Kind Kind
	X, Y float64
}

// ScaleBy returns a scale transform.
func ScaleBy(x, y float64) Transform { return Transform{Kind: Scale, X: x, Y: y} }

// TranslateBy returns a translate transform.
func TranslateBy(x, y float64) Transform { return Transform{Kind: Translate, X: x, Y: y} }

// Apply maps a point through this single transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	if t.Kind == Scale {
		return x * t.X, y * t.Y
	}
	return x + t.X, y + t.Y
}

// Matrix returns the transform as a gg affine matrix.
func (t Transform) Matrix() gg.Matrix {
	if t.Kind == Scale {
		return gg.Scale(t.X, t.Y)
	}
	return gg.Translate(t.X, t.Y)
}

func (t Transform) String() string {
	return fmt.Sprintf("%s(%g, %g)", t.Kind, t.X, t.Y)
}

// Stack is an ordered sequence of transforms.
// The zero value is an empty stack ready for use.
type Stack struct {
	entries []Transform
}

// Push appends t. It is applied after every entry already on the stack.
func (s *Stack) Push(t Transform) {
	s.entries = append(s.entries, t)
}

// Reset empties the stack, keeping its capacity for the next pass.
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Transforms returns a copy of the entries in application order.
func (s *Stack) Transforms() []Transform {
	out := make([]Transform, len(s.entries))
	copy(out, s.entries)
	return out
}

// Resolve maps a point through every entry, first pushed first.
func (s *Stack) Resolve(x, y float64) (float64, float64) {
	for _, t := range s.entries {
		x, y = t.Apply(x, y)
	}
	return x, y
}

// ResolveSize maps a width and height through the scale entries only.
// Sizes are vectors, so translations do not affect them.
func (s *Stack) ResolveSize(w, h float64) (float64, float64) {
	for _, t := range s.entries {
		if t.Kind == Scale {
			w, h = w*t.X, h*t.Y
		}
	}
	return w, h
}

// Matrix composes the stack into a single gg matrix that maps points the
// same way Resolve does.
func (s *Stack) Matrix() gg.Matrix {
	m := gg.Identity()
	for _, t := range s.entries {
		// gg multiplies right to left: t.Matrix() applies after m.
		m = t.Matrix().Multiply(m)
	}
	return m
}
