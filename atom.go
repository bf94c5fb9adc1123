package ggpd

import (
	"strconv"
	"strings"
)

// Atom is a single message element: either a float or a symbol.
// The zero value is the float 0.
type Atom struct {
	sym   string
	f     float64
	isSym bool
}

// Float returns a float atom.
func Float(f float64) Atom { return Atom{f: f} }

// Symbol returns a symbol atom.
func Symbol(s string) Atom { return Atom{sym: s, isSym: true} }

// Floats converts a list of numbers to float atoms.
func Floats(fs ...float64) []Atom {
	out := make([]Atom, len(fs))
	for i, f := range fs {
		out[i] = Float(f)
	}
	return out
}

// IsFloat reports whether a holds a float.
func (a Atom) IsFloat() bool { return !a.isSym }

// IsSymbol reports whether a holds a symbol.
func (a Atom) IsSymbol() bool { return a.isSym }

// AsFloat returns the float value and true if a is a float.
func (a Atom) AsFloat() (float64, bool) {
	if a.isSym {
		return 0, false
	}
	return a.f, true
}

// AsSymbol returns the symbol value and true if a is a symbol.
func (a Atom) AsSymbol() (string, bool) {
	if !a.isSym {
		return "", false
	}
	return a.sym, true
}

// String formats a the way the host prints atoms in its console.
func (a Atom) String() string {
	if a.isSym {
		return a.sym
	}
	return strconv.FormatFloat(a.f, 'g', -1, 64)
}

// Selectors with a fixed meaning in the host.
const (
	SelBang   = "bang"
	SelFloat  = "float"
	SelSymbol = "symbol"
	SelList   = "list"
)

// Message is what travels between an outlet and an inlet: a selector
// followed by arguments.
type Message struct {
	Selector string
	Args     []Atom
}

// NewMessage builds a message from a selector and arguments.
func NewMessage(sel string, args ...Atom) Message {
	return Message{Selector: sel, Args: args}
}

// MessageFromAtoms builds a message the way the host does for typed input:
// a leading float makes a "float" (one atom) or "list" message, a leading
// symbol becomes the selector.
func MessageFromAtoms(atoms []Atom) Message {
	switch {
	case len(atoms) == 0:
		return Message{Selector: SelBang}
	case atoms[0].IsFloat() && len(atoms) == 1:
		return Message{Selector: SelFloat, Args: atoms}
	case atoms[0].IsFloat():
		return Message{Selector: SelList, Args: atoms}
	default:
		return Message{Selector: atoms[0].sym, Args: atoms[1:]}
	}
}

// ParseAtoms splits s on whitespace and converts numeric words to floats.
func ParseAtoms(s string) []Atom {
	fields := strings.Fields(s)
	out := make([]Atom, 0, len(fields))
	for _, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			out = append(out, Float(v))
			continue
		}
		out = append(out, Symbol(f))
	}
	return out
}

func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Selector)
	for _, a := range m.Args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	return b.String()
}
