package bridge

import (
	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/gfx"
	"github.com/gogpu/ggpd/interaction"
)

// Inlet is a host inlet handle.
type Inlet interface {
	Free()
}

// Outlet is a host outlet handle.
type Outlet interface {
	Send(msg ggpd.Message)
	Free()
}

// Canvas is the host canvas an object lives on. The same value is passed
// to the drawing backend as its host, so a canvas that supports GUI
// objects also implements tkcanvas.Host or callback.Host.
type Canvas interface {
	// NewInlet creates inlet index of o. signal marks a signal inlet.
	NewInlet(o *Object, index int, signal bool) (Inlet, error)

	// NewOutlet creates outlet index of o. signal marks a signal outlet.
	NewOutlet(o *Object, index int, signal bool) (Outlet, error)

	// Register adds o to the canvas object list.
	Register(o *Object) error

	// Unregister removes o from the canvas object list.
	Unregister(o *Object)

	// Diagnostic reports a non-fatal error for o, such as a dropped
	// message.
	Diagnostic(o *Object, err error)
}

// Poster is implemented by canvases with a console.
type Poster interface {
	Post(o *Object, msg string)
}

// Binding is the interpreter side of an object. Message is the only
// required method; the optional interfaces below add behaviour.
type Binding interface {
	// Message handles msg arriving on inlet.
	Message(o *Object, inlet int, msg ggpd.Message) error
}

// Initializer is called once after the object's handles exist and before
// it is registered with the canvas.
type Initializer interface {
	Init(o *Object) error
}

// Painter draws a GUI object.
type Painter interface {
	Paint(o *Object, p *gfx.Painter) error
}

// PointerHandler receives pointer events for a GUI object.
type PointerHandler interface {
	Pointer(o *Object, ev interaction.Event) error
}

// Performer processes one block of signals. in and out hold one slice per
// signal inlet and outlet.
type Performer interface {
	Perform(o *Object, in, out [][]float64) error
}

// Freer releases interpreter state for the object. It is the last call
// an object makes into its binding.
type Freer interface {
	Free(o *Object)
}
