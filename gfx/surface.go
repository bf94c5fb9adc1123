package gfx

import (
	"github.com/gogpu/ggpd/interaction"
	"github.com/gogpu/ggpd/transform"
)

// Surface is the per-object drawing state behind one backend.
//
// A Surface is owned by exactly one object and is only used from the host
// dispatch thread.
type Surface interface {
	// Backend returns the registered backend name.
	Backend() string

	// BeginPass starts a drawing pass. first marks the first pass after the
	// object became visible. The transform stack is emptied.
	BeginPass(first bool) error

	// PushTransform appends a transform that applies to every primitive
	// emitted after it in the current pass.
	PushTransform(t transform.Transform) error

	// ResetTransform empties the transform stack mid-pass.
	ResetTransform() error

	// Emit draws one primitive.
	Emit(p Primitive) error

	// EndPass finishes the pass.
	EndPass() error

	// PointerEvent records a pointer event for later queries.
	PointerEvent(ev interaction.Event) error

	// Size returns the object size in unzoomed canvas units.
	Size() (w, h int)

	// SetSize changes the object size.
	SetSize(w, h int) error

	// Clear erases everything drawn so far. removed is true when the object
	// is being deleted from its canvas.
	Clear(removed bool) error

	// Close releases the surface. Close is idempotent.
	Close() error
}

// Interactive is implemented by surfaces that keep pointer state locally.
type Interactive interface {
	Interaction() *interaction.State
}

// Displacer is implemented by surfaces that can move what they have drawn
// when the host moves the object.
type Displacer interface {
	Displace(dx, dy int) error
}

// Target describes the object a surface is opened for.
type Target struct {
	// Handle is the opaque object handle passed back to the host.
	Handle any

	// ID is unique per object instance within the process.
	ID uint64

	// Host is the host canvas. Each backend asserts the host interfaces it
	// needs and fails at open time when they are missing.
	Host any

	// Width and Height are the initial object size.
	Width, Height int
}
