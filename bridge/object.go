package bridge

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/gfx"
	"github.com/gogpu/ggpd/interaction"
	"github.com/gogpu/ggpd/signal"
)

// nextID hands out object ids. Ids are never reused within a process, so
// tags derived from them never collide.
var nextID atomic.Uint64

// Object is one live scripted object.
type Object struct {
	id      uint64
	canvas  Canvas
	spec    Spec
	binding Binding

	inlets  []Inlet
	outlets []Outlet
	surface gfx.Surface
	blocks  *signal.Blocks
	vars    map[string]any

	registered bool
	closed     bool
	freed      bool

	// unsupported is set once a backend mismatch has been reported.
	unsupported bool
}

// New creates an object on canvas with the arity declared by spec.
//
// Construction happens in this order: validate spec, open the drawing
// surface (GUI objects only), create inlets then outlets, allocate signal
// buffers, run the binding's Init, register with the canvas, paint. Any
// failure undoes the earlier steps, so a failed New leaves nothing behind
// on the host.
func New(canvas Canvas, spec Spec, binding Binding, opts ...Option) (*Object, error) {
	if canvas == nil {
		return nil, errors.New("bridge: nil canvas")
	}
	if binding == nil {
		return nil, errors.New("bridge: nil binding")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sized {
		spec.Width, spec.Height = cfg.width, cfg.height
		if err := spec.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Object{
		id:      nextID.Add(1),
		canvas:  canvas,
		spec:    spec,
		binding: binding,
	}

	if spec.GUI {
		s, err := gfx.Open(cfg.backend, gfx.Target{
			Handle: o,
			ID:     o.id,
			Host:   canvas,
			Width:  spec.Width,
			Height: spec.Height,
		})
		if err != nil {
			return nil, fmt.Errorf("bridge: open %s surface: %w", cfg.backend, err)
		}
		o.surface = s
	}

	if err := o.allocate(cfg.blockSize); err != nil {
		o.release()
		return nil, err
	}

	if in, ok := binding.(Initializer); ok {
		if err := in.Init(o); err != nil {
			o.release()
			return nil, fmt.Errorf("bridge: init: %w", err)
		}
	}

	if err := canvas.Register(o); err != nil {
		o.release()
		return nil, fmt.Errorf("bridge: register: %w", err)
	}
	o.registered = true

	ggpd.Logger().Info("bridge: object created",
		"id", o.id, "inlets", spec.Inlets, "outlets", spec.Outlets, "gui", spec.GUI)

	if o.surface != nil {
		_ = o.Repaint(false)
	}
	return o, nil
}

func (o *Object) allocate(blockSize int) error {
	o.inlets = make([]Inlet, 0, o.spec.Inlets)
	for i := 0; i < o.spec.Inlets; i++ {
		in, err := o.canvas.NewInlet(o, i, i < o.spec.SignalInlets)
		if err != nil {
			return fmt.Errorf("bridge: inlet %d: %w", i, err)
		}
		o.inlets = append(o.inlets, in)
	}

	o.outlets = make([]Outlet, 0, o.spec.Outlets)
	for i := 0; i < o.spec.Outlets; i++ {
		out, err := o.canvas.NewOutlet(o, i, i < o.spec.SignalOutlets)
		if err != nil {
			return fmt.Errorf("bridge: outlet %d: %w", i, err)
		}
		o.outlets = append(o.outlets, out)
	}

	blocks, err := signal.NewBlocks(o.spec.SignalInlets, o.spec.SignalOutlets, blockSize)
	if err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	o.blocks = blocks
	return nil
}

// release frees everything New allocated, in destruction order.
func (o *Object) release() error {
	var errs []error

	if o.registered {
		o.canvas.Unregister(o)
		o.registered = false
	}
	for _, in := range o.inlets {
		in.Free()
	}
	o.inlets = nil
	for _, out := range o.outlets {
		out.Free()
	}
	o.outlets = nil

	if o.surface != nil {
		errs = append(errs, o.surface.Clear(true), o.surface.Close())
		o.surface = nil
	}
	if o.blocks != nil {
		o.blocks.Release()
		o.blocks = nil
	}
	return errors.Join(errs...)
}

// Close destroys the object. The binding's Free runs last, after every
// host resource is gone. Close returns ErrClosed when called again.
func (o *Object) Close() error {
	if o.closed {
		return ErrClosed
	}
	o.closed = true

	err := o.release()
	if f, ok := o.binding.(Freer); ok {
		f.Free(o)
	}
	o.freed = true
	o.vars = nil

	ggpd.Logger().Info("bridge: object destroyed", "id", o.id)
	return err
}

// ID returns the process-unique object id.
func (o *Object) ID() uint64 { return o.id }

// Spec returns the declared arity. Width and Height are the creation size.
func (o *Object) Spec() Spec { return o.spec }

// Canvas returns the canvas the object was created on.
func (o *Object) Canvas() Canvas { return o.canvas }

// Closed reports whether Close has run.
func (o *Object) Closed() bool { return o.closed }

// Inlets returns the number of inlet handles.
func (o *Object) Inlets() int { return len(o.inlets) }

// Outlets returns the number of outlet handles.
func (o *Object) Outlets() int { return len(o.outlets) }

// Surface returns the drawing surface, or nil for objects without a GUI.
func (o *Object) Surface() gfx.Surface { return o.surface }

// Vars returns per-object storage for the binding. It stays usable in
// the binding's Free and is nil once Close returns.
func (o *Object) Vars() map[string]any {
	if o.vars == nil && !o.freed {
		o.vars = make(map[string]any)
	}
	return o.vars
}

// report sends err to the canvas diagnostic channel.
func (o *Object) report(err error) {
	ggpd.Logger().Warn("bridge: dropped", "id", o.id, "err", err)
	o.canvas.Diagnostic(o, err)
}

// Deliver hands msg arriving on inlet to the binding. An out of range
// inlet or a binding error is reported to the canvas and returned; the
// message is dropped and the object stays usable.
func (o *Object) Deliver(inlet int, msg ggpd.Message) error {
	if o.closed {
		return ErrClosed
	}
	if err := ggpd.CheckIndex(ggpd.KindInlet, inlet, len(o.inlets)); err != nil {
		o.report(err)
		return err
	}
	if err := o.binding.Message(o, inlet, msg); err != nil {
		err = fmt.Errorf("bridge: inlet %d %s: %w", inlet, msg.Selector, err)
		o.report(err)
		return err
	}
	return nil
}

// Outlet sends msg out of outlet index. An out of range index is reported
// and returned.
func (o *Object) Outlet(index int, msg ggpd.Message) error {
	if o.closed {
		return ErrClosed
	}
	if err := ggpd.CheckIndex(ggpd.KindOutlet, index, len(o.outlets)); err != nil {
		o.report(err)
		return err
	}
	o.outlets[index].Send(msg)
	return nil
}

// Post prints msg on the host console.
func (o *Object) Post(msg string) {
	if p, ok := o.canvas.(Poster); ok {
		p.Post(o, msg)
		return
	}
	ggpd.Logger().Info(msg, "id", o.id)
}

// Repaint runs one drawing pass through the binding. first marks the first
// pass after the canvas was mapped. A hidden canvas is not an error: the
// pass is skipped.
//
// An operation the backend does not support is a configuration problem
// of the object, not of the pass: it is reported and returned on the
// first pass that hits it only.
func (o *Object) Repaint(first bool) error {
	if o.closed {
		return ErrClosed
	}
	if o.surface == nil {
		return ErrNoGUI
	}
	painter, ok := o.binding.(Painter)
	if !ok {
		return nil
	}

	p, err := gfx.Begin(o.surface, first)
	if errors.Is(err, gfx.ErrNotVisible) {
		ggpd.Logger().Debug("bridge: repaint skipped, canvas hidden", "id", o.id)
		return nil
	}
	if err != nil {
		o.report(err)
		return err
	}

	paintErr := painter.Paint(o, p)
	_ = p.End()
	err = errors.Join(paintErr, p.Err())
	if u := p.Unsupported(); u != nil && !o.unsupported {
		o.unsupported = true
		err = errors.Join(err, u)
	}
	if err != nil {
		o.report(err)
	}
	return err
}

// Pointer records ev on the surface and passes it to the binding.
func (o *Object) Pointer(ev interaction.Event) error {
	if o.closed {
		return ErrClosed
	}
	if o.surface == nil {
		return ErrNoGUI
	}
	if err := o.surface.PointerEvent(ev); err != nil {
		return err
	}
	h, ok := o.binding.(PointerHandler)
	if !ok {
		return nil
	}
	if err := h.Pointer(o, ev); err != nil {
		err = fmt.Errorf("bridge: pointer %s: %w", ev.Kind, err)
		o.report(err)
		return err
	}
	return nil
}

// Interaction returns the pointer state kept by the surface. Backends
// where the host tracks the pointer return ggpd.ErrUnsupportedOperation.
func (o *Object) Interaction() (*interaction.State, error) {
	if o.surface == nil {
		return nil, ErrNoGUI
	}
	return gfx.InteractionOf(o.surface)
}

// Size returns the object size.
func (o *Object) Size() (w, h int) {
	if o.surface == nil {
		return o.spec.Width, o.spec.Height
	}
	return o.surface.Size()
}

// SetSize resizes a GUI object and repaints it.
func (o *Object) SetSize(w, h int) error {
	if o.closed {
		return ErrClosed
	}
	if o.surface == nil {
		return ErrNoGUI
	}
	if err := o.surface.SetSize(w, h); err != nil {
		return err
	}
	return o.Repaint(false)
}

// Displace moves what the object has drawn after the host moved the
// object by (dx, dy) pixels.
func (o *Object) Displace(dx, dy int) error {
	if o.closed {
		return ErrClosed
	}
	if o.surface == nil {
		return ErrNoGUI
	}
	d, ok := o.surface.(gfx.Displacer)
	if !ok {
		return ggpd.Unsupported(o.surface.Backend(), "displace")
	}
	return d.Displace(dx, dy)
}

// DSP is called when the host (re)starts audio with blockSize samples per
// block.
func (o *Object) DSP(blockSize int) error {
	if o.closed {
		return ErrClosed
	}
	return o.blocks.Resize(blockSize)
}

// Perform processes one block: in holds one block per signal inlet and
// out receives one block per signal outlet. Objects whose binding does not
// process signals output silence.
func (o *Object) Perform(in, out [][]float64) error {
	if o.closed {
		return ErrClosed
	}
	if err := o.blocks.Load(in); err != nil {
		return err
	}
	if p, ok := o.binding.(Performer); ok {
		if err := p.Perform(o, o.blocks.Ins(), o.blocks.Outs()); err != nil {
			err = fmt.Errorf("bridge: perform: %w", err)
			o.report(err)
			return err
		}
	}
	return o.blocks.Store(out)
}
