package patch

import (
	"slices"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/bridge"
	"github.com/gogpu/ggpd/gfx/callback"
)

type inlet struct {
	c      *Canvas
	o      *bridge.Object
	index  int
	signal bool
}

func (in *inlet) Free() {
	in.c.record(InletFree, in.o, in.index, in.signal)
}

type outlet struct {
	c      *Canvas
	o      *bridge.Object
	index  int
	signal bool
}

func (out *outlet) Send(msg ggpd.Message) {
	c := out.c
	c.sent = append(c.sent, Sent{Object: out.o.ID(), Outlet: out.index, Message: msg})
	for _, t := range c.conns[portKey{out.o.ID(), out.index}] {
		// Delivery errors are already reported through Diagnostic.
		_ = t.obj.Deliver(t.inlet, msg)
	}
}

func (out *outlet) Free() {
	out.c.record(OutletFree, out.o, out.index, out.signal)
}

// NewInlet implements bridge.Canvas.
func (c *Canvas) NewInlet(o *bridge.Object, index int, signal bool) (bridge.Inlet, error) {
	c.record(InletNew, o, index, signal)
	return &inlet{c: c, o: o, index: index, signal: signal}, nil
}

// NewOutlet implements bridge.Canvas.
func (c *Canvas) NewOutlet(o *bridge.Object, index int, signal bool) (bridge.Outlet, error) {
	c.record(OutletNew, o, index, signal)
	return &outlet{c: c, o: o, index: index, signal: signal}, nil
}

// Register implements bridge.Canvas.
func (c *Canvas) Register(o *bridge.Object) error {
	c.record(Register, o, 0, false)
	c.objects = append(c.objects, o)
	return nil
}

// Unregister implements bridge.Canvas. Connections to and from o are
// dropped.
func (c *Canvas) Unregister(o *bridge.Object) {
	c.record(Unregister, o, 0, false)
	c.objects = slices.DeleteFunc(c.objects, func(x *bridge.Object) bool { return x == o })
	delete(c.pos, o.ID())
	for k, ts := range c.conns {
		if k.obj == o.ID() {
			delete(c.conns, k)
			continue
		}
		c.conns[k] = slices.DeleteFunc(ts, func(t target) bool { return t.obj == o })
	}
}

// Diagnostic implements bridge.Canvas.
func (c *Canvas) Diagnostic(o *bridge.Object, err error) {
	c.record(Diagnostic, o, 0, false)
	c.reports = append(c.reports, Report{Object: o.ID(), Err: err})
}

// Post implements bridge.Poster.
func (c *Canvas) Post(_ *bridge.Object, msg string) {
	c.posts = append(c.posts, msg)
}

// Send implements tkcanvas.Host.
func (c *Canvas) Send(cmd string) { c.commands = append(c.commands, cmd) }

// Zoom implements tkcanvas.Host.
func (c *Canvas) Zoom() int { return c.zoom }

// Origin implements tkcanvas.Host.
func (c *Canvas) Origin(handle any) (x, y int) {
	p := c.pos[objectID(handle)]
	return p.X * c.zoom, p.Y * c.zoom
}

// Visible implements tkcanvas.Host.
func (c *Canvas) Visible() bool { return c.visible }

// Path implements tkcanvas.Host.
func (c *Canvas) Path() string { return c.path }

// HostFontSize implements tkcanvas.FontSizer.
func (c *Canvas) HostFontSize(size, zoom int) int {
	if c.fontSize > 0 {
		size = c.fontSize
	}
	return size * zoom
}

// NewTag implements tkcanvas.Tagger.
func (c *Canvas) NewTag() string { return c.tags() }

// DrawIolets implements tkcanvas.IoletDrawer.
func (c *Canvas) DrawIolets(handle any, _ string, _, _, _, _ int) {
	c.events = append(c.events, Event{Kind: IoletsDraw, Object: objectID(handle)})
}

// EraseIolets implements tkcanvas.IoletDrawer.
func (c *Canvas) EraseIolets(handle any, _ string) {
	c.events = append(c.events, Event{Kind: IoletsErase, Object: objectID(handle)})
}

// DrawCallback implements callback.Host.
func (c *Canvas) DrawCallback() callback.Func {
	return func(handle any, cmd string, args []ggpd.Atom) {
		c.draws = append(c.draws, Draw{Object: objectID(handle), Cmd: cmd, Args: args})
		if c.forward != nil {
			c.forward(handle, cmd, args)
		}
	}
}
