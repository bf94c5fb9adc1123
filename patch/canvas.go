// Package patch is an in-memory host canvas.
//
// Canvas implements every host interface the bridge and the drawing
// backends need, and records what the host would have seen: Tk commands,
// handle allocation, registration, diagnostics and outlet traffic. It is
// what the command line tool and the tests run objects on.
package patch

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/bridge"
	"github.com/gogpu/ggpd/gfx/callback"
	"github.com/gogpu/ggpd/gfx/tkcanvas"
)

// EventKind names a host-side lifecycle event.
type EventKind string

// Host events in the order an object usually produces them.
const (
	InletNew    EventKind = "inlet-new"
	OutletNew   EventKind = "outlet-new"
	Register    EventKind = "register"
	IoletsDraw  EventKind = "iolets-draw"
	IoletsErase EventKind = "iolets-erase"
	Unregister  EventKind = "unregister"
	InletFree   EventKind = "inlet-free"
	OutletFree  EventKind = "outlet-free"
	Diagnostic  EventKind = "diagnostic"
)

// Event is one recorded host event.
type Event struct {
	Kind   EventKind
	Object uint64
	Index  int
	Signal bool
}

func (e Event) String() string {
	return fmt.Sprintf("%s #%d[%d]", e.Kind, e.Object, e.Index)
}

// Sent is one message that left an outlet.
type Sent struct {
	Object  uint64
	Outlet  int
	Message ggpd.Message
}

// Report is one diagnostic.
type Report struct {
	Object uint64
	Err    error
}

// Draw is one callback backend command.
type Draw struct {
	Object uint64
	Cmd    string
	Args   []ggpd.Atom
}

type portKey struct {
	obj  uint64
	port int
}

type target struct {
	obj   *bridge.Object
	inlet int
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithZoom sets the canvas zoom factor.
func WithZoom(z int) Option {
	return func(c *Canvas) {
		c.zoom = z
	}
}

// WithPath sets the Tk widget path of the canvas.
func WithPath(path string) Option {
	return func(c *Canvas) {
		c.path = path
	}
}

// WithTags makes item tags deterministic: prefix0, prefix1...
func WithTags(prefix string) Option {
	return func(c *Canvas) {
		c.tags = tkcanvas.Sequence(prefix)
	}
}

// WithFontSize makes every text item use size host points before zoom,
// whatever size the script asked for. Zero keeps the script's size.
func WithFontSize(size int) Option {
	return func(c *Canvas) {
		c.fontSize = size
	}
}

// WithDrawCallback forwards callback backend commands to fn after they
// are recorded.
func WithDrawCallback(fn callback.Func) Option {
	return func(c *Canvas) {
		c.forward = fn
	}
}

// Canvas is an in-memory host canvas. It is not safe for concurrent use.
type Canvas struct {
	path    string
	zoom    int
	visible bool
	tags    tkcanvas.TagSource
	forward callback.Func

	fontSize int

	objects []*bridge.Object
	pos     map[uint64]image.Point
	conns   map[portKey][]target

	commands []string
	events   []Event
	reports  []Report
	sent     []Sent
	draws    []Draw
	posts    []string
}

var (
	_ bridge.Canvas        = (*Canvas)(nil)
	_ bridge.Poster        = (*Canvas)(nil)
	_ tkcanvas.Host        = (*Canvas)(nil)
	_ tkcanvas.IoletDrawer = (*Canvas)(nil)
	_ tkcanvas.Tagger      = (*Canvas)(nil)
	_ tkcanvas.FontSizer   = (*Canvas)(nil)
	_ callback.Host        = (*Canvas)(nil)
)

// New returns a visible canvas at zoom 1.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		path:    ".x1.c",
		zoom:    1,
		visible: true,
		tags:    tkcanvas.RandomTag,
		pos:     make(map[uint64]image.Point),
		conns:   make(map[portKey][]target),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetVisible maps or unmaps the canvas window.
func (c *Canvas) SetVisible(v bool) { c.visible = v }

// Place sets the unzoomed position of o.
func (c *Canvas) Place(o *bridge.Object, x, y int) {
	c.pos[o.ID()] = image.Pt(x, y)
}

// Move moves o by (dx, dy) unzoomed units and lets it displace its drawing.
func (c *Canvas) Move(o *bridge.Object, dx, dy int) error {
	p := c.pos[o.ID()]
	c.pos[o.ID()] = p.Add(image.Pt(dx, dy))
	return o.Displace(dx*c.zoom, dy*c.zoom)
}

// Connect routes messages from outlet of from to inlet of to.
func (c *Canvas) Connect(from *bridge.Object, outlet int, to *bridge.Object, inlet int) error {
	if err := ggpd.CheckIndex(ggpd.KindOutlet, outlet, from.Outlets()); err != nil {
		return err
	}
	if err := ggpd.CheckIndex(ggpd.KindInlet, inlet, to.Inlets()); err != nil {
		return err
	}
	k := portKey{from.ID(), outlet}
	c.conns[k] = append(c.conns[k], target{to, inlet})
	return nil
}

// Objects returns the registered objects in creation order.
func (c *Canvas) Objects() []*bridge.Object { return slices.Clone(c.objects) }

// Commands returns the Tk commands sent so far.
func (c *Canvas) Commands() []string { return slices.Clone(c.commands) }

// Events returns the host events so far.
func (c *Canvas) Events() []Event { return slices.Clone(c.events) }

// Reports returns the diagnostics so far.
func (c *Canvas) Reports() []Report { return slices.Clone(c.reports) }

// Sent returns the outlet traffic so far.
func (c *Canvas) Sent() []Sent { return slices.Clone(c.sent) }

// Draws returns the callback backend commands so far.
func (c *Canvas) Draws() []Draw { return slices.Clone(c.draws) }

// Posts returns console output so far.
func (c *Canvas) Posts() []string { return slices.Clone(c.posts) }

// ClearLog forgets everything recorded so far.
func (c *Canvas) ClearLog() {
	c.commands, c.events, c.reports = nil, nil, nil
	c.sent, c.draws, c.posts = nil, nil, nil
}

func (c *Canvas) record(kind EventKind, o *bridge.Object, index int, signal bool) {
	c.events = append(c.events, Event{Kind: kind, Object: o.ID(), Index: index, Signal: signal})
}

func objectID(handle any) uint64 {
	if o, ok := handle.(*bridge.Object); ok {
		return o.ID()
	}
	return 0
}
