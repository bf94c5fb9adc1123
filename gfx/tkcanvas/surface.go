// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tkcanvas

import (
	"fmt"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/gfx"
	"github.com/gogpu/ggpd/interaction"
	"github.com/gogpu/ggpd/transform"
)

// Name is the registered backend name.
const Name = "tkcanvas"

// Font used for text items.
const (
	FontFamily = "DejaVu Sans Mono"
	FontWeight = "normal"
)

func init() {
	gfx.Register(Name, func(t gfx.Target) (gfx.Surface, error) {
		return New(t)
	})
}

// Option configures a Surface.
type Option func(*Surface)

// WithTagSource sets the source of order and paint tags.
func WithTagSource(src TagSource) Option {
	return func(s *Surface) {
		s.newTag = src
	}
}

// WithObjectTag overrides the object tag derived from the target id.
func WithObjectTag(tag string) Option {
	return func(s *Surface) {
		s.objTag = tag
	}
}

// Surface draws one object on a Tk canvas.
type Surface struct {
	host   Host
	handle any

	objTag   string
	orderTag string
	newTag   TagSource
	pending  string

	stack transform.Stack
	state interaction.State
	color string

	w, h   int
	first  bool
	inPass bool
	closed bool
}

var (
	_ gfx.Surface     = (*Surface)(nil)
	_ gfx.Interactive = (*Surface)(nil)
	_ gfx.Displacer   = (*Surface)(nil)
)

// New opens a surface for t. t.Host must implement Host.
// Tags are validated here: an over-long object tag or item tag fails with
// ggpd.ErrResourceExhausted before anything is sent to the host.
func New(t gfx.Target, opts ...Option) (*Surface, error) {
	host, ok := t.Host.(Host)
	if !ok {
		return nil, fmt.Errorf("tkcanvas: host %T does not implement tkcanvas.Host", t.Host)
	}
	if t.Width < 0 || t.Height < 0 {
		return nil, fmt.Errorf("tkcanvas: %dx%d: %w", t.Width, t.Height, gfx.ErrInvalidSize)
	}

	s := &Surface{
		host:   host,
		handle: t.Handle,
		objTag: ObjectTag(t.ID),
		newTag: RandomTag,
		color:  gfx.Black.Hex(),
		w:      t.Width,
		h:      t.Height,
	}
	if tg, ok := t.Host.(Tagger); ok {
		s.newTag = tg.NewTag
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := checkTag(s.objTag, MaxObjectTagLen); err != nil {
		return nil, err
	}
	// The first item tag is drawn now so a bad tag source fails
	// construction. It is used by the first item.
	tag, err := s.tag()
	if err != nil {
		return nil, err
	}
	s.pending = tag
	return s, nil
}

// Backend implements gfx.Surface.
func (s *Surface) Backend() string { return Name }

// ObjectTag returns the tag shared by every item of this object.
func (s *Surface) ObjectTag() string { return s.objTag }

// OrderTag returns the tag of the order line, or "" before the first draw.
func (s *Surface) OrderTag() string { return s.orderTag }

func (s *Surface) tag() (string, error) {
	if s.pending != "" {
		tag := s.pending
		s.pending = ""
		return tag, nil
	}
	tag := s.newTag()
	if err := checkTag(tag, MaxItemTagLen); err != nil {
		return "", err
	}
	return tag, nil
}

func (s *Surface) send(l *line) {
	s.host.Send(l.String())
}

func (s *Surface) cmd(verb string) *line {
	return newLine(s.host.Path(), verb)
}

// BeginPass implements gfx.Surface.
func (s *Surface) BeginPass(first bool) error {
	if s.closed {
		return gfx.ErrClosed
	}
	if !first && !s.host.Visible() {
		return gfx.ErrNotVisible
	}

	s.stack.Reset()
	s.first = first
	s.clear(false)

	if first {
		if s.orderTag != "" {
			s.send(s.cmd("delete").word(s.orderTag))
		}
		tag, err := s.tag()
		if err != nil {
			return err
		}
		s.orderTag = tag
		s.send(s.cmd("create").word("line").ints(0, 0, 0, 0).optInt("-width", 1).tags(tag))
	}

	s.inPass = true
	ggpd.Logger().Debug("tkcanvas: pass begun", "tag", s.objTag, "first", first)
	return nil
}

// EndPass implements gfx.Surface.
func (s *Surface) EndPass() error {
	if !s.inPass {
		return gfx.ErrNoPass
	}
	s.inPass = false

	s.drawIolets()
	if !s.first && s.orderTag != "" {
		s.send(s.cmd("lower").word(s.objTag).word(s.orderTag))
	}
	s.first = false
	return nil
}

// PushTransform implements gfx.Surface.
func (s *Surface) PushTransform(t transform.Transform) error {
	if !s.inPass {
		return gfx.ErrNoPass
	}
	s.stack.Push(t)
	return nil
}

// ResetTransform implements gfx.Surface.
func (s *Surface) ResetTransform() error {
	if !s.inPass {
		return gfx.ErrNoPass
	}
	s.stack.Reset()
	return nil
}

// PointerEvent implements gfx.Surface.
func (s *Surface) PointerEvent(ev interaction.Event) error {
	if s.closed {
		return gfx.ErrClosed
	}
	s.state.Apply(ev)
	return nil
}

// Interaction implements gfx.Interactive.
func (s *Surface) Interaction() *interaction.State { return &s.state }

// Size implements gfx.Surface.
func (s *Surface) Size() (w, h int) { return s.w, s.h }

// SetSize implements gfx.Surface. The caller repaints.
func (s *Surface) SetSize(w, h int) error {
	if s.closed {
		return gfx.ErrClosed
	}
	if w < 0 || h < 0 {
		return fmt.Errorf("tkcanvas: %dx%d: %w", w, h, gfx.ErrInvalidSize)
	}
	s.w, s.h = w, h
	return nil
}

// Clear implements gfx.Surface.
func (s *Surface) Clear(removed bool) error {
	if s.closed {
		return gfx.ErrClosed
	}
	s.clear(removed)
	return nil
}

func (s *Surface) clear(removed bool) {
	s.send(s.cmd("delete").word(s.objTag))
	if removed && s.orderTag != "" {
		s.send(s.cmd("delete").word(s.orderTag))
		s.orderTag = ""
	}
	if io, ok := s.host.(IoletDrawer); ok {
		io.EraseIolets(s.handle, s.objTag)
	}
}

// Displace implements gfx.Displacer.
func (s *Surface) Displace(dx, dy int) error {
	if s.closed {
		return gfx.ErrClosed
	}
	s.send(s.cmd("move").word(s.objTag).ints(dx, dy))
	s.drawIolets()
	return nil
}

func (s *Surface) drawIolets() {
	io, ok := s.host.(IoletDrawer)
	if !ok {
		return
	}
	z := s.host.Zoom()
	x, y := s.host.Origin(s.handle)
	io.DrawIolets(s.handle, s.objTag, x, y, x+s.w*z, y+s.h*z)
}

// Close implements gfx.Surface. It does not erase anything; call Clear
// first when the object leaves the canvas.
func (s *Surface) Close() error {
	s.closed = true
	s.inPass = false
	return nil
}
