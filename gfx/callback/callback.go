// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package callback forwards drawing primitives to a host supplied function.
//
// Hosts that render objects themselves (plugdata, or package preview)
// receive one call per primitive: a command name such as "gfx_fill_rect"
// followed by float arguments in object-local units. The host applies zoom
// and transforms on its side, so this backend rejects transform calls.
//
// Importing this package registers the "callback" backend with package gfx.
package callback

import (
	"fmt"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/gfx"
	"github.com/gogpu/ggpd/interaction"
	"github.com/gogpu/ggpd/transform"
)

// Name is the registered backend name.
const Name = "callback"

// Command prefix and the resize notification.
const (
	Prefix     = "gfx_"
	CmdResized = Prefix + "resized"
)

// Func receives one drawing command.
type Func func(handle any, cmd string, args []ggpd.Atom)

// Host supplies the draw callback.
type Host interface {
	DrawCallback() Func
}

func init() {
	gfx.Register(Name, func(t gfx.Target) (gfx.Surface, error) {
		return New(t)
	})
}

// Surface sends every primitive to the host callback synchronously.
type Surface struct {
	fn     Func
	handle any
	w, h   int
	closed bool
}

var _ gfx.Surface = (*Surface)(nil)

// New opens a surface for t. t.Host must implement Host and return a
// non-nil callback.
func New(t gfx.Target) (*Surface, error) {
	host, ok := t.Host.(Host)
	if !ok {
		return nil, fmt.Errorf("callback: host %T does not implement callback.Host", t.Host)
	}
	fn := host.DrawCallback()
	if fn == nil {
		return nil, fmt.Errorf("callback: host returned a nil draw callback")
	}
	if t.Width < 0 || t.Height < 0 {
		return nil, fmt.Errorf("callback: %dx%d: %w", t.Width, t.Height, gfx.ErrInvalidSize)
	}
	return &Surface{fn: fn, handle: t.Handle, w: t.Width, h: t.Height}, nil
}

// Backend implements gfx.Surface.
func (s *Surface) Backend() string { return Name }

// BeginPass implements gfx.Surface. The host owns pass boundaries.
func (s *Surface) BeginPass(bool) error {
	if s.closed {
		return gfx.ErrClosed
	}
	return nil
}

// EndPass implements gfx.Surface.
func (s *Surface) EndPass() error {
	if s.closed {
		return gfx.ErrClosed
	}
	return nil
}

// PushTransform implements gfx.Surface. Transforms are not supported.
func (s *Surface) PushTransform(transform.Transform) error {
	return ggpd.Unsupported(Name, "transforms")
}

// ResetTransform implements gfx.Surface. Transforms are not supported.
func (s *Surface) ResetTransform() error {
	return ggpd.Unsupported(Name, "transforms")
}

// PointerEvent implements gfx.Surface. The host tracks pointer state.
func (s *Surface) PointerEvent(interaction.Event) error {
	return nil
}

// Size implements gfx.Surface.
func (s *Surface) Size() (w, h int) { return s.w, s.h }

// SetSize implements gfx.Surface and tells the host about the new size.
func (s *Surface) SetSize(w, h int) error {
	if s.closed {
		return gfx.ErrClosed
	}
	if w < 0 || h < 0 {
		return fmt.Errorf("callback: %dx%d: %w", w, h, gfx.ErrInvalidSize)
	}
	s.w, s.h = w, h
	s.fn(s.handle, CmdResized, ggpd.Floats(float64(w), float64(h)))
	return nil
}

// Clear implements gfx.Surface. The host discards drawings itself.
func (s *Surface) Clear(bool) error {
	if s.closed {
		return gfx.ErrClosed
	}
	return nil
}

// Close implements gfx.Surface.
func (s *Surface) Close() error {
	s.closed = true
	return nil
}

// Emit implements gfx.Surface.
func (s *Surface) Emit(p gfx.Primitive) error {
	if s.closed {
		return gfx.ErrClosed
	}
	args, err := Encode(p)
	if err != nil {
		return err
	}
	s.fn(s.handle, Prefix+p.Kind().String(), args)
	return nil
}

// Encode returns the argument atoms of p.
func Encode(p gfx.Primitive) ([]ggpd.Atom, error) {
	switch p := p.(type) {
	case gfx.SetColor:
		c := p.Color
		return ggpd.Floats(float64(c.R), float64(c.G), float64(c.B), c.A), nil
	case gfx.FillAll:
		return nil, nil
	case gfx.FillRect:
		return rect(p.Rect), nil
	case gfx.StrokeRect:
		return append(rect(p.Rect), ggpd.Float(p.LineWidth)), nil
	case gfx.FillRoundedRect:
		return append(rect(p.Rect), ggpd.Float(p.Radius)), nil
	case gfx.StrokeRoundedRect:
		return append(rect(p.Rect), ggpd.Float(p.Radius), ggpd.Float(p.LineWidth)), nil
	case gfx.FillEllipse:
		return rect(p.Rect), nil
	case gfx.StrokeEllipse:
		return append(rect(p.Rect), ggpd.Float(p.LineWidth)), nil
	case gfx.Line:
		return ggpd.Floats(p.X1, p.Y1, p.X2, p.Y2, p.LineWidth), nil
	case gfx.Text:
		return append([]ggpd.Atom{ggpd.Symbol(p.Text)}, ggpd.Floats(p.X, p.Y, p.W, p.FontSize)...), nil
	case gfx.FillPath:
		pts := gfx.Compact(p.Points)
		args := make([]ggpd.Atom, 0, 2*len(pts))
		for _, pt := range pts {
			args = append(args, ggpd.Float(pt.X), ggpd.Float(pt.Y))
		}
		return args, nil
	case gfx.StrokePath:
		pts := gfx.Compact(p.Points)
		args := make([]ggpd.Atom, 0, 2*len(pts)+1)
		args = append(args, ggpd.Float(p.LineWidth))
		for _, pt := range pts {
			args = append(args, ggpd.Float(pt.X), ggpd.Float(pt.Y))
		}
		return args, nil
	}
	return nil, ggpd.Unsupported(Name, "primitive "+p.Kind().String())
}

func rect(r gfx.Rect) []ggpd.Atom {
	return ggpd.Floats(r.X, r.Y, r.W, r.H)
}
