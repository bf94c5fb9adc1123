// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tkcanvas

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/gfx"
)

// Emit implements gfx.Surface.
func (s *Surface) Emit(p gfx.Primitive) error {
	if !s.inPass {
		return gfx.ErrNoPass
	}

	if c, ok := p.(gfx.SetColor); ok {
		s.color = c.Color.Hex()
		return nil
	}

	paint, err := s.tag()
	if err != nil {
		return err
	}

	switch p := p.(type) {
	case gfx.FillAll:
		x, y := s.host.Origin(s.handle)
		z := s.host.Zoom()
		s.send(s.cmd("create").word("rectangle").ints(x, y, x+s.w*z, y+s.h*z).
			opt("-fill", s.color).tags(s.objTag, paint))

	case gfx.FillRect:
		x1, y1, x2, y2 := s.bounds(p.Rect)
		s.send(s.cmd("create").word("rectangle").ints(x1, y1, x2, y2).
			opt("-fill", s.color).optInt("-width", 0).tags(s.objTag, paint))

	case gfx.StrokeRect:
		x1, y1, x2, y2 := s.bounds(p.Rect)
		s.send(s.cmd("create").word("rectangle").ints(x1, y1, x2, y2).
			optInt("-width", s.width(p.LineWidth)).opt("-outline", s.color).tags(s.objTag, paint))

	case gfx.FillEllipse:
		x1, y1, x2, y2 := s.bounds(p.Rect)
		s.send(s.cmd("create").word("oval").ints(x1, y1, x2, y2).
			opt("-fill", s.color).optInt("-width", 0).tags(s.objTag, paint))

	case gfx.StrokeEllipse:
		x1, y1, x2, y2 := s.bounds(p.Rect)
		s.send(s.cmd("create").word("oval").ints(x1, y1, x2, y2).
			optInt("-width", s.width(p.LineWidth)).opt("-outline", s.color).tags(s.objTag, paint))

	case gfx.FillRoundedRect:
		s.fillRounded(p, paint)

	case gfx.StrokeRoundedRect:
		s.strokeRounded(p, paint)

	case gfx.Line:
		x1, y1 := s.point(p.X1, p.Y1)
		x2, y2 := s.point(p.X2, p.Y2)
		s.send(s.cmd("create").word("line").ints(x1, y1, x2, y2).
			optInt("-width", s.width(p.LineWidth)).opt("-fill", s.color).tags(s.objTag, paint))

	case gfx.Text:
		s.text(p, paint)

	case gfx.FillPath:
		s.send(s.cmd("create").word("polygon").ints(0, 0, 0, 0).
			optInt("-width", 0).opt("-fill", s.color).tags(s.objTag, paint))
		s.coords(paint, p.Points)

	case gfx.StrokePath:
		s.send(s.cmd("create").word("line").ints(0, 0, 0, 0).
			optInt("-width", s.width(p.LineWidth)).opt("-fill", s.color).tags(s.objTag, paint))
		s.coords(paint, p.Points)

	default:
		return ggpd.Unsupported(Name, fmt.Sprintf("primitive %s", p.Kind()))
	}
	return nil
}

// point maps an object-local point to canvas pixels.
func (s *Surface) point(x, y float64) (int, int) {
	z := float64(s.host.Zoom())
	ox, oy := s.host.Origin(s.handle)
	x, y = s.stack.Resolve(x, y)
	return int(x*z) + ox, int(y*z) + oy
}

// bounds maps an object-local rectangle to canvas pixel corners.
func (s *Surface) bounds(r gfx.Rect) (x1, y1, x2, y2 int) {
	z := float64(s.host.Zoom())
	ox, oy := s.host.Origin(s.handle)
	x, y := s.stack.Resolve(r.X, r.Y)
	w, h := s.stack.ResolveSize(r.W, r.H)
	return int(x*z) + ox, int(y*z) + oy, int((x+w)*z) + ox, int((y+h)*z) + oy
}

func (s *Surface) width(lw float64) int {
	return int(lw * float64(s.host.Zoom()))
}

func (s *Surface) fillRounded(p gfx.FillRoundedRect, paint string) {
	x1, y1, x2, y2 := s.bounds(p.Rect)
	r := s.width(p.Radius)
	d := 2 * r

	oval := func(a, b, c, e int) {
		s.send(s.cmd("create").word("oval").ints(a, b, c, e).
			optInt("-width", 0).opt("-fill", s.color).tags(s.objTag, paint))
	}
	rect := func(a, b, c, e int) {
		s.send(s.cmd("create").word("rectangle").ints(a, b, c, e).
			optInt("-width", 0).opt("-fill", s.color).tags(s.objTag, paint))
	}

	oval(x1, y1, x1+d, y1+d)
	oval(x2-d, y1, x2, y1+d)
	oval(x1, y2-d, x1+d, y2)
	oval(x2-d, y2-d, x2, y2)
	rect(x1+r, y1, x2-r, y2)
	rect(x1, y1+r, x2, y2-r)
}

func (s *Surface) strokeRounded(p gfx.StrokeRoundedRect, paint string) {
	x1, y1, x2, y2 := s.bounds(p.Rect)
	r := s.width(p.Radius)
	d := 2 * r
	lw := s.width(p.LineWidth)

	arc := func(a, b, c, e, start int) {
		s.send(s.cmd("create").word("arc").ints(a, b, c, e).
			optInt("-start", start).optInt("-extent", 90).optInt("-width", lw).
			opt("-outline", s.color).opt("-style", "arc").tags(s.objTag, paint))
	}
	seg := func(a, b, c, e int) {
		s.send(s.cmd("create").word("line").ints(a, b, c, e).
			optInt("-width", lw).opt("-fill", s.color).tags(s.objTag, paint))
	}

	arc(x1, y1, x1+d, y1+d, 90)
	arc(x2-d, y1, x2, y1+d, 0)
	arc(x1, y2-d, x1+d, y2, 180)
	arc(x2-d, y2-d, x2, y2, 270)
	seg(x1+r, y1, x2-r, y1)
	seg(x1+r, y2, x2-r, y2)
	seg(x1, y1+r, x1, y2-r)
	seg(x2, y1+r, x2, y2-r)
}

func (s *Surface) text(p gfx.Text, paint string) {
	z := s.host.Zoom()
	size := int(p.FontSize) * z
	if fs, ok := s.host.(FontSizer); ok {
		size = fs.HostFontSize(int(p.FontSize), z)
	}
	w, fh := s.stack.ResolveSize(p.W, float64(size))
	x, y := s.point(p.X, p.Y)

	s.send(s.cmd("create").word("text").ints(0, 0).opt("-anchor", "nw").
		optInt("-width", int(w)*z).opt("-text", quote(p.Text)).tags(s.objTag, paint))

	// Negative Tk font sizes are in pixels.
	font := fmt.Sprintf("{{%s} %d %s}", FontFamily, -int(fh), FontWeight)
	s.send(s.cmd("itemconfigure").word(paint).opt("-font", font).
		opt("-fill", s.color).opt("-justify", "left"))
	s.send(s.cmd("coords").word(paint).ints(x, y))
}

// coords places a path item. The transform stack, zoom and object origin
// are composed into one matrix for the whole path.
func (s *Surface) coords(paint string, pts []gg.Point) {
	z := float64(s.host.Zoom())
	ox, oy := s.host.Origin(s.handle)
	m := gg.Translate(float64(ox), float64(oy)).
		Multiply(gg.Scale(z, z)).
		Multiply(s.stack.Matrix())

	l := s.cmd("coords").word(paint)
	for _, pt := range gfx.Compact(pts) {
		p := m.TransformPoint(pt)
		l.floats(p.X, p.Y)
	}
	s.send(l)
}
