// Package gfx is the drawing surface adapter for scripted objects.
//
// # Architecture
//
// Scripts draw through a [Painter], which turns every call into a typed
// [Primitive] and hands it to a [Surface]. A Surface is one of two
// interchangeable backends:
//
//   - "tkcanvas" (package gfx/tkcanvas): tagged Tk canvas commands with a
//     transform stack and pointer state kept per object
//   - "callback" (package gfx/callback): structured commands forwarded to a
//     function supplied by the host, which owns geometry and interaction
//
// Backends are registered using the database/sql driver pattern and opened
// by name:
//
//	import _ "github.com/gogpu/ggpd/gfx/tkcanvas"
//
//	s, err := gfx.Open(gfx.DefaultBackend, gfx.Target{Handle: obj, ID: id, Host: canvas})
//
// [DefaultBackend] is fixed at build time: "tkcanvas" normally, "callback"
// when built with -tags plugdata.
//
// # Drawing passes
//
// One pass is bounded by BeginPass and EndPass. The transform stack is live
// only inside a pass and is emptied when the next pass begins.
//
//	p, err := gfx.Begin(s, false)
//	if errors.Is(err, gfx.ErrNotVisible) {
//	    return nil
//	}
//	p.SetColor(255, 0, 0)
//	p.FillRect(0, 0, 20, 20)
//	return p.End()
//
// A call the active backend cannot honour returns
// [ggpd.ErrUnsupportedOperation]; backends never drop such calls silently.
package gfx
