// Package ggpd lets a patching host run objects whose behaviour is written
// as scripts, with GUI drawing through gg-style primitives.
//
// # Overview
//
// A scripted object is bound into the host graph by [bridge.Object]: it owns
// its inlet and outlet handles, its signal buffers and a drawing surface.
// Drawing goes through one of two interchangeable backends, chosen per
// object with [bridge.WithBackend]:
//
//   - gfx/tkcanvas: emits tagged Tk canvas commands (Pd vanilla GUI)
//   - gfx/callback: forwards structured commands to a host supplied
//     function (hosts with their own renderer, see package preview)
//
// Build with -tags plugdata to make the callback sink the default backend.
// Objects that name no backend use the default.
//
// # Quick Start
//
//	rt, _ := script.New()
//	defer rt.Close()
//
//	class, _ := rt.LoadFile("dial.go")
//	obj, _ := bridge.New(canvas, class.Spec(), class.NewBinding())
//	defer obj.Close()
//
//	obj.Deliver(0, ggpd.NewMessage("float", ggpd.Float(0.5)))
//
// # Package layout
//
//   - ggpd: atoms, messages, errors, logging
//   - transform, interaction: per-object drawing and pointer state
//   - gfx: surface interface, primitives, painter, backend registry
//   - bridge: the object instance record
//   - script: the shared interpreter runtime
//   - signal: owned signal buffers
//   - patch: an in-memory host used by tests and the ggpd command
//   - preview: rasterises callback commands to an image
//   - cmd/ggpd: render, tk and send subcommands
//
// # Concurrency
//
// Everything in ggpd runs on the host's single dispatch thread. None of the
// types are safe for concurrent use, except [SetLogger] and [Logger].
package ggpd
