// Package bridge binds scripted objects into a host patching environment.
//
// An Object is the record the host holds for one scripted object. It owns
// the inlet and outlet handles it asked the host for, its signal buffers
// and, for GUI objects, a drawing surface. The interpreter side is a
// Binding: the object forwards inlet messages, paint requests, pointer
// events and signal blocks to it, and the binding answers through the
// object's outlets and painter.
//
// Everything here runs on the host's dispatch thread. Nothing blocks and
// nothing is safe for concurrent use.
//
// Lifecycle:
//
//	obj, err := bridge.New(canvas, spec, binding)
//	...
//	obj.Deliver(0, ggpd.NewMessage("bang"))
//	obj.Repaint(true)
//	...
//	obj.Close()
//
// Close unregisters the object first, then frees inlets, outlets, the
// drawing surface and the signal buffers, and finally lets the binding
// drop its state.
package bridge
