// Package script runs object classes written as Go source in an embedded
// yaegi interpreter.
//
// A class is one source file. Its package name is the class name and it
// may declare any of:
//
//	var Inlets, Outlets, SignalInlets, SignalOutlets, Width, Height int
//	var GUI bool
//
//	func Init(o *pd.Object) error
//	func Message(o *pd.Object, inlet int, msg pd.Message) error
//	func Paint(o *pd.Object, p *pd.Painter) error
//	func Mouse(o *pd.Object, ev pd.Event) error
//	func Perform(o *pd.Object, in, out [][]float64) error
//	func Free(o *pd.Object)
//
// where pd is the "ggpd/pd" package exported by the runtime (see
// [Symbols]). Per-object state lives in o.Vars(). Signal classes can use
// pd.Mix, pd.Gain and pd.Multiply on their blocks.
//
// A [Runtime] holds one interpreter shared by every class. Reloading a
// class rebuilds the interpreter and evaluates every class again; live
// objects pick up the new functions on their next call.
package script
