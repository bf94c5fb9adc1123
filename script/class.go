package script

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"

	"github.com/cogentcore/yaegi/interp"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/bridge"
	"github.com/gogpu/ggpd/gfx"
	"github.com/gogpu/ggpd/interaction"
)

// unit is the parsed source of one class.
type unit struct {
	pkg   string
	path  string
	src   string
	decls map[string]bool
}

func parse(filename, src string) (unit, error) {
	f, err := parser.ParseFile(token.NewFileSet(), filename, src, parser.SkipObjectResolution)
	if err != nil {
		return unit{}, fmt.Errorf("script: %w", err)
	}
	if f.Name.Name == "main" {
		return unit{}, fmt.Errorf("script: %s: a class cannot be package main", filename)
	}

	u := unit{pkg: f.Name.Name, src: src, decls: make(map[string]bool)}
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				u.decls[d.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if vs, ok := s.(*ast.ValueSpec); ok {
					for _, n := range vs.Names {
						u.decls[n.Name] = true
					}
				}
			}
		}
	}
	return u, nil
}

type funcs struct {
	init    func(*bridge.Object) error
	message func(*bridge.Object, int, ggpd.Message) error
	paint   func(*bridge.Object, *gfx.Painter) error
	mouse   func(*bridge.Object, interaction.Event) error
	perform func(*bridge.Object, [][]float64, [][]float64) error
	free    func(*bridge.Object)
}

// Class is one loaded object class.
type Class struct {
	rt *Runtime
	unit
	spec bridge.Spec
	fns  funcs
}

func (c *Class) name() string { return c.pkg }

// Name returns the class name.
func (c *Class) Name() string { return c.pkg }

// Path returns the file the class was loaded from, or "" for Load.
func (c *Class) Path() string { return c.path }

// Spec returns the arity declared by the class variables.
func (c *Class) Spec() bridge.Spec { return c.spec }

// Has reports whether the class declares the top-level name.
func (c *Class) Has(name string) bool { return c.decls[name] }

// NewBinding returns a binding that dispatches to the class functions.
// Every object needs its own binding.
func (c *Class) NewBinding() bridge.Binding {
	return &binding{c: c}
}

// bind reads the contract variables and functions out of in.
func (c *Class) bind(in *interp.Interpreter) error {
	var spec bridge.Spec
	ints := []struct {
		name string
		dst  *int
	}{
		{"Inlets", &spec.Inlets},
		{"Outlets", &spec.Outlets},
		{"SignalInlets", &spec.SignalInlets},
		{"SignalOutlets", &spec.SignalOutlets},
		{"Width", &spec.Width},
		{"Height", &spec.Height},
	}
	for _, v := range ints {
		rv, err := c.lookup(in, v.name)
		if err != nil || !rv.IsValid() {
			if err != nil {
				return err
			}
			continue
		}
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			*v.dst = int(rv.Int())
		case reflect.Float32, reflect.Float64:
			*v.dst = int(rv.Float())
		default:
			return fmt.Errorf("script: %s.%s is %s, want int", c.pkg, v.name, rv.Type())
		}
	}
	rv, err := c.lookup(in, "GUI")
	if err != nil {
		return err
	}
	if rv.IsValid() {
		if rv.Kind() != reflect.Bool {
			return fmt.Errorf("script: %s.GUI is %s, want bool", c.pkg, rv.Type())
		}
		spec.GUI = rv.Bool()
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("script: %s: %w", c.pkg, err)
	}

	var fns funcs
	bindings := []struct {
		name string
		dst  any
	}{
		{"Init", &fns.init},
		{"Message", &fns.message},
		{"Paint", &fns.paint},
		{"Mouse", &fns.mouse},
		{"Perform", &fns.perform},
		{"Free", &fns.free},
	}
	for _, b := range bindings {
		if err := c.fn(in, b.name, b.dst); err != nil {
			return err
		}
	}

	c.spec, c.fns = spec, fns
	return nil
}

// lookup evaluates a top-level name of the class. It returns the zero
// Value when the class does not declare name.
func (c *Class) lookup(in *interp.Interpreter, name string) (reflect.Value, error) {
	if !c.decls[name] {
		return reflect.Value{}, nil
	}
	v, err := in.Eval(c.pkg + "." + name)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("script: %s.%s: %w", c.pkg, name, err)
	}
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v, nil
}

// fn stores the class function name into dst, a pointer to a func
// variable of the expected signature.
func (c *Class) fn(in *interp.Interpreter, name string, dst any) error {
	v, err := c.lookup(in, name)
	if err != nil || !v.IsValid() {
		return err
	}
	d := reflect.ValueOf(dst).Elem()
	if v.Kind() != reflect.Func {
		return fmt.Errorf("script: %s.%s is %s, want %s", c.pkg, name, v.Type(), d.Type())
	}
	if !v.Type().ConvertibleTo(d.Type()) {
		return fmt.Errorf("script: %s.%s has type %s, want %s", c.pkg, name, v.Type(), d.Type())
	}
	d.Set(v.Convert(d.Type()))
	return nil
}

// binding adapts a class to bridge.Binding. It reads the class functions
// on every call, so a reload takes effect on live objects.
type binding struct {
	c *Class
}

var (
	_ bridge.Binding        = (*binding)(nil)
	_ bridge.Initializer    = (*binding)(nil)
	_ bridge.Painter        = (*binding)(nil)
	_ bridge.PointerHandler = (*binding)(nil)
	_ bridge.Performer      = (*binding)(nil)
	_ bridge.Freer          = (*binding)(nil)
)

func (b *binding) live() error {
	if b.c.rt.closed {
		return ErrClosed
	}
	return nil
}

func (b *binding) Init(o *bridge.Object) (err error) {
	if err := b.live(); err != nil || b.c.fns.init == nil {
		return err
	}
	defer protect(b.c.pkg+".Init", &err)
	return b.c.fns.init(o)
}

func (b *binding) Message(o *bridge.Object, inlet int, msg ggpd.Message) (err error) {
	if err := b.live(); err != nil {
		return err
	}
	if b.c.fns.message == nil {
		return fmt.Errorf("%w: %s", ErrNoMethod, b.c.pkg)
	}
	defer protect(b.c.pkg+".Message", &err)
	return b.c.fns.message(o, inlet, msg)
}

func (b *binding) Paint(o *bridge.Object, p *gfx.Painter) (err error) {
	if err := b.live(); err != nil || b.c.fns.paint == nil {
		return err
	}
	defer protect(b.c.pkg+".Paint", &err)
	return b.c.fns.paint(o, p)
}

func (b *binding) Pointer(o *bridge.Object, ev interaction.Event) (err error) {
	if err := b.live(); err != nil || b.c.fns.mouse == nil {
		return err
	}
	defer protect(b.c.pkg+".Mouse", &err)
	return b.c.fns.mouse(o, ev)
}

func (b *binding) Perform(o *bridge.Object, in, out [][]float64) (err error) {
	if err := b.live(); err != nil || b.c.fns.perform == nil {
		return err
	}
	defer protect(b.c.pkg+".Perform", &err)
	return b.c.fns.perform(o, in, out)
}

func (b *binding) Free(o *bridge.Object) {
	if b.live() != nil || b.c.fns.free == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			ggpd.Logger().Warn("script: panic", "in", b.c.pkg+".Free", "panic", p)
		}
	}()
	b.c.fns.free(o)
}
