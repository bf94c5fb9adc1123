package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/cogentcore/yaegi/interp"
	"github.com/cogentcore/yaegi/stdlib"

	"github.com/gogpu/ggpd"
)

var (
	// ErrNoClass is returned when a class name or path is not loaded.
	ErrNoClass = errors.New("script: no such class")

	// ErrClosed is returned by a Runtime, and by bindings of its classes,
	// after Close.
	ErrClosed = errors.New("script: runtime closed")

	// ErrNoMethod is returned when a message reaches a class without a
	// Message function.
	ErrNoMethod = errors.New("script: class has no Message function")
)

// Option configures a Runtime.
type Option func(*options)

type options struct {
	stdout io.Writer
	stderr io.Writer
}

// WithOutput sets where script prints go. The default is os.Stdout and
// os.Stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout, o.stderr = stdout, stderr
	}
}

// Runtime is the interpreter shared by every loaded class.
//
// A Runtime is created explicitly and passed to whoever loads classes.
// It is not safe for concurrent use; all calls happen on the host's
// dispatch thread.
type Runtime struct {
	opts    options
	in      *interp.Interpreter
	classes map[string]*Class
	order   []string
	closed  bool
}

// New returns a runtime with the standard library and the "ggpd/pd"
// package available to scripts.
func New(opts ...Option) (*Runtime, error) {
	o := options{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Runtime{
		opts:    o,
		classes: make(map[string]*Class),
	}
	in, err := r.interpreter()
	if err != nil {
		return nil, err
	}
	r.in = in
	return r, nil
}

func (r *Runtime) interpreter() (*interp.Interpreter, error) {
	in := interp.New(interp.Options{
		Stdout: r.opts.stdout,
		Stderr: r.opts.stderr,
	})
	if err := in.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("script: stdlib symbols: %w", err)
	}
	if err := in.Use(Symbols); err != nil {
		return nil, fmt.Errorf("script: pd symbols: %w", err)
	}
	return in, nil
}

// Close releases the interpreter. Bindings created from this runtime
// return ErrClosed afterwards. Close is idempotent.
func (r *Runtime) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.in = nil
	for _, c := range r.classes {
		c.fns = funcs{}
	}
	ggpd.Logger().Debug("script: runtime closed", "classes", len(r.classes))
	return nil
}

// Class returns the loaded class name.
func (r *Runtime) Class(name string) (*Class, error) {
	if r.closed {
		return nil, ErrClosed
	}
	c, ok := r.classes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoClass, name)
	}
	return c, nil
}

// Classes returns the loaded class names in load order.
func (r *Runtime) Classes() []string {
	return slices.Clone(r.order)
}

// Load evaluates src as class name. The package clause of src must be
// name. Loading a name again replaces the class, and live objects of the
// class switch to the new code.
func (r *Runtime) Load(name, src string) (*Class, error) {
	return r.load(name, "", src)
}

// LoadFile evaluates the class in path. The class name is the package
// name declared by the file.
func (r *Runtime) LoadFile(path string) (*Class, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	u, err := parse(abs, string(data))
	if err != nil {
		return nil, err
	}
	return r.load(u.pkg, abs, string(data))
}

func (r *Runtime) load(name, path, src string) (*Class, error) {
	if r.closed {
		return nil, ErrClosed
	}
	u, err := parse(displayName(name, path), src)
	if err != nil {
		return nil, err
	}
	if u.pkg != name {
		return nil, fmt.Errorf("script: class %q declares package %q", name, u.pkg)
	}
	u.path = path

	if c, ok := r.classes[name]; ok {
		prev := c.unit
		c.unit = u
		if err := r.rebuild(); err != nil {
			c.unit = prev
			return nil, err
		}
		ggpd.Logger().Info("script: class replaced", "class", name, "path", path)
		return c, nil
	}

	c := &Class{rt: r, unit: u}
	if err := r.eval(r.in, c); err != nil {
		// The failed evaluation may have left partial declarations
		// behind; start again from the classes that are known good.
		if rerr := r.rebuild(); rerr != nil {
			return nil, errors.Join(err, rerr)
		}
		return nil, err
	}
	r.classes[name] = c
	r.order = append(r.order, name)
	ggpd.Logger().Info("script: class loaded", "class", name, "path", path)
	return c, nil
}

// Reload reads path again and rebuilds the interpreter with every class.
// It returns ErrNoClass if no class was loaded from path.
func (r *Runtime) Reload(path string) (*Class, error) {
	if r.closed {
		return nil, ErrClosed
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	for _, name := range r.order {
		c := r.classes[name]
		if c.path == abs {
			data, err := os.ReadFile(abs)
			if err != nil {
				return nil, fmt.Errorf("script: %w", err)
			}
			return r.load(name, abs, string(data))
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoClass, path)
}

// rebuild evaluates every class in a fresh interpreter. On failure the
// current interpreter and functions are kept.
func (r *Runtime) rebuild() error {
	in, err := r.interpreter()
	if err != nil {
		return err
	}
	fresh := make([]*Class, len(r.order))
	for i, name := range r.order {
		c := r.classes[name]
		nc := &Class{rt: r, unit: c.unit}
		if err := r.eval(in, nc); err != nil {
			return err
		}
		fresh[i] = nc
	}
	r.in = in
	for i, name := range r.order {
		c := r.classes[name]
		c.spec, c.fns = fresh[i].spec, fresh[i].fns
	}
	return nil
}

// eval evaluates c's source in in and binds its declarations.
func (r *Runtime) eval(in *interp.Interpreter, c *Class) (err error) {
	defer protect(c.name()+" (load)", &err)

	if _, err := in.Eval(c.src); err != nil {
		ggpd.Logger().Warn("script: evaluation failed", "class", c.name(), "err", err)
		return fmt.Errorf("script: %s: %w", displayName(c.name(), c.path), err)
	}
	return c.bind(in)
}

func displayName(name, path string) string {
	if path != "" {
		return path
	}
	return name
}

// protect turns a panic in script code into an error.
func protect(what string, err *error) {
	if p := recover(); p != nil {
		ggpd.Logger().Warn("script: panic", "in", what, "panic", p)
		*err = fmt.Errorf("script: %s panicked: %v", what, p)
	}
}
