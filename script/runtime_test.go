package script_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/bridge"
	"github.com/gogpu/ggpd/gfx/callback"
	"github.com/gogpu/ggpd/interaction"
	"github.com/gogpu/ggpd/patch"
	"github.com/gogpu/ggpd/script"
)

func newRuntime(t *testing.T) *script.Runtime {
	t.Helper()
	rt, err := script.New(script.WithOutput(io.Discard, io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { rt.Close() })
	return rt
}

func newObject(t *testing.T, c *patch.Canvas, class *script.Class, opts ...bridge.Option) *bridge.Object {
	t.Helper()
	o, err := bridge.New(c, class.Spec(), class.NewBinding(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { o.Close() })
	return o
}

func TestLoadFileSpec(t *testing.T) {
	rt := newRuntime(t)
	c, err := rt.LoadFile("testdata/dial.go")
	require.NoError(t, err)

	assert.Equal(t, "dial", c.Name())
	assert.True(t, filepath.IsAbs(c.Path()))
	assert.Equal(t, bridge.Spec{Inlets: 1, Outlets: 1, GUI: true, Width: 40, Height: 20}, c.Spec())
	assert.True(t, c.Has("Paint"))
	assert.False(t, c.Has("Perform"))

	got, err := rt.Class("dial")
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.Equal(t, []string{"dial"}, rt.Classes())
}

func TestMessageAndPaint(t *testing.T) {
	rt := newRuntime(t)
	class, err := rt.LoadFile("testdata/dial.go")
	require.NoError(t, err)

	canvas := patch.New()
	o := newObject(t, canvas, class, bridge.WithBackend(callback.Name))
	canvas.ClearLog()

	require.NoError(t, o.Deliver(0, ggpd.NewMessage("float", ggpd.Float(0.5))))
	sent := canvas.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "float 1", sent[0].Message.String())

	var rect *patch.Draw
	for _, d := range canvas.Draws() {
		if d.Cmd == "gfx_fill_rect" {
			rect = &d
		}
	}
	require.NotNil(t, rect, "no fill_rect in %v", canvas.Draws())
	assert.Equal(t, ggpd.Floats(0, 0, 20, 20), rect.Args)

	require.NoError(t, o.Deliver(0, ggpd.NewMessage("bang")))
	assert.Equal(t, "float 0.5", canvas.Sent()[1].Message.String())
}

func TestScriptErrorsAreReported(t *testing.T) {
	rt := newRuntime(t)
	class, err := rt.LoadFile("testdata/dial.go")
	require.NoError(t, err)

	canvas := patch.New()
	o := newObject(t, canvas, class, bridge.WithBackend(callback.Name))

	err = o.Deliver(0, ggpd.NewMessage("wobble"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no method for wobble")

	err = o.Deliver(0, ggpd.NewMessage("crash"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")

	assert.Len(t, canvas.Reports(), 2)
	assert.NoError(t, o.Deliver(0, ggpd.NewMessage("bang")), "object should survive script errors")
}

func TestMouse(t *testing.T) {
	rt := newRuntime(t)
	class, err := rt.LoadFile("testdata/dial.go")
	require.NoError(t, err)

	o := newObject(t, patch.New(), class)
	require.NoError(t, o.Pointer(interaction.Event{Kind: interaction.Down, X: 1, Y: 1}))
	require.NoError(t, o.Pointer(interaction.Event{Kind: interaction.Move, X: 2, Y: 2}))
	require.NoError(t, o.Pointer(interaction.Event{Kind: interaction.Down, X: 3, Y: 3}))
	assert.Equal(t, 2, o.Vars()["downs"])
}

func TestPerform(t *testing.T) {
	rt := newRuntime(t)
	class, err := rt.LoadFile("testdata/gain.go")
	require.NoError(t, err)
	assert.Equal(t, bridge.Spec{Inlets: 2, Outlets: 1, SignalInlets: 1, SignalOutlets: 1}, class.Spec())

	o := newObject(t, patch.New(), class, bridge.WithBlockSize(4))
	out := [][]float64{make([]float64, 4)}
	require.NoError(t, o.Perform([][]float64{{1, 2, 3, 4}}, out))
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, out[0])

	require.NoError(t, o.Deliver(1, ggpd.NewMessage("float", ggpd.Float(3))))
	require.NoError(t, o.Perform([][]float64{{1, 2, 3, 4}}, out))
	assert.Equal(t, []float64{3, 6, 9, 12}, out[0])
}

func TestLoadErrors(t *testing.T) {
	rt := newRuntime(t)

	_, err := rt.Load("knob", "package dial\n")
	assert.ErrorContains(t, err, `declares package "dial"`)

	_, err = rt.Load("main", "package main\n")
	assert.Error(t, err)

	_, err = rt.Load("broken", "package broken\nfunc Init( {\n")
	assert.Error(t, err)

	_, err = rt.Load("typed", "package typed\nimport \"ggpd/pd\"\nfunc Init(o *pd.Object) int { return 1 }\n")
	assert.ErrorContains(t, err, "typed.Init")

	_, err = rt.Load("arity", "package arity\nvar Inlets = 1\nvar SignalInlets = 2\n")
	assert.ErrorIs(t, err, bridge.ErrInvalidSpec)

	_, err = rt.Load("wronggui", "package wronggui\nvar GUI = 1\n")
	assert.ErrorContains(t, err, "want bool")

	// A failed load leaves the runtime usable.
	c, err := rt.Load("ok", "package ok\nvar Inlets = 2\n")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Spec().Inlets)
	assert.Equal(t, []string{"ok"}, rt.Classes())

	_, err = rt.Class("broken")
	assert.ErrorIs(t, err, script.ErrNoClass)
}

func TestNoMessageFunction(t *testing.T) {
	rt := newRuntime(t)
	class, err := rt.Load("quiet", "package quiet\nvar Inlets = 1\n")
	require.NoError(t, err)

	o := newObject(t, patch.New(), class)
	assert.ErrorIs(t, o.Deliver(0, ggpd.NewMessage("bang")), script.ErrNoMethod)
}

func TestLoadReplacesClass(t *testing.T) {
	rt := newRuntime(t)
	const v1 = `package counter

import "ggpd/pd"

var Inlets = 1
var Outlets = 1

func Message(o *pd.Object, inlet int, msg pd.Message) error {
	return o.Outlet(0, pd.NewMessage("v1"))
}
`
	const v2 = `package counter

import "ggpd/pd"

var Inlets = 1
var Outlets = 1

func Message(o *pd.Object, inlet int, msg pd.Message) error {
	return o.Outlet(0, pd.NewMessage("v2"))
}
`
	class, err := rt.Load("counter", v1)
	require.NoError(t, err)
	other, err := rt.LoadFile("testdata/gain.go")
	require.NoError(t, err)

	canvas := patch.New()
	o := newObject(t, canvas, class)
	require.NoError(t, o.Deliver(0, ggpd.NewMessage("bang")))

	again, err := rt.Load("counter", v2)
	require.NoError(t, err)
	assert.Same(t, class, again)
	require.NoError(t, o.Deliver(0, ggpd.NewMessage("bang")))

	sent := canvas.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "v1", sent[0].Message.Selector)
	assert.Equal(t, "v2", sent[1].Message.Selector)

	// The other class survived the rebuild.
	assert.Equal(t, 2, other.Spec().Inlets)
	assert.Equal(t, []string{"counter", "gain"}, rt.Classes())

	// A broken replacement keeps the working code.
	_, err = rt.Load("counter", "package counter\nfunc {")
	require.Error(t, err)
	require.NoError(t, o.Deliver(0, ggpd.NewMessage("bang")))
	assert.Equal(t, "v2", canvas.Sent()[2].Message.Selector)
}

func writeClass(t *testing.T, path, selector string) {
	t.Helper()
	src := `package pinger

import "ggpd/pd"

var Inlets = 1
var Outlets = 1

func Message(o *pd.Object, inlet int, msg pd.Message) error {
	return o.Outlet(0, pd.NewMessage("` + selector + `"))
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
}

func TestReload(t *testing.T) {
	rt := newRuntime(t)
	path := filepath.Join(t.TempDir(), "pinger.go")
	writeClass(t, path, "one")

	class, err := rt.LoadFile(path)
	require.NoError(t, err)
	canvas := patch.New()
	o := newObject(t, canvas, class)

	writeClass(t, path, "two")
	_, err = rt.Reload(path)
	require.NoError(t, err)
	require.NoError(t, o.Deliver(0, ggpd.NewMessage("bang")))
	assert.Equal(t, "two", canvas.Sent()[0].Message.Selector)

	_, err = rt.Reload(filepath.Join(t.TempDir(), "missing.go"))
	assert.ErrorIs(t, err, script.ErrNoClass)
}

func TestClose(t *testing.T) {
	rt, err := script.New(script.WithOutput(io.Discard, io.Discard))
	require.NoError(t, err)
	class, err := rt.LoadFile("testdata/dial.go")
	require.NoError(t, err)
	o, err := bridge.New(patch.New(), class.Spec(), class.NewBinding())
	require.NoError(t, err)

	require.NoError(t, rt.Close())
	require.NoError(t, rt.Close())

	assert.ErrorIs(t, o.Deliver(0, ggpd.NewMessage("bang")), script.ErrClosed)
	_, err = rt.Class("dial")
	assert.ErrorIs(t, err, script.ErrClosed)
	_, err = rt.Load("x", "package x\n")
	assert.ErrorIs(t, err, script.ErrClosed)
	assert.NoError(t, o.Close())
}

func TestWatcherReloads(t *testing.T) {
	rt := newRuntime(t)
	path := filepath.Join(t.TempDir(), "pinger.go")
	writeClass(t, path, "one")
	class, err := rt.LoadFile(path)
	require.NoError(t, err)

	w, err := script.NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	writeClass(t, path, "two")

	var reloaded []*script.Class
	require.Eventually(t, func() bool {
		cs, err := w.ReloadChanged(rt)
		if err != nil {
			return false
		}
		reloaded = append(reloaded, cs...)
		return len(reloaded) > 0
	}, 5*time.Second, 20*time.Millisecond)
	assert.Same(t, class, reloaded[0])

	canvas := patch.New()
	o := newObject(t, canvas, class)
	require.NoError(t, o.Deliver(0, ggpd.NewMessage("bang")))
	assert.Equal(t, "two", canvas.Sent()[0].Message.Selector)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pinger.go")
	writeClass(t, path, "one")

	w, err := script.NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	select {
	case p := <-w.Changes():
		t.Fatalf("unexpected change %s", p)
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	_, ok := <-w.Changes()
	assert.False(t, ok, "Changes should be closed")
}
