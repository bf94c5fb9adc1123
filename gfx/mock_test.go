package gfx

import (
	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/interaction"
	"github.com/gogpu/ggpd/transform"
)

// mockSurface records every call for inspection.
type mockSurface struct {
	name       string
	begun      int
	ended      int
	transforms []transform.Transform
	prims      []Primitive
	beginErr   error
	emitErr    error
	noXform    bool
	w, h       int
	state      interaction.State
}

func (m *mockSurface) Backend() string { return m.name }

func (m *mockSurface) BeginPass(bool) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	m.begun++
	m.transforms = m.transforms[:0]
	return nil
}

func (m *mockSurface) PushTransform(t transform.Transform) error {
	if m.noXform {
		return ggpd.Unsupported(m.name, "transforms")
	}
	m.transforms = append(m.transforms, t)
	return nil
}

func (m *mockSurface) ResetTransform() error {
	if m.noXform {
		return ggpd.Unsupported(m.name, "transforms")
	}
	m.transforms = m.transforms[:0]
	return nil
}

func (m *mockSurface) Emit(p Primitive) error {
	if m.emitErr != nil {
		return m.emitErr
	}
	m.prims = append(m.prims, p)
	return nil
}

func (m *mockSurface) EndPass() error {
	m.ended++
	return nil
}

func (m *mockSurface) PointerEvent(ev interaction.Event) error {
	m.state.Apply(ev)
	return nil
}

func (m *mockSurface) Size() (int, int)       { return m.w, m.h }
func (m *mockSurface) SetSize(w, h int) error { m.w, m.h = w, h; return nil }
func (m *mockSurface) Clear(bool) error       { return nil }
func (m *mockSurface) Close() error           { return nil }

// interactiveSurface adds local pointer state to mockSurface.
type interactiveSurface struct {
	mockSurface
}

func (s *interactiveSurface) Interaction() *interaction.State { return &s.state }
