// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tkcanvas

import (
	"fmt"
	"strings"
)

// fakeHost records every command and iolet call in order.
type fakeHost struct {
	zoom    int
	ox, oy  int
	visible bool
	lines   []string
}

func newFakeHost(zoom, ox, oy int) *fakeHost {
	return &fakeHost{zoom: zoom, ox: ox, oy: oy, visible: true}
}

func (h *fakeHost) Send(cmd string)       { h.lines = append(h.lines, cmd) }
func (h *fakeHost) Zoom() int             { return h.zoom }
func (h *fakeHost) Origin(any) (x, y int) { return h.ox, h.oy }
func (h *fakeHost) Visible() bool         { return h.visible }
func (h *fakeHost) Path() string          { return ".x1.c" }
func (h *fakeHost) EraseIolets(_ any, tag string) {
	h.lines = append(h.lines, "# iolets erase "+tag)
}

func (h *fakeHost) DrawIolets(_ any, tag string, x1, y1, x2, y2 int) {
	h.lines = append(h.lines, fmt.Sprintf("# iolets draw %s %d %d %d %d", tag, x1, y1, x2, y2))
}

func (h *fakeHost) transcript() []byte {
	return []byte(strings.Join(h.lines, "\n") + "\n")
}

func (h *fakeHost) reset() { h.lines = nil }

// bareHost implements only Host.
type bareHost struct {
	sent []string
}

func (h *bareHost) Send(cmd string)       { h.sent = append(h.sent, cmd) }
func (h *bareHost) Zoom() int             { return 1 }
func (h *bareHost) Origin(any) (x, y int) { return 0, 0 }
func (h *bareHost) Visible() bool         { return false }
func (h *bareHost) Path() string          { return ".c" }
