// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tkcanvas

// Host is the canvas side of the backend.
type Host interface {
	// Send delivers one Tk command line to the GUI.
	Send(cmd string)

	// Zoom returns the canvas zoom factor (1 or 2 in Pd).
	Zoom() int

	// Origin returns the object's top-left corner in canvas pixels,
	// zoom already applied.
	Origin(handle any) (x, y int)

	// Visible reports whether the canvas window is mapped.
	Visible() bool

	// Path returns the Tk widget path of the canvas, such as ".x5f3a.c".
	Path() string
}

// IoletDrawer is implemented by hosts that draw inlets and outlets
// themselves. The rectangle is the object's bounding box in canvas pixels.
type IoletDrawer interface {
	DrawIolets(handle any, tag string, x1, y1, x2, y2 int)
	EraseIolets(handle any, tag string)
}

// FontSizer maps a script font size to the host font size at a zoom level.
// Without it the size is multiplied by the zoom.
type FontSizer interface {
	HostFontSize(size, zoom int) int
}

// Tagger is implemented by hosts that hand out their own item tags.
// It takes precedence over the default random tag source.
type Tagger interface {
	NewTag() string
}
