package gfx

import "errors"

// Sentinel errors for the gfx package.
var (
	// ErrNotVisible is returned by BeginPass when the object cannot be drawn
	// right now: its canvas is hidden and this is not the first draw.
	ErrNotVisible = errors.New("gfx: canvas not visible")

	// ErrNoPass is returned when a primitive or transform is submitted
	// outside of a drawing pass.
	ErrNoPass = errors.New("gfx: no drawing pass in progress")

	// ErrClosed is returned by a surface after Close.
	ErrClosed = errors.New("gfx: surface closed")

	// ErrInvalidSize is returned by SetSize for negative dimensions.
	ErrInvalidSize = errors.New("gfx: invalid size")
)
