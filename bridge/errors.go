package bridge

import "errors"

var (
	// ErrClosed is returned by every Object method after Close.
	ErrClosed = errors.New("bridge: object closed")

	// ErrNoGUI is returned by drawing calls on objects without a GUI.
	ErrNoGUI = errors.New("bridge: object has no GUI")

	// ErrInvalidSpec is returned by New when the declared arity is invalid.
	ErrInvalidSpec = errors.New("bridge: invalid object spec")
)
