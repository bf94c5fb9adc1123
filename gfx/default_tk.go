//go:build !plugdata

package gfx

// DefaultBackend is the backend objects use unless told otherwise.
const DefaultBackend = "tkcanvas"
