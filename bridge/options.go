package bridge

import "github.com/gogpu/ggpd/gfx"

// DefaultBlockSize is the signal block size used until the host starts DSP.
const DefaultBlockSize = 64

type options struct {
	backend   string
	blockSize int
	width     int
	height    int
	sized     bool
}

func defaultOptions() options {
	return options{
		backend:   gfx.DefaultBackend,
		blockSize: DefaultBlockSize,
	}
}

// Option configures New.
type Option func(*options)

// WithBackend selects the drawing backend by registered name.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithBlockSize sets the initial signal block size.
func WithBlockSize(n int) Option {
	return func(o *options) {
		o.blockSize = n
	}
}

// WithSize overrides the GUI size declared by the Spec.
func WithSize(w, h int) Option {
	return func(o *options) {
		o.width, o.height = w, h
		o.sized = true
	}
}
