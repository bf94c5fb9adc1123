package signal

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggpd"
)

// ErrReleased is returned by Blocks after Release.
var ErrReleased = errors.New("signal: blocks released")

// Blocks holds one buffer per signal inlet and outlet.
type Blocks struct {
	ins      []*Buffer
	outs     []*Buffer
	size     int
	released bool
}

// NewBlocks allocates buffers for the given port counts and block size.
func NewBlocks(inlets, outlets, blockSize int) (*Blocks, error) {
	if inlets < 0 || outlets < 0 {
		return nil, fmt.Errorf("signal: negative port count %d/%d", inlets, outlets)
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("signal: negative block size %d", blockSize)
	}
	b := &Blocks{
		ins:  make([]*Buffer, inlets),
		outs: make([]*Buffer, outlets),
		size: blockSize,
	}
	for i := range b.ins {
		b.ins[i] = New(blockSize)
	}
	for i := range b.outs {
		b.outs[i] = New(blockSize)
	}
	return b, nil
}

// Inlets returns the number of signal inlets.
func (b *Blocks) Inlets() int { return len(b.ins) }

// Outlets returns the number of signal outlets.
func (b *Blocks) Outlets() int { return len(b.outs) }

// BlockSize returns the current block size.
func (b *Blocks) BlockSize() int { return b.size }

// In returns the samples of signal inlet i.
func (b *Blocks) In(i int) ([]float64, error) {
	if b.released {
		return nil, ErrReleased
	}
	if err := ggpd.CheckIndex(ggpd.KindInlet, i, len(b.ins)); err != nil {
		return nil, err
	}
	return b.ins[i].Samples(), nil
}

// Out returns the samples of signal outlet i.
func (b *Blocks) Out(i int) ([]float64, error) {
	if b.released {
		return nil, ErrReleased
	}
	if err := ggpd.CheckIndex(ggpd.KindOutlet, i, len(b.outs)); err != nil {
		return nil, err
	}
	return b.outs[i].Samples(), nil
}

// Ins returns the inlet sample slices.
func (b *Blocks) Ins() [][]float64 { return samples(b.ins) }

// Outs returns the outlet sample slices.
func (b *Blocks) Outs() [][]float64 { return samples(b.outs) }

func samples(bufs []*Buffer) [][]float64 {
	out := make([][]float64, len(bufs))
	for i, buf := range bufs {
		out[i] = buf.Samples()
	}
	return out
}

// Resize changes the block size of every buffer. It is called when the
// host restarts DSP with a new block size.
func (b *Blocks) Resize(n int) error {
	if b.released {
		return ErrReleased
	}
	if n < 0 {
		return fmt.Errorf("signal: negative block size %d", n)
	}
	for _, buf := range b.ins {
		buf.Resize(n)
	}
	for _, buf := range b.outs {
		buf.Resize(n)
	}
	b.size = n
	return nil
}

// Load copies one host block per inlet into the inlet buffers and zeroes
// the outlet buffers.
func (b *Blocks) Load(in [][]float64) error {
	if b.released {
		return ErrReleased
	}
	if len(in) != len(b.ins) {
		return fmt.Errorf("signal: got %d input blocks for %d inlets", len(in), len(b.ins))
	}
	for i, src := range in {
		b.ins[i].CopyFrom(src)
	}
	for _, buf := range b.outs {
		buf.Zero()
	}
	return nil
}

// Store copies the outlet buffers into the host blocks.
func (b *Blocks) Store(out [][]float64) error {
	if b.released {
		return ErrReleased
	}
	if len(out) != len(b.outs) {
		return fmt.Errorf("signal: got %d output blocks for %d outlets", len(out), len(b.outs))
	}
	for i, dst := range out {
		copy(dst, b.outs[i].Samples())
	}
	return nil
}

// Release drops every buffer. Release is idempotent.
func (b *Blocks) Release() {
	if b.released {
		return
	}
	for _, buf := range b.ins {
		buf.release()
	}
	for _, buf := range b.outs {
		buf.release()
	}
	b.ins, b.outs = nil, nil
	b.released = true
}

// Released reports whether Release was called.
func (b *Blocks) Released() bool { return b.released }
