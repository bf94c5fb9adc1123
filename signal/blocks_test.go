package signal

import (
	"errors"
	"testing"

	"github.com/gogpu/ggpd"
)

func TestBlocksCounts(t *testing.T) {
	b, err := NewBlocks(2, 3, 64)
	if err != nil {
		t.Fatal(err)
	}
	if b.Inlets() != 2 || b.Outlets() != 3 || b.BlockSize() != 64 {
		t.Errorf("counts = %d/%d/%d, want 2/3/64", b.Inlets(), b.Outlets(), b.BlockSize())
	}
	for i := 0; i < 3; i++ {
		out, err := b.Out(i)
		if err != nil || len(out) != 64 {
			t.Errorf("Out(%d) = len %d, %v", i, len(out), err)
		}
	}
}

func TestBlocksIndex(t *testing.T) {
	b, _ := NewBlocks(1, 1, 8)

	tests := []struct {
		name string
		fn   func(int) ([]float64, error)
		idx  int
		ok   bool
	}{
		{"in 0", b.In, 0, true},
		{"in 1", b.In, 1, false},
		{"in -1", b.In, -1, false},
		{"out 0", b.Out, 0, true},
		{"out 1", b.Out, 1, false},
	}
	for _, tt := range tests {
		_, err := tt.fn(tt.idx)
		if tt.ok && err != nil {
			t.Errorf("%s: error = %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ggpd.ErrOutOfRange) {
			t.Errorf("%s: error = %v, want ErrOutOfRange", tt.name, err)
		}
	}
}

func TestBlocksLoadStore(t *testing.T) {
	b, _ := NewBlocks(2, 1, 4)

	in := [][]float64{{1, 2, 3, 4}, {10, 10, 10, 10}}
	if err := b.Load(in); err != nil {
		t.Fatal(err)
	}

	out0, _ := b.Out(0)
	in0, _ := b.In(0)
	in1, _ := b.In(1)
	copy(out0, in0)
	Mix(out0, in1)
	Gain(out0, 0.5)

	host := [][]float64{make([]float64, 4)}
	if err := b.Store(host); err != nil {
		t.Fatal(err)
	}
	want := []float64{5.5, 6, 6.5, 7}
	for i, v := range host[0] {
		if v != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, v, want[i])
		}
	}

	// Inputs are copies: changing the host block does not reach the buffer.
	in[0][0] = 99
	if in0[0] != 1 {
		t.Error("inlet buffer aliases host memory")
	}

	// Load zeroes outputs for the next block.
	_ = b.Load(in)
	if out0[0] != 0 {
		t.Errorf("output not cleared by Load: %v", out0)
	}

	if err := b.Load(in[:1]); err == nil {
		t.Error("Load() accepted too few blocks")
	}
	if err := b.Store(nil); err == nil {
		t.Error("Store() accepted too few blocks")
	}
}

func TestBlocksResize(t *testing.T) {
	b, _ := NewBlocks(1, 2, 64)
	if err := b.Resize(128); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		out, _ := b.Out(i)
		if len(out) != 128 {
			t.Errorf("len(Out(%d)) = %d, want 128", i, len(out))
		}
	}
	if b.BlockSize() != 128 {
		t.Errorf("BlockSize() = %d, want 128", b.BlockSize())
	}
	if err := b.Resize(-1); err == nil {
		t.Error("Resize(-1) succeeded")
	}
}

func TestBlocksRelease(t *testing.T) {
	b, _ := NewBlocks(1, 1, 8)
	b.Release()
	b.Release()

	if !b.Released() {
		t.Error("Released() = false")
	}
	if _, err := b.In(0); !errors.Is(err, ErrReleased) {
		t.Errorf("In() after Release = %v, want ErrReleased", err)
	}
	if err := b.Resize(4); !errors.Is(err, ErrReleased) {
		t.Errorf("Resize() after Release = %v, want ErrReleased", err)
	}
	if b.Inlets() != 0 || b.Outlets() != 0 {
		t.Error("counts not cleared by Release")
	}
}

func TestNewBlocksErrors(t *testing.T) {
	if _, err := NewBlocks(-1, 0, 64); err == nil {
		t.Error("NewBlocks(-1, ...) succeeded")
	}
	if _, err := NewBlocks(0, 0, -64); err == nil {
		t.Error("NewBlocks with negative block size succeeded")
	}
}

func TestMultiply(t *testing.T) {
	dst := []float64{1, 2, 3}
	Multiply(dst, []float64{2, 3})
	want := []float64{2, 6, 3}
	for i, v := range dst {
		if v != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, v, want[i])
		}
	}
}
