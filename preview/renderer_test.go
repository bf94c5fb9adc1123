package preview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/gfx"
	"github.com/gogpu/ggpd/gfx/callback"
)

type host struct {
	fn callback.Func
}

func (h host) DrawCallback() callback.Func { return h.fn }

func newPainter(t *testing.T, r *Renderer) (*gfx.Painter, gfx.Surface) {
	t.Helper()
	w, h := r.Size()
	s, err := callback.New(gfx.Target{Host: host{r.Handle}, Width: w, Height: h})
	if err != nil {
		t.Fatal(err)
	}
	p, err := gfx.Begin(s, true)
	if err != nil {
		t.Fatal(err)
	}
	return p, s
}

func pixel(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRendererFill(t *testing.T) {
	r, err := New(40, 40)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	p, _ := newPainter(t, r)
	p.SetColor(0, 0, 255)
	p.FillRect(0, 0, 10, 10)
	if err := p.End(); err != nil {
		t.Fatal(err)
	}
	if r.Err() != nil {
		t.Fatalf("Err() = %v", r.Err())
	}

	img := r.Image()
	if got := pixel(img, 5, 5); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel(5, 5) = %v, want blue", got)
	}
	if got := pixel(img, 30, 30); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel(30, 30) = %v, want white background", got)
	}
}

func TestRendererFillAllAndReset(t *testing.T) {
	r, _ := New(20, 10, WithBackground(gfx.Black))
	defer r.Close()

	if got := pixel(r.Image(), 1, 1); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("background = %v, want black", got)
	}

	p, _ := newPainter(t, r)
	p.SetColor(255, 0, 0)
	p.FillAll()
	_ = p.End()
	if got := pixel(r.Image(), 19, 9); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("corner after fill_all = %v, want red", got)
	}

	r.Reset()
	if got := pixel(r.Image(), 19, 9); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("corner after Reset = %v, want black", got)
	}
}

func TestRendererShapes(t *testing.T) {
	r, _ := New(60, 60)
	defer r.Close()

	p, _ := newPainter(t, r)
	p.SetColorID(gfx.ColorForeground)
	p.FillEllipse(0, 0, 20, 20)
	p.FillRoundedRect(30, 0, 20, 20, 4)
	p.StrokeRect(0, 30, 20, 20, 2)
	p.DrawLine(30, 40, 50, 40, 4)
	tri := gfx.NewPath(0, 55)
	tri.LineTo(10, 55)
	tri.LineTo(5, 59)
	p.FillPath(tri)
	p.StrokePath(tri, 1)
	if err := p.End(); err != nil {
		t.Fatal(err)
	}
	if r.Err() != nil {
		t.Fatalf("Err() = %v", r.Err())
	}

	img := r.Image()
	black := color.RGBA{0, 0, 0, 255}
	for _, pt := range []image.Point{{10, 10}, {40, 10}, {40, 40}} {
		if got := pixel(img, pt.X, pt.Y); got != black {
			t.Errorf("pixel%v = %v, want black", pt, got)
		}
	}
	// Inside the stroked rectangle stays white.
	if got := pixel(img, 10, 40); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("inside stroked rect = %v, want white", got)
	}
}

func TestRendererDegeneratePath(t *testing.T) {
	r, _ := New(10, 10)
	defer r.Close()

	p, _ := newPainter(t, r)
	dot := gfx.NewPath(3, 3)
	dot.LineTo(3, 3)
	dot.LineTo(3, 3)
	p.FillPath(dot)
	p.StrokePath(dot, 1)
	if err := p.End(); err != nil {
		t.Fatal(err)
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
	if n := r.Commands(); n != 0 {
		t.Errorf("Commands() = %d, want 0", n)
	}
}

func TestRendererFaceCache(t *testing.T) {
	r, _ := New(50, 50)

	p, _ := newPainter(t, r)
	for i := 0; i < maxFaces+4; i++ {
		p.DrawText("x", 0, 0, 40, float64(8+i))
	}
	p.DrawText("x", 0, 0, 40, float64(8+maxFaces+3))
	if err := p.End(); err != nil {
		t.Fatal(err)
	}
	if n := r.Faces(); n != maxFaces {
		t.Errorf("Faces() = %d, want %d", n, maxFaces)
	}
	if hits, _ := r.faces.Stats(); hits != 1 {
		t.Errorf("face hits = %d, want 1", hits)
	}

	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if n := r.Faces(); n != 0 {
		t.Errorf("Faces() after Close = %d, want 0", n)
	}
}

func TestRendererText(t *testing.T) {
	r, _ := New(100, 40)
	defer r.Close()

	p, _ := newPainter(t, r)
	p.SetColorID(gfx.ColorForeground)
	p.DrawText("Hello", 2, 2, 96, 20)
	_ = p.End()
	if r.Err() != nil {
		t.Fatalf("Err() = %v", r.Err())
	}

	img := r.Image()
	inked := false
	for y := 0; y < 40 && !inked; y++ {
		for x := 0; x < 100; x++ {
			if pixel(img, x, y).R < 128 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("text left the image blank")
	}
}

func TestRendererUnknownAndBadArgs(t *testing.T) {
	r, _ := New(10, 10)
	defer r.Close()

	r.Handle(nil, "gfx_sparkle", nil)
	r.Handle(nil, "not_gfx", nil)
	if r.Unknown() != 2 {
		t.Errorf("Unknown() = %d, want 2", r.Unknown())
	}
	if r.Err() != nil {
		t.Errorf("unknown commands set Err() = %v", r.Err())
	}

	r.Handle(nil, "gfx_fill_rect", ggpd.Floats(1, 2))
	if !errors.Is(r.Err(), ErrBadArgs) {
		t.Errorf("Err() = %v, want ErrBadArgs", r.Err())
	}
	if r.Commands() != 3 {
		t.Errorf("Commands() = %d, want 3", r.Commands())
	}
}

func TestRendererResize(t *testing.T) {
	r, _ := New(10, 10)
	defer r.Close()

	s, _ := callback.New(gfx.Target{Host: host{r.Handle}, Width: 10, Height: 10})
	if err := s.SetSize(64, 32); err != nil {
		t.Fatal(err)
	}
	if w, h := r.Size(); w != 64 || h != 32 {
		t.Errorf("Size() = (%d, %d), want (64, 32)", w, h)
	}
}

func TestRendererPNG(t *testing.T) {
	r, _ := New(16, 8)
	defer r.Close()

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 16x8", b)
	}
}

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(0, 10); !errors.Is(err, gfx.ErrInvalidSize) {
		t.Errorf("New(0, 10) = %v, want ErrInvalidSize", err)
	}
}

func TestWrap(t *testing.T) {
	advance := func(s string) float64 { return float64(len(s)) }
	tests := []struct {
		in    string
		width float64
		want  []string
	}{
		{"one two three", 0, []string{"one two three"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"one two three", 3, []string{"one", "two", "three"}},
		{"a\nb c", 10, []string{"a", "b c"}},
		{"", 5, []string{""}},
	}
	for _, tt := range tests {
		got := wrap(tt.in, tt.width, advance)
		if len(got) != len(tt.want) {
			t.Errorf("wrap(%q, %v) = %q, want %q", tt.in, tt.width, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("wrap(%q, %v) = %q, want %q", tt.in, tt.width, got, tt.want)
				break
			}
		}
	}
}
