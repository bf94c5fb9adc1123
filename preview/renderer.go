package preview

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/gfx"
	"github.com/gogpu/ggpd/gfx/callback"
	"github.com/gogpu/ggpd/internal/lru"
)

// maxFaces bounds the font faces kept per renderer, one per text size.
const maxFaces = 16

// ErrBadArgs is recorded when a command has the wrong arguments.
var ErrBadArgs = errors.New("preview: bad command arguments")

// Option configures a Renderer.
type Option func(*Renderer)

// WithFont sets the font used for text commands.
func WithFont(src *text.FontSource) Option {
	return func(r *Renderer) {
		r.font = src
	}
}

// WithBackground sets the colour the image is cleared to.
func WithBackground(c gfx.Color) Option {
	return func(r *Renderer) {
		r.bg = c
	}
}

// Renderer draws callback commands into a gg context.
// It is not safe for concurrent use.
type Renderer struct {
	dc    *gg.Context
	font  *text.FontSource
	faces *lru.Cache[float64, text.Face]
	bg    gfx.Color
	err   error

	commands int
	unknown  int
}

var _ callback.Func = (*Renderer)(nil).Handle

// New returns a renderer for a w x h object. The default font is Go Regular.
func New(w, h int, opts ...Option) (*Renderer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("preview: %dx%d: %w", w, h, gfx.ErrInvalidSize)
	}
	r := &Renderer{
		bg:    gfx.White,
		faces: lru.New[float64, text.Face](maxFaces),
	}
	r.faces.OnEvict(func(size float64, _ text.Face) {
		ggpd.Logger().Debug("preview: font face evicted", "size", size)
	})
	for _, opt := range opts {
		opt(r)
	}
	if r.font == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("preview: load default font: %w", err)
		}
		r.font = src
	}
	r.dc = gg.NewContext(w, h)
	r.Reset()
	return r, nil
}

// Handle draws one command. Its signature matches callback.Func.
func (r *Renderer) Handle(_ any, cmd string, args []ggpd.Atom) {
	r.commands++
	name, ok := strings.CutPrefix(cmd, callback.Prefix)
	if !ok {
		r.drop(cmd)
		return
	}
	if cmd == callback.CmdResized {
		r.resize(args)
		return
	}
	kind, ok := gfx.KindByName(name)
	if !ok {
		r.drop(cmd)
		return
	}
	if err := r.draw(kind, args); err != nil {
		ggpd.Logger().Warn("preview: draw failed", "cmd", cmd, "err", err)
		r.fail(err)
	}
}

func (r *Renderer) drop(cmd string) {
	r.unknown++
	ggpd.Logger().Warn("preview: unknown command", "cmd", cmd)
}

func (r *Renderer) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Renderer) resize(args []ggpd.Atom) {
	v, err := floats(args, 2)
	if err != nil || v[0] <= 0 || v[1] <= 0 {
		r.fail(fmt.Errorf("preview: resize %v: %w", args, ErrBadArgs))
		return
	}
	_ = r.dc.Close()
	r.dc = gg.NewContext(int(v[0]), int(v[1]))
	r.Reset()
}

func (r *Renderer) draw(kind gfx.Kind, args []ggpd.Atom) error {
	dc := r.dc

	switch kind {
	case gfx.KindSetColor:
		v, err := floats(args, 4)
		if err != nil {
			return err
		}
		dc.SetRGBA(v[0]/255, v[1]/255, v[2]/255, v[3])
		return nil

	case gfx.KindFillAll:
		dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
		return dc.Fill()

	case gfx.KindFillRect, gfx.KindStrokeRect:
		n := 4
		if kind == gfx.KindStrokeRect {
			n = 5
		}
		v, err := floats(args, n)
		if err != nil {
			return err
		}
		dc.DrawRectangle(v[0], v[1], v[2], v[3])
		return r.paint(kind == gfx.KindFillRect, v, 4)

	case gfx.KindFillRoundedRect, gfx.KindStrokeRoundedRect:
		n := 5
		if kind == gfx.KindStrokeRoundedRect {
			n = 6
		}
		v, err := floats(args, n)
		if err != nil {
			return err
		}
		dc.DrawRoundedRectangle(v[0], v[1], v[2], v[3], v[4])
		return r.paint(kind == gfx.KindFillRoundedRect, v, 5)

	case gfx.KindFillEllipse, gfx.KindStrokeEllipse:
		n := 4
		if kind == gfx.KindStrokeEllipse {
			n = 5
		}
		v, err := floats(args, n)
		if err != nil {
			return err
		}
		dc.DrawEllipse(v[0]+v[2]/2, v[1]+v[3]/2, v[2]/2, v[3]/2)
		return r.paint(kind == gfx.KindFillEllipse, v, 4)

	case gfx.KindLine:
		v, err := floats(args, 5)
		if err != nil {
			return err
		}
		dc.DrawLine(v[0], v[1], v[2], v[3])
		return r.paint(false, v, 4)

	case gfx.KindText:
		return r.text(args)

	case gfx.KindFillPath:
		return r.path(args, true)

	case gfx.KindStrokePath:
		return r.path(args, false)
	}
	return ggpd.Unsupported("preview", kind.String())
}

// paint fills or strokes the current path. For strokes v[lw] is the line
// width.
func (r *Renderer) paint(fill bool, v []float64, lw int) error {
	if fill {
		return r.dc.Fill()
	}
	r.dc.SetLineWidth(v[lw])
	return r.dc.Stroke()
}

func (r *Renderer) path(args []ggpd.Atom, fill bool) error {
	if !fill && len(args) == 0 {
		return ErrBadArgs
	}
	v, err := floats(args, len(args))
	if err != nil {
		return err
	}
	lw := 0.0
	if !fill {
		lw, v = v[0], v[1:]
	}
	if len(v)%2 != 0 || len(v) < 4 {
		return fmt.Errorf("preview: path with %d coordinates: %w", len(v), ErrBadArgs)
	}

	r.dc.MoveTo(v[0], v[1])
	for i := 2; i < len(v); i += 2 {
		r.dc.LineTo(v[i], v[i+1])
	}
	if fill {
		r.dc.ClosePath()
		return r.dc.Fill()
	}
	r.dc.SetLineWidth(lw)
	return r.dc.Stroke()
}

func (r *Renderer) text(args []ggpd.Atom) error {
	if len(args) != 5 {
		return ErrBadArgs
	}
	s, ok := args[0].AsSymbol()
	if !ok {
		s = args[0].String()
	}
	v, err := floats(args[1:], 4)
	if err != nil {
		return err
	}
	x, y, w, size := v[0], v[1], v[2], v[3]
	if size <= 0 {
		return fmt.Errorf("preview: font size %g: %w", size, ErrBadArgs)
	}

	face := r.face(size)
	m := face.Metrics()
	lineHeight := m.Ascent + m.Descent + m.LineGap

	r.dc.SetFont(face)
	for i, line := range wrap(s, w, face.Advance) {
		r.dc.DrawString(line, x, y+m.Ascent+float64(i)*lineHeight)
	}
	return nil
}

func (r *Renderer) face(size float64) text.Face {
	return r.faces.GetOrCreate(size, func() text.Face {
		return r.font.Face(size)
	})
}

// wrap breaks s into lines no wider than width, breaking at spaces the
// way a Tk text item does. A word wider than width gets a line of its own.
// width <= 0 disables wrapping.
func wrap(s string, width float64, advance func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if width <= 0 {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			next := cur + " " + w
			if advance(next) > width {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = next
		}
		lines = append(lines, cur)
	}
	return lines
}

func floats(args []ggpd.Atom, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("preview: got %d arguments, want %d: %w", len(args), n, ErrBadArgs)
	}
	out := make([]float64, n)
	for i, a := range args {
		f, ok := a.AsFloat()
		if !ok {
			return nil, fmt.Errorf("preview: argument %d is %q: %w", i, a.String(), ErrBadArgs)
		}
		out[i] = f
	}
	return out, nil
}

// Reset clears the image to the background colour.
func (r *Renderer) Reset() {
	r.dc.ClearWithColor(r.bg.RGBA())
}

// Err returns the first drawing error.
func (r *Renderer) Err() error { return r.err }

// Commands returns how many commands were handled.
func (r *Renderer) Commands() int { return r.commands }

// Unknown returns how many commands were not recognised.
func (r *Renderer) Unknown() int { return r.unknown }

// Size returns the image size.
func (r *Renderer) Size() (w, h int) { return r.dc.Width(), r.dc.Height() }

// Image returns the rendered image.
func (r *Renderer) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the image as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// SavePNG writes the image to a PNG file.
func (r *Renderer) SavePNG(path string) error { return r.dc.SavePNG(path) }

// Faces returns how many font faces are cached.
func (r *Renderer) Faces() int { return r.faces.Len() }

// Close drops the cached font faces and releases the gg context.
func (r *Renderer) Close() error {
	hits, misses := r.faces.Stats()
	ggpd.Logger().Debug("preview: closed", "commands", r.commands,
		"face_hits", hits, "face_misses", misses)
	r.faces.Clear()
	return r.dc.Close()
}
