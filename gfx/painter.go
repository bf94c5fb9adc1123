package gfx

import (
	"errors"

	"github.com/gogpu/gg"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggpd"
	"github.com/gogpu/ggpd/interaction"
	"github.com/gogpu/ggpd/transform"
)

// Painter is the drawing API handed to a script for one pass.
//
// The first error returned by the surface sticks and later calls do
// nothing. ErrUnsupportedOperation is kept apart: an unsupported transform
// on a backend without transforms is recorded, see Unsupported, and the
// rest of the pass is still drawn.
//
// Painter is not safe for concurrent use.
type Painter struct {
	s           Surface
	err         error
	unsupported error
}

// Begin starts a pass on s and returns a painter for it.
// It returns ErrNotVisible (possibly wrapped) when the object cannot draw.
func Begin(s Surface, first bool) (*Painter, error) {
	if err := s.BeginPass(first); err != nil {
		return nil, err
	}
	return &Painter{s: s}, nil
}

// End finishes the pass. It returns the error that stopped the pass
// joined with the first unsupported operation.
func (p *Painter) End() error {
	p.fail(p.s.EndPass())
	return errors.Join(p.err, p.unsupported)
}

// Err returns the error that stopped the pass, if any.
func (p *Painter) Err() error {
	return p.err
}

// Unsupported returns the first ErrUnsupportedOperation of the pass.
func (p *Painter) Unsupported() error {
	return p.unsupported
}

// Size returns the object size.
func (p *Painter) Size() (w, h int) {
	return p.s.Size()
}

func (p *Painter) fail(err error) {
	switch {
	case err == nil:
	case errors.Is(err, ggpd.ErrUnsupportedOperation):
		if p.unsupported == nil {
			p.unsupported = err
		}
	case p.err == nil:
		p.err = err
	}
}

func (p *Painter) emit(prim Primitive) {
	if p.err != nil {
		return
	}
	p.fail(p.s.Emit(prim))
}

func (p *Painter) push(t transform.Transform) {
	if p.err != nil {
		return
	}
	p.fail(p.s.PushTransform(t))
}

// SetColor sets an opaque RGB colour, components in [0, 255].
func (p *Painter) SetColor(r, g, b int) {
	p.emit(SetColor{Color: RGB(r, g, b)})
}

// SetColorRGBA sets a colour with alpha in [0, 1].
func (p *Painter) SetColorRGBA(r, g, b int, a float64) {
	p.emit(SetColor{Color: RGBA(r, g, b, a)})
}

// SetColorID sets a theme colour by id, see ColorID.
func (p *Painter) SetColorID(id int) {
	p.emit(SetColor{Color: ColorID(id)})
}

// FillAll fills the whole object.
func (p *Painter) FillAll() {
	p.emit(FillAll{})
}

// FillRect fills a rectangle.
func (p *Painter) FillRect(x, y, w, h float64) {
	p.emit(FillRect{Rect{x, y, w, h}})
}

// StrokeRect outlines a rectangle.
func (p *Painter) StrokeRect(x, y, w, h, lineWidth float64) {
	p.emit(StrokeRect{Rect: Rect{x, y, w, h}, LineWidth: lineWidth})
}

// FillRoundedRect fills a rectangle with rounded corners.
func (p *Painter) FillRoundedRect(x, y, w, h, radius float64) {
	p.emit(FillRoundedRect{Rect: Rect{x, y, w, h}, Radius: radius})
}

// StrokeRoundedRect outlines a rectangle with rounded corners.
func (p *Painter) StrokeRoundedRect(x, y, w, h, radius, lineWidth float64) {
	p.emit(StrokeRoundedRect{Rect: Rect{x, y, w, h}, Radius: radius, LineWidth: lineWidth})
}

// FillEllipse fills the ellipse inscribed in the rectangle.
func (p *Painter) FillEllipse(x, y, w, h float64) {
	p.emit(FillEllipse{Rect{x, y, w, h}})
}

// StrokeEllipse outlines the ellipse inscribed in the rectangle.
func (p *Painter) StrokeEllipse(x, y, w, h, lineWidth float64) {
	p.emit(StrokeEllipse{Rect: Rect{x, y, w, h}, LineWidth: lineWidth})
}

// DrawLine draws a line.
func (p *Painter) DrawLine(x1, y1, x2, y2, lineWidth float64) {
	p.emit(Line{X1: x1, Y1: y1, X2: x2, Y2: y2, LineWidth: lineWidth})
}

// DrawText draws s wrapped to width w. The string is NFC-normalised so
// hosts measure and render the same runes.
func (p *Painter) DrawText(s string, x, y, w, fontSize float64) {
	p.emit(Text{Text: norm.NFC.String(s), X: x, Y: y, W: w, FontSize: fontSize})
}

// FillPath fills path. Paths with fewer than three distinct consecutive
// points draw nothing.
func (p *Painter) FillPath(path *Path) {
	if pts := pathPoints(path); pts != nil {
		p.emit(FillPath{Points: pts})
	}
}

// StrokePath strokes path. Paths with fewer than three distinct
// consecutive points draw nothing.
func (p *Painter) StrokePath(path *Path, lineWidth float64) {
	if pts := pathPoints(path); pts != nil {
		p.emit(StrokePath{Points: pts, LineWidth: lineWidth})
	}
}

// pathPoints returns the compacted points of path, or nil when fewer than
// minPathPoints remain.
func pathPoints(path *Path) []gg.Point {
	if path == nil {
		return nil
	}
	pts := Compact(path.Points())
	if len(pts) < minPathPoints {
		return nil
	}
	return pts
}

// Translate pushes a translation.
func (p *Painter) Translate(x, y float64) {
	p.push(transform.TranslateBy(x, y))
}

// Scale pushes a scale.
func (p *Painter) Scale(x, y float64) {
	p.push(transform.ScaleBy(x, y))
}

// ResetTransform empties the transform stack.
func (p *Painter) ResetTransform() {
	if p.err != nil {
		return
	}
	p.fail(p.s.ResetTransform())
}

// Interaction returns the pointer state of the object. Backends that leave
// pointer tracking to the host return ErrUnsupportedOperation.
func (p *Painter) Interaction() (*interaction.State, error) {
	return InteractionOf(p.s)
}

// InteractionOf returns the pointer state kept by s.
func InteractionOf(s Surface) (*interaction.State, error) {
	is, ok := s.(Interactive)
	if !ok {
		return nil, ggpd.Unsupported(s.Backend(), "interaction queries")
	}
	return is.Interaction(), nil
}
