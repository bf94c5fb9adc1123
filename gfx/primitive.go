package gfx

import "github.com/gogpu/gg"

// Kind identifies the type of a primitive.
type Kind uint8

const (
	// Style
	KindSetColor Kind = iota

	// Shapes
	KindFillAll
	KindFillRect
	KindStrokeRect
	KindFillRoundedRect
	KindStrokeRoundedRect
	KindFillEllipse
	KindStrokeEllipse
	KindLine
	KindText
	KindFillPath
	KindStrokePath
)

// kindNames maps Kind values to the command names used on the wire.
var kindNames = [...]string{
	KindSetColor:          "set_color",
	KindFillAll:           "fill_all",
	KindFillRect:          "fill_rect",
	KindStrokeRect:        "stroke_rect",
	KindFillRoundedRect:   "fill_rounded_rect",
	KindStrokeRoundedRect: "stroke_rounded_rect",
	KindFillEllipse:       "fill_ellipse",
	KindStrokeEllipse:     "stroke_ellipse",
	KindLine:              "draw_line",
	KindText:              "draw_text",
	KindFillPath:          "fill_path",
	KindStrokePath:        "stroke_path",
}

// String returns the command name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindByName returns the Kind with the given command name.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Primitive is one drawing operation emitted during a pass.
type Primitive interface {
	// Kind returns the Kind of this primitive.
	Kind() Kind
}

// Rect is an axis-aligned rectangle in object-local units.
type Rect struct {
	X, Y, W, H float64
}

// SetColor changes the colour used by the following primitives.
type SetColor struct {
	Color Color
}

// Kind implements Primitive.
func (SetColor) Kind() Kind { return KindSetColor }

// FillAll fills the whole object area with the current colour.
type FillAll struct{}

// Kind implements Primitive.
func (FillAll) Kind() Kind { return KindFillAll }

// FillRect fills a rectangle.
type FillRect struct {
	Rect
}

// Kind implements Primitive.
func (FillRect) Kind() Kind { return KindFillRect }

// StrokeRect outlines a rectangle.
type StrokeRect struct {
	Rect
	LineWidth float64
}

// Kind implements Primitive.
func (StrokeRect) Kind() Kind { return KindStrokeRect }

// FillRoundedRect fills a rectangle with rounded corners.
type FillRoundedRect struct {
	Rect
	Radius float64
}

// Kind implements Primitive.
func (FillRoundedRect) Kind() Kind { return KindFillRoundedRect }

// StrokeRoundedRect outlines a rectangle with rounded corners.
type StrokeRoundedRect struct {
	Rect
	Radius    float64
	LineWidth float64
}

// Kind implements Primitive.
func (StrokeRoundedRect) Kind() Kind { return KindStrokeRoundedRect }

// FillEllipse fills the ellipse inscribed in Rect.
type FillEllipse struct {
	Rect
}

// Kind implements Primitive.
func (FillEllipse) Kind() Kind { return KindFillEllipse }

// StrokeEllipse outlines the ellipse inscribed in Rect.
type StrokeEllipse struct {
	Rect
	LineWidth float64
}

// Kind implements Primitive.
func (StrokeEllipse) Kind() Kind { return KindStrokeEllipse }

// Line draws a straight line.
type Line struct {
	X1, Y1, X2, Y2 float64
	LineWidth      float64
}

// Kind implements Primitive.
func (Line) Kind() Kind { return KindLine }

// Text draws a string wrapped to width W with its top-left corner at (X, Y).
type Text struct {
	Text     string
	X, Y     float64
	W        float64
	FontSize float64
}

// Kind implements Primitive.
func (Text) Kind() Kind { return KindText }

// FillPath fills a closed polygon.
type FillPath struct {
	Points []gg.Point
}

// Kind implements Primitive.
func (FillPath) Kind() Kind { return KindFillPath }

// StrokePath draws a polyline.
type StrokePath struct {
	Points    []gg.Point
	LineWidth float64
}

// Kind implements Primitive.
func (StrokePath) Kind() Kind { return KindStrokePath }
