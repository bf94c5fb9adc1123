package gfx

import (
	"math"

	"github.com/gogpu/gg"
)

const (
	// minCurveSegments is the lower bound on line segments per flattened curve.
	minCurveSegments = 10

	// minPathPoints is the fewest points a filled or stroked path draws with.
	minPathPoints = 3
)

// Path is a polyline built by scripts. Curves are flattened into points as
// they are added, so both backends only ever see straight segments.
type Path struct {
	points []gg.Point
	start  gg.Point
}

// NewPath starts a path at (x, y).
func NewPath(x, y float64) *Path {
	p := &Path{start: gg.Pt(x, y)}
	p.points = append(p.points, p.start)
	return p
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.points = append(p.points, gg.Pt(x, y))
}

// QuadTo adds a quadratic bezier with control point (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p0 := p.last()
	n := segments(p0, gg.Pt(x, y))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		p.points = append(p.points, gg.Pt(
			u*u*p0.X+2*u*t*cx+t*t*x,
			u*u*p0.Y+2*u*t*cy+t*t*y,
		))
	}
}

// CubicTo adds a cubic bezier with control points (c1x, c1y), (c2x, c2y)
// ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p0 := p.last()
	n := segments(p0, gg.Pt(x, y))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		p.points = append(p.points, gg.Pt(
			u*u*u*p0.X+3*u*u*t*c1x+3*u*t*t*c2x+t*t*t*x,
			u*u*u*p0.Y+3*u*u*t*c1y+3*u*t*t*c2y+t*t*t*y,
		))
	}
}

// Close adds a segment back to the start point.
func (p *Path) Close() {
	p.points = append(p.points, p.start)
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// Points returns a copy of the points.
func (p *Path) Points() []gg.Point {
	out := make([]gg.Point, len(p.points))
	copy(out, p.points)
	return out
}

func (p *Path) last() gg.Point {
	return p.points[len(p.points)-1]
}

// segments returns the number of line segments used to flatten a curve
// between a and b: one per unit of distance, at least minCurveSegments.
func segments(a, b gg.Point) int {
	d := math.Hypot(b.X-a.X, b.Y-a.Y)
	return int(math.Ceil(max(minCurveSegments, d)))
}

// Compact returns pts without consecutive duplicate points. Rounding in the
// callers can produce the same point twice in a row.
func Compact(pts []gg.Point) []gg.Point {
	out := make([]gg.Point, 0, len(pts))
	for i, pt := range pts {
		if i > 0 && pt == out[len(out)-1] {
			continue
		}
		out = append(out, pt)
	}
	return out
}
