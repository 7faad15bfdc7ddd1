// Package position computes where a dragged box is shown.
//
// [Calculate] is a pure function of two pointer readings (the reading that
// started the drag and the current one) and the dragged element's geometry.
// It returns the position at which the box should be displayed; the caller
// derives the transient visual offset from it and never writes it into the
// committed position directly.
//
// The package also converts offsets to and from the CSS transform form
// translate3d(Xpx, Ypx, 0) used by browser clients. Parsing never fails
// loudly: malformed input yields ok=false.
package position

import (
	"math"

	"github.com/matzehuels/easybox/pkg/pointer"
)

// Point is a pixel position relative to the container origin.
type Point struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

// Add returns p translated by o.
func (p Point) Add(o Offset) Point {
	return Point{Left: p.Left + o.X, Top: p.Top + o.Y}
}

// Sub returns the offset that moves from to p.
func (p Point) Sub(from Point) Offset {
	return Offset{X: p.Left - from.Left, Y: p.Top - from.Top}
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Offset is a visual translation applied on top of a committed position.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// IsZero reports whether the offset moves nothing.
func (o Offset) IsZero() bool { return o.X == 0 && o.Y == 0 }

// Element is the geometry of the element being dragged.
type Element struct {
	Committed Point // authoritative position before the drag
	Size      Size  // declared box size
	Parent    Size  // container size, used when locked inside the parent
}

// Calculate returns the position at which the element is shown while the
// pointer is at current, given that the drag started at origin:
//
//	left = committed.Left + (current.X - origin.X)
//	top  = committed.Top  + (current.Y - origin.Y)
//
// With lockInsideParent the result is clamped to
// [0, parent.Width-size.Width] x [0, parent.Height-size.Height]. A box larger
// than its parent is pinned to the origin on that axis.
func Calculate(current, origin pointer.Reading, el Element, lockInsideParent bool) Point {
	dx, dy := current.Sub(origin)
	p := Point{
		Left: el.Committed.Left + dx,
		Top:  el.Committed.Top + dy,
	}
	if lockInsideParent {
		p.Left = clamp(p.Left, 0, el.Parent.Width-el.Size.Width)
		p.Top = clamp(p.Top, 0, el.Parent.Height-el.Size.Height)
	}
	return p
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Min(math.Max(v, lo), hi)
}
