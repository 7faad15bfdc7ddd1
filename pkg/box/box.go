// Package box defines the draggable unit of a board.
//
// A Box has a committed position, which is its authoritative place in the
// container, and an optional transient offset, which is how far it is shown
// displaced from that place while it is being dragged. At any time exactly
// one of the two is authoritative: while an offset is set, the shown
// position (committed + offset) is where the box really is; once the offset
// is cleared, the committed position is.
//
// The drag controller owns the offset and the dragging flag. The layout
// coordinator owns Index and may re-commit boxes that are not being dragged.
package box

import (
	"github.com/matzehuels/easybox/pkg/position"
)

// Box is a draggable rectangle inside a container.
type Box struct {
	ID      string
	Label   string
	Size    position.Size
	Visible bool
	Index   int

	committed position.Point
	offset    *position.Offset
	dragging  bool
}

// New creates a visible box with the given size at the container origin.
func New(id string, size position.Size) *Box {
	return &Box{ID: id, Size: size, Visible: true}
}

// Committed returns the authoritative position recorded for the box.
func (b *Box) Committed() position.Point { return b.committed }

// Commit records p as the box's authoritative position.
func (b *Box) Commit(p position.Point) { b.committed = p }

// Offset returns the transient visual offset, if one is applied.
func (b *Box) Offset() (position.Offset, bool) {
	if b.offset == nil {
		return position.Offset{}, false
	}
	return *b.offset, true
}

// SetOffset applies a transient visual offset.
func (b *Box) SetOffset(o position.Offset) {
	b.offset = &o
}

// ClearOffset removes the transient visual offset.
func (b *Box) ClearOffset() { b.offset = nil }

// Transform returns the CSS transform for the current offset, or "" when
// none is applied.
func (b *Box) Transform() string {
	if b.offset == nil {
		return ""
	}
	return position.Format(*b.offset)
}

// Dragging reports whether the box carries the dragging state.
func (b *Box) Dragging() bool { return b.dragging }

// SetDragging sets or clears the dragging state.
func (b *Box) SetDragging(v bool) { b.dragging = v }

// Shown returns where the box is displayed right now.
func (b *Box) Shown() position.Point {
	if b.offset == nil {
		return b.committed
	}
	return b.committed.Add(*b.offset)
}

// Extract derives the final position from the transient offset: the
// committed position plus the offset. ok is false when no offset was ever
// applied, which callers must treat as "did not move", distinct from
// "moved to the origin".
func (b *Box) Extract() (p position.Point, ok bool) {
	if b.offset == nil {
		return position.Point{}, false
	}
	return b.committed.Add(*b.offset), true
}

// Element returns the geometry used by position.Calculate.
func (b *Box) Element(parent position.Size) position.Element {
	return position.Element{Committed: b.committed, Size: b.Size, Parent: parent}
}

// Contains reports whether (x, y) lies within the box's shown rectangle.
// Hidden boxes contain nothing.
func (b *Box) Contains(x, y float64) bool {
	if !b.Visible {
		return false
	}
	p := b.Shown()
	return x >= p.Left && x < p.Left+b.Size.Width &&
		y >= p.Top && y < p.Top+b.Size.Height
}

// Center returns the center of the shown rectangle.
func (b *Box) Center() (x, y float64) {
	p := b.Shown()
	return p.Left + b.Size.Width/2, p.Top + b.Size.Height/2
}
