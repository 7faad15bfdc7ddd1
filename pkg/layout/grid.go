package layout

import (
	"math"
	"time"

	"github.com/matzehuels/easybox/pkg/box"
	"github.com/matzehuels/easybox/pkg/event"
	"github.com/matzehuels/easybox/pkg/observability"
	"github.com/matzehuels/easybox/pkg/position"
)

// Options configures a Grid.
type Options struct {
	Bounds           position.Size // container size
	Gap              float64       // spacing between boxes and rows
	LockInsideParent bool          // clamp drags to the container
}

// Grid is a flow-packing layout coordinator. It is not safe for concurrent
// use; callers serialize access the same way they serialize pointer events.
type Grid struct {
	opts   Options
	boxes  []*box.Box
	repack *event.Stream[*box.Box]
	sub    event.Subscription
}

// NewGrid returns a grid coordinator subscribed to its own repack stream.
func NewGrid(opts Options) *Grid {
	g := &Grid{
		opts:   opts,
		repack: event.NewStream[*box.Box](),
	}
	g.sub = g.repack.Subscribe(g.onRepack)
	return g
}

// RepackEvent returns the stream drag controllers notify.
func (g *Grid) RepackEvent() *event.Stream[*box.Box] { return g.repack }

// LockInsideParent reports whether drags are clamped to the container.
func (g *Grid) LockInsideParent() bool { return g.opts.LockInsideParent }

// Bounds returns the container size.
func (g *Grid) Bounds() position.Size { return g.opts.Bounds }

// Boxes returns the managed boxes in index order.
func (g *Grid) Boxes() []*box.Box {
	out := make([]*box.Box, len(g.boxes))
	copy(out, g.boxes)
	return out
}

// Add appends b after the existing boxes and re-packs.
func (g *Grid) Add(b *box.Box) {
	g.boxes = append(g.boxes, b)
	g.renumber()
	g.Pack()
}

// Remove drops b and re-packs the remaining boxes.
func (g *Grid) Remove(b *box.Box) {
	for i, other := range g.boxes {
		if other == b {
			g.boxes = append(g.boxes[:i], g.boxes[i+1:]...)
			break
		}
	}
	g.renumber()
	g.Pack()
}

// Pack commits every settled visible box to its slot and returns how many
// committed positions changed.
func (g *Grid) Pack() int {
	return g.commit(g.boxes)
}

// Close stops listening for repack notifications.
func (g *Grid) Close() {
	g.sub.Unsubscribe()
}

func (g *Grid) onRepack(moved *box.Box) {
	start := time.Now()
	if moved.Dragging() && moved.Visible {
		g.reorder(moved)
	}
	n := g.commit(g.boxes)
	observability.Layout().OnRepack(moved.ID, n, time.Since(start))
}

// reorder moves the dragged box to the insertion point whose slot center
// lies nearest to the center of the box as currently shown.
func (g *Grid) reorder(moved *box.Box) {
	others := make([]*box.Box, 0, len(g.boxes))
	for _, b := range g.boxes {
		if b != moved {
			others = append(others, b)
		}
	}

	cx, cy := moved.Center()
	halfW, halfH := moved.Size.Width/2, moved.Size.Height/2
	best, bestDist := -1, math.Inf(1)
	for i := 0; i <= len(others); i++ {
		order := insertAt(others, i, moved)
		slot, ok := g.slots(order)[moved]
		if !ok {
			continue
		}
		d := math.Hypot(slot.Left+halfW-cx, slot.Top+halfH-cy)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return
	}
	g.boxes = insertAt(others, best, moved)
	g.renumber()
}

// commit writes slot positions into every box in order that is not being
// dragged.
func (g *Grid) commit(order []*box.Box) int {
	changed := 0
	for b, slot := range g.slots(order) {
		if b.Dragging() {
			continue
		}
		if b.Committed() != slot {
			b.Commit(slot)
			changed++
		}
	}
	return changed
}

// slots computes the flow position of every visible box in order.
func (g *Grid) slots(order []*box.Box) map[*box.Box]position.Point {
	out := make(map[*box.Box]position.Point, len(order))
	var x, y, rowHeight float64
	for _, b := range order {
		if !b.Visible {
			continue
		}
		if x > 0 && x+b.Size.Width > g.opts.Bounds.Width {
			x = 0
			y += rowHeight + g.opts.Gap
			rowHeight = 0
		}
		out[b] = position.Point{Left: x, Top: y}
		x += b.Size.Width + g.opts.Gap
		rowHeight = math.Max(rowHeight, b.Size.Height)
	}
	return out
}

func (g *Grid) renumber() {
	for i, b := range g.boxes {
		b.Index = i
	}
}

func insertAt(boxes []*box.Box, i int, b *box.Box) []*box.Box {
	out := make([]*box.Box, 0, len(boxes)+1)
	out = append(out, boxes[:i]...)
	out = append(out, b)
	return append(out, boxes[i:]...)
}
