// Package board is the layout container: it owns the boxes, their drag
// controllers, the layout coordinator, and the container-wide pointer event
// stream that stands in for the document.
//
// All pointer input enters through [Board.Dispatch]. A pointer-down is
// hit-tested against the visible boxes and delivered to the topmost box's
// element stream; every event is then published on the document stream,
// where each drag controller filters for its own session. Mouse and touch
// input travel on separate streams that controllers see merged. Dispatch holds
// the board lock for the whole delivery, so events from concurrent callers
// (HTTP handlers, the terminal UI) are processed one at a time, in order,
// each to completion.
package board

import (
	"sync"

	"github.com/matzehuels/easybox/pkg/box"
	"github.com/matzehuels/easybox/pkg/config"
	"github.com/matzehuels/easybox/pkg/drag"
	"github.com/matzehuels/easybox/pkg/errors"
	"github.com/matzehuels/easybox/pkg/event"
	"github.com/matzehuels/easybox/pkg/layout"
	"github.com/matzehuels/easybox/pkg/pointer"
	"github.com/matzehuels/easybox/pkg/position"
)

// Board is a container of draggable boxes. It is safe for concurrent use.
type Board struct {
	mu        sync.Mutex
	container config.Container
	grid      *layout.Grid
	document  pointerStreams
	entries   map[string]*entry
	closed    bool
}

type entry struct {
	box     *box.Box
	element pointerStreams
	ctrl    *drag.Controller
}

// pointerStreams carries one device kind per stream.
type pointerStreams struct {
	mouse *event.Stream[pointer.Event]
	touch *event.Stream[pointer.Event]
}

func newPointerStreams() pointerStreams {
	return pointerStreams{
		mouse: event.NewStream[pointer.Event](),
		touch: event.NewStream[pointer.Event](),
	}
}

// source merges both device streams.
func (p pointerStreams) source() event.Source[pointer.Event] {
	return event.Merge[pointer.Event](p.mouse, p.touch)
}

func (p pointerStreams) emit(ev pointer.Event) {
	if ev.Kind == pointer.Touch {
		p.touch.Emit(ev)
		return
	}
	p.mouse.Emit(ev)
}

// Len returns the number of handlers across both streams.
func (p pointerStreams) Len() int {
	return p.mouse.Len() + p.touch.Len()
}

// New builds a board from a validated definition and packs its boxes.
func New(def *config.Board) (*Board, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	c := def.Container
	b := &Board{
		container: c,
		grid: layout.NewGrid(layout.Options{
			Bounds:           position.Size{Width: c.Width, Height: c.Height},
			Gap:              c.Gap,
			LockInsideParent: c.LockInsideParent,
		}),
		document: newPointerStreams(),
		entries:  make(map[string]*entry, len(def.Boxes)),
	}
	for _, spec := range def.Boxes {
		if _, err := b.add(spec); err != nil {
			b.Close()
			return nil, err
		}
	}
	return b, nil
}

// Add creates a box from spec, binds a drag controller to it, and re-packs.
func (b *Board) Add(spec config.Box) (View, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if spec.ID == "" {
		spec.ID = config.NewID()
	}
	if err := spec.Validate(b.container); err != nil {
		return View{}, err
	}
	e, err := b.add(spec)
	if err != nil {
		return View{}, err
	}
	return viewOf(e.box), nil
}

func (b *Board) add(spec config.Box) (*entry, error) {
	if _, exists := b.entries[spec.ID]; exists {
		return nil, errors.New(errors.ErrCodeDuplicateBox, "box %q already exists", spec.ID)
	}
	bx := box.New(spec.ID, position.Size{Width: spec.Width, Height: spec.Height})
	bx.Label = spec.Label
	bx.Visible = !spec.Hidden

	e := &entry{box: bx, element: newPointerStreams()}
	e.ctrl = drag.New(bx, e.element.source(), b.document.source(), b.grid)
	b.entries[spec.ID] = e
	b.grid.Add(bx)
	return e, nil
}

// Remove destroys a box: its controller releases every subscription,
// including an in-flight drag, and the remaining boxes are re-packed.
func (b *Board) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[id]
	if !ok {
		return errors.New(errors.ErrCodeBoxNotFound, "box %q not found", id)
	}
	e.ctrl.Close()
	delete(b.entries, id)
	b.grid.Remove(e.box)
	return nil
}

// Dispatch delivers a pointer event. Events that no box is waiting for are
// ignored; only events with an unknown kind or phase are rejected.
func (b *Board) Dispatch(ev pointer.Event) error {
	if err := ev.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	if ev.Phase == pointer.Down {
		if r, ok := pointer.Read(ev); ok {
			if e := b.hit(r); e != nil {
				e.element.emit(ev)
			}
		}
	}
	b.document.emit(ev)
	return nil
}

// hit returns the topmost visible box under r; later boxes are drawn over
// earlier ones. While a box is being dragged no other box can be grabbed.
func (b *Board) hit(r pointer.Reading) *entry {
	boxes := b.grid.Boxes()
	for _, bx := range boxes {
		if bx.Dragging() {
			if bx.Contains(r.X, r.Y) {
				return b.entries[bx.ID]
			}
			return nil
		}
	}
	for i := len(boxes) - 1; i >= 0; i-- {
		if boxes[i].Contains(r.X, r.Y) {
			return b.entries[boxes[i].ID]
		}
	}
	return nil
}

// SetTransform applies a client-reported CSS transform to a box that is
// being dragged. A malformed transform leaves the box without an offset and
// returns an INVALID_TRANSFORM error.
func (b *Board) SetTransform(id, transform string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[id]
	if !ok {
		return errors.New(errors.ErrCodeBoxNotFound, "box %q not found", id)
	}
	if e.ctrl.State() != drag.Dragging {
		return errors.New(errors.ErrCodeInvalidInput, "box %q is not being dragged", id)
	}
	o, ok := position.Parse(transform)
	if !ok {
		e.box.ClearOffset()
		return errors.New(errors.ErrCodeInvalidTransform, "cannot parse transform %q", transform)
	}
	e.box.SetOffset(o)
	return nil
}

// Box returns a snapshot of one box.
func (b *Board) Box(id string) (View, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[id]
	if !ok {
		return View{}, errors.New(errors.ErrCodeBoxNotFound, "box %q not found", id)
	}
	return viewOf(e.box), nil
}

// Boxes returns every box in index order.
func (b *Board) Boxes() []View {
	return b.Snapshot().Boxes
}

// Dragging returns the ID of the box being dragged, if any.
func (b *Board) Dragging() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, e := range b.entries {
		if e.ctrl.State() == drag.Dragging {
			return id, true
		}
	}
	return "", false
}

// Snapshot returns the current layout with boxes in index order.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := Snapshot{
		Container:        position.Size{Width: b.container.Width, Height: b.container.Height},
		LockInsideParent: b.container.LockInsideParent,
	}
	for _, bx := range b.grid.Boxes() {
		s.Boxes = append(s.Boxes, viewOf(bx))
	}
	return s
}

// Close releases every controller and the coordinator. Further events are
// ignored.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, e := range b.entries {
		e.ctrl.Close()
	}
	b.grid.Close()
}
