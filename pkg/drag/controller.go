package drag

import (
	"github.com/matzehuels/easybox/pkg/box"
	"github.com/matzehuels/easybox/pkg/event"
	"github.com/matzehuels/easybox/pkg/observability"
	"github.com/matzehuels/easybox/pkg/pointer"
	"github.com/matzehuels/easybox/pkg/position"
)

// State is the controller's position in the drag state machine.
type State int

const (
	Idle State = iota
	Dragging
)

// String returns "idle" or "dragging".
func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Coordinator is the layout coordinator as seen by a drag controller.
type Coordinator interface {
	// RepackEvent is notified with the moved box on every drag-move and
	// once more on drag-end.
	RepackEvent() *event.Stream[*box.Box]

	// LockInsideParent reports whether drags are clamped to the container.
	LockInsideParent() bool

	// Bounds returns the container size.
	Bounds() position.Size
}

// Session is the ephemeral record of an active drag.
type Session struct {
	Origin pointer.Event   // event that started the drag
	origin pointer.Reading // normalized Origin
	last   pointer.Reading // most recent known pointer reading
}

// Controller drives the drag lifecycle of a single box.
type Controller struct {
	box     *box.Box
	coord   Coordinator
	session *Session

	dragStart event.Subscription
	drag      event.Subscription
	reorder   event.Subscription
	dragEnd   event.Subscription
}

// New binds a controller to b. element delivers events that hit the box;
// document delivers every pointer event of the container.
func New(b *box.Box, element, document event.Source[pointer.Event], coord Coordinator) *Controller {
	c := &Controller{box: b, coord: coord}

	isDown := func(e pointer.Event) bool { return e.Phase == pointer.Down }
	c.dragStart = event.Filter(element, isDown).Subscribe(c.onDragStart)

	drag := event.Filter(document, func(e pointer.Event) bool {
		return e.Phase == pointer.Move && c.session != nil
	})
	c.drag = drag.Subscribe(c.onDragging)
	c.reorder = drag.Subscribe(func(pointer.Event) {
		c.coord.RepackEvent().Emit(c.box)
	})

	c.dragEnd = event.Filter(document, func(e pointer.Event) bool {
		return e.Phase == pointer.Up && c.session != nil
	}).Subscribe(c.onDragEnd)

	return c
}

// Box returns the controlled box.
func (c *Controller) Box() *box.Box { return c.box }

// State returns Dragging while a drag session exists.
func (c *Controller) State() State {
	if c.session != nil {
		return Dragging
	}
	return Idle
}

// Session returns the active drag session, or nil when idle.
func (c *Controller) Session() *Session { return c.session }

// Close releases all four subscriptions. A drag in progress is abandoned:
// the box drops its offset and dragging state and keeps its committed
// position. It is safe to call more than once.
func (c *Controller) Close() {
	event.Group(c.dragStart, c.drag, c.reorder, c.dragEnd).Unsubscribe()
	if c.session != nil {
		c.session = nil
		c.box.ClearOffset()
		c.box.SetDragging(false)
	}
}

func (c *Controller) onDragStart(e pointer.Event) {
	if c.session != nil {
		return
	}
	r, ok := pointer.Read(e)
	if !ok {
		return
	}
	c.session = &Session{Origin: e, origin: r, last: r}
	c.box.SetDragging(true)
	observability.Drag().OnDragStart(c.box.ID, r)
}

func (c *Controller) onDragging(e pointer.Event) {
	s := c.session
	s.last = pointer.Resolve(e, s.last)
	shown := position.Calculate(s.last, s.origin, c.box.Element(c.coord.Bounds()), c.coord.LockInsideParent())
	c.box.SetOffset(shown.Sub(c.box.Committed()))
	observability.Drag().OnDragMove(c.box.ID, shown)
}

func (c *Controller) onDragEnd(e pointer.Event) {
	release := pointer.Resolve(e, c.session.last)
	c.session = nil

	final, moved := c.box.Extract()
	observability.Drag().OnPositionRead(c.box.ID, final, moved)

	c.box.ClearOffset()
	c.box.SetDragging(false)
	if moved {
		c.box.Commit(final)
	} else {
		final = c.box.Committed()
	}
	c.coord.RepackEvent().Emit(c.box)
	observability.Drag().OnDragEnd(c.box.ID, release, final, moved)
}
