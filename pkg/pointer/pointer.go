package pointer

import (
	"github.com/matzehuels/easybox/pkg/errors"
)

// Kind identifies the input device that produced an event.
type Kind int

const (
	Mouse Kind = iota + 1
	Touch
)

// String returns "mouse" or "touch".
func (k Kind) String() string {
	switch k {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	default:
		return "unknown"
	}
}

// Phase is the stage of a pointer gesture.
type Phase int

const (
	Down Phase = iota + 1
	Move
	Up
)

// String returns "down", "move" or "up".
func (p Phase) String() string {
	switch p {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// TouchPoint is a single contact point of a touch event.
type TouchPoint struct {
	ID      int     `json:"identifier"`
	ClientX float64 `json:"clientX"`
	ClientY float64 `json:"clientY"`
}

// Event is a mouse or touch event in client coordinates.
// For mouse events only ClientX/ClientY are meaningful; for touch events
// only the touch lists are.
type Event struct {
	Kind           Kind
	Phase          Phase
	ClientX        float64
	ClientY        float64
	Touches        []TouchPoint
	ChangedTouches []TouchPoint
}

// Reading is a normalized pointer position.
type Reading struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns the displacement from o to r.
func (r Reading) Sub(o Reading) (dx, dy float64) {
	return r.X - o.X, r.Y - o.Y
}

// MouseEvent builds a mouse event at (x, y).
func MouseEvent(phase Phase, x, y float64) Event {
	return Event{Kind: Mouse, Phase: phase, ClientX: x, ClientY: y}
}

// TouchEvent builds a touch event. For Down and Move the points become the
// active touches; for Up they become the changed touches, mirroring how a
// released finger leaves the active list.
func TouchEvent(phase Phase, points ...TouchPoint) Event {
	e := Event{Kind: Touch, Phase: phase}
	if phase == Up {
		e.ChangedTouches = points
	} else {
		e.Touches = points
	}
	return e
}

var types = map[string]struct {
	kind  Kind
	phase Phase
}{
	"mousedown":  {Mouse, Down},
	"mousemove":  {Mouse, Move},
	"mouseup":    {Mouse, Up},
	"touchstart": {Touch, Down},
	"touchmove":  {Touch, Move},
	"touchend":   {Touch, Up},
}

// ParseType converts a DOM event type name into its kind and phase.
func ParseType(name string) (Kind, Phase, error) {
	t, ok := types[name]
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidEvent, "unsupported event type %q", name)
	}
	return t.kind, t.phase, nil
}

// Type returns the DOM event type name, or "" for an invalid event.
func (e Event) Type() string {
	for name, t := range types {
		if t.kind == e.Kind && t.phase == e.Phase {
			return name
		}
	}
	return ""
}

// Validate reports whether the event has a known kind and phase.
func (e Event) Validate() error {
	if e.Type() == "" {
		return errors.New(errors.ErrCodeInvalidEvent, "invalid event kind %s / phase %s", e.Kind, e.Phase)
	}
	return nil
}

// Read extracts the pointer position from e. Touch events use the first
// active touch, then the first changed touch. ok is false when a touch event
// carries no points at all.
func Read(e Event) (r Reading, ok bool) {
	if e.Kind != Touch {
		return Reading{X: e.ClientX, Y: e.ClientY}, true
	}
	if len(e.Touches) > 0 {
		return Reading{X: e.Touches[0].ClientX, Y: e.Touches[0].ClientY}, true
	}
	if len(e.ChangedTouches) > 0 {
		return Reading{X: e.ChangedTouches[0].ClientX, Y: e.ChangedTouches[0].ClientY}, true
	}
	return Reading{}, false
}

// Resolve is Read with a fallback to last when e has no coordinates.
func Resolve(e Event, last Reading) Reading {
	if r, ok := Read(e); ok {
		return r
	}
	return last
}
