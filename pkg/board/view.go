package board

import (
	"github.com/matzehuels/easybox/pkg/box"
	"github.com/matzehuels/easybox/pkg/position"
)

// View is an immutable, JSON-serializable snapshot of a box.
type View struct {
	ID        string         `json:"id"`
	Label     string         `json:"label,omitempty"`
	Index     int            `json:"index"`
	Visible   bool           `json:"visible"`
	Size      position.Size  `json:"size"`
	Committed position.Point `json:"committed"`
	Shown     position.Point `json:"shown"`
	Transform string         `json:"transform,omitempty"`
	Dragging  bool           `json:"dragging"`
}

// Snapshot is the layout of a whole board.
type Snapshot struct {
	Container        position.Size `json:"container"`
	LockInsideParent bool          `json:"lockInsideParent"`
	Boxes            []View        `json:"boxes"`
}

// Find returns the view with the given ID.
func (s Snapshot) Find(id string) (View, bool) {
	for _, v := range s.Boxes {
		if v.ID == id {
			return v, true
		}
	}
	return View{}, false
}

func viewOf(b *box.Box) View {
	return View{
		ID:        b.ID,
		Label:     b.Label,
		Index:     b.Index,
		Visible:   b.Visible,
		Size:      b.Size,
		Committed: b.Committed(),
		Shown:     b.Shown(),
		Transform: b.Transform(),
		Dragging:  b.Dragging(),
	}
}
