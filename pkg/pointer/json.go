package pointer

import (
	"encoding/json"

	"github.com/matzehuels/easybox/pkg/errors"
)

// wireEvent is the browser-shaped JSON form of an Event.
type wireEvent struct {
	Type           string       `json:"type"`
	ClientX        float64      `json:"clientX,omitempty"`
	ClientY        float64      `json:"clientY,omitempty"`
	Touches        []TouchPoint `json:"touches,omitempty"`
	ChangedTouches []TouchPoint `json:"changedTouches,omitempty"`
}

// MarshalJSON encodes the event using its DOM type name.
func (e Event) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(wireEvent{
		Type:           e.Type(),
		ClientX:        e.ClientX,
		ClientY:        e.ClientY,
		Touches:        e.Touches,
		ChangedTouches: e.ChangedTouches,
	})
}

// UnmarshalJSON decodes a browser-shaped event such as
//
//	{"type":"touchmove","touches":[{"identifier":0,"clientX":12,"clientY":40}]}
func (e *Event) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidEvent, err, "decode pointer event")
	}
	kind, phase, err := ParseType(w.Type)
	if err != nil {
		return err
	}
	*e = Event{
		Kind:           kind,
		Phase:          phase,
		ClientX:        w.ClientX,
		ClientY:        w.ClientY,
		Touches:        w.Touches,
		ChangedTouches: w.ChangedTouches,
	}
	return nil
}
