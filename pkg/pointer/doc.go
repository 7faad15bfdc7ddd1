// Package pointer normalizes mouse and touch input into a single reading.
//
// Mouse and touch events have different shapes: a mouse event carries its
// client coordinates directly, while a touch event carries lists of touch
// points. [Read] extracts a [Reading] from either at the boundary, so the
// drag state machine and the position calculator never branch on the event
// kind.
//
// A touch-end event has no active touches left. Its release point is only
// present in ChangedTouches, and some sources omit even that. [Resolve]
// falls back to the last known reading in that case instead of failing.
//
// # Event Types
//
// Events are named after the DOM types they mirror:
//
//	mousedown  touchstart   Phase Down
//	mousemove  touchmove    Phase Move
//	mouseup    touchend     Phase Up
//
// [ParseType] and [Event.Type] convert between these names and Kind/Phase.
package pointer
