// Package drag implements the per-box drag interaction state machine.
//
// A [Controller] is bound to one box. It has two states:
//
//	Idle ──pointer-down on the box──▶ Dragging
//	 ▲                                  │ pointer-move: show offset, notify coordinator
//	 └──────────pointer-up──────────────┘ commit final position, notify coordinator
//
// Pointer-down is observed on the box's own element stream. Pointer-move
// and pointer-up are observed on the container-wide document stream, so a
// drag keeps tracking the pointer after it leaves the box. Every controller
// sees every document event and filters it by whether its own drag session
// is active; stray moves and releases meant for other boxes are ignored.
//
// Each pointer-move fans out to two independent subscribers: one applies the
// visual offset, the other notifies the layout coordinator. Neither depends
// on the other having run first.
//
// A controller holds four subscriptions (drag-start, drag-move,
// reorder-notify, drag-end), two of them on the shared document stream.
// [Controller.Close] releases all four and must be called when the box is
// removed.
package drag
