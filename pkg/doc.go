// Package pkg provides the libraries behind easybox, a board of draggable,
// reorderable boxes.
//
// # Overview
//
// A board holds boxes in a container. A user presses a box with a mouse or
// a finger, drags it, sees the other boxes repack around it as it moves,
// and drops it into a slot. The pkg directory is organized leaves first:
//
//  1. [pointer] - Mouse and touch events normalized to one reading
//  2. [event] - Synchronous event streams with merge and filter
//  3. [position] - Drag displacement and CSS transform strings
//  4. [box] - A box's committed position and transient drag offset
//  5. [drag] - The per-box drag state machine
//  6. [layout] - The grid coordinator that packs boxes into slots
//  7. [board] - The container tying boxes, controllers, and the grid together
//
// # Architecture
//
// Pointer input flows through the board:
//
//	terminal mouse / HTTP JSON / replay script
//	         ↓
//	    [board] Dispatch (hit test, then document stream)
//	         ↓
//	    [drag] Controller (start, drag, end)
//	         ↓                    ↓
//	    [position] Calculate   [layout] repack event
//	         ↓                    ↓
//	    box offset            slots committed
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/easybox/pkg/board"
//	    "github.com/matzehuels/easybox/pkg/config"
//	    "github.com/matzehuels/easybox/pkg/pointer"
//	)
//
//	b, _ := board.New(config.Default())
//	defer b.Close()
//
//	b.Dispatch(pointer.MouseEvent(pointer.Down, 4, 2))
//	b.Dispatch(pointer.MouseEvent(pointer.Move, 40, 2))
//	b.Dispatch(pointer.MouseEvent(pointer.Up, 40, 2))
//
//	for _, v := range b.Boxes() {
//	    fmt.Println(v.Index, v.ID, v.Committed)
//	}
//
// # Supporting Packages
//
// [config] - TOML board definitions.
//
// [api] - chi HTTP API accepting browser-shaped pointer events.
//
// [errors] - Structured error codes shared by config, decoding, and HTTP.
//
// [observability] - Hooks through which drag and layout activity is logged.
//
// [buildinfo] - Version information.
//
// [pointer]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/pointer
// [event]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/event
// [position]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/position
// [box]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/box
// [drag]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/drag
// [layout]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/layout
// [board]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/board
// [config]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/config
// [api]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/easybox/pkg/buildinfo
package pkg
