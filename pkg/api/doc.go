// Package api exposes a board over HTTP for browser clients.
//
// A browser front end forwards its raw mouse and touch events to
// POST /events in their DOM shape and renders the returned snapshot:
// committed positions as left/top, transient offsets as CSS transforms.
//
// # Routes
//
//	GET    /health                  liveness
//	GET    /boxes                   board snapshot
//	POST   /boxes                   add a box
//	GET    /boxes/{id}              one box
//	DELETE /boxes/{id}              remove a box
//	PUT    /boxes/{id}/transform    client-reported transform while dragging
//	POST   /events                  dispatch one pointer event
//
// Errors are returned as {"code": "...", "error": "..."} with a status
// derived from the error code.
package api
