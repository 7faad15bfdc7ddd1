// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. The drag core and the
// layout coordinator stay logger-free and report through these hooks; the
// CLI registers log-backed implementations at startup.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDragHooks(&myDragHooks{})
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Drag().OnDragStart(box.ID, reading)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/easybox/pkg/pointer"
	"github.com/matzehuels/easybox/pkg/position"
)

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from drag controllers.
type DragHooks interface {
	// OnDragStart records a pointer-down that opened a drag session.
	OnDragStart(boxID string, at pointer.Reading)

	// OnDragMove records the position a box is shown at during a drag.
	OnDragMove(boxID string, shown position.Point)

	// OnDragEnd records the end of a drag at the release reading. moved is
	// false for a press and release without movement, in which case final is
	// the unchanged committed position.
	OnDragEnd(boxID string, release pointer.Reading, final position.Point, moved bool)

	// OnPositionRead records a committed-position extraction.
	OnPositionRead(boxID string, p position.Point, ok bool)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from layout coordinators.
type LayoutHooks interface {
	// OnRepack records a repack triggered by boxID; moved is the number of
	// boxes whose committed position changed.
	OnRepack(boxID string, moved int, duration time.Duration)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(string, pointer.Reading)                     {}
func (NoopDragHooks) OnDragMove(string, position.Point)                       {}
func (NoopDragHooks) OnDragEnd(string, pointer.Reading, position.Point, bool) {}
func (NoopDragHooks) OnPositionRead(string, position.Point, bool)             {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnRepack(string, int, time.Duration) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dragHooks   DragHooks   = NoopDragHooks{}
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any board is built.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dragHooks = NoopDragHooks{}
	layoutHooks = NoopLayoutHooks{}
	httpHooks = NoopHTTPHooks{}
}
