// Package event provides synchronous, in-process event streams.
//
// A [Stream] fans each emitted value out to its subscribers in subscription
// order on the emitting goroutine. Subscribing returns a [Subscription]
// handle whose Unsubscribe removes the handler; the stream never drops
// handlers on its own, so subscribers bound to long-lived sources must
// release them explicitly.
//
// Derived sources built with [Merge] and [Filter] subscribe lazily: each
// Subscribe on a derived source subscribes to every underlying stream, and
// unsubscribing releases all of them.
package event

import (
	"sync"
	"sync/atomic"
)

// Source is anything that can be subscribed to.
type Source[T any] interface {
	Subscribe(fn func(T)) Subscription
}

// Subscription releases a registered handler.
type Subscription interface {
	Unsubscribe()
}

type handler[T any] struct {
	id      uint64
	fn      func(T)
	removed atomic.Bool
}

// Stream is a multicast event source. The zero value is ready to use.
type Stream[T any] struct {
	mu       sync.Mutex
	handlers []*handler[T]
	nextID   uint64
}

// NewStream returns an empty stream.
func NewStream[T any]() *Stream[T] {
	return &Stream[T]{}
}

// Subscribe registers fn and returns a handle that removes it.
func (s *Stream[T]) Subscribe(fn func(T)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	h := &handler[T]{id: s.nextID, fn: fn}
	s.handlers = append(s.handlers, h)
	return &streamSub[T]{stream: s, id: h.id}
}

// Emit delivers v to every current subscriber. A handler removed by an
// earlier handler during the same Emit is not invoked.
func (s *Stream[T]) Emit(v T) {
	s.mu.Lock()
	snapshot := make([]*handler[T], len(s.handlers))
	copy(snapshot, s.handlers)
	s.mu.Unlock()

	for _, h := range snapshot {
		if !h.removed.Load() {
			h.fn(v)
		}
	}
}

// Len returns the number of registered handlers.
func (s *Stream[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

func (s *Stream[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, h := range s.handlers {
		if h.id == id {
			h.removed.Store(true)
			copy(s.handlers[i:], s.handlers[i+1:])
			s.handlers[len(s.handlers)-1] = nil
			s.handlers = s.handlers[:len(s.handlers)-1]
			return
		}
	}
}

type streamSub[T any] struct {
	once   sync.Once
	stream *Stream[T]
	id     uint64
}

func (s *streamSub[T]) Unsubscribe() {
	s.once.Do(func() { s.stream.remove(s.id) })
}

// group releases several subscriptions as one.
type group []Subscription

func (g group) Unsubscribe() {
	for _, s := range g {
		s.Unsubscribe()
	}
}

// Group combines subscriptions so they can be released together.
func Group(subs ...Subscription) Subscription {
	return group(subs)
}

type merged[T any] struct {
	sources []Source[T]
}

// Merge returns a source that delivers values from every given source.
func Merge[T any](sources ...Source[T]) Source[T] {
	return merged[T]{sources: sources}
}

func (m merged[T]) Subscribe(fn func(T)) Subscription {
	subs := make(group, 0, len(m.sources))
	for _, src := range m.sources {
		subs = append(subs, src.Subscribe(fn))
	}
	return subs
}

type filtered[T any] struct {
	source Source[T]
	keep   func(T) bool
}

// Filter returns a source that only delivers values for which keep returns
// true. keep is evaluated at delivery time.
func Filter[T any](source Source[T], keep func(T) bool) Source[T] {
	return filtered[T]{source: source, keep: keep}
}

func (f filtered[T]) Subscribe(fn func(T)) Subscription {
	return f.source.Subscribe(func(v T) {
		if f.keep(v) {
			fn(v)
		}
	})
}
