package event

import "testing"

func TestStreamEmitOrder(t *testing.T) {
	s := NewStream[int]()
	var got []string
	s.Subscribe(func(v int) { got = append(got, "a") })
	s.Subscribe(func(v int) { got = append(got, "b") })

	s.Emit(1)

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("handlers ran %v, want [a b]", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := NewStream[int]()
	calls := 0
	sub := s.Subscribe(func(int) { calls++ })

	s.Emit(1)
	sub.Unsubscribe()
	s.Emit(2)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}

	// Idempotent.
	sub.Unsubscribe()
	if s.Len() != 0 {
		t.Errorf("Len() after double unsubscribe = %d, want 0", s.Len())
	}
}

func TestUnsubscribeDuringEmit(t *testing.T) {
	s := NewStream[int]()
	var second Subscription
	secondCalls := 0

	s.Subscribe(func(int) { second.Unsubscribe() })
	second = s.Subscribe(func(int) { secondCalls++ })

	s.Emit(1)

	if secondCalls != 0 {
		t.Errorf("removed handler ran %d times, want 0", secondCalls)
	}
}

func TestSubscribeDuringEmitDoesNotFire(t *testing.T) {
	s := NewStream[int]()
	late := 0
	s.Subscribe(func(int) {
		s.Subscribe(func(int) { late++ })
	})

	s.Emit(1)

	if late != 0 {
		t.Errorf("handler added during emit ran %d times, want 0", late)
	}
}

func TestMerge(t *testing.T) {
	a := NewStream[string]()
	b := NewStream[string]()
	var got []string

	sub := Merge[string](a, b).Subscribe(func(v string) { got = append(got, v) })
	a.Emit("a")
	b.Emit("b")

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("merged values = %v, want [a b]", got)
	}

	sub.Unsubscribe()
	if a.Len() != 0 || b.Len() != 0 {
		t.Errorf("Len() after unsubscribe = %d/%d, want 0/0", a.Len(), b.Len())
	}
}

func TestFilter(t *testing.T) {
	s := NewStream[int]()
	gate := false
	var got []int

	sub := Filter[int](s, func(int) bool { return gate }).Subscribe(func(v int) { got = append(got, v) })
	s.Emit(1)
	gate = true
	s.Emit(2)

	if len(got) != 1 || got[0] != 2 {
		t.Errorf("filtered values = %v, want [2]", got)
	}

	sub.Unsubscribe()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestGroup(t *testing.T) {
	a := NewStream[int]()
	b := NewStream[int]()
	g := Group(a.Subscribe(func(int) {}), b.Subscribe(func(int) {}))

	g.Unsubscribe()

	if a.Len() != 0 || b.Len() != 0 {
		t.Errorf("Len() = %d/%d, want 0/0", a.Len(), b.Len())
	}
}

func TestUnsubscribeManyDuringEmit(t *testing.T) {
	s := NewStream[int]()
	subs := make([]Subscription, 300)
	fired := make([]int, len(subs))
	for i := range subs {
		i := i
		subs[i] = s.Subscribe(func(int) {
			fired[i]++
			if i == 0 {
				for j := 1; j < len(subs); j += 2 {
					subs[j].Unsubscribe()
				}
			}
		})
	}

	s.Emit(1)

	for i, n := range fired {
		want := 1
		if i%2 == 1 {
			want = 0
		}
		if n != want {
			t.Fatalf("handler %d ran %d times, want %d", i, n, want)
		}
	}
	if s.Len() != 150 {
		t.Errorf("Len() = %d, want 150", s.Len())
	}
}
