package board

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/matzehuels/easybox/pkg/config"
	"github.com/matzehuels/easybox/pkg/errors"
	"github.com/matzehuels/easybox/pkg/pointer"
	"github.com/matzehuels/easybox/pkg/position"
)

// testBoard lays out three 10x10 boxes in one row: a at 0, b at 10, c at 20.
func testBoard(t *testing.T, lock bool) *Board {
	t.Helper()
	b, err := New(&config.Board{
		Container: config.Container{Width: 30, Height: 30, LockInsideParent: lock},
		Boxes: []config.Box{
			{ID: "a", Width: 10, Height: 10},
			{ID: "b", Width: 10, Height: 10},
			{ID: "c", Width: 10, Height: 10},
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(b.Close)
	return b
}

func dispatch(t *testing.T, b *Board, events ...pointer.Event) {
	t.Helper()
	for _, e := range events {
		if err := b.Dispatch(e); err != nil {
			t.Fatalf("Dispatch(%s) error = %v", e.Type(), err)
		}
	}
}

func mustBox(t *testing.T, b *Board, id string) View {
	t.Helper()
	v, err := b.Box(id)
	if err != nil {
		t.Fatalf("Box(%q) error = %v", id, err)
	}
	return v
}

func TestInitialLayout(t *testing.T) {
	b := testBoard(t, false)

	for i, id := range []string{"a", "b", "c"} {
		v := mustBox(t, b, id)
		if v.Index != i || v.Committed != (position.Point{Left: float64(i * 10)}) {
			t.Errorf("%s: Index=%d at %+v", id, v.Index, v.Committed)
		}
	}
	if got := b.Boxes(); len(got) != 3 || got[2].ID != "c" {
		t.Errorf("Boxes() = %+v, want a b c", got)
	}
}

func TestDragReordersAndSettles(t *testing.T) {
	b := testBoard(t, false)

	dispatch(t, b,
		pointer.MouseEvent(pointer.Down, 5, 5),
		pointer.MouseEvent(pointer.Move, 15, 5),
		pointer.MouseEvent(pointer.Move, 24, 5),
	)

	if id, ok := b.Dragging(); !ok || id != "a" {
		t.Fatalf("Dragging() = %q, %v, want a", id, ok)
	}
	a := mustBox(t, b, "a")
	if a.Shown != (position.Point{Left: 19}) || a.Committed != (position.Point{}) {
		t.Errorf("a shown %+v committed %+v during drag", a.Shown, a.Committed)
	}
	if a.Transform != "translate3d(19px, 0px, 0)" {
		t.Errorf("a transform = %q", a.Transform)
	}
	// Siblings repacked live.
	if v := mustBox(t, b, "b"); v.Committed != (position.Point{}) {
		t.Errorf("b at %+v, want origin", v.Committed)
	}

	dispatch(t, b, pointer.MouseEvent(pointer.Up, 24, 5))

	if _, ok := b.Dragging(); ok {
		t.Error("drag should have ended")
	}
	a = mustBox(t, b, "a")
	if a.Index != 2 || a.Committed != (position.Point{Left: 20}) || a.Transform != "" {
		t.Errorf("a Index=%d at %+v transform=%q, want 2 at {20 0}", a.Index, a.Committed, a.Transform)
	}

	s := b.Snapshot()
	var order []string
	for _, v := range s.Boxes {
		order = append(order, v.ID)
	}
	if len(order) != 3 || order[0] != "b" || order[1] != "c" || order[2] != "a" {
		t.Errorf("order = %v, want [b c a]", order)
	}
}

func TestPressOnEmptySpaceIsIgnored(t *testing.T) {
	b := testBoard(t, false)

	dispatch(t, b,
		pointer.MouseEvent(pointer.Down, 5, 25),
		pointer.MouseEvent(pointer.Move, 15, 25),
		pointer.MouseEvent(pointer.Up, 15, 25),
	)

	if _, ok := b.Dragging(); ok {
		t.Error("no box should be dragging")
	}
	if v := mustBox(t, b, "a"); v.Committed != (position.Point{}) {
		t.Errorf("a moved to %+v", v.Committed)
	}
}

func TestHiddenBoxCannotBeGrabbed(t *testing.T) {
	b, err := New(&config.Board{
		Container: config.Container{Width: 30, Height: 30},
		Boxes:     []config.Box{{ID: "ghost", Width: 10, Height: 10, Hidden: true}},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	dispatch(t, b, pointer.MouseEvent(pointer.Down, 1, 1))
	if _, ok := b.Dragging(); ok {
		t.Error("hidden box should not be grabbed")
	}
}

func TestRemoveDuringDrag(t *testing.T) {
	b := testBoard(t, false)
	before := b.document.Len()

	dispatch(t, b, pointer.MouseEvent(pointer.Down, 5, 5))
	if err := b.Remove("a"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	// Three document subscriptions, each on the mouse and the touch stream.
	if got := b.document.Len(); got != before-6 {
		t.Errorf("document listeners = %d, want %d", got, before-6)
	}
	// Further events reach nobody.
	dispatch(t, b,
		pointer.MouseEvent(pointer.Move, 25, 5),
		pointer.MouseEvent(pointer.Up, 25, 5),
	)
	if _, ok := b.Dragging(); ok {
		t.Error("removed box still dragging")
	}
	if v := mustBox(t, b, "b"); v.Committed != (position.Point{}) {
		t.Errorf("b at %+v, want repacked to origin", v.Committed)
	}
	if _, err := b.Box("a"); !errors.Is(err, errors.ErrCodeBoxNotFound) {
		t.Errorf("Box(a) error = %v, want BOX_NOT_FOUND", err)
	}
}

func TestAdd(t *testing.T) {
	b := testBoard(t, false)

	v, err := b.Add(config.Box{Label: "new", Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if v.ID == "" || v.Index != 3 || v.Committed != (position.Point{Top: 10}) {
		t.Errorf("Add() = %+v, want generated id, index 3 at {0 10}", v)
	}

	if _, err := b.Add(config.Box{ID: "a", Width: 1, Height: 1}); !errors.Is(err, errors.ErrCodeDuplicateBox) {
		t.Errorf("Add(duplicate) error = %v", err)
	}
	if _, err := b.Add(config.Box{ID: "big", Width: 100, Height: 1}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Add(oversized) error = %v", err)
	}
}

func TestSetTransform(t *testing.T) {
	b := testBoard(t, false)

	if err := b.SetTransform("a", "translate3d(1px, 1px, 0)"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("SetTransform(idle) error = %v", err)
	}

	dispatch(t, b, pointer.MouseEvent(pointer.Down, 5, 5))

	if err := b.SetTransform("a", "translate3d(3px, 4px, 0)"); err != nil {
		t.Fatalf("SetTransform() error = %v", err)
	}
	if v := mustBox(t, b, "a"); v.Shown != (position.Point{Left: 3, Top: 4}) {
		t.Errorf("shown = %+v, want {3 4}", v.Shown)
	}

	err := b.SetTransform("a", "bogus")
	if !errors.Is(err, errors.ErrCodeInvalidTransform) {
		t.Errorf("SetTransform(bogus) error = %v", err)
	}

	// The malformed frame degrades to "no position": the release is a no-op.
	dispatch(t, b, pointer.MouseEvent(pointer.Up, 5, 5))
	if v := mustBox(t, b, "a"); v.Committed != (position.Point{}) {
		t.Errorf("a at %+v, want origin", v.Committed)
	}

	if err := b.SetTransform("zzz", ""); !errors.Is(err, errors.ErrCodeBoxNotFound) {
		t.Errorf("SetTransform(missing) error = %v", err)
	}
}

func TestDispatchRejectsInvalidEvent(t *testing.T) {
	b := testBoard(t, false)
	if err := b.Dispatch(pointer.Event{}); !errors.Is(err, errors.ErrCodeInvalidEvent) {
		t.Errorf("Dispatch() error = %v, want INVALID_EVENT", err)
	}
}

func TestCloseIgnoresEvents(t *testing.T) {
	b := testBoard(t, false)
	b.Close()

	dispatch(t, b, pointer.MouseEvent(pointer.Down, 5, 5))
	if _, ok := b.Dragging(); ok {
		t.Error("closed board started a drag")
	}
	if b.document.Len() != 0 {
		t.Errorf("document listeners = %d after Close, want 0", b.document.Len())
	}
}

func TestCloseDuringDragSettlesBoxes(t *testing.T) {
	b := testBoard(t, false)

	dispatch(t, b,
		pointer.MouseEvent(pointer.Down, 5, 5),
		pointer.MouseEvent(pointer.Move, 8, 9),
	)
	b.Close()

	a, ok := b.Snapshot().Find("a")
	if !ok {
		t.Fatal("a missing from snapshot")
	}
	if a.Dragging || a.Transform != "" || a.Shown != a.Committed {
		t.Errorf("a after Close = %+v, want settled without transform", a)
	}
	if _, ok := b.Dragging(); ok {
		t.Error("Dragging() reports a drag after Close")
	}
}

func TestTouchAndMouseStreamsAreSeparate(t *testing.T) {
	b := testBoard(t, false)

	// A touch drag continues through touch moves only.
	dispatch(t, b,
		pointer.TouchEvent(pointer.Down, pointer.TouchPoint{ClientX: 5, ClientY: 5}),
		pointer.TouchEvent(pointer.Move, pointer.TouchPoint{ClientX: 7, ClientY: 6}),
	)
	if b.document.touch.Len() == 0 || b.document.mouse.Len() == 0 {
		t.Fatal("controllers should listen on both device streams")
	}
	if v := mustBox(t, b, "a"); v.Shown != (position.Point{Left: 2, Top: 1}) {
		t.Errorf("a shown at %+v, want {2 1}", v.Shown)
	}

	dispatch(t, b, pointer.TouchEvent(pointer.Up))
	if _, ok := b.Dragging(); ok {
		t.Error("touch end should finish the drag")
	}
}

func TestConcurrentDispatch(t *testing.T) {
	b := testBoard(t, true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			x := float64(i*3 + 1)
			_ = b.Dispatch(pointer.MouseEvent(pointer.Down, x, 5))
			_ = b.Dispatch(pointer.MouseEvent(pointer.Move, x+4, 5))
			_ = b.Dispatch(pointer.MouseEvent(pointer.Up, x+4, 5))
			_ = b.Snapshot()
		}(i)
	}
	wg.Wait()

	for _, v := range b.Snapshot().Boxes {
		if v.Committed.Left < 0 || v.Committed.Left > 20 {
			t.Errorf("%s at %+v, outside container", v.ID, v.Committed)
		}
	}
}

func TestSnapshotJSON(t *testing.T) {
	b := testBoard(t, false)
	data, err := json.Marshal(b.Snapshot())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v, ok := s.Find("c"); !ok || v.Committed.Left != 20 {
		t.Errorf("Find(c) = %+v, %v", v, ok)
	}
}

func TestSecondPressDoesNotGrabAnotherBox(t *testing.T) {
	b := testBoard(t, false)

	dispatch(t, b,
		pointer.MouseEvent(pointer.Down, 5, 5),
		pointer.MouseEvent(pointer.Down, 25, 5),
	)

	if v := mustBox(t, b, "c"); v.Dragging {
		t.Error("c grabbed while a was being dragged")
	}
	if v := mustBox(t, b, "a"); !v.Dragging {
		t.Error("a should still be dragging")
	}
}
