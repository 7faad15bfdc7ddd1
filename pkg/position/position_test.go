package position

import (
	"testing"

	"github.com/matzehuels/easybox/pkg/pointer"
)

var testElement = Element{
	Committed: Point{Left: 40, Top: 30},
	Size:      Size{Width: 20, Height: 10},
	Parent:    Size{Width: 100, Height: 60},
}

func TestCalculateZeroDisplacement(t *testing.T) {
	readings := []pointer.Reading{{X: 0, Y: 0}, {X: 17, Y: 3}, {X: -5, Y: 900}}

	for _, r := range readings {
		for _, lock := range []bool{false, true} {
			got := Calculate(r, r, testElement, lock)
			if got != testElement.Committed {
				t.Errorf("Calculate(%v, %v, lock=%v) = %+v, want %+v", r, r, lock, got, testElement.Committed)
			}
		}
	}
}

func TestCalculateUnlocked(t *testing.T) {
	origin := pointer.Reading{X: 50, Y: 50}
	tests := []struct {
		name   string
		dx, dy float64
	}{
		{"right and down", 10, 5},
		{"left and up", -15, -7},
		{"beyond parent", 500, 500},
		{"before origin", -500, -500},
		{"fractional", 0.5, -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := pointer.Reading{X: origin.X + tt.dx, Y: origin.Y + tt.dy}
			got := Calculate(current, origin, testElement, false)
			want := Point{Left: testElement.Committed.Left + tt.dx, Top: testElement.Committed.Top + tt.dy}
			if got != want {
				t.Errorf("Calculate() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestCalculateLockedStaysInside(t *testing.T) {
	origin := pointer.Reading{X: 0, Y: 0}
	maxLeft := testElement.Parent.Width - testElement.Size.Width
	maxTop := testElement.Parent.Height - testElement.Size.Height

	for dx := -300.0; dx <= 300; dx += 37 {
		for dy := -300.0; dy <= 300; dy += 41 {
			got := Calculate(pointer.Reading{X: dx, Y: dy}, origin, testElement, true)
			if got.Left < 0 || got.Left > maxLeft {
				t.Errorf("dx=%v: Left = %v, want within [0, %v]", dx, got.Left, maxLeft)
			}
			if got.Top < 0 || got.Top > maxTop {
				t.Errorf("dy=%v: Top = %v, want within [0, %v]", dy, got.Top, maxTop)
			}
		}
	}
}

func TestCalculateLockedInsideUnchanged(t *testing.T) {
	got := Calculate(pointer.Reading{X: 5, Y: 5}, pointer.Reading{}, testElement, true)
	want := Point{Left: 45, Top: 35}
	if got != want {
		t.Errorf("Calculate() = %+v, want %+v", got, want)
	}
}

func TestCalculateLockedOversizedBox(t *testing.T) {
	el := Element{Size: Size{Width: 200, Height: 200}, Parent: Size{Width: 100, Height: 100}}
	got := Calculate(pointer.Reading{X: 30, Y: -30}, pointer.Reading{}, el, true)
	if got != (Point{}) {
		t.Errorf("Calculate() = %+v, want origin", got)
	}
}

func TestPointOffsetArithmetic(t *testing.T) {
	p := Point{Left: 10, Top: 20}
	o := Offset{X: 3, Y: -4}

	if got := p.Add(o); got != (Point{Left: 13, Top: 16}) {
		t.Errorf("Add() = %+v, want {13 16}", got)
	}
	if got := p.Add(o).Sub(p); got != o {
		t.Errorf("Sub() = %+v, want %+v", got, o)
	}
	if !(Offset{}).IsZero() || o.IsZero() {
		t.Error("IsZero() mismatch")
	}
}
