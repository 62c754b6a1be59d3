package drag

import (
	"testing"

	"deskfolio/internal/geom"
)

func TestClamp(t *testing.T) {
	b := Bounds{Width: 800, Height: 600, BottomInset: 40}
	entity := geom.Size{Width: 100, Height: 100}

	tests := []struct {
		name string
		in   geom.Point
		want geom.Point
	}{
		{"far outside", geom.Point{X: 900, Y: 900}, geom.Point{X: 700, Y: 460}},
		{"negative", geom.Point{X: -5, Y: -30}, geom.Point{X: 0, Y: 0}},
		{"inside", geom.Point{X: 120, Y: 200}, geom.Point{X: 120, Y: 200}},
		{"edge", geom.Point{X: 700, Y: 460}, geom.Point{X: 700, Y: 460}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in, entity, b); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClamp_EntityLargerThanContainer(t *testing.T) {
	got := Clamp(geom.Point{X: 10, Y: 10}, geom.Size{Width: 50, Height: 50}, Bounds{Width: 20, Height: 20})
	if got != (geom.Point{}) {
		t.Errorf("Clamp = %v, want origin", got)
	}
}

func TestTracker_DragKeepsOffset(t *testing.T) {
	var tr Tracker
	b := Bounds{Width: 80, Height: 24, BottomInset: 1}
	tr.Begin("about", geom.Point{X: 12, Y: 5}, geom.Point{X: 10, Y: 4}, geom.Size{Width: 8, Height: 3}, b)

	if id, ok := tr.Active(); !ok || id != "about" {
		t.Fatalf("Active() = %q, %v", id, ok)
	}
	pos, ok := tr.Move(geom.Point{X: 22, Y: 9})
	if !ok || pos != (geom.Point{X: 20, Y: 8}) {
		t.Fatalf("Move = %v, %v; want {20 8}", pos, ok)
	}
	pos, _ = tr.Move(geom.Point{X: 200, Y: 200})
	if pos != (geom.Point{X: 72, Y: 20}) {
		t.Errorf("clamped Move = %v, want {72 20}", pos)
	}

	id, final, dragged := tr.End()
	if id != "about" || final != (geom.Point{X: 72, Y: 20}) || !dragged {
		t.Errorf("End() = %q, %v, %v", id, final, dragged)
	}
	if _, ok := tr.Active(); ok {
		t.Error("drag still active after End")
	}
}

func TestTracker_ClickIsNotDrag(t *testing.T) {
	var tr Tracker
	b := Bounds{Width: 80, Height: 24}
	tr.Begin("about", geom.Point{X: 3, Y: 3}, geom.Point{X: 2, Y: 2}, geom.Size{Width: 4, Height: 2}, b)
	tr.Move(geom.Point{X: 3, Y: 3})
	if _, _, dragged := tr.End(); dragged {
		t.Error("press and release in place should be a click")
	}
	if _, _, dragged := tr.End(); dragged {
		t.Error("End without a drag should report nothing")
	}
}

func TestTracker_SingleActiveDrag(t *testing.T) {
	var tr Tracker
	b := Bounds{Width: 80, Height: 24}
	first := tr.Begin("a", geom.Point{}, geom.Point{}, geom.Size{Width: 1, Height: 1}, b)
	second := tr.Begin("b", geom.Point{}, geom.Point{}, geom.Size{Width: 1, Height: 1}, b)

	if id, _ := tr.Active(); id != "b" {
		t.Fatalf("Active() = %q, want b", id)
	}
	if tr.Session() != second {
		t.Error("Session() should return the newest drag")
	}
	// The stale session is inert and cannot clear the new one.
	first.Move(geom.Point{X: 5, Y: 5})
	first.Release()
	if id, ok := tr.Active(); !ok || id != "b" {
		t.Errorf("stale release cleared the active drag: %q, %v", id, ok)
	}
	if first.Moved() {
		t.Error("released session should ignore moves")
	}
}

func TestTracker_Cancel(t *testing.T) {
	var tr Tracker
	s := tr.Begin("w", geom.Point{}, geom.Point{}, geom.Size{Width: 1, Height: 1}, Bounds{Width: 10, Height: 10})
	tr.Cancel()
	if _, ok := tr.Active(); ok {
		t.Error("drag still active after Cancel")
	}
	if _, ok := tr.Move(geom.Point{X: 4, Y: 4}); ok {
		t.Error("Move after Cancel should report no drag")
	}
	s.Release()
	tr.Cancel()
}
