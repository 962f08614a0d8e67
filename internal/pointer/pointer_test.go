package pointer

import (
	"testing"

	"github.com/olivier-w/backdrop/internal/surface"
)

func TestLocate(t *testing.T) {
	vp := Viewport{W: 800, H: 600}
	hero := surface.Rect{X: 0, Y: 100, W: 800, H: 300}

	tests := []struct {
		name   string
		x, y   float64
		active bool
		lx, ly float64
	}{
		{"inside", 400, 200, true, 400, 100},
		{"on rect edge", 400, 400, true, 400, 300},
		{"left margin", 2, 200, false, 0, 0},
		{"top margin", 400, 1, false, 0, 0},
		{"right margin", 798, 200, false, 0, 0},
		{"bottom margin", 400, 598.5, false, 0, 0},
		{"above rect", 400, 50, false, 0, 0},
		{"below rect", 400, 401, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := Locate(tt.x, tt.y, vp, hero).Position()
			if ok != tt.active {
				t.Fatalf("active = %v, want %v", ok, tt.active)
			}
			if ok && (x != tt.lx || y != tt.ly) {
				t.Fatalf("local = (%v, %v), want (%v, %v)", x, y, tt.lx, tt.ly)
			}
		})
	}
}

func TestAbsentHasNoPosition(t *testing.T) {
	if Absent.Active() {
		t.Fatal("expected absent state")
	}
	var zero State
	if zero != Absent {
		t.Fatal("expected zero value to equal Absent")
	}
}

func TestTrackerClears(t *testing.T) {
	vp := Viewport{W: 100, H: 100}
	rect := surface.Rect{W: 100, H: 100}

	var tr Tracker
	tr.Move(50, 50, vp, rect)
	if !tr.State().Active() {
		t.Fatal("expected active pointer after move")
	}

	tr.Blur()
	if tr.State().Active() {
		t.Fatal("expected blur to clear pointer")
	}

	tr.Move(50, 50, vp, rect)
	tr.Visibility(false)
	if !tr.State().Active() {
		t.Fatal("expected visible page to keep pointer")
	}
	tr.Visibility(true)
	if tr.State().Active() {
		t.Fatal("expected hidden page to clear pointer")
	}

	tr.Move(50, 50, vp, rect)
	tr.Leave()
	if tr.State() != Absent {
		t.Fatal("expected leave to clear pointer")
	}
}

func TestMoveOutsideViewportClearsPointer(t *testing.T) {
	vp := Viewport{W: 200, H: 100}
	rect := surface.Rect{W: 200, H: 100}

	for _, pos := range [][2]float64{{-5, 50}, {250, 50}, {100, -1}, {100, 140}, {200, 50}} {
		var tr Tracker
		tr.Move(100, 50, vp, rect)
		tr.Move(pos[0], pos[1], vp, rect)
		if tr.State().Active() {
			t.Fatalf("position %v: expected pointer outside the window to be absent", pos)
		}
	}
}
