package page

import (
	"math"
	"testing"
)

func testParams() Params {
	return Params{
		Sections: []SectionSpec{
			{Name: "skills", Waves: true},
			{Name: "projects", Waves: true},
			{Name: "notes"},
		},
		MinHeight:    400,
		SectionRatio: 0.9,
	}
}

func TestBuildStacksSections(t *testing.T) {
	l := Build(testParams(), 800, 600)

	if len(l.Sections) != 4 {
		t.Fatalf("expected hero plus 3 sections, got %d", len(l.Sections))
	}
	hero := l.Hero()
	if hero.Top != 0 || hero.Height != 600 || hero.Width != 800 {
		t.Fatalf("unexpected hero %+v", hero)
	}
	wantTop := 600.0
	for _, s := range l.Content() {
		if s.Top != wantTop || s.Height != 540 || s.Width != 800 {
			t.Fatalf("section %s = %+v, want top %v height 540", s.Name, s, wantTop)
		}
		wantTop += s.Height
	}
	if l.Height() != 600+3*540 {
		t.Fatalf("unexpected page height %v", l.Height())
	}
	if l.MaxScroll() != 3*540 {
		t.Fatalf("unexpected max scroll %v", l.MaxScroll())
	}
	if l.Content()[2].Waves {
		t.Fatal("expected notes section without waves")
	}
}

func TestBuildHonoursMinimumHeight(t *testing.T) {
	l := Build(testParams(), 200, 100)
	if got := l.Content()[0].Height; got != 400 {
		t.Fatalf("expected minimum height 400, got %v", got)
	}
}

func TestSectionRect(t *testing.T) {
	s := Section{Top: 900, Width: 800, Height: 500}
	r := s.Rect(250)
	if r.Y != 650 || r.W != 800 || r.H != 500 {
		t.Fatalf("unexpected rect %+v", r)
	}
}

func TestEmptyLayout(t *testing.T) {
	var l Layout
	if l.Height() != 0 || l.MaxScroll() != 0 || l.Content() != nil {
		t.Fatal("expected empty layout to have no extent")
	}
	if l.Hero().Name != "hero" {
		t.Fatal("expected placeholder hero")
	}
}

func TestScrollerClampsAndEases(t *testing.T) {
	s := NewScroller(30, 6, 1)
	s.SetLimit(1000)

	s.ScrollBy(-50)
	if s.Target() != 0 {
		t.Fatalf("expected target clamped to 0, got %v", s.Target())
	}
	s.ScrollTo(5000)
	if s.Target() != 1000 {
		t.Fatalf("expected target clamped to 1000, got %v", s.Target())
	}

	prev := s.Position()
	for range 5 {
		pos := s.Step()
		if pos <= prev {
			t.Fatalf("expected position to advance toward target, %v -> %v", prev, pos)
		}
		prev = pos
	}
	for range 300 {
		s.Step()
	}
	if math.Abs(s.Position()-1000) > 0.5 {
		t.Fatalf("expected scroller to settle at 1000, got %v", s.Position())
	}
}

func TestScrollerLimitShrinkClampsPosition(t *testing.T) {
	s := NewScroller(60, 6, 1)
	s.SetLimit(800)
	s.Jump(700)
	s.SetLimit(300)
	if s.Position() != 300 || s.Target() != 300 {
		t.Fatalf("expected position and target clamped to 300, got %v / %v", s.Position(), s.Target())
	}
	s.SetLimit(-10)
	if s.Limit() != 0 || s.Position() != 0 {
		t.Fatalf("expected negative limit treated as 0, got %v / %v", s.Limit(), s.Position())
	}
}
