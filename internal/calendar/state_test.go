package calendar

import (
	"fmt"
	"testing"
	"time"
)

func TestStateTransitions(t *testing.T) {
	s := NewState(date(2026, 1, 31), Month)
	if s.Selected != nil {
		t.Fatal("expected no selection on a new state")
	}

	next := s.GoNext()
	if next.Reference != date(2026, 2, 28) || next.Title() != "February 2026" {
		t.Errorf("expected 2026-02-28 in February, got %s", next.Reference)
	}
	if s.Reference != date(2026, 1, 31) {
		t.Error("transition mutated the original state")
	}

	w := s.ToggleView()
	if w.Mode != Week || w.Reference != s.Reference {
		t.Errorf("toggle should keep reference, got %+v", w)
	}
	if got := w.GoPrevious().Reference; got != date(2026, 1, 24) {
		t.Errorf("expected 2026-01-24, got %s", got)
	}

	sel := w.SelectDate(date(2026, 1, 28))
	if !sel.IsSelected(date(2026, 1, 28)) {
		t.Error("expected Jan 28 selected")
	}
	if w.IsSelected(date(2026, 1, 28)) {
		t.Error("selection leaked into previous state")
	}
	if sel.ClearSelection().Selected != nil {
		t.Error("expected selection cleared")
	}

	today := sel.GoNext().GoNext().GoToday(date(2026, 1, 10))
	if today.Reference != date(2026, 1, 10) || today.Mode != Week {
		t.Errorf("unexpected state after GoToday: %+v", today)
	}
	if got := today.JumpTo(date(2027, 6, 1)).Title(); got != "May 31 - Jun 6" {
		t.Errorf("unexpected title %q", got)
	}
}

func TestStateMonthStepsFromEndOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		from     Date
		step     func(State) State
		expected string
	}{
		{"next from Jan 31", date(2026, 1, 31), State.GoNext, "February 2026"},
		{"previous from Mar 31", date(2026, 3, 31), State.GoPrevious, "February 2026"},
		{"next from Oct 31", date(2026, 10, 31), State.GoNext, "November 2026"},
		{"previous from Jul 31", date(2026, 7, 31), State.GoPrevious, "June 2026"},
		{"next from Jan 29 in a common year", date(2027, 1, 29), State.GoNext, "February 2027"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(tt.from, Month)
			if got := tt.step(s).Title(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRender(t *testing.T) {
	batch := BatchWindow{Start: date(2026, 1, 4), End: date(2026, 2, 20)}
	today := date(2026, 1, 10)
	s := NewState(today, Month).SelectDate(date(2026, 1, 7))

	var cellCalls int
	frame := Render(s, today, batch, Renderers{
		Header: func(wd time.Weekday) string { return DayAbbrev(wd) },
		Cell: func(d Date, deco DecorationState) string {
			cellCalls++
			return fmt.Sprintf("%d:%s", d.Day, deco.Icon)
		},
		Blank: func() string { return "." },
	})

	if frame.Title != "January 2026" {
		t.Errorf("expected title January 2026, got %q", frame.Title)
	}
	if len(frame.Headers) != 7 || frame.Headers[0] != "Mon" || frame.Headers[6] != "Sun" {
		t.Errorf("unexpected headers %v", frame.Headers)
	}
	if cellCalls != 31 {
		t.Errorf("expected 31 cell callbacks, got %d", cellCalls)
	}
	// Jan 1, 2026 is a Thursday
	first := frame.Rows[0]
	if first[0] != "." || first[2] != "." || first[3] != "1:default" {
		t.Errorf("unexpected first row %v", first)
	}
	if got := frame.Rows[1][2]; got != "7:selected" {
		t.Errorf("expected Jan 7 selected, got %q", got)
	}
	if got := frame.Rows[1][5]; got != "10:completed" {
		t.Errorf("expected Jan 10 completed, got %q", got)
	}
}

func TestRender_NilCallbacks(t *testing.T) {
	s := NewState(date(2026, 2, 15), Week)
	frame := Render(s, date(2026, 2, 15), BatchWindow{}, Renderers{})
	if len(frame.Rows) != 1 || len(frame.Rows[0]) != 7 {
		t.Fatalf("expected one row of 7, got %v", frame.Rows)
	}
	for _, c := range frame.Rows[0] {
		if c != "" {
			t.Errorf("expected empty output, got %q", c)
		}
	}
}
