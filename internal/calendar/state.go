package calendar

// State is the mutable part of a calendar widget. Transitions return a new
// value and leave the receiver untouched.
type State struct {
	Reference Date
	Mode      ViewMode
	Selected  *Date
}

// NewState starts on today with nothing selected
func NewState(today Date, mode ViewMode) State {
	return State{Reference: today, Mode: mode}
}

// SelectDate marks d as the current selection
func (s State) SelectDate(d Date) State {
	s.Selected = &d
	return s
}

// ClearSelection drops the current selection
func (s State) ClearSelection() State {
	s.Selected = nil
	return s
}

// GoNext moves forward one month or one week
func (s State) GoNext() State {
	s.Reference = NextReference(s.Reference, s.Mode)
	return s
}

// GoPrevious moves back one month or one week
func (s State) GoPrevious() State {
	s.Reference = PreviousReference(s.Reference, s.Mode)
	return s
}

// ToggleView switches between month and week, keeping the reference date
func (s State) ToggleView() State {
	s.Mode = s.Mode.Toggle()
	return s
}

// GoToday recenters the view on today
func (s State) GoToday(today Date) State {
	s.Reference = today
	return s
}

// JumpTo recenters the view on d without changing the mode
func (s State) JumpTo(d Date) State {
	s.Reference = d
	return s
}

// IsSelected reports whether d is the current selection
func (s State) IsSelected(d Date) bool {
	return s.Selected != nil && *s.Selected == d
}

func (s State) Cells() []GridCell {
	return GenerateCells(s.Reference, s.Mode)
}

func (s State) Title() string {
	return HeaderTitle(s.Reference, s.Mode)
}
