package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBatchWindow is returned when a batch ends before it starts
var ErrInvalidBatchWindow = errors.New("batch end precedes batch start")

// BatchWindow bounds the tracked activity period used for connector bands
type BatchWindow struct {
	Start Date
	End   Date
}

// NewBatchWindow validates that start is not after end
func NewBatchWindow(start, end Date) (BatchWindow, error) {
	if end.Before(start) {
		return BatchWindow{}, fmt.Errorf("%w: %s > %s", ErrInvalidBatchWindow, start, end)
	}
	return BatchWindow{Start: start, End: end}, nil
}

// Contains reports whether d lies within the window, bounds included
func (b BatchWindow) Contains(d Date) bool {
	return !d.Before(b.Start) && !d.After(b.End)
}

// IconClass is the icon drawn in a day cell
type IconClass int

const (
	IconDefault IconClass = iota
	IconCompleted
	IconSelected
)

func (c IconClass) String() string {
	switch c {
	case IconSelected:
		return "selected"
	case IconCompleted:
		return "completed"
	default:
		return "default"
	}
}

// DecorationState is the visual state of one day cell
type DecorationState struct {
	Icon               IconClass
	ShowLeftConnector  bool
	ShowRightConnector bool
}

// Decorate computes the decoration of date given today, the current selection
// (nil when nothing is selected) and the batch window.
//
// Connectors join consecutive attended days into a band. A band never starts
// left of the batch start, never continues right of the batch end or of today,
// and is cut at month edges and at week edges (Monday left, Sunday right).
func Decorate(date, today Date, selected *Date, batch BatchWindow) DecorationState {
	icon := IconDefault
	switch {
	case selected != nil && date == *selected:
		icon = IconSelected
	case date == today:
		icon = IconCompleted
	}

	showLeft := date.After(batch.Start) && !date.After(today) && date.Day > 1
	showRight := !date.Before(batch.Start) && date.Before(today) &&
		date.Day < MonthLength(date.Month, date.Year)

	if date == batch.End {
		showRight = false
	}
	switch date.Weekday() {
	case time.Monday:
		showLeft = false
	case time.Sunday:
		showRight = false
	}

	return DecorationState{
		Icon:               icon,
		ShowLeftConnector:  showLeft,
		ShowRightConnector: showRight,
	}
}
