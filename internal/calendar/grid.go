package calendar

import (
	"fmt"
	"strings"
	"time"
)

// ViewMode selects how the grid windows dates around the reference date
type ViewMode int

const (
	Month ViewMode = iota
	Week
)

func (v ViewMode) String() string {
	switch v {
	case Month:
		return "month"
	case Week:
		return "week"
	default:
		return ""
	}
}

// ParseViewMode accepts "month" or "week" in any case
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month":
		return Month, nil
	case "week":
		return Week, nil
	}
	return Month, fmt.Errorf("unknown view mode %q", s)
}

// Toggle flips between month and week
func (v ViewMode) Toggle() ViewMode {
	if v == Month {
		return Week
	}
	return Month
}

// GridCell is either padding before day 1 (Blank) or a single day
type GridCell struct {
	Blank bool
	Date  Date
}

// GenerateCells returns the cells visible for ref in reading order, Monday first.
//
// Month mode emits ISODayNumber(first of month)-1 blanks followed by every day
// of the month. Week mode emits the seven days of the ISO week containing ref.
func GenerateCells(ref Date, mode ViewMode) []GridCell {
	if mode == Week {
		start := StartOfWeek(ref)
		cells := make([]GridCell, 7)
		for i := range cells {
			cells[i] = GridCell{Date: AddDays(start, i)}
		}
		return cells
	}

	first := Date{Year: ref.Year, Month: ref.Month, Day: 1}
	startOffset := ISODayNumber(first) - 1
	days := MonthLength(ref.Month, ref.Year)

	cells := make([]GridCell, 0, startOffset+days)
	for i := 0; i < startOffset; i++ {
		cells = append(cells, GridCell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, GridCell{Date: Date{Year: ref.Year, Month: ref.Month, Day: day}})
	}
	return cells
}

// Rows splits cells into weeks of seven, padding the last row with blanks
func Rows(cells []GridCell) [][]GridCell {
	var rows [][]GridCell
	for i := 0; i < len(cells); i += 7 {
		row := make([]GridCell, 7)
		n := copy(row, cells[i:min(i+7, len(cells))])
		for j := n; j < 7; j++ {
			row[j] = GridCell{Blank: true}
		}
		rows = append(rows, row)
	}
	return rows
}

// NextReference advances ref by one month or one week
func NextReference(ref Date, mode ViewMode) Date {
	if mode == Week {
		return AddDays(ref, 7)
	}
	return AddMonths(ref, 1)
}

// PreviousReference moves ref back by one month or one week
func PreviousReference(ref Date, mode ViewMode) Date {
	if mode == Week {
		return AddDays(ref, -7)
	}
	return AddMonths(ref, -1)
}

// WeekdayHeaders returns the column order of the grid
func WeekdayHeaders() []time.Weekday {
	return []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
}
