package calendar

import (
	"fmt"
	"time"
)

// DayAbbrev returns the three-letter English weekday name
func DayAbbrev(wd time.Weekday) string {
	return wd.String()[:3]
}

// MonthName returns the full English month name
func MonthName(m time.Month) string {
	return m.String()
}

// MonthAbbrev returns the three-letter English month name
func MonthAbbrev(m time.Month) string {
	return m.String()[:3]
}

// HeaderTitle formats the navigation header.
// Month mode: "February 2026". Week mode: "Feb 9-15" or "Jan 26 - Feb 1".
func HeaderTitle(ref Date, mode ViewMode) string {
	if mode == Month {
		return fmt.Sprintf("%s %d", MonthName(ref.Month), ref.Year)
	}

	start := StartOfWeek(ref)
	end := AddDays(start, 6)
	if start.Month == end.Month {
		return fmt.Sprintf("%s %d-%d", MonthAbbrev(start.Month), start.Day, end.Day)
	}
	return fmt.Sprintf("%s %d - %s %d", MonthAbbrev(start.Month), start.Day, MonthAbbrev(end.Month), end.Day)
}
