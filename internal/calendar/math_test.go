package calendar

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) Date {
	return MustDate(y, m, d)
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.expected {
			t.Errorf("IsLeapYear(%d): expected %v, got %v", tt.year, tt.expected, got)
		}
	}
}

func TestIsLeapYear_GregorianCycle(t *testing.T) {
	for y := 1; y <= 2800; y++ {
		if IsLeapYear(y) != IsLeapYear(y+400) {
			t.Fatalf("cycle broken at %d", y)
		}
	}
}

func TestMonthLength_YearTotals(t *testing.T) {
	for y := 1890; y <= 2110; y++ {
		total := 0
		for m := time.January; m <= time.December; m++ {
			total += MonthLength(m, y)
		}
		expected := 365
		if IsLeapYear(y) {
			expected = 366
		}
		if total != expected {
			t.Errorf("year %d: expected %d days, got %d", y, expected, total)
		}
	}
}

func TestMonthLength(t *testing.T) {
	tests := []struct {
		month    time.Month
		year     int
		expected int
	}{
		{time.February, 2026, 28},
		{time.February, 2028, 29},
		{time.April, 2026, 30},
		{time.September, 2026, 30},
		{time.December, 2026, 31},
	}

	for _, tt := range tests {
		if got := MonthLength(tt.month, tt.year); got != tt.expected {
			t.Errorf("MonthLength(%v, %d): expected %d, got %d", tt.month, tt.year, tt.expected, got)
		}
	}
}

func TestISODayNumber(t *testing.T) {
	// Feb 2, 2026 is a Monday
	for i := 0; i < 7; i++ {
		d := AddDays(date(2026, 2, 2), i)
		if got := ISODayNumber(d); got != i+1 {
			t.Errorf("%s: expected %d, got %d", d, i+1, got)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		in       Date
		expected Date
	}{
		{date(2026, 2, 6), date(2026, 2, 2)},   // Friday
		{date(2026, 2, 2), date(2026, 2, 2)},   // Monday
		{date(2026, 2, 1), date(2026, 1, 26)},  // Sunday
		{date(2027, 1, 1), date(2026, 12, 28)}, // across a year
	}

	for _, tt := range tests {
		got := StartOfWeek(tt.in)
		if got != tt.expected {
			t.Errorf("StartOfWeek(%s): expected %s, got %s", tt.in, tt.expected, got)
		}
		if got.Weekday() != time.Monday {
			t.Errorf("StartOfWeek(%s) is a %v", tt.in, got.Weekday())
		}
	}
}

func TestAddDaysAndMonths(t *testing.T) {
	if got := AddDays(date(2026, 12, 30), 3); got != date(2027, 1, 2) {
		t.Errorf("expected 2027-01-02, got %s", got)
	}
	if got := AddDays(date(2028, 3, 1), -1); got != date(2028, 2, 29) {
		t.Errorf("expected 2028-02-29, got %s", got)
	}
	if got := AddMonths(date(2026, 11, 15), 2); got != date(2027, 1, 15) {
		t.Errorf("expected 2027-01-15, got %s", got)
	}
}

func TestAddMonths_ClampsDay(t *testing.T) {
	tests := []struct {
		from     Date
		n        int
		expected Date
	}{
		{date(2026, 1, 31), 1, date(2026, 2, 28)},
		{date(2028, 1, 31), 1, date(2028, 2, 29)},
		{date(2026, 3, 31), -1, date(2026, 2, 28)},
		{date(2026, 10, 31), 1, date(2026, 11, 30)},
		{date(2026, 5, 31), -1, date(2026, 4, 30)},
		{date(2026, 12, 31), 2, date(2027, 2, 28)},
		{date(2027, 1, 30), -2, date(2026, 11, 30)},
		{date(2026, 8, 29), 6, date(2027, 2, 28)},
	}

	for _, tt := range tests {
		if got := AddMonths(tt.from, tt.n); got != tt.expected {
			t.Errorf("AddMonths(%s, %d): expected %s, got %s", tt.from, tt.n, tt.expected, got)
		}
	}
}

func TestMonthNavigationNeverSkips(t *testing.T) {
	for ref := date(2025, 1, 1); ref.Before(date(2029, 1, 1)); ref = AddDays(ref, 1) {
		next := NextReference(ref, Month)
		wantNext := FromTime(time.Date(ref.Year, ref.Month+1, 1, 0, 0, 0, 0, time.UTC))
		if next.Year != wantNext.Year || next.Month != wantNext.Month {
			t.Fatalf("next from %s landed on %s", ref, next)
		}
		prev := PreviousReference(ref, Month)
		wantPrev := FromTime(time.Date(ref.Year, ref.Month-1, 1, 0, 0, 0, 0, time.UTC))
		if prev.Year != wantPrev.Year || prev.Month != wantPrev.Month {
			t.Fatalf("previous from %s landed on %s", ref, prev)
		}
	}
}

func TestNewDate(t *testing.T) {
	if _, err := NewDate(2026, time.February, 29); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate for 2026-02-29, got %v", err)
	}
	if _, err := NewDate(2026, 13, 1); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate for month 13, got %v", err)
	}
	if _, err := NewDate(2028, time.February, 29); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != date(2026, 1, 4) {
		t.Errorf("expected 2026-01-04, got %s", d)
	}
	if d.String() != "2026-01-04" {
		t.Errorf("expected round trip, got %q", d.String())
	}

	for _, bad := range []string{"", "2026-02-30", "04/01/2026"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", bad, err)
		}
	}
}

func TestDateCompare(t *testing.T) {
	a, b := date(2026, 1, 31), date(2026, 2, 1)
	if !a.Before(b) || b.Before(a) {
		t.Error("expected Jan 31 before Feb 1")
	}
	if !b.After(a) {
		t.Error("expected Feb 1 after Jan 31")
	}
	if a.Compare(a) != 0 {
		t.Error("expected a date to equal itself")
	}
	if date(2025, 12, 31).Compare(a) != -1 {
		t.Error("expected earlier year to compare lower")
	}
}
