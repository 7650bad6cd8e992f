package calendar

import "time"

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MonthLength returns the number of days in month of year
func MonthLength(month time.Month, year int) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// ISODayNumber returns the ISO weekday index (Monday=1 ... Sunday=7)
func ISODayNumber(d Date) int {
	wd := d.Weekday()
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// StartOfWeek returns the Monday of the week containing d
func StartOfWeek(d Date) Date {
	return AddDays(d, -(ISODayNumber(d) - 1))
}

// AddDays returns d shifted by n days
func AddDays(d Date, n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths returns d shifted by n months. The day is clamped to the length of
// the target month, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(d Date, n int) Date {
	target := FromTime(time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0))
	target.Day = min(d.Day, MonthLength(target.Month, target.Year))
	return target
}
