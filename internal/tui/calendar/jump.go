package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
	calpkg "batchcal/internal/calendar"
)

var monthNames = func() []string {
	names := make([]string, 12)
	for m := time.January; m <= time.December; m++ {
		names[m-1] = calpkg.MonthName(m)
	}
	return names
}()

// ParseJumpTarget resolves prompt input to a date.
//
// Accepted forms are an ISO date ("2026-03-14"), a month name with an optional
// year ("mar", "september 2027"). Month names are fuzzy matched, so "sept" and
// "dcmbr" both work. A month without a year uses the year of ref.
func ParseJumpTarget(input string, ref calpkg.Date) (calpkg.Date, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return calpkg.Date{}, fmt.Errorf("empty jump target")
	}

	if d, err := calpkg.ParseDate(input); err == nil {
		return d, nil
	}

	fields := strings.Fields(input)
	if len(fields) > 2 {
		return calpkg.Date{}, fmt.Errorf("cannot parse %q", input)
	}

	matches := fuzzy.Find(fields[0], monthNames)
	if len(matches) == 0 {
		return calpkg.Date{}, fmt.Errorf("no month matches %q", fields[0])
	}
	month := time.Month(matches[0].Index + 1)

	year := ref.Year
	if len(fields) == 2 {
		y, err := strconv.Atoi(fields[1])
		if err != nil || y < 1 {
			return calpkg.Date{}, fmt.Errorf("invalid year %q", fields[1])
		}
		year = y
	}

	return calpkg.NewDate(year, month, 1)
}
