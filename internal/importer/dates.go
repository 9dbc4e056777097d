package importer

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted in CSV fields, tried in order. Users paste dates in
// whatever format their spreadsheet produced, so the list is deliberately
// broad. Day-first formats come first; ISO is the fallback. Layouts with a
// two-digit year are flagged so the century pivot only touches those.
var dateLayouts = []struct {
	layout       string
	twoDigitYear bool
}{
	{"02/01/2006", false},
	{"2/1/06", true},
	{"02/01/06", true},
	{"02-01-06", true},
	{"02-01-2006", false},
	{"02.01.06", true},
	{"02.01.2006", false},
	{"2006-01-02", false},
	{"2 Jan 06", true},
	{"2 Jan 2006", false},
	{"02 Jan 2006", false},
	{"2 January 2006", false},
	{"02 January 2006", false},
	{"January 2, 2006", false},
}

// parseDate parses a CSV date value against the accepted layouts
func parseDate(value string) (time.Time, error) {
	cleaned := strings.TrimSpace(value)
	for _, l := range dateLayouts {
		if parsed, err := time.Parse(l.layout, cleaned); err == nil {
			if l.twoDigitYear {
				parsed = adjustTwoDigitYear(parsed)
			}
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q", value)
}

// adjustTwoDigitYear pivots two-digit years at 50 (1950-2049, as
// spreadsheets do). Go's own pivot maps 50-68 into the 2050s; pull those
// back a century. Callers only apply this to two-digit layouts; a written
// four-digit year is taken as given.
func adjustTwoDigitYear(t time.Time) time.Time {
	if y := t.Year(); y >= 2050 && y <= 2068 {
		return t.AddDate(-100, 0, 0)
	}
	return t
}

// parseBool interprets spreadsheet-style boolean values; anything not in
// the affirmative set is false
func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1", "on":
		return true
	}
	return false
}

// nextJobCreationDate derives when a schedule's next job should be raised:
// the due date minus the notice period, counted in business days when the
// tenant ignores weekends.
func nextJobCreationDate(dueDate time.Time, noticeDays int, ignoreWeekendDays bool) time.Time {
	if !ignoreWeekendDays {
		return dueDate.AddDate(0, 0, -noticeDays)
	}

	date := dueDate
	for remaining := noticeDays; remaining > 0; {
		date = date.AddDate(0, 0, -1)
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			remaining--
		}
	}
	return date
}
