// Package hr holds the leave and attendance computations of the employee
// portal. Dates travel as "2006-01-02" strings, matching the SAP interface.
package hr

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// WorkingDays counts the days in [from, to] that fall on Monday through
// Friday. The range is inclusive on both ends; a reversed range is an error.
func WorkingDays(fromDate, toDate string) (int, error) {
	from, err := time.Parse(dateLayout, fromDate)
	if err != nil {
		return 0, fmt.Errorf("invalid from date %q: %w", fromDate, err)
	}
	to, err := time.Parse(dateLayout, toDate)
	if err != nil {
		return 0, fmt.Errorf("invalid to date %q: %w", toDate, err)
	}
	if to.Before(from) {
		return 0, fmt.Errorf("to date %s precedes from date %s", toDate, fromDate)
	}

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days, nil
}
