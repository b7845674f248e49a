package hr

import (
	"sort"
	"strings"

	"sapportal/internal/model"
)

// HistoryFilter narrows the leave history list. Zero values mean no filter.
type HistoryFilter struct {
	Status    string
	LeaveType string
	Year      int
}

// FilterHistory applies the filter and returns requests newest first by
// applied date. The input slice is not modified.
func FilterHistory(requests []model.LeaveRequest, f HistoryFilter) []model.LeaveRequest {
	out := make([]model.LeaveRequest, 0, len(requests))
	for _, r := range requests {
		if f.Status != "" && !strings.EqualFold(r.Status, f.Status) {
			continue
		}
		if f.LeaveType != "" && !strings.EqualFold(r.LeaveType, f.LeaveType) {
			continue
		}
		if f.Year != 0 && !inYear(r.FromDate, f.Year) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppliedDate > out[j].AppliedDate
	})
	return out
}

func inYear(date string, year int) bool {
	if len(date) < 4 {
		return false
	}
	y := 0
	for _, c := range date[:4] {
		if c < '0' || c > '9' {
			return false
		}
		y = y*10 + int(c-'0')
	}
	return y == year
}

// SummarizeLeave rolls the leave history up for the dashboard. Only approved
// requests count toward days taken.
func SummarizeLeave(employeeID string, year int, requests []model.LeaveRequest) model.LeaveSummary {
	s := model.LeaveSummary{
		EmployeeID: employeeID,
		Year:       year,
		ByType:     map[string]int{},
	}
	for _, r := range requests {
		if year != 0 && !inYear(r.FromDate, year) {
			continue
		}
		s.TotalRequested++
		switch r.Status {
		case model.LeaveStatusApproved:
			s.TotalApproved++
			s.DaysTaken += r.Days
			s.ByType[r.LeaveType] += r.Days
		case model.LeaveStatusRejected:
			s.TotalRejected++
		case model.LeaveStatusCancelled:
			s.TotalCancelled++
		}
	}
	return s
}
