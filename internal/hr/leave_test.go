package hr

import (
	"testing"

	"sapportal/internal/model"
)

func sampleHistory() []model.LeaveRequest {
	return []model.LeaveRequest{
		{RequestID: "LR-001", LeaveType: "ANNUAL", FromDate: "2026-01-05", Days: 3, Status: model.LeaveStatusApproved, AppliedDate: "2025-12-20"},
		{RequestID: "LR-002", LeaveType: "SICK", FromDate: "2026-02-10", Days: 1, Status: model.LeaveStatusApproved, AppliedDate: "2026-02-10"},
		{RequestID: "LR-003", LeaveType: "ANNUAL", FromDate: "2026-03-01", Days: 5, Status: model.LeaveStatusPending, AppliedDate: "2026-02-15"},
		{RequestID: "LR-004", LeaveType: "CASUAL", FromDate: "2025-11-03", Days: 2, Status: model.LeaveStatusRejected, AppliedDate: "2025-10-28"},
		{RequestID: "LR-005", LeaveType: "ANNUAL", FromDate: "2026-04-06", Days: 4, Status: model.LeaveStatusCancelled, AppliedDate: "2026-03-20"},
	}
}

func ids(rs []model.LeaveRequest) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.RequestID
	}
	return out
}

func TestFilterHistoryByStatus(t *testing.T) {
	got := FilterHistory(sampleHistory(), HistoryFilter{Status: "approved"})
	if len(got) != 2 {
		t.Fatalf("got %v", ids(got))
	}
	// Newest applied date first.
	if got[0].RequestID != "LR-002" || got[1].RequestID != "LR-001" {
		t.Errorf("order = %v", ids(got))
	}
}

func TestFilterHistoryByTypeAndYear(t *testing.T) {
	got := FilterHistory(sampleHistory(), HistoryFilter{LeaveType: "ANNUAL", Year: 2026})
	if len(got) != 3 {
		t.Fatalf("got %v", ids(got))
	}
	for _, r := range got {
		if r.LeaveType != "ANNUAL" {
			t.Errorf("unexpected type %q in %v", r.LeaveType, ids(got))
		}
	}
}

func TestFilterHistoryNoFilter(t *testing.T) {
	got := FilterHistory(sampleHistory(), HistoryFilter{})
	if len(got) != 5 {
		t.Fatalf("got %d requests", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].AppliedDate < got[i].AppliedDate {
			t.Errorf("not sorted newest first: %v", ids(got))
		}
	}
}

func TestSummarizeLeave(t *testing.T) {
	s := SummarizeLeave("EMP001", 2026, sampleHistory())

	if s.TotalRequested != 4 {
		t.Errorf("TotalRequested = %d, want 4", s.TotalRequested)
	}
	if s.TotalApproved != 2 || s.TotalCancelled != 1 || s.TotalRejected != 0 {
		t.Errorf("counters = %+v", s)
	}
	if s.DaysTaken != 4 {
		t.Errorf("DaysTaken = %d, want 4", s.DaysTaken)
	}
	if s.ByType["ANNUAL"] != 3 || s.ByType["SICK"] != 1 {
		t.Errorf("ByType = %v", s.ByType)
	}
}
