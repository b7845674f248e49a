package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"sapportal/internal/model"
)

func TestLeaveHistoryCSV(t *testing.T) {
	requests := []model.LeaveRequest{
		{RequestID: "LR-001", LeaveType: "ANNUAL", FromDate: "2026-01-05", ToDate: "2026-01-07", Days: 3, Reason: "Family trip", Status: "APPROVED", AppliedDate: "2025-12-20", ApprovedBy: "MGR001"},
		{RequestID: "LR-002", LeaveType: "SICK", FromDate: "2026-02-10", ToDate: "2026-02-10", Days: 1, Reason: "Fever, doctor visit", Status: "APPROVED", AppliedDate: "2026-02-10"},
	}

	out, err := LeaveHistoryCSV(requests)
	if err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "Request ID" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "LR-001" || records[1][4] != "3" {
		t.Errorf("row 1 = %v", records[1])
	}
	// A comma inside a field must survive the round trip.
	if records[2][5] != "Fever, doctor visit" {
		t.Errorf("reason field = %q", records[2][5])
	}
}

func TestLeaveHistoryCSVEmpty(t *testing.T) {
	out, err := LeaveHistoryCSV(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(out), "\n"); got != 1 {
		t.Errorf("expected header only, got %d lines", got)
	}
}

func TestPayslipHistoryCSV(t *testing.T) {
	slips := []model.PayslipSummary{
		{PayPeriod: "2026-02", Basic: 50000, HRA: 20000, Conveyance: 1600, Medical: 1250, Special: 7150, Gross: 80000, PF: 6000, ESI: 0, Tax: 8500, Net: 65500, PayDate: "2026-02-28"},
	}

	out, err := PayslipHistoryCSV(slips)
	if err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[1][1] != "50000.00" {
		t.Errorf("basic = %q", records[1][1])
	}
	if records[1][10] != "65500.00" {
		t.Errorf("net = %q", records[1][10])
	}
}
