// Package report renders downloadable exports for the portals. Exports are
// CSV, built in memory and served as attachments.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"sapportal/internal/model"
)

// LeaveHistoryCSV renders the leave history as a CSV document
func LeaveHistoryCSV(requests []model.LeaveRequest) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Request ID", "Leave Type", "From Date", "To Date", "Days", "Reason", "Status", "Applied Date", "Approved By"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write leave report header: %w", err)
	}
	for _, r := range requests {
		row := []string{
			r.RequestID,
			r.LeaveType,
			r.FromDate,
			r.ToDate,
			fmt.Sprintf("%d", r.Days),
			r.Reason,
			r.Status,
			r.AppliedDate,
			r.ApprovedBy,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write leave report row %s: %w", r.RequestID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush leave report: %w", err)
	}
	return buf.Bytes(), nil
}

// PayslipHistoryCSV renders the payslip history list as a CSV document
func PayslipHistoryCSV(slips []model.PayslipSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Pay Period", "Basic", "HRA", "Conveyance", "Medical", "Special", "Gross", "PF", "ESI", "Tax", "Net", "Pay Date"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write payslip report header: %w", err)
	}
	for _, s := range slips {
		row := []string{
			s.PayPeriod,
			money(s.Basic),
			money(s.HRA),
			money(s.Conveyance),
			money(s.Medical),
			money(s.Special),
			money(s.Gross),
			money(s.PF),
			money(s.ESI),
			money(s.Tax),
			money(s.Net),
			s.PayDate,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write payslip report row %s: %w", s.PayPeriod, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush payslip report: %w", err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
