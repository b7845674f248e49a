package finance

import (
	"math"
	"testing"
	"time"

	"sapportal/internal/model"
)

var asOf = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func openInvoice(number string, amount float64, daysOverdue int) model.Invoice {
	return model.Invoice{
		InvoiceNumber: number,
		Currency:      "USD",
		NetAmount:     amount,
		Status:        "APPROVED",
		PaymentStatus: "OPEN",
		DaysOverdue:   daysOverdue,
	}
}

func TestBuildAgingReportBucketsSumToTotal(t *testing.T) {
	invoices := []model.Invoice{
		openInvoice("INV-001", 1000, 0),
		openInvoice("INV-002", 2500, 12),
		openInvoice("INV-003", 400, 30),
		openInvoice("INV-004", 750, 45),
		openInvoice("INV-005", 300, 61),
		openInvoice("INV-006", 150, 200),
	}

	report := BuildAgingReport("CUST001", "Acme Industries", "USD", invoices, asOf)

	if got, want := report.TotalOutstanding, 5100.0; got != want {
		t.Fatalf("TotalOutstanding = %v, want %v", got, want)
	}
	if len(report.AgingBuckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(report.AgingBuckets))
	}

	var sum float64
	for _, b := range report.AgingBuckets {
		sum += b.Amount
	}
	if math.Abs(sum-report.TotalOutstanding) > 1e-9 {
		t.Errorf("bucket amounts sum to %v, TotalOutstanding is %v", sum, report.TotalOutstanding)
	}

	wantAmounts := map[string]float64{
		"Current":    1000,
		"1-30 Days":  2900,
		"31-60 Days": 750,
		"60+ Days":   450,
	}
	wantCounts := map[string]int{
		"Current":    1,
		"1-30 Days":  2,
		"31-60 Days": 1,
		"60+ Days":   2,
	}
	for _, b := range report.AgingBuckets {
		if b.Amount != wantAmounts[b.PeriodDescription] {
			t.Errorf("bucket %q amount = %v, want %v", b.PeriodDescription, b.Amount, wantAmounts[b.PeriodDescription])
		}
		if b.InvoiceCount != wantCounts[b.PeriodDescription] {
			t.Errorf("bucket %q count = %d, want %d", b.PeriodDescription, b.InvoiceCount, wantCounts[b.PeriodDescription])
		}
	}

	if got, want := report.OverdueAmount, 4100.0; got != want {
		t.Errorf("OverdueAmount = %v, want %v", got, want)
	}
	if report.AsOfDate != "2026-03-15" {
		t.Errorf("AsOfDate = %q", report.AsOfDate)
	}
}

func TestBuildAgingReportEveryInvoiceInExactlyOneBucket(t *testing.T) {
	// Boundary days: each must land in exactly one bucket.
	for _, days := range []int{0, 1, 30, 31, 60, 61, 365} {
		report := BuildAgingReport("CUST001", "", "USD", []model.Invoice{openInvoice("INV-B", 100, days)}, asOf)
		var hits int
		for _, b := range report.AgingBuckets {
			if b.InvoiceCount > 0 {
				hits++
			}
		}
		if hits != 1 {
			t.Errorf("daysOverdue=%d landed in %d buckets", days, hits)
		}
	}
}

func TestBuildAgingReportNoInvoices(t *testing.T) {
	report := BuildAgingReport("VENDOR001", "", "EUR", nil, asOf)

	if report.TotalOutstanding != 0 {
		t.Errorf("TotalOutstanding = %v, want 0", report.TotalOutstanding)
	}
	if len(report.AgingBuckets) != 4 {
		t.Fatalf("expected all 4 buckets present, got %d", len(report.AgingBuckets))
	}
	for _, b := range report.AgingBuckets {
		if b.Amount != 0 || b.InvoiceCount != 0 || b.Percentage != 0 {
			t.Errorf("bucket %q not zero: %+v", b.PeriodDescription, b)
		}
	}
	if report.AverageDaysOutstanding != 0 {
		t.Errorf("AverageDaysOutstanding = %d, want 0", report.AverageDaysOutstanding)
	}
}

func TestBuildAgingReportSkipsPaidInvoices(t *testing.T) {
	paid := openInvoice("INV-PAID", 9999, 10)
	paid.PaymentStatus = "PAID"
	report := BuildAgingReport("CUST001", "", "USD", []model.Invoice{paid, openInvoice("INV-OPEN", 100, 0)}, asOf)

	if report.TotalOutstanding != 100 {
		t.Errorf("TotalOutstanding = %v, want 100", report.TotalOutstanding)
	}
}

func TestBuildAgingReportPercentages(t *testing.T) {
	invoices := []model.Invoice{
		openInvoice("INV-1", 750, 0),
		openInvoice("INV-2", 250, 15),
	}
	report := BuildAgingReport("CUST001", "", "USD", invoices, asOf)

	for _, b := range report.AgingBuckets {
		switch b.PeriodDescription {
		case "Current":
			if b.Percentage != 75 {
				t.Errorf("Current percentage = %v, want 75", b.Percentage)
			}
		case "1-30 Days":
			if b.Percentage != 25 {
				t.Errorf("1-30 Days percentage = %v, want 25", b.Percentage)
			}
		}
	}
}
