// Package finance computes the derived financial views served by the
// customer and vendor portals: aging reports, summary roll-ups and list
// pagination. All figures are derived from the invoice and payment lists
// fetched from SAP, never fetched precomputed.
package finance

import (
	"time"

	"sapportal/internal/model"
)

// bucketDef is one fixed day range of the aging report. DaysTo < 0 marks an
// open-ended bucket.
type bucketDef struct {
	description string
	daysFrom    int
	daysTo      int
}

var agingBuckets = []bucketDef{
	{"Current", 0, 0},
	{"1-30 Days", 1, 30},
	{"31-60 Days", 31, 60},
	{"60+ Days", 61, -1},
}

func (b bucketDef) contains(days int) bool {
	if days < b.daysFrom {
		return false
	}
	return b.daysTo < 0 || days <= b.daysTo
}

// BuildAgingReport classifies every open invoice into exactly one bucket by
// its days overdue and totals the amounts. The bucket list is always complete,
// including zero buckets, and bucket amounts sum to TotalOutstanding. An empty
// invoice list yields a report with all buckets at zero.
func BuildAgingReport(subjectID, subjectName, currency string, invoices []model.Invoice, asOf time.Time) model.AgingReport {
	report := model.AgingReport{
		SubjectID:    subjectID,
		SubjectName:  subjectName,
		Currency:     currency,
		AsOfDate:     asOf.Format("2006-01-02"),
		AgingBuckets: make([]model.AgingBucket, len(agingBuckets)),
	}
	for i, def := range agingBuckets {
		report.AgingBuckets[i] = model.AgingBucket{
			PeriodDescription: def.description,
			DaysFrom:          def.daysFrom,
			DaysTo:            def.daysTo,
		}
	}

	var weightedDays float64
	for _, inv := range invoices {
		if inv.PaymentStatus == "PAID" {
			continue
		}
		days := inv.DaysOverdue
		if days < 0 {
			days = 0
		}
		for i, def := range agingBuckets {
			if def.contains(days) {
				report.AgingBuckets[i].Amount += inv.NetAmount
				report.AgingBuckets[i].InvoiceCount++
				break
			}
		}
		report.TotalOutstanding += inv.NetAmount
		if days > 0 {
			report.OverdueAmount += inv.NetAmount
		}
		weightedDays += float64(days) * inv.NetAmount
	}

	if report.TotalOutstanding > 0 {
		for i := range report.AgingBuckets {
			report.AgingBuckets[i].Percentage = round2(report.AgingBuckets[i].Amount / report.TotalOutstanding * 100)
		}
		report.AverageDaysOutstanding = int(weightedDays / report.TotalOutstanding)
	}
	return report
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
