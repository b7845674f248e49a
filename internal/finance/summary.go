package finance

import (
	"sort"

	"sapportal/internal/model"
)

// BuildSummary rolls the invoice, payment and memo lists up into the header
// block of the financial sheet. Currency is taken from the first invoice when
// present.
func BuildSummary(invoices []model.Invoice, payments []model.Payment, memos []model.Memo) model.FinancialSummary {
	var s model.FinancialSummary
	if len(invoices) > 0 {
		s.Currency = invoices[0].Currency
	}

	var overdueDaysTotal, overdueInvoices int
	dueDates := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		s.TotalInvoiced += inv.NetAmount
		s.InvoiceCount.Total++
		switch inv.PaymentStatus {
		case "PAID":
			s.TotalPaid += inv.NetAmount
			s.InvoiceCount.Paid++
		case "OVERDUE":
			s.TotalOutstanding += inv.NetAmount
			s.OverdueAmount += inv.NetAmount
			s.InvoiceCount.Overdue++
			overdueDaysTotal += inv.DaysOverdue
			overdueInvoices++
			dueDates = append(dueDates, inv.DueDate)
		default:
			s.TotalOutstanding += inv.NetAmount
			s.InvoiceCount.Pending++
			dueDates = append(dueDates, inv.DueDate)
		}
	}
	if overdueInvoices > 0 {
		s.AveragePaymentDays = overdueDaysTotal / overdueInvoices
	}

	for _, p := range payments {
		if p.PaymentDate > s.LastPaymentDate {
			s.LastPaymentDate = p.PaymentDate
		}
	}

	for _, m := range memos {
		switch m.MemoType {
		case "CREDIT_MEMO":
			s.CreditMemoTotal += m.NetAmount
		case "DEBIT_MEMO":
			s.DebitMemoTotal += m.NetAmount
		}
	}

	if len(dueDates) > 0 {
		sort.Strings(dueDates)
		s.NextDueDate = dueDates[0]
	}
	return s
}
