package model

// Invoice is an accounts document shown on the financial sheet. DaysOverdue
// is the precomputed figure the aging report buckets on.
type Invoice struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	InvoiceType   string  `json:"invoiceType"`
	PONumber      string  `json:"poNumber,omitempty"`
	GRNumber      string  `json:"grNumber,omitempty"`
	CompanyCode   string  `json:"companyCode"`
	InvoiceDate   string  `json:"invoiceDate"`
	PostingDate   string  `json:"postingDate"`
	DueDate       string  `json:"dueDate"`
	PaymentTerms  string  `json:"paymentTerms"`
	Currency      string  `json:"currency"`
	GrossAmount   float64 `json:"grossAmount"`
	TaxAmount     float64 `json:"taxAmount"`
	NetAmount     float64 `json:"netAmount"`
	Status        string  `json:"status"`        // PENDING, APPROVED, REJECTED
	PaymentStatus string  `json:"paymentStatus"` // OPEN, PAID, OVERDUE
	DaysOverdue   int     `json:"daysOverdue"`
}

// Payment is a cleared or in-flight payment run
type Payment struct {
	PaymentID        string   `json:"paymentId"`
	PaymentDate      string   `json:"paymentDate"`
	InvoiceNumbers   []string `json:"invoiceNumbers"`
	TotalAmount      float64  `json:"totalAmount"`
	Currency         string   `json:"currency"`
	PaymentMethod    string   `json:"paymentMethod"` // BANK_TRANSFER, ACH, WIRE
	PaymentReference string   `json:"paymentReference"`
	Status           string   `json:"status"` // COMPLETED, PROCESSING
}

// Memo is a credit or debit memo against an invoice
type Memo struct {
	MemoNumber       string  `json:"memoNumber"`
	MemoType         string  `json:"memoType"` // CREDIT_MEMO, DEBIT_MEMO
	ReferenceInvoice string  `json:"referenceInvoice"`
	CompanyCode      string  `json:"companyCode"`
	MemoDate         string  `json:"memoDate"`
	PostingDate      string  `json:"postingDate"`
	Currency         string  `json:"currency"`
	Amount           float64 `json:"amount"`
	TaxAmount        float64 `json:"taxAmount"`
	NetAmount        float64 `json:"netAmount"`
	Reason           string  `json:"reason"`
	ReasonCode       string  `json:"reasonCode"`
	Status           string  `json:"status"`
	CreatedBy        string  `json:"createdBy"`
	CreatedDate      string  `json:"createdDate"`
}

// FinancialSummary is the header block of the financial sheet
type FinancialSummary struct {
	Currency           string  `json:"currency"`
	TotalInvoiced      float64 `json:"totalInvoiced"`
	TotalPaid          float64 `json:"totalPaid"`
	TotalOutstanding   float64 `json:"totalOutstanding"`
	OverdueAmount      float64 `json:"overdueAmount"`
	CreditMemoTotal    float64 `json:"creditMemoTotal"`
	DebitMemoTotal     float64 `json:"debitMemoTotal"`
	AveragePaymentDays int     `json:"averagePaymentDays"`
	InvoiceCount       struct {
		Total   int `json:"total"`
		Pending int `json:"pending"`
		Paid    int `json:"paid"`
		Overdue int `json:"overdue"`
	} `json:"invoiceCount"`
	LastPaymentDate string `json:"lastPaymentDate,omitempty"`
	NextDueDate     string `json:"nextDueDate,omitempty"`
}

// AgingBucket is one fixed day-range classification of outstanding amounts
type AgingBucket struct {
	PeriodDescription string  `json:"periodDescription"`
	DaysFrom          int     `json:"daysFrom"`
	DaysTo            int     `json:"daysTo"`
	Amount            float64 `json:"amount"`
	InvoiceCount      int     `json:"invoiceCount"`
	Percentage        float64 `json:"percentage"`
}

// AgingReport groups outstanding invoice amounts by days overdue
type AgingReport struct {
	SubjectID              string        `json:"subjectId"`
	SubjectName            string        `json:"subjectName,omitempty"`
	Currency               string        `json:"currency"`
	AsOfDate               string        `json:"asOfDate"`
	TotalOutstanding       float64       `json:"totalOutstanding"`
	AgingBuckets           []AgingBucket `json:"agingBuckets"`
	OverdueAmount          float64       `json:"overdueAmount"`
	AverageDaysOutstanding int           `json:"averageDaysOutstanding"`
}
