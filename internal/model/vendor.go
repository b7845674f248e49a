package model

// VendorProfile mirrors the vendor master record with its nested sub-records.
// Sub-records carry an IsPrimary flag; "the primary" is the first match, no
// uniqueness is enforced here or upstream.
type VendorProfile struct {
	VendorID                string          `json:"vendorId"`
	CompanyName             string          `json:"companyName"`
	CompanyCode             string          `json:"companyCode"`
	RegistrationNumber      string          `json:"registrationNumber"`
	VATNumber               string          `json:"vatNumber"`
	TaxID                   string          `json:"taxId"`
	PrimaryContactName      string          `json:"primaryContactName"`
	PrimaryContactEmail     string          `json:"primaryContactEmail"`
	PrimaryContactPhone     string          `json:"primaryContactPhone"`
	BusinessType            string          `json:"businessType"`
	IndustryCode            string          `json:"industryCode"`
	Currency                string          `json:"currency"`
	PaymentTerms            string          `json:"paymentTerms"`
	CreditLimit             float64         `json:"creditLimit"`
	SAPVendorGroup          string          `json:"sapVendorGroup"`
	PurchasingOrganization  []string        `json:"purchasingOrganization"`
	AccountGroup            string          `json:"accountGroup"`
	ReconAccount            string          `json:"reconAccount"`
	ApprovalStatus          string          `json:"approvalStatus"`
	BlockingStatus          string          `json:"blockingStatus,omitempty"`
	Addresses               []Address       `json:"addresses"`
	BankDetails             []BankDetail    `json:"bankDetails"`
	Certifications          []Certification `json:"certifications"`
	Documents               []Document      `json:"documents"`
}

// Address is one vendor address record
type Address struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	IsPrimary   bool   `json:"isPrimary"`
}

// BankDetail is one vendor bank account record
type BankDetail struct {
	ID            string `json:"id"`
	BankName      string `json:"bankName"`
	BankCode      string `json:"bankCode"`
	AccountNumber string `json:"accountNumber"`
	IBAN          string `json:"iban"`
	SwiftCode     string `json:"swiftCode"`
	Currency      string `json:"currency"`
	AccountType   string `json:"accountType"`
	IsPrimary     bool   `json:"isPrimary"`
}

// Certification is one vendor certification record
type Certification struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	CertifyingBody    string `json:"certifyingBody"`
	IssueDate         string `json:"issueDate"`
	ExpiryDate        string `json:"expiryDate"`
	Status            string `json:"status"`
	CertificateNumber string `json:"certificateNumber"`
}

// Document is one vendor document record
type Document struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	UploadDate string `json:"uploadDate"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	Status     string `json:"status"`
	FileSize   int64  `json:"fileSize"`
	FileName   string `json:"fileName"`
}

// PrimaryAddress returns the first address flagged primary, or nil
func (p *VendorProfile) PrimaryAddress() *Address {
	for i := range p.Addresses {
		if p.Addresses[i].IsPrimary {
			return &p.Addresses[i]
		}
	}
	return nil
}

// PrimaryBankDetail returns the first bank account flagged primary, or nil
func (p *VendorProfile) PrimaryBankDetail() *BankDetail {
	for i := range p.BankDetails {
		if p.BankDetails[i].IsPrimary {
			return &p.BankDetails[i]
		}
	}
	return nil
}

// RFQ is a request for quotation addressed to the vendor
type RFQ struct {
	RFQNumber              string  `json:"rfqNumber"`
	RFQType                string  `json:"rfqType"`
	Description            string  `json:"description"`
	RequestingCompany      string  `json:"requestingCompany"`
	PurchasingOrganization string  `json:"purchasingOrganization"`
	PurchasingGroup        string  `json:"purchasingGroup"`
	CreatedDate            string  `json:"createdDate"`
	QuotationDeadline      string  `json:"quotationDeadline"`
	Status                 string  `json:"status"` // OPEN, SUBMITTED, AWARDED, EXPIRED
	Priority               string  `json:"priority"`
	TotalEstimatedValue    float64 `json:"totalEstimatedValue"`
	Currency               string  `json:"currency"`
	ContactPerson          string  `json:"contactPerson"`
	ContactEmail           string  `json:"contactEmail"`
	ContactPhone           string  `json:"contactPhone"`
}

// PurchaseOrder is a purchase order issued to the vendor
type PurchaseOrder struct {
	PONumber               string  `json:"poNumber"`
	POType                 string  `json:"poType"`
	Description            string  `json:"description"`
	CompanyCode            string  `json:"companyCode"`
	PurchasingOrganization string  `json:"purchasingOrganization"`
	PurchasingGroup        string  `json:"purchasingGroup"`
	CreatedDate            string  `json:"createdDate"`
	ExpectedDeliveryDate   string  `json:"expectedDeliveryDate"`
	Status                 string  `json:"status"` // OPEN, PARTIALLY_DELIVERED, FULLY_DELIVERED
	TotalValue             float64 `json:"totalValue"`
	Currency               string  `json:"currency"`
	PaymentTerms           string  `json:"paymentTerms"`
	Incoterms              string  `json:"incoterms"`
	ApprovalStatus         string  `json:"approvalStatus"`
	ContactPerson          string  `json:"contactPerson"`
	ContactEmail           string  `json:"contactEmail"`
}

// GoodsReceipt is a goods receipt posted against a purchase order
type GoodsReceipt struct {
	GRNumber        string  `json:"grNumber"`
	GRType          string  `json:"grType"`
	PONumber        string  `json:"poNumber"`
	DeliveryNote    string  `json:"deliveryNote"`
	ReceivedDate    string  `json:"receivedDate"`
	PostingDate     string  `json:"postingDate"`
	Status          string  `json:"status"` // POSTED, PENDING, QUALITY_CHECK
	ReceivedBy      string  `json:"receivedBy"`
	Plant           string  `json:"plant"`
	StorageLocation string  `json:"storageLocation"`
	TotalValue      float64 `json:"totalValue"`
	Currency        string  `json:"currency"`
	MovementType    string  `json:"movementType"`
	Remarks         string  `json:"remarks,omitempty"`
}

// BusinessSummary groups the vendor transaction counters for the dashboard
type BusinessSummary struct {
	RFQSummary struct {
		Total     int `json:"total"`
		Open      int `json:"open"`
		Submitted int `json:"submitted"`
		Awarded   int `json:"awarded"`
		Expired   int `json:"expired"`
	} `json:"rfqSummary"`
	POSummary struct {
		Total              int     `json:"total"`
		Open               int     `json:"open"`
		PartiallyDelivered int     `json:"partiallyDelivered"`
		FullyDelivered     int     `json:"fullyDelivered"`
		TotalValue         float64 `json:"totalValue"`
	} `json:"poSummary"`
	GRSummary struct {
		Total        int     `json:"total"`
		Posted       int     `json:"posted"`
		Pending      int     `json:"pending"`
		QualityCheck int     `json:"qualityCheck"`
		TotalValue   float64 `json:"totalValue"`
	} `json:"grSummary"`
}
