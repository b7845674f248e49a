package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sapportal/internal/model"
	"sapportal/internal/sap"
)

// Fake serves all three portal interfaces from canned fixtures. It exists
// for local development and tests only and is selected by explicit wiring
// (GATEWAY_MODE=fake); the mains refuse to start with it in production.
type Fake struct {
	mu          sync.Mutex
	credentials map[string][]byte
	requests    map[string][]model.LeaveRequest
	nextRequest int
}

// NewFake builds the fixture gateway. Demo passwords are hashed at
// construction so the verify path matches production credential handling.
func NewFake() *Fake {
	f := &Fake{
		credentials: make(map[string][]byte),
		requests:    make(map[string][]model.LeaveRequest),
		nextRequest: 100,
	}
	for _, id := range []string{"CUST001", "VENDOR001", "EMP001", "EMP002", "EMP003"} {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		f.credentials[id] = hash
	}
	f.requests["EMP001"] = []model.LeaveRequest{
		{
			RequestID:    "REQ-2026-041",
			EmployeeID:   "EMP001",
			LeaveType:    "ANNUAL",
			FromDate:     "2026-01-12",
			ToDate:       "2026-01-16",
			Days:         5,
			Reason:       "Family vacation",
			Status:       model.LeaveStatusApproved,
			AppliedDate:  "2025-12-18",
			ApprovedBy:   "EMP010",
			ApprovedDate: "2025-12-20",
		},
		{
			RequestID:   "REQ-2026-057",
			EmployeeID:  "EMP001",
			LeaveType:   "SICK",
			FromDate:    "2026-02-09",
			ToDate:      "2026-02-10",
			Days:        2,
			Reason:      "Flu",
			Status:      model.LeaveStatusApproved,
			AppliedDate: "2026-02-09",
			ApprovedBy:  "EMP010",
		},
		{
			RequestID:   "REQ-2026-072",
			EmployeeID:  "EMP001",
			LeaveType:   "CASUAL",
			FromDate:    "2026-04-03",
			ToDate:      "2026-04-03",
			Days:        1,
			Reason:      "Personal errand",
			Status:      model.LeaveStatusPending,
			AppliedDate: "2026-03-25",
		},
	}
	return f
}

func (f *Fake) verify(id, password string) error {
	hash, ok := f.credentials[id]
	if !ok {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func notFound(op, id string) error {
	return &sap.Error{Kind: sap.KindNotFound, Function: op, Err: fmt.Errorf("no record for %s", id)}
}

// --- Customer ---

// Authenticate checks the demo credential table
func (f *Fake) Authenticate(ctx context.Context, id, password string) error {
	return f.verify(id, password)
}

// Profile returns the demo customer master record
func (f *Fake) Profile(ctx context.Context, customerID string) (*model.CustomerProfile, error) {
	if customerID != "CUST001" {
		return nil, notFound("customer profile", customerID)
	}
	return &model.CustomerProfile{
		CustomerID: "CUST001",
		Name:       "John Anderson",
		Email:      "john.anderson@acme-industries.example",
		Phone:      "+1-555-0142",
		Address:    "1200 Industrial Way",
		City:       "Chicago",
		Country:    "US",
		Company:    "Acme Industries Ltd",
	}, nil
}

// Dashboard returns the demo landing page metrics
func (f *Fake) Dashboard(ctx context.Context, customerID string) (*model.Dashboard, error) {
	if customerID != "CUST001" {
		return nil, notFound("customer dashboard", customerID)
	}
	inquiries, _ := f.Inquiries(ctx, customerID)
	orders, _ := f.SalesOrders(ctx, customerID)
	deliveries, _ := f.Deliveries(ctx, customerID)
	return &model.Dashboard{
		TotalInquiries:        15,
		TotalSalesOrders:      8,
		TotalDeliveries:       12,
		OutstandingAmount:     25750.50,
		InquiryConversionRate: 67,
		AverageOrderValue:     18500.00,
		DeliveryPerformance:   95,
		RecentInquiries:       inquiries,
		RecentSalesOrders:     orders,
		RecentDeliveries:      deliveries,
	}, nil
}

// Inquiries returns the demo inquiry list
func (f *Fake) Inquiries(ctx context.Context, customerID string) ([]model.Inquiry, error) {
	if customerID != "CUST001" {
		return nil, notFound("customer inquiries", customerID)
	}
	return []model.Inquiry{
		{
			InquiryNumber: "INQ-2026-0031",
			InquiryDate:   "2026-02-14",
			Description:   "Quotation for 40 industrial bearings",
			Status:        "Quoted",
			Priority:      "High",
			TotalValue:    12400,
			Items: []model.InquiryItem{
				{MaterialNumber: "MAT-7741", Description: "Spherical roller bearing 22218", Quantity: 40, Unit: "EA"},
			},
		},
		{
			InquiryNumber: "INQ-2026-0042",
			InquiryDate:   "2026-03-02",
			Description:   "Hydraulic seal kits, annual contract",
			Status:        "In Progress",
			Priority:      "Medium",
			TotalValue:    8150,
		},
	}, nil
}

// SalesOrders returns the demo sales order list
func (f *Fake) SalesOrders(ctx context.Context, customerID string) ([]model.SalesOrder, error) {
	if customerID != "CUST001" {
		return nil, notFound("customer sales orders", customerID)
	}
	return []model.SalesOrder{
		{
			OrderNumber:           "SO-2026-1207",
			OrderDate:             "2026-02-20",
			RequestedDeliveryDate: "2026-03-20",
			OrderValue:            18500,
			Currency:              "USD",
			Status:                "In Production",
			CustomerPO:            "PO-ACME-5531",
			Items: []model.SalesOrderItem{
				{LineItem: "10", MaterialNumber: "MAT-7741", Description: "Spherical roller bearing 22218", OrderedQuantity: 40, DeliveredQuantity: 0, Unit: "EA", UnitPrice: 310, TotalPrice: 12400, DeliveryDate: "2026-03-20", Status: "Confirmed"},
			},
		},
		{
			OrderNumber: "SO-2026-1188",
			OrderDate:   "2026-01-28",
			OrderValue:  9400,
			Currency:    "USD",
			Status:      "Completed",
			CustomerPO:  "PO-ACME-5502",
		},
	}, nil
}

// Deliveries returns the demo delivery list
func (f *Fake) Deliveries(ctx context.Context, customerID string) ([]model.Delivery, error) {
	if customerID != "CUST001" {
		return nil, notFound("customer deliveries", customerID)
	}
	return []model.Delivery{
		{
			DeliveryNumber:    "DLV-2026-0881",
			DeliveryDate:      "2026-02-02",
			TrackingNumber:    "1Z999AA10123456784",
			Status:            "Delivered",
			Carrier:           "UPS",
			RelatedSalesOrder: "SO-2026-1188",
			DeliveryAddress:   "1200 Industrial Way, Chicago",
			ActualArrival:     "2026-02-05",
		},
	}, nil
}

// Orders returns the demo order history rows
func (f *Fake) Orders(ctx context.Context, customerID string) ([]model.Order, error) {
	if customerID != "CUST001" {
		return nil, notFound("customer orders", customerID)
	}
	return []model.Order{
		{OrderNumber: "SO-2026-1207", Date: "2026-02-20", Amount: 18500, Status: "Shipped"},
		{OrderNumber: "SO-2026-1188", Date: "2026-01-28", Amount: 9400, Status: "Delivered"},
		{OrderNumber: "SO-2025-1056", Date: "2025-11-14", Amount: 6200, Status: "Delivered"},
	}, nil
}

// Invoices returns the demo invoice list shared by customer and vendor views
func (f *Fake) Invoices(ctx context.Context, id string) ([]model.Invoice, error) {
	if id != "CUST001" && id != "VENDOR001" {
		return nil, notFound("invoices", id)
	}
	return []model.Invoice{
		{
			InvoiceNumber: "INV-2026-3301",
			InvoiceType:   "Standard",
			CompanyCode:   "1000",
			InvoiceDate:   "2026-01-15",
			PostingDate:   "2026-01-16",
			DueDate:       "2026-02-14",
			PaymentTerms:  "NET30",
			Currency:      "USD",
			GrossAmount:   10800,
			TaxAmount:     800,
			NetAmount:     10000,
			Status:        "APPROVED",
			PaymentStatus: "PAID",
		},
		{
			InvoiceNumber: "INV-2026-3342",
			InvoiceType:   "Standard",
			CompanyCode:   "1000",
			InvoiceDate:   "2026-02-10",
			PostingDate:   "2026-02-11",
			DueDate:       "2026-03-12",
			PaymentTerms:  "NET30",
			Currency:      "USD",
			GrossAmount:   16740,
			TaxAmount:     1240,
			NetAmount:     15500,
			Status:        "APPROVED",
			PaymentStatus: "OPEN",
		},
		{
			InvoiceNumber: "INV-2026-3318",
			InvoiceType:   "Standard",
			CompanyCode:   "1000",
			InvoiceDate:   "2026-01-02",
			PostingDate:   "2026-01-02",
			DueDate:       "2026-02-01",
			PaymentTerms:  "NET30",
			Currency:      "USD",
			GrossAmount:   11070,
			TaxAmount:     820,
			NetAmount:     10250.50,
			Status:        "APPROVED",
			PaymentStatus: "OVERDUE",
			DaysOverdue:   42,
		},
	}, nil
}

// Payments returns the demo payment history
func (f *Fake) Payments(ctx context.Context, id string) ([]model.Payment, error) {
	if id != "CUST001" && id != "VENDOR001" {
		return nil, notFound("payments", id)
	}
	return []model.Payment{
		{
			PaymentID:        "PAY-2026-0077",
			PaymentDate:      "2026-02-12",
			InvoiceNumbers:   []string{"INV-2026-3301"},
			TotalAmount:      10000,
			Currency:         "USD",
			PaymentMethod:    "BANK_TRANSFER",
			PaymentReference: "TRN-88412",
			Status:           "COMPLETED",
		},
	}, nil
}

// Memos returns the demo memo list
func (f *Fake) Memos(ctx context.Context, id string) ([]model.Memo, error) {
	if id != "CUST001" && id != "VENDOR001" {
		return nil, notFound("memos", id)
	}
	return []model.Memo{
		{
			MemoNumber:       "CM-2026-0009",
			MemoType:         "CREDIT_MEMO",
			ReferenceInvoice: "INV-2026-3301",
			CompanyCode:      "1000",
			MemoDate:         "2026-02-18",
			PostingDate:      "2026-02-18",
			Currency:         "USD",
			Amount:           540,
			TaxAmount:        40,
			NetAmount:        500,
			Reason:           "Damaged goods returned",
			ReasonCode:       "RET",
			Status:           "POSTED",
			CreatedBy:        "AP_CLERK01",
			CreatedDate:      "2026-02-18",
		},
	}, nil
}

// --- Vendor ---

func (f *Fake) vendorProfile(vendorID string) (*model.VendorProfile, error) {
	if vendorID != "VENDOR001" {
		return nil, notFound("vendor profile", vendorID)
	}
	return &model.VendorProfile{
		VendorID:               "VENDOR001",
		CompanyName:            "Precision Components GmbH",
		CompanyCode:            "1000",
		RegistrationNumber:     "HRB-229401",
		VATNumber:              "DE298174339",
		TaxID:                  "48/815/90021",
		PrimaryContactName:     "Klara Weiss",
		PrimaryContactEmail:    "k.weiss@precision-components.example",
		PrimaryContactPhone:    "+49-89-5550-172",
		BusinessType:           "Manufacturer",
		IndustryCode:           "C2815",
		Currency:               "EUR",
		PaymentTerms:           "NET45",
		CreditLimit:            250000,
		SAPVendorGroup:         "KRED",
		PurchasingOrganization: []string{"P100", "P200"},
		AccountGroup:           "0001",
		ReconAccount:           "160000",
		ApprovalStatus:         "APPROVED",
		Addresses: []model.Address{
			{ID: "ADR-1", Type: "HQ", Name: "Headquarters", Street: "Werkstrasse 12", City: "Munich", State: "BY", PostalCode: "80339", Country: "Germany", CountryCode: "DE", IsPrimary: true},
			{ID: "ADR-2", Type: "PLANT", Name: "Plant 2", Street: "Industrieweg 4", City: "Augsburg", State: "BY", PostalCode: "86153", Country: "Germany", CountryCode: "DE"},
		},
		BankDetails: []model.BankDetail{
			{ID: "BNK-1", BankName: "Commerzbank", BankCode: "70040041", AccountNumber: "0882114457", IBAN: "DE89370400440532013000", SwiftCode: "COBADEFFXXX", Currency: "EUR", AccountType: "CHECKING", IsPrimary: true},
		},
		Certifications: []model.Certification{
			{ID: "CRT-1", Name: "ISO 9001:2015", CertifyingBody: "TUV SUD", IssueDate: "2024-06-01", ExpiryDate: "2027-05-31", Status: "VALID", CertificateNumber: "Q-558812"},
		},
		Documents: []model.Document{
			{ID: "DOC-1", Name: "W-8BEN-E", Type: "TAX_FORM", UploadDate: "2025-01-10", Status: "ACCEPTED", FileSize: 183422, FileName: "w8bene-2025.pdf"},
		},
	}, nil
}

func (f *Fake) businessSummary(vendorID string) (*model.BusinessSummary, error) {
	if vendorID != "VENDOR001" {
		return nil, notFound("vendor summary", vendorID)
	}
	var s model.BusinessSummary
	s.RFQSummary.Total = 6
	s.RFQSummary.Open = 2
	s.RFQSummary.Submitted = 2
	s.RFQSummary.Awarded = 1
	s.RFQSummary.Expired = 1
	s.POSummary.Total = 4
	s.POSummary.Open = 1
	s.POSummary.PartiallyDelivered = 1
	s.POSummary.FullyDelivered = 2
	s.POSummary.TotalValue = 412500
	s.GRSummary.Total = 5
	s.GRSummary.Posted = 4
	s.GRSummary.Pending = 1
	s.GRSummary.TotalValue = 355000
	return &s, nil
}

func (f *Fake) rfqs(vendorID string) ([]model.RFQ, error) {
	if vendorID != "VENDOR001" {
		return nil, notFound("vendor rfqs", vendorID)
	}
	return []model.RFQ{
		{
			RFQNumber:              "RFQ-2026-0118",
			RFQType:                "Standard",
			Description:            "Machined housings, Q3 demand",
			RequestingCompany:      "1000",
			PurchasingOrganization: "P100",
			PurchasingGroup:        "G01",
			CreatedDate:            "2026-02-25",
			QuotationDeadline:      "2026-03-25",
			Status:                 "OPEN",
			Priority:               "High",
			TotalEstimatedValue:    78000,
			Currency:               "EUR",
			ContactPerson:          "M. Berger",
			ContactEmail:           "m.berger@company.example",
		},
		{
			RFQNumber:           "RFQ-2026-0097",
			RFQType:             "Standard",
			Description:         "Stainless fasteners, blanket",
			CreatedDate:         "2026-01-19",
			QuotationDeadline:   "2026-02-10",
			Status:              "AWARDED",
			Priority:            "Medium",
			TotalEstimatedValue: 23500,
			Currency:            "EUR",
		},
	}, nil
}

func (f *Fake) purchaseOrders(vendorID string) ([]model.PurchaseOrder, error) {
	if vendorID != "VENDOR001" {
		return nil, notFound("vendor purchase orders", vendorID)
	}
	return []model.PurchaseOrder{
		{
			PONumber:               "PO-2026-4471",
			POType:                 "Standard",
			Description:            "Machined housings batch 1",
			CompanyCode:            "1000",
			PurchasingOrganization: "P100",
			PurchasingGroup:        "G01",
			CreatedDate:            "2026-02-01",
			ExpectedDeliveryDate:   "2026-03-15",
			Status:                 "PARTIALLY_DELIVERED",
			TotalValue:             156000,
			Currency:               "EUR",
			PaymentTerms:           "NET45",
			Incoterms:              "DAP",
			ApprovalStatus:         "APPROVED",
			ContactPerson:          "M. Berger",
			ContactEmail:           "m.berger@company.example",
		},
	}, nil
}

func (f *Fake) goodsReceipts(vendorID string) ([]model.GoodsReceipt, error) {
	if vendorID != "VENDOR001" {
		return nil, notFound("vendor goods receipts", vendorID)
	}
	return []model.GoodsReceipt{
		{
			GRNumber:        "GR-2026-0912",
			GRType:          "Standard",
			PONumber:        "PO-2026-4471",
			DeliveryNote:    "DN-55821",
			ReceivedDate:    "2026-02-27",
			PostingDate:     "2026-02-27",
			Status:          "POSTED",
			ReceivedBy:      "WH_CLERK02",
			Plant:           "1010",
			StorageLocation: "0001",
			TotalValue:      78000,
			Currency:        "EUR",
			MovementType:    "101",
		},
	}, nil
}

// --- Employee ---

// CheckExistence reports whether the id is in the demo employee table
func (f *Fake) CheckExistence(ctx context.Context, employeeID string) (bool, error) {
	_, ok := f.credentials[employeeID]
	return ok && strings.HasPrefix(employeeID, "EMP"), nil
}

// AuthenticateEmployee validates demo employee credentials
func (f *Fake) authenticateEmployee(employeeID, password string) (bool, error) {
	if err := f.verify(employeeID, password); err != nil {
		return false, nil
	}
	return true, nil
}

// Details returns the demo identity block
func (f *Fake) Details(ctx context.Context, employeeID string) (*model.EmployeeDetails, error) {
	if _, ok := f.credentials[employeeID]; !ok || employeeID == "CUST001" || employeeID == "VENDOR001" {
		return nil, notFound("employee details", employeeID)
	}
	return &model.EmployeeDetails{
		EmployeeID:  employeeID,
		Name:        "Priya Sharma",
		Email:       "priya.sharma@company.example",
		Department:  "Engineering",
		Designation: "Senior Engineer",
		Role:        "Employee",
		JoiningDate: "2019-07-15",
		Manager:     "EMP010",
	}, nil
}

// EmployeeProfile returns the demo HR master record
func (f *Fake) employeeProfile(employeeID string) (*model.EmployeeProfile, error) {
	details, err := f.Details(context.Background(), employeeID)
	if err != nil {
		return nil, err
	}
	p := &model.EmployeeProfile{
		EmployeeID:      employeeID,
		PersonnelNumber: "00001042",
		FirstName:       "Priya",
		LastName:        "Sharma",
		FullName:        details.Name,
		Gender:          "Female",
		DateOfBirth:     "1992-04-11",
		Nationality:     "Indian",
		MaritalStatus:   "Married",
		BloodGroup:      "B+",
		PersonalEmail:   "priya.s@personal.example",
		WorkEmail:       details.Email,
		PersonalMobile:  "+91-98400-22110",
		WorkMobile:      "+91-98400-77821",
		EmergencyContact: model.EmergencyContact{
			Name:         "Rahul Sharma",
			Relationship: "Spouse",
			Phone:        "+91-98400-11776",
		},
		Designation: details.Designation,
		Department:  details.Department,
		Division:    "Product Development",
		Location:    "Chennai",
		ReportingManager: model.ReportingManager{
			EmployeeID:  "EMP010",
			Name:        "Arjun Mehta",
			Designation: "Engineering Manager",
		},
		JoiningDate:      details.JoiningDate,
		ConfirmationDate: "2020-01-15",
		EmploymentType:   "Permanent",
		Status:           "Active",
		CostCenter:       "CC-4410",
		Grade:            "E4",
		Level:            "Senior",
		Salary: model.SalaryBreakdown{
			Basic: 50000, HRA: 20000, Conveyance: 1600, Medical: 1250,
			Special: 7150, Gross: 80000, PF: 6000, ESI: 0, Tax: 8500,
			Net: 65500, Currency: "INR", EffectiveDate: "2025-04-01",
		},
		BankDetails: model.EmployeeBank{
			AccountNumber: "50100223344556",
			IFSCCode:      "HDFC0001204",
			BankName:      "HDFC Bank",
			BranchName:    "Anna Nagar",
			AccountType:   "Savings",
		},
		Education: []model.Education{
			{Degree: "B.E.", Major: "Mechanical Engineering", Institution: "Anna University", University: "Anna University", Year: 2014, Percentage: 82.4, Location: "Chennai"},
		},
		Skills: []string{"SAP MM", "CAD", "Project Management"},
		Certifications: []model.Certification{
			{ID: "EC-1", Name: "PMP", CertifyingBody: "PMI", IssueDate: "2023-02-01", ExpiryDate: "2026-01-31", Status: "VALID", CertificateNumber: "PMP-3329811"},
		},
		WorkSchedule: model.WorkSchedule{
			WorkingHours: "09:00-18:00",
			WorkingDays:  "Mon-Fri",
			ShiftType:    "General",
			TimeZone:     "Asia/Kolkata",
		},
		LeaveBalance: model.LeaveBalance{
			EmployeeID: employeeID,
			Annual:     model.LeaveCategoryBalance{Total: 25, Used: 8, Remaining: 17},
			Sick:       model.LeaveCategoryBalance{Total: 10, Used: 2, Remaining: 8},
			Casual:     model.LeaveCategoryBalance{Total: 12, Used: 5, Remaining: 7},
			Year:       2026,
		},
	}
	p.Addresses.Permanent = model.EmployeeAddress{Type: "Permanent", Street: "14 Lake View Road", Area: "Nungambakkam", City: "Chennai", State: "TN", Country: "India", Pincode: "600034"}
	p.Addresses.Current = model.EmployeeAddress{Type: "Current", Street: "8 Tech Park Avenue", Area: "Taramani", City: "Chennai", State: "TN", Country: "India", Pincode: "600113"}
	att, _ := f.attendance(employeeID, 2, 2026)
	p.AttendanceSummary = *att
	return p, nil
}

func (f *Fake) attendance(employeeID string, month, year int) (*model.AttendanceSummary, error) {
	if _, ok := f.credentials[employeeID]; !ok {
		return nil, notFound("employee attendance", employeeID)
	}
	return &model.AttendanceSummary{
		Month:                month,
		Year:                 year,
		WorkingDays:          20,
		PresentDays:          18,
		AbsentDays:           0,
		LeaveDays:            2,
		OvertimeHours:        6.5,
		AttendancePercentage: 90,
		DailyAttendance: []model.DailyAttendance{
			{Date: fmt.Sprintf("%04d-%02d-02", year, month), Status: "Present", InTime: "09:05", OutTime: "18:10", WorkingHours: 9.1},
			{Date: fmt.Sprintf("%04d-%02d-03", year, month), Status: "Present", InTime: "08:58", OutTime: "18:02", WorkingHours: 9.1},
			{Date: fmt.Sprintf("%04d-%02d-09", year, month), Status: "Leave"},
		},
	}, nil
}

func (f *Fake) payslip(employeeID, month, year string) (*model.Payslip, error) {
	if _, ok := f.credentials[employeeID]; !ok {
		return nil, notFound("payslip", employeeID)
	}
	return &model.Payslip{
		EmployeeID:  employeeID,
		Month:       month,
		Year:        year,
		BasicSalary: 50000,
		Allowances: map[string]float64{
			"hra":       15000,
			"transport": 3000,
			"medical":   2000,
		},
		Deductions: map[string]float64{
			"pf":        6000,
			"tax":       8000,
			"insurance": 1000,
		},
		GrossSalary: 70000,
		NetSalary:   55000,
		PayPeriod:   month + "/" + year,
		PayDate:     fmt.Sprintf("%s-%s-28", year, month),
	}, nil
}

func (f *Fake) payslips(employeeID string) ([]model.PayslipSummary, error) {
	if _, ok := f.credentials[employeeID]; !ok {
		return nil, notFound("payslips", employeeID)
	}
	out := make([]model.PayslipSummary, 0, 3)
	for _, period := range []string{"2025-12", "2026-01", "2026-02"} {
		out = append(out, model.PayslipSummary{
			PayPeriod:  period,
			Basic:      50000,
			HRA:        20000,
			Conveyance: 1600,
			Medical:    1250,
			Special:    7150,
			Gross:      80000,
			PF:         6000,
			Tax:        8500,
			Net:        65500,
			PayDate:    period + "-28",
		})
	}
	return out, nil
}

func (f *Fake) leaveTypes() []model.LeaveType {
	return []model.LeaveType{
		{Code: "ANNUAL", Name: "Annual Leave", MaxDaysPerYear: 25, RequiresApproval: true},
		{Code: "SICK", Name: "Sick Leave", MaxDaysPerYear: 10, RequiresApproval: false},
		{Code: "CASUAL", Name: "Casual Leave", MaxDaysPerYear: 12, RequiresApproval: true},
	}
}

func (f *Fake) leaveBalance(employeeID string) (*model.LeaveBalance, error) {
	if _, ok := f.credentials[employeeID]; !ok {
		return nil, notFound("leave balance", employeeID)
	}
	return &model.LeaveBalance{
		EmployeeID: employeeID,
		Annual:     model.LeaveCategoryBalance{Total: 25, Used: 8, Remaining: 17},
		Sick:       model.LeaveCategoryBalance{Total: 10, Used: 2, Remaining: 8},
		Casual:     model.LeaveCategoryBalance{Total: 12, Used: 5, Remaining: 7},
		Year:       2026,
	}, nil
}

func (f *Fake) leaveRequests(employeeID string) ([]model.LeaveRequest, error) {
	if _, ok := f.credentials[employeeID]; !ok {
		return nil, notFound("leave requests", employeeID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.LeaveRequest, len(f.requests[employeeID]))
	copy(out, f.requests[employeeID])
	return out, nil
}

func (f *Fake) submitLeaveRequest(employeeID string, sub model.LeaveSubmission) (*model.LeaveSubmissionResult, error) {
	if _, ok := f.credentials[employeeID]; !ok {
		return nil, notFound("leave request", employeeID)
	}
	days, err := daysBetween(sub.FromDate, sub.ToDate)
	if err != nil {
		return nil, &sap.Error{Kind: sap.KindParse, Function: "leave request", Err: err}
	}

	f.mu.Lock()
	f.nextRequest++
	requestID := fmt.Sprintf("REQ-2026-%03d", f.nextRequest)
	f.requests[employeeID] = append(f.requests[employeeID], model.LeaveRequest{
		RequestID:   requestID,
		EmployeeID:  employeeID,
		LeaveType:   sub.LeaveType,
		FromDate:    sub.FromDate,
		ToDate:      sub.ToDate,
		Days:        days,
		Reason:      sub.Reason,
		Status:      model.LeaveStatusPending,
		AppliedDate: time.Now().Format("2006-01-02"),
	})
	f.mu.Unlock()

	return &model.LeaveSubmissionResult{
		RequestID:        requestID,
		Status:           "submitted",
		Message:          "Leave request submitted successfully",
		ApprovalRequired: true,
	}, nil
}

func (f *Fake) cancelLeaveRequest(employeeID, requestID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.requests[employeeID] {
		if r.RequestID == requestID {
			if r.Status != model.LeaveStatusPending {
				return &sap.Error{
					Kind:     sap.KindDenied,
					Function: "leave cancel",
					Err:      fmt.Errorf("request %s is %s, only pending requests can be cancelled", requestID, r.Status),
				}
			}
			f.requests[employeeID][i].Status = model.LeaveStatusCancelled
			f.requests[employeeID][i].CancelReason = reason
			return nil
		}
	}
	return notFound("leave cancel", requestID)
}

func (f *Fake) leavePolicy() *model.LeavePolicy {
	return &model.LeavePolicy{
		EffectiveDate: "2026-01-01",
		Types:         f.leaveTypes(),
		Notes: []string{
			"Annual leave must be applied at least 7 days in advance.",
			"Sick leave beyond 3 consecutive days requires a medical certificate.",
			"Unused casual leave lapses at year end.",
		},
	}
}

func daysBetween(fromDate, toDate string) (int, error) {
	from, err := time.Parse("2006-01-02", fromDate)
	if err != nil {
		return 0, err
	}
	to, err := time.Parse("2006-01-02", toDate)
	if err != nil {
		return 0, err
	}
	if to.Before(from) {
		return 0, fmt.Errorf("to date precedes from date")
	}
	return int(to.Sub(from).Hours()/24) + 1, nil
}
