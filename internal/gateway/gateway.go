// Package gateway defines the portal-facing view of the SAP backend. Each
// portal talks to one interface; implementations either call SAP through
// internal/sap or serve canned fixtures for local development. Failures are
// typed *sap.Error values, never substituted data.
package gateway

import (
	"context"

	"sapportal/internal/model"
)

var (
	_ Customer = (*SAPCustomer)(nil)
	_ Vendor   = (*SAPVendor)(nil)
	_ Employee = (*SAPEmployee)(nil)
)

// Customer is the customer portal's view of SAP
type Customer interface {
	Authenticate(ctx context.Context, customerID, password string) error
	Profile(ctx context.Context, customerID string) (*model.CustomerProfile, error)
	Dashboard(ctx context.Context, customerID string) (*model.Dashboard, error)
	Inquiries(ctx context.Context, customerID string) ([]model.Inquiry, error)
	SalesOrders(ctx context.Context, customerID string) ([]model.SalesOrder, error)
	Deliveries(ctx context.Context, customerID string) ([]model.Delivery, error)
	Orders(ctx context.Context, customerID string) ([]model.Order, error)
	Invoices(ctx context.Context, customerID string) ([]model.Invoice, error)
	Payments(ctx context.Context, customerID string) ([]model.Payment, error)
	Memos(ctx context.Context, customerID string) ([]model.Memo, error)
}

// Vendor is the vendor portal's view of SAP
type Vendor interface {
	Authenticate(ctx context.Context, vendorID, password string) error
	Profile(ctx context.Context, vendorID string) (*model.VendorProfile, error)
	BusinessSummary(ctx context.Context, vendorID string) (*model.BusinessSummary, error)
	RFQs(ctx context.Context, vendorID string) ([]model.RFQ, error)
	PurchaseOrders(ctx context.Context, vendorID string) ([]model.PurchaseOrder, error)
	GoodsReceipts(ctx context.Context, vendorID string) ([]model.GoodsReceipt, error)
	Invoices(ctx context.Context, vendorID string) ([]model.Invoice, error)
	Payments(ctx context.Context, vendorID string) ([]model.Payment, error)
	Memos(ctx context.Context, vendorID string) ([]model.Memo, error)
}

// Employee is the employee portal's view of the SAP PO interface
type Employee interface {
	CheckExistence(ctx context.Context, employeeID string) (bool, error)
	Authenticate(ctx context.Context, employeeID, password string) (bool, error)
	Details(ctx context.Context, employeeID string) (*model.EmployeeDetails, error)
	Profile(ctx context.Context, employeeID string) (*model.EmployeeProfile, error)
	UpdateProfile(ctx context.Context, employeeID string, update *model.ProfileUpdate) error
	Attendance(ctx context.Context, employeeID string, month, year int) (*model.AttendanceSummary, error)
	Payslip(ctx context.Context, employeeID, month, year string) (*model.Payslip, error)
	Payslips(ctx context.Context, employeeID string) ([]model.PayslipSummary, error)
	LeaveTypes(ctx context.Context) ([]model.LeaveType, error)
	LeaveBalance(ctx context.Context, employeeID string) (*model.LeaveBalance, error)
	LeaveRequests(ctx context.Context, employeeID string) ([]model.LeaveRequest, error)
	SubmitLeaveRequest(ctx context.Context, employeeID string, sub model.LeaveSubmission) (*model.LeaveSubmissionResult, error)
	CancelLeaveRequest(ctx context.Context, employeeID, requestID, reason string) error
	LeavePolicy(ctx context.Context) (*model.LeavePolicy, error)
}
