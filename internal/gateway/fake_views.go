package gateway

import (
	"context"

	"sapportal/internal/model"
)

// The three portal interfaces disagree on Profile and Authenticate
// signatures, so the shared fixture state is wrapped in one view per portal.

// FakeCustomer is the customer portal view of the fixtures
type FakeCustomer struct{ *Fake }

// FakeVendor is the vendor portal view of the fixtures
type FakeVendor struct{ *Fake }

// FakeEmployee is the employee portal view of the fixtures
type FakeEmployee struct{ *Fake }

var (
	_ Customer = FakeCustomer{}
	_ Vendor   = FakeVendor{}
	_ Employee = FakeEmployee{}
)

// NewFakeCustomer wraps the fixtures for the customer portal
func NewFakeCustomer(f *Fake) FakeCustomer { return FakeCustomer{f} }

// NewFakeVendor wraps the fixtures for the vendor portal
func NewFakeVendor(f *Fake) FakeVendor { return FakeVendor{f} }

// NewFakeEmployee wraps the fixtures for the employee portal
func NewFakeEmployee(f *Fake) FakeEmployee { return FakeEmployee{f} }

// Profile returns the demo vendor master record
func (v FakeVendor) Profile(ctx context.Context, vendorID string) (*model.VendorProfile, error) {
	return v.vendorProfile(vendorID)
}

// BusinessSummary returns the demo transaction counters
func (v FakeVendor) BusinessSummary(ctx context.Context, vendorID string) (*model.BusinessSummary, error) {
	return v.businessSummary(vendorID)
}

// RFQs returns the demo RFQ list
func (v FakeVendor) RFQs(ctx context.Context, vendorID string) ([]model.RFQ, error) {
	return v.rfqs(vendorID)
}

// PurchaseOrders returns the demo purchase order list
func (v FakeVendor) PurchaseOrders(ctx context.Context, vendorID string) ([]model.PurchaseOrder, error) {
	return v.purchaseOrders(vendorID)
}

// GoodsReceipts returns the demo goods receipt list
func (v FakeVendor) GoodsReceipts(ctx context.Context, vendorID string) ([]model.GoodsReceipt, error) {
	return v.goodsReceipts(vendorID)
}

// Authenticate validates demo employee credentials
func (e FakeEmployee) Authenticate(ctx context.Context, employeeID, password string) (bool, error) {
	return e.authenticateEmployee(employeeID, password)
}

// Profile returns the demo HR master record
func (e FakeEmployee) Profile(ctx context.Context, employeeID string) (*model.EmployeeProfile, error) {
	return e.employeeProfile(employeeID)
}

// UpdateProfile accepts and discards the update after checking the subject
func (e FakeEmployee) UpdateProfile(ctx context.Context, employeeID string, update *model.ProfileUpdate) error {
	if _, ok := e.credentials[employeeID]; !ok {
		return notFound("employee profile update", employeeID)
	}
	return nil
}

// Attendance returns the demo attendance roll-up
func (e FakeEmployee) Attendance(ctx context.Context, employeeID string, month, year int) (*model.AttendanceSummary, error) {
	return e.attendance(employeeID, month, year)
}

// Payslip returns the demo salary statement
func (e FakeEmployee) Payslip(ctx context.Context, employeeID, month, year string) (*model.Payslip, error) {
	return e.payslip(employeeID, month, year)
}

// Payslips returns the demo payslip history
func (e FakeEmployee) Payslips(ctx context.Context, employeeID string) ([]model.PayslipSummary, error) {
	return e.payslips(employeeID)
}

// LeaveTypes returns the demo leave categories
func (e FakeEmployee) LeaveTypes(ctx context.Context) ([]model.LeaveType, error) {
	return e.leaveTypes(), nil
}

// LeaveBalance returns the demo per-type balance
func (e FakeEmployee) LeaveBalance(ctx context.Context, employeeID string) (*model.LeaveBalance, error) {
	return e.leaveBalance(employeeID)
}

// LeaveRequests returns the demo leave history
func (e FakeEmployee) LeaveRequests(ctx context.Context, employeeID string) ([]model.LeaveRequest, error) {
	return e.leaveRequests(employeeID)
}

// SubmitLeaveRequest records a new demo leave application
func (e FakeEmployee) SubmitLeaveRequest(ctx context.Context, employeeID string, sub model.LeaveSubmission) (*model.LeaveSubmissionResult, error) {
	return e.submitLeaveRequest(employeeID, sub)
}

// CancelLeaveRequest cancels a demo leave application
func (e FakeEmployee) CancelLeaveRequest(ctx context.Context, employeeID, requestID, reason string) error {
	return e.cancelLeaveRequest(employeeID, requestID, reason)
}

// LeavePolicy returns the demo company policy
func (e FakeEmployee) LeavePolicy(ctx context.Context) (*model.LeavePolicy, error) {
	return e.leavePolicy(), nil
}
