package gateway

import (
	"context"
	"net/url"

	"sapportal/internal/model"
	"sapportal/internal/sap"
)

// SAPEmployee talks to the SAP PO employee interface over JSON
type SAPEmployee struct {
	client *sap.Client
}

// NewSAPEmployee wraps a SAP client
func NewSAPEmployee(client *sap.Client) *SAPEmployee {
	return &SAPEmployee{client: client}
}

// CheckExistence verifies the employee exists in the SAP standard table
func (g *SAPEmployee) CheckExistence(ctx context.Context, employeeID string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	payload := map[string]string{"employeeId": employeeID}
	if err := g.client.PostJSON(ctx, "/employee/check-existence", payload, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// Authenticate validates credentials against the SAP custom table
func (g *SAPEmployee) Authenticate(ctx context.Context, employeeID, password string) (bool, error) {
	var out struct {
		Authenticated bool `json:"authenticated"`
	}
	payload := map[string]string{"employeeId": employeeID, "password": password}
	if err := g.client.PostJSON(ctx, "/employee/authenticate", payload, &out); err != nil {
		return false, err
	}
	return out.Authenticated, nil
}

// Details fetches the identity block from SAP HR
func (g *SAPEmployee) Details(ctx context.Context, employeeID string) (*model.EmployeeDetails, error) {
	var out model.EmployeeDetails
	if err := g.client.GetJSON(ctx, "/employee/details/"+url.PathEscape(employeeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the comprehensive HR master record
func (g *SAPEmployee) Profile(ctx context.Context, employeeID string) (*model.EmployeeProfile, error) {
	var out model.EmployeeProfile
	payload := map[string]string{"employeeId": employeeID}
	if err := g.client.PostJSON(ctx, "/employee/profile/comprehensive", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile forwards the changed fields to SAP
func (g *SAPEmployee) UpdateProfile(ctx context.Context, employeeID string, update *model.ProfileUpdate) error {
	payload := struct {
		EmployeeID string `json:"employeeId"`
		*model.ProfileUpdate
	}{EmployeeID: employeeID, ProfileUpdate: update}
	return g.client.PutJSON(ctx, "/employee/profile/update", payload, nil)
}

// Attendance fetches the attendance roll-up for one month
func (g *SAPEmployee) Attendance(ctx context.Context, employeeID string, month, year int) (*model.AttendanceSummary, error) {
	var out model.AttendanceSummary
	payload := map[string]interface{}{
		"employeeId": employeeID,
		"month":      month,
		"year":       year,
	}
	if err := g.client.PostJSON(ctx, "/employee/attendance", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Payslip fetches one month's salary statement
func (g *SAPEmployee) Payslip(ctx context.Context, employeeID, month, year string) (*model.Payslip, error) {
	var out model.Payslip
	query := url.Values{}
	query.Set("month", month)
	query.Set("year", year)
	if err := g.client.GetJSON(ctx, "/payroll/payslip/"+url.PathEscape(employeeID), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Payslips fetches the payslip history list
func (g *SAPEmployee) Payslips(ctx context.Context, employeeID string) ([]model.PayslipSummary, error) {
	var out []model.PayslipSummary
	payload := map[string]string{"employeeId": employeeID}
	if err := g.client.PostJSON(ctx, "/employee/payslips", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LeaveTypes fetches the configured leave categories
func (g *SAPEmployee) LeaveTypes(ctx context.Context) ([]model.LeaveType, error) {
	var out []model.LeaveType
	if err := g.client.GetJSON(ctx, "/leave/types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LeaveBalance fetches the per-type balance from SAP HR
func (g *SAPEmployee) LeaveBalance(ctx context.Context, employeeID string) (*model.LeaveBalance, error) {
	var out model.LeaveBalance
	if err := g.client.GetJSON(ctx, "/leave/balance/"+url.PathEscape(employeeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LeaveRequests fetches the leave history
func (g *SAPEmployee) LeaveRequests(ctx context.Context, employeeID string) ([]model.LeaveRequest, error) {
	var out []model.LeaveRequest
	if err := g.client.GetJSON(ctx, "/leave/requests/"+url.PathEscape(employeeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitLeaveRequest forwards a new leave application to SAP HR
func (g *SAPEmployee) SubmitLeaveRequest(ctx context.Context, employeeID string, sub model.LeaveSubmission) (*model.LeaveSubmissionResult, error) {
	var out model.LeaveSubmissionResult
	payload := struct {
		EmployeeID string `json:"employeeId"`
		model.LeaveSubmission
	}{EmployeeID: employeeID, LeaveSubmission: sub}
	if err := g.client.PostJSON(ctx, "/leave/request", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelLeaveRequest forwards a cancellation to SAP HR
func (g *SAPEmployee) CancelLeaveRequest(ctx context.Context, employeeID, requestID, reason string) error {
	payload := map[string]string{
		"employeeId": employeeID,
		"requestId":  requestID,
		"reason":     reason,
	}
	return g.client.PutJSON(ctx, "/leave/request/"+url.PathEscape(requestID)+"/cancel", payload, nil)
}

// LeavePolicy fetches the company leave policy
func (g *SAPEmployee) LeavePolicy(ctx context.Context) (*model.LeavePolicy, error) {
	var out model.LeavePolicy
	if err := g.client.GetJSON(ctx, "/leave/policy", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
