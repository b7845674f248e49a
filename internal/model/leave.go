package model

// Leave request status strings as stored by SAP. The portal never computes a
// transition itself except cancellation, which stores LeaveStatusCancelled.
const (
	LeaveStatusPending   = "PENDING"
	LeaveStatusApproved  = "APPROVED"
	LeaveStatusRejected  = "REJECTED"
	LeaveStatusCancelled = "CANCELLED"
)

// LeaveType describes one leave category offered by the company
type LeaveType struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	MaxDaysPerYear   int    `json:"maxDaysPerYear"`
	RequiresApproval bool   `json:"requiresApproval"`
}

// LeaveCategoryBalance is entitlement/usage for one leave type
type LeaveCategoryBalance struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// LeaveBalance is the per-employee balance across leave types
type LeaveBalance struct {
	EmployeeID string               `json:"employeeId,omitempty"`
	Annual     LeaveCategoryBalance `json:"annual"`
	Sick       LeaveCategoryBalance `json:"sick"`
	Casual     LeaveCategoryBalance `json:"casual"`
	Maternity  LeaveCategoryBalance `json:"maternity,omitempty"`
	Paternity  LeaveCategoryBalance `json:"paternity,omitempty"`
	Year       int                  `json:"year"`
}

// LeaveRequest is one leave application
type LeaveRequest struct {
	RequestID    string `json:"requestId"`
	EmployeeID   string `json:"employeeId"`
	LeaveType    string `json:"leaveType"`
	FromDate     string `json:"fromDate"`
	ToDate       string `json:"toDate"`
	Days         int    `json:"days"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AppliedDate  string `json:"appliedDate"`
	ApprovedBy   string `json:"approvedBy,omitempty"`
	ApprovedDate string `json:"approvedDate,omitempty"`
	CancelReason string `json:"cancelReason,omitempty"`
}

// LeaveSubmission is the payload of a new leave application
type LeaveSubmission struct {
	LeaveType string `json:"leaveType"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	Reason    string `json:"reason"`
}

// LeaveSubmissionResult acknowledges a forwarded leave application
type LeaveSubmissionResult struct {
	RequestID        string `json:"requestId"`
	Status           string `json:"status"`
	Message          string `json:"message"`
	ApprovalRequired bool   `json:"approvalRequired"`
}

// LeaveSummary is the analytics roll-up for the leave dashboard
type LeaveSummary struct {
	EmployeeID     string         `json:"employeeId"`
	Year           int            `json:"year"`
	TotalRequested int            `json:"totalRequested"`
	TotalApproved  int            `json:"totalApproved"`
	TotalRejected  int            `json:"totalRejected"`
	TotalCancelled int            `json:"totalCancelled"`
	DaysTaken      int            `json:"daysTaken"`
	ByType         map[string]int `json:"byType"`
}

// LeavePolicy is the company leave policy text block
type LeavePolicy struct {
	EffectiveDate string      `json:"effectiveDate"`
	Types         []LeaveType `json:"types"`
	Notes         []string    `json:"notes,omitempty"`
}
