package gateway

import (
	"context"
	"errors"
	"testing"

	"sapportal/internal/model"
	"sapportal/internal/sap"
)

func TestFakeAuthenticateDemoCredentials(t *testing.T) {
	f := NewFake()
	ctx := context.Background()

	tests := []struct {
		name     string
		id       string
		password string
		wantErr  bool
	}{
		{"customer accepted", "CUST001", "password123", false},
		{"vendor accepted", "VENDOR001", "password123", false},
		{"wrong password", "CUST001", "hunter2", true},
		{"unknown id", "CUST999", "password123", true},
		{"empty password", "VENDOR001", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := f.Authenticate(ctx, tc.id, tc.password)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Errorf("Authenticate(%s) = %v, want ErrInvalidCredentials", tc.id, err)
				}
			} else if err != nil {
				t.Errorf("Authenticate(%s): %v", tc.id, err)
			}
		})
	}
}

func TestFakeEmployeeAuthenticate(t *testing.T) {
	emp := NewFakeEmployee(NewFake())
	ctx := context.Background()

	ok, err := emp.Authenticate(ctx, "EMP001", "password123")
	if err != nil || !ok {
		t.Errorf("EMP001/password123 = %v, %v, want true", ok, err)
	}
	ok, err = emp.Authenticate(ctx, "EMP001", "wrong")
	if err != nil || ok {
		t.Errorf("EMP001/wrong = %v, %v, want false", ok, err)
	}
	exists, err := emp.CheckExistence(ctx, "EMP001")
	if err != nil || !exists {
		t.Errorf("CheckExistence(EMP001) = %v, %v", exists, err)
	}
	exists, err = emp.CheckExistence(ctx, "CUST001")
	if err != nil || exists {
		t.Errorf("CheckExistence(CUST001) = %v, %v, want false", exists, err)
	}
}

func TestFakeUnknownSubjectIsNotFound(t *testing.T) {
	f := NewFake()
	ctx := context.Background()

	if _, err := f.Profile(ctx, "CUST999"); !sap.IsNotFound(err) {
		t.Errorf("Profile(CUST999) err = %v, want not found", err)
	}
	if _, err := NewFakeVendor(f).Profile(ctx, "VENDOR999"); !sap.IsNotFound(err) {
		t.Errorf("vendor Profile(VENDOR999) err = %v, want not found", err)
	}
	if _, err := NewFakeEmployee(f).Profile(ctx, "EMP999"); !sap.IsNotFound(err) {
		t.Errorf("employee Profile(EMP999) err = %v, want not found", err)
	}
}

func TestFakeLeaveRequestLifecycle(t *testing.T) {
	emp := NewFakeEmployee(NewFake())
	ctx := context.Background()

	before, err := emp.LeaveRequests(ctx, "EMP001")
	if err != nil {
		t.Fatal(err)
	}

	result, err := emp.SubmitLeaveRequest(ctx, "EMP001", model.LeaveSubmission{
		LeaveType: "ANNUAL",
		FromDate:  "2026-05-04",
		ToDate:    "2026-05-08",
		Reason:    "Conference",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.RequestID == "" || result.Status != "submitted" {
		t.Fatalf("unexpected result %+v", result)
	}

	after, err := emp.LeaveRequests(ctx, "EMP001")
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("history grew from %d to %d", len(before), len(after))
	}
	var submitted *model.LeaveRequest
	for i := range after {
		if after[i].RequestID == result.RequestID {
			submitted = &after[i]
		}
	}
	if submitted == nil {
		t.Fatalf("submitted request %s not in history", result.RequestID)
	}
	if submitted.Days != 5 || submitted.Status != model.LeaveStatusPending {
		t.Errorf("submitted = %+v", submitted)
	}

	if err := emp.CancelLeaveRequest(ctx, "EMP001", result.RequestID, "plans changed"); err != nil {
		t.Fatal(err)
	}
	final, _ := emp.LeaveRequests(ctx, "EMP001")
	for _, r := range final {
		if r.RequestID == result.RequestID && r.Status != model.LeaveStatusCancelled {
			t.Errorf("after cancel, status = %s", r.Status)
		}
	}

	if err := emp.CancelLeaveRequest(ctx, "EMP001", "REQ-NOPE", ""); !sap.IsNotFound(err) {
		t.Errorf("cancel of unknown request = %v, want not found", err)
	}
}

func TestFakeCancelRequiresPendingStatus(t *testing.T) {
	emp := NewFakeEmployee(NewFake())
	ctx := context.Background()

	// REQ-2026-041 is seeded as approved.
	err := emp.CancelLeaveRequest(ctx, "EMP001", "REQ-2026-041", "changed my mind")
	if err == nil || sap.KindOf(err) != sap.KindDenied {
		t.Fatalf("cancel of approved request = %v, want denied", err)
	}
	requests, err := emp.LeaveRequests(ctx, "EMP001")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range requests {
		if r.RequestID == "REQ-2026-041" && r.Status != model.LeaveStatusApproved {
			t.Errorf("rejected cancel mutated status to %s", r.Status)
		}
	}

	result, err := emp.SubmitLeaveRequest(ctx, "EMP001", model.LeaveSubmission{
		LeaveType: "CASUAL",
		FromDate:  "2026-06-01",
		ToDate:    "2026-06-01",
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := emp.CancelLeaveRequest(ctx, "EMP001", result.RequestID, ""); err != nil {
		t.Fatal(err)
	}
	if err := emp.CancelLeaveRequest(ctx, "EMP001", result.RequestID, ""); sap.KindOf(err) != sap.KindDenied {
		t.Errorf("second cancel = %v, want denied", err)
	}
}

func TestFakeLeaveBalance(t *testing.T) {
	emp := NewFakeEmployee(NewFake())
	bal, err := emp.LeaveBalance(context.Background(), "EMP001")
	if err != nil {
		t.Fatal(err)
	}
	for name, cat := range map[string]model.LeaveCategoryBalance{
		"annual": bal.Annual, "sick": bal.Sick, "casual": bal.Casual,
	} {
		if cat.Total != cat.Used+cat.Remaining {
			t.Errorf("%s balance inconsistent: %+v", name, cat)
		}
	}
}
