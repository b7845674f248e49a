package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"sapportal/internal/gateway"
	"sapportal/internal/middleware"
	"sapportal/pkg/config"
)

func getAs(t *testing.T, h echo.HandlerFunc, target, subject string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SubjectIDKey, subject)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func newEmployeeData() *EmployeeData {
	return NewEmployeeData(gateway.NewFakeEmployee(gateway.NewFake()), nil, config.UploadConfig{
		Dir:          "/tmp/sapportal-test-uploads",
		MaxSizeBytes: 1 << 20,
	})
}

func TestLeaveHistoryPaginationWindow(t *testing.T) {
	h := newEmployeeData()

	rec := getAs(t, h.LeaveHistory, "/api/employee/leave-history?page=1&pageSize=2", "EMP001")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("page 1 size 2 returned %d rows", len(resp.Data))
	}
	if resp.Pagination.Total != 3 || resp.Pagination.TotalPages != 2 {
		t.Errorf("pagination = %+v", resp.Pagination)
	}

	// A page past the end is an empty list, not an error.
	rec = getAs(t, h.LeaveHistory, "/api/employee/leave-history?page=50&pageSize=2", "EMP001")
	if rec.Code != http.StatusOK {
		t.Fatalf("out-of-range page status = %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("out-of-range page returned %d rows", len(resp.Data))
	}
}

func TestPayslipEndpointValidation(t *testing.T) {
	h := newEmployeeData()

	rec := getAs(t, h.Payslip, "/api/employee/payslip/02/2026", "EMP001", "month", "02", "year", "2026")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"netSalary":55000`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = getAs(t, h.Payslip, "/api/employee/payslip/13/2026", "EMP001", "month", "13", "year", "2026")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("month 13 status = %d", rec.Code)
	}
}

func TestWorkingDaysEndpoint(t *testing.T) {
	h := newEmployeeData()

	rec := postJSON(t, h.WorkingDays, "/api/employee/calculate-working-days",
		`{"fromDate":"2026-03-02","toDate":"2026-03-08"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"workingDays":5`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = postJSON(t, h.WorkingDays, "/api/employee/calculate-working-days",
		`{"fromDate":"2026-03-08","toDate":"2026-03-02"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("reversed range status = %d", rec.Code)
	}
}

func TestLeaveExportIsCSVAttachment(t *testing.T) {
	h := newEmployeeData()

	rec := getAs(t, h.ExportLeaveReport, "/api/employee/leave-report/export", "EMP001")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "attachment") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.Contains(rec.Body.String(), "Request ID") {
		t.Errorf("export body missing header row: %s", rec.Body.String())
	}
}

func TestProfileUnknownEmployeeIs404(t *testing.T) {
	h := newEmployeeData()

	rec := getAs(t, h.Profile, "/api/employee/profile", "EMP9999")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body = %s", rec.Code, rec.Body.String())
	}
}
