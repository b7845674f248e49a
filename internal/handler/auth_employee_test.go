package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"sapportal/internal/gateway"
	"sapportal/pkg/config"
	"sapportal/pkg/jwtutil"
)

func initJWT(t *testing.T) {
	t.Helper()
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
}

func postJSON(t *testing.T, h echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestEmployeeLoginIssuesTokenForSubject(t *testing.T) {
	initJWT(t)
	h := NewEmployeeAuth(gateway.NewFakeEmployee(gateway.NewFake()), nil)

	rec := postJSON(t, h.Login, "/api/auth/login", `{"employeeId":"EMP001","password":"password123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success  bool   `json:"success"`
		Token    string `json:"token"`
		Employee struct {
			EmployeeID string `json:"employeeId"`
		} `json:"employee"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Token == "" {
		t.Fatalf("response = %s", rec.Body.String())
	}

	claims, err := jwtutil.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.SubjectID != "EMP001" {
		t.Errorf("token subject = %q, want EMP001", claims.SubjectID)
	}
	if claims.SubjectID != resp.Employee.EmployeeID {
		t.Errorf("token subject %q != response employee %q", claims.SubjectID, resp.Employee.EmployeeID)
	}
	if claims.Portal != "employee" {
		t.Errorf("portal claim = %q", claims.Portal)
	}
}

func TestEmployeeLoginRejectsBadCredentials(t *testing.T) {
	initJWT(t)
	h := NewEmployeeAuth(gateway.NewFakeEmployee(gateway.NewFake()), nil)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"wrong password", `{"employeeId":"EMP001","password":"nope"}`, http.StatusUnauthorized},
		{"unknown employee", `{"employeeId":"EMP9999","password":"password123"}`, http.StatusUnauthorized},
		{"missing password", `{"employeeId":"EMP001"}`, http.StatusBadRequest},
		{"bad id format", `{"employeeId":"e!","password":"x"}`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Login, "/api/auth/login", tc.body)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d, body = %s", rec.Code, tc.want, rec.Body.String())
			}
			if strings.Contains(rec.Body.String(), `"token"`) {
				t.Error("no token may be issued on a failed login")
			}
		})
	}
}

func TestCustomerLoginAgainstFake(t *testing.T) {
	initJWT(t)
	h := NewCustomerAuth(gateway.NewFakeCustomer(gateway.NewFake()), nil)

	rec := postJSON(t, h.Login, "/api/auth/login", `{"customerId":"CUST001","password":"password123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	claims, err := jwtutil.ValidateToken(resp.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.SubjectID != "CUST001" || claims.Portal != "customer" {
		t.Errorf("claims = %+v", claims)
	}

	rec = postJSON(t, h.Login, "/api/auth/login", `{"customerId":"CUST001","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d", rec.Code)
	}
}

func TestVendorLoginAgainstFake(t *testing.T) {
	initJWT(t)
	h := NewVendorAuth(gateway.NewFakeVendor(gateway.NewFake()), nil)

	rec := postJSON(t, h.Login, "/api/auth/login", `{"vendorId":"VENDOR001","password":"password123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	claims, err := jwtutil.ValidateToken(resp.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.SubjectID != "VENDOR001" || claims.Portal != "vendor" {
		t.Errorf("claims = %+v", claims)
	}
}
