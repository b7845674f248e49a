package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sapportal/internal/model"
	"sapportal/internal/sap"
	"sapportal/pkg/config"
)

func sapConfig(baseURL string) *config.SAPConfig {
	return &config.SAPConfig{
		BaseURL:     baseURL,
		ServicePath: "/sap/bc/srt/scs/sap/zfy_portal_service",
		Client:      "100",
		User:        "SVCUSER",
		Password:    "svc-secret",
		Language:    "EN",
		Timeout:     5 * time.Second,
	}
}

func soapResponse(output string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<env:Envelope xmlns:env="http://www.w3.org/2003/05/soap-envelope">` +
		`<env:Body>` +
		`<n0:ZFY_PORTAL_1Response xmlns:n0="urn:sap-com:document:sap:rfc:functions">` +
		`<OUTPUT>` + output + `</OUTPUT>` +
		`</n0:ZFY_PORTAL_1Response>` +
		`</env:Body>` +
		`</env:Envelope>`
}

func TestSAPCustomerAuthenticate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/soap+xml; charset=utf-8")
		if strings.Contains(string(body), "<CUSTOMER_ID>CUST001</CUSTOMER_ID>") &&
			strings.Contains(string(body), "<PASSWORD>password123</PASSWORD>") {
			io.WriteString(w, soapResponse("Login Successful"))
			return
		}
		io.WriteString(w, soapResponse("Invalid Credentials"))
	}))
	defer srv.Close()

	g := NewSAPCustomer(sap.NewClient(sapConfig(srv.URL)))
	ctx := context.Background()

	if err := g.Authenticate(ctx, "CUST001", "password123"); err != nil {
		t.Errorf("valid credentials: %v", err)
	}
	if err := g.Authenticate(ctx, "CUST001", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSAPCustomerAuthenticateUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewSAPCustomer(sap.NewClient(sapConfig(srv.URL)))
	err := g.Authenticate(context.Background(), "CUST001", "password123")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("upstream failure must not read as a credential rejection")
	}
	if sap.KindOf(err) != sap.KindUnavailable {
		t.Errorf("kind = %v, want unavailable", sap.KindOf(err))
	}
}

func TestSAPEmployeeAuthenticate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/employee/authenticate" {
			http.NotFound(w, r)
			return
		}
		var payload struct {
			EmployeeID string `json:"employeeId"`
			Password   string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		json.NewEncoder(w).Encode(map[string]bool{
			"authenticated": payload.EmployeeID == "EMP001" && payload.Password == "password123",
		})
	}))
	defer srv.Close()

	g := NewSAPEmployee(sap.NewClient(sapConfig(srv.URL)))
	ctx := context.Background()

	ok, err := g.Authenticate(ctx, "EMP001", "password123")
	if err != nil || !ok {
		t.Errorf("valid credentials = %v, %v", ok, err)
	}
	ok, err = g.Authenticate(ctx, "EMP001", "wrong")
	if err != nil || ok {
		t.Errorf("wrong password = %v, %v", ok, err)
	}
}

func TestSAPEmployeePayslipQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payroll/payslip/EMP001" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("month") != "02" || r.URL.Query().Get("year") != "2026" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(model.Payslip{
			EmployeeID:  "EMP001",
			Month:       "02",
			Year:        "2026",
			BasicSalary: 50000,
			GrossSalary: 70000,
			NetSalary:   55000,
			PayPeriod:   "02/2026",
		})
	}))
	defer srv.Close()

	g := NewSAPEmployee(sap.NewClient(sapConfig(srv.URL)))
	slip, err := g.Payslip(context.Background(), "EMP001", "02", "2026")
	if err != nil {
		t.Fatal(err)
	}
	if slip.NetSalary != 55000 || slip.PayPeriod != "02/2026" {
		t.Errorf("payslip = %+v", slip)
	}
}

func TestSAPEmployeeDetailsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	g := NewSAPEmployee(sap.NewClient(sapConfig(srv.URL)))
	_, err := g.Details(context.Background(), "EMP404")
	if !sap.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}
