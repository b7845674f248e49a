package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"sapportal/pkg/config"
	"sapportal/pkg/jwtutil"
)

func setup(t *testing.T) {
	t.Helper()
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "middleware-test-key", ExpirationHours: 1})
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/employee/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := AuthMiddleware(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return rec, reached
}

func TestAuthMiddleware(t *testing.T) {
	setup(t)
	token, err := jwtutil.GenerateToken("EMP001", "Priya Sharma", "employee", "Employee", "Engineering")
	if err != nil {
		t.Fatal(err)
	}

	rec, reached := runAuth(t, "Bearer "+token)
	if !reached || rec.Code != http.StatusOK {
		t.Errorf("valid token: reached=%v status=%d", reached, rec.Code)
	}

	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Basic dXNlcjpwYXNz",
		"garbage token":  "Bearer not.a.token",
	} {
		rec, reached := runAuth(t, header)
		if reached {
			t.Errorf("%s: handler reached", name)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d", name, rec.Code)
		}
	}
}

func TestRequireSubject(t *testing.T) {
	setup(t)
	e := echo.New()

	run := func(subject, role, target string) (*httptest.ResponseRecorder, bool) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(SubjectIDKey, subject)
		c.Set(SubjectRole, role)
		c.SetParamNames("vendorId")
		c.SetParamValues(target)

		reached := false
		h := RequireSubject("vendorId")(func(c echo.Context) error {
			reached = true
			return c.NoContent(http.StatusOK)
		})
		if err := h(c); err != nil {
			t.Fatalf("middleware error: %v", err)
		}
		return rec, reached
	}

	if rec, reached := run("VENDOR001", "Vendor", "VENDOR001"); !reached || rec.Code != http.StatusOK {
		t.Errorf("own record: reached=%v status=%d", reached, rec.Code)
	}
	if rec, reached := run("VENDOR001", "Vendor", "VENDOR002"); reached || rec.Code != http.StatusForbidden {
		t.Errorf("foreign record: reached=%v status=%d", reached, rec.Code)
	}
	if rec, reached := run("ADMIN01", "Admin", "VENDOR002"); !reached || rec.Code != http.StatusOK {
		t.Errorf("admin override: reached=%v status=%d", reached, rec.Code)
	}
}
