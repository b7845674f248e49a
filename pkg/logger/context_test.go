package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestMiddlewarePropagatesLoggerToRequestContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/customer/dashboard", nil)
	req.Header.Set("X-Request-ID", "test-request-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware()(func(c echo.Context) error {
		fromEcho := FromEcho(c)
		fromCtx := FromContext(c.Request().Context())
		if fromCtx != fromEcho {
			t.Error("request context logger differs from the echo context logger")
		}
		if fromCtx == GetLogger() {
			t.Error("request context carries the global logger, not the request-scoped one")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
}
