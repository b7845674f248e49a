package handler

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sapportal/internal/audit"
	"sapportal/internal/gateway"
	"sapportal/internal/middleware"
	"sapportal/pkg/jwtutil"
	"sapportal/pkg/logger"
	"sapportal/prometheus"
)

var employeeIDPattern = regexp.MustCompile(`^[A-Z0-9]{4,12}$`)

// EmployeeAuth serves the employee portal authentication endpoints. Login
// follows the SAP PO sequence: check existence, authenticate, fetch details,
// sign the token.
type EmployeeAuth struct {
	gw    gateway.Employee
	audit *audit.Store
}

// NewEmployeeAuth builds the handler
func NewEmployeeAuth(gw gateway.Employee, store *audit.Store) *EmployeeAuth {
	return &EmployeeAuth{gw: gw, audit: store}
}

// Login authenticates against the SAP PO interface and issues a token
func (h *EmployeeAuth) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.WithLabelValues("employee").Inc()

	var req struct {
		EmployeeID string `json:"employeeId"`
		Password   string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		prometheus.RecordAuthError("invalid_request")
		return respondMessage(c, http.StatusBadRequest, "invalid request")
	}
	if req.EmployeeID == "" || req.Password == "" {
		prometheus.RecordAuthError("invalid_request")
		return respondMessage(c, http.StatusBadRequest, "employee ID and password are required")
	}
	if !employeeIDPattern.MatchString(req.EmployeeID) {
		prometheus.RecordAuthError("invalid_request")
		return respondMessage(c, http.StatusBadRequest, "invalid employee ID format")
	}

	ctx := c.Request().Context()

	exists, err := h.gw.CheckExistence(ctx, req.EmployeeID)
	if err != nil {
		h.recordLogin(c, req.EmployeeID, false, "existence check failed")
		return respondUpstream(c, "employee existence", err)
	}
	if !exists {
		h.recordLogin(c, req.EmployeeID, false, "unknown employee")
		prometheus.RecordAuthError("invalid_credentials")
		return respondMessage(c, http.StatusUnauthorized, "invalid credentials")
	}

	authenticated, err := h.gw.Authenticate(ctx, req.EmployeeID, req.Password)
	if err != nil {
		h.recordLogin(c, req.EmployeeID, false, "authentication failed")
		return respondUpstream(c, "employee authenticate", err)
	}
	if !authenticated {
		h.recordLogin(c, req.EmployeeID, false, "wrong password")
		prometheus.RecordAuthError("invalid_credentials")
		log.Warn("Employee login rejected", zap.String("employee_id", req.EmployeeID))
		return respondMessage(c, http.StatusUnauthorized, "invalid credentials")
	}

	details, err := h.gw.Details(ctx, req.EmployeeID)
	if err != nil {
		h.recordLogin(c, req.EmployeeID, false, "details fetch failed")
		return respondUpstream(c, "employee details", err)
	}

	token, err := jwtutil.GenerateToken(details.EmployeeID, details.Name, "employee", details.Role, details.Department)
	if err != nil {
		log.Error("Token generation failed", zap.Error(err))
		return respondMessage(c, http.StatusInternalServerError, "could not issue token")
	}

	h.recordLogin(c, req.EmployeeID, true, "")
	prometheus.IncreaseActiveTokens()
	log.Info("Employee logged in",
		zap.String("employee_id", details.EmployeeID),
		zap.String("department", details.Department))

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"token":    token,
		"employee": details,
	})
}

// Logout acknowledges the logout
func (h *EmployeeAuth) Logout(c echo.Context) error {
	logger.FromEcho(c).Info("Employee logged out", zap.String("employee_id", subjectID(c)))
	prometheus.DecreaseActiveTokens()
	return respondMessage(c, http.StatusOK, "logged out")
}

// Verify returns the claims of a valid token
func (h *EmployeeAuth) Verify(c echo.Context) error {
	claims, ok := c.Get(middleware.ClaimsKey).(*jwtutil.PortalClaims)
	if !ok {
		return respondMessage(c, http.StatusUnauthorized, "invalid token")
	}
	return respondData(c, echo.Map{
		"employeeId": claims.SubjectID,
		"name":       claims.Name,
		"portal":     claims.Portal,
		"role":       claims.Role,
		"department": claims.Department,
	})
}

func (h *EmployeeAuth) recordLogin(c echo.Context, id string, success bool, reason string) {
	requestID, _ := c.Get(middleware.RequestIDKey).(string)
	if err := h.audit.RecordLogin(c.Request().Context(), &audit.LoginEvent{
		Portal:    "employee",
		SubjectID: id,
		Success:   success,
		Reason:    reason,
		ClientIP:  c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		RequestID: requestID,
	}); err != nil {
		logger.FromEcho(c).Warn("Audit write failed", zap.Error(err))
	}
}
