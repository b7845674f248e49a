package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sapportal/internal/audit"
	"sapportal/internal/gateway"
	"sapportal/internal/middleware"
	"sapportal/pkg/jwtutil"
	"sapportal/pkg/logger"
	"sapportal/prometheus"
)

// CustomerAuth serves the customer portal authentication endpoints
type CustomerAuth struct {
	gw    gateway.Customer
	audit *audit.Store
}

// NewCustomerAuth builds the handler
func NewCustomerAuth(gw gateway.Customer, store *audit.Store) *CustomerAuth {
	return &CustomerAuth{gw: gw, audit: store}
}

// Login authenticates against the SAP SOAP service and issues a token
func (h *CustomerAuth) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.WithLabelValues("customer").Inc()

	var req struct {
		CustomerID string `json:"customerId"`
		Password   string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		prometheus.RecordAuthError("invalid_request")
		return respondMessage(c, http.StatusBadRequest, "invalid request")
	}
	if req.CustomerID == "" || req.Password == "" {
		prometheus.RecordAuthError("invalid_request")
		return respondMessage(c, http.StatusBadRequest, "customer ID and password are required")
	}

	ctx := c.Request().Context()
	if err := h.gw.Authenticate(ctx, req.CustomerID, req.Password); err != nil {
		h.recordLogin(c, req.CustomerID, false, "authentication failed")
		prometheus.RecordAuthError("invalid_credentials")
		log.Warn("Customer login rejected", zap.String("customer_id", req.CustomerID))
		return respondUpstream(c, "customer login", err)
	}

	profile, err := h.gw.Profile(ctx, req.CustomerID)
	if err != nil {
		h.recordLogin(c, req.CustomerID, false, "profile fetch failed")
		return respondUpstream(c, "customer profile", err)
	}

	token, err := jwtutil.GenerateToken(profile.CustomerID, profile.Name, "customer", "Customer", "")
	if err != nil {
		log.Error("Token generation failed", zap.Error(err))
		return respondMessage(c, http.StatusInternalServerError, "could not issue token")
	}

	h.recordLogin(c, req.CustomerID, true, "")
	prometheus.IncreaseActiveTokens()
	log.Info("Customer logged in", zap.String("customer_id", profile.CustomerID))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
		"user":    profile,
	})
}

// Logout acknowledges the logout; tokens are stateless and discarded client side
func (h *CustomerAuth) Logout(c echo.Context) error {
	logger.FromEcho(c).Info("Customer logged out", zap.String("customer_id", subjectID(c)))
	prometheus.DecreaseActiveTokens()
	return respondMessage(c, http.StatusOK, "logged out")
}

// Verify returns the claims of a valid token
func (h *CustomerAuth) Verify(c echo.Context) error {
	claims, ok := c.Get(middleware.ClaimsKey).(*jwtutil.PortalClaims)
	if !ok {
		return respondMessage(c, http.StatusUnauthorized, "invalid token")
	}
	return respondData(c, echo.Map{
		"customerId": claims.SubjectID,
		"name":       claims.Name,
		"portal":     claims.Portal,
		"role":       claims.Role,
	})
}

func (h *CustomerAuth) recordLogin(c echo.Context, id string, success bool, reason string) {
	requestID, _ := c.Get(middleware.RequestIDKey).(string)
	if err := h.audit.RecordLogin(c.Request().Context(), &audit.LoginEvent{
		Portal:    "customer",
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
