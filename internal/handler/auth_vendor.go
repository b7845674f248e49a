package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sapportal/internal/audit"
	"sapportal/internal/gateway"
	"sapportal/internal/middleware"
	"sapportal/pkg/jwtutil"
	"sapportal/pkg/logger"
	"sapportal/prometheus"
)

// VendorAuth serves the vendor portal authentication endpoints
type VendorAuth struct {
	gw    gateway.Vendor
	audit *audit.Store
}

// NewVendorAuth builds the handler
func NewVendorAuth(gw gateway.Vendor, store *audit.Store) *VendorAuth {
	return &VendorAuth{gw: gw, audit: store}
}

// Login authenticates against the SAP SOAP service and issues a token
func (h *VendorAuth) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.WithLabelValues("vendor").Inc()

	var req struct {
		VendorID string `json:"vendorId"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		prometheus.RecordAuthError("invalid_request")
		return respondMessage(c, http.StatusBadRequest, "invalid request")
	}
	if req.VendorID == "" || req.Password == "" {
		prometheus.RecordAuthError("invalid_request")
		return respondMessage(c, http.StatusBadRequest, "vendor ID and password are required")
	}

	ctx := c.Request().Context()
	if err := h.gw.Authenticate(ctx, req.VendorID, req.Password); err != nil {
		h.recordLogin(c, req.VendorID, false, "authentication failed")
		prometheus.RecordAuthError("invalid_credentials")
		log.Warn("Vendor login rejected", zap.String("vendor_id", req.VendorID))
		return respondUpstream(c, "vendor login", err)
	}

	profile, err := h.gw.Profile(ctx, req.VendorID)
	if err != nil {
		h.recordLogin(c, req.VendorID, false, "profile fetch failed")
		return respondUpstream(c, "vendor profile", err)
	}

	token, err := jwtutil.GenerateToken(profile.VendorID, profile.CompanyName, "vendor", "Vendor", "")
	if err != nil {
		log.Error("Token generation failed", zap.Error(err))
		return respondMessage(c, http.StatusInternalServerError, "could not issue token")
	}

	h.recordLogin(c, req.VendorID, true, "")
	prometheus.IncreaseActiveTokens()
	log.Info("Vendor logged in", zap.String("vendor_id", profile.VendorID))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
		"vendor":  profile,
	})
}

// Logout acknowledges the logout
func (h *VendorAuth) Logout(c echo.Context) error {
	logger.FromEcho(c).Info("Vendor logged out", zap.String("vendor_id", subjectID(c)))
	prometheus.DecreaseActiveTokens()
	return respondMessage(c, http.StatusOK, "logged out")
}

// Verify returns the claims of a valid token
func (h *VendorAuth) Verify(c echo.Context) error {
	claims, ok := c.Get(middleware.ClaimsKey).(*jwtutil.PortalClaims)
	if !ok {
		return respondMessage(c, http.StatusUnauthorized, "invalid token")
	}
	return respondData(c, echo.Map{
		"vendorId": claims.SubjectID,
		"name":     claims.Name,
		"portal":   claims.Portal,
		"role":     claims.Role,
	})
}

// Validate reports token validity without failing the request; the vendor
// front end polls this endpoint, so a bad token is {valid:false}, not a 401.
func (h *VendorAuth) Validate(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return c.JSON(http.StatusOK, echo.Map{"valid": false})
	}
	claims, err := jwtutil.ValidateToken(parts[1])
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"valid": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"valid": true, "vendorId": claims.SubjectID})
}

func (h *VendorAuth) recordLogin(c echo.Context, id string, success bool, reason string) {
	requestID, _ := c.Get(middleware.RequestIDKey).(string)
	if err := h.audit.RecordLogin(c.Request().Context(), &audit.LoginEvent{
		Portal:    "vendor",
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
