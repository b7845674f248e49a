package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sapportal/pkg/jwtutil"
	"sapportal/pkg/logger"
	"sapportal/prometheus"
)

// Context keys set by AuthMiddleware
const (
	SubjectIDKey  = "subject_id"
	SubjectRole   = "subject_role"
	SubjectPortal = "subject_portal"
	ClaimsKey     = "claims"
)

// AuthMiddleware validates the Bearer token and stores the claims in the
// echo context
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid authorization format, expected Bearer token"})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid or expired token"})
		}

		c.Set(SubjectIDKey, claims.SubjectID)
		c.Set(SubjectRole, claims.Role)
		c.Set(SubjectPortal, claims.Portal)
		c.Set(ClaimsKey, claims)

		return next(c)
	}
}

// RequireSubject enforces the coarse authorization rule: the token subject
// must equal the path parameter, or the token role must be Admin.
func RequireSubject(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, _ := c.Get(SubjectIDKey).(string)
			role, _ := c.Get(SubjectRole).(string)
			target := c.Param(param)
			if target != "" && target != subject && !strings.EqualFold(role, "admin") {
				logger.FromEcho(c).Warn("Subject mismatch",
					zap.String("subject", subject),
					zap.String("target", target))
				prometheus.RecordAuthError("subject_mismatch")
				return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "access denied"})
			}
			return next(c)
		}
	}
}
