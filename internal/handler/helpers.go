// Package handler holds the echo handlers of the three portal servers.
// Handlers carry their dependencies in structs because the binaries share
// these packages; responses follow the {success, data|message} shape.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sapportal/internal/gateway"
	"sapportal/internal/middleware"
	"sapportal/internal/sap"
	"sapportal/pkg/logger"
)

func respondData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": status < 400, "message": message})
}

// respondUpstream maps a gateway failure to the client-facing status. Subject
// credentials map to 401; absent records to 404; everything else is a 500
// with no upstream detail leaked.
func respondUpstream(c echo.Context, op string, err error) error {
	log := logger.FromEcho(c)
	if errors.Is(err, gateway.ErrInvalidCredentials) {
		return respondMessage(c, http.StatusUnauthorized, "invalid credentials")
	}
	if sap.IsNotFound(err) {
		return respondMessage(c, http.StatusNotFound, "record not found")
	}
	log.Error("SAP gateway call failed",
		zap.String("operation", op),
		zap.String("kind", sap.KindOf(err).String()),
		zap.Error(err))
	return respondMessage(c, http.StatusInternalServerError, "SAP service unavailable")
}

// subjectID reads the authenticated subject set by the auth middleware
func subjectID(c echo.Context) string {
	id, _ := c.Get(middleware.SubjectIDKey).(string)
	return id
}

// pageParams reads ?page and ?pageSize with the portal defaults
func pageParams(c echo.Context) (page, size int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(c.QueryParam("pageSize"))
	if size < 1 || size > 100 {
		size = 10
	}
	return page, size
}

func paged(c echo.Context, items interface{}, total, page, size, totalPages int) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    items,
		"pagination": echo.Map{
			"page":       page,
			"pageSize":   size,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}
