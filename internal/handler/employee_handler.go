package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sapportal/internal/audit"
	"sapportal/internal/finance"
	"sapportal/internal/gateway"
	"sapportal/internal/hr"
	"sapportal/internal/model"
	"sapportal/internal/report"
	"sapportal/pkg/config"
	"sapportal/pkg/logger"
	"sapportal/prometheus"
)

// EmployeeData serves the employee portal data endpoints
type EmployeeData struct {
	gw     gateway.Employee
	audit  *audit.Store
	upload config.UploadConfig
}

// NewEmployeeData builds the handler
func NewEmployeeData(gw gateway.Employee, store *audit.Store, upload config.UploadConfig) *EmployeeData {
	return &EmployeeData{gw: gw, audit: store, upload: upload}
}

// Profile returns the caller's comprehensive HR record
func (h *EmployeeData) Profile(c echo.Context) error {
	profile, err := h.gw.Profile(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "employee profile", err)
	}
	return respondData(c, profile)
}

// ProfileByID returns another employee's record; the subject-match middleware
// restricts it to the owner or an Admin token.
func (h *EmployeeData) ProfileByID(c echo.Context) error {
	profile, err := h.gw.Profile(c.Request().Context(), c.Param("employeeId"))
	if err != nil {
		return respondUpstream(c, "employee profile", err)
	}
	return respondData(c, profile)
}

// UpdateProfile forwards the editable fields to SAP
func (h *EmployeeData) UpdateProfile(c echo.Context) error {
	var update model.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return respondMessage(c, http.StatusBadRequest, "invalid request")
	}
	if err := h.gw.UpdateProfile(c.Request().Context(), subjectID(c), &update); err != nil {
		return respondUpstream(c, "employee profile update", err)
	}
	logger.FromEcho(c).Info("Profile updated", zap.String("employee_id", subjectID(c)))
	return respondMessage(c, http.StatusOK, "profile updated")
}

// UploadPhoto stores the profile photo locally and records its metadata
func (h *EmployeeData) UploadPhoto(c echo.Context) error {
	log := logger.FromEcho(c)
	id := subjectID(c)

	file, err := c.FormFile("photo")
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "photo file is required")
	}
	if file.Size > h.upload.MaxSizeBytes {
		return respondMessage(c, http.StatusBadRequest, "photo exceeds the size limit")
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return respondMessage(c, http.StatusBadRequest, "photo must be an image")
	}

	src, err := file.Open()
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "could not read photo")
	}
	defer src.Close()

	dir := filepath.Join(h.upload.Dir, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error("Upload directory not writable", zap.Error(err))
		return respondMessage(c, http.StatusInternalServerError, "could not store photo")
	}
	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	storedPath := filepath.Join(dir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		log.Error("Photo write failed", zap.Error(err))
		return respondMessage(c, http.StatusInternalServerError, "could not store photo")
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		log.Error("Photo write failed", zap.Error(err))
		return respondMessage(c, http.StatusInternalServerError, "could not store photo")
	}

	if err := h.audit.RecordUpload(c.Request().Context(), &audit.UploadedDocument{
		Portal:      "employee",
		SubjectID:   id,
		Kind:        "profile-photo",
		FileName:    file.Filename,
		StoredPath:  storedPath,
		ContentType: contentType,
		SizeBytes:   file.Size,
	}); err != nil {
		log.Warn("Audit write failed", zap.Error(err))
	}

	log.Info("Profile photo stored",
		zap.String("employee_id", id),
		zap.Int64("size", file.Size))
	return respondData(c, echo.Map{"photoUrl": "/uploads/" + id + "/" + storedName})
}

// Attendance returns the monthly attendance roll-up
func (h *EmployeeData) Attendance(c echo.Context) error {
	now := time.Now()
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 2000 {
		year = now.Year()
	}
	summary, err := h.gw.Attendance(c.Request().Context(), subjectID(c), month, year)
	if err != nil {
		return respondUpstream(c, "employee attendance", err)
	}
	return respondData(c, summary)
}

// Payslip returns one month's salary statement
func (h *EmployeeData) Payslip(c echo.Context) error {
	month, year := c.Param("month"), c.Param("year")
	if !validPayPeriod(month, year) {
		return respondMessage(c, http.StatusBadRequest, "invalid pay period")
	}
	slip, err := h.gw.Payslip(c.Request().Context(), subjectID(c), month, year)
	if err != nil {
		return respondUpstream(c, "payslip", err)
	}
	return respondData(c, slip)
}

// Payslips returns the payslip history list
func (h *EmployeeData) Payslips(c echo.Context) error {
	slips, err := h.gw.Payslips(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "payslips", err)
	}
	return respondData(c, slips)
}

// DownloadPayslips streams the payslip history as a CSV attachment
func (h *EmployeeData) DownloadPayslips(c echo.Context) error {
	id := subjectID(c)
	slips, err := h.gw.Payslips(c.Request().Context(), id)
	if err != nil {
		return respondUpstream(c, "payslip export", err)
	}
	out, err := report.PayslipHistoryCSV(slips)
	if err != nil {
		logger.FromEcho(c).Error("Payslip export failed", zap.Error(err))
		return respondMessage(c, http.StatusInternalServerError, "could not build export")
	}
	prometheus.ExportCounter.WithLabelValues("payslips").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="payslips-%s.csv"`, id))
	return c.Blob(http.StatusOK, "text/csv", out)
}

// LeaveTypes returns the configured leave categories
func (h *EmployeeData) LeaveTypes(c echo.Context) error {
	types, err := h.gw.LeaveTypes(c.Request().Context())
	if err != nil {
		return respondUpstream(c, "leave types", err)
	}
	return respondData(c, types)
}

// LeaveBalance returns the per-type balance; guarded by subject match
func (h *EmployeeData) LeaveBalance(c echo.Context) error {
	balance, err := h.gw.LeaveBalance(c.Request().Context(), c.Param("employeeId"))
	if err != nil {
		return respondUpstream(c, "leave balance", err)
	}
	return respondData(c, balance)
}

// LeaveHistory returns the filtered, sorted, paginated leave history
func (h *EmployeeData) LeaveHistory(c echo.Context) error {
	requests, err := h.gw.LeaveRequests(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "leave history", err)
	}
	year, _ := strconv.Atoi(c.QueryParam("year"))
	filtered := hr.FilterHistory(requests, hr.HistoryFilter{
		Status:    c.QueryParam("status"),
		LeaveType: c.QueryParam("leaveType"),
		Year:      year,
	})
	page, size := pageParams(c)
	return paged(c, finance.Page(filtered, page, size), len(filtered), page, size, finance.TotalPages(len(filtered), size))
}

// LeaveRequests returns the raw leave request list
func (h *EmployeeData) LeaveRequests(c echo.Context) error {
	requests, err := h.gw.LeaveRequests(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "leave requests", err)
	}
	return respondData(c, requests)
}

// SubmitLeaveRequest validates and forwards a new leave application
func (h *EmployeeData) SubmitLeaveRequest(c echo.Context) error {
	var sub model.LeaveSubmission
	if err := c.Bind(&sub); err != nil {
		return respondMessage(c, http.StatusBadRequest, "invalid request")
	}
	if sub.LeaveType == "" || sub.FromDate == "" || sub.ToDate == "" {
		return respondMessage(c, http.StatusBadRequest, "leave type and date range are required")
	}
	if _, err := hr.WorkingDays(sub.FromDate, sub.ToDate); err != nil {
		return respondMessage(c, http.StatusBadRequest, "invalid date range")
	}
	result, err := h.gw.SubmitLeaveRequest(c.Request().Context(), subjectID(c), sub)
	if err != nil {
		return respondUpstream(c, "leave submit", err)
	}
	logger.FromEcho(c).Info("Leave request submitted",
		zap.String("employee_id", subjectID(c)),
		zap.String("request_id", result.RequestID),
		zap.String("leave_type", sub.LeaveType))
	return respondData(c, result)
}

// CancelLeaveRequest forwards a cancellation
func (h *EmployeeData) CancelLeaveRequest(c echo.Context) error {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.Bind(&req)
	requestID := c.Param("requestId")
	if err := h.gw.CancelLeaveRequest(c.Request().Context(), subjectID(c), requestID, req.Reason); err != nil {
		return respondUpstream(c, "leave cancel", err)
	}
	logger.FromEcho(c).Info("Leave request cancelled",
		zap.String("employee_id", subjectID(c)),
		zap.String("request_id", requestID))
	return respondMessage(c, http.StatusOK, "leave request cancelled")
}

// LeaveSummary returns the leave analytics roll-up
func (h *EmployeeData) LeaveSummary(c echo.Context) error {
	id := subjectID(c)
	requests, err := h.gw.LeaveRequests(c.Request().Context(), id)
	if err != nil {
		return respondUpstream(c, "leave summary", err)
	}
	year, _ := strconv.Atoi(c.QueryParam("year"))
	if year == 0 {
		year = time.Now().Year()
	}
	return respondData(c, hr.SummarizeLeave(id, year, requests))
}

// ExportLeaveReport streams the leave history as a CSV attachment
func (h *EmployeeData) ExportLeaveReport(c echo.Context) error {
	id := subjectID(c)
	requests, err := h.gw.LeaveRequests(c.Request().Context(), id)
	if err != nil {
		return respondUpstream(c, "leave export", err)
	}
	year, _ := strconv.Atoi(c.QueryParam("year"))
	filtered := hr.FilterHistory(requests, hr.HistoryFilter{
		Status:    c.QueryParam("status"),
		LeaveType: c.QueryParam("leaveType"),
		Year:      year,
	})
	out, err := report.LeaveHistoryCSV(filtered)
	if err != nil {
		logger.FromEcho(c).Error("Leave export failed", zap.Error(err))
		return respondMessage(c, http.StatusInternalServerError, "could not build export")
	}
	prometheus.ExportCounter.WithLabelValues("leave-report").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="leave-report-%s.csv"`, id))
	return c.Blob(http.StatusOK, "text/csv", out)
}

// WorkingDays counts working days between two dates for the leave form
func (h *EmployeeData) WorkingDays(c echo.Context) error {
	var req struct {
		FromDate string `json:"fromDate"`
		ToDate   string `json:"toDate"`
	}
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, http.StatusBadRequest, "invalid request")
	}
	days, err := hr.WorkingDays(req.FromDate, req.ToDate)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, err.Error())
	}
	return respondData(c, echo.Map{
		"fromDate":    req.FromDate,
		"toDate":      req.ToDate,
		"workingDays": days,
	})
}

// LeavePolicy returns the company leave policy
func (h *EmployeeData) LeavePolicy(c echo.Context) error {
	policy, err := h.gw.LeavePolicy(c.Request().Context())
	if err != nil {
		return respondUpstream(c, "leave policy", err)
	}
	return respondData(c, policy)
}

func validPayPeriod(month, year string) bool {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false
	}
	y, err := strconv.Atoi(year)
	return err == nil && y >= 2000 && y <= 2100
}
