package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"sapportal/internal/finance"
	"sapportal/internal/gateway"
)

// CustomerData serves the customer portal data endpoints. The subject comes
// from the token, never from the request.
type CustomerData struct {
	gw gateway.Customer
}

// NewCustomerData builds the handler
func NewCustomerData(gw gateway.Customer) *CustomerData {
	return &CustomerData{gw: gw}
}

// Dashboard returns the landing page metric block
func (h *CustomerData) Dashboard(c echo.Context) error {
	dashboard, err := h.gw.Dashboard(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "customer dashboard", err)
	}
	return respondData(c, dashboard)
}

// Profile returns the customer master record
func (h *CustomerData) Profile(c echo.Context) error {
	profile, err := h.gw.Profile(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "customer profile", err)
	}
	return respondData(c, profile)
}

// Inquiries returns the paginated inquiry list
func (h *CustomerData) Inquiries(c echo.Context) error {
	inquiries, err := h.gw.Inquiries(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "customer inquiries", err)
	}
	page, size := pageParams(c)
	return paged(c, finance.Page(inquiries, page, size), len(inquiries), page, size, finance.TotalPages(len(inquiries), size))
}

// SalesOrders returns the paginated sales order list
func (h *CustomerData) SalesOrders(c echo.Context) error {
	orders, err := h.gw.SalesOrders(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "customer sales orders", err)
	}
	page, size := pageParams(c)
	return paged(c, finance.Page(orders, page, size), len(orders), page, size, finance.TotalPages(len(orders), size))
}

// Deliveries returns the paginated delivery list
func (h *CustomerData) Deliveries(c echo.Context) error {
	deliveries, err := h.gw.Deliveries(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "customer deliveries", err)
	}
	page, size := pageParams(c)
	return paged(c, finance.Page(deliveries, page, size), len(deliveries), page, size, finance.TotalPages(len(deliveries), size))
}

// Orders returns the paginated order history rows
func (h *CustomerData) Orders(c echo.Context) error {
	orders, err := h.gw.Orders(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "customer orders", err)
	}
	page, size := pageParams(c)
	return paged(c, finance.Page(orders, page, size), len(orders), page, size, finance.TotalPages(len(orders), size))
}

// Invoices returns the paginated invoice list
func (h *CustomerData) Invoices(c echo.Context) error {
	invoices, err := h.gw.Invoices(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "customer invoices", err)
	}
	page, size := pageParams(c)
	return paged(c, finance.Page(invoices, page, size), len(invoices), page, size, finance.TotalPages(len(invoices), size))
}

// Payments returns the payment history
func (h *CustomerData) Payments(c echo.Context) error {
	payments, err := h.gw.Payments(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "customer payments", err)
	}
	return respondData(c, payments)
}

// Memos returns the credit and debit memos
func (h *CustomerData) Memos(c echo.Context) error {
	memos, err := h.gw.Memos(c.Request().Context(), subjectID(c))
	if err != nil {
		return respondUpstream(c, "customer memos", err)
	}
	return respondData(c, memos)
}

// Aging computes the aging report from the open invoice list
func (h *CustomerData) Aging(c echo.Context) error {
	id := subjectID(c)
	ctx := c.Request().Context()
	invoices, err := h.gw.Invoices(ctx, id)
	if err != nil {
		return respondUpstream(c, "customer aging", err)
	}
	name := ""
	if profile, err := h.gw.Profile(ctx, id); err == nil {
		name = profile.Name
	}
	currency := ""
	if len(invoices) > 0 {
		currency = invoices[0].Currency
	}
	return respondData(c, finance.BuildAgingReport(id, name, currency, invoices, time.Now()))
}

// Summary rolls invoices, payments and memos up into the financial header
func (h *CustomerData) Summary(c echo.Context) error {
	id := subjectID(c)
	ctx := c.Request().Context()
	invoices, err := h.gw.Invoices(ctx, id)
	if err != nil {
		return respondUpstream(c, "customer summary", err)
	}
	payments, err := h.gw.Payments(ctx, id)
	if err != nil {
		return respondUpstream(c, "customer summary", err)
	}
	memos, err := h.gw.Memos(ctx, id)
	if err != nil {
		return respondUpstream(c, "customer summary", err)
	}
	return respondData(c, finance.BuildSummary(invoices, payments, memos))
}
