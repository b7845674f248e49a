package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"sapportal/internal/finance"
	"sapportal/internal/gateway"
)

// VendorData serves the vendor portal data endpoints. Routes carry the
// vendor number in the path; the subject-match middleware guards it.
type VendorData struct {
	gw gateway.Vendor
}

// NewVendorData builds the handler
func NewVendorData(gw gateway.Vendor) *VendorData {
	return &VendorData{gw: gw}
}

// Profile returns the vendor master record
func (h *VendorData) Profile(c echo.Context) error {
	profile, err := h.gw.Profile(c.Request().Context(), c.Param("vendorId"))
	if err != nil {
		return respondUpstream(c, "vendor profile", err)
	}
	return respondData(c, profile)
}

// BusinessSummary returns the RFQ/PO/GR counters
func (h *VendorData) BusinessSummary(c echo.Context) error {
	summary, err := h.gw.BusinessSummary(c.Request().Context(), c.Param("vendorId"))
	if err != nil {
		return respondUpstream(c, "vendor summary", err)
	}
	return respondData(c, summary)
}

// RFQs returns the paginated request-for-quotation list
func (h *VendorData) RFQs(c echo.Context) error {
	rfqs, err := h.gw.RFQs(c.Request().Context(), c.Param("vendorId"))
	if err != nil {
		return respondUpstream(c, "vendor rfqs", err)
	}
	page, size := pageParams(c)
	return paged(c, finance.Page(rfqs, page, size), len(rfqs), page, size, finance.TotalPages(len(rfqs), size))
}

// PurchaseOrders returns the paginated purchase order list
func (h *VendorData) PurchaseOrders(c echo.Context) error {
	orders, err := h.gw.PurchaseOrders(c.Request().Context(), c.Param("vendorId"))
	if err != nil {
		return respondUpstream(c, "vendor purchase orders", err)
	}
	page, size := pageParams(c)
	return paged(c, finance.Page(orders, page, size), len(orders), page, size, finance.TotalPages(len(orders), size))
}

// GoodsReceipts returns the paginated goods receipt list
func (h *VendorData) GoodsReceipts(c echo.Context) error {
	receipts, err := h.gw.GoodsReceipts(c.Request().Context(), c.Param("vendorId"))
	if err != nil {
		return respondUpstream(c, "vendor goods receipts", err)
	}
	page, size := pageParams(c)
	return paged(c, finance.Page(receipts, page, size), len(receipts), page, size, finance.TotalPages(len(receipts), size))
}

// Invoices returns the paginated invoice list
func (h *VendorData) Invoices(c echo.Context) error {
	invoices, err := h.gw.Invoices(c.Request().Context(), c.Param("vendorId"))
	if err != nil {
		return respondUpstream(c, "vendor invoices", err)
	}
	page, size := pageParams(c)
	return paged(c, finance.Page(invoices, page, size), len(invoices), page, size, finance.TotalPages(len(invoices), size))
}

// Payments returns the payment history
func (h *VendorData) Payments(c echo.Context) error {
	payments, err := h.gw.Payments(c.Request().Context(), c.Param("vendorId"))
	if err != nil {
		return respondUpstream(c, "vendor payments", err)
	}
	return respondData(c, payments)
}

// Memos returns the credit and debit memos
func (h *VendorData) Memos(c echo.Context) error {
	memos, err := h.gw.Memos(c.Request().Context(), c.Param("vendorId"))
	if err != nil {
		return respondUpstream(c, "vendor memos", err)
	}
	return respondData(c, memos)
}

// Aging computes the aging report from the open invoice list
func (h *VendorData) Aging(c echo.Context) error {
	id := c.Param("vendorId")
	ctx := c.Request().Context()
	invoices, err := h.gw.Invoices(ctx, id)
	if err != nil {
		return respondUpstream(c, "vendor aging", err)
	}
	name := ""
	if profile, err := h.gw.Profile(ctx, id); err == nil {
		name = profile.CompanyName
	}
	currency := ""
	if len(invoices) > 0 {
		currency = invoices[0].Currency
	}
	return respondData(c, finance.BuildAgingReport(id, name, currency, invoices, time.Now()))
}

// Summary rolls invoices, payments and memos up into the financial header
func (h *VendorData) Summary(c echo.Context) error {
	id := c.Param("vendorId")
	ctx := c.Request().Context()
	invoices, err := h.gw.Invoices(ctx, id)
	if err != nil {
		return respondUpstream(c, "vendor financial summary", err)
	}
	payments, err := h.gw.Payments(ctx, id)
	if err != nil {
		return respondUpstream(c, "vendor financial summary", err)
	}
	memos, err := h.gw.Memos(ctx, id)
	if err != nil {
		return respondUpstream(c, "vendor financial summary", err)
	}
	return respondData(c, finance.BuildSummary(invoices, payments, memos))
}
