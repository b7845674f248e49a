package gateway

import (
	"context"
	"net/url"

	"sapportal/internal/model"
	"sapportal/internal/sap"
)

// SAPVendor talks to SAP for the vendor portal. It shares the SOAP login
// service with the customer portal; the vendor number travels in the same
// id parameter.
type SAPVendor struct {
	client *sap.Client
}

// NewSAPVendor wraps a SAP client
func NewSAPVendor(client *sap.Client) *SAPVendor {
	return &SAPVendor{client: client}
}

// Authenticate validates vendor credentials against the SOAP login service
func (g *SAPVendor) Authenticate(ctx context.Context, vendorID, password string) error {
	fields, err := g.client.CallFunction(ctx, authFunction, []sap.Param{
		{Name: "CUSTOMER_ID", Value: vendorID},
		{Name: "PASSWORD", Value: password},
	})
	if err != nil {
		return err
	}
	if fields[sap.FieldOutput] != sap.LoginSuccessful {
		return ErrInvalidCredentials
	}
	return nil
}

// Profile fetches the vendor master record
func (g *SAPVendor) Profile(ctx context.Context, vendorID string) (*model.VendorProfile, error) {
	var out model.VendorProfile
	if err := g.client.GetJSON(ctx, "/vendor/profile/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BusinessSummary fetches the vendor transaction counters
func (g *SAPVendor) BusinessSummary(ctx context.Context, vendorID string) (*model.BusinessSummary, error) {
	var out model.BusinessSummary
	if err := g.client.GetJSON(ctx, "/vendor/summary/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RFQs fetches the vendor's request-for-quotation list
func (g *SAPVendor) RFQs(ctx context.Context, vendorID string) ([]model.RFQ, error) {
	var out []model.RFQ
	if err := g.client.GetJSON(ctx, "/vendor/rfqs/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PurchaseOrders fetches the vendor's purchase order list
func (g *SAPVendor) PurchaseOrders(ctx context.Context, vendorID string) ([]model.PurchaseOrder, error) {
	var out []model.PurchaseOrder
	if err := g.client.GetJSON(ctx, "/vendor/purchase-orders/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GoodsReceipts fetches the goods receipts posted against the vendor's POs
func (g *SAPVendor) GoodsReceipts(ctx context.Context, vendorID string) ([]model.GoodsReceipt, error) {
	var out []model.GoodsReceipt
	if err := g.client.GetJSON(ctx, "/vendor/goods-receipts/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Invoices fetches the vendor's invoice list
func (g *SAPVendor) Invoices(ctx context.Context, vendorID string) ([]model.Invoice, error) {
	var out []model.Invoice
	if err := g.client.GetJSON(ctx, "/vendor/invoices/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Payments fetches the vendor's payment history
func (g *SAPVendor) Payments(ctx context.Context, vendorID string) ([]model.Payment, error) {
	var out []model.Payment
	if err := g.client.GetJSON(ctx, "/vendor/payments/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Memos fetches the vendor's credit and debit memos
func (g *SAPVendor) Memos(ctx context.Context, vendorID string) ([]model.Memo, error) {
	var out []model.Memo
	if err := g.client.GetJSON(ctx, "/vendor/memos/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
