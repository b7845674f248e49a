package gateway

import (
	"context"
	"net/url"

	"sapportal/internal/model"
	"sapportal/internal/sap"
)

// Authentication runs over the custom SOAP service; data reads go through
// the SAP PO JSON interface like the employee portal's.
const authFunction = "ZFY_PORTAL_1"

// SAPCustomer talks to SAP for the customer portal
type SAPCustomer struct {
	client *sap.Client
}

// NewSAPCustomer wraps a SAP client
func NewSAPCustomer(client *sap.Client) *SAPCustomer {
	return &SAPCustomer{client: client}
}

// Authenticate validates customer credentials against the SOAP login service.
// Success is the literal OUTPUT value; anything else from a healthy upstream
// is a credential rejection.
func (g *SAPCustomer) Authenticate(ctx context.Context, customerID, password string) error {
	fields, err := g.client.CallFunction(ctx, authFunction, []sap.Param{
		{Name: "CUSTOMER_ID", Value: customerID},
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

// Profile fetches the customer master record
func (g *SAPCustomer) Profile(ctx context.Context, customerID string) (*model.CustomerProfile, error) {
	var out model.CustomerProfile
	if err := g.client.GetJSON(ctx, "/customer/profile/"+url.PathEscape(customerID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard fetches the dashboard metric block
func (g *SAPCustomer) Dashboard(ctx context.Context, customerID string) (*model.Dashboard, error) {
	var out model.Dashboard
	if err := g.client.GetJSON(ctx, "/customer/dashboard/"+url.PathEscape(customerID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Inquiries fetches the customer's inquiry list
func (g *SAPCustomer) Inquiries(ctx context.Context, customerID string) ([]model.Inquiry, error) {
	var out []model.Inquiry
	if err := g.client.GetJSON(ctx, "/customer/inquiries/"+url.PathEscape(customerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SalesOrders fetches the customer's sales order list
func (g *SAPCustomer) SalesOrders(ctx context.Context, customerID string) ([]model.SalesOrder, error) {
	var out []model.SalesOrder
	if err := g.client.GetJSON(ctx, "/customer/sales-orders/"+url.PathEscape(customerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Deliveries fetches the customer's delivery list
func (g *SAPCustomer) Deliveries(ctx context.Context, customerID string) ([]model.Delivery, error) {
	var out []model.Delivery
	if err := g.client.GetJSON(ctx, "/customer/deliveries/"+url.PathEscape(customerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Orders fetches the customer's order history
func (g *SAPCustomer) Orders(ctx context.Context, customerID string) ([]model.Order, error) {
	var out []model.Order
	if err := g.client.GetJSON(ctx, "/customer/orders/"+url.PathEscape(customerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Invoices fetches the customer's invoice list
func (g *SAPCustomer) Invoices(ctx context.Context, customerID string) ([]model.Invoice, error) {
	var out []model.Invoice
	if err := g.client.GetJSON(ctx, "/customer/invoices/"+url.PathEscape(customerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Payments fetches the customer's payment history
func (g *SAPCustomer) Payments(ctx context.Context, customerID string) ([]model.Payment, error) {
	var out []model.Payment
	if err := g.client.GetJSON(ctx, "/customer/payments/"+url.PathEscape(customerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Memos fetches the customer's credit and debit memos
func (g *SAPCustomer) Memos(ctx context.Context, customerID string) ([]model.Memo, error) {
	var out []model.Memo
	if err := g.client.GetJSON(ctx, "/customer/memos/"+url.PathEscape(customerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
