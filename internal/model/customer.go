package model

// CustomerProfile mirrors the customer master record exposed by the portal
type CustomerProfile struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Company    string `json:"company"`
	LastLogin  string `json:"lastLogin,omitempty"`
}

// Dashboard aggregates the customer landing page metrics
type Dashboard struct {
	TotalInquiries        int          `json:"totalInquiries"`
	TotalSalesOrders      int          `json:"totalSalesOrders"`
	TotalDeliveries       int          `json:"totalDeliveries"`
	OutstandingAmount     float64      `json:"outstandingAmount"`
	InquiryConversionRate float64      `json:"inquiryConversionRate"`
	AverageOrderValue     float64      `json:"averageOrderValue"`
	DeliveryPerformance   float64      `json:"deliveryPerformance"`
	RecentInquiries       []Inquiry    `json:"recentInquiries"`
	RecentSalesOrders     []SalesOrder `json:"recentSalesOrders"`
	RecentDeliveries      []Delivery   `json:"recentDeliveries"`
}

// Inquiry is a customer request for quotation
type Inquiry struct {
	InquiryNumber string        `json:"inquiryNumber"`
	InquiryDate   string        `json:"inquiryDate"`
	Description   string        `json:"description"`
	Status        string        `json:"status"` // In Progress, Quoted, Closed
	Priority      string        `json:"priority"`
	TotalValue    float64       `json:"totalValue"`
	Items         []InquiryItem `json:"items,omitempty"`
}

// InquiryItem is one material line of an inquiry
type InquiryItem struct {
	MaterialNumber string  `json:"materialNumber"`
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
}

// SalesOrder is a confirmed customer order
type SalesOrder struct {
	OrderNumber           string           `json:"orderNumber"`
	OrderDate             string           `json:"orderDate"`
	RequestedDeliveryDate string           `json:"requestedDeliveryDate"`
	OrderValue            float64          `json:"orderValue"`
	Currency              string           `json:"currency"`
	Status                string           `json:"status"` // Confirmed, In Production, Shipped, Completed
	CustomerPO            string           `json:"customerPO"`
	Items                 []SalesOrderItem `json:"items,omitempty"`
}

// SalesOrderItem is one line of a sales order
type SalesOrderItem struct {
	LineItem          string  `json:"lineItem"`
	MaterialNumber    string  `json:"materialNumber"`
	Description       string  `json:"description"`
	OrderedQuantity   float64 `json:"orderedQuantity"`
	DeliveredQuantity float64 `json:"deliveredQuantity"`
	Unit              string  `json:"unit"`
	UnitPrice         float64 `json:"unitPrice"`
	TotalPrice        float64 `json:"totalPrice"`
	DeliveryDate      string  `json:"deliveryDate"`
	Status            string  `json:"status"`
}

// Delivery is an outbound delivery against a sales order
type Delivery struct {
	DeliveryNumber    string         `json:"deliveryNumber"`
	DeliveryDate      string         `json:"deliveryDate"`
	TrackingNumber    string         `json:"trackingNumber"`
	Status            string         `json:"status"` // In Transit, Delivered
	Carrier           string         `json:"carrier"`
	RelatedSalesOrder string         `json:"relatedSalesOrder"`
	DeliveryAddress   string         `json:"deliveryAddress"`
	ActualArrival     string         `json:"actualArrival,omitempty"`
	Items             []DeliveryItem `json:"items,omitempty"`
}

// DeliveryItem is one line of a delivery
type DeliveryItem struct {
	MaterialNumber    string  `json:"materialNumber"`
	Description       string  `json:"description"`
	DeliveredQuantity float64 `json:"deliveredQuantity"`
	Unit              string  `json:"unit"`
	BatchNumber       string  `json:"batchNumber,omitempty"`
}

// Order is the simplified order row shown on the customer orders tab
type Order struct {
	OrderNumber string  `json:"orderNumber"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"` // Pending, Shipped, Delivered
}
