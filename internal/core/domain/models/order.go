package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// FlexID is an opaque identifier that arrives as either a JSON number
// or a JSON string, depending on which backend endpoint produced it.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

// Order is the backend's order record. It is read-only input: fields are
// rendered as received, and TotalAmount is the authoritative total even
// when it does not reconcile with the sum of the line items.
type Order struct {
	ID              FlexID          `json:"id,omitempty"`
	OrderID         FlexID          `json:"order_id,omitempty"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	ShippingAddress string          `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   string          `json:"payment_status"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Items           []LineItem      `json:"items"`
}

type LineItem struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// DisplayID resolves the identifier used in the invoice number and
// filename: id, then the order_id alias, then a literal "N/A" marker.
func (o Order) DisplayID() string {
	if o.ID != "" {
		return string(o.ID)
	}
	if o.OrderID != "" {
		return string(o.OrderID)
	}
	return "N/A"
}
