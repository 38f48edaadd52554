package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want FlexID
	}{
		{name: "number", json: `{"id": 42}`, want: "42"},
		{name: "string", json: `{"id": "ord-77"}`, want: "ord-77"},
		{name: "null", json: `{"id": null}`, want: ""},
		{name: "absent", json: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order Order
			require.NoError(t, json.Unmarshal([]byte(tt.json), &order))
			assert.Equal(t, tt.want, order.ID)
		})
	}
}

func TestDisplayIDFallbackChain(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  string
	}{
		{name: "id present", order: Order{ID: "42", OrderID: "7"}, want: "42"},
		{name: "order_id alias", order: Order{OrderID: "7"}, want: "7"},
		{name: "neither", order: Order{}, want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.DisplayID())
		})
	}
}

func TestOrderDecodesBackendPayload(t *testing.T) {
	payload := `{
		"id": 42,
		"customer_name": "Ada Lovelace",
		"customer_email": "ada@example.com",
		"shipping_address": "12 Analytical Way",
		"created_at": "2025-03-14T09:26:53Z",
		"payment_method": "card",
		"payment_status": "completed",
		"status": "shipped",
		"total_amount": 7,
		"items": [
			{"product_name": "Pen", "quantity": 2, "price": 3.5}
		]
	}`

	var order Order
	require.NoError(t, json.Unmarshal([]byte(payload), &order))

	assert.Equal(t, "42", order.DisplayID())
	assert.Equal(t, "7.00", order.TotalAmount.StringFixed(2))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Pen", order.Items[0].ProductName)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "3.50", order.Items[0].Price.StringFixed(2))
}
