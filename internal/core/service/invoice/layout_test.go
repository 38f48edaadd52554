package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-docs/internal/core/domain/models"
)

func penOrder() models.Order {
	return models.Order{
		ID:           "42",
		CustomerName: "Ada Lovelace",
		CreatedAt:    time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC),
		TotalAmount:  decimal.NewFromFloat(7.00),
		Items: []models.LineItem{
			{ProductName: "Pen", Quantity: 2, Price: decimal.NewFromFloat(3.5)},
		},
	}
}

func TestBuildLayoutPenScenario(t *testing.T) {
	l := buildLayout(penOrder(), models.Branding{Name: "Stationery Co"})

	assert.Equal(t, "Invoice_ORD_42", l.FileBase)
	assert.Equal(t, "#ORD-42", l.InvoiceNumber)
	assert.Equal(t, "March 14, 2025", l.DateText)
	assert.Equal(t, "$7.00", l.TotalText)

	require.Len(t, l.Rows, 1)
	assert.Equal(t, tableRow{
		Product:   "Pen",
		Quantity:  "2",
		UnitPrice: "$3.50",
		LineTotal: "$7.00",
	}, l.Rows[0])
}

func TestBuildLayoutIDFallbacks(t *testing.T) {
	withAlias := models.Order{OrderID: "7"}
	l := buildLayout(withAlias, models.Branding{})
	assert.Equal(t, "Invoice_ORD_7", l.FileBase)
	assert.Equal(t, "#ORD-7", l.InvoiceNumber)

	without := models.Order{}
	l = buildLayout(without, models.Branding{})
	assert.Equal(t, "Invoice_ORD_N/A", l.FileBase)
	assert.Equal(t, "#ORD-N/A", l.InvoiceNumber)
}

func TestBuildLayoutFallbacks(t *testing.T) {
	l := buildLayout(models.Order{ID: "1"}, models.Branding{})

	assert.Equal(t, models.DefaultStoreName, l.BrandName)
	assert.Equal(t, "Guest Customer", l.CustomerName)
	assert.Empty(t, l.CustomerEmail)
	assert.Empty(t, l.ShippingAddress)
	assert.Empty(t, l.DateText)
	assert.Empty(t, l.Rows)
	assert.Equal(t, "$0.00", l.TotalText)
}

func TestBuildLayoutContactLine(t *testing.T) {
	l := buildLayout(models.Order{ID: "1"}, models.Branding{
		Name:         "Stationery Co",
		Phone:        "+1 555 0100",
		ContactEmail: "help@stationery.example",
	})
	assert.Equal(t, "+1 555 0100 | help@stationery.example", l.ContactLine)

	l = buildLayout(models.Order{ID: "1"}, models.Branding{Name: "Stationery Co", Phone: "+1 555 0100"})
	assert.Equal(t, "+1 555 0100", l.ContactLine)
}

func TestBuildLayoutTotalNotRecomputed(t *testing.T) {
	// Discounts can make the stored total diverge from the item sum;
	// both are rendered as-is.
	order := penOrder()
	order.TotalAmount = decimal.NewFromFloat(5.50)

	l := buildLayout(order, models.Branding{})

	assert.Equal(t, "$5.50", l.TotalText)
	assert.Equal(t, "$7.00", l.Rows[0].LineTotal)
}

func TestBuildLayoutIsDeterministic(t *testing.T) {
	order := penOrder()
	branding := models.Branding{Name: "Stationery Co", LogoURL: "http://cdn.example/logo.png"}

	assert.Equal(t, buildLayout(order, branding), buildLayout(order, branding))
}
