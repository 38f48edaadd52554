package invoice

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront-docs/internal/core/domain/models"
)

const footerText = "Thank you for shopping with us!"

type tableRow struct {
	Product   string
	Quantity  string
	UnitPrice string
	LineTotal string
}

// invoiceLayout is the fully resolved text content of one invoice.
// Separating it from the painter keeps the rendered fields testable
// without parsing PDF bytes, and makes synthesis deterministic: equal
// orders and branding yield equal layouts.
type invoiceLayout struct {
	FileBase        string
	InvoiceNumber   string
	DateText        string
	BrandName       string
	ContactLine     string
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	PaymentLine     string
	Rows            []tableRow
	TotalText       string
	FooterText      string
}

func buildLayout(order models.Order, branding models.Branding) invoiceLayout {
	id := order.DisplayID()

	brandName := branding.Name
	if brandName == "" {
		brandName = models.DefaultStoreName
	}

	var contact []string
	if branding.Phone != "" {
		contact = append(contact, branding.Phone)
	}
	if branding.ContactEmail != "" {
		contact = append(contact, branding.ContactEmail)
	}

	customerName := order.CustomerName
	if customerName == "" {
		customerName = "Guest Customer"
	}

	dateText := ""
	if !order.CreatedAt.IsZero() {
		dateText = order.CreatedAt.Format("January 2, 2006")
	}

	paymentLine := order.PaymentMethod
	if order.PaymentStatus != "" {
		if paymentLine != "" {
			paymentLine += " - " + order.PaymentStatus
		} else {
			paymentLine = order.PaymentStatus
		}
	}

	rows := make([]tableRow, 0, len(order.Items))
	for _, item := range order.Items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		rows = append(rows, tableRow{
			Product:   item.ProductName,
			Quantity:  strconv.Itoa(item.Quantity),
			UnitPrice: "$" + item.Price.StringFixed(2),
			LineTotal: "$" + lineTotal.StringFixed(2),
		})
	}

	return invoiceLayout{
		FileBase:        "Invoice_ORD_" + id,
		InvoiceNumber:   "#ORD-" + id,
		DateText:        dateText,
		BrandName:       brandName,
		ContactLine:     strings.Join(contact, " | "),
		CustomerName:    customerName,
		CustomerEmail:   order.CustomerEmail,
		ShippingAddress: order.ShippingAddress,
		PaymentLine:     paymentLine,
		Rows:            rows,
		// The stored total is authoritative; it is never recomputed
		// from the line items.
		TotalText:  "$" + order.TotalAmount.StringFixed(2),
		FooterText: footerText,
	}
}
