package invoice

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters (A4 portrait, 15mm margins)
const (
	pageMargin   = 15.0
	contentWidth = 180.0

	logoX      = 15.0
	logoY      = 12.0
	logoWidth  = 40.0
	addressCol = 80.0

	colProduct = 90.0
	colQty     = 20.0
	colUnit    = 35.0
	colTotal   = 35.0
)

// paintPDF renders a resolved layout into PDF bytes. The logo is placed
// at a fixed header position when embedded; otherwise the brand name is
// drawn as styled text in the same region.
func paintPDF(l invoiceLayout, logo LogoResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(l.InvoiceNumber, false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	// Header: logo or brand-name text
	if logo.Embedded() {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("brand-logo", opts, bytes.NewReader(logo.PNG))
		pdf.ImageOptions("brand-logo", logoX, logoY, logoWidth, 0, false, opts, 0, "")
	} else {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.SetXY(logoX, logoY+3)
		pdf.Cell(addressCol, 10, l.BrandName)
	}
	if l.ContactLine != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(logoX, 30)
		pdf.Cell(addressCol, 5, l.ContactLine)
	}

	// Metadata block, right-aligned
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(140, logoY+3)
	pdf.CellFormat(55, 8, "INVOICE", "", 0, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(140, 23)
	pdf.CellFormat(55, 6, l.InvoiceNumber, "", 0, "R", false, 0, "")
	if l.DateText != "" {
		pdf.SetXY(140, 29)
		pdf.CellFormat(55, 6, l.DateText, "", 0, "R", false, 0, "")
	}

	// Billing block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(pageMargin, 45)
	pdf.Cell(60, 6, "Bill To")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageMargin, 52)
	pdf.Cell(addressCol, 5, l.CustomerName)
	pdf.SetXY(pageMargin, 57)
	pdf.Cell(addressCol, 5, l.CustomerEmail)
	pdf.SetXY(pageMargin, 62)
	pdf.MultiCell(addressCol, 5, l.ShippingAddress, "", "L", false)
	if l.PaymentLine != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(pageMargin, 76)
		pdf.Cell(addressCol, 5, "Payment: "+l.PaymentLine)
	}

	// Itemized table
	pdf.SetY(88)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(colProduct, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colUnit, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range l.Rows {
		pdf.CellFormat(colProduct, 7, row.Product, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 7, row.Quantity, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colUnit, 7, row.UnitPrice, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 7, row.LineTotal, "1", 1, "R", false, 0, "")
	}

	// Summary
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth-colTotal, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 8, l.TotalText, "", 1, "R", false, 0, "")

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 10, l.FooterText, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}

	return buf.Bytes(), nil
}
