package models

import "time"

// Document is a synthesized invoice artifact ready for download
type Document struct {
	Filename string
	Content  []byte
}

// InvoiceGenerated is the event published after a successful synthesis
type InvoiceGenerated struct {
	OrderNumber string    `json:"order_number"`
	Filename    string    `json:"filename"`
	TotalAmount string    `json:"total_amount"`
	GeneratedAt time.Time `json:"generated_at"`
}
