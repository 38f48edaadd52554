package port

import (
	"context"
	"storefront-docs/internal/core/domain/models"
)

type OrderLookup interface {
	GetOrder(ctx context.Context, orderNumber string) (models.Order, error)
}

type BrandingLookup interface {
	GetBranding(ctx context.Context, websiteID string) (models.Branding, error)
}

type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

type InvoiceService interface {
	Generate(ctx context.Context, order *models.Order) (models.Document, error)
}

type EventPublisher interface {
	PublishInvoiceGenerated(ctx context.Context, event models.InvoiceGenerated) error
}

type DocsAPI interface {
	Run(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
