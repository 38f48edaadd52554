package invoice

import (
	"context"
	"fmt"
	"time"

	"storefront-docs/internal/core/domain/models"
	"storefront-docs/internal/core/domain/types"
	"storefront-docs/internal/core/port"
	"storefront-docs/pkg/logger"
)

// Service synthesizes invoice documents from order records. Branding is
// fetched fresh for every generation; branding and logo failures are
// contained here and never fail the overall synthesis.
type Service struct {
	log       logger.Logger
	branding  port.BrandingLookup
	images    port.ImageFetcher
	events    port.EventPublisher
	websiteID string
}

// NewService creates an invoice service. events may be nil, in which
// case no invoice_generated events are published.
func NewService(branding port.BrandingLookup, images port.ImageFetcher, events port.EventPublisher, websiteID string) *Service {
	log := logger.InitLogger("invoice", logger.LevelDebug)
	if websiteID == "" {
		websiteID = "1"
	}
	return &Service{
		log:       log,
		branding:  branding,
		images:    images,
		events:    events,
		websiteID: websiteID,
	}
}

// Generate produces the invoice artifact for one order. A nil order is
// a caller error and aborts before any side effect. Any unexpected
// fault inside the renderer is caught here and surfaced as a single
// generic generation failure, never a partial artifact.
func (svc *Service) Generate(ctx context.Context, order *models.Order) (doc models.Document, err error) {
	if order == nil {
		svc.log.Error(ctx, types.ActionInvoiceFailed, "no order data", models.ErrorNoOrderData)
		return models.Document{}, models.ErrorNoOrderData
	}

	defer func() {
		if r := recover(); r != nil {
			svc.log.Error(ctx, types.ActionInvoiceFailed, "invoice synthesis fault", fmt.Errorf("panic: %v", r),
				"order_number", order.DisplayID(),
			)
			doc = models.Document{}
			err = models.ErrorGenerationFailed
		}
	}()

	branding := svc.fetchBranding(ctx)
	logo := svc.resolveLogo(ctx, branding)

	layout := buildLayout(*order, branding)

	content, paintErr := paintPDF(layout, logo)
	if paintErr != nil {
		svc.log.Error(ctx, types.ActionInvoiceFailed, "failed to render invoice", paintErr,
			"order_number", order.DisplayID(),
		)
		return models.Document{}, models.ErrorGenerationFailed
	}

	doc = models.Document{
		Filename: layout.FileBase + ".pdf",
		Content:  content,
	}

	svc.log.Debug(ctx, types.ActionInvoiceGenerated, "invoice generated",
		"order_number", order.DisplayID(),
		"filename", doc.Filename,
		"size_bytes", len(doc.Content),
	)

	svc.publishEvent(ctx, *order, doc)

	return doc, nil
}

// fetchBranding returns the store branding, or a zero value when the
// lookup fails. A branding failure must not abort document generation.
func (svc *Service) fetchBranding(ctx context.Context) models.Branding {
	branding, err := svc.branding.GetBranding(ctx, svc.websiteID)
	if err != nil {
		svc.log.Debug(ctx, types.ActionBrandingFetchFailed, "branding unavailable, using defaults",
			"website_id", svc.websiteID,
			"reason", err.Error(),
		)
		return models.Branding{}
	}
	return branding
}

func (svc *Service) publishEvent(ctx context.Context, order models.Order, doc models.Document) {
	if svc.events == nil {
		return
	}

	event := models.InvoiceGenerated{
		OrderNumber: order.DisplayID(),
		Filename:    doc.Filename,
		TotalAmount: order.TotalAmount.StringFixed(2),
		GeneratedAt: time.Now().UTC(),
	}

	if err := svc.events.PublishInvoiceGenerated(ctx, event); err != nil {
		svc.log.Error(ctx, types.ActionEventPublishFailed, "failed to publish invoice event", err,
			"order_number", event.OrderNumber,
		)
	}
}
