package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"storefront-docs/internal/core/domain/models"
	"storefront-docs/internal/core/domain/types"
	"storefront-docs/internal/core/port"
	"storefront-docs/pkg/logger"
)

// DocsHandler handles HTTP requests for order documents
type DocsHandler struct {
	orders   port.OrderLookup
	invoices port.InvoiceService
	log      logger.Logger
}

// NewDocsHandler creates a new documents handler
func NewDocsHandler(orders port.OrderLookup, invoices port.InvoiceService) *DocsHandler {
	return &DocsHandler{
		orders:   orders,
		invoices: invoices,
		log:      logger.InitLogger("docs_handler", logger.LevelDebug),
	}
}

// DownloadInvoice synthesizes and serves the invoice PDF for an order
func (h *DocsHandler) DownloadInvoice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.log.Debug(r.Context(), types.ActionInvoiceRequested, "processing invoice download request",
			"path", r.URL.Path,
		)

		orderNumber, ok := orderNumberFromPath(r.URL.Path, "/invoice")
		if !ok {
			http.Error(w, "Invalid URL format", http.StatusBadRequest)
			return
		}

		order, err := h.orders.GetOrder(r.Context(), orderNumber)
		if err != nil {
			if errors.Is(err, models.ErrorOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}

			h.log.Error(r.Context(), types.ActionDBQueryFailed, "failed to load order", err,
				"order_number", orderNumber,
			)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		doc, err := h.invoices.Generate(r.Context(), &order)
		if err != nil {
			http.Error(w, "Failed to generate invoice. Please try again.", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
		if _, err := w.Write(doc.Content); err != nil {
			h.log.Error(r.Context(), types.ActionResponseFailed, "failed to write invoice response", err,
				"order_number", orderNumber,
			)
		}
	}
}

// orderNumberFromPath extracts the order number from /orders/{n}<suffix>
func orderNumberFromPath(path, suffix string) (string, bool) {
	pathParts := strings.Split(path, "/")
	if len(pathParts) < 3 {
		return "", false
	}

	orderNumber := strings.TrimSuffix(pathParts[2], suffix)
	if orderNumber == "" {
		return "", false
	}

	return orderNumber, true
}
