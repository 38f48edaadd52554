package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront-docs/internal/core/domain/models"
	"storefront-docs/internal/core/domain/types"
	"storefront-docs/internal/core/service/status"
)

// GetShipmentStatus returns the milestone projection for an order
func (h *DocsHandler) GetShipmentStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.log.Debug(r.Context(), types.ActionRequestReceived, "processing shipment status request",
			"path", r.URL.Path,
		)

		orderNumber, ok := orderNumberFromPath(r.URL.Path, "/status")
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

		projection := status.Project(order.Status)

		h.log.Debug(r.Context(), types.ActionStatusProjected, "shipment status projected",
			"order_number", orderNumber,
			"status", projection.Status,
			"cancelled", projection.Cancelled,
		)

		response := struct {
			OrderNumber string `json:"order_number"`
			status.Progression
		}{
			OrderNumber: order.DisplayID(),
			Progression: projection,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.log.Error(r.Context(), types.ActionResponseFailed, "failed to encode response", err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}
