package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	httpHandle "storefront-docs/internal/adapter/http"
	"storefront-docs/internal/core/domain/types"
	"storefront-docs/pkg/flags"
	"storefront-docs/pkg/logger"
)

type API struct {
	server  *http.Server
	log     logger.Logger
	handler *httpHandle.DocsHandler
	port    int
}

func NewRouter(log logger.Logger, handler *httpHandle.DocsHandler) *API {
	api := &API{
		log:     log,
		handler: handler,
		port:    *flags.Port,
	}

	mux := http.NewServeMux()
	mux.Handle("/orders/", api.Middleware(api.routeOrdersRequests))

	api.server = &http.Server{
		Addr:    ":" + strconv.Itoa(api.port),
		Handler: mux,
	}

	return api
}

func (api *API) Run(ctx context.Context) error {
	api.log.Info(ctx, types.ActionServiceStarted, "docs service started",
		"port", api.port,
	)

	if err := api.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (api *API) Shutdown(ctx context.Context) error {
	return api.server.Shutdown(ctx)
}

// routeOrdersRequests dispatches /orders/{order_number}/... endpoints
func (api *API) routeOrdersRequests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.Path

	if strings.HasSuffix(path, "/invoice") {
		api.handler.DownloadInvoice()(w, r)
		return
	}

	if strings.HasSuffix(path, "/status") {
		api.handler.GetShipmentStatus()(w, r)
		return
	}

	http.NotFound(w, r)
}
