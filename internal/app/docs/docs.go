// internal/app/docs/docs.go
package docs

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpHandle "storefront-docs/internal/adapter/http"
	"storefront-docs/internal/adapter/postgresql/order_repository"
	"storefront-docs/internal/adapter/rabbitmq/invoice_publisher"
	"storefront-docs/internal/adapter/server"
	"storefront-docs/internal/adapter/storefront"
	"storefront-docs/internal/core/domain/types"
	"storefront-docs/internal/core/port"
	"storefront-docs/internal/core/service/invoice"
	"storefront-docs/pkg/config"
	"storefront-docs/pkg/flags"
	"storefront-docs/pkg/logger"
)

// DocsApp wires the order-document service: order lookup from the
// storefront database, branding from the backend REST API, invoice
// synthesis, and optional event publishing.
type DocsApp struct {
	ctx       context.Context
	cancel    context.CancelFunc
	logger    logger.Logger
	repo      *order_repository.OrderRepository
	publisher *invoice_publisher.InvoicePublisher
	api       *server.API
}

// NewDocsApp creates the document service application
func NewDocsApp() *DocsApp {
	cfg, err := config.ParseYAML()
	if err != nil {
		config.PrintYAMLHelp()
		slog.Error("failed to configure application", "error", err)
		os.Exit(1)
	}

	log := logger.InitLogger("Docs Service", logger.LevelDebug)

	ctx, cancel := context.WithCancel(context.Background())

	repo, err := order_repository.NewOrderRepository(ctx, cfg)
	if err != nil {
		cancel()
		log.Error(ctx, types.ActionDBConnectFailed, "failed to connect to database", err)
		os.Exit(1)
	}
	log.Info(ctx, types.ActionDBConnected, "connected to database")

	// Event publishing is optional: without a rabbitmq section the
	// service still serves documents.
	var publisher *invoice_publisher.InvoicePublisher
	var events port.EventPublisher
	if cfg.HasRabbitMQ() {
		publisher, err = invoice_publisher.NewInvoicePublisher(ctx, cfg)
		if err != nil {
			cancel()
			repo.Close()
			log.Error(ctx, types.ActionRabbitMQConnectFailed, "failed to connect to RabbitMQ", err)
			os.Exit(1)
		}
		events = publisher
	}

	websiteID := cfg.Storefront.WebsiteID
	if *flags.WebsiteID != "" {
		websiteID = *flags.WebsiteID
	}

	branding := storefront.NewBrandingClient(cfg.Storefront.BaseURL)
	images := storefront.NewImageClient()
	invoices := invoice.NewService(branding, images, events, websiteID)

	handler := httpHandle.NewDocsHandler(repo, invoices)
	api := server.NewRouter(log, handler)

	return &DocsApp{
		ctx:       ctx,
		cancel:    cancel,
		logger:    log,
		repo:      repo,
		publisher: publisher,
		api:       api,
	}
}

// Start begins serving and blocks until a shutdown signal
func (app *DocsApp) Start() {
	go func() {
		if err := app.api.Run(app.ctx); err != nil {
			app.logger.Error(app.ctx, types.ActionServiceFailed, "server error", err)
			app.cancel()
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
	case <-app.ctx.Done():
	}

	app.logger.Info(app.ctx, types.ActionGracefulShutdown, "service is shutting down")
	app.cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := app.api.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(app.ctx, types.ActionGracefulShutdown, "error during server shutdown", err)
	}

	if app.publisher != nil {
		if err := app.publisher.Close(); err != nil {
			app.logger.Error(app.ctx, types.ActionGracefulShutdown, "error closing RabbitMQ connection", err)
		}
	}

	if app.repo != nil {
		app.repo.Close()
	}
}
