package invoice_publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"storefront-docs/internal/adapter/rabbitmq"
	"storefront-docs/internal/core/domain/models"
	"storefront-docs/internal/core/domain/types"
	"storefront-docs/pkg/config"
	"storefront-docs/pkg/logger"
)

// InvoicePublisher publishes document events to RabbitMQ
type InvoicePublisher struct {
	conn *rabbitmq.Connection
	log  logger.Logger
}

// NewInvoicePublisher connects to RabbitMQ and declares the documents
// exchange
func NewInvoicePublisher(ctx context.Context, cfg config.Config) (*InvoicePublisher, error) {
	log := logger.InitLogger("invoice_publisher", logger.LevelDebug)

	conn, err := rabbitmq.NewConnection(ctx, cfg)
	if err != nil {
		log.Error(ctx, types.ActionRabbitMQConnectFailed, "failed to create RabbitMQ connection", err)
		return nil, fmt.Errorf("failed to create RabbitMQ connection: %w", err)
	}

	if err := rabbitmq.SetupRabbitMQ(ctx, conn, log); err != nil {
		conn.Close()
		log.Error(ctx, types.ActionRabbitMQSetupFailed, "failed to setup RabbitMQ", err)
		return nil, fmt.Errorf("failed to setup RabbitMQ: %w", err)
	}

	return &InvoicePublisher{
		conn: conn,
		log:  log,
	}, nil
}

// PublishInvoiceGenerated publishes an invoice_generated event. The
// caller treats failures as non-fatal; a missed event never fails a
// download.
func (p *InvoicePublisher) PublishInvoiceGenerated(ctx context.Context, event models.InvoiceGenerated) error {
	jsonBody, err := json.Marshal(event)
	if err != nil {
		p.log.Error(ctx, types.ActionEventPublishFailed, "failed to marshal invoice event", err)
		return fmt.Errorf("failed to marshal invoice event: %w", err)
	}

	err = p.conn.PublishWithContext(
		ctx,
		rabbitmq.DocumentsTopicExchange,     // exchange name
		rabbitmq.InvoiceGeneratedRoutingKey, // routing key
		false,                               // mandatory
		false,                               // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         jsonBody,
		},
	)

	if err != nil {
		p.log.Error(ctx, types.ActionEventPublishFailed, "failed to publish invoice event", err)
		return fmt.Errorf("failed to publish invoice event: %w", err)
	}

	p.log.Debug(ctx, types.ActionEventPublished, "invoice event published successfully",
		"order_number", event.OrderNumber,
		"filename", event.Filename,
	)

	return nil
}

// Close closes the connection to RabbitMQ
func (p *InvoicePublisher) Close() error {
	return p.conn.Close()
}
