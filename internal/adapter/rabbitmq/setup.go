// internal/adapter/rabbitmq/setup.go
package rabbitmq

import (
	"context"
	"fmt"

	"storefront-docs/internal/core/domain/types"
	"storefront-docs/pkg/logger"
)

// Exchange constants
const (
	DocumentsTopicExchange = "documents_topic"

	InvoiceGeneratedRoutingKey = "invoice.generated"
)

// SetupRabbitMQ declares the exchange the docs service publishes to.
// Consumers (admin console feeds, mailers) bind their own queues.
func SetupRabbitMQ(ctx context.Context, conn *Connection, log logger.Logger) error {
	ch := conn.Channel()

	log.Info(ctx, types.ActionRabbitMQSetup, "setting up RabbitMQ exchanges")

	err := ch.ExchangeDeclare(
		DocumentsTopicExchange, // name
		"topic",                // type
		true,                   // durable
		false,                  // auto-deleted
		false,                  // internal
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		log.Error(ctx, types.ActionRabbitMQSetupFailed, "failed to declare documents topic exchange", err)
		return fmt.Errorf("failed to declare documents topic exchange: %w", err)
	}

	log.Info(ctx, types.ActionRabbitMQSetupComplete, "RabbitMQ setup completed successfully")

	return nil
}
