package types

const (
	ActionServiceStarted   = "service_started"
	ActionServiceFailed    = "service_failed"
	ActionGracefulShutdown = "graceful_shutdown"

	ActionDBConnected     = "db_connected"
	ActionDBConnectFailed = "db_connect_failed"
	ActionDBQueryFailed   = "db_query_failed"

	ActionRequestReceived = "request_received"
	ActionResponseFailed  = "response_failed"

	// Document synthesis actions
	ActionInvoiceRequested    = "invoice_requested"
	ActionInvoiceGenerated    = "invoice_generated"
	ActionInvoiceFailed       = "invoice_generation_failed"
	ActionBrandingFetchFailed = "branding_fetch_failed"
	ActionLogoEmbedded        = "logo_embedded"
	ActionLogoFallback        = "logo_text_fallback"
	ActionStatusProjected     = "status_projected"
	ActionEventPublished      = "event_published"
	ActionEventPublishFailed  = "event_publish_failed"

	// RabbitMQ-related actions
	ActionRabbitMQConnecting      = "rabbitmq_connecting"
	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitMQConnectFailed   = "rabbitmq_connect_failed"
	ActionRabbitMQDisconnected    = "rabbitmq_disconnected"
	ActionRabbitMQReconnecting    = "rabbitmq_reconnecting"
	ActionRabbitMQReconnected     = "rabbitmq_reconnected"
	ActionRabbitMQReconnectFailed = "rabbitmq_reconnect_failed"
	ActionRabbitMQSetup           = "rabbitmq_setup"
	ActionRabbitMQSetupComplete   = "rabbitmq_setup_complete"
	ActionRabbitMQSetupFailed     = "rabbitmq_setup_failed"
)
