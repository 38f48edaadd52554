// internal/adapter/rabbitmq/metrics.go
package rabbitmq

import (
	"sync"
	"time"
)

// PublisherMetrics tracks publish and connection health counters
type PublisherMetrics struct {
	mu                    sync.Mutex
	messagesPublished     int64
	messagesFailed        int64
	lastReconnectAttempt  time.Time
	reconnectAttempts     int64
	lastSuccessfulConnect time.Time
}

func NewPublisherMetrics() *PublisherMetrics {
	return &PublisherMetrics{
		lastSuccessfulConnect: time.Now(),
	}
}

// IncrementPublished increases the published messages counter
func (m *PublisherMetrics) IncrementPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messagesPublished++
}

// IncrementFailed increases the failed messages counter
func (m *PublisherMetrics) IncrementFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messagesFailed++
}

// RecordReconnectAttempt records a reconnection attempt
func (m *PublisherMetrics) RecordReconnectAttempt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastReconnectAttempt = time.Now()
	m.reconnectAttempts++
}

// RecordSuccessfulConnect records a successful connection
func (m *PublisherMetrics) RecordSuccessfulConnect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSuccessfulConnect = time.Now()
}

// GetMetrics returns current metrics as a map
func (m *PublisherMetrics) GetMetrics() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	return map[string]interface{}{
		"messages_published":      m.messagesPublished,
		"messages_failed":         m.messagesFailed,
		"reconnect_attempts":      m.reconnectAttempts,
		"last_reconnect_attempt":  m.lastReconnectAttempt,
		"last_successful_connect": m.lastSuccessfulConnect,
		"uptime_seconds":          time.Since(m.lastSuccessfulConnect).Seconds(),
	}
}
