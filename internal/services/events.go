package services

// EventPublisher publishes storefront lifecycle events to the message
// broker. Services treat publication as best-effort: failures are
// logged, never propagated. A nil publisher disables events.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Routing keys for storefront events.
const (
	EventOrderCreated     = "order.created"
	EventPaymentConfirmed = "payment.confirmed"
)
