package services

import (
	"encoding/json"
	"fmt"
	"log"

	"pranesta/internal/models"
	"pranesta/internal/repositories"
)

// referencePrefix is prepended to the order-id suffix to form the
// payment reference.
const referencePrefix = "PRN-"

// PaymentService issues mock payment intents and applies payment
// confirmations to orders.
type PaymentService struct {
	orderRepo       repositories.OrderRepository
	publisher       EventPublisher
	checkoutBaseURL string
}

// NewPaymentService creates a new PaymentService. checkoutBaseURL is
// the mock provider's checkout endpoint; the reference is appended to
// it. publisher may be nil.
func NewPaymentService(orderRepo repositories.OrderRepository, publisher EventPublisher, checkoutBaseURL string) *PaymentService {
	return &PaymentService{
		orderRepo:       orderRepo,
		publisher:       publisher,
		checkoutBaseURL: checkoutBaseURL,
	}
}

// DeriveReference computes the payment reference for an order id: the
// fixed prefix plus the last six characters of the id (the whole id
// when shorter). Characters, not bytes, so an id with multibyte runes
// never yields a mangled suffix. The reference is a pure function of
// the id, so it is deterministic and guessable; it only correlates
// with the mock provider and must not be reused for a real payment
// integration.
func DeriveReference(orderID string) string {
	suffix := []rune(orderID)
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return referencePrefix + string(suffix)
}

// CreateIntent derives a payment reference and redirect URL for an
// order. No existence check is performed: the store write of the
// reference is best-effort, and its failure (unknown id, store hiccup)
// is logged and discarded so intent creation always succeeds.
func (s *PaymentService) CreateIntent(orderID string) (reference, paymentURL string) {
	reference = DeriveReference(orderID)
	paymentURL = s.checkoutBaseURL + reference

	if err := s.orderRepo.SetPaymentReference(orderID, reference); err != nil {
		log.Printf("Warning: could not store payment reference %s on order %s: %v", reference, orderID, err)
	}

	return reference, paymentURL
}

// ConfirmPayment applies the terminal status for an order: paid on
// success, failed otherwise. The transition is applied unconditionally,
// whatever the current status — repeated confirmations may flip an
// order between paid and failed. A non-empty reference overwrites the
// stored payment reference in the same single-row update.
//
// Returns repositories.ErrOrderNotFound (wrapped) when the id matches
// no order.
func (s *PaymentService) ConfirmPayment(orderID string, success bool, reference string) (models.OrderStatus, error) {
	status := models.StatusPaid
	if !success {
		status = models.StatusFailed
	}

	if err := s.orderRepo.UpdatePayment(orderID, status, reference); err != nil {
		return "", fmt.Errorf("failed to confirm payment for order %s: %w", orderID, err)
	}

	s.publishConfirmed(orderID, status)

	return status, nil
}

// publishConfirmed publishes the confirmation event, best-effort.
func (s *PaymentService) publishConfirmed(orderID string, status models.OrderStatus) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", EventPaymentConfirmed, err)
		return
	}
	if err := s.publisher.Publish(EventPaymentConfirmed, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for order %s: %v", EventPaymentConfirmed, orderID, err)
	}
}
