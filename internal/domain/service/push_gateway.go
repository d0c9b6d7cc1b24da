// Package service defines interfaces for external collaborators consumed by
// the dispatch engine.
package service

import (
	"context"
	"fmt"
)

// MulticastLimit is the largest destination batch a single SendMulticast
// call accepts (the FCM per-request cap). Callers chunk larger lists.
const MulticastLimit = 500

// DeliveryErrorKind classifies a push delivery failure.
type DeliveryErrorKind string

const (
	// DeliveryInvalidDestination means the gateway reported the destination
	// permanently dead; the token must be evicted, never retried.
	DeliveryInvalidDestination DeliveryErrorKind = "invalid_destination"
	// DeliveryTransient means the send may succeed if retried later.
	DeliveryTransient DeliveryErrorKind = "transient"
	// DeliveryOther is any other transport failure.
	DeliveryOther DeliveryErrorKind = "other"
)

// DeliveryError is a classified push transport failure for one destination.
type DeliveryError struct {
	Kind  DeliveryErrorKind
	Token string
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("push delivery failed (%s): %v", e.Kind, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// IsInvalidDestination reports whether err is a DeliveryError of the
// permanently-dead-destination kind.
func IsInvalidDestination(err error) bool {
	var de *DeliveryError
	if !asDeliveryError(err, &de) {
		return false
	}

	return de.Kind == DeliveryInvalidDestination
}

// SendResponse is the per-destination outcome of a multicast send.
type SendResponse struct {
	Token     string `json:"token"`
	MessageID string `json:"message_id,omitempty"`
	Err       error  `json:"-"`
}

// BatchResult aggregates a multicast send. A partial batch failure is a
// normal result, never a top-level error: one dead destination must not
// block delivery to the rest.
type BatchResult struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResponse
}

// PushGateway is the push-messaging collaborator. It only moves bytes to
// devices; it never writes history, so "attempted" records can be kept even
// when a send is blocked before reaching the gateway.
type PushGateway interface {
	// Send delivers to a single destination and returns the gateway message
	// ID. Failures are returned as *DeliveryError.
	Send(ctx context.Context, token, title, body string, data map[string]string) (string, error)

	// SendMulticast fans one message out to up to MulticastLimit
	// destinations and reports per-destination outcomes.
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (*BatchResult, error)
}
