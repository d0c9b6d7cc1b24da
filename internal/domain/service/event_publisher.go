package service

import (
	"context"

	"mandi/internal/domain/entity"
)

// DealEventMessage is the wire envelope for one deal write signal published
// to the dispatch worker.
type DealEventMessage struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing.
	entity.DealEvent
}

// EventPublisher defines the interface for publishing deal events to a
// message queue for async processing by the dispatch worker.
type EventPublisher interface {
	// PublishDealEvent publishes a deal write signal.
	PublishDealEvent(ctx context.Context, event *DealEventMessage) error

	// Close releases any resources held by the publisher.
	Close() error
}
