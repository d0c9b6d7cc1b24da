package usecase

import (
	"context"

	"mandi/internal/domain/entity"
)

// DealUsecase defines the interface for deal event handling use cases
type DealUsecase interface {
	// PublishDealEvent hands a deal write signal to the message queue for
	// async processing by the dispatch worker.
	PublishDealEvent(ctx context.Context, event *entity.DealEvent, requestID string) error

	// ProcessDealEvent reacts to one deal write signal: derives notification
	// payloads for both counterparties and drives the dispatch pipeline.
	// One counterparty's delivery failure never blocks the other's.
	ProcessDealEvent(ctx context.Context, event *entity.DealEvent) error
}
