// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when a price alert subscription is not found.
var ErrAlertNotFound = errors.New("price alert subscription not found")

// AlertRepository defines the interface for price alert subscription persistence.
type AlertRepository interface {
	// CreateSubscription persists a new price alert subscription.
	CreateSubscription(ctx context.Context, sub *entity.PriceAlertSubscription) error

	// FindSubscriptionByID retrieves a subscription by its unique ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.PriceAlertSubscription, error)

	// FindActiveSubscriptions retrieves every subscription with active set.
	FindActiveSubscriptions(ctx context.Context) ([]*entity.PriceAlertSubscription, error)

	// FindSubscriptionsByUser retrieves all subscriptions of a user.
	FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PriceAlertSubscription, error)

	// DeactivateSubscription clears the active flag and stamps the trigger
	// time. Used for one-shot subscriptions after they fire.
	DeactivateSubscription(ctx context.Context, id uuid.UUID, triggeredAt time.Time) error

	// DeleteSubscription removes a subscription by its ID.
	DeleteSubscription(ctx context.Context, id uuid.UUID) error
}
