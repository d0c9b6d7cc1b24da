package usecase

import (
	"context"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertInput is the payload for creating a price alert subscription.
type AlertInput struct {
	UserID    uuid.UUID             `json:"user_id"`
	Commodity string                `json:"commodity"`
	Condition entity.AlertCondition `json:"condition"`
	Threshold float64               `json:"threshold"`
	Location  string                `json:"location,omitempty"`
	OneTime   bool                  `json:"one_time,omitempty"`
}

// EvaluationResult reports one alert evaluation run.
type EvaluationResult struct {
	TriggeredCount int `json:"triggered_count"`
}

// AlertUsecase defines the interface for price alert use cases
type AlertUsecase interface {
	// CreateAlert registers a new active price alert subscription.
	CreateAlert(ctx context.Context, input *AlertInput) (*entity.PriceAlertSubscription, error)

	// GetUserAlerts retrieves all subscriptions of a user
	GetUserAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.PriceAlertSubscription, error)

	// DeleteAlert removes a subscription. The subscription must belong to the user.
	DeleteAlert(ctx context.Context, userID, alertID uuid.UUID) error

	// EvaluateAlerts runs one evaluation pass over all active subscriptions:
	// fetch current prices, dispatch matches, deactivate one-shot alerts.
	// Per-subscription failures are logged and skipped, never propagated.
	EvaluateAlerts(ctx context.Context) (*EvaluationResult, error)
}
