// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertCondition is the trigger rule of a price alert subscription.
type AlertCondition string

const (
	// AlertConditionAbove triggers when the current price rises above the threshold.
	AlertConditionAbove AlertCondition = "above"
	// AlertConditionBelow triggers when the current price falls below the threshold.
	AlertConditionBelow AlertCondition = "below"
	// AlertConditionChange triggers when the current price deviates from the
	// threshold by more than 5% of the threshold.
	AlertConditionChange AlertCondition = "change"
)

// Valid reports whether the condition is one of the supported rules.
func (c AlertCondition) Valid() bool {
	switch c {
	case AlertConditionAbove, AlertConditionBelow, AlertConditionChange:
		return true
	default:
		return false
	}
}

// PriceAlertSubscription is a user's standing request to be notified when a
// commodity price satisfies a condition. One-shot subscriptions deactivate
// themselves the first time they fire; all others stay active until the user
// deletes them. Subscriptions are never auto-deleted.
type PriceAlertSubscription struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	Commodity   string         `json:"commodity"`
	Condition   AlertCondition `json:"condition"`
	Threshold   float64        `json:"threshold"`
	Location    string         `json:"location,omitempty"` // Optional market/mandi location filter.
	Active      bool           `json:"active"`
	OneTime     bool           `json:"one_time"`
	TriggeredAt *time.Time     `json:"triggered_at,omitempty"` // Timestamp of the most recent fire.
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// PriceEntry is one observed market price for a commodity at a location.
type PriceEntry struct {
	ID         uuid.UUID `json:"id"`
	Commodity  string    `json:"commodity"`
	Location   string    `json:"location"`
	Price      float64   `json:"price"` // Price per quintal in INR.
	RecordedAt time.Time `json:"recorded_at"`
}
