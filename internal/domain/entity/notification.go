// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a notification by the product topic it belongs to.
type NotificationType string

const (
	// NotificationTypePriceAlert is sent when a price alert subscription triggers.
	NotificationTypePriceAlert NotificationType = "price_alert"
	// NotificationTypeDealUpdate is sent when a deal is created or changes status.
	NotificationTypeDealUpdate NotificationType = "deal_update"
	// NotificationTypeNewOpportunity is sent when a new buying/selling opportunity matches a user.
	NotificationTypeNewOpportunity NotificationType = "new_opportunity"
	// NotificationTypeSystemUpdate is sent for platform-level announcements.
	NotificationTypeSystemUpdate NotificationType = "system_update"
	// NotificationTypeMarketing is sent for promotional content.
	NotificationTypeMarketing NotificationType = "marketing"
)

const defaultRetention = 30 * 24 * time.Hour

// Retention returns how long a notification of this type is kept before it
// is eligible for expiry. Unknown types fall back to the default horizon.
func (t NotificationType) Retention() time.Duration {
	switch t {
	case NotificationTypePriceAlert:
		return 7 * 24 * time.Hour
	case NotificationTypeDealUpdate:
		return 30 * 24 * time.Hour
	case NotificationTypeNewOpportunity:
		return 7 * 24 * time.Hour
	case NotificationTypeSystemUpdate:
		return 90 * 24 * time.Hour
	default:
		return defaultRetention
	}
}

// NotificationRecord is the persisted history entry for a single notification.
// It records delivery intent: a record is written once per accepted send,
// whether or not the push transport ultimately succeeded.
type NotificationRecord struct {
	ID        uuid.UUID         `json:"id"`         // The unique identifier for the record.
	UserID    uuid.UUID         `json:"user_id"`    // The recipient user.
	Type      NotificationType  `json:"type"`       // The topic classification.
	Title     string            `json:"title"`      // The notification title.
	Message   string            `json:"message"`    // The notification body.
	Data      map[string]string `json:"data"`       // Structured payload forwarded to the client.
	Read      bool              `json:"read"`       // Whether the user has marked the record as read.
	CreatedAt time.Time         `json:"created_at"` // Timestamp of when the record was created.
	ExpiresAt time.Time         `json:"expires_at"` // Timestamp after which the record may be purged.
}

// NotificationStats summarizes a user's notification history.
type NotificationStats struct {
	Total  int64                      `json:"total"`
	Unread int64                      `json:"unread"`
	ByType map[NotificationType]int64 `json:"by_type"`
}
