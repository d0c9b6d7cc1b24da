// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a user's push-capable destination. Each user record owns at
// most one destination; registering again overwrites the token, and the
// gateway reporting the token permanently invalid removes the row. A user
// without a device is a valid silent-delivery state, not an error.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the device record.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this device.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging token for push notifications.
	Platform  string    `json:"platform"`   // Device platform (ios, android, web).
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last token refresh.
}
