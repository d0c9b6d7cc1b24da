package usecase

import (
	"context"

	"mandi/internal/domain/entity"
	"mandi/internal/domain/repository"

	"github.com/google/uuid"
)

// SendInput is the payload for the direct send entry point.
type SendInput struct {
	UserID  uuid.UUID               `json:"user_id"`
	Type    entity.NotificationType `json:"type"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Data    map[string]string       `json:"data,omitempty"`
}

// SendResult is the outcome of a single direct send. A false Success with a
// Reason is a normal outcome (preference block, no device, evicted token),
// not an error.
type SendResult struct {
	Success   bool   `json:"success"`
	Reason    string `json:"reason,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

// BulkSendInput is the payload for the bulk send entry point.
type BulkSendInput struct {
	UserIDs []uuid.UUID             `json:"user_ids"`
	Type    entity.NotificationType `json:"type"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Data    map[string]string       `json:"data,omitempty"`
}

// BulkRecipientResult is the per-recipient outcome of a bulk send.
type BulkRecipientResult struct {
	UserID    uuid.UUID `json:"user_id"`
	Success   bool      `json:"success"`
	Reason    string    `json:"reason,omitempty"`
	MessageID string    `json:"message_id,omitempty"`
}

// BulkSendResult aggregates a bulk send. SuccessCount and FailureCount cover
// recipients whose delivery was actually attempted; recipients skipped by
// preference filtering or missing devices appear in Responses with a Reason.
type BulkSendResult struct {
	Success      bool                  `json:"success"`
	SuccessCount int                   `json:"success_count"`
	FailureCount int                   `json:"failure_count"`
	Responses    []BulkRecipientResult `json:"responses"`
}

// HistorySnapshot is a full export of one user's notification state.
type HistorySnapshot struct {
	UserID      uuid.UUID                      `json:"user_id"`
	Records     []*entity.NotificationRecord   `json:"records"`
	Stats       *entity.NotificationStats      `json:"stats"`
	Preferences *entity.NotificationPreference `json:"preferences,omitempty"`
}

// NotificationUsecase defines the interface for notification dispatch and history use cases
type NotificationUsecase interface {
	// Send delivers one notification to one user through the dispatch
	// pipeline: validation, preference filter, history write, push.
	Send(ctx context.Context, input *SendInput) (*SendResult, error)

	// SendBulk fans one notification out to up to the configured maximum
	// number of recipients, with per-recipient failure isolation.
	SendBulk(ctx context.Context, input *BulkSendInput) (*BulkSendResult, error)

	// GetHistory retrieves a user's notification records with filters and pagination
	GetHistory(ctx context.Context, userID uuid.UUID, query repository.NotificationQuery) ([]*entity.NotificationRecord, error)

	// MarkRead flips one record's read flag. The record must belong to the user.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead flips every unread record of the user atomically.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// Delete removes one record. The record must belong to the user.
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error

	// DeleteAll removes every record of the user atomically.
	DeleteAll(ctx context.Context, userID uuid.UUID) error

	// GetStats aggregates total, unread, and per-type counts for a user.
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.NotificationStats, error)

	// Export returns a full snapshot of the user's records, stats, and preferences.
	Export(ctx context.Context, userID uuid.UUID) (*HistorySnapshot, error)

	// PurgeExpired removes all records past their expiry and reports how many.
	PurgeExpired(ctx context.Context) (int64, error)
}
