// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification record is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationQuery narrows a user's notification history listing.
type NotificationQuery struct {
	Type       *entity.NotificationType // Filter to one topic when set.
	UnreadOnly bool                     // Only records not yet marked read.
	Limit      int                      // Page size; 0 means no limit.
	Offset     int
}

// NotificationRepository defines the interface for the notification history store.
type NotificationRepository interface {
	// CreateRecord persists a new notification history record.
	CreateRecord(ctx context.Context, record *entity.NotificationRecord) error

	// BatchCreateRecords persists multiple history records in one batch.
	BatchCreateRecords(ctx context.Context, records []*entity.NotificationRecord) error

	// FindRecordByID retrieves a record by its unique ID.
	FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.NotificationRecord, error)

	// FindRecordsByUser retrieves a user's records, newest first.
	FindRecordsByUser(ctx context.Context, userID uuid.UUID, query NotificationQuery) ([]*entity.NotificationRecord, error)

	// MarkRead flips a single record's read flag to true.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead flips every unread record of a user in one statement.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// DeleteRecord hard-deletes a single record.
	DeleteRecord(ctx context.Context, id uuid.UUID) error

	// DeleteAllByUser hard-deletes all of a user's records in one statement.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error

	// CountStats aggregates total, unread, and per-type counts for a user.
	CountStats(ctx context.Context, userID uuid.UUID) (*entity.NotificationStats, error)

	// DeleteExpired removes every record whose expiry has passed and returns
	// the number of rows removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
