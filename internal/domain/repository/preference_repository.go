// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPreferenceNotFound is returned when a user has no stored preferences.
// Callers must treat this as "default allow", never as a failure.
var ErrPreferenceNotFound = errors.New("notification preference not found")

// PreferenceRepository defines the interface for notification preference persistence.
// Preferences are upsert-only: they are overwritten, never deleted.
type PreferenceRepository interface {
	// FindPreferenceByUser retrieves a user's stored preferences.
	FindPreferenceByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// UpsertPreference creates or overwrites a user's preferences as a whole.
	// Concurrent writers are last-write-wins by design.
	UpsertPreference(ctx context.Context, pref *entity.NotificationPreference) error
}
