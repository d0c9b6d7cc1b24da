package usecase

import (
	"context"

	"mandi/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceUsecase defines the interface for notification preference use cases
type PreferenceUsecase interface {
	// GetPreferences retrieves a user's preferences. A user who never stored
	// any gets an empty record, which the filter treats as allow-all.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// UpdatePreferences overwrites a user's preferences as a whole.
	UpdatePreferences(ctx context.Context, pref *entity.NotificationPreference) error

	// OptOut sets the flag for one notification type to false, leaving the
	// rest of the record untouched.
	OptOut(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType) error
}
