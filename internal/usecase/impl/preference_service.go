package impl

import (
	"context"
	"fmt"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/errors"
	"mandi/internal/usecase"

	"github.com/google/uuid"
)

type preferenceService struct {
	preferenceRepo repository.PreferenceRepository
}

// NewPreferenceService creates a new preference service instance
func NewPreferenceService(preferenceRepo repository.PreferenceRepository) usecase.PreferenceUsecase {
	return &preferenceService{
		preferenceRepo: preferenceRepo,
	}
}

// GetPreferences retrieves a user's preferences. A user who never stored any
// gets an empty record, which filters as allow-all.
func (s *preferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	prefs, err := s.preferenceRepo.FindPreferenceByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return &entity.NotificationPreference{UserID: userID}, nil
		}

		return nil, fmt.Errorf("failed to fetch preferences: %w", err)
	}

	return prefs, nil
}

// UpdatePreferences overwrites a user's preferences as a whole. Concurrent
// writers are last-write-wins.
func (s *preferenceService) UpdatePreferences(ctx context.Context, pref *entity.NotificationPreference) error {
	if pref == nil || pref.UserID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("user id is required")
	}

	return s.preferenceRepo.UpsertPreference(ctx, pref)
}

// OptOut sets the flag for one notification type to false, leaving the rest
// of the record untouched.
func (s *preferenceService) OptOut(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType) error {
	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return err
	}

	blocked := false
	switch notificationType {
	case entity.NotificationTypePriceAlert:
		prefs.PriceAlerts = &blocked
	case entity.NotificationTypeDealUpdate:
		prefs.DealUpdates = &blocked
	case entity.NotificationTypeNewOpportunity:
		prefs.NewOpportunities = &blocked
	case entity.NotificationTypeSystemUpdate:
		prefs.SystemUpdates = &blocked
	case entity.NotificationTypeMarketing:
		prefs.Marketing = &blocked
	default:
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown notification type %q", notificationType))
	}

	return s.preferenceRepo.UpsertPreference(ctx, prefs)
}
