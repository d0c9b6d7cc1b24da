// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindPreferenceByUser retrieves a user's stored preferences.
func (repo *preferenceRepository) FindPreferenceByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	var prefM model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find preference by user")
	}

	return toPreferenceDomain(&prefM), nil
}

// UpsertPreference overwrites a user's preference row as a whole. Last write
// wins for concurrent updates.
func (repo *preferenceRepository) UpsertPreference(ctx context.Context, pref *entity.NotificationPreference) error {
	prefM := fromPreferenceDomain(pref)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(prefM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert preference")
	}

	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPreferenceDomain converts a GORM NotificationPreferenceModel to a domain entity.
func toPreferenceDomain(data *model.NotificationPreferenceModel) *entity.NotificationPreference {
	if data == nil {
		return nil
	}

	return &entity.NotificationPreference{
		UserID:           data.UserID,
		PriceAlerts:      data.PriceAlerts,
		DealUpdates:      data.DealUpdates,
		NewOpportunities: data.NewOpportunities,
		SystemUpdates:    data.SystemUpdates,
		Marketing:        data.Marketing,
		Channels: entity.ChannelSettings{
			Push:  data.PushEnabled,
			Email: data.EmailEnabled,
			SMS:   data.SMSEnabled,
		},
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPreferenceDomain converts a domain entity to a GORM NotificationPreferenceModel.
func fromPreferenceDomain(data *entity.NotificationPreference) *model.NotificationPreferenceModel {
	if data == nil {
		return nil
	}

	return &model.NotificationPreferenceModel{
		UserID:           data.UserID,
		PriceAlerts:      data.PriceAlerts,
		DealUpdates:      data.DealUpdates,
		NewOpportunities: data.NewOpportunities,
		SystemUpdates:    data.SystemUpdates,
		Marketing:        data.Marketing,
		PushEnabled:      data.Channels.Push,
		EmailEnabled:     data.Channels.Email,
		SMSEnabled:       data.Channels.SMS,
		UpdatedAt:        data.UpdatedAt,
	}
}
