// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateSubscription persists a new price alert subscription.
func (repo *alertRepository) CreateSubscription(ctx context.Context, sub *entity.PriceAlertSubscription) error {
	subM := fromSubscriptionDomain(sub)

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required alert fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert subscription")
	}

	sub.ID = subM.ID
	sub.CreatedAt = subM.CreatedAt
	sub.UpdatedAt = subM.UpdatedAt

	return nil
}

// FindSubscriptionByID retrieves a subscription by its unique ID.
func (repo *alertRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.PriceAlertSubscription, error) {
	var subM model.PriceAlertSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert subscription by ID")
	}

	return toSubscriptionDomain(&subM), nil
}

// FindActiveSubscriptions retrieves every subscription whose active flag is set.
func (repo *alertRepository) FindActiveSubscriptions(ctx context.Context) ([]*entity.PriceAlertSubscription, error) {
	var subModels []*model.PriceAlertSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active alert subscriptions")
	}

	subs := make([]*entity.PriceAlertSubscription, 0, len(subModels))
	for _, subM := range subModels {
		subs = append(subs, toSubscriptionDomain(subM))
	}

	return subs, nil
}

// FindSubscriptionsByUser retrieves all subscriptions of a user, newest first.
func (repo *alertRepository) FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PriceAlertSubscription, error) {
	var subModels []*model.PriceAlertSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alert subscriptions by user")
	}

	subs := make([]*entity.PriceAlertSubscription, 0, len(subModels))
	for _, subM := range subModels {
		subs = append(subs, toSubscriptionDomain(subM))
	}

	return subs, nil
}

// DeactivateSubscription clears the active flag and records when the alert fired.
func (repo *alertRepository) DeactivateSubscription(ctx context.Context, id uuid.UUID, triggeredAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PriceAlertSubscriptionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"active":       false,
			"triggered_at": triggeredAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate alert subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// DeleteSubscription removes a subscription by its ID.
func (repo *alertRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PriceAlertSubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete alert subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM PriceAlertSubscriptionModel to a domain entity.
func toSubscriptionDomain(data *model.PriceAlertSubscriptionModel) *entity.PriceAlertSubscription {
	if data == nil {
		return nil
	}

	return &entity.PriceAlertSubscription{
		ID:          data.ID,
		UserID:      data.UserID,
		Commodity:   data.Commodity,
		Condition:   entity.AlertCondition(data.Condition),
		Threshold:   data.Threshold,
		Location:    data.Location,
		Active:      data.Active,
		OneTime:     data.OneTime,
		TriggeredAt: data.TriggeredAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain entity to a GORM PriceAlertSubscriptionModel.
func fromSubscriptionDomain(data *entity.PriceAlertSubscription) *model.PriceAlertSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.PriceAlertSubscriptionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Commodity:   data.Commodity,
		Condition:   string(data.Condition),
		Threshold:   data.Threshold,
		Location:    data.Location,
		Active:      data.Active,
		OneTime:     data.OneTime,
		TriggeredAt: data.TriggeredAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
