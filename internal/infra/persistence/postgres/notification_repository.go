// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateRecord persists a new notification history record.
func (repo *notificationRepository) CreateRecord(ctx context.Context, record *entity.NotificationRecord) error {
	recordM, err := fromRecordDomain(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// BatchCreateRecords persists multiple history records in one batch.
func (repo *notificationRepository) BatchCreateRecords(ctx context.Context, records []*entity.NotificationRecord) error {
	if len(records) == 0 {
		return nil
	}

	recordModels := make([]*model.NotificationRecordModel, 0, len(records))
	for _, record := range records {
		recordM, err := fromRecordDomain(record)
		if err != nil {
			return err
		}
		recordModels = append(recordModels, recordM)
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(recordModels, 100).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification records")
	}

	for i, recordM := range recordModels {
		records[i].ID = recordM.ID
		records[i].CreatedAt = recordM.CreatedAt
	}

	return nil
}

// FindRecordByID retrieves a record by its unique ID.
func (repo *notificationRepository) FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.NotificationRecord, error) {
	var recordM model.NotificationRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification record by ID")
	}

	return toRecordDomain(&recordM)
}

// FindRecordsByUser retrieves a user's records, newest first.
func (repo *notificationRepository) FindRecordsByUser(ctx context.Context, userID uuid.UUID, query repository.NotificationQuery) ([]*entity.NotificationRecord, error) {
	var recordModels []*model.NotificationRecordModel

	q := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if query.Type != nil {
		q = q.Where("type = ?", string(*query.Type))
	}
	if query.UnreadOnly {
		q = q.Where("read = ?", false)
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	if query.Offset > 0 {
		q = q.Offset(query.Offset)
	}

	if err := q.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification records by user")
	}

	records := make([]*entity.NotificationRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		record, err := toRecordDomain(recordM)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// MarkRead flips a single record's read flag to true.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationRecordModel{}).
		Where("id = ?", id).
		Update("read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flips every unread record of a user. The single UPDATE makes
// the operation atomic from the caller's point of view.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationRecordModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark all notifications read")
	}

	return nil
}

// DeleteRecord hard-deletes a single record.
func (repo *notificationRepository) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationRecordModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteAllByUser hard-deletes all of a user's records in one statement.
func (repo *notificationRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.NotificationRecordModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete notification records by user")
	}

	return nil
}

// CountStats aggregates total, unread, and per-type counts for a user.
func (repo *notificationRepository) CountStats(ctx context.Context, userID uuid.UUID) (*entity.NotificationStats, error) {
	stats := &entity.NotificationStats{
		ByType: make(map[entity.NotificationType]int64),
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationRecordModel{}).
		Where("user_id = ?", userID).
		Count(&stats.Total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationRecordModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&stats.Unread).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	var typeCounts []struct {
		Type  string
		Count int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationRecordModel{}).
		Select("type, count(*) as count").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&typeCounts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notifications by type")
	}

	for _, tc := range typeCounts {
		stats.ByType[entity.NotificationType(tc.Type)] = tc.Count
	}

	return stats, nil
}

// DeleteExpired removes every record whose expiry has passed.
func (repo *notificationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.NotificationRecordModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired notification records")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toRecordDomain(data *model.NotificationRecordModel) (*entity.NotificationRecord, error) {
	if data == nil {
		return nil, nil
	}

	var payload map[string]string
	if len(data.Data) > 0 {
		if err := json.Unmarshal(data.Data, &payload); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification data payload")
		}
	}

	return &entity.NotificationRecord{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      entity.NotificationType(data.Type),
		Title:     data.Title,
		Message:   data.Message,
		Data:      payload,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}, nil
}

func fromRecordDomain(data *entity.NotificationRecord) (*model.NotificationRecordModel, error) {
	if data == nil {
		return nil, nil
	}

	var payload []byte
	if len(data.Data) > 0 {
		encoded, err := json.Marshal(data.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode notification data payload")
		}
		payload = encoded
	}

	return &model.NotificationRecordModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      string(data.Type),
		Title:     data.Title,
		Message:   data.Message,
		Data:      payload,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}, nil
}
