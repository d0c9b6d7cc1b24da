// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mandi/config"
	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/domain/service"
	"mandi/internal/errors"
	"mandi/internal/usecase"

	"github.com/google/uuid"
)

// Reasons surfaced to callers for non-error send outcomes.
const (
	ReasonPreferenceBlocked = "Blocked by user preferences"
	ReasonInvalidToken      = "Invalid token removed"
	ReasonNoDevice          = "No device registered"
	ReasonDeliveryFailed    = "Delivery failed"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	preferenceRepo   repository.PreferenceRepository
	deviceRepo       repository.DeviceRepository
	txManager        repository.TransactionManager
	pushGateway      service.PushGateway
	limits           *config.NotificationConfig
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	preferenceRepo repository.PreferenceRepository,
	deviceRepo repository.DeviceRepository,
	txManager repository.TransactionManager,
	pushGateway service.PushGateway,
	limits *config.NotificationConfig,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		preferenceRepo:   preferenceRepo,
		deviceRepo:       deviceRepo,
		txManager:        txManager,
		pushGateway:      pushGateway,
		limits:           limits,
		logger:           logger,
	}
}

// Send delivers one notification to one user. The pipeline is: validate,
// preference filter, history write, device lookup, push. History records
// intent: it is written before the push and kept regardless of transport
// outcome. A preference block writes nothing.
func (s *notificationService) Send(ctx context.Context, input *usecase.SendInput) (*usecase.SendResult, error) {
	if err := s.validatePayload(input.UserID, input.Title, input.Message, input.Data); err != nil {
		return nil, err
	}

	notificationType := input.Type
	if notificationType == "" {
		notificationType = entity.NotificationTypeSystemUpdate
	}

	prefs, err := s.loadPreferences(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !prefs.Allows(notificationType) || !prefs.PushEnabled() {
		return &usecase.SendResult{
			Success: false,
			Reason:  ReasonPreferenceBlocked,
		}, nil
	}

	record := s.buildRecord(input.UserID, notificationType, input.Title, input.Message, input.Data)
	if err := s.notificationRepo.CreateRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}

	device, err := s.deviceRepo.FindDeviceByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			// A user with no destination is a valid silent-delivery state.
			return &usecase.SendResult{
				Success: false,
				Reason:  ReasonNoDevice,
			}, nil
		}

		return nil, fmt.Errorf("failed to fetch device: %w", err)
	}

	messageID, err := s.pushGateway.Send(ctx, device.FCMToken, input.Title, input.Message, input.Data)
	if err != nil {
		if service.IsInvalidDestination(err) {
			s.evictDevice(ctx, input.UserID)

			return &usecase.SendResult{
				Success: false,
				Reason:  ReasonInvalidToken,
			}, nil
		}

		return nil, domainerrors.ErrDeliveryFailed.WrapMessage(err.Error())
	}

	return &usecase.SendResult{
		Success:   true,
		MessageID: messageID,
	}, nil
}

// SendBulk fans one notification out to many recipients. Validation happens
// before any side effect; after that every recipient is an independent
// failure domain.
func (s *notificationService) SendBulk(ctx context.Context, input *usecase.BulkSendInput) (*usecase.BulkSendResult, error) {
	if len(input.UserIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one recipient is required")
	}
	if len(input.UserIDs) > s.limits.BulkMaxRecipients {
		return nil, domainerrors.ErrBulkLimitExceeded
	}
	if err := s.validateContent(input.Title, input.Message, input.Data); err != nil {
		return nil, err
	}

	notificationType := input.Type
	if notificationType == "" {
		notificationType = entity.NotificationTypeSystemUpdate
	}

	result := &usecase.BulkSendResult{
		Responses: make([]usecase.BulkRecipientResult, 0, len(input.UserIDs)),
	}

	// Preference filter first, so blocked recipients get no history record.
	allowed := make([]uuid.UUID, 0, len(input.UserIDs))
	for _, userID := range input.UserIDs {
		prefs, err := s.loadPreferences(ctx, userID)
		if err != nil {
			s.logger.Warn("bulk send: preference lookup failed, skipping recipient",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
			result.Responses = append(result.Responses, usecase.BulkRecipientResult{
				UserID: userID,
				Reason: ReasonDeliveryFailed,
			})
			result.FailureCount++

			continue
		}

		if !prefs.Allows(notificationType) || !prefs.PushEnabled() {
			result.Responses = append(result.Responses, usecase.BulkRecipientResult{
				UserID: userID,
				Reason: ReasonPreferenceBlocked,
			})

			continue
		}

		allowed = append(allowed, userID)
	}

	if len(allowed) == 0 {
		result.Success = result.FailureCount == 0

		return result, nil
	}

	records := make([]*entity.NotificationRecord, 0, len(allowed))
	for _, userID := range allowed {
		records = append(records, s.buildRecord(userID, notificationType, input.Title, input.Message, input.Data))
	}
	if err := s.notificationRepo.BatchCreateRecords(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to record notifications: %w", err)
	}

	// Device lookups are chunked to the repository's id-batch cap across the
	// whole recipient list, so no recipient past the first chunk is dropped.
	devices, err := s.lookupDevices(ctx, allowed)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(devices))
	userByToken := make(map[string]uuid.UUID, len(devices))
	for _, userID := range allowed {
		device, ok := devices[userID]
		if !ok {
			result.Responses = append(result.Responses, usecase.BulkRecipientResult{
				UserID: userID,
				Reason: ReasonNoDevice,
			})

			continue
		}
		tokens = append(tokens, device.FCMToken)
		userByToken[device.FCMToken] = userID
	}

	// Multicast in gateway-sized chunks. A failed chunk marks its own
	// recipients failed and the loop moves on.
	for start := 0; start < len(tokens); start += service.MulticastLimit {
		end := start + service.MulticastLimit
		if end > len(tokens) {
			end = len(tokens)
		}
		chunk := tokens[start:end]

		batch, err := s.pushGateway.SendMulticast(ctx, chunk, input.Title, input.Message, input.Data)
		if err != nil {
			s.logger.Error("bulk send: multicast chunk failed",
				slog.Int("chunk_size", len(chunk)),
				slog.Any("error", err),
			)
			for _, token := range chunk {
				result.Responses = append(result.Responses, usecase.BulkRecipientResult{
					UserID: userByToken[token],
					Reason: ReasonDeliveryFailed,
				})
			}
			result.FailureCount += len(chunk)

			continue
		}

		result.SuccessCount += batch.SuccessCount
		result.FailureCount += batch.FailureCount

		for _, resp := range batch.Responses {
			userID := userByToken[resp.Token]
			recipient := usecase.BulkRecipientResult{
				UserID:    userID,
				Success:   resp.Err == nil,
				MessageID: resp.MessageID,
			}

			if resp.Err != nil {
				recipient.Reason = ReasonDeliveryFailed
				if service.IsInvalidDestination(resp.Err) {
					s.evictDevice(ctx, userID)
					recipient.Reason = ReasonInvalidToken
				}
			}

			result.Responses = append(result.Responses, recipient)
		}
	}

	result.Success = result.FailureCount == 0

	return result, nil
}

// GetHistory retrieves a user's notification records with filters and pagination
func (s *notificationService) GetHistory(ctx context.Context, userID uuid.UUID, query repository.NotificationQuery) ([]*entity.NotificationRecord, error) {
	return s.notificationRepo.FindRecordsByUser(ctx, userID, query)
}

// MarkRead flips one record's read flag after checking ownership.
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	record, err := s.notificationRepo.FindRecordByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return err
	}

	if record.UserID != userID {
		return domainerrors.ErrForbidden
	}

	return s.notificationRepo.MarkRead(ctx, notificationID)
}

// MarkAllRead flips every unread record of the user within one transaction.
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewNotificationRepository().MarkAllRead(ctx, userID)
	})
}

// Delete removes one record after checking ownership.
func (s *notificationService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	record, err := s.notificationRepo.FindRecordByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return err
	}

	if record.UserID != userID {
		return domainerrors.ErrForbidden
	}

	return s.notificationRepo.DeleteRecord(ctx, notificationID)
}

// DeleteAll removes every record of the user within one transaction.
func (s *notificationService) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewNotificationRepository().DeleteAllByUser(ctx, userID)
	})
}

// GetStats aggregates total, unread, and per-type counts for a user.
func (s *notificationService) GetStats(ctx context.Context, userID uuid.UUID) (*entity.NotificationStats, error) {
	return s.notificationRepo.CountStats(ctx, userID)
}

// Export returns a full snapshot of the user's notification state.
func (s *notificationService) Export(ctx context.Context, userID uuid.UUID) (*usecase.HistorySnapshot, error) {
	records, err := s.notificationRepo.FindRecordsByUser(ctx, userID, repository.NotificationQuery{})
	if err != nil {
		return nil, err
	}

	stats, err := s.notificationRepo.CountStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.HistorySnapshot{
		UserID:      userID,
		Records:     records,
		Stats:       stats,
		Preferences: prefs,
	}, nil
}

// PurgeExpired removes all records past their expiry.
func (s *notificationService) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := s.notificationRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	if purged > 0 {
		s.logger.Info("purged expired notification records",
			slog.Int64("count", purged),
		)
	}

	return purged, nil
}

// --- helpers ---

func (s *notificationService) validatePayload(userID uuid.UUID, title, message string, data map[string]string) error {
	if userID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("user id is required")
	}

	return s.validateContent(title, message, data)
}

func (s *notificationService) validateContent(title, message string, data map[string]string) error {
	if title == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}
	if message == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("message is required")
	}

	size := 0
	for key, value := range data {
		size += len(key) + len(value)
	}
	if size > s.limits.PayloadMaxBytes {
		return domainerrors.ErrPayloadTooLarge
	}

	return nil
}

// loadPreferences returns the user's stored preferences, or nil when none
// exist. The nil record filters as allow-all.
func (s *notificationService) loadPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	prefs, err := s.preferenceRepo.FindPreferenceByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to fetch preferences: %w", err)
	}

	return prefs, nil
}

func (s *notificationService) buildRecord(userID uuid.UUID, notificationType entity.NotificationType, title, message string, data map[string]string) *entity.NotificationRecord {
	now := time.Now()

	return &entity.NotificationRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Message:   message,
		Data:      data,
		Read:      false,
		CreatedAt: now,
		ExpiresAt: now.Add(notificationType.Retention()),
	}
}

// lookupDevices resolves registered devices for the given users, chunking by
// the repository id-batch cap. The result maps user id to device.
func (s *notificationService) lookupDevices(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.UserDevice, error) {
	devices := make(map[uuid.UUID]*entity.UserDevice, len(userIDs))

	for start := 0; start < len(userIDs); start += repository.MaxIDBatch {
		end := start + repository.MaxIDBatch
		if end > len(userIDs) {
			end = len(userIDs)
		}

		chunk, err := s.deviceRepo.FindDevicesForUsers(ctx, userIDs[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to fetch devices: %w", err)
		}

		for _, device := range chunk {
			devices[device.UserID] = device
		}
	}

	return devices, nil
}

// evictDevice removes a permanently dead destination. Eviction is idempotent
// and a failure here only logs: the send outcome already stands.
func (s *notificationService) evictDevice(ctx context.Context, userID uuid.UUID) {
	if err := s.deviceRepo.DeleteDeviceByUser(ctx, userID); err != nil {
		s.logger.Error("failed to evict invalid device token",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}
}
