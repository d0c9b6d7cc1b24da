package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mandi/config"
	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	domainservice "mandi/internal/domain/service"
	mockRepo "mandi/internal/mocks/repository"
	mockSvc "mandi/internal/mocks/service"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockPreferenceRepository,
	*mockRepo.MockDeviceRepository,
	*mockRepo.MockTransactionManager,
	*mockSvc.MockPushGateway,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	pushGateway := mockSvc.NewMockPushGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewNotificationService(
		notificationRepo,
		preferenceRepo,
		deviceRepo,
		txManager,
		pushGateway,
		&config.NotificationConfig{
			BulkMaxRecipients: 1000,
			PayloadMaxBytes:   4096,
		},
		logger,
	)

	return svc, notificationRepo, preferenceRepo, deviceRepo, txManager, pushGateway
}

func TestNotificationService_Send_Success(t *testing.T) {
	svc, notificationRepo, preferenceRepo, deviceRepo, _, pushGateway := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	data := map[string]string{"deal_id": uuid.New().String()}

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	notificationRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(nil)

	deviceRepo.EXPECT().
		FindDeviceByUser(ctx, userID).
		Return(&entity.UserDevice{UserID: userID, FCMToken: "token-1", Platform: "android"}, nil)

	pushGateway.EXPECT().
		Send(ctx, "token-1", "Deal Update", "Payment confirmed", data).
		Return("msg-1", nil)

	result, err := svc.Send(ctx, &usecase.SendInput{
		UserID:  userID,
		Type:    entity.NotificationTypeDealUpdate,
		Title:   "Deal Update",
		Message: "Payment confirmed",
		Data:    data,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "msg-1", result.MessageID)
	assert.Empty(t, result.Reason)
}

func TestNotificationService_Send_RecordsExpiryByType(t *testing.T) {
	svc, notificationRepo, preferenceRepo, deviceRepo, _, pushGateway := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	var captured *entity.NotificationRecord

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	notificationRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Run(func(ctx context.Context, record *entity.NotificationRecord) {
			captured = record
		}).
		Return(nil)

	deviceRepo.EXPECT().
		FindDeviceByUser(ctx, userID).
		Return(&entity.UserDevice{UserID: userID, FCMToken: "token-1"}, nil)

	pushGateway.EXPECT().
		Send(ctx, "token-1", "Price Alert", "wheat moved", mock.Anything).
		Return("msg-1", nil)

	_, err := svc.Send(ctx, &usecase.SendInput{
		UserID:  userID,
		Type:    entity.NotificationTypePriceAlert,
		Title:   "Price Alert",
		Message: "wheat moved",
	})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, userID, captured.UserID)
	assert.Equal(t, entity.NotificationTypePriceAlert, captured.Type)
	assert.False(t, captured.Read)
	assert.Equal(t, captured.CreatedAt.Add(entity.NotificationTypePriceAlert.Retention()), captured.ExpiresAt)
}

func TestNotificationService_Send_PreferenceBlocked_NoHistory(t *testing.T) {
	svc, _, preferenceRepo, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	blocked := false

	// Only the stored preference lookup happens: no history record and no
	// gateway call for a blocked type.
	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(&entity.NotificationPreference{
			UserID:      userID,
			DealUpdates: &blocked,
		}, nil)

	result, err := svc.Send(ctx, &usecase.SendInput{
		UserID:  userID,
		Type:    entity.NotificationTypeDealUpdate,
		Title:   "Deal Update",
		Message: "Payment confirmed",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonPreferenceBlocked, result.Reason)
}

func TestNotificationService_Send_ExplicitTrueAllows(t *testing.T) {
	svc, notificationRepo, preferenceRepo, deviceRepo, _, pushGateway := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	enabled := true

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(&entity.NotificationPreference{
			UserID:      userID,
			DealUpdates: &enabled,
		}, nil)

	notificationRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(nil)

	deviceRepo.EXPECT().
		FindDeviceByUser(ctx, userID).
		Return(&entity.UserDevice{UserID: userID, FCMToken: "token-1"}, nil)

	pushGateway.EXPECT().
		Send(ctx, "token-1", "Deal Update", "Payment confirmed", mock.Anything).
		Return("msg-1", nil)

	result, err := svc.Send(ctx, &usecase.SendInput{
		UserID:  userID,
		Type:    entity.NotificationTypeDealUpdate,
		Title:   "Deal Update",
		Message: "Payment confirmed",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestNotificationService_Send_PushChannelDisabled_Blocked(t *testing.T) {
	svc, _, preferenceRepo, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	disabled := false

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(&entity.NotificationPreference{
			UserID:   userID,
			Channels: entity.ChannelSettings{Push: &disabled},
		}, nil)

	result, err := svc.Send(ctx, &usecase.SendInput{
		UserID:  userID,
		Type:    entity.NotificationTypeSystemUpdate,
		Title:   "Maintenance",
		Message: "Scheduled downtime tonight",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonPreferenceBlocked, result.Reason)
}

func TestNotificationService_Send_NoDevice_HistoryKept(t *testing.T) {
	svc, notificationRepo, preferenceRepo, deviceRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	notificationRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(nil)

	deviceRepo.EXPECT().
		FindDeviceByUser(ctx, userID).
		Return(nil, repository.ErrDeviceNotFound)

	result, err := svc.Send(ctx, &usecase.SendInput{
		UserID:  userID,
		Title:   "Hello",
		Message: "World",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonNoDevice, result.Reason)
}

func TestNotificationService_Send_InvalidToken_EvictsDevice(t *testing.T) {
	svc, notificationRepo, preferenceRepo, deviceRepo, _, pushGateway := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	notificationRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(nil)

	deviceRepo.EXPECT().
		FindDeviceByUser(ctx, userID).
		Return(&entity.UserDevice{UserID: userID, FCMToken: "dead-token"}, nil)

	pushGateway.EXPECT().
		Send(ctx, "dead-token", "Hello", "World", mock.Anything).
		Return("", &domainservice.DeliveryError{
			Kind:  domainservice.DeliveryInvalidDestination,
			Token: "dead-token",
			Err:   errors.New("registration token not registered"),
		})

	deviceRepo.EXPECT().
		DeleteDeviceByUser(ctx, userID).
		Return(nil)

	result, err := svc.Send(ctx, &usecase.SendInput{
		UserID:  userID,
		Title:   "Hello",
		Message: "World",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonInvalidToken, result.Reason)
}

func TestNotificationService_Send_TransientFailure_ReturnsError(t *testing.T) {
	svc, notificationRepo, preferenceRepo, deviceRepo, _, pushGateway := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	// The history record stays even when the transport fails afterwards.
	notificationRepo.EXPECT().
		CreateRecord(ctx, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(nil)

	deviceRepo.EXPECT().
		FindDeviceByUser(ctx, userID).
		Return(&entity.UserDevice{UserID: userID, FCMToken: "token-1"}, nil)

	pushGateway.EXPECT().
		Send(ctx, "token-1", "Hello", "World", mock.Anything).
		Return("", &domainservice.DeliveryError{
			Kind: domainservice.DeliveryTransient,
			Err:  errors.New("fcm unavailable"),
		})

	result, err := svc.Send(ctx, &usecase.SendInput{
		UserID:  userID,
		Title:   "Hello",
		Message: "World",
	})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestNotificationService_Send_ValidationFailures(t *testing.T) {
	svc, _, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()

	_, err := svc.Send(ctx, &usecase.SendInput{
		UserID:  uuid.Nil,
		Title:   "Hello",
		Message: "World",
	})
	assert.Error(t, err)

	_, err = svc.Send(ctx, &usecase.SendInput{
		UserID:  uuid.New(),
		Message: "World",
	})
	assert.Error(t, err)

	_, err = svc.Send(ctx, &usecase.SendInput{
		UserID: uuid.New(),
		Title:  "Hello",
	})
	assert.Error(t, err)
}

func TestNotificationService_Send_PayloadTooLarge(t *testing.T) {
	svc, _, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	oversized := make([]byte, 5000)
	for i := range oversized {
		oversized[i] = 'x'
	}

	_, err := svc.Send(ctx, &usecase.SendInput{
		UserID:  uuid.New(),
		Title:   "Hello",
		Message: "World",
		Data:    map[string]string{"blob": string(oversized)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPayloadTooLarge)
}

func TestNotificationService_SendBulk_LimitExceededBeforeSideEffects(t *testing.T) {
	svc, _, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	userIDs := make([]uuid.UUID, 1001)
	for i := range userIDs {
		userIDs[i] = uuid.New()
	}

	// No repository or gateway expectations: the cap is enforced before any
	// side effect.
	result, err := svc.SendBulk(ctx, &usecase.BulkSendInput{
		UserIDs: userIDs,
		Title:   "Hello",
		Message: "World",
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrBulkLimitExceeded)
	assert.Equal(t, "maximum 1000 users per batch", domainerrors.ErrBulkLimitExceeded.Message())
}

func TestNotificationService_SendBulk_EmptyRecipients(t *testing.T) {
	svc, _, _, _, _, _ := createTestNotificationService(t)

	_, err := svc.SendBulk(context.Background(), &usecase.BulkSendInput{
		Title:   "Hello",
		Message: "World",
	})
	assert.Error(t, err)
}

func TestNotificationService_SendBulk_MixedOutcomes(t *testing.T) {
	svc, notificationRepo, preferenceRepo, deviceRepo, _, pushGateway := createTestNotificationService(t)

	ctx := context.Background()
	delivered := uuid.New()
	blocked := uuid.New()
	deviceless := uuid.New()
	optedOut := false

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, delivered).
		Return(nil, repository.ErrPreferenceNotFound)
	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, blocked).
		Return(&entity.NotificationPreference{UserID: blocked, SystemUpdates: &optedOut}, nil)
	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, deviceless).
		Return(nil, repository.ErrPreferenceNotFound)

	// Only the two allowed recipients get history records.
	notificationRepo.EXPECT().
		BatchCreateRecords(ctx, mock.MatchedBy(func(records []*entity.NotificationRecord) bool {
			return len(records) == 2
		})).
		Return(nil)

	deviceRepo.EXPECT().
		FindDevicesForUsers(ctx, []uuid.UUID{delivered, deviceless}).
		Return([]*entity.UserDevice{
			{UserID: delivered, FCMToken: "token-1"},
		}, nil)

	pushGateway.EXPECT().
		SendMulticast(ctx, []string{"token-1"}, "Hello", "World", mock.Anything).
		Return(&domainservice.BatchResult{
			SuccessCount: 1,
			Responses: []domainservice.SendResponse{
				{Token: "token-1", MessageID: "msg-1"},
			},
		}, nil)

	result, err := svc.SendBulk(ctx, &usecase.BulkSendInput{
		UserIDs: []uuid.UUID{delivered, blocked, deviceless},
		Title:   "Hello",
		Message: "World",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	require.Len(t, result.Responses, 3)

	byUser := make(map[uuid.UUID]usecase.BulkRecipientResult, len(result.Responses))
	for _, resp := range result.Responses {
		byUser[resp.UserID] = resp
	}
	assert.Equal(t, ReasonPreferenceBlocked, byUser[blocked].Reason)
	assert.Equal(t, ReasonNoDevice, byUser[deviceless].Reason)
	assert.True(t, byUser[delivered].Success)
	assert.Equal(t, "msg-1", byUser[delivered].MessageID)
}

func TestNotificationService_SendBulk_InvalidTokenEvictedOnce(t *testing.T) {
	svc, notificationRepo, preferenceRepo, deviceRepo, _, pushGateway := createTestNotificationService(t)

	ctx := context.Background()
	healthy := uuid.New()
	stale := uuid.New()

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrPreferenceNotFound)

	notificationRepo.EXPECT().
		BatchCreateRecords(ctx, mock.AnythingOfType("[]*entity.NotificationRecord")).
		Return(nil)

	deviceRepo.EXPECT().
		FindDevicesForUsers(ctx, []uuid.UUID{healthy, stale}).
		Return([]*entity.UserDevice{
			{UserID: healthy, FCMToken: "token-healthy"},
			{UserID: stale, FCMToken: "token-stale"},
		}, nil)

	pushGateway.EXPECT().
		SendMulticast(ctx, []string{"token-healthy", "token-stale"}, "Hello", "World", mock.Anything).
		Return(&domainservice.BatchResult{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []domainservice.SendResponse{
				{Token: "token-healthy", MessageID: "msg-1"},
				{Token: "token-stale", Err: &domainservice.DeliveryError{
					Kind:  domainservice.DeliveryInvalidDestination,
					Token: "token-stale",
					Err:   errors.New("registration token not registered"),
				}},
			},
		}, nil)

	// Exactly the stale recipient's token is evicted.
	deviceRepo.EXPECT().
		DeleteDeviceByUser(ctx, stale).
		Return(nil)

	result, err := svc.SendBulk(ctx, &usecase.BulkSendInput{
		UserIDs: []uuid.UUID{healthy, stale},
		Title:   "Hello",
		Message: "World",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)

	byUser := make(map[uuid.UUID]usecase.BulkRecipientResult, len(result.Responses))
	for _, resp := range result.Responses {
		byUser[resp.UserID] = resp
	}
	assert.True(t, byUser[healthy].Success)
	assert.Equal(t, ReasonInvalidToken, byUser[stale].Reason)
}

func TestNotificationService_SendBulk_ChunksDeviceLookups(t *testing.T) {
	svc, notificationRepo, preferenceRepo, deviceRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	userIDs := make([]uuid.UUID, 25)
	for i := range userIDs {
		userIDs[i] = uuid.New()
	}

	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrPreferenceNotFound)

	notificationRepo.EXPECT().
		BatchCreateRecords(ctx, mock.AnythingOfType("[]*entity.NotificationRecord")).
		Return(nil)

	// Every recipient is covered: three lookups of at most MaxIDBatch ids,
	// not a single truncated one.
	deviceRepo.EXPECT().
		FindDevicesForUsers(ctx, userIDs[0:10]).
		Return([]*entity.UserDevice{}, nil)
	deviceRepo.EXPECT().
		FindDevicesForUsers(ctx, userIDs[10:20]).
		Return([]*entity.UserDevice{}, nil)
	deviceRepo.EXPECT().
		FindDevicesForUsers(ctx, userIDs[20:25]).
		Return([]*entity.UserDevice{}, nil)

	result, err := svc.SendBulk(ctx, &usecase.BulkSendInput{
		UserIDs: userIDs,
		Title:   "Hello",
		Message: "World",
	})
	require.NoError(t, err)
	require.Len(t, result.Responses, 25)
	for _, resp := range result.Responses {
		assert.Equal(t, ReasonNoDevice, resp.Reason)
	}
}

func TestNotificationService_MarkRead_OwnershipEnforced(t *testing.T) {
	svc, notificationRepo, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		FindRecordByID(ctx, notificationID).
		Return(&entity.NotificationRecord{ID: notificationID, UserID: owner}, nil)

	err := svc.MarkRead(ctx, intruder, notificationID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	svc, notificationRepo, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		FindRecordByID(ctx, notificationID).
		Return(&entity.NotificationRecord{ID: notificationID, UserID: userID}, nil)

	notificationRepo.EXPECT().
		MarkRead(ctx, notificationID).
		Return(nil)

	err := svc.MarkRead(ctx, userID, notificationID)
	assert.NoError(t, err)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	svc, notificationRepo, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		FindRecordByID(ctx, notificationID).
		Return(nil, repository.ErrNotificationNotFound)

	err := svc.MarkRead(ctx, uuid.New(), notificationID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead_RunsInTransaction(t *testing.T) {
	svc, _, _, _, txManager, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	txRepo := mockRepo.NewMockNotificationRepository(t)
	txRepo.EXPECT().
		MarkAllRead(ctx, userID).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().
		NewNotificationRepository().
		Return(txRepo)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := svc.MarkAllRead(ctx, userID)
	assert.NoError(t, err)
}

func TestNotificationService_DeleteAll_RunsInTransaction(t *testing.T) {
	svc, _, _, _, txManager, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	txRepo := mockRepo.NewMockNotificationRepository(t)
	txRepo.EXPECT().
		DeleteAllByUser(ctx, userID).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().
		NewNotificationRepository().
		Return(txRepo)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := svc.DeleteAll(ctx, userID)
	assert.NoError(t, err)
}

func TestNotificationService_Export_Snapshot(t *testing.T) {
	svc, notificationRepo, preferenceRepo, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	records := []*entity.NotificationRecord{{ID: uuid.New(), UserID: userID}}
	stats := &entity.NotificationStats{Total: 1, Unread: 1}

	notificationRepo.EXPECT().
		FindRecordsByUser(ctx, userID, repository.NotificationQuery{}).
		Return(records, nil)
	notificationRepo.EXPECT().
		CountStats(ctx, userID).
		Return(stats, nil)
	preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	snapshot, err := svc.Export(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, snapshot.UserID)
	assert.Equal(t, records, snapshot.Records)
	assert.Equal(t, stats, snapshot.Stats)
	assert.Nil(t, snapshot.Preferences)
}

func TestNotificationService_PurgeExpired(t *testing.T) {
	svc, notificationRepo, _, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		DeleteExpired(ctx, mock.AnythingOfType("time.Time")).
		Return(int64(3), nil)

	purged, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}
