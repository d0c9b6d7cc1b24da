package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	mockRepo "mandi/internal/mocks/repository"
	mockUC "mandi/internal/mocks/usecase"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAlertService(t *testing.T) (
	usecase.AlertUsecase,
	*mockRepo.MockAlertRepository,
	*mockRepo.MockPriceRepository,
	*mockUC.MockNotificationUsecase,
) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	priceRepo := mockRepo.NewMockPriceRepository(t)
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewAlertService(alertRepo, priceRepo, notificationUC, logger)

	return svc, alertRepo, priceRepo, notificationUC
}

func testSubscription(condition entity.AlertCondition, threshold float64, oneTime bool) *entity.PriceAlertSubscription {
	return &entity.PriceAlertSubscription{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Commodity: "wheat",
		Condition: condition,
		Threshold: threshold,
		Location:  "indore",
		Active:    true,
		OneTime:   oneTime,
	}
}

func TestAlertService_CreateAlert_Success(t *testing.T) {
	svc, alertRepo, _, _ := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()

	alertRepo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.PriceAlertSubscription")).
		Return(nil)

	sub, err := svc.CreateAlert(ctx, &usecase.AlertInput{
		UserID:    userID,
		Commodity: "onion",
		Condition: entity.AlertConditionBelow,
		Threshold: 1200,
		OneTime:   true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sub.ID)
	assert.Equal(t, userID, sub.UserID)
	assert.True(t, sub.Active)
	assert.True(t, sub.OneTime)
}

func TestAlertService_CreateAlert_ValidationFailures(t *testing.T) {
	svc, _, _, _ := createTestAlertService(t)

	ctx := context.Background()

	_, err := svc.CreateAlert(ctx, &usecase.AlertInput{
		Commodity: "onion",
		Condition: entity.AlertConditionAbove,
		Threshold: 100,
	})
	assert.Error(t, err)

	_, err = svc.CreateAlert(ctx, &usecase.AlertInput{
		UserID:    uuid.New(),
		Condition: entity.AlertConditionAbove,
		Threshold: 100,
	})
	assert.Error(t, err)

	_, err = svc.CreateAlert(ctx, &usecase.AlertInput{
		UserID:    uuid.New(),
		Commodity: "onion",
		Condition: entity.AlertCondition("rises"),
		Threshold: 100,
	})
	assert.Error(t, err)

	_, err = svc.CreateAlert(ctx, &usecase.AlertInput{
		UserID:    uuid.New(),
		Commodity: "onion",
		Condition: entity.AlertConditionAbove,
		Threshold: 0,
	})
	assert.Error(t, err)
}

func TestAlertService_DeleteAlert_OwnershipEnforced(t *testing.T) {
	svc, alertRepo, _, _ := createTestAlertService(t)

	ctx := context.Background()
	sub := testSubscription(entity.AlertConditionAbove, 2000, false)

	alertRepo.EXPECT().
		FindSubscriptionByID(ctx, sub.ID).
		Return(sub, nil)

	err := svc.DeleteAlert(ctx, uuid.New(), sub.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlertOwnershipViolation)
}

func TestAlertService_DeleteAlert_Success(t *testing.T) {
	svc, alertRepo, _, _ := createTestAlertService(t)

	ctx := context.Background()
	sub := testSubscription(entity.AlertConditionAbove, 2000, false)

	alertRepo.EXPECT().
		FindSubscriptionByID(ctx, sub.ID).
		Return(sub, nil)
	alertRepo.EXPECT().
		DeleteSubscription(ctx, sub.ID).
		Return(nil)

	err := svc.DeleteAlert(ctx, sub.UserID, sub.ID)
	assert.NoError(t, err)
}

func TestAlertService_EvaluateAlerts_OneTimeAboveTriggersAndDeactivates(t *testing.T) {
	svc, alertRepo, priceRepo, notificationUC := createTestAlertService(t)

	ctx := context.Background()
	sub := testSubscription(entity.AlertConditionAbove, 2000, true)

	alertRepo.EXPECT().
		FindActiveSubscriptions(ctx).
		Return([]*entity.PriceAlertSubscription{sub}, nil)

	priceRepo.EXPECT().
		LatestPrice(ctx, "wheat", "indore").
		Return(&entity.PriceEntry{Commodity: "wheat", Location: "indore", Price: 2150}, nil)

	var sent *usecase.SendInput

	notificationUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.SendInput")).
		Run(func(ctx context.Context, input *usecase.SendInput) {
			sent = input
		}).
		Return(&usecase.SendResult{Success: true}, nil)

	alertRepo.EXPECT().
		DeactivateSubscription(ctx, sub.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	result, err := svc.EvaluateAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TriggeredCount)

	require.NotNil(t, sent)
	assert.Equal(t, sub.UserID, sent.UserID)
	assert.Equal(t, entity.NotificationTypePriceAlert, sent.Type)
	assert.Equal(t, sub.ID.String(), sent.Data["alert_id"])
	assert.Equal(t, "wheat", sent.Data["commodity"])
	assert.Equal(t, "2150.00", sent.Data["current_price"])
	assert.Equal(t, "2000.00", sent.Data["threshold"])
	assert.Equal(t, "above", sent.Data["condition"])
}

func TestAlertService_EvaluateAlerts_StandingAlertStaysActive(t *testing.T) {
	svc, alertRepo, priceRepo, notificationUC := createTestAlertService(t)

	ctx := context.Background()
	sub := testSubscription(entity.AlertConditionBelow, 1500, false)

	alertRepo.EXPECT().
		FindActiveSubscriptions(ctx).
		Return([]*entity.PriceAlertSubscription{sub}, nil)

	priceRepo.EXPECT().
		LatestPrice(ctx, "wheat", "indore").
		Return(&entity.PriceEntry{Price: 1400}, nil)

	// No DeactivateSubscription expectation: standing alerts keep firing.
	notificationUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.SendInput")).
		Return(&usecase.SendResult{Success: true}, nil)

	result, err := svc.EvaluateAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TriggeredCount)
}

func TestAlertService_EvaluateAlerts_ConditionNotMet(t *testing.T) {
	svc, alertRepo, priceRepo, _ := createTestAlertService(t)

	ctx := context.Background()
	sub := testSubscription(entity.AlertConditionAbove, 2000, false)

	alertRepo.EXPECT().
		FindActiveSubscriptions(ctx).
		Return([]*entity.PriceAlertSubscription{sub}, nil)

	priceRepo.EXPECT().
		LatestPrice(ctx, "wheat", "indore").
		Return(&entity.PriceEntry{Price: 1999}, nil)

	result, err := svc.EvaluateAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TriggeredCount)
}

func TestAlertService_EvaluateAlerts_MissingPriceSkipped(t *testing.T) {
	svc, alertRepo, priceRepo, _ := createTestAlertService(t)

	ctx := context.Background()
	sub := testSubscription(entity.AlertConditionAbove, 2000, false)

	alertRepo.EXPECT().
		FindActiveSubscriptions(ctx).
		Return([]*entity.PriceAlertSubscription{sub}, nil)

	priceRepo.EXPECT().
		LatestPrice(ctx, "wheat", "indore").
		Return(nil, repository.ErrPriceNotFound)

	result, err := svc.EvaluateAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TriggeredCount)
}

func TestAlertService_EvaluateAlerts_FailureIsolation(t *testing.T) {
	svc, alertRepo, priceRepo, notificationUC := createTestAlertService(t)

	ctx := context.Background()
	broken := testSubscription(entity.AlertConditionAbove, 2000, false)
	healthy := testSubscription(entity.AlertConditionAbove, 2000, false)
	healthy.Commodity = "onion"

	alertRepo.EXPECT().
		FindActiveSubscriptions(ctx).
		Return([]*entity.PriceAlertSubscription{broken, healthy}, nil)

	// The first subscription's price lookup blows up; the pass continues.
	priceRepo.EXPECT().
		LatestPrice(ctx, "wheat", "indore").
		Return(nil, errors.New("db connection lost"))
	priceRepo.EXPECT().
		LatestPrice(ctx, "onion", "indore").
		Return(&entity.PriceEntry{Price: 2100}, nil)

	notificationUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.SendInput")).
		Return(&usecase.SendResult{Success: true}, nil)

	result, err := svc.EvaluateAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TriggeredCount)
}

func TestAlertService_EvaluateAlerts_DeactivationFailureDoesNotUndoTrigger(t *testing.T) {
	svc, alertRepo, priceRepo, notificationUC := createTestAlertService(t)

	ctx := context.Background()
	sub := testSubscription(entity.AlertConditionAbove, 2000, true)

	alertRepo.EXPECT().
		FindActiveSubscriptions(ctx).
		Return([]*entity.PriceAlertSubscription{sub}, nil)

	priceRepo.EXPECT().
		LatestPrice(ctx, "wheat", "indore").
		Return(&entity.PriceEntry{Price: 2100}, nil)

	notificationUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.SendInput")).
		Return(&usecase.SendResult{Success: true}, nil)

	alertRepo.EXPECT().
		DeactivateSubscription(ctx, sub.ID, mock.AnythingOfType("time.Time")).
		Return(errors.New("db connection lost"))

	result, err := svc.EvaluateAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TriggeredCount)
}

func TestConditionMet(t *testing.T) {
	cases := []struct {
		name      string
		condition entity.AlertCondition
		price     float64
		threshold float64
		want      bool
	}{
		{"above met", entity.AlertConditionAbove, 2001, 2000, true},
		{"above equal not met", entity.AlertConditionAbove, 2000, 2000, false},
		{"below met", entity.AlertConditionBelow, 1999, 2000, true},
		{"below equal not met", entity.AlertConditionBelow, 2000, 2000, false},
		{"change up met", entity.AlertConditionChange, 106, 100, true},
		{"change down met", entity.AlertConditionChange, 94, 100, true},
		{"change within band", entity.AlertConditionChange, 104, 100, false},
		{"change at band edge", entity.AlertConditionChange, 105, 100, false},
		{"unknown condition", entity.AlertCondition("rises"), 9999, 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, conditionMet(tc.condition, tc.price, tc.threshold))
		})
	}
}
