package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"mandi/internal/domain/entity"
	domainservice "mandi/internal/domain/service"
	mockSvc "mandi/internal/mocks/service"
	mockUC "mandi/internal/mocks/usecase"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDealService(t *testing.T) (
	usecase.DealUsecase,
	*mockUC.MockNotificationUsecase,
	*mockSvc.MockEventPublisher,
) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewDealService(notificationUC, publisher, logger)

	return svc, notificationUC, publisher
}

func testDeal(status entity.DealStatus) *entity.Deal {
	return &entity.Deal{
		ID:          uuid.New(),
		BuyerID:     uuid.New(),
		SellerID:    uuid.New(),
		Commodity:   "wheat",
		Quantity:    50,
		AgreedPrice: 2150.50,
		Status:      status,
	}
}

func TestDealService_PublishDealEvent_Success(t *testing.T) {
	svc, _, publisher := createTestDealService(t)

	ctx := context.Background()
	deal := testDeal(entity.DealStatusConfirmed)
	event := &entity.DealEvent{Kind: entity.DealEventCreated, After: deal}

	var published *domainservice.DealEventMessage

	publisher.EXPECT().
		PublishDealEvent(ctx, mock.AnythingOfType("*service.DealEventMessage")).
		Run(func(ctx context.Context, event *domainservice.DealEventMessage) {
			published = event
		}).
		Return(nil)

	err := svc.PublishDealEvent(ctx, event, "req-123")
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, "req-123", published.RequestID)
	assert.Equal(t, entity.DealEventCreated, published.Kind)
	assert.Equal(t, deal.ID, published.After.ID)
}

func TestDealService_PublishDealEvent_MissingAfterSnapshot(t *testing.T) {
	svc, _, _ := createTestDealService(t)

	ctx := context.Background()

	err := svc.PublishDealEvent(ctx, nil, "req-123")
	assert.Error(t, err)

	err = svc.PublishDealEvent(ctx, &entity.DealEvent{Kind: entity.DealEventCreated}, "req-123")
	assert.Error(t, err)
}

func TestDealService_PublishDealEvent_PublisherFailure(t *testing.T) {
	svc, _, publisher := createTestDealService(t)

	ctx := context.Background()
	event := &entity.DealEvent{Kind: entity.DealEventCreated, After: testDeal(entity.DealStatusConfirmed)}

	publisher.EXPECT().
		PublishDealEvent(ctx, mock.AnythingOfType("*service.DealEventMessage")).
		Return(errors.New("broker unavailable"))

	err := svc.PublishDealEvent(ctx, event, "req-123")
	assert.Error(t, err)
}

func TestDealService_ProcessDealEvent_Created_NotifiesBothCounterparties(t *testing.T) {
	svc, notificationUC, _ := createTestDealService(t)

	ctx := context.Background()
	deal := testDeal(entity.DealStatusConfirmed)

	var sent []*usecase.SendInput

	notificationUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.SendInput")).
		Run(func(ctx context.Context, input *usecase.SendInput) {
			sent = append(sent, input)
		}).
		Return(&usecase.SendResult{Success: true}, nil)

	err := svc.ProcessDealEvent(ctx, &entity.DealEvent{Kind: entity.DealEventCreated, After: deal})
	require.NoError(t, err)
	require.Len(t, sent, 2)

	recipients := []uuid.UUID{sent[0].UserID, sent[1].UserID}
	assert.Contains(t, recipients, deal.BuyerID)
	assert.Contains(t, recipients, deal.SellerID)

	for _, input := range sent {
		assert.Equal(t, entity.NotificationTypeDealUpdate, input.Type)
		assert.Equal(t, "Deal Confirmed", input.Title)
		assert.Equal(t, "Deal for wheat at ₹2150.50/quintal has been confirmed", input.Message)
		assert.Equal(t, deal.ID.String(), input.Data["deal_id"])
		assert.Equal(t, "confirmed", input.Data["action"])
	}
}

func TestDealService_ProcessDealEvent_StatusUnchanged_Silent(t *testing.T) {
	svc, _, _ := createTestDealService(t)

	ctx := context.Background()
	after := testDeal(entity.DealStatusPaid)
	before := *after

	// An update that leaves the status untouched must not notify anyone.
	err := svc.ProcessDealEvent(ctx, &entity.DealEvent{
		Kind:   entity.DealEventUpdated,
		Before: &before,
		After:  after,
	})
	assert.NoError(t, err)
}

func TestDealService_ProcessDealEvent_StatusChange_MappedMessage(t *testing.T) {
	cases := []struct {
		status   entity.DealStatus
		fragment string
	}{
		{entity.DealStatusPaid, "Payment confirmed"},
		{entity.DealStatusDelivered, "Order delivered"},
		{entity.DealStatusCompleted, "Deal completed successfully"},
		{entity.DealStatusDisputed, "Deal disputed - please review"},
		{entity.DealStatusCancelled, "Deal cancelled"},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			svc, notificationUC, _ := createTestDealService(t)

			ctx := context.Background()
			after := testDeal(tc.status)
			before := *after
			before.Status = entity.DealStatusConfirmed

			var sent []*usecase.SendInput

			notificationUC.EXPECT().
				Send(ctx, mock.AnythingOfType("*usecase.SendInput")).
				Run(func(ctx context.Context, input *usecase.SendInput) {
					sent = append(sent, input)
				}).
				Return(&usecase.SendResult{Success: true}, nil)

			err := svc.ProcessDealEvent(ctx, &entity.DealEvent{
				Kind:   entity.DealEventUpdated,
				Before: &before,
				After:  after,
			})
			require.NoError(t, err)
			require.Len(t, sent, 2)
			assert.Equal(t, "Deal Update", sent[0].Title)
			assert.Equal(t, fmt.Sprintf("wheat: %s", tc.fragment), sent[0].Message)
			assert.Equal(t, string(tc.status), sent[0].Data["status"])
			assert.Equal(t, "status_updated", sent[0].Data["action"])
		})
	}
}

func TestDealService_ProcessDealEvent_UnknownStatus_FallbackMessage(t *testing.T) {
	svc, notificationUC, _ := createTestDealService(t)

	ctx := context.Background()
	after := testDeal(entity.DealStatus("archived"))
	before := *after
	before.Status = entity.DealStatusCompleted

	var sent []*usecase.SendInput

	notificationUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.SendInput")).
		Run(func(ctx context.Context, input *usecase.SendInput) {
			sent = append(sent, input)
		}).
		Return(&usecase.SendResult{Success: true}, nil)

	err := svc.ProcessDealEvent(ctx, &entity.DealEvent{
		Kind:   entity.DealEventUpdated,
		Before: &before,
		After:  after,
	})
	require.NoError(t, err)
	require.Len(t, sent, 2)
	assert.Equal(t, "wheat: Deal status updated to archived", sent[0].Message)
}

func TestDealService_ProcessDealEvent_CounterpartyFailureIsolated(t *testing.T) {
	svc, notificationUC, _ := createTestDealService(t)

	ctx := context.Background()
	deal := testDeal(entity.DealStatusConfirmed)

	var recipients []uuid.UUID

	// The buyer's send fails; the seller must still be notified and the
	// event still counts as processed.
	notificationUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.SendInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.SendInput) (*usecase.SendResult, error) {
			recipients = append(recipients, input.UserID)
			if input.UserID == deal.BuyerID {
				return nil, errors.New("history write failed")
			}

			return &usecase.SendResult{Success: true}, nil
		})

	err := svc.ProcessDealEvent(ctx, &entity.DealEvent{Kind: entity.DealEventCreated, After: deal})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{deal.BuyerID, deal.SellerID}, recipients)
}

func TestDealService_ProcessDealEvent_NilCounterpartySkipped(t *testing.T) {
	svc, notificationUC, _ := createTestDealService(t)

	ctx := context.Background()
	deal := testDeal(entity.DealStatusConfirmed)
	deal.BuyerID = uuid.Nil

	notificationUC.EXPECT().
		Send(ctx, mock.AnythingOfType("*usecase.SendInput")).
		Run(func(ctx context.Context, input *usecase.SendInput) {
			assert.Equal(t, deal.SellerID, input.UserID)
		}).
		Return(&usecase.SendResult{Success: true}, nil)

	err := svc.ProcessDealEvent(ctx, &entity.DealEvent{Kind: entity.DealEventCreated, After: deal})
	assert.NoError(t, err)
}

func TestDealService_ProcessDealEvent_UnknownKind(t *testing.T) {
	svc, _, _ := createTestDealService(t)

	err := svc.ProcessDealEvent(context.Background(), &entity.DealEvent{
		Kind:  entity.DealEventKind("deleted"),
		After: testDeal(entity.DealStatusCancelled),
	})
	assert.Error(t, err)
}
