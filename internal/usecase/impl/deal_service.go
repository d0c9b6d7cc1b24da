package impl

import (
	"context"
	"fmt"
	"log/slog"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/service"
	"mandi/internal/usecase"

	"github.com/google/uuid"
)

// statusMessages maps a deal status to the human-readable fragment used in
// the notification body. Unknown statuses fall back to a generic message.
var statusMessages = map[entity.DealStatus]string{
	entity.DealStatusPaid:      "Payment confirmed",
	entity.DealStatusDelivered: "Order delivered",
	entity.DealStatusCompleted: "Deal completed successfully",
	entity.DealStatusDisputed:  "Deal disputed - please review",
	entity.DealStatusCancelled: "Deal cancelled",
}

type dealService struct {
	notificationUC usecase.NotificationUsecase
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// NewDealService creates a new deal event service instance
func NewDealService(
	notificationUC usecase.NotificationUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DealUsecase {
	return &dealService{
		notificationUC: notificationUC,
		publisher:      publisher,
		logger:         logger,
	}
}

// PublishDealEvent hands a deal write signal to the message queue.
func (s *dealService) PublishDealEvent(ctx context.Context, event *entity.DealEvent, requestID string) error {
	if event == nil || event.After == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("deal event requires an after snapshot")
	}

	msg := &service.DealEventMessage{
		RequestID: requestID,
		DealEvent: *event,
	}

	if err := s.publisher.PublishDealEvent(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish deal event: %w", err)
	}

	return nil
}

// ProcessDealEvent reacts to one deal write signal. Each deal write is
// consumed exactly once; the engine never retries it on its own.
func (s *dealService) ProcessDealEvent(ctx context.Context, event *entity.DealEvent) error {
	if event == nil || event.After == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("deal event requires an after snapshot")
	}

	switch event.Kind {
	case entity.DealEventCreated:
		return s.onDealCreated(ctx, event.After)
	case entity.DealEventUpdated:
		return s.onDealUpdated(ctx, event.Before, event.After)
	default:
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown deal event kind %q", event.Kind))
	}
}

// onDealCreated notifies both counterparties that the deal is confirmed.
func (s *dealService) onDealCreated(ctx context.Context, deal *entity.Deal) error {
	title := "Deal Confirmed"
	message := fmt.Sprintf("Deal for %s at ₹%.2f/quintal has been confirmed", deal.Commodity, deal.AgreedPrice)
	data := map[string]string{
		"deal_id": deal.ID.String(),
		"action":  "confirmed",
	}

	s.notifyCounterparties(ctx, deal, title, message, data)

	return nil
}

// onDealUpdated notifies both counterparties about a status change. Updates
// that leave the status unchanged must not notify, so edits to other deal
// fields stay silent.
func (s *dealService) onDealUpdated(ctx context.Context, before, after *entity.Deal) error {
	if before != nil && before.Status == after.Status {
		return nil
	}

	fragment, ok := statusMessages[after.Status]
	if !ok {
		fragment = fmt.Sprintf("Deal status updated to %s", after.Status)
	}

	title := "Deal Update"
	message := fmt.Sprintf("%s: %s", after.Commodity, fragment)
	data := map[string]string{
		"deal_id": after.ID.String(),
		"status":  string(after.Status),
		"action":  "status_updated",
	}

	s.notifyCounterparties(ctx, after, title, message, data)

	return nil
}

// notifyCounterparties sends to buyer and seller independently. One
// counterparty's failure never blocks the other's notification.
func (s *dealService) notifyCounterparties(ctx context.Context, deal *entity.Deal, title, message string, data map[string]string) {
	for _, userID := range []uuid.UUID{deal.BuyerID, deal.SellerID} {
		if userID == uuid.Nil {
			continue
		}

		_, err := s.notificationUC.Send(ctx, &usecase.SendInput{
			UserID:  userID,
			Type:    entity.NotificationTypeDealUpdate,
			Title:   title,
			Message: message,
			Data:    data,
		})
		if err != nil {
			s.logger.Error("deal notification failed for counterparty",
				slog.String("deal_id", deal.ID.String()),
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	}
}
