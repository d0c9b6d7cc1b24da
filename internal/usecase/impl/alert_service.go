package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/errors"
	"mandi/internal/usecase"

	"github.com/google/uuid"
)

// changeBand is the fixed deviation band for the "change" condition: the
// current price must differ from the stored threshold by more than 5% of the
// threshold. The comparison is against the threshold, not a previous price.
const changeBand = 0.05

type alertService struct {
	alertRepo      repository.AlertRepository
	priceRepo      repository.PriceRepository
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewAlertService creates a new price alert service instance
func NewAlertService(
	alertRepo repository.AlertRepository,
	priceRepo repository.PriceRepository,
	notificationUC usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		alertRepo:      alertRepo,
		priceRepo:      priceRepo,
		notificationUC: notificationUC,
		logger:         logger,
	}
}

// CreateAlert registers a new active price alert subscription.
func (s *alertService) CreateAlert(ctx context.Context, input *usecase.AlertInput) (*entity.PriceAlertSubscription, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user id is required")
	}
	if input.Commodity == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("commodity is required")
	}
	if !input.Condition.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown alert condition %q", input.Condition))
	}
	if input.Threshold <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("threshold must be positive")
	}

	sub := &entity.PriceAlertSubscription{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Commodity: input.Commodity,
		Condition: input.Condition,
		Threshold: input.Threshold,
		Location:  input.Location,
		Active:    true,
		OneTime:   input.OneTime,
	}

	if err := s.alertRepo.CreateSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create alert subscription: %w", err)
	}

	return sub, nil
}

// GetUserAlerts retrieves all subscriptions of a user
func (s *alertService) GetUserAlerts(ctx context.Context, userID uuid.UUID) ([]*entity.PriceAlertSubscription, error) {
	return s.alertRepo.FindSubscriptionsByUser(ctx, userID)
}

// DeleteAlert removes a subscription after checking ownership.
func (s *alertService) DeleteAlert(ctx context.Context, userID, alertID uuid.UUID) error {
	sub, err := s.alertRepo.FindSubscriptionByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return domainerrors.ErrAlertNotFound
		}

		return err
	}

	if sub.UserID != userID {
		return domainerrors.ErrAlertOwnershipViolation
	}

	return s.alertRepo.DeleteSubscription(ctx, alertID)
}

// EvaluateAlerts runs one evaluation pass over all active subscriptions.
// Subscriptions are independent failure domains: a bad one is logged and
// skipped and the pass continues.
func (s *alertService) EvaluateAlerts(ctx context.Context) (*usecase.EvaluationResult, error) {
	subs, err := s.alertRepo.FindActiveSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active subscriptions: %w", err)
	}

	result := &usecase.EvaluationResult{}

	for _, sub := range subs {
		triggered, err := s.evaluateOne(ctx, sub)
		if err != nil {
			s.logger.Error("alert evaluation failed for subscription",
				slog.String("alert_id", sub.ID.String()),
				slog.String("commodity", sub.Commodity),
				slog.Any("error", err),
			)

			continue
		}

		if triggered {
			result.TriggeredCount++
		}
	}

	s.logger.Info("alert evaluation pass completed",
		slog.Int("active_subscriptions", len(subs)),
		slog.Int("triggered", result.TriggeredCount),
	)

	return result, nil
}

// evaluateOne checks a single subscription against the latest price and
// dispatches when it fires. A commodity with no recorded price is skipped.
func (s *alertService) evaluateOne(ctx context.Context, sub *entity.PriceAlertSubscription) (bool, error) {
	price, err := s.priceRepo.LatestPrice(ctx, sub.Commodity, sub.Location)
	if err != nil {
		if errors.Is(err, repository.ErrPriceNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to fetch latest price: %w", err)
	}

	if !conditionMet(sub.Condition, price.Price, sub.Threshold) {
		return false, nil
	}

	title := "Price Alert"
	message := fmt.Sprintf("%s is now ₹%.2f/quintal (%s ₹%.2f)", sub.Commodity, price.Price, sub.Condition, sub.Threshold)
	data := map[string]string{
		"alert_id":      sub.ID.String(),
		"commodity":     sub.Commodity,
		"current_price": fmt.Sprintf("%.2f", price.Price),
		"threshold":     fmt.Sprintf("%.2f", sub.Threshold),
		"condition":     string(sub.Condition),
	}

	if _, err := s.notificationUC.Send(ctx, &usecase.SendInput{
		UserID:  sub.UserID,
		Type:    entity.NotificationTypePriceAlert,
		Title:   title,
		Message: message,
		Data:    data,
	}); err != nil {
		return false, fmt.Errorf("failed to dispatch alert notification: %w", err)
	}

	if sub.OneTime {
		if err := s.alertRepo.DeactivateSubscription(ctx, sub.ID, time.Now()); err != nil {
			// The alert already fired; a failed deactivation only risks one
			// duplicate on the next pass.
			s.logger.Error("failed to deactivate one-shot subscription",
				slog.String("alert_id", sub.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return true, nil
}

// conditionMet evaluates a trigger rule against the current price.
func conditionMet(condition entity.AlertCondition, currentPrice, threshold float64) bool {
	switch condition {
	case entity.AlertConditionAbove:
		return currentPrice > threshold
	case entity.AlertConditionBelow:
		return currentPrice < threshold
	case entity.AlertConditionChange:
		return math.Abs(currentPrice-threshold) > threshold*changeBand
	default:
		return false
	}
}
