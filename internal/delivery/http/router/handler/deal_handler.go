package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "mandi/internal/delivery/context"
	"mandi/internal/delivery/http/response"
	"mandi/internal/domain/entity"
	"mandi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DealHandler holds dependencies for deal event ingestion handlers
type DealHandler struct {
	uc     usecase.DealUsecase
	logger *slog.Logger
}

// NewDealHandler is the constructor for DealHandler
func NewDealHandler(uc usecase.DealUsecase, logger *slog.Logger) *DealHandler {
	return &DealHandler{
		uc:     uc,
		logger: logger,
	}
}

// DealEventRequest represents the request body for one deal write signal
type DealEventRequest struct {
	Kind   string       `json:"kind"`
	Before *entity.Deal `json:"before,omitempty"`
	After  *entity.Deal `json:"after"`
}

// PublishDealEvent accepts one deal write signal from the trading surface
// and queues it for the dispatch worker.
func (h *DealHandler) PublishDealEvent(c echo.Context) error {
	var req DealEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal event input")
	}

	event := &entity.DealEvent{
		Kind:   entity.DealEventKind(req.Kind),
		Before: req.Before,
		After:  req.After,
	}

	requestID := deliverycontext.GetRequestID(c)

	if err := h.uc.PublishDealEvent(c.Request().Context(), event, requestID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Deal event accepted")
}
