package handler

import (
	"log/slog"
	"net/http"

	"mandi/internal/delivery/http/response"
	"mandi/internal/domain/entity"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AlertHandler holds dependencies for price alert handlers
type AlertHandler struct {
	uc     usecase.AlertUsecase
	logger *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(uc usecase.AlertUsecase, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAlertRequest represents the request body for creating a price alert
type CreateAlertRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	Commodity string    `json:"commodity"`
	Condition string    `json:"condition"`
	Threshold float64   `json:"threshold"`
	Location  string    `json:"location,omitempty"`
	OneTime   bool      `json:"one_time,omitempty"`
}

// CreateAlert handles creating a price alert subscription
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	alert, err := h.uc.CreateAlert(c.Request().Context(), &usecase.AlertInput{
		UserID:    req.UserID,
		Commodity: req.Commodity,
		Condition: entity.AlertCondition(req.Condition),
		Threshold: req.Threshold,
		Location:  req.Location,
		OneTime:   req.OneTime,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert, "Price alert created successfully")
}

// GetUserAlerts handles retrieving all alerts of a user
func (h *AlertHandler) GetUserAlerts(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	alerts, err := h.uc.GetUserAlerts(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts, "Price alerts retrieved successfully")
}

// DeleteAlert handles deleting one alert
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	alertID, err := uuid.Parse(c.Param("alertID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ALERT_ID", "Invalid alert ID")
	}

	if err := h.uc.DeleteAlert(c.Request().Context(), userID, alertID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Price alert deleted")
}
