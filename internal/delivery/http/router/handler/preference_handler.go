package handler

import (
	"log/slog"
	"net/http"

	"mandi/internal/delivery/http/response"
	"mandi/internal/domain/entity"
	"mandi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PreferenceHandler holds dependencies for notification preference handlers
type PreferenceHandler struct {
	uc     usecase.PreferenceUsecase
	logger *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(uc usecase.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPreferences handles retrieving a user's notification preferences
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	prefs, err := h.uc.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences retrieved successfully")
}

// UpdatePreferencesRequest represents the request body for overwriting preferences
type UpdatePreferencesRequest struct {
	PriceAlerts      *bool                  `json:"price_alerts,omitempty"`
	DealUpdates      *bool                  `json:"deal_updates,omitempty"`
	NewOpportunities *bool                  `json:"new_opportunities,omitempty"`
	SystemUpdates    *bool                  `json:"system_updates,omitempty"`
	Marketing        *bool                  `json:"marketing,omitempty"`
	Channels         entity.ChannelSettings `json:"channels"`
}

// UpdatePreferences handles overwriting a user's preferences as a whole
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	pref := &entity.NotificationPreference{
		UserID:           userID,
		PriceAlerts:      req.PriceAlerts,
		DealUpdates:      req.DealUpdates,
		NewOpportunities: req.NewOpportunities,
		SystemUpdates:    req.SystemUpdates,
		Marketing:        req.Marketing,
		Channels:         req.Channels,
	}

	if err := h.uc.UpdatePreferences(c.Request().Context(), pref); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref, "Preferences updated successfully")
}

// OptOutRequest represents the request body for opting out of one topic
type OptOutRequest struct {
	Type string `json:"type"`
}

// OptOut handles setting a single topic flag to false
func (h *PreferenceHandler) OptOut(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req OptOutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid opt-out input")
	}

	if err := h.uc.OptOut(c.Request().Context(), userID, entity.NotificationType(req.Type)); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Opted out successfully")
}
