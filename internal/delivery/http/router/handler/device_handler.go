package handler

import (
	"log/slog"
	"net/http"

	"mandi/internal/delivery/http/response"
	"mandi/internal/domain/repository"
	"mandi/internal/errors"
	"mandi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeviceHandler holds dependencies for device destination handlers
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token"`
	Platform string `json:"platform"`
}

// RegisterDevice handles registering or replacing a user's device token
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		Platform: req.Platform,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// GetDevice handles retrieving the user's registered device
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	device, err := h.uc.GetUserDevice(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return response.NotFound(c, "DEVICE_NOT_FOUND", "No device registered for user")
		}

		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device retrieved successfully")
}

// EvictDevice handles removing the user's device destination
func (h *DeviceHandler) EvictDevice(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.EvictToken(c.Request().Context(), userID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device removed")
}
