package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mandi/internal/delivery/http/response"
	"mandi/internal/domain/entity"
	"mandi/internal/domain/repository"
	"mandi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendRequest represents the request body for the direct send entry point
type SendRequest struct {
	UserID  uuid.UUID         `json:"user_id"`
	Type    string            `json:"type,omitempty"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}

// Send handles a direct single-recipient send
func (h *NotificationHandler) Send(c echo.Context) error {
	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	result, err := h.uc.Send(c.Request().Context(), &usecase.SendInput{
		UserID:  req.UserID,
		Type:    entity.NotificationType(req.Type),
		Title:   req.Title,
		Message: req.Message,
		Data:    req.Data,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Notification processed")
}

// SendBulkRequest represents the request body for the bulk send entry point
type SendBulkRequest struct {
	UserIDs []uuid.UUID       `json:"user_ids"`
	Type    string            `json:"type,omitempty"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}

// SendBulk handles a bulk send to many recipients
func (h *NotificationHandler) SendBulk(c echo.Context) error {
	var req SendBulkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	result, err := h.uc.SendBulk(c.Request().Context(), &usecase.BulkSendInput{
		UserIDs: req.UserIDs,
		Type:    entity.NotificationType(req.Type),
		Title:   req.Title,
		Message: req.Message,
		Data:    req.Data,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Bulk notification processed")
}

// GetHistory handles retrieving a user's notification history
func (h *NotificationHandler) GetHistory(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	query := repository.NotificationQuery{
		Limit:  20,
		Offset: 0,
	}

	if typeStr := c.QueryParam("type"); typeStr != "" {
		notificationType := entity.NotificationType(typeStr)
		query.Type = &notificationType
	}
	if c.QueryParam("unread") == "true" {
		query.UnreadOnly = true
	}
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			query.Limit = parsedLimit
		}
	}
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			query.Offset = parsedOffset
		}
	}

	records, err := h.uc.GetHistory(c.Request().Context(), userID, query)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Notification history retrieved successfully")
}

// MarkRead handles marking one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("notificationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NOTIFICATION_ID", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead handles marking all of a user's notifications as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.MarkAllRead(c.Request().Context(), userID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "All notifications marked as read")
}

// Delete handles deleting one notification
func (h *NotificationHandler) Delete(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("notificationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NOTIFICATION_ID", "Invalid notification ID")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, notificationID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

// DeleteAll handles deleting all of a user's notifications
func (h *NotificationHandler) DeleteAll(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAll(c.Request().Context(), userID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "All notifications deleted")
}

// GetStats handles retrieving a user's notification statistics
func (h *NotificationHandler) GetStats(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.GetStats(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Notification stats retrieved successfully")
}

// Export handles exporting a user's full notification snapshot
func (h *NotificationHandler) Export(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	snapshot, err := h.uc.Export(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Notification data exported successfully")
}
