// Package handler contains the HTTP handlers for the dispatch engine API.
package handler

import (
	"net/http"

	"mandi/internal/delivery/http/response"
	domainerrors "mandi/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseUserID extracts and parses the userID path parameter.
func parseUserID(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_USER_ID", "Invalid user ID")
	}

	return userID, nil
}

// handleAppError converts domain errors into API responses; anything else
// bubbles up to the error middleware.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
