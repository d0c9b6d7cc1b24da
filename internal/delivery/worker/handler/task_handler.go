package handler

import (
	"log/slog"
	"net/http"

	"mandi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandler handles scheduler-invoked maintenance tasks. The external
// scheduler calls these endpoints on a fixed interval; a non-2xx response
// tells it the run failed.
type TaskHandler struct {
	logger         *slog.Logger
	alertUC        usecase.AlertUsecase
	notificationUC usecase.NotificationUsecase
}

// TaskHandlerParams holds dependencies for the TaskHandler
type TaskHandlerParams struct {
	fx.In

	Logger         *slog.Logger
	AlertUC        usecase.AlertUsecase
	NotificationUC usecase.NotificationUsecase
}

// NewTaskHandler creates a new scheduled task handler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		logger:         params.Logger,
		alertUC:        params.AlertUC,
		notificationUC: params.NotificationUC,
	}
}

// EvaluateAlerts runs one alert evaluation pass
func (h *TaskHandler) EvaluateAlerts(c echo.Context) error {
	result, err := h.alertUC.EvaluateAlerts(c.Request().Context())
	if err != nil {
		h.logger.Error("[Worker] Alert evaluation run failed", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, result)
}

// PurgeExpired removes notification records past their expiry
func (h *TaskHandler) PurgeExpired(c echo.Context) error {
	purged, err := h.notificationUC.PurgeExpired(c.Request().Context())
	if err != nil {
		h.logger.Error("[Worker] Expired record purge failed", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, map[string]int64{"purged": purged})
}
