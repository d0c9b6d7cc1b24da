// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mandi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	AlertHandler        *handler.AlertHandler
	DeviceHandler       *handler.DeviceHandler
	PreferenceHandler   *handler.PreferenceHandler
	TranslationHandler  *handler.TranslationHandler
	DealHandler         *handler.DealHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	alertHandler        *handler.AlertHandler
	deviceHandler       *handler.DeviceHandler
	preferenceHandler   *handler.PreferenceHandler
	translationHandler  *handler.TranslationHandler
	dealHandler         *handler.DealHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		alertHandler:        params.AlertHandler,
		deviceHandler:       params.DeviceHandler,
		preferenceHandler:   params.PreferenceHandler,
		translationHandler:  params.TranslationHandler,
		dealHandler:         params.DealHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Identity comes from the upstream gateway; this service trusts the
// userID path parameter.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Dispatch entry points
	notificationGroup := e.Group("/notifications")
	{
		notificationGroup.POST("/send", r.notificationHandler.Send)
		notificationGroup.POST("/send-bulk", r.notificationHandler.SendBulk)
	}

	// Per-user resources
	userGroup := e.Group("/users/:userID")
	{
		userGroup.GET("/notifications", r.notificationHandler.GetHistory)
		userGroup.GET("/notifications/stats", r.notificationHandler.GetStats)
		userGroup.GET("/notifications/export", r.notificationHandler.Export)
		userGroup.POST("/notifications/read-all", r.notificationHandler.MarkAllRead)
		userGroup.POST("/notifications/:notificationID/read", r.notificationHandler.MarkRead)
		userGroup.DELETE("/notifications/:notificationID", r.notificationHandler.Delete)
		userGroup.DELETE("/notifications", r.notificationHandler.DeleteAll)

		userGroup.POST("/devices", r.deviceHandler.RegisterDevice)
		userGroup.GET("/devices", r.deviceHandler.GetDevice)
		userGroup.DELETE("/devices", r.deviceHandler.EvictDevice)

		userGroup.GET("/preferences", r.preferenceHandler.GetPreferences)
		userGroup.PUT("/preferences", r.preferenceHandler.UpdatePreferences)
		userGroup.POST("/preferences/opt-out", r.preferenceHandler.OptOut)

		userGroup.GET("/alerts", r.alertHandler.GetUserAlerts)
		userGroup.DELETE("/alerts/:alertID", r.alertHandler.DeleteAlert)
	}

	// Price alert creation
	e.POST("/alerts", r.alertHandler.CreateAlert)

	// Chat translation
	e.POST("/translate", r.translationHandler.Translate)

	// Deal write signals from the trading surface
	e.POST("/events/deals", r.dealHandler.PublishDealEvent)
}
