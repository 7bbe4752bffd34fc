// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fitsync/internal/delivery/http/middleware"
	"fitsync/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SyncHandler     *handler.SyncHandler
	ProviderHandler *handler.ProviderHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	syncHandler     *handler.SyncHandler
	providerHandler *handler.ProviderHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		syncHandler:     params.SyncHandler,
		providerHandler: params.ProviderHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus metrics
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Sync routes that require authentication
	syncGroup := e.Group("/sync")
	syncGroup.Use(r.authMiddleware.Authenticate)
	{
		syncGroup.POST("", r.syncHandler.SyncAll)
		syncGroup.GET("/results", r.syncHandler.Activities)
		syncGroup.POST("/:provider", r.syncHandler.SyncProvider)
	}

	// Provider connection routes
	providerGroup := e.Group("/providers")
	providerGroup.Use(r.authMiddleware.Authenticate)
	{
		providerGroup.GET("", r.providerHandler.ListProviders)
		providerGroup.POST("/:provider/connect", r.providerHandler.Connect)
		providerGroup.POST("/:provider/complete", r.providerHandler.Complete)
		providerGroup.DELETE("/:provider", r.providerHandler.Disconnect)
	}

	// Device routes for push notification targets
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.PUT("/:id/fcm-token", r.deviceHandler.UpdateFCMToken)
		deviceGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
