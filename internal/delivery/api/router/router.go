// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"upkeep/config"
	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/router/handler"
	"upkeep/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MaintenanceHandler  *handler.MaintenanceHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	OpsHandler          *handler.OpsHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	maintenanceHandler  *handler.MaintenanceHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	opsHandler          *handler.OpsHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		maintenanceHandler:  params.MaintenanceHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		opsHandler:          params.OpsHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	requireAdmin := r.authMiddleware.RequireRole(constants.RoleAdmin)

	// Device-scoped maintenance
	devicesGroup := apiV1.Group("/devices/:deviceId")
	{
		devicesGroup.GET("/maintenance", r.maintenanceHandler.ListDeviceTasks)
		devicesGroup.DELETE("/maintenance", r.maintenanceHandler.RemoveDeviceTasks, requireAdmin)
		devicesGroup.POST("/maintenance/generated", r.maintenanceHandler.IngestGeneratedTasks)
		devicesGroup.POST("/maintenance/deduplicate", r.maintenanceHandler.DeduplicateDeviceTasks)
		devicesGroup.POST("/maintenance/assign", r.maintenanceHandler.AssignDeviceTasks)
		devicesGroup.GET("/maintenance/history", r.maintenanceHandler.ListDeviceHistory)
		devicesGroup.GET("/label", r.deviceHandler.GetMaintenanceLabel)
	}

	// Single tasks
	tasksGroup := apiV1.Group("/maintenance")
	{
		tasksGroup.POST("", r.maintenanceHandler.CreateTask)
		tasksGroup.GET("/:id", r.maintenanceHandler.GetTask)
		tasksGroup.PATCH("/:id", r.maintenanceHandler.UpdateTask)
		tasksGroup.POST("/:id/complete", r.maintenanceHandler.CompleteTask)
		tasksGroup.POST("/:id/assign", r.maintenanceHandler.AssignTask)
	}

	apiV1.GET("/organizations/:orgId/maintenance", r.maintenanceHandler.ListOrganizationTasks)

	// Operations (admin only)
	opsGroup := apiV1.Group("/ops")
	opsGroup.Use(requireAdmin)
	{
		opsGroup.POST("/scheduler/:job", r.opsHandler.TriggerJob)
		opsGroup.POST("/notifications/custom", r.opsHandler.SendCustomMessage)
	}

	// In-app notifications of the caller
	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
	}

	pushTokensGroup := apiV1.Group("/push-tokens")
	{
		pushTokensGroup.POST("", r.notificationHandler.RegisterPushToken)
		pushTokensGroup.DELETE("/:id", r.notificationHandler.DeactivatePushToken)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.Ping)

		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.WhoAmI)
		}
	}
}
