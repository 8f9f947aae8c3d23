package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/turtlefinance/meeting-sync/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	webhookHandler *FirefliesWebhook
	adminHandler   *Admin
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, webhookHandler *FirefliesWebhook, adminHandler *Admin) *Router {
	return &Router{
		cfg:            cfg,
		webhookHandler: webhookHandler,
		adminHandler:   adminHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Provider posts notifications here; path kept stable because it is
	// registered in the Fireflies dashboard.
	e.POST("/fireflies-webhook", rt.webhookHandler.Handle)

	// API v1 group
	v1 := e.Group("/v1")
	rt.setupAdminRoutes(v1)
}

func (rt *Router) setupAdminRoutes(g *echo.Group) {
	adminGroup := g.Group("/admin")

	if rt.adminHandler != nil {
		adminGroup.POST("/notion/databases", rt.adminHandler.CreateNotionDatabases)
		adminGroup.POST("/sheets/filter", rt.adminHandler.RefreshClientView)
	} else {
		adminGroup.POST("/notion/databases", rt.notImplemented)
		adminGroup.POST("/sheets/filter", rt.notImplemented)
	}
}

// healthCheck returns service health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "meeting-sync",
	})
}

// notImplemented is a placeholder for routes without a configured handler
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]string{
		"error": "endpoint not implemented",
	})
}
