// Package http provides the HTTP handler layer for the business search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all business search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *BusinessHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Businesses group
	businesses := api.Group("/businesses")
	businesses.POST("/search", h.SearchBusinesses)
	businesses.GET("/export", h.ExportBusinesses)
}
