// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"linkscan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ScanHandler       *handler.ScanHandler
	FeedbackHandler   *handler.FeedbackHandler
	PreferenceHandler *handler.PreferenceHandler
	MetaHandler       *handler.MetaHandler
	ScanRateLimiter   echo.MiddlewareFunc `name:"scanRateLimiter"`
}

// router holds all the handlers that need to be registered.
type router struct {
	scanHandler       *handler.ScanHandler
	feedbackHandler   *handler.FeedbackHandler
	preferenceHandler *handler.PreferenceHandler
	metaHandler       *handler.MetaHandler
	scanRateLimiter   echo.MiddlewareFunc
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		scanHandler:       params.ScanHandler,
		feedbackHandler:   params.FeedbackHandler,
		preferenceHandler: params.PreferenceHandler,
		metaHandler:       params.MetaHandler,
		scanRateLimiter:   params.ScanRateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The paths mirror what the shipped mobile client already calls, so they
// stay flat rather than grouped under a common prefix.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Scan history routes
	e.POST("/add-url", r.scanHandler.AddURL)
	e.POST("/check-url", r.scanHandler.CheckURL, r.scanRateLimiter)
	e.POST("/mark-url-visited", r.scanHandler.MarkVisited)
	e.POST("/delete-url", r.scanHandler.DeleteURL)
	e.GET("/get-history/:device_id", r.scanHandler.GetHistory)

	// Client companion routes
	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/user_feedback", r.feedbackHandler.Submit)
		apiGroup.POST("/manage_permissions/update", r.preferenceHandler.Update)
	}

	// Informational routes
	e.GET("/version-status", r.metaHandler.VersionStatus)
	e.GET("/education-page", r.metaHandler.EducationPage)
}
