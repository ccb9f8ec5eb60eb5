// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"monsoon/internal/delivery/http/middleware"
	"monsoon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	PolicyHandler      *handler.PolicyHandler
	WeatherRiskHandler *handler.WeatherRiskHandler
	ApplicationHandler *handler.ApplicationHandler
	ContactHandler     *handler.ContactHandler
	PremiumHandler     *handler.PremiumHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	policyHandler      *handler.PolicyHandler
	weatherRiskHandler *handler.WeatherRiskHandler
	applicationHandler *handler.ApplicationHandler
	contactHandler     *handler.ContactHandler
	premiumHandler     *handler.PremiumHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		policyHandler:      params.PolicyHandler,
		weatherRiskHandler: params.WeatherRiskHandler,
		applicationHandler: params.ApplicationHandler,
		contactHandler:     params.ContactHandler,
		premiumHandler:     params.PremiumHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Session routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/session", r.authHandler.CreateSession)
		authGroup.GET("/user", r.authHandler.GetCurrentUser, r.authMiddleware.Authenticate)
	}

	// Public catalog and lookup routes
	api.GET("/policies", r.policyHandler.ListPolicies)
	api.GET("/policies/:id", r.policyHandler.GetPolicy)
	api.GET("/weather-risks", r.weatherRiskHandler.ListWeatherRisks)
	api.POST("/contact", r.contactHandler.CreateInquiry)
	api.POST("/calculate-premium", r.premiumHandler.CalculatePremium)

	// Application routes that require authentication
	applicationGroup := api.Group("/policy-applications")
	applicationGroup.Use(r.authMiddleware.Authenticate)
	{
		applicationGroup.POST("", r.applicationHandler.CreateApplication)
		applicationGroup.GET("", r.applicationHandler.ListUserApplications)
	}
}
