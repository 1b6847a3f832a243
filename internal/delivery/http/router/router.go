// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"myfarm/internal/delivery/http/middleware"
	"myfarm/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	orderHandler   *handler.OrderHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		orderHandler:   params.OrderHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Profile routes. The path carries the owner's user ID and a caller may
	// only touch their own profile.
	profileGroup := api.Group("/profiles")
	profileGroup.Use(r.authMiddleware.Authenticate)
	profileGroup.Use(r.authMiddleware.RequireOwner("userId"))
	{
		profileGroup.GET("/:userId", r.profileHandler.GetProfile)
		profileGroup.PUT("/:userId", r.profileHandler.UpdateProfile)
	}

	// Order routes scoped to the authenticated caller.
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.DELETE("/:orderId", r.orderHandler.CancelOrder)
	}

	// Administrative listings. Any authenticated caller may read them.
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/profiles", r.adminHandler.ListProfiles)
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
	}
}
