// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"innkeep/internal/delivery/http/middleware"
	"innkeep/internal/delivery/http/router/handler"
	"innkeep/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	SettingsHandler   *handler.SettingsHandler
	RoomHandler       *handler.RoomHandler
	AddonHandler      *handler.AddonHandler
	UploadHandler     *handler.UploadHandler
	PublicHandler     *handler.PublicHandler
	SuperadminHandler *handler.SuperadminHandler
	HealthHandler     *handler.HealthHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Service identity and probes
	e.GET("/", p.HealthHandler.Root)
	e.GET("/health", p.HealthHandler.Health)
	e.GET("/health/db", p.HealthHandler.HealthDB)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/validate-token", p.AuthHandler.ValidateToken)
		authGroup.POST("/forgot-password", p.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", p.AuthHandler.ResetPassword)

		// Routes below require a valid session.
		authGroup.POST("/change-password", p.AuthHandler.ChangePassword, p.AuthMiddleware.Authenticate)
		authGroup.POST("/change-email", p.AuthHandler.ChangeEmail, p.AuthMiddleware.Authenticate)
	}

	// Admin surface: authenticated hotel owners (superadmins pass through).
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireHotelAdmin)
	{
		adminGroup.GET("/me", p.SettingsHandler.Me)
		adminGroup.GET("/hotels", p.SettingsHandler.ListHotels)

		settingsGroup := adminGroup.Group("/settings")
		{
			settingsGroup.GET("/property", p.SettingsHandler.GetProperty)
			settingsGroup.PATCH("/property", p.SettingsHandler.PatchProperty)
			settingsGroup.GET("/design", p.SettingsHandler.GetDesign)
			settingsGroup.PATCH("/design", p.SettingsHandler.PatchDesign)
			settingsGroup.GET("/addons", p.SettingsHandler.GetAddonSettings)
			settingsGroup.PATCH("/addons", p.SettingsHandler.PatchAddonSettings)
			settingsGroup.GET("/setup-status", p.SettingsHandler.GetSetupStatus)
			settingsGroup.PUT("/translations/:locale", p.SettingsHandler.UpsertTranslation)
		}

		// Content that reaches the public booking site is for verified
		// accounts only; pending owners are limited to configuring the
		// property itself.
		verified := p.AuthMiddleware.RequireVerified
		adminGroup.GET("/rooms", p.RoomHandler.List, verified)
		adminGroup.POST("/rooms", p.RoomHandler.Create, verified)
		adminGroup.PATCH("/rooms/:id", p.RoomHandler.Update, verified)
		adminGroup.DELETE("/rooms/:id", p.RoomHandler.Delete, verified)

		adminGroup.GET("/addons", p.AddonHandler.List, verified)
		adminGroup.POST("/addons", p.AddonHandler.Create, verified)
		adminGroup.PATCH("/addons/:id", p.AddonHandler.Update, verified)
		adminGroup.DELETE("/addons/:id", p.AddonHandler.Delete, verified)

		adminGroup.POST("/uploads/image", p.UploadHandler.UploadImage, verified)
	}

	// Superadmin surface
	superadminGroup := e.Group("/admin/superadmin")
	superadminGroup.Use(p.AuthMiddleware.Authenticate)
	superadminGroup.Use(p.AuthMiddleware.RequireVerified)
	superadminGroup.Use(p.AuthMiddleware.RequireSuperadmin)
	{
		superadminGroup.GET("/users", p.SuperadminHandler.ListUsers)
		superadminGroup.PATCH("/users/:id/status", p.SuperadminHandler.UpdateUserStatus)
		superadminGroup.GET("/hotels", p.SuperadminHandler.ListHotels)
	}

	// Public booking-site API
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/hotels/:slug", p.PublicHandler.HotelBySlug)
		apiGroup.GET("/hotels/:slug/rooms", p.PublicHandler.RoomTypes)
		apiGroup.GET("/hotels/:slug/addons", p.PublicHandler.Addons)
		apiGroup.GET("/hotels/:slug/payment-settings", p.PublicHandler.PaymentSettings)
		apiGroup.GET("/exchange-rates", p.PublicHandler.ExchangeRates)
	}
}
