// Package http wires the gin router, handlers and middleware together.
package http

import (
	"log/slog"

	"github.com/Uchencho/Bar-Zubi/internal/auth"
	"github.com/Uchencho/Bar-Zubi/internal/config"
	"github.com/Uchencho/Bar-Zubi/internal/http/handlers"
	"github.com/Uchencho/Bar-Zubi/internal/http/middleware"
	"github.com/Uchencho/Bar-Zubi/internal/services"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Config    *config.Config
	Accounts  handlers.AccountStore
	Sessions  *auth.Sessions
	Enquiries *services.EnquiryService
	Logger    *slog.Logger
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.Accounts, deps.Sessions, deps.Config.RefreshTokenTTL, deps.Config.CookieSecure)
	userHandler := handlers.NewUserHandler(deps.Accounts)
	enquiryHandler := handlers.NewEnquiryHandler(deps.Enquiries)

	router.GET("/healthz", handlers.Health)
	router.GET("/users", userHandler.List)

	// Registration and login are reachable only with the deployment's
	// shared service secret.
	service := router.Group("")
	service.Use(middleware.ServiceRequired(deps.Sessions))
	{
		service.POST("/register", authHandler.Register)
		service.POST("/login", authHandler.Login)
	}

	// The refresh flow authenticates via the refresh cookie itself.
	router.POST("/refresh-token", authHandler.Refresh)
	router.POST("/logout", authHandler.Logout)

	protected := router.Group("")
	protected.Use(middleware.UserRequired(deps.Sessions))
	{
		protected.GET("/auth_users", userHandler.Me)
		protected.POST("/enquiry", enquiryHandler.Create)
		protected.GET("/enquiries", enquiryHandler.List)
		protected.GET("/enquiries/:id", enquiryHandler.Get)
		protected.PUT("/enquiries/:id", enquiryHandler.Update)
		protected.DELETE("/enquiries/:id", enquiryHandler.Delete)
	}

	return router
}
