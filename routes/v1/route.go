package route

import (
	"Alkhabir/controllers"
	"Alkhabir/handlers"
	"Alkhabir/middleware"
	"Alkhabir/services"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the long lived services shared by every request.
type Dependencies struct {
	Log            *zap.Logger
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter

	Dispatcher  *services.DispatchService
	Transcriber *services.TranscriptionService

	// nil when Firebase is not configured
	Cases    *services.CaseService
	Verifier middleware.TokenVerifier
	Users    *services.UserService

	// nil when the admin console is not configured
	Admins *services.AdminService
}

// NewRouter builds the gin engine with global middleware and all routes.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Log))

	// handler errors pushed with ctx.Error
	r.Use(middleware.ErrorHandlerMiddleware(deps.Log))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(deps.AllowedOrigins) == 0 || deps.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = deps.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	RegisterRoutes(r, deps)
	return r
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	limit := deps.RateLimiter.Middleware()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterDispatchRoutes(router, v1Routes, controllers.NewDispatchController(deps.Dispatcher, deps.Log), limit)
		handlers.RegisterTranscribeRoutes(v1Routes, controllers.NewTranscribeController(deps.Transcriber), limit)

		if deps.Verifier != nil && deps.Cases != nil {
			auth := middleware.AuthMiddleware(deps.Verifier, deps.Users)
			handlers.RegisterCaseRoutes(v1Routes, controllers.NewCaseController(deps.Cases), auth, limit)
			handlers.RegisterUserRoutes(v1Routes, controllers.NewUserController(), auth)
		}

		// Firebase users with the admin role reach the case listing without a console login
		if deps.Admins != nil || (deps.Verifier != nil && deps.Cases != nil) {
			adminAuth := middleware.AdminMiddleware(deps.Admins, deps.Verifier, deps.Users)
			handlers.RegisterAdminRoutes(v1Routes, controllers.NewAdminController(deps.Admins, deps.Cases), adminAuth)
		}
	}
}
