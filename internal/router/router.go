package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/onegt/chrms-backend/internal/access"
	"github.com/onegt/chrms-backend/internal/config"
	"github.com/onegt/chrms-backend/internal/handler"
	"github.com/onegt/chrms-backend/internal/middleware"
	"github.com/onegt/chrms-backend/internal/response"
	"github.com/onegt/chrms-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Capability *handler.CapabilityHandler
	Associate  *handler.AssociateHandler
	Demand     *handler.DemandHandler
	Candidate  *handler.CandidateHandler
	Interview  *handler.InterviewHandler
	Dashboard  *handler.DashboardHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for credential exchanges (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		// The sign-in config rarely changes; let clients cache it for a day.
		auth.GET("/config", middleware.CacheControl(86400), handlers.Auth.GetConfig)

		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		auth.POST("/google", authLimiter.Middleware(), handlers.Auth.GoogleLogin)

		// Authenticated session routes
		auth.GET("/me", middleware.RequireJWT(authService), handlers.Auth.Me)
		auth.POST("/logout", middleware.RequireJWT(authService), handlers.Auth.Logout)
	}

	// ─── 2. Authenticated API ──────────────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireJWT(authService))
	{
		// Capability catalog and menus
		api.GET("/capabilities", handlers.Capability.ListCapabilities)
		api.GET("/capabilities/:id/menu", handlers.Capability.GetMenu)

		// Directory
		associates := api.Group("/associates")
		associates.Use(middleware.RequireModule(access.ModuleAssociates))
		{
			associates.GET("", handlers.Associate.ListAssociates)
			associates.GET("/:id", handlers.Associate.GetAssociate)
			associates.POST("", handlers.Associate.CreateAssociate)
			associates.DELETE("/:id", handlers.Associate.DeactivateAssociate)
		}

		// Talent management
		talent := api.Group("/talent")
		{
			talent.GET("/stats", middleware.RequireModule(access.ModuleDashboard), handlers.Dashboard.GetTalentStats)

			demands := talent.Group("/demands")
			demands.Use(middleware.RequireModule(access.ModuleDemands))
			{
				demands.GET("", handlers.Demand.ListDemands)
				demands.GET("/:id", handlers.Demand.GetDemand)
				demands.POST("", handlers.Demand.CreateDemand)
				demands.PATCH("/:id/status", handlers.Demand.UpdateDemandStatus)
			}

			candidates := talent.Group("/candidates")
			candidates.Use(middleware.RequireModule(access.ModuleCandidates))
			{
				candidates.GET("", handlers.Candidate.ListCandidates)
				candidates.GET("/:id", handlers.Candidate.GetCandidate)
				candidates.GET("/:id/interviews", handlers.Candidate.ListCandidateInterviews)
				candidates.POST("", handlers.Candidate.CreateCandidate)
				candidates.PATCH("/:id/status", handlers.Candidate.UpdateCandidateStatus)
			}

			interviews := talent.Group("/interviews")
			interviews.Use(middleware.RequireModule(access.ModuleInterviews))
			{
				interviews.GET("", handlers.Interview.ListInterviews)
				interviews.POST("", handlers.Interview.ScheduleInterview)
				interviews.PATCH("/:id", handlers.Interview.UpdateInterview)
			}
		}
	}

	// ─── 3. WebSocket Group ────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/notifications", handlers.WS.NotificationStream)
	}

	return router
}
