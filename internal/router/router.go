package router

import (
	"github.com/gin-gonic/gin"

	"commitgate/internal/config"
	"commitgate/internal/handler"
	"commitgate/internal/middleware"
	"commitgate/internal/service"
)

// Handlers bundles all HTTP handlers for route registration.
type Handlers struct {
	Hook   *handler.HookHandler
	Audit  *handler.AuditHandler
	Rules  *handler.RulesHandler
	Auth   *handler.AuthHandler
	Health *handler.HealthHandler
}

// Setup configures the gin engine with all routes and middleware.
func Setup(cfg *config.Config, authSvc service.AuthService, h Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORS))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	// Commit hook, guarded by the shared hook token
	hooks := v1.Group("/hooks")
	hooks.Use(middleware.HookTokenMiddleware(cfg.Hook.Token))
	{
		hooks.POST("/commit", h.Hook.Validate)
	}

	// Admin authentication
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	// Admin API, JWT protected
	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware(authSvc))
	{
		admin.GET("/rules", h.Rules.GetProjectRules)
		admin.GET("/templates/:name", h.Rules.GetTemplate)

		audit := admin.Group("/audit")
		{
			audit.GET("/runs", h.Audit.List)
			audit.GET("/runs/export/csv", h.Audit.ExportCSV)
			audit.GET("/runs/export/xlsx", h.Audit.ExportXLSX)
			audit.GET("/runs/:id", h.Audit.GetByID)
		}
	}

	return r
}
