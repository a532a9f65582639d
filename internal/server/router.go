package server

import (
	"net/http"

	"isms-center/internal/config"
	"isms-center/internal/database"
	"isms-center/internal/handlers"
	"isms-center/internal/middleware"
	"isms-center/internal/models"
	"isms-center/internal/repository"
	"isms-center/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("isms_session", store))

	registry := service.NewRegistry(database.DB, cfg.GovernanceEnabled)
	reviews := service.NewReviewService(repository.NewRiskRepository(database.DB))

	r.Use(middleware.InjectUser(registry.Tenants))

	// AUTH
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", handlers.Logout)

	auth := r.Group("/api")
	auth.Use(middleware.RequireAuth())

	// RESOURCE INVENTORIES (own + inherited per governance)
	auth.GET("/assets", handlers.ListRecords(registry.Assets))
	auth.GET("/controls", handlers.ListRecords(registry.Controls))
	auth.GET("/documents", handlers.ListRecords(registry.Documents))
	auth.GET("/risks", handlers.ListRecords(registry.Risks))
	auth.GET("/suppliers", handlers.ListRecords(registry.Suppliers))

	// ASSETS
	auth.POST("/assets",
		middleware.RequireRole(models.RoleAdmin, models.RoleCISO),
		handlers.CreateAsset,
	)
	auth.GET("/assets/:id/risk", handlers.AssetRiskProfile(registry))

	// RISKS
	auth.POST("/risks",
		middleware.RequireRole(models.RoleAdmin, models.RoleCISO),
		handlers.CreateRisk,
	)
	auth.PUT("/risks/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleCISO),
		handlers.UpdateRisk(registry),
	)
	auth.GET("/risks/matrix", handlers.RiskMatrix(registry))
	auth.GET("/risks/heatmap", handlers.RiskHeatmap(registry))

	// RISK REVIEWS
	auth.GET("/reviews/overdue", handlers.OverdueReviews(reviews))
	auth.GET("/reviews/upcoming", handlers.UpcomingReviews(reviews))
	auth.GET("/reviews/statistics", handlers.ReviewStatistics(reviews))
	auth.POST("/risks/:id/review",
		middleware.RequireRole(models.RoleAdmin, models.RoleCISO),
		handlers.ScheduleReview(registry, reviews),
	)
	auth.POST("/reviews/bulk",
		middleware.RequireRole(models.RoleAdmin, models.RoleCISO),
		handlers.BulkScheduleReviews(reviews),
	)

	// GOVERNANCE / CORPORATE STRUCTURE
	auth.GET("/governance", handlers.GetGovernance(registry))
	auth.PUT("/governance",
		middleware.RequireRole(models.RoleAdmin),
		handlers.SetGovernance(registry),
	)
	auth.GET("/structure/tree", handlers.StructureTree(registry))
	auth.GET("/structure/validate", handlers.ValidateStructure(registry))

	// DASHBOARD
	auth.GET("/dashboard", handlers.Dashboard(registry, reviews))

	// AUDIT
	auth.GET("/audit",
		middleware.RequireRole(models.RoleAdmin, models.RoleAuditor),
		handlers.ListAuditLogs,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
