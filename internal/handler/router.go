package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/anyulbade/creator-fee-engine/internal/middleware"
)

type Handlers struct {
	Health      *HealthHandler
	Config      *ConfigHandler
	Quote       *QuoteHandler
	Country     *CountryHandler
	FeeSnapshot *FeeSnapshotHandler
	Admin       *AdminHandler
}

// NewRouter wires the middleware chain and every route. Admin routes sit
// behind AdminAuth.
func NewRouter(h Handlers, adminSecret string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	router.GET("/health", h.Health.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/config/fees", h.Config.GetFees)
		api.POST("/quotes", h.Quote.Create)
		api.GET("/countries/:country/breakdown", h.Country.Breakdown)
		api.GET("/countries/:country/minimum", h.Country.Minimum)
		api.POST("/payments/:payment_id/fee-snapshot", h.FeeSnapshot.Create)
		api.GET("/payments/:payment_id/fee-snapshot", h.FeeSnapshot.Get)
	}

	admin := api.Group("/admin", middleware.AdminAuth(adminSecret))
	admin.GET("/profitability", h.Admin.Profitability)
	admin.GET("/reconciliation", h.Admin.Reconciliation)

	return router
}
