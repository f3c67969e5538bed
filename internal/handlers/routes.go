package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Router groups the API handlers for registration on an Echo instance.
type Router struct {
	Health        *HealthCheckHandler
	Ledger        *LedgerHandler
	Reports       *ReportHandler
	Imports       *ImportHandler
	Categories    *CategoryHandler
	Sync          *SyncHandler
	Notifications *NotificationHandler
	Metrics       http.Handler
}

// Register mounts every route under /api/v1. Health, metrics and the provider
// callback are public; everything else runs behind auth.
func (r *Router) Register(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	api.GET("/health", r.Health.HealthCheck)
	if r.Metrics != nil {
		api.GET("/metrics", echo.WrapHandler(r.Metrics))
	}
	api.POST("/provider/callback", r.Sync.Callback)

	protected := api.Group("", auth)

	ledger := protected.Group("/ledger")
	ledger.POST("/entries", r.Ledger.CreateEntry)
	ledger.GET("/entries", r.Ledger.ListEntries)
	ledger.GET("/entries/:id", r.Ledger.GetEntry)
	ledger.PUT("/entries/:id", r.Ledger.UpdateEntry)
	ledger.DELETE("/entries/:id", r.Ledger.DeleteEntry)
	ledger.GET("/balance", r.Ledger.GetBalance)

	reports := protected.Group("/reports")
	reports.GET("/monthly", r.Reports.MonthlySummary)
	reports.GET("/export", r.Reports.ExportCSV)
	reports.GET("/insights", r.Reports.Insights)

	imports := protected.Group("/imports")
	imports.POST("", r.Imports.ImportFile)
	imports.GET("/sample", r.Imports.SampleCSV)

	protected.POST("/categorize", r.Categories.Categorize)
	categories := protected.Group("/categories")
	categories.GET("", r.Categories.ListCategories)
	categories.GET("/rules", r.Categories.ListRules)
	categories.POST("/rules", r.Categories.CreateRule)
	categories.DELETE("/rules/:id", r.Categories.DeleteRule)

	sync := protected.Group("/sync")
	sync.POST("/sessions", r.Sync.CreateSession)
	sync.POST("/connections/:connectionId/fetch", r.Sync.FetchTransactions)
	sync.POST("/import-all", r.Sync.ImportAll)
	sync.GET("/status", r.Sync.Status)

	notifications := protected.Group("/notifications")
	notifications.GET("", r.Notifications.ListNotifications)
	notifications.POST("/:id/read", r.Notifications.MarkRead)
}
