package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kouassidev/ferme/internal/server/handlers"
)

// Handlers groups every HTTP adapter the router mounts.
type Handlers struct {
	Stock     *handlers.StockHandler
	Finance   *handlers.FinanceHandler
	Livestock *handlers.LivestockHandler
	Crops     *handlers.CropsHandler
	Workforce *handlers.WorkforceHandler
	Equipment *handlers.EquipmentHandler
	Contacts  *handlers.ContactsHandler
	Dashboard *handlers.DashboardHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/stock", h.Stock.List)
	r.PUT("/stock", h.Stock.Upsert)
	r.GET("/stock/quantity", h.Stock.Quantity)
	r.POST("/stock/sales", h.Stock.RecordSale)
	r.POST("/stock/purchases", h.Stock.RecordPurchase)

	r.GET("/transactions", h.Finance.History)
	r.POST("/transactions", h.Finance.RecordTransaction)
	r.GET("/balance", h.Finance.Balance)
	r.GET("/reports/profit-loss", h.Finance.ProfitLoss)
	r.GET("/reports/expenses", h.Finance.ExpensesByCategory)

	r.GET("/animals", h.Livestock.List)
	r.POST("/animals", h.Livestock.Add)
	r.PATCH("/animals/:id", h.Livestock.Update)
	r.DELETE("/animals/:id", h.Livestock.Delete)

	r.GET("/crops", h.Crops.List)
	r.POST("/crops", h.Crops.Add)
	r.PATCH("/crops/:plot", h.Crops.Update)
	r.DELETE("/crops/:plot", h.Crops.Delete)

	r.GET("/workers", h.Workforce.ListWorkers)
	r.POST("/workers", h.Workforce.AddWorker)
	r.DELETE("/workers/:id", h.Workforce.DeleteWorker)
	r.GET("/tasks", h.Workforce.ListTasks)
	r.POST("/tasks", h.Workforce.AddTask)
	r.PATCH("/tasks/:id/status", h.Workforce.UpdateTaskStatus)
	r.DELETE("/tasks/:id", h.Workforce.DeleteTask)

	r.GET("/equipment", h.Equipment.List)
	r.POST("/equipment", h.Equipment.Add)
	r.PATCH("/equipment/:id", h.Equipment.Update)
	r.DELETE("/equipment/:id", h.Equipment.Delete)
	r.GET("/equipment/:id/maintenance", h.Equipment.MaintenanceHistory)
	r.POST("/equipment/:id/maintenance", h.Equipment.RecordMaintenance)

	r.GET("/contacts", h.Contacts.List)
	r.POST("/contacts", h.Contacts.Add)
	r.PATCH("/contacts/:id", h.Contacts.Update)
	r.DELETE("/contacts/:id", h.Contacts.Delete)

	r.GET("/dashboard", h.Dashboard.Overview)
	r.GET("/alerts", h.Dashboard.Alerts)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
