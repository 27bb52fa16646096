package handlers

import (
	"net/http"

	"brick_manager/internal/logger"
	"brick_manager/internal/metrics"
	"brick_manager/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the engine with request-id, logging, recovery and,
// when enabled, Prometheus middleware in front of the API routes.
func NewRouter(h *APIHandler, base *zap.Logger, metricsEnabled bool) *gin.Engine {
	if base == nil {
		base = logger.GetLogger()
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(base))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.FromContext(c).Error("Panic recovered", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}))
	if metricsEnabled {
		router.Use(metrics.Middleware())
		router.GET("/metrics", metrics.Handler())
	}

	RegisterRoutes(router, h)
	return router
}

func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.GET("/bricks", h.ListBricks)
		api.POST("/bricks", h.CreateBrick)
		api.GET("/bricks/:id", h.GetBrick)
		api.PUT("/bricks/:id", h.UpdateBrick)
		api.DELETE("/bricks/:id", h.DeleteBrick)

		api.GET("/tractors", h.ListTractors)
		api.GET("/tractors/available", h.ListAvailableTractors)
		api.POST("/tractors", h.CreateTractor)
		api.GET("/tractors/:id", h.GetTractor)
		api.PUT("/tractors/:id", h.UpdateTractor)
		api.DELETE("/tractors/:id", h.DeleteTractor)

		api.GET("/laborers", h.ListLaborers)
		api.GET("/laborers/active", h.ListActiveLaborers)
		api.POST("/laborers", h.CreateLaborer)
		api.GET("/laborers/:id", h.GetLaborer)
		api.PUT("/laborers/:id", h.UpdateLaborer)
		api.DELETE("/laborers/:id", h.DeleteLaborer)

		api.GET("/orders", h.ListOrders)
		api.GET("/orders/status/:status", h.ListOrdersByStatus)
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.PUT("/orders/:id", h.UpdateOrder)
		api.DELETE("/orders/:id", h.DeleteOrder)
		api.GET("/orders/:id/invoice-preview", h.PreviewOrderInvoice)
		api.POST("/orders/:id/invoice", h.GenerateOrderInvoice)

		api.GET("/invoices", h.ListInvoices)
		api.GET("/invoices/order/:orderId", h.GetInvoiceByOrder)
		api.POST("/invoices", h.CreateInvoice)
		api.GET("/invoices/:id", h.GetInvoice)
		api.PUT("/invoices/:id", h.UpdateInvoice)
		api.DELETE("/invoices/:id", h.DeleteInvoice)

		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.UpdateSettings)
		api.POST("/settings", h.UpdateSettings)

		api.GET("/statistics", h.GetStatistics)
	}
}
