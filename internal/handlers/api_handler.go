package handlers

import (
	"context"
	"net/http"
	"time"

	"brick_manager/internal/models"
	"brick_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	brickService      services.BrickService
	tractorService    services.TractorService
	laborerService    services.LaborerService
	orderService      services.OrderService
	invoiceService    services.InvoiceService
	settingService    services.SettingService
	statisticsService services.StatisticsService

	healthChecks map[string]Pinger
}

// Pinger is a backing service /health reports on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

const healthCheckTimeout = 2 * time.Second

func NewAPIHandler(
	brickService services.BrickService,
	tractorService services.TractorService,
	laborerService services.LaborerService,
	orderService services.OrderService,
	invoiceService services.InvoiceService,
	settingService services.SettingService,
	statisticsService services.StatisticsService,
) *APIHandler {
	useJSONFieldNames()
	return &APIHandler{
		brickService:      brickService,
		tractorService:    tractorService,
		laborerService:    laborerService,
		orderService:      orderService,
		invoiceService:    invoiceService,
		settingService:    settingService,
		statisticsService: statisticsService,
		healthChecks:      map[string]Pinger{},
	}
}

// AddHealthCheck makes /health fail while p cannot be reached.
func (h *APIHandler) AddHealthCheck(name string, p Pinger) {
	h.healthChecks[name] = p
}

func (h *APIHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	checks := gin.H{}
	healthy := true
	for name, p := range h.healthChecks {
		if err := p.Ping(ctx); err != nil {
			healthy = false
			checks[name] = "unreachable"
			c.Error(err)
			continue
		}
		checks[name] = "ok"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": checks})
}

// Statistics
func (h *APIHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statisticsService.GetStatistics(c.Request.Context())
	if err != nil {
		resource{"statistics", "statistics"}.fail(c, err, "fetch statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Settings
func (h *APIHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingService.ListSettings(c.Request.Context())
	if err != nil {
		settingsResource.fail(c, err, "fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *APIHandler) UpdateSettings(c *gin.Context) {
	var inputs []models.SettingInput
	if err := bindJSON(c, &inputs); err != nil {
		settingsResource.badRequest(c, err)
		return
	}

	settings, err := h.settingService.UpdateSettings(c.Request.Context(), inputs)
	if err != nil {
		settingsResource.fail(c, err, "update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
