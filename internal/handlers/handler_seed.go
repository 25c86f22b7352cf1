package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_dashboard/internal/core/ports/services"
	"github.com/SscSPs/sales_dashboard/internal/dto"
	"github.com/SscSPs/sales_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type seedHandler struct {
	seedService portssvc.SeedSvc
}

func newSeedHandler(ss portssvc.SeedSvc) *seedHandler {
	return &seedHandler{seedService: ss}
}

// RegisterSeedRoutes registers the initialize route behind the given middleware (rate limiting)
func RegisterSeedRoutes(rg *gin.RouterGroup, seedService portssvc.SeedSvc, guards ...gin.HandlerFunc) {
	h := newSeedHandler(seedService)
	rg.GET("/initialize", append(guards, h.initialize)...)
}

// initialize godoc
// @Summary Reseed the database
// @Description Deletes every stored transaction and reloads the upstream feed
// @Tags seed
// @Produce json
// @Success 200 {object} dto.InitializeResponse
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to initialize database"
// @Router /initialize [get]
func (h *seedHandler) initialize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	count, err := h.seedService.Initialize(c.Request.Context())
	if err != nil {
		logger.Error("Failed to initialize database", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize database"})
		return
	}

	logger.Info("Database initialized", slog.Int("count", count))
	c.JSON(http.StatusOK, dto.InitializeResponse{Message: "Database initialized with seed data", Count: count})
}
