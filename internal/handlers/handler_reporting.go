package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/sales_dashboard/internal/core/ports/services"
	"github.com/SscSPs/sales_dashboard/internal/dto"
	"github.com/SscSPs/sales_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the monthly aggregate views
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers the statistics, histogram and category routes
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/statistics", h.getStatistics)
	rg.GET("/price-range", h.getPriceRanges)
	rg.GET("/categories", h.getCategories)
}

func monthFromQuery(c *gin.Context) domain.MonthFilter {
	return domain.ParseMonthFilter(c.Query("month"))
}

// getStatistics godoc
// @Summary Monthly sales statistics
// @Description Counts sold and unsold items of a month and sums the price of the sold ones
// @Tags reports
// @Produce json
// @Param month query string false "Month name, prefix or number"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 500 {object} map[string]string "Failed to generate statistics"
// @Router /statistics [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := monthFromQuery(c)

	stats, err := h.reportingService.Statistics(c.Request.Context(), month)
	if err != nil {
		logger.Error("Failed to generate statistics", slog.String("month", month.Raw), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}

// getPriceRanges godoc
// @Summary Monthly price-range histogram
// @Description Counts the items of a month in each configured price bucket, bounds included
// @Tags reports
// @Produce json
// @Param month query string false "Month name, prefix or number"
// @Success 200 {array} dto.PriceRangeResponse
// @Failure 500 {object} map[string]string "Failed to generate price ranges"
// @Router /price-range [get]
func (h *reportingHandler) getPriceRanges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := monthFromQuery(c)

	ranges, err := h.reportingService.PriceRanges(c.Request.Context(), month)
	if err != nil {
		logger.Error("Failed to generate price ranges", slog.String("month", month.Raw), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate price ranges"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceRangeResponses(ranges))
}

// getCategories godoc
// @Summary Monthly category breakdown
// @Description Counts the items of a month per category
// @Tags reports
// @Produce json
// @Param month query string false "Month name, prefix or number"
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} map[string]string "Failed to generate category breakdown"
// @Router /categories [get]
func (h *reportingHandler) getCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := monthFromQuery(c)

	categories, err := h.reportingService.Categories(c.Request.Context(), month)
	if err != nil {
		logger.Error("Failed to generate category breakdown", slog.String("month", month.Raw), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate category breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}
