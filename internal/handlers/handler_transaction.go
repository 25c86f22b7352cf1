package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_dashboard/internal/core/ports/services"
	"github.com/SscSPs/sales_dashboard/internal/dto"
	"github.com/SscSPs/sales_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers the transaction list route
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)
	rg.GET("/transactions", h.listTransactions)
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists one page of transactions matching a month and a free-text search over title, description and price
// @Tags transactions
// @Produce json
// @Param month query string false "Month name, prefix or number (matches everything when empty)"
// @Param search query string false "Case-insensitive search term"
// @Param page query int false "1-based page number" default(1)
// @Param perPage query int false "Page size" default(10)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListTransactionsQuery
	// String fields only; binding cannot fail on malformed numbers
	_ = c.ShouldBindQuery(&query)
	filter, page, perPage := query.ToFilter()

	result, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(result, page, perPage))
}
