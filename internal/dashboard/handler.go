package dashboard

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sales_dashboard/internal/middleware"
	"github.com/SscSPs/sales_dashboard/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the dashboard page and a health check on r.
func RegisterRoutes(r *gin.Engine, loader *Loader, renderer *Renderer, defaultMonth string) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	r.GET("/", func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		page, perPage := pagination.Normalize(c.Query("page"), c.Query("perPage"))
		req := Request{
			Month:   c.DefaultQuery("month", defaultMonth),
			Search:  c.Query("search"),
			Page:    page,
			PerPage: perPage,
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, loader.Load(c.Request.Context(), req)); err != nil {
			logger.Error("Failed to render dashboard", slog.String("error", err.Error()))
			c.String(http.StatusInternalServerError, "Failed to render dashboard")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	})
}
