package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"partnerdesk/internal/core/server"
)

// NewAdminEngine mounts the operator API plus /metrics. Auth lives inside
// the admin handler so /login stays public while the rest requires the
// admin role.
func NewAdminEngine(l *zap.Logger, h Handlers) *gin.Engine {
	r := server.NewRouter(l)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	h.Admin.Register(admin)

	return r
}
