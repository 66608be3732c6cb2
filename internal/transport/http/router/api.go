// Package router assembles the two HTTP surfaces: the public CRUD API
// and the operator admin API.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"partnerdesk/internal/transport/http/handler"
	mdw "partnerdesk/internal/transport/http/middleware"
)

// Handlers carries everything the engines mount.
type Handlers struct {
	Users        *handler.UserHandler
	UserSettings *handler.UserSettingsHandler
	Partners     *handler.PartnerHandler
	Contracts    *handler.ContractHandler
	Admin        *handler.AdminHandler
}

func NewAPIEngine(l *zap.Logger, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	api := r.Group("/api/v1")
	h.Users.Register(api)
	h.UserSettings.Register(api)
	h.Partners.Register(api)
	h.Contracts.Register(api)

	return r
}
