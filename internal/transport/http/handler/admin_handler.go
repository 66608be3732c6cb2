package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"partnerdesk/internal/core/auth"
	"partnerdesk/internal/core/config"
	"partnerdesk/internal/service"
	"partnerdesk/internal/transport/http/middleware"
	resp "partnerdesk/internal/transport/http/response"
	"partnerdesk/pkg/utils"
)

// AdminHandler serves the operator API: login, paged entity listings that
// can include soft-deleted rows, aggregate stats, and hard purge.
type AdminHandler struct {
	cfg       config.AdminAuth
	jwt       *auth.JWTer
	users     *service.UserService
	partners  *service.PartnerService
	settings  *service.UserSettingsService
	contracts *service.ContractService
}

func NewAdminHandler(cfg config.AdminAuth, jwt *auth.JWTer, users *service.UserService, partners *service.PartnerService, settings *service.UserSettingsService, contracts *service.ContractService) *AdminHandler {
	return &AdminHandler{cfg: cfg, jwt: jwt, users: users, partners: partners, settings: settings, contracts: contracts}
}

func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)

	guarded := rg.Group("", middleware.AuthJWT(h.jwt, "admin"))
	guarded.GET("/users", h.listUsers)
	guarded.DELETE("/users/:id", h.purgeUser)
	guarded.GET("/partners", h.listPartners)
	guarded.GET("/stats", h.stats)
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	if req.Username != h.cfg.Username || !utils.CheckPassword(req.Password, h.cfg.PasswordHash) {
		c.JSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "bad credentials"))
		return
	}
	token, err := h.jwt.Issue(req.Username, "admin")
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, gin.H{"token": token})
}

type listQ struct {
	Offset      int  `form:"offset,default=0"`
	Limit       int  `form:"limit,default=20"`
	WithDeleted bool `form:"with_deleted"`
}

func (q *listQ) clamp() {
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
}

func (h *AdminHandler) listUsers(c *gin.Context) {
	var q listQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	q.clamp()
	users, total, err := h.users.List(c.Request.Context(), q.WithDeleted, q.Offset, q.Limit)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, gin.H{"total": total, "items": users})
}

// purgeUser hard-removes the user row and its settings; not reachable
// through the public API.
func (h *AdminHandler) purgeUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	if err := h.users.Purge(c.Request.Context(), id); err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, gin.H{"id": id})
}

func (h *AdminHandler) listPartners(c *gin.Context) {
	var q listQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	q.clamp()
	partners, total, err := h.partners.List(c.Request.Context(), q.WithDeleted, q.Offset, q.Limit)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, gin.H{"total": total, "items": partners})
}

func (h *AdminHandler) stats(c *gin.Context) {
	ctx := c.Request.Context()
	userStats, err := h.users.Stats(ctx)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	partnerStats, err := h.partners.Stats(ctx)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	contractStats, err := h.contracts.Stats(ctx)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	settingsTotal, err := h.settings.Count(ctx)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, gin.H{
		"totalUsers":     userStats.TotalUsers,
		"totalPartners":  partnerStats.TotalPartners,
		"totalContracts": contractStats.TotalContracts,
		"totalSettings":  settingsTotal,
	})
}
