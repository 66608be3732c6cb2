package handler

import (
	"github.com/gin-gonic/gin"

	"partnerdesk/internal/domain"
	"partnerdesk/internal/service"
	resp "partnerdesk/internal/transport/http/response"
)

// UserSettingsHandler serves the settings sub-resource nested under users.
type UserSettingsHandler struct {
	settings *service.UserSettingsService
}

func NewUserSettingsHandler(settings *service.UserSettingsService) *UserSettingsHandler {
	return &UserSettingsHandler{settings: settings}
}

func (h *UserSettingsHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/users/:id/settings", h.create)
	rg.GET("/users/:id/settings", h.get)
	rg.PATCH("/users/:id/settings", h.update)
	rg.DELETE("/users/:id/settings", h.remove)
}

type settingsReq struct {
	Theme              *domain.Theme `json:"theme"`
	Language           *string       `json:"language"`
	Timezone           *string       `json:"timezone"`
	Notifications      *bool         `json:"notifications"`
	EmailNotifications *bool         `json:"emailNotifications"`
}

func (r *settingsReq) validate() string {
	if r.Theme != nil && !r.Theme.Valid() {
		return "theme must be one of light, dark, auto"
	}
	return ""
}

func (h *UserSettingsHandler) create(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	var req settingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		resp.JSONBadRequest(c, msg)
		return
	}
	settings, err := h.settings.Create(c.Request.Context(), userID, domain.CreateUserSettingsData{
		Theme:              req.Theme,
		Language:           req.Language,
		Timezone:           req.Timezone,
		Notifications:      req.Notifications,
		EmailNotifications: req.EmailNotifications,
	})
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONCreated(c, settings)
}

func (h *UserSettingsHandler) get(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	settings, err := h.settings.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, settings)
}

func (h *UserSettingsHandler) update(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	var req settingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		resp.JSONBadRequest(c, msg)
		return
	}
	settings, err := h.settings.Update(c.Request.Context(), userID, domain.UpdateUserSettingsData{
		Theme:              req.Theme,
		Language:           req.Language,
		Timezone:           req.Timezone,
		Notifications:      req.Notifications,
		EmailNotifications: req.EmailNotifications,
	})
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, settings)
}

func (h *UserSettingsHandler) remove(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	if err := h.settings.Delete(c.Request.Context(), userID); err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, gin.H{"userId": userID})
}
