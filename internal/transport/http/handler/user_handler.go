package handler

import (
	"github.com/gin-gonic/gin"

	"partnerdesk/internal/domain"
	"partnerdesk/internal/service"
	resp "partnerdesk/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/users", h.create)
	rg.GET("/users", h.list)
	rg.GET("/users/stats", h.stats)
	rg.GET("/users/:id", h.get)
	rg.GET("/users/email/:email", h.getByEmail)
	rg.PATCH("/users/:id", h.update)
	rg.DELETE("/users/:id", h.remove)
}

type createUserReq struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

type updateUserReq struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

func (h *UserHandler) create(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	user, err := h.users.Create(c.Request.Context(), domain.CreateUserData{
		Email:    req.Email,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONCreated(c, user)
}

func (h *UserHandler) stats(c *gin.Context) {
	stats, err := h.users.Stats(c.Request.Context())
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, stats)
}

func (h *UserHandler) list(c *gin.Context) {
	users, err := h.users.FindAll(c.Request.Context())
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, users)
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	user, err := h.users.FindOne(c.Request.Context(), id)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, user)
}

func (h *UserHandler) getByEmail(c *gin.Context) {
	user, err := h.users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, user)
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	user, err := h.users.Update(c.Request.Context(), id, domain.UpdateUserData{
		Email:    req.Email,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, user)
}

// remove soft-deletes; the deactivated user is returned so callers can
// confirm the final state.
func (h *UserHandler) remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	user, err := h.users.Remove(c.Request.Context(), id)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, user)
}
