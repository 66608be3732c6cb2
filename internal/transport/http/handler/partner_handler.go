package handler

import (
	"github.com/gin-gonic/gin"

	"partnerdesk/internal/domain"
	"partnerdesk/internal/service"
	resp "partnerdesk/internal/transport/http/response"
)

type PartnerHandler struct {
	partners *service.PartnerService
}

func NewPartnerHandler(partners *service.PartnerService) *PartnerHandler {
	return &PartnerHandler{partners: partners}
}

func (h *PartnerHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/partners", h.create)
	rg.GET("/partners", h.list)
	rg.GET("/partners/stats", h.stats)
	rg.GET("/partners/:id", h.get)
	rg.GET("/partners/email/:email", h.getByEmail)
	rg.PATCH("/partners/:id", h.update)
	rg.DELETE("/partners/:id", h.remove)
}

type createPartnerReq struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
	Website  *string `json:"website"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
}

type updatePartnerReq struct {
	Name     *string              `json:"name"`
	Email    *string              `json:"email" binding:"omitempty,email"`
	Phone    domain.Field[string] `json:"phone"`
	Website  domain.Field[string] `json:"website"`
	Address  domain.Field[string] `json:"address"`
	IsActive *bool                `json:"isActive"`
}

func (h *PartnerHandler) create(c *gin.Context) {
	var req createPartnerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	partner, err := h.partners.Create(c.Request.Context(), domain.CreatePartnerData{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Website:  req.Website,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONCreated(c, partner)
}

func (h *PartnerHandler) stats(c *gin.Context) {
	stats, err := h.partners.Stats(c.Request.Context())
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, stats)
}

func (h *PartnerHandler) list(c *gin.Context) {
	partners, err := h.partners.FindAll(c.Request.Context())
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, partners)
}

func (h *PartnerHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	partner, err := h.partners.FindOne(c.Request.Context(), id)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, partner)
}

func (h *PartnerHandler) getByEmail(c *gin.Context) {
	partner, err := h.partners.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, partner)
}

func (h *PartnerHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	var req updatePartnerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	partner, err := h.partners.Update(c.Request.Context(), id, domain.UpdatePartnerData{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Website:  req.Website,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, partner)
}

func (h *PartnerHandler) remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	partner, err := h.partners.Remove(c.Request.Context(), id)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, partner)
}
