package handler

import (
	"github.com/gin-gonic/gin"

	"partnerdesk/internal/domain"
	"partnerdesk/internal/service"
	resp "partnerdesk/internal/transport/http/response"
)

type ContractHandler struct {
	contracts *service.ContractService
}

func NewContractHandler(contracts *service.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

func (h *ContractHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/contracts", h.create)
	rg.GET("/contracts", h.list)
	rg.GET("/contracts/stats", h.stats)
	rg.GET("/contracts/:id", h.get)
	rg.GET("/contracts/partner/:partnerId", h.listByPartner)
	rg.GET("/contracts/status/:status", h.listByStatus)
	rg.PATCH("/contracts/:id", h.update)
	rg.DELETE("/contracts/:id", h.remove)
	// Nested alias mirroring the partner resource.
	rg.GET("/partners/:id/contracts", h.listByPartnerNested)
}

type createContractReq struct {
	PartnerID   uint                   `json:"partnerId" binding:"required"`
	Title       string                 `json:"title" binding:"required"`
	Description *string                `json:"description"`
	Amount      *float64               `json:"amount" binding:"omitempty,gte=0"`
	Currency    *string                `json:"currency" binding:"omitempty,len=3"`
	StartDate   Date                   `json:"startDate" binding:"required"`
	EndDate     *Date                  `json:"endDate"`
	Status      *domain.ContractStatus `json:"status"`
	IsActive    *bool                  `json:"isActive"`
}

type updateContractReq struct {
	Title       *string                `json:"title"`
	Description domain.Field[string]   `json:"description"`
	Amount      domain.Field[float64]  `json:"amount"`
	Currency    *string                `json:"currency" binding:"omitempty,len=3"`
	StartDate   *Date                  `json:"startDate"`
	EndDate     domain.Field[Date]     `json:"endDate"`
	Status      *domain.ContractStatus `json:"status"`
	IsActive    *bool                  `json:"isActive"`
}

func (h *ContractHandler) create(c *gin.Context) {
	var req createContractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		resp.JSONBadRequest(c, "status must be one of active, expired, cancelled")
		return
	}
	data := domain.CreateContractData{
		PartnerID:   req.PartnerID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		StartDate:   req.StartDate.Time,
		Status:      req.Status,
		IsActive:    req.IsActive,
	}
	if req.EndDate != nil {
		data.EndDate = &req.EndDate.Time
	}
	contract, err := h.contracts.Create(c.Request.Context(), data)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONCreated(c, contract)
}

func (h *ContractHandler) list(c *gin.Context) {
	contracts, err := h.contracts.FindAll(c.Request.Context())
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, contracts)
}

func (h *ContractHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	contract, err := h.contracts.FindOne(c.Request.Context(), id)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, contract)
}

func (h *ContractHandler) listByPartner(c *gin.Context) {
	partnerID, ok := pathID(c, "partnerId")
	if !ok {
		resp.JSONBadRequest(c, "invalid partner id")
		return
	}
	contracts, err := h.contracts.FindByPartnerID(c.Request.Context(), partnerID)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, contracts)
}

func (h *ContractHandler) listByPartnerNested(c *gin.Context) {
	partnerID, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid partner id")
		return
	}
	contracts, err := h.contracts.FindByPartnerID(c.Request.Context(), partnerID)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, contracts)
}

func (h *ContractHandler) stats(c *gin.Context) {
	stats, err := h.contracts.Stats(c.Request.Context())
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, stats)
}

func (h *ContractHandler) listByStatus(c *gin.Context) {
	status := domain.ContractStatus(c.Param("status"))
	if !status.Valid() {
		resp.JSONBadRequest(c, "status must be one of active, expired, cancelled")
		return
	}
	contracts, err := h.contracts.FindByStatus(c.Request.Context(), status)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, contracts)
}

func (h *ContractHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	var req updateContractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.JSONBadRequest(c, err.Error())
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		resp.JSONBadRequest(c, "status must be one of active, expired, cancelled")
		return
	}
	// Binding tags cannot reach inside Field, so the create-side gte=0
	// rule is enforced by hand here.
	if req.Amount.Present() && !req.Amount.IsNull() && req.Amount.Value() < 0 {
		resp.JSONBadRequest(c, "amount must be non-negative")
		return
	}
	data := domain.UpdateContractData{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		EndDate:     dateField(req.EndDate),
		Status:      req.Status,
		IsActive:    req.IsActive,
	}
	if req.StartDate != nil {
		data.StartDate = &req.StartDate.Time
	}
	contract, err := h.contracts.Update(c.Request.Context(), id, data)
	if err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, contract)
}

func (h *ContractHandler) remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.JSONBadRequest(c, "invalid id")
		return
	}
	if err := h.contracts.Delete(c.Request.Context(), id); err != nil {
		resp.JSONError(c, err)
		return
	}
	resp.JSONOK(c, gin.H{"id": id})
}
