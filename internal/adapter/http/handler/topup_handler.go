package handler

import (
	"github.com/wachira141/payment-gateway-sub003/internal/adapter/http/dto"
	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"
	"github.com/wachira141/payment-gateway-sub003/pkg/response"

	"github.com/gin-gonic/gin"
)

// TopUpHandler drives the wallet funding lifecycle over HTTP.
type TopUpHandler struct {
	topUpSvc ports.TopUpService
}

// NewTopUpHandler creates a new TopUpHandler.
func NewTopUpHandler(topUpSvc ports.TopUpService) *TopUpHandler {
	return &TopUpHandler{topUpSvc: topUpSvc}
}

// Initiate handles POST /api/v1/topups.
func (h *TopUpHandler) Initiate(c *gin.Context) {
	var req dto.InitiateTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	topUp, err := h.topUpSvc.Initiate(c.Request.Context(), ports.InitiateTopUpParams{
		WalletID: req.WalletID,
		Amount:   req.Amount,
		Method:   domain.TopUpMethod(req.Method),
		Gateway:  req.Gateway,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, topUp)
}

// Submit handles POST /api/v1/topups/:id/submit: the gateway acknowledged
// the funding request, so it moves from pending to processing.
func (h *TopUpHandler) Submit(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	topUp, err := h.topUpSvc.MarkProcessing(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, topUp)
}

// Complete handles POST /api/v1/topups/:id/complete. Gateways retry
// confirmations, so repeats with the same reference replay the first result.
func (h *TopUpHandler) Complete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CompleteTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	topUp, err := h.topUpSvc.Complete(c.Request.Context(), id, req.GatewayReference)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, topUp)
}

// Fail handles POST /api/v1/topups/:id/fail.
func (h *TopUpHandler) Fail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.FailTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	topUp, err := h.topUpSvc.Fail(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, topUp)
}

// Cancel handles POST /api/v1/topups/:id/cancel.
func (h *TopUpHandler) Cancel(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	topUp, err := h.topUpSvc.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, topUp)
}
