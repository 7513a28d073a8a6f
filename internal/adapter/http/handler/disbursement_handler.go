package handler

import (
	"github.com/wachira141/payment-gateway-sub003/internal/adapter/http/dto"
	"github.com/wachira141/payment-gateway-sub003/internal/adapter/http/middleware"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"
	"github.com/wachira141/payment-gateway-sub003/pkg/response"

	"github.com/gin-gonic/gin"
)

// DisbursementHandler handles payout endpoints.
type DisbursementHandler struct {
	disbSvc ports.DisbursementService
}

// NewDisbursementHandler creates a new DisbursementHandler.
func NewDisbursementHandler(disbSvc ports.DisbursementService) *DisbursementHandler {
	return &DisbursementHandler{disbSvc: disbSvc}
}

// Create handles POST /api/v1/disbursements.
func (h *DisbursementHandler) Create(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	var req dto.CreateDisbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	disb, err := h.disbSvc.Create(c.Request.Context(), ports.CreateDisbursementParams{
		MerchantID:    merchantID,
		WalletID:      req.WalletID,
		BeneficiaryID: req.BeneficiaryID,
		Amount:        req.Amount,
		PayoutMethod:  req.PayoutMethod,
		Gateway:       req.Gateway,
		Reference:     req.Reference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, disb)
}

// CreateBatch handles POST /api/v1/disbursements/batch. The batch is
// all-or-nothing: one bad line rejects the whole request.
func (h *DisbursementHandler) CreateBatch(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	lines := make([]ports.BatchLineParams, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, ports.BatchLineParams{
			BeneficiaryID: l.BeneficiaryID,
			Amount:        l.Amount,
			Reference:     l.Reference,
		})
	}

	batch, disbursements, err := h.disbSvc.CreateBatch(c.Request.Context(), ports.CreateBatchParams{
		MerchantID:   merchantID,
		WalletID:     req.WalletID,
		Name:         req.Name,
		PayoutMethod: req.PayoutMethod,
		Gateway:      req.Gateway,
		Lines:        lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.BatchResponse{
		Batch:         batch,
		Disbursements: disbursements,
	})
}

// Submit handles POST /api/v1/disbursements/:id/submit: the gateway
// acknowledged the payout, so it moves from pending to processing.
func (h *DisbursementHandler) Submit(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	disb, err := h.disbSvc.MarkProcessing(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, disb)
}

// Cancel handles POST /api/v1/disbursements/:id/cancel.
func (h *DisbursementHandler) Cancel(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CancelDisbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	disb, err := h.disbSvc.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, disb)
}

// Retry handles POST /api/v1/disbursements/:id/retry.
func (h *DisbursementHandler) Retry(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	disb, err := h.disbSvc.Retry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, disb)
}

// GatewayResult handles POST /api/v1/disbursements/:id/gateway-result.
// Gateways deliver payout outcomes asynchronously and retry on timeouts,
// so repeats with the same reference replay the first result.
func (h *DisbursementHandler) GatewayResult(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.GatewayResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	disb, err := h.disbSvc.HandleGatewayResult(c.Request.Context(), id, req.GatewayReference, req.Success, req.GatewayResponse)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, disb)
}
