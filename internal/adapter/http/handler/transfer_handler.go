package handler

import (
	"github.com/wachira141/payment-gateway-sub003/internal/adapter/http/dto"
	"github.com/wachira141/payment-gateway-sub003/internal/adapter/http/middleware"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"
	"github.com/wachira141/payment-gateway-sub003/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles inter-wallet transfers and balance sweeps.
type TransferHandler struct {
	transferSvc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// Transfer handles POST /api/v1/transfers.
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.transferSvc.TransferBetweenWallets(c.Request.Context(), req.FromWalletID, req.ToWalletID, req.Amount, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// FromBalance handles POST /api/v1/transfers/from-balance.
func (h *TransferHandler) FromBalance(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	var req dto.TransferFromBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.transferSvc.TransferFromBalance(c.Request.Context(), merchantID, req.Currency, req.Amount, req.TargetWalletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// GetSweepable handles GET /api/v1/transfers/sweepable.
func (h *TransferHandler) GetSweepable(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	currency := c.Query("currency")
	if currency == "" {
		response.Error(c, apperror.Validation("currency query parameter is required"))
		return
	}

	available, err := h.transferSvc.GetAvailableForSweep(c.Request.Context(), merchantID, currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"currency":  currency,
		"available": available,
	})
}
