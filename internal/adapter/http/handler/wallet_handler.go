package handler

import (
	"github.com/wachira141/payment-gateway-sub003/internal/adapter/http/dto"
	"github.com/wachira141/payment-gateway-sub003/internal/adapter/http/middleware"
	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"
	"github.com/wachira141/payment-gateway-sub003/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet lifecycle endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// pathID parses the :id path parameter as a UUID.
func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid id path parameter")
	}
	return id, nil
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.walletSvc.CreateWallet(c.Request.Context(), ports.CreateWalletParams{
		MerchantID:             merchantID,
		Currency:               req.Currency,
		Type:                   domain.WalletType(req.Type),
		DailyWithdrawalLimit:   req.DailyWithdrawalLimit,
		MonthlyWithdrawalLimit: req.MonthlyWithdrawalLimit,
		AutoSweep:              req.AutoSweep,
		SweepThreshold:         req.SweepThreshold,
		SweepTargetWalletID:    req.SweepTargetWalletID,
		Metadata:               req.Metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, wallet)
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	wallets, err := h.walletSvc.ListByMerchant(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, wallets)
}

// GetBalance handles GET /api/v1/wallets/:id/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	balance, err := h.walletSvc.GetBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, balance)
}

// Freeze handles POST /api/v1/wallets/:id/freeze.
func (h *WalletHandler) Freeze(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.FreezeWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.walletSvc.Freeze(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, wallet)
}

// Unfreeze handles POST /api/v1/wallets/:id/unfreeze.
func (h *WalletHandler) Unfreeze(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	wallet, err := h.walletSvc.Unfreeze(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, wallet)
}
