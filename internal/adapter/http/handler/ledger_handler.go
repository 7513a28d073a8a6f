package handler

import (
	"strconv"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/adapter/http/middleware"
	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"
	"github.com/wachira141/payment-gateway-sub003/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler exposes the entry store and balance projections.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// parseTimeQuery parses an optional RFC3339 query parameter.
func parseTimeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperror.Validation(name + " must be RFC3339")
	}
	return &t, nil
}

// Query handles GET /api/v1/ledger/entries.
func (h *LedgerHandler) Query(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	req := ports.LedgerQueryRequest{
		MerchantID: merchantID,
		Cursor:     c.Query("cursor"),
	}

	if v := c.Query("account_type"); v != "" {
		at := domain.AccountType(v)
		req.AccountType = &at
	}
	if v := c.Query("entry_type"); v != "" {
		et := domain.EntryType(v)
		req.EntryType = &et
	}
	if v := c.Query("currency"); v != "" {
		req.Currency = &v
	}

	from, err := parseTimeQuery(c, "from")
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		response.Error(c, err)
		return
	}
	req.From, req.To = from, to

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, apperror.Validation("limit must be an integer"))
			return
		}
		req.Limit = limit
	}

	page, err := h.ledgerSvc.Query(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, page)
}

// GetBalances handles GET /api/v1/ledger/balances.
func (h *LedgerHandler) GetBalances(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	var currency *string
	if v := c.Query("currency"); v != "" {
		currency = &v
	}

	balances, err := h.ledgerSvc.GetBalances(c.Request.Context(), merchantID, currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, balances)
}

// GetBalancesSummary handles GET /api/v1/ledger/balances/summary.
func (h *LedgerHandler) GetBalancesSummary(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	summary, err := h.ledgerSvc.GetMerchantBalancesSummary(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, summary)
}
