package handler

import (
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/adapter/http/middleware"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"
	"github.com/wachira141/payment-gateway-sub003/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReportHandler exposes the audit and reconciliation reports.
type ReportHandler struct {
	validationSvc ports.ValidationService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(validationSvc ports.ValidationService) *ReportHandler {
	return &ReportHandler{validationSvc: validationSvc}
}

// reportWindow resolves the from/to query parameters, defaulting to the
// trailing 24 hours.
func reportWindow(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start, end := now.Add(-24*time.Hour), now

	if f, err := parseTimeQuery(c, "from"); err != nil {
		return time.Time{}, time.Time{}, err
	} else if f != nil {
		start = *f
	}
	if t, err := parseTimeQuery(c, "to"); err != nil {
		return time.Time{}, time.Time{}, err
	} else if t != nil {
		end = *t
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, apperror.Validation("to must not precede from")
	}
	return start, end, nil
}

// BalanceAudit handles GET /api/v1/reports/balance-audit.
func (h *ReportHandler) BalanceAudit(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	start, end, err := reportWindow(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var currency *string
	if v := c.Query("currency"); v != "" {
		currency = &v
	}

	report, err := h.validationSvc.ValidateTransactionBalance(c.Request.Context(), merchantID, start, end, currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, report)
}

// Anomalies handles GET /api/v1/reports/anomalies.
func (h *ReportHandler) Anomalies(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	start, end, err := reportWindow(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	threshold := decimal.Zero
	if v := c.Query("threshold"); v != "" {
		threshold, err = decimal.NewFromString(v)
		if err != nil {
			response.Error(c, apperror.Validation("threshold must be a decimal number"))
			return
		}
	}

	anomalies, err := h.validationSvc.DetectAnomalies(c.Request.Context(), merchantID, threshold, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, anomalies)
}

// GatewayFees handles GET /api/v1/reports/gateway-fees.
func (h *ReportHandler) GatewayFees(c *gin.Context) {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.Validation("merchant context missing"))
		return
	}

	start, end, err := reportWindow(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	aggregates, err := h.validationSvc.GetGatewayFeeAnalysis(c.Request.Context(), merchantID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, aggregates)
}
