package middleware

import (
	"net/http"
	"time"

	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"
	"github.com/wachira141/payment-gateway-sub003/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderMerchantID carries the caller's merchant identity, injected by
	// the platform edge after authentication.
	HeaderMerchantID = "X-Merchant-ID"

	// Context keys
	CtxMerchantID = "merchant_id"
)

// MerchantContext extracts the merchant id header set by the upstream
// gateway and stores it on the request context. Requests without a valid
// merchant id are rejected.
func MerchantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderMerchantID)
		if raw == "" {
			response.Error(c, apperror.Validation("missing "+HeaderMerchantID+" header"))
			c.Abort()
			return
		}

		merchantID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid "+HeaderMerchantID+" header"))
			c.Abort()
			return
		}

		c.Set(CtxMerchantID, merchantID)
		c.Next()
	}
}

// MerchantID reads the merchant id placed on the context by MerchantContext.
func MerchantID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxMerchantID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
