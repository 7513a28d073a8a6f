package handler

import (
	"github.com/wachira141/payment-gateway-sub003/internal/adapter/http/middleware"
	redisStore "github.com/wachira141/payment-gateway-sub003/internal/adapter/storage/redis"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc       ports.LedgerService
	WalletSvc       ports.WalletService
	TransferSvc     ports.TransferService
	TopUpSvc        ports.TopUpService
	DisbursementSvc ports.DisbursementService
	ValidationSvc   ports.ValidationService
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check verifies every backing dependency
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes. Merchant identity is injected by the platform edge.
	v1 := r.Group("/api/v1", middleware.MerchantContext())

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets")
	{
		wallets.POST("", rl("wallets"), walletHandler.Create)
		wallets.GET("", rl("wallets"), walletHandler.List)
		wallets.GET("/:id/balance", rl("wallets"), walletHandler.GetBalance)
		wallets.POST("/:id/freeze", rl("wallets"), walletHandler.Freeze)
		wallets.POST("/:id/unfreeze", rl("wallets"), walletHandler.Unfreeze)
	}

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	ledger := v1.Group("/ledger")
	{
		ledger.GET("/entries", rl("ledger"), ledgerHandler.Query)
		ledger.GET("/balances", rl("ledger"), ledgerHandler.GetBalances)
		ledger.GET("/balances/summary", rl("ledger"), ledgerHandler.GetBalancesSummary)
	}

	transferHandler := NewTransferHandler(deps.TransferSvc)
	transfers := v1.Group("/transfers")
	{
		transfers.POST("", rl("transfers"), transferHandler.Transfer)
		transfers.POST("/from-balance", rl("transfers"), transferHandler.FromBalance)
		transfers.GET("/sweepable", rl("transfers"), transferHandler.GetSweepable)
	}

	topUpHandler := NewTopUpHandler(deps.TopUpSvc)
	topups := v1.Group("/topups")
	{
		topups.POST("", rl("topups"), topUpHandler.Initiate)
		topups.POST("/:id/submit", rl("topups"), topUpHandler.Submit)
		topups.POST("/:id/complete", rl("topups"), topUpHandler.Complete)
		topups.POST("/:id/fail", rl("topups"), topUpHandler.Fail)
		topups.POST("/:id/cancel", rl("topups"), topUpHandler.Cancel)
	}

	disbursementHandler := NewDisbursementHandler(deps.DisbursementSvc)
	disbursements := v1.Group("/disbursements")
	{
		disbursements.POST("", rl("disbursements"), disbursementHandler.Create)
		disbursements.POST("/batch", rl("disbursements"), disbursementHandler.CreateBatch)
		disbursements.POST("/:id/submit", rl("disbursements"), disbursementHandler.Submit)
		disbursements.POST("/:id/cancel", rl("disbursements"), disbursementHandler.Cancel)
		disbursements.POST("/:id/retry", rl("disbursements"), disbursementHandler.Retry)
		disbursements.POST("/:id/gateway-result", rl("disbursements"), disbursementHandler.GatewayResult)
	}

	reportHandler := NewReportHandler(deps.ValidationSvc)
	reports := v1.Group("/reports")
	{
		reports.GET("/balance-audit", rl("reports"), reportHandler.BalanceAudit)
		reports.GET("/anomalies", rl("reports"), reportHandler.Anomalies)
		reports.GET("/gateway-fees", rl("reports"), reportHandler.GatewayFees)
	}

	return r
}
