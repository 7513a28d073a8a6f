package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wachira141/payment-gateway-sub003/config"
	httpHandler "github.com/wachira141/payment-gateway-sub003/internal/adapter/http/handler"
	pgStorage "github.com/wachira141/payment-gateway-sub003/internal/adapter/storage/postgres"
	redisStorage "github.com/wachira141/payment-gateway-sub003/internal/adapter/storage/redis"
	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/internal/event"
	"github.com/wachira141/payment-gateway-sub003/internal/service"
	"github.com/wachira141/payment-gateway-sub003/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Payment Ledger Core")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	topUpRepo := pgStorage.NewTopUpRepo(pool)
	disbRepo := pgStorage.NewDisbursementRepo(pool)
	beneficiaryRepo := pgStorage.NewBeneficiaryRepo(pool)
	pricingRepo := pgStorage.NewPricingRepo(pool)
	reportingRepo := pgStorage.NewReportingRepo(pool)
	confirmRepo := pgStorage.NewConfirmationRepo(pool)
	transactor := pgStorage.NewTransactor(pool, cfg.Ledger.LockTimeout)

	// Initialize Redis stores
	confirmCache := redisStorage.NewConfirmationCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Event hub: delivery transports subscribe here at startup.
	events := event.NewHub(log)

	currencies := domain.DefaultCurrencyRegistry()

	// Initialize business services
	ledgerSvc := service.NewLedgerService(ledgerRepo, currencies, transactor, log)
	walletSvc := service.NewWalletService(walletRepo, ledgerRepo, currencies, transactor, events, log)
	transferSvc := service.NewTransferService(walletRepo, ledgerRepo, currencies, transactor, events, log)
	feeSvc := service.NewFeeService(pricingRepo, currencies, log)
	topUpSvc := service.NewTopUpService(topUpRepo, walletRepo, ledgerRepo, confirmRepo, confirmCache, feeSvc, currencies, transactor, events, cfg.Ledger, log)
	disbSvc := service.NewDisbursementService(disbRepo, walletRepo, ledgerRepo, beneficiaryRepo, confirmRepo, confirmCache, feeSvc, currencies, transactor, events, cfg.Ledger, log)
	validationSvc := service.NewValidationService(ledgerRepo, reportingRepo, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthChecker(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:       ledgerSvc,
		WalletSvc:       walletSvc,
		TransferSvc:     transferSvc,
		TopUpSvc:        topUpSvc,
		DisbursementSvc: disbSvc,
		ValidationSvc:   validationSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          log,
	})

	// Background maintenance: top-up expiry, auto-sweeps, settlement maturity.
	maintCtx, stopMaint := context.WithCancel(ctx)
	go runMaintenance(maintCtx, topUpSvc, transferSvc, walletSvc, cfg.Ledger.SettlementDelay, log)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")
	stopMaint()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// runMaintenance drives the periodic engine entry points until ctx is
// cancelled. Each tick is independent; a failing pass is logged and retried
// on the next interval.
func runMaintenance(ctx context.Context, topUpSvc ports.TopUpService, transferSvc ports.TransferService, walletSvc ports.WalletService, settlementDelay time.Duration, log zerolog.Logger) {
	expiry := time.NewTicker(time.Minute)
	settlement := time.NewTicker(5 * time.Minute)
	defer expiry.Stop()
	defer settlement.Stop()

	lastDay := time.Now().UTC().Day()
	lastMonth := time.Now().UTC().Month()

	for {
		select {
		case <-ctx.Done():
			return

		case <-expiry.C:
			if n, err := topUpSvc.ExpireStale(ctx, time.Now().UTC()); err != nil {
				log.Error().Err(err).Msg("top-up expiry pass failed")
			} else if n > 0 {
				log.Info().Int("expired", n).Msg("expired stale top-ups")
			}

		case <-settlement.C:
			now := time.Now().UTC()

			// Pending settlements mature after the configured delay.
			if n, err := transferSvc.SettlePendingBalances(ctx, now.Add(-settlementDelay)); err != nil {
				log.Error().Err(err).Msg("settlement pass failed")
			} else if n > 0 {
				log.Info().Int("settled", n).Msg("settled matured balances")
			}

			if n, err := transferSvc.RunAutoSweeps(ctx); err != nil {
				log.Error().Err(err).Msg("auto-sweep pass failed")
			} else if n > 0 {
				log.Info().Int("swept", n).Msg("auto-sweeps performed")
			}

			// Withdrawal counters roll over at UTC day and month boundaries.
			if now.Day() != lastDay {
				if _, err := walletSvc.ResetDailyCounters(ctx); err != nil {
					log.Error().Err(err).Msg("daily counter reset failed")
				} else {
					lastDay = now.Day()
				}
			}
			if now.Month() != lastMonth {
				if _, err := walletSvc.ResetMonthlyCounters(ctx); err != nil {
					log.Error().Err(err).Msg("monthly counter reset failed")
				} else {
					lastMonth = now.Month()
				}
			}
		}
	}
}
