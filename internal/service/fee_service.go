package service

import (
	"context"
	"fmt"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// FeeServiceImpl implements ports.FeeService. Pricing rows live in
// pricing_configs; merchant overrides win over tier defaults.
type FeeServiceImpl struct {
	pricingRepo ports.PricingRepository
	currencies  *domain.CurrencyRegistry
	log         zerolog.Logger
}

// NewFeeService creates a new FeeServiceImpl.
func NewFeeService(pricingRepo ports.PricingRepository, currencies *domain.CurrencyRegistry, log zerolog.Logger) *FeeServiceImpl {
	return &FeeServiceImpl{
		pricingRepo: pricingRepo,
		currencies:  currencies,
		log:         log,
	}
}

// Calculate resolves the pricing config and computes the fee split.
// Fee = amount*rate + fixed per component, clamped to [min_fee, max_fee],
// rounded once at the end to the currency's minor-unit precision.
func (s *FeeServiceImpl) Calculate(ctx context.Context, merchantID uuid.UUID, gateway, method, currency string, amount decimal.Decimal) (*domain.FeeBreakdown, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount("fee calculation requires a positive amount")
	}
	if !s.currencies.IsActive(currency) {
		return nil, apperror.ErrUnknownCurrency(currency)
	}

	cfg, err := s.pricingRepo.GetMerchantPricing(ctx, merchantID, gateway, method, currency)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("merchant pricing lookup: %w", err))
	}
	if cfg == nil {
		cfg, err = s.pricingRepo.GetDefaultPricing(ctx, gateway, method, currency, domain.PricingTierStandard)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("default pricing lookup: %w", err))
		}
	}
	if cfg == nil {
		return nil, apperror.ErrNoPricingConfig(gateway, method, currency)
	}

	processing := amount.Mul(cfg.ProcessingRate).Add(cfg.ProcessingFixed)
	application := amount.Mul(cfg.ApplicationRate).Add(cfg.ApplicationFixed)
	total := processing.Add(application)

	if total.LessThan(cfg.MinFee) {
		total = cfg.MinFee
	}
	if cfg.MaxFee != nil && total.GreaterThan(*cfg.MaxFee) {
		total = *cfg.MaxFee
	}

	// Round once at the end to avoid compounding per-component errors.
	total = s.currencies.Round(currency, total)
	processing = s.currencies.Round(currency, processing)
	if processing.GreaterThan(total) {
		processing = total
	}
	application = total.Sub(processing)

	if total.GreaterThanOrEqual(amount) {
		return nil, apperror.ErrFeeExceedsAmount(total.String(), amount.String())
	}

	return &domain.FeeBreakdown{
		ProcessingFee:  processing,
		ApplicationFee: application,
		TotalFee:       total,
		NetAmount:      amount.Sub(total),
	}, nil
}
