package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const pricingColumns = `id, merchant_id, gateway_code, payment_method, currency, tier,
		processing_rate, processing_fixed, application_rate, application_fixed,
		min_fee, max_fee, active`

// PricingRepo reads fee schedule rows. Rows are maintained externally, so
// this repository is read-only.
type PricingRepo struct {
	pool Pool
}

// NewPricingRepo creates a new PricingRepo.
func NewPricingRepo(pool Pool) *PricingRepo {
	return &PricingRepo{pool: pool}
}

// GetMerchantPricing returns the merchant override row, or nil when none is
// configured.
func (r *PricingRepo) GetMerchantPricing(ctx context.Context, merchantID uuid.UUID, gateway, method, currency string) (*domain.PricingConfig, error) {
	query := `SELECT ` + pricingColumns + ` FROM pricing_configs
		WHERE merchant_id = $1 AND gateway_code = $2 AND payment_method = $3
			AND currency = $4 AND active = TRUE
		LIMIT 1`
	return scanPricing(r.pool.QueryRow(ctx, query, merchantID, gateway, method, currency))
}

// GetDefaultPricing returns the tier default row, or nil when none matches.
func (r *PricingRepo) GetDefaultPricing(ctx context.Context, gateway, method, currency string, tier domain.PricingTier) (*domain.PricingConfig, error) {
	query := `SELECT ` + pricingColumns + ` FROM pricing_configs
		WHERE merchant_id IS NULL AND gateway_code = $1 AND payment_method = $2
			AND currency = $3 AND tier = $4 AND active = TRUE
		LIMIT 1`
	return scanPricing(r.pool.QueryRow(ctx, query, gateway, method, currency, tier))
}

func scanPricing(row pgx.Row) (*domain.PricingConfig, error) {
	var p domain.PricingConfig
	err := row.Scan(
		&p.ID, &p.MerchantID, &p.GatewayCode, &p.PaymentMethod, &p.Currency, &p.Tier,
		&p.ProcessingRate, &p.ProcessingFixed, &p.ApplicationRate, &p.ApplicationFixed,
		&p.MinFee, &p.MaxFee, &p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan pricing config: %w", err)
	}
	return &p, nil
}
