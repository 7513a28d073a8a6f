package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingTier selects a fee schedule band.
type PricingTier string

const (
	PricingTierStandard PricingTier = "standard"
	PricingTierPremium  PricingTier = "premium"
)

// PricingConfig is one fee schedule row. Merchant-specific rows (MerchantID
// set) override defaults looked up by (gateway, method, currency, tier).
// Rows are maintained by an external admin surface; the engine only reads them.
type PricingConfig struct {
	ID               uuid.UUID        `json:"id"`
	MerchantID       *uuid.UUID       `json:"merchant_id,omitempty"`
	GatewayCode      string           `json:"gateway_code"`
	PaymentMethod    string           `json:"payment_method"`
	Currency         string           `json:"currency"`
	Tier             PricingTier      `json:"tier"`
	ProcessingRate   decimal.Decimal  `json:"processing_rate"`   // fraction, e.g. 0.015
	ProcessingFixed  decimal.Decimal  `json:"processing_fixed"`
	ApplicationRate  decimal.Decimal  `json:"application_rate"`
	ApplicationFixed decimal.Decimal  `json:"application_fixed"`
	MinFee           decimal.Decimal  `json:"min_fee"`
	MaxFee           *decimal.Decimal `json:"max_fee,omitempty"` // nil = unbounded
	Active           bool             `json:"active"`
}

// FeeBreakdown is the result of a fee calculation.
type FeeBreakdown struct {
	ProcessingFee  decimal.Decimal `json:"processing_fee"`
	ApplicationFee decimal.Decimal `json:"application_fee"`
	TotalFee       decimal.Decimal `json:"total_fee"`
	NetAmount      decimal.Decimal `json:"net_amount"`
}
