package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletType distinguishes the purpose of a merchant wallet.
type WalletType string

const (
	WalletTypeOperating WalletType = "operating"
	WalletTypeReserve   WalletType = "reserve"
	WalletTypePayout    WalletType = "payout"
)

// ValidWalletType reports whether t is a known wallet type.
func ValidWalletType(t WalletType) bool {
	switch t {
	case WalletTypeOperating, WalletTypeReserve, WalletTypePayout:
		return true
	}
	return false
}

// WalletStatus is the freeze state of a wallet.
type WalletStatus string

const (
	WalletStatusActive WalletStatus = "active"
	WalletStatusFrozen WalletStatus = "frozen"
)

// MerchantWallet is a merchant-owned, currency-scoped balance bucket.
// Balance fields are authoritative for debit checks; the ledger carries the
// matching audit trail. Mutations happen under a per-wallet row lock.
type MerchantWallet struct {
	ID                     uuid.UUID       `json:"id"`
	MerchantID             uuid.UUID       `json:"merchant_id"`
	Currency               string          `json:"currency"`
	Type                   WalletType      `json:"type"`
	Status                 WalletStatus    `json:"status"`
	AvailableBalance       decimal.Decimal `json:"available_balance"`
	LockedBalance          decimal.Decimal `json:"locked_balance"`
	DailyWithdrawalUsed    decimal.Decimal `json:"daily_withdrawal_used"`
	DailyWithdrawalLimit   decimal.Decimal `json:"daily_withdrawal_limit"`   // zero = unlimited
	MonthlyWithdrawalUsed  decimal.Decimal `json:"monthly_withdrawal_used"`
	MonthlyWithdrawalLimit decimal.Decimal `json:"monthly_withdrawal_limit"` // zero = unlimited
	AutoSweep              bool            `json:"auto_sweep"`
	SweepThreshold         decimal.Decimal `json:"sweep_threshold"`
	SweepTargetWalletID    *uuid.UUID      `json:"sweep_target_wallet_id,omitempty"`
	FreezeReason           *string         `json:"freeze_reason,omitempty"`
	Metadata               *string         `json:"metadata,omitempty"` // opaque JSON blob
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// IsFrozen reports whether the wallet blocks debits.
func (w *MerchantWallet) IsFrozen() bool {
	return w.Status == WalletStatusFrozen
}

// TotalBalance is available plus locked funds.
func (w *MerchantWallet) TotalBalance() decimal.Decimal {
	return w.AvailableBalance.Add(w.LockedBalance)
}

// DebitPurpose describes why a wallet is being debited. Withdrawal-type
// purposes count against the daily/monthly limits.
type DebitPurpose string

const (
	DebitPurposeWithdrawal   DebitPurpose = "withdrawal"
	DebitPurposeTransfer     DebitPurpose = "transfer"
	DebitPurposeDisbursement DebitPurpose = "disbursement"
	DebitPurposeAdjustment   DebitPurpose = "adjustment"
)

// CountsAgainstLimits reports whether the purpose consumes withdrawal quota.
func (p DebitPurpose) CountsAgainstLimits() bool {
	return p == DebitPurposeWithdrawal || p == DebitPurposeDisbursement
}

// CreditSource describes where credited funds came from.
type CreditSource string

const (
	CreditSourceTopUp    CreditSource = "topup"
	CreditSourceTransfer CreditSource = "transfer"
	CreditSourceSweep    CreditSource = "sweep"
	CreditSourceReversal CreditSource = "reversal"
)

// WalletBalance is the read-model returned by balance queries.
type WalletBalance struct {
	AvailableBalance decimal.Decimal `json:"available_balance"`
	LockedBalance    decimal.Decimal `json:"locked_balance"`
	Total            decimal.Decimal `json:"total"`
}
