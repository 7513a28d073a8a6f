package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopUpMethod is how a wallet funding request is paid.
type TopUpMethod string

const (
	TopUpMethodBankTransfer TopUpMethod = "bank_transfer"
	TopUpMethodMobileMoney  TopUpMethod = "mobile_money"
	TopUpMethodCard         TopUpMethod = "card"
	TopUpMethodBalanceSweep TopUpMethod = "balance_sweep"
)

// ValidTopUpMethod reports whether m is a known funding method.
func ValidTopUpMethod(m TopUpMethod) bool {
	switch m {
	case TopUpMethodBankTransfer, TopUpMethodMobileMoney, TopUpMethodCard, TopUpMethodBalanceSweep:
		return true
	}
	return false
}

// TopUpStatus is the lifecycle state of a wallet top-up.
type TopUpStatus string

const (
	TopUpStatusPending    TopUpStatus = "pending"
	TopUpStatusProcessing TopUpStatus = "processing"
	TopUpStatusCompleted  TopUpStatus = "completed"
	TopUpStatusFailed     TopUpStatus = "failed"
	TopUpStatusCancelled  TopUpStatus = "cancelled"
	TopUpStatusExpired    TopUpStatus = "expired"
)

// IsTerminal reports whether the status is final.
func (s TopUpStatus) IsTerminal() bool {
	switch s {
	case TopUpStatusCompleted, TopUpStatusFailed, TopUpStatusCancelled, TopUpStatusExpired:
		return true
	}
	return false
}

// WalletTopUp is a wallet funding request.
type WalletTopUp struct {
	ID                  uuid.UUID       `json:"id"`
	WalletID            uuid.UUID       `json:"wallet_id"`
	MerchantID          uuid.UUID       `json:"merchant_id"`
	Amount              decimal.Decimal `json:"amount"`     // gross
	Fee                 decimal.Decimal `json:"fee"`
	NetAmount           decimal.Decimal `json:"net_amount"` // amount - fee, credited on completion
	Currency            string          `json:"currency"`
	Method              TopUpMethod     `json:"method"`
	Gateway             string          `json:"gateway"`
	Status              TopUpStatus     `json:"status"`
	PaymentInstructions string          `json:"payment_instructions,omitempty"`
	BankReference       string          `json:"bank_reference,omitempty"`
	GatewayReference    *string         `json:"gateway_reference,omitempty"` // confirmation id, idempotency key
	FailureReason       *string         `json:"failure_reason,omitempty"`
	ExpiresAt           time.Time       `json:"expires_at"`
	CompletedAt         *time.Time      `json:"completed_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// CanMarkProcessing reports whether the top-up may be handed to the gateway.
func (t *WalletTopUp) CanMarkProcessing() bool {
	return t.Status == TopUpStatusPending
}

// CanComplete reports whether the top-up may transition to completed.
func (t *WalletTopUp) CanComplete() bool {
	return t.Status == TopUpStatusPending || t.Status == TopUpStatusProcessing
}

// CanFail reports whether the top-up may transition to failed.
func (t *WalletTopUp) CanFail() bool {
	return t.Status == TopUpStatusPending || t.Status == TopUpStatusProcessing
}

// CanCancel reports whether the top-up may be cancelled by the merchant.
func (t *WalletTopUp) CanCancel() bool {
	return t.Status == TopUpStatusPending
}
