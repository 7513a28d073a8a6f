package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DisbursementStatus is the lifecycle state of a payout.
type DisbursementStatus string

const (
	DisbursementStatusPending    DisbursementStatus = "pending"
	DisbursementStatusProcessing DisbursementStatus = "processing"
	DisbursementStatusCompleted  DisbursementStatus = "completed"
	DisbursementStatusFailed     DisbursementStatus = "failed"
	DisbursementStatusCancelled  DisbursementStatus = "cancelled"
)

// IsTerminal reports whether the status is final. Failed is not terminal:
// a failed disbursement may be retried until the retry cap.
func (s DisbursementStatus) IsTerminal() bool {
	return s == DisbursementStatusCompleted || s == DisbursementStatusCancelled
}

// Disbursement is a single payout to a beneficiary, funded from a wallet.
// The wallet is debited the gross amount (amount + fee) as a hold at
// creation; failure or cancellation credits the hold back.
type Disbursement struct {
	ID              uuid.UUID          `json:"id"`
	BatchID         *uuid.UUID         `json:"batch_id,omitempty"`
	WalletID        uuid.UUID          `json:"wallet_id"`
	MerchantID      uuid.UUID          `json:"merchant_id"`
	BeneficiaryID   uuid.UUID          `json:"beneficiary_id"`
	Amount          decimal.Decimal    `json:"amount"`
	FeeAmount       decimal.Decimal    `json:"fee_amount"`
	NetAmount       decimal.Decimal    `json:"net_amount"` // amount delivered to the beneficiary
	Currency        string             `json:"currency"`
	Status          DisbursementStatus `json:"status"`
	PayoutMethod    string             `json:"payout_method"`
	Gateway         string             `json:"gateway"`
	Reference       string             `json:"reference"`
	RetryCount      int                `json:"retry_count"`
	FailureReason   *string            `json:"failure_reason,omitempty"`
	GatewayResponse *string            `json:"gateway_response,omitempty"`
	ProcessedAt     *time.Time         `json:"processed_at,omitempty"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
	FailedAt        *time.Time         `json:"failed_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// GrossAmount is the full hold taken from the wallet: amount plus fee.
func (d *Disbursement) GrossAmount() decimal.Decimal {
	return d.Amount.Add(d.FeeAmount)
}

// CanMarkProcessing reports whether the disbursement may be handed to the
// gateway.
func (d *Disbursement) CanMarkProcessing() bool {
	return d.Status == DisbursementStatusPending
}

// CanCancel reports whether the disbursement may still be cancelled.
func (d *Disbursement) CanCancel() bool {
	return d.Status == DisbursementStatusPending || d.Status == DisbursementStatusProcessing
}

// CanRetry reports whether the disbursement is in a retryable state.
func (d *Disbursement) CanRetry() bool {
	return d.Status == DisbursementStatusFailed
}

// BatchStatus is the lifecycle state of a disbursement batch header.
type BatchStatus string

const (
	BatchStatusPending    BatchStatus = "pending"
	BatchStatusProcessing BatchStatus = "processing"
	BatchStatusCompleted  BatchStatus = "completed"
	BatchStatusPartial    BatchStatus = "partial"
)

// DisbursementBatch groups disbursements created in one atomic call.
type DisbursementBatch struct {
	ID          uuid.UUID       `json:"id"`
	WalletID    uuid.UUID       `json:"wallet_id"`
	MerchantID  uuid.UUID       `json:"merchant_id"`
	Name        string          `json:"name"`
	Status      BatchStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"` // sum of gross holds
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Beneficiary is an external payee owned by a merchant. Beneficiary CRUD is
// managed outside the core; the engine only validates ownership.
type Beneficiary struct {
	ID         uuid.UUID `json:"id"`
	MerchantID uuid.UUID `json:"merchant_id"`
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
}
