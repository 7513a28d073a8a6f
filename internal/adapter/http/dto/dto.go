package dto

import (
	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	Currency               string          `json:"currency" binding:"required,len=3"`
	Type                   string          `json:"type" binding:"required"`
	DailyWithdrawalLimit   decimal.Decimal `json:"daily_withdrawal_limit"`
	MonthlyWithdrawalLimit decimal.Decimal `json:"monthly_withdrawal_limit"`
	AutoSweep              bool            `json:"auto_sweep"`
	SweepThreshold         decimal.Decimal `json:"sweep_threshold"`
	SweepTargetWalletID    *uuid.UUID      `json:"sweep_target_wallet_id,omitempty"`
	Metadata               *string         `json:"metadata,omitempty"`
}

// FreezeWalletRequest is the request body for freezing a wallet.
type FreezeWalletRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// TransferRequest is the request body for a wallet-to-wallet transfer.
type TransferRequest struct {
	FromWalletID uuid.UUID       `json:"from_wallet_id" binding:"required"`
	ToWalletID   uuid.UUID       `json:"to_wallet_id" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description" binding:"max=255"`
}

// TransferFromBalanceRequest sweeps settled merchant balance into a wallet.
type TransferFromBalanceRequest struct {
	Currency       string          `json:"currency" binding:"required,len=3"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	TargetWalletID uuid.UUID       `json:"target_wallet_id" binding:"required"`
}

// InitiateTopUpRequest is the request body for starting a wallet funding.
type InitiateTopUpRequest struct {
	WalletID uuid.UUID       `json:"wallet_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Method   string          `json:"method" binding:"required"`
	Gateway  string          `json:"gateway,omitempty" binding:"omitempty,safe_id"`
}

// CompleteTopUpRequest carries the gateway confirmation reference.
type CompleteTopUpRequest struct {
	GatewayReference string `json:"gateway_reference" binding:"required,max=100"`
}

// FailTopUpRequest carries the gateway failure reason.
type FailTopUpRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// CreateDisbursementRequest is the request body for a single payout.
type CreateDisbursementRequest struct {
	WalletID      uuid.UUID       `json:"wallet_id" binding:"required"`
	BeneficiaryID uuid.UUID       `json:"beneficiary_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PayoutMethod  string          `json:"payout_method" binding:"required,safe_id"`
	Gateway       string          `json:"gateway" binding:"required,safe_id"`
	Reference     string          `json:"reference" binding:"required,max=100"`
}

// BatchLineRequest is one line of a batch disbursement request.
type BatchLineRequest struct {
	BeneficiaryID uuid.UUID       `json:"beneficiary_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Reference     string          `json:"reference" binding:"required,max=100"`
}

// CreateBatchRequest is the request body for an all-or-nothing payout batch.
type CreateBatchRequest struct {
	WalletID     uuid.UUID          `json:"wallet_id" binding:"required"`
	Name         string             `json:"name" binding:"required,max=100"`
	PayoutMethod string             `json:"payout_method" binding:"required,safe_id"`
	Gateway      string             `json:"gateway" binding:"required,safe_id"`
	Lines        []BatchLineRequest `json:"lines" binding:"required,dive"`
}

// CancelDisbursementRequest carries the operator-supplied cancel reason.
type CancelDisbursementRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// GatewayResultRequest is the asynchronous payout confirmation payload.
type GatewayResultRequest struct {
	GatewayReference string  `json:"gateway_reference" binding:"required,max=100"`
	Success          bool    `json:"success"`
	GatewayResponse  *string `json:"gateway_response,omitempty"`
}

// BatchResponse wraps the batch header together with its created lines.
type BatchResponse struct {
	Batch         *domain.DisbursementBatch `json:"batch"`
	Disbursements []domain.Disbursement     `json:"disbursements"`
}
