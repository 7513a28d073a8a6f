package ports

import (
	"context"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Service Ports (Business Logic) ---

// LedgerService is the double-entry entry store plus balance projector.
type LedgerService interface {
	// Post validates and persists a balanced entry set atomically under one
	// transaction id.
	Post(ctx context.Context, drafts []domain.EntryDraft) ([]domain.LedgerEntry, error)
	// Query pages entries newest-first using an opaque cursor.
	Query(ctx context.Context, req LedgerQueryRequest) (*LedgerPage, error)
	GetBalances(ctx context.Context, merchantID uuid.UUID, currency *string) ([]domain.AccountBalance, error)
	GetMerchantBalancesSummary(ctx context.Context, merchantID uuid.UUID) (*domain.BalancesSummary, error)
}

// LedgerQueryRequest is the inbound shape for ledger queries.
type LedgerQueryRequest struct {
	MerchantID  uuid.UUID
	AccountType *domain.AccountType
	EntryType   *domain.EntryType
	Currency    *string
	From        *time.Time
	To          *time.Time
	Cursor      string
	Limit       int
}

// LedgerPage is one page of entries plus the cursor for the next page
// (empty when exhausted).
type LedgerPage struct {
	Entries    []domain.LedgerEntry `json:"entries"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

// CreateWalletParams holds validated input for wallet creation.
type CreateWalletParams struct {
	MerchantID             uuid.UUID
	Currency               string
	Type                   domain.WalletType
	DailyWithdrawalLimit   decimal.Decimal
	MonthlyWithdrawalLimit decimal.Decimal
	AutoSweep              bool
	SweepThreshold         decimal.Decimal
	SweepTargetWalletID    *uuid.UUID
	Metadata               *string
}

// WalletService manages merchant wallet state and balance mutations.
type WalletService interface {
	CreateWallet(ctx context.Context, params CreateWalletParams) (*domain.MerchantWallet, error)
	// Credit increases available balance. Permitted on frozen wallets:
	// freezing blocks withdrawals only.
	Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, source domain.CreditSource, description string) (*domain.MerchantWallet, error)
	// Debit decreases available balance, enforcing freeze state, funds and
	// withdrawal limits, and posts the paired ledger entries atomically.
	Debit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, purpose domain.DebitPurpose, description string) (*domain.MerchantWallet, error)
	Freeze(ctx context.Context, walletID uuid.UUID, reason string) (*domain.MerchantWallet, error)
	Unfreeze(ctx context.Context, walletID uuid.UUID) (*domain.MerchantWallet, error)
	GetBalance(ctx context.Context, walletID uuid.UUID) (*domain.WalletBalance, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.MerchantWallet, error)
	// Counter resets are invoked by the external scheduler.
	ResetDailyCounters(ctx context.Context) (int64, error)
	ResetMonthlyCounters(ctx context.Context) (int64, error)
}

// TransferResult summarises a completed transfer or sweep.
type TransferResult struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	FromWalletID  *uuid.UUID      `json:"from_wallet_id,omitempty"` // nil for balance sweeps
	ToWalletID    uuid.UUID       `json:"to_wallet_id"`
	MerchantID    uuid.UUID       `json:"merchant_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CompletedAt   time.Time       `json:"completed_at"`
}

// TransferService moves funds between wallets and sweeps settled balance
// into wallets.
type TransferService interface {
	TransferBetweenWallets(ctx context.Context, fromWalletID, toWalletID uuid.UUID, amount decimal.Decimal, description string) (*TransferResult, error)
	TransferFromBalance(ctx context.Context, merchantID uuid.UUID, currency string, amount decimal.Decimal, targetWalletID uuid.UUID) (*TransferResult, error)
	GetAvailableForSweep(ctx context.Context, merchantID uuid.UUID, currency string) (decimal.Decimal, error)
	// RunAutoSweeps sweeps configured wallets past their thresholds; invoked
	// by the external scheduler. Returns the number of sweeps performed.
	RunAutoSweeps(ctx context.Context) (int, error)
	// SettlePendingBalances moves matured pending amounts to available.
	SettlePendingBalances(ctx context.Context, now time.Time) (int, error)
}

// InitiateTopUpParams holds validated input for a wallet funding request.
type InitiateTopUpParams struct {
	WalletID uuid.UUID
	Amount   decimal.Decimal
	Method   domain.TopUpMethod
	Gateway  string // optional; defaults per method
}

// TopUpService drives the wallet funding state machine.
type TopUpService interface {
	Initiate(ctx context.Context, params InitiateTopUpParams) (*domain.WalletTopUp, error)
	// MarkProcessing records the gateway's submission ack.
	MarkProcessing(ctx context.Context, topUpID uuid.UUID) (*domain.WalletTopUp, error)
	// Complete credits the wallet; idempotent by gateway reference.
	Complete(ctx context.Context, topUpID uuid.UUID, gatewayRef string) (*domain.WalletTopUp, error)
	Fail(ctx context.Context, topUpID uuid.UUID, reason string) (*domain.WalletTopUp, error)
	Cancel(ctx context.Context, topUpID uuid.UUID) (*domain.WalletTopUp, error)
	// ExpireStale transitions pending top-ups past their deadline, continuing
	// past individual failures. Returns the count expired.
	ExpireStale(ctx context.Context, now time.Time) (int, error)
}

// FeeService computes the fee split for a transaction.
type FeeService interface {
	Calculate(ctx context.Context, merchantID uuid.UUID, gateway, method, currency string, amount decimal.Decimal) (*domain.FeeBreakdown, error)
}

// CreateDisbursementParams holds validated input for a single payout.
type CreateDisbursementParams struct {
	MerchantID    uuid.UUID
	WalletID      uuid.UUID
	BeneficiaryID uuid.UUID
	Amount        decimal.Decimal
	PayoutMethod  string
	Gateway       string
	Reference     string
}

// BatchLineParams is one line of a batch disbursement request.
type BatchLineParams struct {
	BeneficiaryID uuid.UUID
	Amount        decimal.Decimal
	Reference     string
}

// CreateBatchParams holds validated input for a batch of payouts.
type CreateBatchParams struct {
	MerchantID   uuid.UUID
	WalletID     uuid.UUID
	Name         string
	PayoutMethod string
	Gateway      string
	Lines        []BatchLineParams
}

// DisbursementService orchestrates payouts to beneficiaries.
type DisbursementService interface {
	Create(ctx context.Context, params CreateDisbursementParams) (*domain.Disbursement, error)
	// MarkProcessing records the gateway's submission ack.
	MarkProcessing(ctx context.Context, id uuid.UUID) (*domain.Disbursement, error)
	CreateBatch(ctx context.Context, params CreateBatchParams) (*domain.DisbursementBatch, []domain.Disbursement, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*domain.Disbursement, error)
	Retry(ctx context.Context, id uuid.UUID) (*domain.Disbursement, error)
	// HandleGatewayResult applies an asynchronous gateway confirmation,
	// idempotent by gateway reference.
	HandleGatewayResult(ctx context.Context, id uuid.UUID, gatewayRef string, success bool, gatewayResponse *string) (*domain.Disbursement, error)
}

// Discrepancy is one unbalanced transaction found by the audit.
type Discrepancy struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Currency      string          `json:"currency"`
	DebitTotal    decimal.Decimal `json:"debit_total"`
	CreditTotal   decimal.Decimal `json:"credit_total"`
	Difference    decimal.Decimal `json:"difference"`
}

// BalanceAuditReport is the result of a windowed ledger audit.
type BalanceAuditReport struct {
	IsBalanced          bool          `json:"is_balanced"`
	TransactionsChecked int           `json:"transactions_checked"`
	Discrepancies       []Discrepancy `json:"discrepancies"`
}

// Anomaly flags a transaction that exceeds a threshold or whose fee ratio is
// an outlier against the gateway/method baseline.
type Anomaly struct {
	Kind        string             `json:"kind"` // amount_threshold | fee_ratio_outlier
	RelatedKind domain.RelatedKind `json:"related_kind"`
	RelatedID   uuid.UUID          `json:"related_id"`
	Gateway     string             `json:"gateway,omitempty"`
	Method      string             `json:"method,omitempty"`
	Currency    string             `json:"currency"`
	Amount      decimal.Decimal    `json:"amount"`
	Observed    decimal.Decimal    `json:"observed"`
	Baseline    decimal.Decimal    `json:"baseline"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// GatewayFeeAggregate is one row of the gateway fee analysis report.
type GatewayFeeAggregate struct {
	Gateway     string          `json:"gateway"`
	Method      string          `json:"method"`
	Currency    string          `json:"currency"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalFees   decimal.Decimal `json:"total_fees"`
	AvgFeeRatio decimal.Decimal `json:"avg_fee_ratio"`
}

// ValidationService is the defense-in-depth audit and reporting layer.
type ValidationService interface {
	ValidateTransactionBalance(ctx context.Context, merchantID uuid.UUID, start, end time.Time, currency *string) (*BalanceAuditReport, error)
	DetectAnomalies(ctx context.Context, merchantID uuid.UUID, threshold decimal.Decimal, start, end time.Time) ([]Anomaly, error)
	GetGatewayFeeAnalysis(ctx context.Context, merchantID uuid.UUID, start, end time.Time) ([]GatewayFeeAggregate, error)
}

// EventPublisher broadcasts domain events after successful commits. The
// delivery transport belongs to the excluded notification layer.
type EventPublisher interface {
	Publish(event domain.Event)
}

// ConfirmationCache is the fast-path check for processed gateway references.
// The authoritative record is the ConfirmationRepository row.
type ConfirmationCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
