package ports

import (
	"context"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerQueryParams holds filter + cursor pagination for ledger queries.
// Cursor fields are decoded from the opaque cursor by the service layer.
type LedgerQueryParams struct {
	MerchantID     uuid.UUID
	AccountType    *domain.AccountType
	EntryType      *domain.EntryType
	Currency       *string
	From           *time.Time
	To             *time.Time
	CursorPostedAt *time.Time
	CursorEntryID  *uuid.UUID
	Limit          int
}

// TransactionSums is the per-transaction debit/credit roll-up used by the
// validation engine.
type TransactionSums struct {
	TransactionID uuid.UUID
	Currency      string
	DebitTotal    decimal.Decimal
	CreditTotal   decimal.Decimal
}

// LedgerRepository defines persistence for the append-only entry store.
/// There is deliberately no update or delete: corrections are reversing
// transactions.
type LedgerRepository interface {
	// InsertEntries persists a balanced entry set within the caller's
	// transaction. All-or-nothing by virtue of the surrounding pgx.Tx.
	InsertEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error
	// Query returns a page ordered by posted_at descending, entry id as
	// tiebreak.
	Query(ctx context.Context, params LedgerQueryParams) ([]domain.LedgerEntry, error)
	// AggregateBalances sums debits and credits per (account_type, currency).
	AggregateBalances(ctx context.Context, merchantID uuid.UUID, currency *string) ([]domain.AccountBalance, error)
	// AccountNet computes the signed net of one named asset account inside a
	// transaction, so sweep checks see locked-in state.
	AccountNet(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, currency, accountName string) (decimal.Decimal, error)
	// SumsByTransaction re-sums entries grouped by transaction and currency
	// over a window.
	SumsByTransaction(ctx context.Context, merchantID uuid.UUID, start, end time.Time, currency *string) ([]TransactionSums, error)
	// PendingSettlements returns matured pending amounts grouped by currency,
	// for the settlement scheduler.
	PendingSettlements(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, maturedBefore time.Time) (map[string]decimal.Decimal, error)
	// MerchantsWithPending lists merchants holding a pending settlement balance.
	MerchantsWithPending(ctx context.Context, maturedBefore time.Time) ([]uuid.UUID, error)
}

// WalletRepository defines persistence operations for merchant wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic
// locking.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, w *domain.MerchantWallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantWallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.MerchantWallet, error)
	FindActive(ctx context.Context, merchantID uuid.UUID, currency string, walletType domain.WalletType) (*domain.MerchantWallet, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.MerchantWallet, error)
	// UpdateBalances persists balance and counter mutations within a
	// transaction holding the row lock.
	UpdateBalances(ctx context.Context, tx pgx.Tx, w *domain.MerchantWallet) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.WalletStatus, freezeReason *string) error
	ListAutoSweep(ctx context.Context) ([]domain.MerchantWallet, error)
	ResetDailyCounters(ctx context.Context) (int64, error)
	ResetMonthlyCounters(ctx context.Context) (int64, error)
}

// TopUpRepository defines persistence for wallet funding requests.
type TopUpRepository interface {
	Create(ctx context.Context, t *domain.WalletTopUp) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTopUp, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletTopUp, error)
	// MarkCompleted records completion within the crediting transaction.
	MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, gatewayRef string, completedAt time.Time) error
	// TransitionStatus performs a conditional state change and reports whether
	// a row in one of the from-states was updated.
	TransitionStatus(ctx context.Context, id uuid.UUID, from []domain.TopUpStatus, to domain.TopUpStatus, failureReason *string) (bool, error)
	ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]domain.WalletTopUp, error)
	// MarkExpired transitions a single row to expired iff it is still pending.
	MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

// DisbursementRepository defines persistence for payouts and batches.
type DisbursementRepository interface {
	CreateBatch(ctx context.Context, tx pgx.Tx, b *domain.DisbursementBatch) error
	Create(ctx context.Context, tx pgx.Tx, d *domain.Disbursement) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Disbursement, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Disbursement, error)
	Update(ctx context.Context, tx pgx.Tx, d *domain.Disbursement) error
	GetBatch(ctx context.Context, id uuid.UUID) (*domain.DisbursementBatch, []domain.Disbursement, error)
}

// BeneficiaryRepository resolves payees. Beneficiary CRUD lives outside the
// core; only ownership lookups are needed here.
type BeneficiaryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Beneficiary, error)
}

// PricingRepository reads fee schedule rows maintained by the admin surface.
// Both lookups return nil (no error) when no active row matches.
type PricingRepository interface {
	GetMerchantPricing(ctx context.Context, merchantID uuid.UUID, gateway, method, currency string) (*domain.PricingConfig, error)
	GetDefaultPricing(ctx context.Context, gateway, method, currency string, tier domain.PricingTier) (*domain.PricingConfig, error)
}

// FeeObservation is one fee-bearing transaction used for reporting and
// anomaly detection.
type FeeObservation struct {
	RelatedKind domain.RelatedKind
	RelatedID   uuid.UUID
	Gateway     string
	Method      string
	Currency    string
	Amount      decimal.Decimal
	Fee         decimal.Decimal
	OccurredAt  time.Time
}

// ReportingRepository provides read-only aggregation inputs over top-ups and
// disbursements.
type ReportingRepository interface {
	FeeObservations(ctx context.Context, merchantID uuid.UUID, start, end time.Time) ([]FeeObservation, error)
}

// ConfirmationRepository is the authoritative log of processed gateway
// confirmation references. Written inside the posting transaction so a
// duplicate webhook delivery can never double-apply.
type ConfirmationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, c *domain.GatewayConfirmation) error
	Get(ctx context.Context, key string) (*domain.GatewayConfirmation, error)
}

// DBTransactor provides database transaction management. Begin returns a
// transaction with the ledger lock timeout applied.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
