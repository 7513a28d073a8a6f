package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService with pessimistic
// per-wallet locking. Every balance mutation posts its ledger entries in the
// same database transaction.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	ledgerRepo ports.LedgerRepository
	currencies *domain.CurrencyRegistry
	transactor ports.DBTransactor
	events     ports.EventPublisher
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	ledgerRepo ports.LedgerRepository,
	currencies *domain.CurrencyRegistry,
	transactor ports.DBTransactor,
	events ports.EventPublisher,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		currencies: currencies,
		transactor: transactor,
		events:     events,
		log:        log,
	}
}

// CreateWallet creates a wallet; at most one active wallet per
// (merchant, currency, type).
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, params ports.CreateWalletParams) (*domain.MerchantWallet, error) {
	if !s.currencies.IsActive(params.Currency) {
		return nil, apperror.ErrUnknownCurrency(params.Currency)
	}
	if !domain.ValidWalletType(params.Type) {
		return nil, apperror.Validation("unknown wallet type: " + string(params.Type))
	}
	if params.DailyWithdrawalLimit.IsNegative() || params.MonthlyWithdrawalLimit.IsNegative() {
		return nil, apperror.Validation("withdrawal limits must not be negative")
	}
	if params.AutoSweep && params.SweepTargetWalletID == nil {
		return nil, apperror.Validation("auto_sweep requires a sweep target wallet")
	}

	existing, err := s.walletRepo.FindActive(ctx, params.MerchantID, params.Currency, params.Type)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("check existing wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateWallet(params.Currency, string(params.Type))
	}

	now := time.Now().UTC()
	w := &domain.MerchantWallet{
		ID:                     uuid.New(),
		MerchantID:             params.MerchantID,
		Currency:               params.Currency,
		Type:                   params.Type,
		Status:                 domain.WalletStatusActive,
		AvailableBalance:       decimal.Zero,
		LockedBalance:          decimal.Zero,
		DailyWithdrawalUsed:    decimal.Zero,
		DailyWithdrawalLimit:   params.DailyWithdrawalLimit,
		MonthlyWithdrawalUsed:  decimal.Zero,
		MonthlyWithdrawalLimit: params.MonthlyWithdrawalLimit,
		AutoSweep:              params.AutoSweep,
		SweepThreshold:         params.SweepThreshold,
		SweepTargetWalletID:    params.SweepTargetWalletID,
		Metadata:               params.Metadata,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.walletRepo.Create(ctx, dbTx, w); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.Publish(domain.Event{
		Type:       domain.EventWalletCreated,
		MerchantID: w.MerchantID,
		OccurredAt: now,
		Payload:    w,
	})
	s.log.Info().
		Str("wallet_id", w.ID.String()).
		Str("merchant_id", w.MerchantID.String()).
		Str("currency", w.Currency).
		Str("type", string(w.Type)).
		Msg("wallet created")

	return w, nil
}

// contra account for a generic credit, per funds source.
func creditContra(source domain.CreditSource) (string, domain.RelatedKind) {
	switch source {
	case domain.CreditSourceTopUp:
		return domain.AccountGatewayClearing, domain.RelatedWalletTopUp
	case domain.CreditSourceReversal:
		return domain.AccountPayoutClearing, domain.RelatedDisbursement
	default:
		return domain.AccountMerchantAvailable, domain.RelatedTransfer
	}
}

// Credit increases available balance. Permitted on frozen wallets.
func (s *WalletServiceImpl) Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, source domain.CreditSource, description string) (*domain.MerchantWallet, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount("credit amount must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	applyCredit(w, s.currencies.Round(w.Currency, amount))
	if err := s.walletRepo.UpdateBalances(ctx, dbTx, w); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update balances: %w", err))
	}

	contra, kind := creditContra(source)
	drafts := walletCreditDrafts(w, s.currencies.Round(w.Currency, amount), contra, domain.AccountTypeAssets, description, kind, nil)
	entries, err := domain.BuildTransaction(uuid.New(), time.Now().UTC(), drafts)
	if err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.InsertEntries(ctx, dbTx, entries); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("insert entries: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("wallet_id", w.ID.String()).
		Str("amount", amount.String()).
		Str("source", string(source)).
		Msg("wallet credited")

	return w, nil
}

// Debit decreases available balance, enforcing freeze state, funds and
// withdrawal limits atomically with the ledger posting.
func (s *WalletServiceImpl) Debit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, purpose domain.DebitPurpose, description string) (*domain.MerchantWallet, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount("debit amount must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	rounded := s.currencies.Round(w.Currency, amount)
	if err := checkDebit(w, rounded, purpose); err != nil {
		return nil, err
	}
	applyDebit(w, rounded, purpose)
	if err := s.walletRepo.UpdateBalances(ctx, dbTx, w); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update balances: %w", err))
	}

	contra := domain.AccountPayoutClearing
	kind := domain.RelatedDisbursement
	if !purpose.CountsAgainstLimits() {
		contra = domain.AccountMerchantAvailable
		kind = domain.RelatedTransfer
	}
	drafts := walletDebitDrafts(w, rounded, contra, domain.AccountTypeAssets, description, kind, nil)
	entries, err := domain.BuildTransaction(uuid.New(), time.Now().UTC(), drafts)
	if err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.InsertEntries(ctx, dbTx, entries); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("insert entries: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("wallet_id", w.ID.String()).
		Str("amount", rounded.String()).
		Str("purpose", string(purpose)).
		Msg("wallet debited")

	return w, nil
}

// Freeze blocks debits. Idempotent: freezing a frozen wallet returns current
// state.
func (s *WalletServiceImpl) Freeze(ctx context.Context, walletID uuid.UUID, reason string) (*domain.MerchantWallet, error) {
	if reason == "" {
		return nil, apperror.Validation("freeze reason is required")
	}

	w, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if w.IsFrozen() {
		return w, nil
	}

	if err := s.walletRepo.UpdateStatus(ctx, walletID, domain.WalletStatusFrozen, &reason); err != nil {
		return nil, err
	}
	w.Status = domain.WalletStatusFrozen
	w.FreezeReason = &reason

	s.events.Publish(domain.Event{
		Type:       domain.EventWalletFrozen,
		MerchantID: w.MerchantID,
		OccurredAt: time.Now().UTC(),
		Payload:    w,
	})
	s.log.Warn().
		Str("wallet_id", walletID.String()).
		Str("reason", reason).
		Msg("wallet frozen")

	return w, nil
}

// Unfreeze re-enables debits. Idempotent.
func (s *WalletServiceImpl) Unfreeze(ctx context.Context, walletID uuid.UUID) (*domain.MerchantWallet, error) {
	w, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !w.IsFrozen() {
		return w, nil
	}

	if err := s.walletRepo.UpdateStatus(ctx, walletID, domain.WalletStatusActive, nil); err != nil {
		return nil, err
	}
	w.Status = domain.WalletStatusActive
	w.FreezeReason = nil

	s.events.Publish(domain.Event{
		Type:       domain.EventWalletUnfrozen,
		MerchantID: w.MerchantID,
		OccurredAt: time.Now().UTC(),
		Payload:    w,
	})
	s.log.Info().Str("wallet_id", walletID.String()).Msg("wallet unfrozen")

	return w, nil
}

func (s *WalletServiceImpl) GetBalance(ctx context.Context, walletID uuid.UUID) (*domain.WalletBalance, error) {
	w, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return &domain.WalletBalance{
		AvailableBalance: w.AvailableBalance,
		LockedBalance:    w.LockedBalance,
		Total:            w.TotalBalance(),
	}, nil
}

func (s *WalletServiceImpl) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.MerchantWallet, error) {
	wallets, err := s.walletRepo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list wallets: %w", err))
	}
	return wallets, nil
}

// ResetDailyCounters zeroes daily withdrawal usage; invoked by the external
// scheduler at midnight.
func (s *WalletServiceImpl) ResetDailyCounters(ctx context.Context) (int64, error) {
	n, err := s.walletRepo.ResetDailyCounters(ctx)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("reset daily counters: %w", err))
	}
	s.log.Info().Int64("wallets", n).Msg("daily withdrawal counters reset")
	return n, nil
}

// ResetMonthlyCounters zeroes monthly withdrawal usage.
func (s *WalletServiceImpl) ResetMonthlyCounters(ctx context.Context) (int64, error) {
	n, err := s.walletRepo.ResetMonthlyCounters(ctx)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("reset monthly counters: %w", err))
	}
	s.log.Info().Int64("wallets", n).Msg("monthly withdrawal counters reset")
	return n, nil
}
