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

// TransferServiceImpl implements ports.TransferService. Same-merchant,
// same-currency transfers only; FX conversion is an external engine.
type TransferServiceImpl struct {
	walletRepo ports.WalletRepository
	ledgerRepo ports.LedgerRepository
	currencies *domain.CurrencyRegistry
	transactor ports.DBTransactor
	events     ports.EventPublisher
	log        zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	walletRepo ports.WalletRepository,
	ledgerRepo ports.LedgerRepository,
	currencies *domain.CurrencyRegistry,
	transactor ports.DBTransactor,
	events ports.EventPublisher,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		currencies: currencies,
		transactor: transactor,
		events:     events,
		log:        log,
	}
}

// TransferBetweenWallets moves funds between two wallets of one merchant in
// a single atomic unit. Wallet row locks are taken in ascending id order so
// opposite-direction transfers on the same pair cannot deadlock.
func (s *TransferServiceImpl) TransferBetweenWallets(ctx context.Context, fromWalletID, toWalletID uuid.UUID, amount decimal.Decimal, description string) (*ports.TransferResult, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount("transfer amount must be positive")
	}
	if fromWalletID == toWalletID {
		return nil, apperror.ErrSameWalletTransfer()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Fixed global lock order: ascending wallet id.
	firstID, secondID := fromWalletID, toWalletID
	if secondID.String() < firstID.String() {
		firstID, secondID = secondID, firstID
	}

	first, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, firstID)
	if err != nil {
		return nil, err
	}
	second, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, secondID)
	if err != nil {
		return nil, err
	}

	from, to := first, second
	if firstID != fromWalletID {
		from, to = second, first
	}
	if from == nil {
		return nil, apperror.ErrNotFound("source wallet")
	}
	if to == nil {
		return nil, apperror.ErrNotFound("destination wallet")
	}
	if from.MerchantID != to.MerchantID {
		return nil, apperror.ErrCrossMerchantTransferDenied()
	}
	if from.Currency != to.Currency {
		return nil, apperror.ErrCurrencyMismatch(from.Currency, to.Currency)
	}

	rounded := s.currencies.Round(from.Currency, amount)
	if err := checkDebit(from, rounded, domain.DebitPurposeTransfer); err != nil {
		return nil, err
	}
	applyDebit(from, rounded, domain.DebitPurposeTransfer)
	applyCredit(to, rounded)

	if err := s.walletRepo.UpdateBalances(ctx, dbTx, from); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update source wallet: %w", err))
	}
	if err := s.walletRepo.UpdateBalances(ctx, dbTx, to); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update destination wallet: %w", err))
	}

	now := time.Now().UTC()
	txID := uuid.New()
	drafts := []domain.EntryDraft{
		{
			MerchantID:  from.MerchantID,
			Currency:    from.Currency,
			AccountType: domain.AccountTypeAssets,
			AccountName: domain.WalletAccountName(to.ID),
			EntryType:   domain.EntryTypeDebit,
			Amount:      rounded,
			Description: description,
			RelatedKind: domain.RelatedTransfer,
			RelatedID:   &txID,
		},
		{
			MerchantID:  from.MerchantID,
			Currency:    from.Currency,
			AccountType: domain.AccountTypeAssets,
			AccountName: domain.WalletAccountName(from.ID),
			EntryType:   domain.EntryTypeCredit,
			Amount:      rounded,
			Description: description,
			RelatedKind: domain.RelatedTransfer,
			RelatedID:   &txID,
		},
	}
	entries, err := domain.BuildTransaction(txID, now, drafts)
	if err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.InsertEntries(ctx, dbTx, entries); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("insert entries: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	result := &ports.TransferResult{
		TransactionID: txID,
		FromWalletID:  &from.ID,
		ToWalletID:    to.ID,
		MerchantID:    from.MerchantID,
		Amount:        rounded,
		Currency:      from.Currency,
		CompletedAt:   now,
	}
	s.events.Publish(domain.Event{
		Type:       domain.EventTransferCompleted,
		MerchantID: from.MerchantID,
		OccurredAt: now,
		Payload:    result,
	})
	s.log.Info().
		Str("transaction_id", txID.String()).
		Str("from_wallet", from.ID.String()).
		Str("to_wallet", to.ID.String()).
		Str("amount", rounded.String()).
		Msg("wallet transfer completed")

	return result, nil
}

// TransferFromBalance sweeps settled funds from the merchant's aggregate
// available balance into a wallet.
func (s *TransferServiceImpl) TransferFromBalance(ctx context.Context, merchantID uuid.UUID, currency string, amount decimal.Decimal, targetWalletID uuid.UUID) (*ports.TransferResult, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount("sweep amount must be positive")
	}
	if !s.currencies.IsActive(currency) {
		return nil, apperror.ErrUnknownCurrency(currency)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, targetWalletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("target wallet")
	}
	if wallet.MerchantID != merchantID {
		return nil, apperror.ErrCrossMerchantTransferDenied()
	}
	if wallet.Currency != currency {
		return nil, apperror.ErrCurrencyMismatch(currency, wallet.Currency)
	}

	rounded := s.currencies.Round(currency, amount)

	// Inside the transaction so concurrent sweeps see locked-in state.
	available, err := s.ledgerRepo.AccountNet(ctx, dbTx, merchantID, currency, domain.AccountMerchantAvailable)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("available balance: %w", err))
	}
	if available.LessThan(rounded) {
		return nil, apperror.ErrInsufficientBalance(available.String(), rounded.String())
	}

	applyCredit(wallet, rounded)
	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update wallet: %w", err))
	}

	now := time.Now().UTC()
	txID := uuid.New()
	drafts := walletCreditDrafts(wallet, rounded, domain.AccountMerchantAvailable, domain.AccountTypeAssets,
		"sweep from settled balance", domain.RelatedTransfer, &txID)
	entries, err := domain.BuildTransaction(txID, now, drafts)
	if err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.InsertEntries(ctx, dbTx, entries); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("insert entries: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	result := &ports.TransferResult{
		TransactionID: txID,
		ToWalletID:    wallet.ID,
		MerchantID:    merchantID,
		Amount:        rounded,
		Currency:      currency,
		CompletedAt:   now,
	}
	s.events.Publish(domain.Event{
		Type:       domain.EventTransferCompleted,
		MerchantID: merchantID,
		OccurredAt: now,
		Payload:    result,
	})
	s.log.Info().
		Str("transaction_id", txID.String()).
		Str("wallet_id", wallet.ID.String()).
		Str("amount", rounded.String()).
		Msg("balance sweep completed")

	return result, nil
}

// GetAvailableForSweep returns the merchant's settled balance not yet swept
// into wallets. Pending settlement amounts are excluded by construction:
// they sit in a separate account until matured.
func (s *TransferServiceImpl) GetAvailableForSweep(ctx context.Context, merchantID uuid.UUID, currency string) (decimal.Decimal, error) {
	if !s.currencies.IsActive(currency) {
		return decimal.Zero, apperror.ErrUnknownCurrency(currency)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	available, err := s.ledgerRepo.AccountNet(ctx, dbTx, merchantID, currency, domain.AccountMerchantAvailable)
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("available balance: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return available, nil
}

// RunAutoSweeps moves the excess above each configured wallet's threshold to
// its sweep target. Individual failures are logged and skipped; the count of
// completed sweeps is returned.
func (s *TransferServiceImpl) RunAutoSweeps(ctx context.Context) (int, error) {
	wallets, err := s.walletRepo.ListAutoSweep(ctx)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("list auto-sweep wallets: %w", err))
	}

	swept := 0
	for _, w := range wallets {
		if w.SweepTargetWalletID == nil {
			continue
		}
		excess := w.AvailableBalance.Sub(w.SweepThreshold)
		if !excess.IsPositive() {
			continue
		}
		if _, err := s.TransferBetweenWallets(ctx, w.ID, *w.SweepTargetWalletID, excess, "automatic threshold sweep"); err != nil {
			s.log.Error().Err(err).
				Str("wallet_id", w.ID.String()).
				Msg("auto-sweep failed, continuing")
			continue
		}
		swept++
	}
	return swept, nil
}

// SettlePendingBalances moves matured pending settlement amounts into the
// available balance, per merchant and currency. The cutoff is an explicit
// parameter so runs are reproducible.
func (s *TransferServiceImpl) SettlePendingBalances(ctx context.Context, now time.Time) (int, error) {
	merchants, err := s.ledgerRepo.MerchantsWithPending(ctx, now)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("merchants with pending: %w", err))
	}

	settled := 0
	for _, merchantID := range merchants {
		n, err := s.settleMerchant(ctx, merchantID, now)
		if err != nil {
			s.log.Error().Err(err).
				Str("merchant_id", merchantID.String()).
				Msg("settlement failed, continuing")
			continue
		}
		settled += n
	}
	return settled, nil
}

func (s *TransferServiceImpl) settleMerchant(ctx context.Context, merchantID uuid.UUID, now time.Time) (int, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	pending, err := s.ledgerRepo.PendingSettlements(ctx, dbTx, merchantID, now)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("pending settlements: %w", err))
	}

	settled := 0
	for currency, amount := range pending {
		txID := uuid.New()
		drafts := []domain.EntryDraft{
			{
				MerchantID:  merchantID,
				Currency:    currency,
				AccountType: domain.AccountTypeAssets,
				AccountName: domain.AccountMerchantAvailable,
				EntryType:   domain.EntryTypeDebit,
				Amount:      amount,
				Description: "pending settlement matured",
				RelatedKind: domain.RelatedPayment,
			},
			{
				MerchantID:  merchantID,
				Currency:    currency,
				AccountType: domain.AccountTypeAssets,
				AccountName: domain.AccountPendingSettlement,
				EntryType:   domain.EntryTypeCredit,
				Amount:      amount,
				Description: "pending settlement matured",
				RelatedKind: domain.RelatedPayment,
			},
		}
		entries, err := domain.BuildTransaction(txID, now, drafts)
		if err != nil {
			return 0, err
		}
		if err := s.ledgerRepo.InsertEntries(ctx, dbTx, entries); err != nil {
			return 0, apperror.ErrDatabaseError(fmt.Errorf("insert entries: %w", err))
		}
		settled++
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return settled, nil
}
