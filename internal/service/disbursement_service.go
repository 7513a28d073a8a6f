package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wachira141/payment-gateway-sub003/config"
	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DisbursementServiceImpl implements ports.DisbursementService. Creation
// takes a gross hold (amount + fee) from the wallet; the hold sits in the
// payout clearing account until the gateway confirms, and is credited back
// on failure or cancellation.
type DisbursementServiceImpl struct {
	disbRepo        ports.DisbursementRepository
	walletRepo      ports.WalletRepository
	ledgerRepo      ports.LedgerRepository
	beneficiaryRepo ports.BeneficiaryRepository
	confirmRepo     ports.ConfirmationRepository
	cache           ports.ConfirmationCache
	feeSvc          ports.FeeService
	currencies      *domain.CurrencyRegistry
	transactor      ports.DBTransactor
	events          ports.EventPublisher
	cfg             config.LedgerConfig
	log             zerolog.Logger
}

// NewDisbursementService creates a new DisbursementServiceImpl.
func NewDisbursementService(
	disbRepo ports.DisbursementRepository,
	walletRepo ports.WalletRepository,
	ledgerRepo ports.LedgerRepository,
	beneficiaryRepo ports.BeneficiaryRepository,
	confirmRepo ports.ConfirmationRepository,
	cache ports.ConfirmationCache,
	feeSvc ports.FeeService,
	currencies *domain.CurrencyRegistry,
	transactor ports.DBTransactor,
	events ports.EventPublisher,
	cfg config.LedgerConfig,
	log zerolog.Logger,
) *DisbursementServiceImpl {
	return &DisbursementServiceImpl{
		disbRepo:        disbRepo,
		walletRepo:      walletRepo,
		ledgerRepo:      ledgerRepo,
		beneficiaryRepo: beneficiaryRepo,
		confirmRepo:     confirmRepo,
		cache:           cache,
		feeSvc:          feeSvc,
		currencies:      currencies,
		transactor:      transactor,
		events:          events,
		cfg:             cfg,
		log:             log,
	}
}

func (s *DisbursementServiceImpl) resolveBeneficiary(ctx context.Context, merchantID, beneficiaryID uuid.UUID) (*domain.Beneficiary, error) {
	b, err := s.beneficiaryRepo.GetByID(ctx, beneficiaryID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get beneficiary: %w", err))
	}
	if b == nil || b.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("beneficiary")
	}
	if !b.Active {
		return nil, apperror.Validation("beneficiary is inactive")
	}
	return b, nil
}

// buildDisbursement computes the fee split and returns the pending record.
// It does not touch storage.
func (s *DisbursementServiceImpl) buildDisbursement(ctx context.Context, wallet *domain.MerchantWallet, beneficiaryID uuid.UUID, amount decimal.Decimal, payoutMethod, gateway, reference string, batchID *uuid.UUID, now time.Time) (*domain.Disbursement, error) {
	amount = s.currencies.Round(wallet.Currency, amount)
	breakdown, err := s.feeSvc.Calculate(ctx, wallet.MerchantID, gateway, payoutMethod, wallet.Currency, amount)
	if err != nil {
		return nil, err
	}

	return &domain.Disbursement{
		ID:            uuid.New(),
		BatchID:       batchID,
		WalletID:      wallet.ID,
		MerchantID:    wallet.MerchantID,
		BeneficiaryID: beneficiaryID,
		Amount:        amount,
		FeeAmount:     breakdown.TotalFee,
		NetAmount:     amount,
		Currency:      wallet.Currency,
		Status:        domain.DisbursementStatusPending,
		PayoutMethod:  payoutMethod,
		Gateway:       gateway,
		Reference:     reference,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// holdDrafts builds the three-leg hold entry set: the wallet gives up the
// gross amount, the payout principal parks in clearing, the fee is expensed.
func holdDrafts(d *domain.Disbursement) []domain.EntryDraft {
	drafts := []domain.EntryDraft{
		{
			MerchantID:  d.MerchantID,
			Currency:    d.Currency,
			AccountType: domain.AccountTypeAssets,
			AccountName: domain.WalletAccountName(d.WalletID),
			EntryType:   domain.EntryTypeCredit,
			Amount:      d.GrossAmount(),
			Description: "disbursement hold " + d.Reference,
			RelatedKind: domain.RelatedDisbursement,
			RelatedID:   &d.ID,
		},
		{
			MerchantID:  d.MerchantID,
			Currency:    d.Currency,
			AccountType: domain.AccountTypeAssets,
			AccountName: domain.AccountPayoutClearing,
			EntryType:   domain.EntryTypeDebit,
			Amount:      d.Amount,
			Description: "disbursement hold " + d.Reference,
			RelatedKind: domain.RelatedDisbursement,
			RelatedID:   &d.ID,
		},
	}
	if d.FeeAmount.IsPositive() {
		drafts = append(drafts, domain.EntryDraft{
			MerchantID:  d.MerchantID,
			Currency:    d.Currency,
			AccountType: domain.AccountTypeFees,
			AccountName: domain.AccountDisbursementFees,
			EntryType:   domain.EntryTypeDebit,
			Amount:      d.FeeAmount,
			Description: "disbursement fee " + d.Reference,
			RelatedKind: domain.RelatedDisbursement,
			RelatedID:   &d.ID,
		})
	}
	return drafts
}

// releaseDrafts reverses the hold: the wallet gets the gross amount back and
// the clearing and fee legs are cleared.
func releaseDrafts(d *domain.Disbursement, reason string) []domain.EntryDraft {
	drafts := []domain.EntryDraft{
		{
			MerchantID:  d.MerchantID,
			Currency:    d.Currency,
			AccountType: domain.AccountTypeAssets,
			AccountName: domain.WalletAccountName(d.WalletID),
			EntryType:   domain.EntryTypeDebit,
			Amount:      d.GrossAmount(),
			Description: "disbursement " + reason + " " + d.Reference,
			RelatedKind: domain.RelatedDisbursement,
			RelatedID:   &d.ID,
		},
		{
			MerchantID:  d.MerchantID,
			Currency:    d.Currency,
			AccountType: domain.AccountTypeAssets,
			AccountName: domain.AccountPayoutClearing,
			EntryType:   domain.EntryTypeCredit,
			Amount:      d.Amount,
			Description: "disbursement " + reason + " " + d.Reference,
			RelatedKind: domain.RelatedDisbursement,
			RelatedID:   &d.ID,
		},
	}
	if d.FeeAmount.IsPositive() {
		drafts = append(drafts, domain.EntryDraft{
			MerchantID:  d.MerchantID,
			Currency:    d.Currency,
			AccountType: domain.AccountTypeFees,
			AccountName: domain.AccountDisbursementFees,
			EntryType:   domain.EntryTypeCredit,
			Amount:      d.FeeAmount,
			Description: "disbursement fee reversal " + d.Reference,
			RelatedKind: domain.RelatedDisbursement,
			RelatedID:   &d.ID,
		})
	}
	return drafts
}

// takeHold moves the gross amount from the wallet's available balance into
// its locked balance and posts the hold entries inside the caller's
// transaction. The wallet row must already be locked.
func (s *DisbursementServiceImpl) takeHold(ctx context.Context, dbTx pgx.Tx, wallet *domain.MerchantWallet, d *domain.Disbursement, now time.Time) error {
	gross := d.GrossAmount()
	if err := checkDebit(wallet, gross, domain.DebitPurposeDisbursement); err != nil {
		return err
	}
	lockFunds(wallet, gross, domain.DebitPurposeDisbursement)
	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update wallet: %w", err))
	}

	entries, err := domain.BuildTransaction(uuid.New(), now, holdDrafts(d))
	if err != nil {
		return err
	}
	if err := s.ledgerRepo.InsertEntries(ctx, dbTx, entries); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("insert entries: %w", err))
	}
	return nil
}

// releaseHold moves the held gross amount back into the wallet's available
// balance inside the caller's transaction. The wallet row must already be
// locked.
func (s *DisbursementServiceImpl) releaseHold(ctx context.Context, dbTx pgx.Tx, wallet *domain.MerchantWallet, d *domain.Disbursement, reason string, now time.Time) error {
	unlockFunds(wallet, d.GrossAmount())
	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update wallet: %w", err))
	}

	entries, err := domain.BuildTransaction(uuid.New(), now, releaseDrafts(d, reason))
	if err != nil {
		return err
	}
	if err := s.ledgerRepo.InsertEntries(ctx, dbTx, entries); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("insert entries: %w", err))
	}
	return nil
}

// Create opens a single payout, holding amount + fee from the wallet in one
// transaction with the pending record.
func (s *DisbursementServiceImpl) Create(ctx context.Context, params ports.CreateDisbursementParams) (*domain.Disbursement, error) {
	if !params.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount("disbursement amount must be positive")
	}
	if _, err := s.resolveBeneficiary(ctx, params.MerchantID, params.BeneficiaryID); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, params.WalletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if wallet.MerchantID != params.MerchantID {
		return nil, apperror.ErrNotFound("wallet")
	}

	now := time.Now().UTC()
	d, err := s.buildDisbursement(ctx, wallet, params.BeneficiaryID, params.Amount, params.PayoutMethod, params.Gateway, params.Reference, nil, now)
	if err != nil {
		return nil, err
	}

	if err := s.takeHold(ctx, dbTx, wallet, d, now); err != nil {
		return nil, err
	}
	if err := s.disbRepo.Create(ctx, dbTx, d); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create disbursement: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.Publish(domain.Event{
		Type:       domain.EventDisbursementCreated,
		MerchantID: d.MerchantID,
		OccurredAt: now,
		Payload:    d,
	})
	s.log.Info().
		Str("disbursement_id", d.ID.String()).
		Str("wallet_id", d.WalletID.String()).
		Str("amount", d.Amount.String()).
		Str("fee", d.FeeAmount.String()).
		Msg("disbursement created")

	return d, nil
}

// MarkProcessing records that the payout was handed to the gateway. The hold
// is already in place, so only the status moves. Calling it again while
// processing is a no-op.
func (s *DisbursementServiceImpl) MarkProcessing(ctx context.Context, id uuid.UUID) (*domain.Disbursement, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	d, err := s.disbRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperror.ErrNotFound("disbursement")
	}
	if d.Status == domain.DisbursementStatusProcessing {
		return d, nil
	}
	if !d.CanMarkProcessing() {
		return nil, apperror.ErrInvalidStateTransition("disbursement", string(d.Status), string(domain.DisbursementStatusProcessing))
	}

	now := time.Now().UTC()
	d.Status = domain.DisbursementStatusProcessing
	d.ProcessedAt = &now
	d.UpdatedAt = now
	if err := s.disbRepo.Update(ctx, dbTx, d); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update disbursement: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.Publish(domain.Event{
		Type:       domain.EventDisbursementProcessing,
		MerchantID: d.MerchantID,
		OccurredAt: now,
		Payload:    d,
	})
	s.log.Info().
		Str("disbursement_id", d.ID.String()).
		Msg("disbursement submitted to gateway")

	return d, nil
}

// CreateBatch creates all lines or none. Every beneficiary is validated and
// every hold is taken inside one transaction, so one bad line aborts the
// whole batch.
func (s *DisbursementServiceImpl) CreateBatch(ctx context.Context, params ports.CreateBatchParams) (*domain.DisbursementBatch, []domain.Disbursement, error) {
	if len(params.Lines) == 0 {
		return nil, nil, apperror.Validation("batch has no lines")
	}
	if len(params.Lines) > s.cfg.DisbursementBatchMax {
		return nil, nil, apperror.Validation(fmt.Sprintf("batch exceeds %d lines", s.cfg.DisbursementBatchMax))
	}
	for i, line := range params.Lines {
		if !line.Amount.IsPositive() {
			return nil, nil, apperror.ErrInvalidAmount(fmt.Sprintf("line %d: amount must be positive", i))
		}
		if _, err := s.resolveBeneficiary(ctx, params.MerchantID, line.BeneficiaryID); err != nil {
			return nil, nil, apperror.Wrap("LED_002", fmt.Sprintf("Batch line %d: invalid beneficiary", i), http.StatusUnprocessableEntity, err)
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, params.WalletID)
	if err != nil {
		return nil, nil, err
	}
	if wallet == nil || wallet.MerchantID != params.MerchantID {
		return nil, nil, apperror.ErrNotFound("wallet")
	}

	now := time.Now().UTC()
	batch := &domain.DisbursementBatch{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		MerchantID:  wallet.MerchantID,
		Name:        params.Name,
		Status:      domain.BatchStatusPending,
		TotalAmount: decimal.Zero,
		Currency:    wallet.Currency,
		CreatedAt:   now,
	}

	lines := make([]domain.Disbursement, 0, len(params.Lines))
	for _, line := range params.Lines {
		d, err := s.buildDisbursement(ctx, wallet, line.BeneficiaryID, line.Amount, params.PayoutMethod, params.Gateway, line.Reference, &batch.ID, now)
		if err != nil {
			return nil, nil, err
		}
		if err := s.takeHold(ctx, dbTx, wallet, d, now); err != nil {
			return nil, nil, err
		}
		batch.TotalAmount = batch.TotalAmount.Add(d.GrossAmount())
		lines = append(lines, *d)
	}

	if err := s.disbRepo.CreateBatch(ctx, dbTx, batch); err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("create batch: %w", err))
	}
	for i := range lines {
		if err := s.disbRepo.Create(ctx, dbTx, &lines[i]); err != nil {
			return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("create batch line: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	for i := range lines {
		s.events.Publish(domain.Event{
			Type:       domain.EventDisbursementCreated,
			MerchantID: batch.MerchantID,
			OccurredAt: now,
			Payload:    &lines[i],
		})
	}
	s.log.Info().
		Str("batch_id", batch.ID.String()).
		Int("lines", len(lines)).
		Str("total", batch.TotalAmount.String()).
		Msg("disbursement batch created")

	return batch, lines, nil
}

// Cancel releases the hold back to the wallet. Allowed while pending or
// processing; a processing cancel races the gateway, and the confirmation
// log guarantees only one of the two outcomes applies.
func (s *DisbursementServiceImpl) Cancel(ctx context.Context, id uuid.UUID, reason string) (*domain.Disbursement, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	d, err := s.disbRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperror.ErrNotFound("disbursement")
	}
	if !d.CanCancel() {
		return nil, apperror.ErrInvalidStateTransition("disbursement", string(d.Status), string(domain.DisbursementStatusCancelled))
	}

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, d.WalletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	now := time.Now().UTC()
	if err := s.releaseHold(ctx, dbTx, wallet, d, "cancelled", now); err != nil {
		return nil, err
	}

	d.Status = domain.DisbursementStatusCancelled
	d.FailureReason = &reason
	d.UpdatedAt = now
	if err := s.disbRepo.Update(ctx, dbTx, d); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update disbursement: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.events.Publish(domain.Event{
		Type:       domain.EventDisbursementCancelled,
		MerchantID: d.MerchantID,
		OccurredAt: now,
		Payload:    d,
	})
	s.log.Info().
		Str("disbursement_id", d.ID.String()).
		Str("reason", reason).
		Msg("disbursement cancelled")

	return d, nil
}

// Retry resubmits a failed disbursement to the gateway. The hold was
// credited back on failure, so the retry takes a fresh hold and the record
// re-enters processing. Attempts are bounded.
func (s *DisbursementServiceImpl) Retry(ctx context.Context, id uuid.UUID) (*domain.Disbursement, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	d, err := s.disbRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperror.ErrNotFound("disbursement")
	}
	if !d.CanRetry() {
		return nil, apperror.ErrInvalidStateTransition("disbursement", string(d.Status), string(domain.DisbursementStatusProcessing))
	}
	if d.RetryCount >= s.cfg.DisbursementMaxRetries {
		return nil, apperror.ErrMaxRetriesExceeded(d.RetryCount)
	}

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, d.WalletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	now := time.Now().UTC()
	if err := s.takeHold(ctx, dbTx, wallet, d, now); err != nil {
		return nil, err
	}

	d.Status = domain.DisbursementStatusProcessing
	d.RetryCount++
	d.FailureReason = nil
	d.FailedAt = nil
	d.ProcessedAt = &now
	d.UpdatedAt = now
	if err := s.disbRepo.Update(ctx, dbTx, d); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update disbursement: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("disbursement_id", d.ID.String()).
		Int("retry_count", d.RetryCount).
		Msg("disbursement retried")

	return d, nil
}

// HandleGatewayResult applies an asynchronous success or failure from the
// payout gateway. Replays with the same gateway reference return the stored
// outcome without reapplying it.
func (s *DisbursementServiceImpl) HandleGatewayResult(ctx context.Context, id uuid.UUID, gatewayRef string, success bool, gatewayResponse *string) (*domain.Disbursement, error) {
	if gatewayRef == "" {
		return nil, apperror.Validation("gateway reference is required")
	}
	confirmKey := domain.DisbursementConfirmationKey(gatewayRef)

	cached, err := s.cache.Get(ctx, confirmKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", confirmKey).Msg("redis confirmation check failed, falling through to DB")
	}
	if cached != nil {
		return unmarshalCachedDisbursement(cached)
	}

	confirm, err := s.confirmRepo.Get(ctx, confirmKey)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("db confirmation check: %w", err))
	}
	if confirm != nil {
		return unmarshalCachedDisbursement(confirm.ResponseJSON)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	d, err := s.disbRepo.GetByIDForUpdate(ctx, dbTx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperror.ErrNotFound("disbursement")
	}
	if d.Status.IsTerminal() {
		// A confirmation row inside the lock means this exact reference was
		// already applied and the pre-tx caches just raced us. Anything else
		// is a second gateway reference for a settled payout.
		confirm, err := s.confirmRepo.Get(ctx, confirmKey)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("db confirmation check: %w", err))
		}
		if confirm != nil && confirm.RelatedID == d.ID {
			return unmarshalCachedDisbursement(confirm.ResponseJSON)
		}
		return nil, apperror.ErrInvalidStateTransition("disbursement", string(d.Status), "completed")
	}
	if d.Status != domain.DisbursementStatusProcessing {
		return nil, apperror.ErrInvalidStateTransition("disbursement", string(d.Status), "completed")
	}

	now := time.Now().UTC()
	eventType := domain.EventDisbursementCompleted

	if success {
		wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, d.WalletID)
		if err != nil {
			return nil, err
		}
		if wallet == nil {
			return nil, apperror.ErrNotFound("wallet")
		}
		settleHold(wallet, d.GrossAmount())
		if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("update wallet: %w", err))
		}

		// Principal moves from the clearing hold to the payout gateway. The
		// fee leg stays expensed.
		drafts := []domain.EntryDraft{
			{
				MerchantID:  d.MerchantID,
				Currency:    d.Currency,
				AccountType: domain.AccountTypeAssets,
				AccountName: domain.AccountGatewayPayouts,
				EntryType:   domain.EntryTypeDebit,
				Amount:      d.Amount,
				Description: "disbursement settled " + d.Reference,
				RelatedKind: domain.RelatedDisbursement,
				RelatedID:   &d.ID,
			},
			{
				MerchantID:  d.MerchantID,
				Currency:    d.Currency,
				AccountType: domain.AccountTypeAssets,
				AccountName: domain.AccountPayoutClearing,
				EntryType:   domain.EntryTypeCredit,
				Amount:      d.Amount,
				Description: "disbursement settled " + d.Reference,
				RelatedKind: domain.RelatedDisbursement,
				RelatedID:   &d.ID,
			},
		}
		entries, err := domain.BuildTransaction(uuid.New(), now, drafts)
		if err != nil {
			return nil, err
		}
		if err := s.ledgerRepo.InsertEntries(ctx, dbTx, entries); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("insert entries: %w", err))
		}

		d.Status = domain.DisbursementStatusCompleted
		d.CompletedAt = &now
		if d.ProcessedAt == nil {
			d.ProcessedAt = &now
		}
	} else {
		wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, d.WalletID)
		if err != nil {
			return nil, err
		}
		if wallet == nil {
			return nil, apperror.ErrNotFound("wallet")
		}
		if err := s.releaseHold(ctx, dbTx, wallet, d, "failed", now); err != nil {
			return nil, err
		}

		d.Status = domain.DisbursementStatusFailed
		d.FailedAt = &now
		reason := "gateway rejected payout"
		if gatewayResponse != nil {
			reason = *gatewayResponse
		}
		d.FailureReason = &reason
		eventType = domain.EventDisbursementFailed
	}

	d.GatewayResponse = gatewayResponse
	d.UpdatedAt = now
	if err := s.disbRepo.Update(ctx, dbTx, d); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update disbursement: %w", err))
	}

	respJSON, err := json.Marshal(d)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
	}
	if err := s.confirmRepo.Create(ctx, dbTx, &domain.GatewayConfirmation{
		Key:          confirmKey,
		RelatedKind:  domain.RelatedDisbursement,
		RelatedID:    d.ID,
		ResponseJSON: respJSON,
		CreatedAt:    now,
	}); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.cache.Set(ctx, confirmKey, respJSON, s.cfg.ConfirmationCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", confirmKey).Msg("failed to cache confirmation in redis")
	}

	s.events.Publish(domain.Event{
		Type:       eventType,
		MerchantID: d.MerchantID,
		OccurredAt: now,
		Payload:    d,
	})
	s.log.Info().
		Str("disbursement_id", d.ID.String()).
		Str("gateway_ref", gatewayRef).
		Bool("success", success).
		Msg("disbursement gateway result applied")

	return d, nil
}

func unmarshalCachedDisbursement(data []byte) (*domain.Disbursement, error) {
	d := &domain.Disbursement{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached disbursement: %w", err))
	}
	return d, nil
}
