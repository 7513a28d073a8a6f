package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wachira141/payment-gateway-sub003/config"
	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const expireBatchSize = 500

// TopUpServiceImpl implements ports.TopUpService: the wallet funding state
// machine. Completion is idempotent by gateway reference, checked against a
// Redis fast path and an authoritative confirmation log written in the same
// transaction as the wallet credit.
type TopUpServiceImpl struct {
	topUpRepo   ports.TopUpRepository
	walletRepo  ports.WalletRepository
	ledgerRepo  ports.LedgerRepository
	confirmRepo ports.ConfirmationRepository
	cache       ports.ConfirmationCache
	feeSvc      ports.FeeService
	currencies  *domain.CurrencyRegistry
	transactor  ports.DBTransactor
	events      ports.EventPublisher
	cfg         config.LedgerConfig
	log         zerolog.Logger
}

// NewTopUpService creates a new TopUpServiceImpl.
func NewTopUpService(
	topUpRepo ports.TopUpRepository,
	walletRepo ports.WalletRepository,
	ledgerRepo ports.LedgerRepository,
	confirmRepo ports.ConfirmationRepository,
	cache ports.ConfirmationCache,
	feeSvc ports.FeeService,
	currencies *domain.CurrencyRegistry,
	transactor ports.DBTransactor,
	events ports.EventPublisher,
	cfg config.LedgerConfig,
	log zerolog.Logger,
) *TopUpServiceImpl {
	return &TopUpServiceImpl{
		topUpRepo:   topUpRepo,
		walletRepo:  walletRepo,
		ledgerRepo:  ledgerRepo,
		confirmRepo: confirmRepo,
		cache:       cache,
		feeSvc:      feeSvc,
		currencies:  currencies,
		transactor:  transactor,
		events:      events,
		cfg:         cfg,
		log:         log,
	}
}

func defaultGateway(method domain.TopUpMethod) string {
	switch method {
	case domain.TopUpMethodMobileMoney:
		return "mpesa"
	case domain.TopUpMethodCard:
		return "stripe"
	case domain.TopUpMethodBankTransfer:
		return "bank"
	default:
		return "internal"
	}
}

func (s *TopUpServiceImpl) methodTTL(method domain.TopUpMethod) time.Duration {
	switch method {
	case domain.TopUpMethodBankTransfer:
		return s.cfg.TopUpBankTransferTTL
	case domain.TopUpMethodMobileMoney:
		return s.cfg.TopUpMobileMoneyTTL
	default:
		return s.cfg.TopUpCardTTL
	}
}

func paymentInstructions(method domain.TopUpMethod, bankRef string) string {
	switch method {
	case domain.TopUpMethodBankTransfer:
		return "Transfer the exact amount to the settlement account quoting reference " + bankRef
	case domain.TopUpMethodMobileMoney:
		return "Authorize the payment prompt on your registered mobile number, reference " + bankRef
	case domain.TopUpMethodCard:
		return "Complete the card payment using reference " + bankRef
	default:
		return ""
	}
}

// Initiate creates a pending funding request with the fee split and the
// method-dependent expiry already fixed.
func (s *TopUpServiceImpl) Initiate(ctx context.Context, params ports.InitiateTopUpParams) (*domain.WalletTopUp, error) {
	if !params.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount("topup amount must be positive")
	}
	if !domain.ValidTopUpMethod(params.Method) {
		return nil, apperror.Validation("unknown topup method: " + string(params.Method))
	}

	wallet, err := s.walletRepo.GetByID(ctx, params.WalletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	gateway := params.Gateway
	if gateway == "" {
		gateway = defaultGateway(params.Method)
	}

	amount := s.currencies.Round(wallet.Currency, params.Amount)
	fee := decimal.Zero
	if params.Method != domain.TopUpMethodBalanceSweep {
		breakdown, err := s.feeSvc.Calculate(ctx, wallet.MerchantID, gateway, string(params.Method), wallet.Currency, amount)
		if err != nil {
			return nil, err
		}
		fee = breakdown.TotalFee
	}

	now := time.Now().UTC()
	id := uuid.New()
	bankRef := "TOPUP-" + strings.ToUpper(id.String()[:8])
	t := &domain.WalletTopUp{
		ID:                  id,
		WalletID:            wallet.ID,
		MerchantID:          wallet.MerchantID,
		Amount:              amount,
		Fee:                 fee,
		NetAmount:           amount.Sub(fee),
		Currency:            wallet.Currency,
		Method:              params.Method,
		Gateway:             gateway,
		Status:              domain.TopUpStatusPending,
		PaymentInstructions: paymentInstructions(params.Method, bankRef),
		BankReference:       bankRef,
		ExpiresAt:           now.Add(s.methodTTL(params.Method)),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.topUpRepo.Create(ctx, t); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create topup: %w", err))
	}

	s.events.Publish(domain.Event{
		Type:       domain.EventTopUpInitiated,
		MerchantID: t.MerchantID,
		OccurredAt: now,
		Payload:    t,
	})
	s.log.Info().
		Str("topup_id", t.ID.String()).
		Str("wallet_id", t.WalletID.String()).
		Str("amount", t.Amount.String()).
		Str("method", string(t.Method)).
		Msg("topup initiated")

	return t, nil
}

// Complete credits the wallet by the net amount, atomically with the status
// flip and the confirmation log. Replays with the same gateway reference
// return the completed record without a second credit.
func (s *TopUpServiceImpl) Complete(ctx context.Context, topUpID uuid.UUID, gatewayRef string) (*domain.WalletTopUp, error) {
	if gatewayRef == "" {
		return nil, apperror.Validation("gateway reference is required")
	}
	confirmKey := domain.TopUpConfirmationKey(gatewayRef)

	// Layer 1: Redis fast path.
	cached, err := s.cache.Get(ctx, confirmKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", confirmKey).Msg("redis confirmation check failed, falling through to DB")
	}
	if cached != nil {
		return unmarshalCachedTopUp(cached)
	}

	// Layer 2: authoritative confirmation log.
	confirm, err := s.confirmRepo.Get(ctx, confirmKey)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("db confirmation check: %w", err))
	}
	if confirm != nil {
		return unmarshalCachedTopUp(confirm.ResponseJSON)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	t, err := s.topUpRepo.GetByIDForUpdate(ctx, dbTx, topUpID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.ErrNotFound("topup")
	}
	if t.Status == domain.TopUpStatusCompleted {
		// Replay-safe only for the reference that completed it. A second
		// confirmation id for a settled top-up is a conflict.
		if t.GatewayReference != nil && *t.GatewayReference == gatewayRef {
			return t, nil
		}
		return nil, apperror.ErrInvalidStateTransition("topup", string(t.Status), string(domain.TopUpStatusCompleted))
	}
	if !t.CanComplete() {
		return nil, apperror.ErrInvalidStateTransition("topup", string(t.Status), string(domain.TopUpStatusCompleted))
	}

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, t.WalletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	// Credit the net amount; the fee leg goes to the expense account.
	applyCredit(wallet, t.NetAmount)
	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update wallet: %w", err))
	}

	now := time.Now().UTC()
	txID := uuid.New()
	drafts := []domain.EntryDraft{
		{
			MerchantID:  wallet.MerchantID,
			Currency:    wallet.Currency,
			AccountType: domain.AccountTypeAssets,
			AccountName: domain.WalletAccountName(wallet.ID),
			EntryType:   domain.EntryTypeDebit,
			Amount:      t.NetAmount,
			Description: "topup " + t.BankReference,
			RelatedKind: domain.RelatedWalletTopUp,
			RelatedID:   &t.ID,
		},
		{
			MerchantID:  wallet.MerchantID,
			Currency:    wallet.Currency,
			AccountType: domain.AccountTypeAssets,
			AccountName: domain.AccountGatewayClearing,
			EntryType:   domain.EntryTypeCredit,
			Amount:      t.Amount,
			Description: "topup " + t.BankReference,
			RelatedKind: domain.RelatedWalletTopUp,
			RelatedID:   &t.ID,
		},
	}
	if t.Fee.IsPositive() {
		drafts = append(drafts, domain.EntryDraft{
			MerchantID:  wallet.MerchantID,
			Currency:    wallet.Currency,
			AccountType: domain.AccountTypeFees,
			AccountName: domain.AccountProcessingFees,
			EntryType:   domain.EntryTypeDebit,
			Amount:      t.Fee,
			Description: "topup fee " + t.BankReference,
			RelatedKind: domain.RelatedWalletTopUp,
			RelatedID:   &t.ID,
		})
	}
	entries, err := domain.BuildTransaction(txID, now, drafts)
	if err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.InsertEntries(ctx, dbTx, entries); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("insert entries: %w", err))
	}

	if err := s.topUpRepo.MarkCompleted(ctx, dbTx, t.ID, gatewayRef, now); err != nil {
		return nil, err
	}
	t.Status = domain.TopUpStatusCompleted
	t.GatewayReference = &gatewayRef
	t.CompletedAt = &now
	t.UpdatedAt = now

	respJSON, err := json.Marshal(t)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
	}
	if err := s.confirmRepo.Create(ctx, dbTx, &domain.GatewayConfirmation{
		Key:          confirmKey,
		RelatedKind:  domain.RelatedWalletTopUp,
		RelatedID:    t.ID,
		ResponseJSON: respJSON,
		CreatedAt:    now,
	}); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Best-effort cache write.
	if err := s.cache.Set(ctx, confirmKey, respJSON, s.cfg.ConfirmationCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", confirmKey).Msg("failed to cache confirmation in redis")
	}

	s.events.Publish(domain.Event{
		Type:       domain.EventTopUpCompleted,
		MerchantID: t.MerchantID,
		OccurredAt: now,
		Payload:    t,
	})
	s.log.Info().
		Str("topup_id", t.ID.String()).
		Str("gateway_ref", gatewayRef).
		Str("net_amount", t.NetAmount.String()).
		Msg("topup completed")

	return t, nil
}

// MarkProcessing records that the gateway accepted the funding request.
// Calling it again while processing is a no-op.
func (s *TopUpServiceImpl) MarkProcessing(ctx context.Context, topUpID uuid.UUID) (*domain.WalletTopUp, error) {
	ok, err := s.topUpRepo.TransitionStatus(ctx, topUpID,
		[]domain.TopUpStatus{domain.TopUpStatusPending},
		domain.TopUpStatusProcessing, nil)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("mark topup processing: %w", err))
	}

	t, getErr := s.topUpRepo.GetByID(ctx, topUpID)
	if getErr != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get topup: %w", getErr))
	}
	if t == nil {
		return nil, apperror.ErrNotFound("topup")
	}
	if !ok {
		if t.Status == domain.TopUpStatusProcessing {
			return t, nil
		}
		return nil, apperror.ErrInvalidStateTransition("topup", string(t.Status), string(domain.TopUpStatusProcessing))
	}

	s.events.Publish(domain.Event{
		Type:       domain.EventTopUpProcessing,
		MerchantID: t.MerchantID,
		OccurredAt: time.Now().UTC(),
		Payload:    t,
	})
	s.log.Info().Str("topup_id", topUpID.String()).Msg("topup submitted to gateway")

	return t, nil
}

// Fail marks the funding request failed. No wallet mutation: nothing was
// credited yet.
func (s *TopUpServiceImpl) Fail(ctx context.Context, topUpID uuid.UUID, reason string) (*domain.WalletTopUp, error) {
	ok, err := s.topUpRepo.TransitionStatus(ctx, topUpID,
		[]domain.TopUpStatus{domain.TopUpStatusPending, domain.TopUpStatusProcessing},
		domain.TopUpStatusFailed, &reason)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("fail topup: %w", err))
	}

	t, getErr := s.topUpRepo.GetByID(ctx, topUpID)
	if getErr != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get topup: %w", getErr))
	}
	if t == nil {
		return nil, apperror.ErrNotFound("topup")
	}
	if !ok {
		return nil, apperror.ErrInvalidStateTransition("topup", string(t.Status), string(domain.TopUpStatusFailed))
	}

	s.events.Publish(domain.Event{
		Type:       domain.EventTopUpFailed,
		MerchantID: t.MerchantID,
		OccurredAt: time.Now().UTC(),
		Payload:    t,
	})
	s.log.Info().
		Str("topup_id", topUpID.String()).
		Str("reason", reason).
		Msg("topup failed")

	return t, nil
}

// Cancel is allowed only while pending.
func (s *TopUpServiceImpl) Cancel(ctx context.Context, topUpID uuid.UUID) (*domain.WalletTopUp, error) {
	ok, err := s.topUpRepo.TransitionStatus(ctx, topUpID,
		[]domain.TopUpStatus{domain.TopUpStatusPending},
		domain.TopUpStatusCancelled, nil)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("cancel topup: %w", err))
	}

	t, getErr := s.topUpRepo.GetByID(ctx, topUpID)
	if getErr != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get topup: %w", getErr))
	}
	if t == nil {
		return nil, apperror.ErrNotFound("topup")
	}
	if !ok {
		return nil, apperror.ErrInvalidStateTransition("topup", string(t.Status), string(domain.TopUpStatusCancelled))
	}

	s.events.Publish(domain.Event{
		Type:       domain.EventTopUpCancelled,
		MerchantID: t.MerchantID,
		OccurredAt: time.Now().UTC(),
		Payload:    t,
	})
	s.log.Info().Str("topup_id", topUpID.String()).Msg("topup cancelled")

	return t, nil
}

// ExpireStale transitions pending top-ups past their deadline. Each row is
// expired with a conditional update, so concurrent runs produce one winner
// per row and a re-run finds nothing. Individual failures are logged and do
// not stop the sweep.
func (s *TopUpServiceImpl) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	stale, err := s.topUpRepo.ListExpiredPending(ctx, now, expireBatchSize)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("list stale topups: %w", err))
	}

	expired := 0
	for _, t := range stale {
		ok, err := s.topUpRepo.MarkExpired(ctx, t.ID, now)
		if err != nil {
			s.log.Error().Err(err).
				Str("topup_id", t.ID.String()).
				Msg("expire failed, continuing")
			continue
		}
		if !ok {
			// Raced with a concurrent completion or expiry.
			continue
		}
		expired++
		s.events.Publish(domain.Event{
			Type:       domain.EventTopUpExpired,
			MerchantID: t.MerchantID,
			OccurredAt: now,
			Payload:    t,
		})
	}

	if expired > 0 {
		s.log.Info().Int("expired", expired).Msg("stale topups expired")
	}
	return expired, nil
}

func unmarshalCachedTopUp(data []byte) (*domain.WalletTopUp, error) {
	t := &domain.WalletTopUp{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached topup: %w", err))
	}
	return t, nil
}
