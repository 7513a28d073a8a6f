package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/wachira141/payment-gateway-sub003/config"
	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLedgerConfig() config.LedgerConfig {
	return config.LedgerConfig{
		LockTimeout:            3 * time.Second,
		DisbursementMaxRetries: 3,
		DisbursementBatchMax:   100,
		TopUpBankTransferTTL:   72 * time.Hour,
		TopUpMobileMoneyTTL:    15 * time.Minute,
		TopUpCardTTL:           30 * time.Minute,
		ConfirmationCacheTTL:   24 * time.Hour,
		SettlementDelay:        24 * time.Hour,
	}
}

type topUpTestDeps struct {
	svc         *TopUpServiceImpl
	topUpRepo   *mocks.MockTopUpRepository
	walletRepo  *mocks.MockWalletRepository
	ledgerRepo  *mocks.MockLedgerRepository
	confirmRepo *mocks.MockConfirmationRepository
	cache       *mocks.MockConfirmationCache
	feeSvc      *mocks.MockFeeService
	transactor  *mocks.MockDBTransactor
	events      *mocks.MockEventPublisher
	ctrl        *gomock.Controller
}

func setupTopUpService(t *testing.T) *topUpTestDeps {
	ctrl := gomock.NewController(t)
	d := &topUpTestDeps{
		topUpRepo:   mocks.NewMockTopUpRepository(ctrl),
		walletRepo:  mocks.NewMockWalletRepository(ctrl),
		ledgerRepo:  mocks.NewMockLedgerRepository(ctrl),
		confirmRepo: mocks.NewMockConfirmationRepository(ctrl),
		cache:       mocks.NewMockConfirmationCache(ctrl),
		feeSvc:      mocks.NewMockFeeService(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		events:      mocks.NewMockEventPublisher(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewTopUpService(
		d.topUpRepo, d.walletRepo, d.ledgerRepo, d.confirmRepo, d.cache,
		d.feeSvc, domain.DefaultCurrencyRegistry(), d.transactor, d.events,
		testLedgerConfig(), zerolog.Nop(),
	)
	return d
}

func pendingTopUp(wallet *domain.MerchantWallet) *domain.WalletTopUp {
	return &domain.WalletTopUp{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		MerchantID:    wallet.MerchantID,
		Amount:        dec("1000"),
		Fee:           dec("15"),
		NetAmount:     dec("985"),
		Currency:      wallet.Currency,
		Method:        domain.TopUpMethodMobileMoney,
		Gateway:       "mpesa",
		Status:        domain.TopUpStatusPending,
		BankReference: "TOPUP-AB12CD34",
		ExpiresAt:     time.Now().UTC().Add(15 * time.Minute),
	}
}

// ==================== Initiate ====================

func TestTopUpService_Initiate_MobileMoney(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")

	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)
	d.feeSvc.EXPECT().Calculate(ctx, wallet.MerchantID, "mpesa", "mobile_money", "KES", decEq("1000")).
		Return(&domain.FeeBreakdown{
			ProcessingFee: dec("15"),
			TotalFee:      dec("15"),
			NetAmount:     dec("985"),
		}, nil)
	d.topUpRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(gomock.Any())

	before := time.Now().UTC()
	topup, err := d.svc.Initiate(ctx, ports.InitiateTopUpParams{
		WalletID: wallet.ID,
		Amount:   dec("1000"),
		Method:   domain.TopUpMethodMobileMoney,
	})
	require.NoError(t, err)
	require.NotNil(t, topup)
	assert.Equal(t, domain.TopUpStatusPending, topup.Status)
	assert.Equal(t, "mpesa", topup.Gateway, "gateway defaulted per method")
	assert.True(t, topup.Fee.Equal(dec("15")))
	assert.True(t, topup.NetAmount.Equal(dec("985")))
	assert.NotEmpty(t, topup.BankReference)
	assert.NotEmpty(t, topup.PaymentInstructions)
	// 15-minute expiry for mobile money.
	assert.WithinDuration(t, before.Add(15*time.Minute), topup.ExpiresAt, 5*time.Second)
}

func TestTopUpService_Initiate_BankTransferTTL(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")

	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)
	d.feeSvc.EXPECT().Calculate(ctx, wallet.MerchantID, "bank", "bank_transfer", "KES", decEq("5000")).
		Return(&domain.FeeBreakdown{TotalFee: dec("50"), NetAmount: dec("4950")}, nil)
	d.topUpRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(gomock.Any())

	before := time.Now().UTC()
	topup, err := d.svc.Initiate(ctx, ports.InitiateTopUpParams{
		WalletID: wallet.ID,
		Amount:   dec("5000"),
		Method:   domain.TopUpMethodBankTransfer,
	})
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(72*time.Hour), topup.ExpiresAt, 5*time.Second)
}

func TestTopUpService_Initiate_BalanceSweepNoFee(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")

	// No fee lookup for internal sweeps.
	d.walletRepo.EXPECT().GetByID(ctx, wallet.ID).Return(wallet, nil)
	d.topUpRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(gomock.Any())

	topup, err := d.svc.Initiate(ctx, ports.InitiateTopUpParams{
		WalletID: wallet.ID,
		Amount:   dec("1000"),
		Method:   domain.TopUpMethodBalanceSweep,
	})
	require.NoError(t, err)
	assert.True(t, topup.Fee.IsZero())
	assert.True(t, topup.NetAmount.Equal(dec("1000")))
}

func TestTopUpService_Initiate_WalletNotFound(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	d.walletRepo.EXPECT().GetByID(ctx, walletID).Return(nil, nil)

	topup, err := d.svc.Initiate(ctx, ports.InitiateTopUpParams{
		WalletID: walletID,
		Amount:   dec("1000"),
		Method:   domain.TopUpMethodCard,
	})
	assert.Nil(t, topup)
	assertAppError(t, err, "LED_003")
}

// ==================== Complete ====================

func TestTopUpService_Complete_CreditsNetAmount(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "100")
	topup := pendingTopUp(wallet)
	tx := &mockTx{}
	key := domain.TopUpConfirmationKey("MPESA-REF-1")

	d.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.topUpRepo.EXPECT().GetByIDForUpdate(ctx, tx, topup.ID).Return(topup, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, wallet).Return(nil)
	d.ledgerRepo.EXPECT().InsertEntries(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, entries []domain.LedgerEntry) error {
			require.Len(t, entries, 3)
			var debits, credits decimal.Decimal
			for _, e := range entries {
				if e.EntryType == domain.EntryTypeDebit {
					debits = debits.Add(e.Amount)
				} else {
					credits = credits.Add(e.Amount)
				}
			}
			assert.True(t, debits.Equal(credits), "entry set balances")
			assert.Equal(t, domain.WalletAccountName(wallet.ID), entries[0].AccountName)
			assert.True(t, entries[0].Amount.Equal(dec("985")), "wallet leg carries the net")
			assert.Equal(t, domain.AccountGatewayClearing, entries[1].AccountName)
			assert.True(t, entries[1].Amount.Equal(dec("1000")), "clearing leg carries the gross")
			assert.Equal(t, domain.AccountProcessingFees, entries[2].AccountName)
			assert.True(t, entries[2].Amount.Equal(dec("15")))
			return nil
		})
	d.topUpRepo.EXPECT().MarkCompleted(ctx, tx, topup.ID, "MPESA-REF-1", gomock.Any()).Return(nil)
	d.confirmRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(ctx, key, gomock.Any(), 24*time.Hour).Return(nil)
	d.events.EXPECT().Publish(gomock.Any())

	result, err := d.svc.Complete(ctx, topup.ID, "MPESA-REF-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TopUpStatusCompleted, result.Status)
	assert.True(t, wallet.AvailableBalance.Equal(dec("1085")), "100 + 985 net")
	require.NotNil(t, result.GatewayReference)
	assert.Equal(t, "MPESA-REF-1", *result.GatewayReference)
}

func TestTopUpService_Complete_ReplayFromCache(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "100")
	topup := pendingTopUp(wallet)
	topup.Status = domain.TopUpStatusCompleted
	cachedJSON, _ := json.Marshal(topup)
	key := domain.TopUpConfirmationKey("MPESA-REF-2")

	// Cache hit: no transaction, no second credit.
	d.cache.EXPECT().Get(ctx, key).Return(cachedJSON, nil)

	result, err := d.svc.Complete(ctx, topup.ID, "MPESA-REF-2")
	require.NoError(t, err)
	assert.Equal(t, topup.ID, result.ID)
	assert.Equal(t, domain.TopUpStatusCompleted, result.Status)
	assert.True(t, wallet.AvailableBalance.Equal(dec("100")), "wallet untouched on replay")
}

func TestTopUpService_Complete_ReplayFromConfirmationLog(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "100")
	topup := pendingTopUp(wallet)
	topup.Status = domain.TopUpStatusCompleted
	respJSON, _ := json.Marshal(topup)
	key := domain.TopUpConfirmationKey("MPESA-REF-3")

	d.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(&domain.GatewayConfirmation{
		Key:          key,
		RelatedKind:  domain.RelatedWalletTopUp,
		RelatedID:    topup.ID,
		ResponseJSON: respJSON,
	}, nil)

	result, err := d.svc.Complete(ctx, topup.ID, "MPESA-REF-3")
	require.NoError(t, err)
	assert.Equal(t, topup.ID, result.ID)
}

func TestTopUpService_Complete_InvalidState(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "100")
	topup := pendingTopUp(wallet)
	topup.Status = domain.TopUpStatusCancelled
	tx := &mockTx{}
	key := domain.TopUpConfirmationKey("MPESA-REF-4")

	d.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.topUpRepo.EXPECT().GetByIDForUpdate(ctx, tx, topup.ID).Return(topup, nil)

	result, err := d.svc.Complete(ctx, topup.ID, "MPESA-REF-4")
	assert.Nil(t, result)
	assertAppError(t, err, "STA_001")
}

func TestTopUpService_Complete_SecondReferenceRejected(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "1085")
	topup := pendingTopUp(wallet)
	topup.Status = domain.TopUpStatusCompleted
	firstRef := "MPESA-REF-5"
	topup.GatewayReference = &firstRef
	tx := &mockTx{}
	key := domain.TopUpConfirmationKey("MPESA-REF-6")

	d.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.topUpRepo.EXPECT().GetByIDForUpdate(ctx, tx, topup.ID).Return(topup, nil)

	// A different confirmation id for a settled top-up is a conflict, not a
	// replay.
	result, err := d.svc.Complete(ctx, topup.ID, "MPESA-REF-6")
	assert.Nil(t, result)
	assertAppError(t, err, "STA_001")
	assert.True(t, wallet.AvailableBalance.Equal(dec("1085")), "no second credit")
}

func TestTopUpService_Complete_SameReferenceReplaysAfterCacheMiss(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "1085")
	topup := pendingTopUp(wallet)
	topup.Status = domain.TopUpStatusCompleted
	ref := "MPESA-REF-7"
	topup.GatewayReference = &ref
	tx := &mockTx{}
	key := domain.TopUpConfirmationKey(ref)

	// Both idempotency layers miss (evicted cache, lagging log): the row
	// itself still answers the replay.
	d.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.topUpRepo.EXPECT().GetByIDForUpdate(ctx, tx, topup.ID).Return(topup, nil)

	result, err := d.svc.Complete(ctx, topup.ID, ref)
	require.NoError(t, err)
	assert.Equal(t, topup.ID, result.ID)
	assert.True(t, wallet.AvailableBalance.Equal(dec("1085")), "wallet untouched on replay")
}

func TestTopUpService_Complete_RequiresGatewayRef(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	result, err := d.svc.Complete(context.Background(), uuid.New(), "")
	assert.Nil(t, result)
	assertAppError(t, err, "LED_001")
}

// ==================== MarkProcessing ====================

func TestTopUpService_MarkProcessing_FromPending(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")
	topup := pendingTopUp(wallet)

	d.topUpRepo.EXPECT().TransitionStatus(ctx, topup.ID,
		[]domain.TopUpStatus{domain.TopUpStatusPending},
		domain.TopUpStatusProcessing, nil).Return(true, nil)
	processing := *topup
	processing.Status = domain.TopUpStatusProcessing
	d.topUpRepo.EXPECT().GetByID(ctx, topup.ID).Return(&processing, nil)
	d.events.EXPECT().Publish(gomock.Any())

	result, err := d.svc.MarkProcessing(ctx, topup.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TopUpStatusProcessing, result.Status)
}

func TestTopUpService_MarkProcessing_AlreadyProcessing(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")
	topup := pendingTopUp(wallet)
	topup.Status = domain.TopUpStatusProcessing

	// A second submission ack is a no-op, not a conflict.
	d.topUpRepo.EXPECT().TransitionStatus(ctx, topup.ID,
		[]domain.TopUpStatus{domain.TopUpStatusPending},
		domain.TopUpStatusProcessing, nil).Return(false, nil)
	d.topUpRepo.EXPECT().GetByID(ctx, topup.ID).Return(topup, nil)

	result, err := d.svc.MarkProcessing(ctx, topup.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TopUpStatusProcessing, result.Status)
}

func TestTopUpService_MarkProcessing_CompletedRejected(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")
	topup := pendingTopUp(wallet)
	topup.Status = domain.TopUpStatusCompleted

	d.topUpRepo.EXPECT().TransitionStatus(ctx, topup.ID,
		[]domain.TopUpStatus{domain.TopUpStatusPending},
		domain.TopUpStatusProcessing, nil).Return(false, nil)
	d.topUpRepo.EXPECT().GetByID(ctx, topup.ID).Return(topup, nil)

	result, err := d.svc.MarkProcessing(ctx, topup.ID)
	assert.Nil(t, result)
	assertAppError(t, err, "STA_001")
}

// ==================== Fail / Cancel ====================

func TestTopUpService_Fail_Success(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")
	topup := pendingTopUp(wallet)
	reason := "gateway timeout"

	d.topUpRepo.EXPECT().TransitionStatus(ctx, topup.ID,
		[]domain.TopUpStatus{domain.TopUpStatusPending, domain.TopUpStatusProcessing},
		domain.TopUpStatusFailed, &reason).Return(true, nil)
	failed := *topup
	failed.Status = domain.TopUpStatusFailed
	d.topUpRepo.EXPECT().GetByID(ctx, topup.ID).Return(&failed, nil)
	d.events.EXPECT().Publish(gomock.Any())

	result, err := d.svc.Fail(ctx, topup.ID, reason)
	require.NoError(t, err)
	assert.Equal(t, domain.TopUpStatusFailed, result.Status)
}

func TestTopUpService_Cancel_OnlyPending(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")
	topup := pendingTopUp(wallet)
	topup.Status = domain.TopUpStatusProcessing

	d.topUpRepo.EXPECT().TransitionStatus(ctx, topup.ID,
		[]domain.TopUpStatus{domain.TopUpStatusPending},
		domain.TopUpStatusCancelled, nil).Return(false, nil)
	d.topUpRepo.EXPECT().GetByID(ctx, topup.ID).Return(topup, nil)

	result, err := d.svc.Cancel(ctx, topup.ID)
	assert.Nil(t, result)
	assertAppError(t, err, "STA_001")
}

// ==================== ExpireStale ====================

func TestTopUpService_ExpireStale(t *testing.T) {
	d := setupTopUpService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")
	now := time.Now().UTC()
	stale1 := pendingTopUp(wallet)
	stale2 := pendingTopUp(wallet)

	d.topUpRepo.EXPECT().ListExpiredPending(ctx, now, expireBatchSize).
		Return([]domain.WalletTopUp{*stale1, *stale2}, nil)
	d.topUpRepo.EXPECT().MarkExpired(ctx, stale1.ID, now).Return(true, nil)
	// Second row raced with a concurrent completion: no event, not counted.
	d.topUpRepo.EXPECT().MarkExpired(ctx, stale2.ID, now).Return(false, nil)
	d.events.EXPECT().Publish(gomock.Any()).Times(1)

	expired, err := d.svc.ExpireStale(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)
}
