package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type disbTestDeps struct {
	svc             *DisbursementServiceImpl
	disbRepo        *mocks.MockDisbursementRepository
	walletRepo      *mocks.MockWalletRepository
	ledgerRepo      *mocks.MockLedgerRepository
	beneficiaryRepo *mocks.MockBeneficiaryRepository
	confirmRepo     *mocks.MockConfirmationRepository
	cache           *mocks.MockConfirmationCache
	feeSvc          *mocks.MockFeeService
	transactor      *mocks.MockDBTransactor
	events          *mocks.MockEventPublisher
	ctrl            *gomock.Controller
}

func setupDisbursementService(t *testing.T) *disbTestDeps {
	ctrl := gomock.NewController(t)
	d := &disbTestDeps{
		disbRepo:        mocks.NewMockDisbursementRepository(ctrl),
		walletRepo:      mocks.NewMockWalletRepository(ctrl),
		ledgerRepo:      mocks.NewMockLedgerRepository(ctrl),
		beneficiaryRepo: mocks.NewMockBeneficiaryRepository(ctrl),
		confirmRepo:     mocks.NewMockConfirmationRepository(ctrl),
		cache:           mocks.NewMockConfirmationCache(ctrl),
		feeSvc:          mocks.NewMockFeeService(ctrl),
		transactor:      mocks.NewMockDBTransactor(ctrl),
		events:          mocks.NewMockEventPublisher(ctrl),
		ctrl:            ctrl,
	}
	d.svc = NewDisbursementService(
		d.disbRepo, d.walletRepo, d.ledgerRepo, d.beneficiaryRepo,
		d.confirmRepo, d.cache, d.feeSvc, domain.DefaultCurrencyRegistry(),
		d.transactor, d.events, testLedgerConfig(), zerolog.Nop(),
	)
	return d
}

func activeBeneficiary(merchantID uuid.UUID) *domain.Beneficiary {
	return &domain.Beneficiary{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Name:       "Acme Supplies Ltd",
		Active:     true,
	}
}

func pendingDisbursement(wallet *domain.MerchantWallet, beneficiaryID uuid.UUID) *domain.Disbursement {
	return &domain.Disbursement{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		MerchantID:    wallet.MerchantID,
		BeneficiaryID: beneficiaryID,
		Amount:        dec("1000"),
		FeeAmount:     dec("25"),
		NetAmount:     dec("1000"),
		Currency:      wallet.Currency,
		Status:        domain.DisbursementStatusPending,
		PayoutMethod:  "mobile_money",
		Gateway:       "mpesa",
		Reference:     "PAYOUT-001",
	}
}

// ==================== Create ====================

func TestDisbursementService_Create_HoldsGrossAmount(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	wallet := activeWallet(merchantID, "5000")
	beneficiary := activeBeneficiary(merchantID)
	tx := &mockTx{}

	d.beneficiaryRepo.EXPECT().GetByID(ctx, beneficiary.ID).Return(beneficiary, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.feeSvc.EXPECT().Calculate(ctx, merchantID, "mpesa", "mobile_money", "KES", decEq("1000")).
		Return(&domain.FeeBreakdown{TotalFee: dec("25"), NetAmount: dec("975")}, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, wallet).Return(nil)
	d.ledgerRepo.EXPECT().InsertEntries(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, entries []domain.LedgerEntry) error {
			require.Len(t, entries, 3)
			assert.Equal(t, domain.WalletAccountName(wallet.ID), entries[0].AccountName)
			assert.Equal(t, domain.EntryTypeCredit, entries[0].EntryType)
			assert.True(t, entries[0].Amount.Equal(dec("1025")), "wallet gives up the gross")
			assert.Equal(t, domain.AccountPayoutClearing, entries[1].AccountName)
			assert.True(t, entries[1].Amount.Equal(dec("1000")))
			assert.Equal(t, domain.AccountDisbursementFees, entries[2].AccountName)
			assert.True(t, entries[2].Amount.Equal(dec("25")))
			return nil
		})
	d.disbRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(gomock.Any())

	disb, err := d.svc.Create(ctx, ports.CreateDisbursementParams{
		MerchantID:    merchantID,
		WalletID:      wallet.ID,
		BeneficiaryID: beneficiary.ID,
		Amount:        dec("1000"),
		PayoutMethod:  "mobile_money",
		Gateway:       "mpesa",
		Reference:     "PAYOUT-001",
	})
	require.NoError(t, err)
	require.NotNil(t, disb)
	assert.Equal(t, domain.DisbursementStatusPending, disb.Status)
	assert.True(t, wallet.AvailableBalance.Equal(dec("3975")), "5000 - 1025 gross")
	assert.True(t, wallet.LockedBalance.Equal(dec("1025")), "hold parks in locked")
	assert.True(t, wallet.DailyWithdrawalUsed.Equal(dec("1025")), "payouts consume quota")
}

func TestDisbursementService_Create_SplitsAvailableAndLocked(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	wallet := activeWallet(merchantID, "500")
	beneficiary := activeBeneficiary(merchantID)
	tx := &mockTx{}

	d.beneficiaryRepo.EXPECT().GetByID(ctx, beneficiary.ID).Return(beneficiary, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.feeSvc.EXPECT().Calculate(ctx, merchantID, "internal", "bank_transfer", "KES", decEq("100")).
		Return(&domain.FeeBreakdown{TotalFee: dec("0"), NetAmount: dec("100")}, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, wallet).Return(nil)
	d.ledgerRepo.EXPECT().InsertEntries(ctx, tx, gomock.Any()).Return(nil)
	d.disbRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(gomock.Any())

	_, err := d.svc.Create(ctx, ports.CreateDisbursementParams{
		MerchantID:    merchantID,
		WalletID:      wallet.ID,
		BeneficiaryID: beneficiary.ID,
		Amount:        dec("100"),
		PayoutMethod:  "bank_transfer",
		Gateway:       "internal",
		Reference:     "PAYOUT-010",
	})
	require.NoError(t, err)
	// The hold moves money between the two buckets without shrinking the
	// wallet's total.
	assert.True(t, wallet.AvailableBalance.Equal(dec("400")))
	assert.True(t, wallet.LockedBalance.Equal(dec("100")))
	assert.True(t, wallet.TotalBalance().Equal(dec("500")))
}

func TestDisbursementService_Create_InactiveBeneficiary(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	beneficiary := activeBeneficiary(merchantID)
	beneficiary.Active = false

	d.beneficiaryRepo.EXPECT().GetByID(ctx, beneficiary.ID).Return(beneficiary, nil)

	disb, err := d.svc.Create(ctx, ports.CreateDisbursementParams{
		MerchantID:    merchantID,
		WalletID:      uuid.New(),
		BeneficiaryID: beneficiary.ID,
		Amount:        dec("1000"),
	})
	assert.Nil(t, disb)
	assertAppError(t, err, "LED_001")
}

func TestDisbursementService_Create_ForeignBeneficiary(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	beneficiary := activeBeneficiary(uuid.New()) // other merchant's payee

	d.beneficiaryRepo.EXPECT().GetByID(ctx, beneficiary.ID).Return(beneficiary, nil)

	disb, err := d.svc.Create(ctx, ports.CreateDisbursementParams{
		MerchantID:    uuid.New(),
		WalletID:      uuid.New(),
		BeneficiaryID: beneficiary.ID,
		Amount:        dec("1000"),
	})
	assert.Nil(t, disb)
	assertAppError(t, err, "LED_003")
}

// ==================== CreateBatch ====================

func TestDisbursementService_CreateBatch_AllOrNothing(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	good := activeBeneficiary(merchantID)
	badID := uuid.New()

	// First line validates, second does not: no transaction is ever opened
	// and nothing is created.
	d.beneficiaryRepo.EXPECT().GetByID(ctx, good.ID).Return(good, nil)
	d.beneficiaryRepo.EXPECT().GetByID(ctx, badID).Return(nil, nil)

	batch, lines, err := d.svc.CreateBatch(ctx, ports.CreateBatchParams{
		MerchantID:   merchantID,
		WalletID:     uuid.New(),
		Name:         "March payroll",
		PayoutMethod: "bank_transfer",
		Gateway:      "bank",
		Lines: []ports.BatchLineParams{
			{BeneficiaryID: good.ID, Amount: dec("500"), Reference: "PR-1"},
			{BeneficiaryID: badID, Amount: dec("700"), Reference: "PR-2"},
		},
	})
	assert.Nil(t, batch)
	assert.Nil(t, lines)
	assertAppError(t, err, "LED_002")
}

func TestDisbursementService_CreateBatch_Success(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	wallet := activeWallet(merchantID, "10000")
	b1 := activeBeneficiary(merchantID)
	b2 := activeBeneficiary(merchantID)
	tx := &mockTx{}

	d.beneficiaryRepo.EXPECT().GetByID(ctx, b1.ID).Return(b1, nil)
	d.beneficiaryRepo.EXPECT().GetByID(ctx, b2.ID).Return(b2, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.feeSvc.EXPECT().Calculate(ctx, merchantID, "mpesa", "mobile_money", "KES", gomock.Any()).
		Return(&domain.FeeBreakdown{TotalFee: dec("10")}, nil).Times(2)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, wallet).Return(nil).Times(2)
	d.ledgerRepo.EXPECT().InsertEntries(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.disbRepo.EXPECT().CreateBatch(ctx, tx, gomock.Any()).Return(nil)
	d.disbRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.events.EXPECT().Publish(gomock.Any()).Times(2)

	batch, lines, err := d.svc.CreateBatch(ctx, ports.CreateBatchParams{
		MerchantID:   merchantID,
		WalletID:     wallet.ID,
		Name:         "Supplier run",
		PayoutMethod: "mobile_money",
		Gateway:      "mpesa",
		Lines: []ports.BatchLineParams{
			{BeneficiaryID: b1.ID, Amount: dec("1000"), Reference: "S-1"},
			{BeneficiaryID: b2.ID, Amount: dec("2000"), Reference: "S-2"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, batch)
	require.Len(t, lines, 2)
	// Gross total: (1000+10) + (2000+10).
	assert.True(t, batch.TotalAmount.Equal(dec("3020")), "total = %s", batch.TotalAmount)
	assert.True(t, wallet.AvailableBalance.Equal(dec("6980")))
	assert.True(t, wallet.LockedBalance.Equal(dec("3020")))
	assert.Equal(t, &batch.ID, lines[0].BatchID)
}

func TestDisbursementService_CreateBatch_TooManyLines(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	lines := make([]ports.BatchLineParams, 101)
	for i := range lines {
		lines[i] = ports.BatchLineParams{BeneficiaryID: uuid.New(), Amount: dec("1")}
	}

	batch, created, err := d.svc.CreateBatch(context.Background(), ports.CreateBatchParams{
		MerchantID: uuid.New(),
		WalletID:   uuid.New(),
		Lines:      lines,
	})
	assert.Nil(t, batch)
	assert.Nil(t, created)
	assertAppError(t, err, "LED_001")
}

// ==================== MarkProcessing ====================

func TestDisbursementService_MarkProcessing_FromPending(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "3975")
	disb := pendingDisbursement(wallet, uuid.New())
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)
	d.disbRepo.EXPECT().Update(ctx, tx, disb).Return(nil)
	d.events.EXPECT().Publish(gomock.Any())

	result, err := d.svc.MarkProcessing(ctx, disb.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DisbursementStatusProcessing, result.Status)
	require.NotNil(t, result.ProcessedAt)
}

func TestDisbursementService_MarkProcessing_AlreadyProcessing(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "3975")
	disb := pendingDisbursement(wallet, uuid.New())
	disb.Status = domain.DisbursementStatusProcessing
	tx := &mockTx{}

	// A second submission ack is a no-op: no update, no event.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)

	result, err := d.svc.MarkProcessing(ctx, disb.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DisbursementStatusProcessing, result.Status)
}

func TestDisbursementService_MarkProcessing_CompletedRejected(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")
	disb := pendingDisbursement(wallet, uuid.New())
	disb.Status = domain.DisbursementStatusCompleted
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)

	result, err := d.svc.MarkProcessing(ctx, disb.ID)
	assert.Nil(t, result)
	assertAppError(t, err, "STA_001")
}

// ==================== Cancel / Retry ====================

func TestDisbursementService_Cancel_ReleasesHold(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	wallet := activeWallet(merchantID, "3975")
	wallet.LockedBalance = dec("1025")
	disb := pendingDisbursement(wallet, uuid.New())
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, wallet).Return(nil)
	d.ledgerRepo.EXPECT().InsertEntries(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, entries []domain.LedgerEntry) error {
			require.Len(t, entries, 3)
			assert.Equal(t, domain.EntryTypeDebit, entries[0].EntryType)
			assert.True(t, entries[0].Amount.Equal(dec("1025")), "gross returned to the wallet")
			return nil
		})
	d.disbRepo.EXPECT().Update(ctx, tx, disb).Return(nil)
	d.events.EXPECT().Publish(gomock.Any())

	result, err := d.svc.Cancel(ctx, disb.ID, "merchant request")
	require.NoError(t, err)
	assert.Equal(t, domain.DisbursementStatusCancelled, result.Status)
	assert.True(t, wallet.AvailableBalance.Equal(dec("5000")), "hold credited back")
	assert.True(t, wallet.LockedBalance.IsZero())
}

func TestDisbursementService_Cancel_CompletedRejected(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")
	disb := pendingDisbursement(wallet, uuid.New())
	disb.Status = domain.DisbursementStatusCompleted
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)

	result, err := d.svc.Cancel(ctx, disb.ID, "too late")
	assert.Nil(t, result)
	assertAppError(t, err, "STA_001")
}

func TestDisbursementService_Retry_TakesFreshHold(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	wallet := activeWallet(merchantID, "5000")
	disb := pendingDisbursement(wallet, uuid.New())
	disb.Status = domain.DisbursementStatusFailed
	disb.RetryCount = 1
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, wallet).Return(nil)
	d.ledgerRepo.EXPECT().InsertEntries(ctx, tx, gomock.Any()).Return(nil)
	d.disbRepo.EXPECT().Update(ctx, tx, disb).Return(nil)

	result, err := d.svc.Retry(ctx, disb.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DisbursementStatusProcessing, result.Status, "retry goes straight back to the gateway")
	assert.Equal(t, 2, result.RetryCount)
	assert.Nil(t, result.FailureReason)
	require.NotNil(t, result.ProcessedAt)
	assert.True(t, wallet.AvailableBalance.Equal(dec("3975")))
	assert.True(t, wallet.LockedBalance.Equal(dec("1025")), "fresh hold is locked")
}

func TestDisbursementService_Retry_MaxRetriesExceeded(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "5000")
	disb := pendingDisbursement(wallet, uuid.New())
	disb.Status = domain.DisbursementStatusFailed
	disb.RetryCount = 3
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)

	result, err := d.svc.Retry(ctx, disb.ID)
	assert.Nil(t, result)
	assertAppError(t, err, "STA_002")
}

// ==================== HandleGatewayResult ====================

func TestDisbursementService_HandleGatewayResult_Success(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	wallet := activeWallet(merchantID, "3975")
	wallet.LockedBalance = dec("1025")
	disb := pendingDisbursement(wallet, uuid.New())
	disb.Status = domain.DisbursementStatusProcessing
	tx := &mockTx{}
	key := domain.DisbursementConfirmationKey("MPESA-PAYOUT-1")

	d.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, wallet).Return(nil)
	d.ledgerRepo.EXPECT().InsertEntries(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, entries []domain.LedgerEntry) error {
			require.Len(t, entries, 2)
			assert.Equal(t, domain.AccountGatewayPayouts, entries[0].AccountName)
			assert.Equal(t, domain.EntryTypeDebit, entries[0].EntryType)
			assert.Equal(t, domain.AccountPayoutClearing, entries[1].AccountName)
			assert.Equal(t, domain.EntryTypeCredit, entries[1].EntryType)
			return nil
		})
	d.disbRepo.EXPECT().Update(ctx, tx, disb).Return(nil)
	d.confirmRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(ctx, key, gomock.Any(), gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(gomock.Any())

	result, err := d.svc.HandleGatewayResult(ctx, disb.ID, "MPESA-PAYOUT-1", true, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DisbursementStatusCompleted, result.Status)
	require.NotNil(t, result.CompletedAt)
	assert.True(t, wallet.AvailableBalance.Equal(dec("3975")), "available untouched on success")
	assert.True(t, wallet.LockedBalance.IsZero(), "hold cleared, funds left the platform")
}

func TestDisbursementService_HandleGatewayResult_FailureReleasesHold(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	wallet := activeWallet(merchantID, "3975")
	wallet.LockedBalance = dec("1025")
	disb := pendingDisbursement(wallet, uuid.New())
	disb.Status = domain.DisbursementStatusProcessing
	tx := &mockTx{}
	key := domain.DisbursementConfirmationKey("MPESA-PAYOUT-2")
	gwResp := "insufficient float at gateway"

	d.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, wallet.ID).Return(wallet, nil)
	d.walletRepo.EXPECT().UpdateBalances(ctx, tx, wallet).Return(nil)
	d.ledgerRepo.EXPECT().InsertEntries(ctx, tx, gomock.Any()).Return(nil)
	d.disbRepo.EXPECT().Update(ctx, tx, disb).Return(nil)
	d.confirmRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.cache.EXPECT().Set(ctx, key, gomock.Any(), gomock.Any()).Return(nil)
	d.events.EXPECT().Publish(gomock.Any())

	result, err := d.svc.HandleGatewayResult(ctx, disb.ID, "MPESA-PAYOUT-2", false, &gwResp)
	require.NoError(t, err)
	assert.Equal(t, domain.DisbursementStatusFailed, result.Status)
	require.NotNil(t, result.FailureReason)
	assert.Equal(t, gwResp, *result.FailureReason)
	assert.True(t, wallet.AvailableBalance.Equal(dec("5000")), "hold credited back")
	assert.True(t, wallet.LockedBalance.IsZero())
}

func TestDisbursementService_HandleGatewayResult_PendingRejected(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "3975")
	disb := pendingDisbursement(wallet, uuid.New())
	tx := &mockTx{}
	key := domain.DisbursementConfirmationKey("MPESA-PAYOUT-4")

	// The gateway cannot resolve a payout it was never handed.
	d.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)

	result, err := d.svc.HandleGatewayResult(ctx, disb.ID, "MPESA-PAYOUT-4", true, nil)
	assert.Nil(t, result)
	assertAppError(t, err, "STA_001")
}

func TestDisbursementService_HandleGatewayResult_SecondReferenceRejected(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "3975")
	disb := pendingDisbursement(wallet, uuid.New())
	disb.Status = domain.DisbursementStatusCompleted
	tx := &mockTx{}
	key := domain.DisbursementConfirmationKey("MPESA-PAYOUT-5")

	// Settled under some other reference: no confirmation row for this one,
	// before or inside the lock.
	d.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(nil, nil).Times(2)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)

	result, err := d.svc.HandleGatewayResult(ctx, disb.ID, "MPESA-PAYOUT-5", true, nil)
	assert.Nil(t, result)
	assertAppError(t, err, "STA_001")
}

func TestDisbursementService_HandleGatewayResult_SameReferenceReplaysInsideLock(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "3975")
	disb := pendingDisbursement(wallet, uuid.New())
	disb.Status = domain.DisbursementStatusCompleted
	respJSON, _ := json.Marshal(disb)
	tx := &mockTx{}
	key := domain.DisbursementConfirmationKey("MPESA-PAYOUT-6")

	// A concurrent delivery committed between the pre-lock check and the row
	// lock: the in-lock check replays the stored outcome.
	d.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.disbRepo.EXPECT().GetByIDForUpdate(ctx, tx, disb.ID).Return(disb, nil)
	d.confirmRepo.EXPECT().Get(ctx, key).Return(&domain.GatewayConfirmation{
		Key:          key,
		RelatedKind:  domain.RelatedDisbursement,
		RelatedID:    disb.ID,
		ResponseJSON: respJSON,
	}, nil)

	result, err := d.svc.HandleGatewayResult(ctx, disb.ID, "MPESA-PAYOUT-6", true, nil)
	require.NoError(t, err)
	assert.Equal(t, disb.ID, result.ID)
	assert.Equal(t, domain.DisbursementStatusCompleted, result.Status)
}

func TestDisbursementService_HandleGatewayResult_ReplayFromCache(t *testing.T) {
	d := setupDisbursementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "3975")
	disb := pendingDisbursement(wallet, uuid.New())
	disb.Status = domain.DisbursementStatusCompleted
	cachedJSON, _ := json.Marshal(disb)
	key := domain.DisbursementConfirmationKey("MPESA-PAYOUT-3")

	d.cache.EXPECT().Get(ctx, key).Return(cachedJSON, nil)

	result, err := d.svc.HandleGatewayResult(ctx, disb.ID, "MPESA-PAYOUT-3", true, nil)
	require.NoError(t, err)
	assert.Equal(t, disb.ID, result.ID)
	assert.True(t, wallet.AvailableBalance.Equal(dec("3975")), "no double apply")
}
