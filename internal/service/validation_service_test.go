package service

import (
	"context"
	"testing"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type validationTestDeps struct {
	svc           *ValidationServiceImpl
	ledgerRepo    *mocks.MockLedgerRepository
	reportingRepo *mocks.MockReportingRepository
	ctrl          *gomock.Controller
}

func setupValidationService(t *testing.T) *validationTestDeps {
	ctrl := gomock.NewController(t)
	d := &validationTestDeps{
		ledgerRepo:    mocks.NewMockLedgerRepository(ctrl),
		reportingRepo: mocks.NewMockReportingRepository(ctrl),
		ctrl:          ctrl,
	}
	d.svc = NewValidationService(d.ledgerRepo, d.reportingRepo, zerolog.Nop())
	return d
}

func obs(gateway, method, currency, amount, fee string) ports.FeeObservation {
	return ports.FeeObservation{
		RelatedKind: domain.RelatedWalletTopUp,
		RelatedID:   uuid.New(),
		Gateway:     gateway,
		Method:      method,
		Currency:    currency,
		Amount:      dec(amount),
		Fee:         dec(fee),
		OccurredAt:  time.Now().UTC(),
	}
}

// ==================== ValidateTransactionBalance ====================

func TestValidationService_ValidateTransactionBalance_AllBalanced(t *testing.T) {
	d := setupValidationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	start := time.Now().UTC().Add(-24 * time.Hour)
	end := time.Now().UTC()

	d.ledgerRepo.EXPECT().SumsByTransaction(ctx, merchantID, start, end, nil).Return([]ports.TransactionSums{
		{TransactionID: uuid.New(), Currency: "KES", DebitTotal: dec("1000"), CreditTotal: dec("1000")},
		{TransactionID: uuid.New(), Currency: "KES", DebitTotal: dec("250.50"), CreditTotal: dec("250.50")},
	}, nil)

	report, err := d.svc.ValidateTransactionBalance(ctx, merchantID, start, end, nil)
	require.NoError(t, err)
	assert.True(t, report.IsBalanced)
	assert.Equal(t, 2, report.TransactionsChecked)
	assert.Empty(t, report.Discrepancies)
}

func TestValidationService_ValidateTransactionBalance_FindsDiscrepancy(t *testing.T) {
	d := setupValidationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	badTxID := uuid.New()
	start := time.Now().UTC().Add(-24 * time.Hour)
	end := time.Now().UTC()

	d.ledgerRepo.EXPECT().SumsByTransaction(ctx, merchantID, start, end, nil).Return([]ports.TransactionSums{
		{TransactionID: uuid.New(), Currency: "KES", DebitTotal: dec("1000"), CreditTotal: dec("1000")},
		{TransactionID: badTxID, Currency: "KES", DebitTotal: dec("1000"), CreditTotal: dec("900")},
	}, nil)

	report, err := d.svc.ValidateTransactionBalance(ctx, merchantID, start, end, nil)
	require.NoError(t, err)
	assert.False(t, report.IsBalanced)
	require.Len(t, report.Discrepancies, 1)
	disc := report.Discrepancies[0]
	assert.Equal(t, badTxID, disc.TransactionID)
	assert.True(t, disc.Difference.Equal(dec("100")))
}

// ==================== DetectAnomalies ====================

func TestValidationService_DetectAnomalies_AmountThreshold(t *testing.T) {
	d := setupValidationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	start := time.Now().UTC().Add(-24 * time.Hour)
	end := time.Now().UTC()

	big := obs("mpesa", "mobile_money", "KES", "2000000", "150")
	d.reportingRepo.EXPECT().FeeObservations(ctx, merchantID, start, end).Return([]ports.FeeObservation{
		obs("mpesa", "mobile_money", "KES", "1000", "15"),
		big,
	}, nil)

	anomalies, err := d.svc.DetectAnomalies(ctx, merchantID, dec("1000000"), start, end)
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	assert.Equal(t, "amount_threshold", anomalies[0].Kind)
	assert.Equal(t, big.RelatedID, anomalies[0].RelatedID)
	assert.True(t, anomalies[0].Baseline.Equal(dec("1000000")))
}

func TestValidationService_DetectAnomalies_FeeRatioOutlier(t *testing.T) {
	d := setupValidationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	start := time.Now().UTC().Add(-24 * time.Hour)
	end := time.Now().UTC()

	// Three observations around 1.5%, one at 15%.
	outlier := obs("mpesa", "mobile_money", "KES", "1000", "150")
	d.reportingRepo.EXPECT().FeeObservations(ctx, merchantID, start, end).Return([]ports.FeeObservation{
		obs("mpesa", "mobile_money", "KES", "1000", "15"),
		obs("mpesa", "mobile_money", "KES", "2000", "30"),
		obs("mpesa", "mobile_money", "KES", "500", "8"),
		outlier,
	}, nil)

	anomalies, err := d.svc.DetectAnomalies(ctx, merchantID, decimal.Zero, start, end)
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	assert.Equal(t, "fee_ratio_outlier", anomalies[0].Kind)
	assert.Equal(t, outlier.RelatedID, anomalies[0].RelatedID)
	assert.True(t, anomalies[0].Observed.Equal(dec("0.15")))
}

func TestValidationService_DetectAnomalies_SmallGroupSkipped(t *testing.T) {
	d := setupValidationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	start := time.Now().UTC().Add(-24 * time.Hour)
	end := time.Now().UTC()

	// Two observations only: no trustworthy baseline, no ratio flags.
	d.reportingRepo.EXPECT().FeeObservations(ctx, merchantID, start, end).Return([]ports.FeeObservation{
		obs("stripe", "card", "USD", "100", "3"),
		obs("stripe", "card", "USD", "100", "30"),
	}, nil)

	anomalies, err := d.svc.DetectAnomalies(ctx, merchantID, decimal.Zero, start, end)
	require.NoError(t, err)
	assert.Empty(t, anomalies)
}

// ==================== GetGatewayFeeAnalysis ====================

func TestValidationService_GetGatewayFeeAnalysis(t *testing.T) {
	d := setupValidationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchantID := uuid.New()
	start := time.Now().UTC().Add(-30 * 24 * time.Hour)
	end := time.Now().UTC()

	d.reportingRepo.EXPECT().FeeObservations(ctx, merchantID, start, end).Return([]ports.FeeObservation{
		obs("mpesa", "mobile_money", "KES", "1000", "15"),
		obs("mpesa", "mobile_money", "KES", "3000", "45"),
		obs("bank", "bank_transfer", "KES", "10000", "50"),
	}, nil)

	rows, err := d.svc.GetGatewayFeeAnalysis(ctx, merchantID, start, end)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Sorted by gateway: bank first.
	assert.Equal(t, "bank", rows[0].Gateway)
	assert.Equal(t, 1, rows[0].Count)
	assert.True(t, rows[0].AvgFeeRatio.Equal(dec("0.005")))

	assert.Equal(t, "mpesa", rows[1].Gateway)
	assert.Equal(t, 2, rows[1].Count)
	assert.True(t, rows[1].TotalAmount.Equal(dec("4000")))
	assert.True(t, rows[1].TotalFees.Equal(dec("60")))
	assert.True(t, rows[1].AvgFeeRatio.Equal(dec("0.015")))
}
