package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet(merchantID uuid.UUID) *domain.MerchantWallet {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.MerchantWallet{
		ID:                     uuid.New(),
		MerchantID:             merchantID,
		Currency:               "KES",
		Type:                   domain.WalletTypeOperating,
		Status:                 domain.WalletStatusActive,
		AvailableBalance:       decimal.RequireFromString("1000.00"),
		LockedBalance:          decimal.Zero,
		DailyWithdrawalUsed:    decimal.Zero,
		DailyWithdrawalLimit:   decimal.RequireFromString("50000.00"),
		MonthlyWithdrawalUsed:  decimal.Zero,
		MonthlyWithdrawalLimit: decimal.Zero,
		SweepThreshold:         decimal.Zero,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

func walletTestColumns() []string {
	return []string{
		"id", "merchant_id", "currency", "type", "status",
		"available_balance", "locked_balance",
		"daily_withdrawal_used", "daily_withdrawal_limit",
		"monthly_withdrawal_used", "monthly_withdrawal_limit",
		"auto_sweep", "sweep_threshold", "sweep_target_wallet_id",
		"freeze_reason", "metadata", "created_at", "updated_at",
	}
}

func walletRow(w *domain.MerchantWallet) *pgxmock.Rows {
	return pgxmock.NewRows(walletTestColumns()).AddRow(
		w.ID, w.MerchantID, w.Currency, w.Type, w.Status,
		w.AvailableBalance, w.LockedBalance,
		w.DailyWithdrawalUsed, w.DailyWithdrawalLimit,
		w.MonthlyWithdrawalUsed, w.MonthlyWithdrawalLimit,
		w.AutoSweep, w.SweepThreshold, w.SweepTargetWalletID,
		w.FreezeReason, w.Metadata, w.CreatedAt, w.UpdatedAt,
	)
}

func TestWalletRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO merchant_wallets").
		WithArgs(w.ID, w.MerchantID, w.Currency, w.Type, w.Status,
			w.AvailableBalance, w.LockedBalance,
			w.DailyWithdrawalUsed, w.DailyWithdrawalLimit,
			w.MonthlyWithdrawalUsed, w.MonthlyWithdrawalLimit,
			w.AutoSweep, w.SweepThreshold, w.SweepTargetWalletID,
			w.FreezeReason, w.Metadata, w.CreatedAt, w.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM merchant_wallets WHERE id").
		WithArgs(w.ID).
		WillReturnRows(walletRow(w))

	result, err := repo.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.True(t, w.AvailableBalance.Equal(result.AvailableBalance))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM merchant_wallets WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(walletTestColumns()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM merchant_wallets WHERE id .+ FOR UPDATE").
		WithArgs(w.ID).
		WillReturnRows(walletRow(w))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_FindActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM merchant_wallets").
		WithArgs(w.MerchantID, "KES", domain.WalletTypeOperating, domain.WalletStatusActive).
		WillReturnRows(walletRow(w))

	result, err := repo.FindActive(context.Background(), w.MerchantID, "KES", domain.WalletTypeOperating)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_UpdateBalances(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())
	w.AvailableBalance = decimal.RequireFromString("750.00")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE merchant_wallets SET").
		WithArgs(w.ID, w.AvailableBalance, w.LockedBalance,
			w.DailyWithdrawalUsed, w.MonthlyWithdrawalUsed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalances(context.Background(), tx, w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_UpdateBalances_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE merchant_wallets SET").
		WithArgs(w.ID, w.AvailableBalance, w.LockedBalance,
			w.DailyWithdrawalUsed, w.MonthlyWithdrawalUsed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalances(context.Background(), tx, w)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LED_003", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()
	reason := "compliance review"

	mock.ExpectExec("UPDATE merchant_wallets SET status").
		WithArgs(id, domain.WalletStatusFrozen, &reason).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateStatus(context.Background(), id, domain.WalletStatusFrozen, &reason)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_ResetDailyCounters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectExec("UPDATE merchant_wallets SET daily_withdrawal_used").
		WillReturnResult(pgxmock.NewResult("UPDATE", 7))

	n, err := repo.ResetDailyCounters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
