package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, merchant_id, currency, type, status,
		available_balance, locked_balance,
		daily_withdrawal_used, daily_withdrawal_limit,
		monthly_withdrawal_used, monthly_withdrawal_limit,
		auto_sweep, sweep_threshold, sweep_target_wallet_id,
		freeze_reason, metadata, created_at, updated_at`

// WalletRepo implements ports.WalletRepository against merchant_wallets.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a wallet within the caller's transaction. A second active
// wallet of the same (merchant, currency, type) violates the partial unique
// index and maps to a duplicate error.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.MerchantWallet) error {
	query := `INSERT INTO merchant_wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.MerchantID, w.Currency, w.Type, w.Status,
		w.AvailableBalance, w.LockedBalance,
		w.DailyWithdrawalUsed, w.DailyWithdrawalLimit,
		w.MonthlyWithdrawalUsed, w.MonthlyWithdrawalLimit,
		w.AutoSweep, w.SweepThreshold, w.SweepTargetWalletID,
		w.FreezeReason, w.Metadata, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.ErrDuplicateWallet(w.Currency, string(w.Type))
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM merchant_wallets WHERE id = $1`
	return scanWallet(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate loads the wallet with a row lock held for the duration of
// the transaction. Lock waits beyond the session lock_timeout surface as a
// lock timeout error.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.MerchantWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM merchant_wallets WHERE id = $1 FOR UPDATE`
	var w domain.MerchantWallet
	err := tx.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.MerchantID, &w.Currency, &w.Type, &w.Status,
		&w.AvailableBalance, &w.LockedBalance,
		&w.DailyWithdrawalUsed, &w.DailyWithdrawalLimit,
		&w.MonthlyWithdrawalUsed, &w.MonthlyWithdrawalLimit,
		&w.AutoSweep, &w.SweepThreshold, &w.SweepTargetWalletID,
		&w.FreezeReason, &w.Metadata, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapLockError("lock wallet", err)
	}
	return &w, nil
}

func (r *WalletRepo) FindActive(ctx context.Context, merchantID uuid.UUID, currency string, walletType domain.WalletType) (*domain.MerchantWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM merchant_wallets
		WHERE merchant_id = $1 AND currency = $2 AND type = $3 AND status = $4`
	return scanWallet(r.pool.QueryRow(ctx, query, merchantID, currency, walletType, domain.WalletStatusActive))
}

func (r *WalletRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.MerchantWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM merchant_wallets
		WHERE merchant_id = $1 ORDER BY currency, type`

	rows, err := r.pool.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	return collectWallets(rows)
}

// UpdateBalances writes the balance and counter fields. Must run in the
// transaction that locked the row.
func (r *WalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, w *domain.MerchantWallet) error {
	query := `UPDATE merchant_wallets SET
		available_balance = $2, locked_balance = $3,
		daily_withdrawal_used = $4, monthly_withdrawal_used = $5,
		updated_at = NOW()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		w.ID, w.AvailableBalance, w.LockedBalance,
		w.DailyWithdrawalUsed, w.MonthlyWithdrawalUsed,
	)
	if err != nil {
		return fmt.Errorf("update wallet balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("wallet")
	}
	return nil
}

func (r *WalletRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.WalletStatus, freezeReason *string) error {
	query := `UPDATE merchant_wallets SET status = $2, freeze_reason = $3, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status, freezeReason)
	if err != nil {
		return fmt.Errorf("update wallet status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("wallet")
	}
	return nil
}

func (r *WalletRepo) ListAutoSweep(ctx context.Context) ([]domain.MerchantWallet, error) {
	query := `SELECT ` + walletColumns + ` FROM merchant_wallets
		WHERE auto_sweep = TRUE AND status = $1 AND sweep_target_wallet_id IS NOT NULL`

	rows, err := r.pool.Query(ctx, query, domain.WalletStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list auto-sweep wallets: %w", err)
	}
	defer rows.Close()

	return collectWallets(rows)
}

func (r *WalletRepo) ResetDailyCounters(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE merchant_wallets SET daily_withdrawal_used = 0, updated_at = NOW()
		WHERE daily_withdrawal_used <> 0`)
	if err != nil {
		return 0, fmt.Errorf("reset daily counters: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *WalletRepo) ResetMonthlyCounters(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE merchant_wallets SET monthly_withdrawal_used = 0, updated_at = NOW()
		WHERE monthly_withdrawal_used <> 0`)
	if err != nil {
		return 0, fmt.Errorf("reset monthly counters: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanWallet(row pgx.Row) (*domain.MerchantWallet, error) {
	var w domain.MerchantWallet
	err := row.Scan(
		&w.ID, &w.MerchantID, &w.Currency, &w.Type, &w.Status,
		&w.AvailableBalance, &w.LockedBalance,
		&w.DailyWithdrawalUsed, &w.DailyWithdrawalLimit,
		&w.MonthlyWithdrawalUsed, &w.MonthlyWithdrawalLimit,
		&w.AutoSweep, &w.SweepThreshold, &w.SweepTargetWalletID,
		&w.FreezeReason, &w.Metadata, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	return &w, nil
}

func collectWallets(rows pgx.Rows) ([]domain.MerchantWallet, error) {
	defer rows.Close()

	var wallets []domain.MerchantWallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet rows: %w", err)
	}
	return wallets, nil
}
