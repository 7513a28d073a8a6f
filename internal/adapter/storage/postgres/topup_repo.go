package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const topUpColumns = `id, wallet_id, merchant_id, amount, fee, net_amount, currency,
		method, gateway, status, payment_instructions, bank_reference,
		gateway_reference, failure_reason, expires_at, completed_at, created_at, updated_at`

// TopUpRepo implements ports.TopUpRepository against wallet_topups.
type TopUpRepo struct {
	pool Pool
}

// NewTopUpRepo creates a new TopUpRepo.
func NewTopUpRepo(pool Pool) *TopUpRepo {
	return &TopUpRepo{pool: pool}
}

func (r *TopUpRepo) Create(ctx context.Context, t *domain.WalletTopUp) error {
	query := `INSERT INTO wallet_topups (` + topUpColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.WalletID, t.MerchantID, t.Amount, t.Fee, t.NetAmount, t.Currency,
		t.Method, t.Gateway, t.Status, t.PaymentInstructions, t.BankReference,
		t.GatewayReference, t.FailureReason, t.ExpiresAt, t.CompletedAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert topup: %w", err)
	}
	return nil
}

func (r *TopUpRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTopUp, error) {
	query := `SELECT ` + topUpColumns + ` FROM wallet_topups WHERE id = $1`
	return scanTopUp(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate loads the top-up with a row lock so concurrent
// confirmations serialize on it.
func (r *TopUpRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletTopUp, error) {
	query := `SELECT ` + topUpColumns + ` FROM wallet_topups WHERE id = $1 FOR UPDATE`
	t, err := scanTopUp(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapLockError("lock topup", err)
	}
	return t, nil
}

// MarkCompleted records completion inside the crediting transaction so the
// status flip and the wallet credit commit or roll back together.
func (r *TopUpRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, gatewayRef string, completedAt time.Time) error {
	query := `UPDATE wallet_topups SET
		status = $2, gateway_reference = $3, completed_at = $4, updated_at = NOW()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, domain.TopUpStatusCompleted, gatewayRef, completedAt)
	if err != nil {
		return fmt.Errorf("mark topup completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("topup")
	}
	return nil
}

// TransitionStatus performs a conditional state change guarded in SQL, so a
// concurrent transition on the same row leaves exactly one winner.
func (r *TopUpRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from []domain.TopUpStatus, to domain.TopUpStatus, failureReason *string) (bool, error) {
	placeholders := make([]string, 0, len(from))
	args := []any{id, to, failureReason}
	for i, s := range from {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+4))
		args = append(args, s)
	}

	query := fmt.Sprintf(`UPDATE wallet_topups SET
		status = $2, failure_reason = COALESCE($3, failure_reason), updated_at = NOW()
		WHERE id = $1 AND status IN (%s)`, strings.Join(placeholders, ", "))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("transition topup status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TopUpRepo) ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]domain.WalletTopUp, error) {
	query := `SELECT ` + topUpColumns + ` FROM wallet_topups
		WHERE status = $1 AND expires_at <= $2
		ORDER BY expires_at
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, domain.TopUpStatusPending, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list expired topups: %w", err)
	}
	defer rows.Close()

	var topups []domain.WalletTopUp
	for rows.Next() {
		t, err := scanTopUp(rows)
		if err != nil {
			return nil, err
		}
		topups = append(topups, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topup rows: %w", err)
	}
	return topups, nil
}

// MarkExpired expires a single row only if it is still pending and past its
// deadline. Safe for concurrent sweepers.
func (r *TopUpRepo) MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	query := `UPDATE wallet_topups SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3 AND expires_at <= $4`

	tag, err := r.pool.Exec(ctx, query, id, domain.TopUpStatusExpired, domain.TopUpStatusPending, now)
	if err != nil {
		return false, fmt.Errorf("mark topup expired: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanTopUp(row pgx.Row) (*domain.WalletTopUp, error) {
	var t domain.WalletTopUp
	err := row.Scan(
		&t.ID, &t.WalletID, &t.MerchantID, &t.Amount, &t.Fee, &t.NetAmount, &t.Currency,
		&t.Method, &t.Gateway, &t.Status, &t.PaymentInstructions, &t.BankReference,
		&t.GatewayReference, &t.FailureReason, &t.ExpiresAt, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan topup: %w", err)
	}
	return &t, nil
}
