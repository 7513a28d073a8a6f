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

const disbursementColumns = `id, batch_id, wallet_id, merchant_id, beneficiary_id,
		amount, fee_amount, net_amount, currency, status, payout_method, gateway,
		reference, retry_count, failure_reason, gateway_response,
		processed_at, completed_at, failed_at, created_at, updated_at`

// DisbursementRepo implements ports.DisbursementRepository.
type DisbursementRepo struct {
	pool Pool
}

// NewDisbursementRepo creates a new DisbursementRepo.
func NewDisbursementRepo(pool Pool) *DisbursementRepo {
	return &DisbursementRepo{pool: pool}
}

func (r *DisbursementRepo) CreateBatch(ctx context.Context, tx pgx.Tx, b *domain.DisbursementBatch) error {
	query := `INSERT INTO disbursement_batches
		(id, wallet_id, merchant_id, name, status, total_amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		b.ID, b.WalletID, b.MerchantID, b.Name, b.Status, b.TotalAmount, b.Currency, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert disbursement batch: %w", err)
	}
	return nil
}

func (r *DisbursementRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.Disbursement) error {
	query := `INSERT INTO disbursements (` + disbursementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21)`

	_, err := tx.Exec(ctx, query,
		d.ID, d.BatchID, d.WalletID, d.MerchantID, d.BeneficiaryID,
		d.Amount, d.FeeAmount, d.NetAmount, d.Currency, d.Status, d.PayoutMethod, d.Gateway,
		d.Reference, d.RetryCount, d.FailureReason, d.GatewayResponse,
		d.ProcessedAt, d.CompletedAt, d.FailedAt, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert disbursement: %w", err)
	}
	return nil
}

func (r *DisbursementRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Disbursement, error) {
	query := `SELECT ` + disbursementColumns + ` FROM disbursements WHERE id = $1`
	return scanDisbursement(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the payout row so state transitions serialize.
func (r *DisbursementRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Disbursement, error) {
	query := `SELECT ` + disbursementColumns + ` FROM disbursements WHERE id = $1 FOR UPDATE`
	d, err := scanDisbursement(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapLockError("lock disbursement", err)
	}
	return d, nil
}

// Update writes all mutable payout fields. Must run in the transaction that
// locked the row.
func (r *DisbursementRepo) Update(ctx context.Context, tx pgx.Tx, d *domain.Disbursement) error {
	query := `UPDATE disbursements SET
		status = $2, retry_count = $3, failure_reason = $4, gateway_response = $5,
		processed_at = $6, completed_at = $7, failed_at = $8, updated_at = NOW()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		d.ID, d.Status, d.RetryCount, d.FailureReason, d.GatewayResponse,
		d.ProcessedAt, d.CompletedAt, d.FailedAt,
	)
	if err != nil {
		return fmt.Errorf("update disbursement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("disbursement")
	}
	return nil
}

func (r *DisbursementRepo) GetBatch(ctx context.Context, id uuid.UUID) (*domain.DisbursementBatch, []domain.Disbursement, error) {
	var b domain.DisbursementBatch
	err := r.pool.QueryRow(ctx,
		`SELECT id, wallet_id, merchant_id, name, status, total_amount, currency, created_at
		FROM disbursement_batches WHERE id = $1`, id).
		Scan(&b.ID, &b.WalletID, &b.MerchantID, &b.Name, &b.Status, &b.TotalAmount, &b.Currency, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get batch: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+disbursementColumns+` FROM disbursements WHERE batch_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list batch lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.Disbursement
	for rows.Next() {
		d, err := scanDisbursement(rows)
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate batch lines: %w", err)
	}
	return &b, lines, nil
}

func scanDisbursement(row pgx.Row) (*domain.Disbursement, error) {
	var d domain.Disbursement
	err := row.Scan(
		&d.ID, &d.BatchID, &d.WalletID, &d.MerchantID, &d.BeneficiaryID,
		&d.Amount, &d.FeeAmount, &d.NetAmount, &d.Currency, &d.Status, &d.PayoutMethod, &d.Gateway,
		&d.Reference, &d.RetryCount, &d.FailureReason, &d.GatewayResponse,
		&d.ProcessedAt, &d.CompletedAt, &d.FailedAt, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan disbursement: %w", err)
	}
	return &d, nil
}
