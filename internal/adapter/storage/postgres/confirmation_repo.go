package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// ConfirmationRepo is the authoritative processed-confirmation log. The
// primary key on key makes concurrent duplicate deliveries collide at commit,
// leaving exactly one winner.
type ConfirmationRepo struct {
	pool Pool
}

// NewConfirmationRepo creates a new ConfirmationRepo.
func NewConfirmationRepo(pool Pool) *ConfirmationRepo {
	return &ConfirmationRepo{pool: pool}
}

// Create inserts the confirmation inside the caller's transaction. A unique
// violation maps to an invalid-transition error so the caller can fall back
// to the replay path.
func (r *ConfirmationRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.GatewayConfirmation) error {
	query := `INSERT INTO gateway_confirmations (key, related_kind, related_id, response_json, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, c.Key, c.RelatedKind, c.RelatedID, c.ResponseJSON, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.ErrInvalidStateTransition("confirmation", "processed", "processed")
		}
		return fmt.Errorf("insert confirmation: %w", err)
	}
	return nil
}

func (r *ConfirmationRepo) Get(ctx context.Context, key string) (*domain.GatewayConfirmation, error) {
	var c domain.GatewayConfirmation
	err := r.pool.QueryRow(ctx,
		`SELECT key, related_kind, related_id, response_json, created_at
		FROM gateway_confirmations WHERE key = $1`, key).
		Scan(&c.Key, &c.RelatedKind, &c.RelatedID, &c.ResponseJSON, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get confirmation: %w", err)
	}
	return &c, nil
}
