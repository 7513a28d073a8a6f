package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BeneficiaryRepo resolves payees for ownership checks.
type BeneficiaryRepo struct {
	pool Pool
}

// NewBeneficiaryRepo creates a new BeneficiaryRepo.
func NewBeneficiaryRepo(pool Pool) *BeneficiaryRepo {
	return &BeneficiaryRepo{pool: pool}
}

func (r *BeneficiaryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Beneficiary, error) {
	var b domain.Beneficiary
	err := r.pool.QueryRow(ctx,
		`SELECT id, merchant_id, name, active FROM beneficiaries WHERE id = $1`, id).
		Scan(&b.ID, &b.MerchantID, &b.Name, &b.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beneficiary: %w", err)
	}
	return &b, nil
}
