package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"

	"github.com/google/uuid"
)

// ReportingRepo provides read-only aggregation inputs for fee analysis and
// anomaly detection.
type ReportingRepo struct {
	pool Pool
}

// NewReportingRepo creates a new ReportingRepo.
func NewReportingRepo(pool Pool) *ReportingRepo {
	return &ReportingRepo{pool: pool}
}

// FeeObservations returns every completed fee-bearing top-up and disbursement
// for a merchant in the window, oldest first.
func (r *ReportingRepo) FeeObservations(ctx context.Context, merchantID uuid.UUID, start, end time.Time) ([]ports.FeeObservation, error) {
	query := `SELECT related_kind, related_id, gateway, method, currency, amount, fee, occurred_at FROM (
			SELECT 'wallet_topup' AS related_kind, id AS related_id, gateway,
				method::text AS method, currency, amount, fee, completed_at AS occurred_at
			FROM wallet_topups
			WHERE merchant_id = $1 AND status = 'completed'
				AND completed_at >= $2 AND completed_at <= $3
			UNION ALL
			SELECT 'disbursement' AS related_kind, id AS related_id, gateway,
				payout_method AS method, currency, amount, fee_amount AS fee, completed_at AS occurred_at
			FROM disbursements
			WHERE merchant_id = $1 AND status = 'completed'
				AND completed_at >= $2 AND completed_at <= $3
		) obs ORDER BY occurred_at`

	rows, err := r.pool.Query(ctx, query, merchantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fee observations: %w", err)
	}
	defer rows.Close()

	var obs []ports.FeeObservation
	for rows.Next() {
		var o ports.FeeObservation
		var kind string
		if err := rows.Scan(&kind, &o.RelatedID, &o.Gateway, &o.Method, &o.Currency, &o.Amount, &o.Fee, &o.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan fee observation: %w", err)
		}
		o.RelatedKind = domain.RelatedKind(kind)
		obs = append(obs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fee observations: %w", err)
	}
	return obs, nil
}
