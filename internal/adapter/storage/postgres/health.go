package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthChecker reports database liveness for the readiness endpoint.
type HealthChecker struct {
	pool *pgxpool.Pool
}

// NewHealthChecker creates a HealthChecker over the shared pool.
func NewHealthChecker(pool *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

func (h *HealthChecker) Name() string { return "postgres" }

func (h *HealthChecker) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}
