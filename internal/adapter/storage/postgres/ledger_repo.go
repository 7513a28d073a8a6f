package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const ledgerColumns = `id, transaction_id, merchant_id, currency, account_type, account_name,
		entry_type, amount, description, related_kind, related_id, posted_at`

// LedgerRepo implements ports.LedgerRepository over the append-only
// ledger_entries table. No update or delete statements exist here by design.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// InsertEntries persists an entry set inside the caller's transaction.
func (r *LedgerRepo) InsertEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	for _, e := range entries {
		var relatedKind *string
		if e.RelatedKind != domain.RelatedNone {
			k := string(e.RelatedKind)
			relatedKind = &k
		}
		_, err := tx.Exec(ctx, query,
			e.ID, e.TransactionID, e.MerchantID, e.Currency, e.AccountType, e.AccountName,
			e.EntryType, e.Amount, e.Description, relatedKind, e.RelatedID, e.PostedAt,
		)
		if err != nil {
			return fmt.Errorf("insert ledger entry: %w", err)
		}
	}
	return nil
}

// Query fetches a page of entries ordered by posted_at descending with the
// entry id as a deterministic tiebreak.
func (r *LedgerRepo) Query(ctx context.Context, params ports.LedgerQueryParams) ([]domain.LedgerEntry, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("merchant_id = $%d", argIdx))
	args = append(args, params.MerchantID)
	argIdx++

	if params.AccountType != nil {
		conditions = append(conditions, fmt.Sprintf("account_type = $%d", argIdx))
		args = append(args, *params.AccountType)
		argIdx++
	}
	if params.EntryType != nil {
		conditions = append(conditions, fmt.Sprintf("entry_type = $%d", argIdx))
		args = append(args, *params.EntryType)
		argIdx++
	}
	if params.Currency != nil {
		conditions = append(conditions, fmt.Sprintf("currency = $%d", argIdx))
		args = append(args, *params.Currency)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("posted_at >= $%d", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("posted_at <= $%d", argIdx))
		args = append(args, *params.To)
		argIdx++
	}
	if params.CursorPostedAt != nil && params.CursorEntryID != nil {
		conditions = append(conditions, fmt.Sprintf("(posted_at, id) < ($%d, $%d)", argIdx, argIdx+1))
		args = append(args, *params.CursorPostedAt, *params.CursorEntryID)
		argIdx += 2
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`SELECT `+ledgerColumns+` FROM ledger_entries
		WHERE %s ORDER BY posted_at DESC, id DESC LIMIT $%d`,
		strings.Join(conditions, " AND "), argIdx)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return entries, nil
}

// AggregateBalances sums debits and credits per account type and currency.
func (r *LedgerRepo) AggregateBalances(ctx context.Context, merchantID uuid.UUID, currency *string) ([]domain.AccountBalance, error) {
	var args []any
	args = append(args, merchantID)
	condition := "merchant_id = $1"
	if currency != nil {
		condition += " AND currency = $2"
		args = append(args, *currency)
	}

	query := fmt.Sprintf(`SELECT account_type, currency,
		COALESCE(SUM(amount) FILTER (WHERE entry_type = 'debit'), 0) AS debit_total,
		COALESCE(SUM(amount) FILTER (WHERE entry_type = 'credit'), 0) AS credit_total
		FROM ledger_entries WHERE %s
		GROUP BY account_type, currency
		ORDER BY currency, account_type`, condition)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate balances: %w", err)
	}
	defer rows.Close()

	var balances []domain.AccountBalance
	for rows.Next() {
		var b domain.AccountBalance
		if err := rows.Scan(&b.AccountType, &b.Currency, &b.DebitTotal, &b.CreditTotal); err != nil {
			return nil, fmt.Errorf("scan balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balance rows: %w", err)
	}
	return balances, nil
}

// AccountNet computes debit-minus-credit for one named account within the
// caller's transaction.
func (r *LedgerRepo) AccountNet(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, currency, accountName string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN entry_type = 'debit' THEN amount ELSE -amount END), 0)
		FROM ledger_entries
		WHERE merchant_id = $1 AND currency = $2 AND account_name = $3`

	var net decimal.Decimal
	if err := tx.QueryRow(ctx, query, merchantID, currency, accountName).Scan(&net); err != nil {
		return decimal.Zero, fmt.Errorf("account net: %w", err)
	}
	return net, nil
}

// SumsByTransaction re-sums entries grouped by transaction and currency.
func (r *LedgerRepo) SumsByTransaction(ctx context.Context, merchantID uuid.UUID, start, end time.Time, currency *string) ([]ports.TransactionSums, error) {
	var args []any
	args = append(args, merchantID, start, end)
	condition := "merchant_id = $1 AND posted_at >= $2 AND posted_at <= $3"
	if currency != nil {
		condition += " AND currency = $4"
		args = append(args, *currency)
	}

	query := fmt.Sprintf(`SELECT transaction_id, currency,
		COALESCE(SUM(amount) FILTER (WHERE entry_type = 'debit'), 0) AS debit_total,
		COALESCE(SUM(amount) FILTER (WHERE entry_type = 'credit'), 0) AS credit_total
		FROM ledger_entries WHERE %s
		GROUP BY transaction_id, currency`, condition)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sums by transaction: %w", err)
	}
	defer rows.Close()

	var sums []ports.TransactionSums
	for rows.Next() {
		var s ports.TransactionSums
		if err := rows.Scan(&s.TransactionID, &s.Currency, &s.DebitTotal, &s.CreditTotal); err != nil {
			return nil, fmt.Errorf("scan sums row: %w", err)
		}
		sums = append(sums, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sums rows: %w", err)
	}
	return sums, nil
}

// PendingSettlements returns the matured pending balance per currency for a
// merchant, inside the caller's transaction.
func (r *LedgerRepo) PendingSettlements(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, maturedBefore time.Time) (map[string]decimal.Decimal, error) {
	query := `SELECT currency,
		COALESCE(SUM(CASE WHEN entry_type = 'debit' THEN amount ELSE -amount END), 0) AS pending
		FROM ledger_entries
		WHERE merchant_id = $1 AND account_name = $2 AND posted_at <= $3
		GROUP BY currency`

	rows, err := tx.Query(ctx, query, merchantID, domain.AccountPendingSettlement, maturedBefore)
	if err != nil {
		return nil, fmt.Errorf("pending settlements: %w", err)
	}
	defer rows.Close()

	pending := make(map[string]decimal.Decimal)
	for rows.Next() {
		var currency string
		var amount decimal.Decimal
		if err := rows.Scan(&currency, &amount); err != nil {
			return nil, fmt.Errorf("scan pending row: %w", err)
		}
		if amount.IsPositive() {
			pending[currency] = amount
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending rows: %w", err)
	}
	return pending, nil
}

// MerchantsWithPending lists merchants holding a matured pending balance.
func (r *LedgerRepo) MerchantsWithPending(ctx context.Context, maturedBefore time.Time) ([]uuid.UUID, error) {
	query := `SELECT merchant_id FROM ledger_entries
		WHERE account_name = $1 AND posted_at <= $2
		GROUP BY merchant_id
		HAVING COALESCE(SUM(CASE WHEN entry_type = 'debit' THEN amount ELSE -amount END), 0) > 0`

	rows, err := r.pool.Query(ctx, query, domain.AccountPendingSettlement, maturedBefore)
	if err != nil {
		return nil, fmt.Errorf("merchants with pending: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan merchant id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate merchant ids: %w", err)
	}
	return ids, nil
}

func scanLedgerEntry(rows pgx.Rows) (domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	var relatedKind *string
	err := rows.Scan(
		&e.ID, &e.TransactionID, &e.MerchantID, &e.Currency, &e.AccountType, &e.AccountName,
		&e.EntryType, &e.Amount, &e.Description, &relatedKind, &e.RelatedID, &e.PostedAt,
	)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("scan ledger entry: %w", err)
	}
	if relatedKind != nil {
		e.RelatedKind = domain.RelatedKind(*relatedKind)
	}
	return e, nil
}
