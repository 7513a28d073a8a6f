package integration

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Transactor ---

// memTransactor serializes transactions behind a single mutex, standing in
// for the row locks a real database takes. Every service path either commits
// or fails before mutating, so rollback not undoing writes is acceptable for
// these tests.
type memTransactor struct {
	mu sync.Mutex
}

func newMemTransactor() *memTransactor {
	return &memTransactor{}
}

func (t *memTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{release: t.mu.Unlock}, nil
}

// memTx is a pgx.Tx whose Commit and Rollback release the transactor mutex.
type memTx struct {
	release func()
	once    sync.Once
}

func (t *memTx) done()                                      { t.once.Do(t.release) }
func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error)  { return t, nil }
func (t *memTx) Commit(ctx context.Context) error           { t.done(); return nil }
func (t *memTx) Rollback(ctx context.Context) error         { t.done(); return nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }

// --- In-Memory Ledger Repo ---

type memLedgerRepo struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{}
}

func (r *memLedgerRepo) InsertEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entries...)
	return nil
}

func matchesQuery(e domain.LedgerEntry, params ports.LedgerQueryParams) bool {
	if e.MerchantID != params.MerchantID {
		return false
	}
	if params.AccountType != nil && e.AccountType != *params.AccountType {
		return false
	}
	if params.EntryType != nil && e.EntryType != *params.EntryType {
		return false
	}
	if params.Currency != nil && e.Currency != *params.Currency {
		return false
	}
	if params.From != nil && e.PostedAt.Before(*params.From) {
		return false
	}
	if params.To != nil && e.PostedAt.After(*params.To) {
		return false
	}
	if params.CursorPostedAt != nil && params.CursorEntryID != nil {
		// Keyset: (posted_at, id) strictly before the cursor.
		if e.PostedAt.After(*params.CursorPostedAt) {
			return false
		}
		if e.PostedAt.Equal(*params.CursorPostedAt) &&
			bytes.Compare(e.ID[:], (*params.CursorEntryID)[:]) >= 0 {
			return false
		}
	}
	return true
}

func (r *memLedgerRepo) Query(ctx context.Context, params ports.LedgerQueryParams) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.LedgerEntry
	for _, e := range r.entries {
		if matchesQuery(e, params) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].PostedAt.Equal(result[j].PostedAt) {
			return result[i].PostedAt.After(result[j].PostedAt)
		}
		return bytes.Compare(result[i].ID[:], result[j].ID[:]) > 0
	})

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *memLedgerRepo) AggregateBalances(ctx context.Context, merchantID uuid.UUID, currency *string) ([]domain.AccountBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type key struct {
		accountType domain.AccountType
		currency    string
	}
	sums := make(map[key]*domain.AccountBalance)
	for _, e := range r.entries {
		if e.MerchantID != merchantID {
			continue
		}
		if currency != nil && e.Currency != *currency {
			continue
		}
		k := key{accountType: e.AccountType, currency: e.Currency}
		b, ok := sums[k]
		if !ok {
			b = &domain.AccountBalance{AccountType: e.AccountType, Currency: e.Currency}
			sums[k] = b
		}
		if e.EntryType == domain.EntryTypeDebit {
			b.DebitTotal = b.DebitTotal.Add(e.Amount)
		} else {
			b.CreditTotal = b.CreditTotal.Add(e.Amount)
		}
	}

	balances := make([]domain.AccountBalance, 0, len(sums))
	for _, b := range sums {
		balances = append(balances, *b)
	}
	sort.Slice(balances, func(i, j int) bool {
		if balances[i].Currency != balances[j].Currency {
			return balances[i].Currency < balances[j].Currency
		}
		return balances[i].AccountType < balances[j].AccountType
	})
	return balances, nil
}

func (r *memLedgerRepo) AccountNet(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, currency, accountName string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	net := decimal.Zero
	for _, e := range r.entries {
		if e.MerchantID != merchantID || e.Currency != currency || e.AccountName != accountName {
			continue
		}
		if e.EntryType == domain.EntryTypeDebit {
			net = net.Add(e.Amount)
		} else {
			net = net.Sub(e.Amount)
		}
	}
	return net, nil
}

func (r *memLedgerRepo) SumsByTransaction(ctx context.Context, merchantID uuid.UUID, start, end time.Time, currency *string) ([]ports.TransactionSums, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type key struct {
		txID     uuid.UUID
		currency string
	}
	sums := make(map[key]*ports.TransactionSums)
	for _, e := range r.entries {
		if e.MerchantID != merchantID || e.PostedAt.Before(start) || e.PostedAt.After(end) {
			continue
		}
		if currency != nil && e.Currency != *currency {
			continue
		}
		k := key{txID: e.TransactionID, currency: e.Currency}
		s, ok := sums[k]
		if !ok {
			s = &ports.TransactionSums{TransactionID: e.TransactionID, Currency: e.Currency}
			sums[k] = s
		}
		if e.EntryType == domain.EntryTypeDebit {
			s.DebitTotal = s.DebitTotal.Add(e.Amount)
		} else {
			s.CreditTotal = s.CreditTotal.Add(e.Amount)
		}
	}

	result := make([]ports.TransactionSums, 0, len(sums))
	for _, s := range sums {
		result = append(result, *s)
	}
	return result, nil
}

func (r *memLedgerRepo) PendingSettlements(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, maturedBefore time.Time) (map[string]decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nets := make(map[string]decimal.Decimal)
	for _, e := range r.entries {
		if e.MerchantID != merchantID || e.AccountName != domain.AccountPendingSettlement || e.PostedAt.After(maturedBefore) {
			continue
		}
		if e.EntryType == domain.EntryTypeDebit {
			nets[e.Currency] = nets[e.Currency].Add(e.Amount)
		} else {
			nets[e.Currency] = nets[e.Currency].Sub(e.Amount)
		}
	}

	pending := make(map[string]decimal.Decimal)
	for currency, net := range nets {
		if net.IsPositive() {
			pending[currency] = net
		}
	}
	return pending, nil
}

func (r *memLedgerRepo) MerchantsWithPending(ctx context.Context, maturedBefore time.Time) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nets := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range r.entries {
		if e.AccountName != domain.AccountPendingSettlement || e.PostedAt.After(maturedBefore) {
			continue
		}
		if e.EntryType == domain.EntryTypeDebit {
			nets[e.MerchantID] = nets[e.MerchantID].Add(e.Amount)
		} else {
			nets[e.MerchantID] = nets[e.MerchantID].Sub(e.Amount)
		}
	}

	var ids []uuid.UUID
	for merchantID, net := range nets {
		if net.IsPositive() {
			ids = append(ids, merchantID)
		}
	}
	return ids, nil
}

// --- In-Memory Wallet Repo ---

type memWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.MerchantWallet
}

func newMemWalletRepo() *memWalletRepo {
	return &memWalletRepo{wallets: make(map[uuid.UUID]*domain.MerchantWallet)}
}

func (r *memWalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.MerchantWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *memWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MerchantWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *memWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.MerchantWallet, error) {
	return r.GetByID(ctx, id)
}

func (r *memWalletRepo) FindActive(ctx context.Context, merchantID uuid.UUID, currency string, walletType domain.WalletType) (*domain.MerchantWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.MerchantID == merchantID && w.Currency == currency && w.Type == walletType && w.Status == domain.WalletStatusActive {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memWalletRepo) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]domain.MerchantWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var wallets []domain.MerchantWallet
	for _, w := range r.wallets {
		if w.MerchantID == merchantID {
			wallets = append(wallets, *w)
		}
	}
	sort.Slice(wallets, func(i, j int) bool {
		if wallets[i].Currency != wallets[j].Currency {
			return wallets[i].Currency < wallets[j].Currency
		}
		return wallets[i].Type < wallets[j].Type
	})
	return wallets, nil
}

func (r *memWalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, w *domain.MerchantWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.wallets[w.ID]
	if !ok {
		return apperror.ErrNotFound("wallet")
	}
	stored.AvailableBalance = w.AvailableBalance
	stored.LockedBalance = w.LockedBalance
	stored.DailyWithdrawalUsed = w.DailyWithdrawalUsed
	stored.MonthlyWithdrawalUsed = w.MonthlyWithdrawalUsed
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memWalletRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.WalletStatus, freezeReason *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok {
		return apperror.ErrNotFound("wallet")
	}
	w.Status = status
	w.FreezeReason = freezeReason
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memWalletRepo) ListAutoSweep(ctx context.Context) ([]domain.MerchantWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var wallets []domain.MerchantWallet
	for _, w := range r.wallets {
		if w.AutoSweep && w.Status == domain.WalletStatusActive && w.SweepTargetWalletID != nil {
			wallets = append(wallets, *w)
		}
	}
	return wallets, nil
}

func (r *memWalletRepo) ResetDailyCounters(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, w := range r.wallets {
		if !w.DailyWithdrawalUsed.IsZero() {
			w.DailyWithdrawalUsed = decimal.Zero
			n++
		}
	}
	return n, nil
}

func (r *memWalletRepo) ResetMonthlyCounters(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, w := range r.wallets {
		if !w.MonthlyWithdrawalUsed.IsZero() {
			w.MonthlyWithdrawalUsed = decimal.Zero
			n++
		}
	}
	return n, nil
}

// --- In-Memory TopUp Repo ---

type memTopUpRepo struct {
	mu     sync.RWMutex
	topups map[uuid.UUID]*domain.WalletTopUp
}

func newMemTopUpRepo() *memTopUpRepo {
	return &memTopUpRepo{topups: make(map[uuid.UUID]*domain.WalletTopUp)}
}

func (r *memTopUpRepo) Create(ctx context.Context, t *domain.WalletTopUp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.topups[t.ID] = &cp
	return nil
}

func (r *memTopUpRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTopUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.topups[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTopUpRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletTopUp, error) {
	return r.GetByID(ctx, id)
}

func (r *memTopUpRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, gatewayRef string, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.topups[id]
	if !ok {
		return apperror.ErrNotFound("topup")
	}
	t.Status = domain.TopUpStatusCompleted
	t.GatewayReference = &gatewayRef
	t.CompletedAt = &completedAt
	t.UpdatedAt = completedAt
	return nil
}

func (r *memTopUpRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from []domain.TopUpStatus, to domain.TopUpStatus, failureReason *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.topups[id]
	if !ok {
		return false, nil
	}
	matched := false
	for _, s := range from {
		if t.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}
	t.Status = to
	t.FailureReason = failureReason
	t.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *memTopUpRepo) ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]domain.WalletTopUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var stale []domain.WalletTopUp
	for _, t := range r.topups {
		if t.Status == domain.TopUpStatusPending && !t.ExpiresAt.After(now) {
			stale = append(stale, *t)
		}
		if len(stale) >= limit {
			break
		}
	}
	return stale, nil
}

func (r *memTopUpRepo) MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.topups[id]
	if !ok || t.Status != domain.TopUpStatusPending || t.ExpiresAt.After(now) {
		return false, nil
	}
	t.Status = domain.TopUpStatusExpired
	t.UpdatedAt = now
	return true, nil
}

// --- In-Memory Disbursement Repo ---

type memDisbursementRepo struct {
	mu            sync.RWMutex
	batches       map[uuid.UUID]*domain.DisbursementBatch
	disbursements map[uuid.UUID]*domain.Disbursement
	order         []uuid.UUID
}

func newMemDisbursementRepo() *memDisbursementRepo {
	return &memDisbursementRepo{
		batches:       make(map[uuid.UUID]*domain.DisbursementBatch),
		disbursements: make(map[uuid.UUID]*domain.Disbursement),
	}
}

func (r *memDisbursementRepo) CreateBatch(ctx context.Context, tx pgx.Tx, b *domain.DisbursementBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.batches[b.ID] = &cp
	return nil
}

func (r *memDisbursementRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.Disbursement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.disbursements[d.ID] = &cp
	r.order = append(r.order, d.ID)
	return nil
}

func (r *memDisbursementRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Disbursement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.disbursements[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDisbursementRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Disbursement, error) {
	return r.GetByID(ctx, id)
}

func (r *memDisbursementRepo) Update(ctx context.Context, tx pgx.Tx, d *domain.Disbursement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.disbursements[d.ID]; !ok {
		return apperror.ErrNotFound("disbursement")
	}
	cp := *d
	r.disbursements[d.ID] = &cp
	return nil
}

func (r *memDisbursementRepo) GetBatch(ctx context.Context, id uuid.UUID) (*domain.DisbursementBatch, []domain.Disbursement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.batches[id]
	if !ok {
		return nil, nil, nil
	}
	batch := *b
	var lines []domain.Disbursement
	for _, did := range r.order {
		d := r.disbursements[did]
		if d.BatchID != nil && *d.BatchID == id {
			lines = append(lines, *d)
		}
	}
	return &batch, lines, nil
}

// --- In-Memory Beneficiary Repo ---

type memBeneficiaryRepo struct {
	mu            sync.RWMutex
	beneficiaries map[uuid.UUID]*domain.Beneficiary
}

func newMemBeneficiaryRepo() *memBeneficiaryRepo {
	return &memBeneficiaryRepo{beneficiaries: make(map[uuid.UUID]*domain.Beneficiary)}
}

func (r *memBeneficiaryRepo) add(b domain.Beneficiary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beneficiaries[b.ID] = &b
}

func (r *memBeneficiaryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Beneficiary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.beneficiaries[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

// --- In-Memory Pricing Repo ---

type memPricingRepo struct {
	mu      sync.RWMutex
	configs []domain.PricingConfig
}

func newMemPricingRepo() *memPricingRepo {
	return &memPricingRepo{}
}

func (r *memPricingRepo) add(cfg domain.PricingConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = append(r.configs, cfg)
}

func (r *memPricingRepo) GetMerchantPricing(ctx context.Context, merchantID uuid.UUID, gateway, method, currency string) (*domain.PricingConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cfg := range r.configs {
		if cfg.Active && cfg.MerchantID != nil && *cfg.MerchantID == merchantID &&
			cfg.GatewayCode == gateway && cfg.PaymentMethod == method && cfg.Currency == currency {
			cp := cfg
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPricingRepo) GetDefaultPricing(ctx context.Context, gateway, method, currency string, tier domain.PricingTier) (*domain.PricingConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cfg := range r.configs {
		if cfg.Active && cfg.MerchantID == nil && cfg.Tier == tier &&
			cfg.GatewayCode == gateway && cfg.PaymentMethod == method && cfg.Currency == currency {
			cp := cfg
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Reporting Repo ---

// memReportingRepo derives fee observations from the top-up and disbursement
// stores, mirroring the SQL union over completed rows.
type memReportingRepo struct {
	topups        *memTopUpRepo
	disbursements *memDisbursementRepo
}

func newMemReportingRepo(topups *memTopUpRepo, disbursements *memDisbursementRepo) *memReportingRepo {
	return &memReportingRepo{topups: topups, disbursements: disbursements}
}

func (r *memReportingRepo) FeeObservations(ctx context.Context, merchantID uuid.UUID, start, end time.Time) ([]ports.FeeObservation, error) {
	var obs []ports.FeeObservation

	r.topups.mu.RLock()
	for _, t := range r.topups.topups {
		if t.MerchantID != merchantID || t.Status != domain.TopUpStatusCompleted || t.CompletedAt == nil {
			continue
		}
		if t.CompletedAt.Before(start) || t.CompletedAt.After(end) {
			continue
		}
		obs = append(obs, ports.FeeObservation{
			RelatedKind: domain.RelatedWalletTopUp,
			RelatedID:   t.ID,
			Gateway:     t.Gateway,
			Method:      string(t.Method),
			Currency:    t.Currency,
			Amount:      t.Amount,
			Fee:         t.Fee,
			OccurredAt:  *t.CompletedAt,
		})
	}
	r.topups.mu.RUnlock()

	r.disbursements.mu.RLock()
	for _, d := range r.disbursements.disbursements {
		if d.MerchantID != merchantID || d.Status != domain.DisbursementStatusCompleted || d.CompletedAt == nil {
			continue
		}
		if d.CompletedAt.Before(start) || d.CompletedAt.After(end) {
			continue
		}
		obs = append(obs, ports.FeeObservation{
			RelatedKind: domain.RelatedDisbursement,
			RelatedID:   d.ID,
			Gateway:     d.Gateway,
			Method:      d.PayoutMethod,
			Currency:    d.Currency,
			Amount:      d.Amount,
			Fee:         d.FeeAmount,
			OccurredAt:  *d.CompletedAt,
		})
	}
	r.disbursements.mu.RUnlock()

	sort.Slice(obs, func(i, j int) bool {
		return obs[i].OccurredAt.Before(obs[j].OccurredAt)
	})
	return obs, nil
}

// --- In-Memory Confirmation Repo ---

type memConfirmationRepo struct {
	mu            sync.RWMutex
	confirmations map[string]*domain.GatewayConfirmation
}

func newMemConfirmationRepo() *memConfirmationRepo {
	return &memConfirmationRepo{confirmations: make(map[string]*domain.GatewayConfirmation)}
}

func (r *memConfirmationRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.GatewayConfirmation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.confirmations[c.Key]; exists {
		// Mirrors the primary key violation on gateway_confirmations.
		return apperror.ErrInvalidStateTransition("confirmation", "processed", "processed")
	}
	cp := *c
	r.confirmations[c.Key] = &cp
	return nil
}

func (r *memConfirmationRepo) Get(ctx context.Context, key string) (*domain.GatewayConfirmation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.confirmations[key]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
