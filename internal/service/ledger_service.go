package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// LedgerServiceImpl implements ports.LedgerService: the append-only entry
// store plus the balance projector reading directly off it.
type LedgerServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	currencies *domain.CurrencyRegistry
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	ledgerRepo ports.LedgerRepository,
	currencies *domain.CurrencyRegistry,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		currencies: currencies,
		transactor: transactor,
		log:        log,
	}
}

// Post validates and persists a balanced entry set under one transaction id.
func (s *LedgerServiceImpl) Post(ctx context.Context, drafts []domain.EntryDraft) ([]domain.LedgerEntry, error) {
	for _, d := range drafts {
		if !s.currencies.IsActive(d.Currency) {
			return nil, apperror.ErrUnknownCurrency(d.Currency)
		}
	}

	entries, err := domain.BuildTransaction(uuid.New(), time.Now().UTC(), drafts)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.ledgerRepo.InsertEntries(ctx, dbTx, entries); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("insert entries: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("transaction_id", entries[0].TransactionID.String()).
		Int("entries", len(entries)).
		Msg("ledger transaction posted")

	return entries, nil
}

// ledgerCursor is the decoded pagination token.
type ledgerCursor struct {
	PostedAt time.Time `json:"posted_at"`
	EntryID  uuid.UUID `json:"entry_id"`
}

func encodeCursor(c ledgerCursor) string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(token string) (*ledgerCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, apperror.Validation("malformed cursor")
	}
	var c ledgerCursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, apperror.Validation("malformed cursor")
	}
	return &c, nil
}

// Query pages entries newest-first. The cursor is opaque to clients and
// encodes the (posted_at, entry_id) position of the last row served.
func (s *LedgerServiceImpl) Query(ctx context.Context, req ports.LedgerQueryRequest) (*ports.LedgerPage, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	params := ports.LedgerQueryParams{
		MerchantID:  req.MerchantID,
		AccountType: req.AccountType,
		EntryType:   req.EntryType,
		Currency:    req.Currency,
		From:        req.From,
		To:          req.To,
		Limit:       limit,
	}

	if req.Cursor != "" {
		c, err := decodeCursor(req.Cursor)
		if err != nil {
			return nil, err
		}
		params.CursorPostedAt = &c.PostedAt
		params.CursorEntryID = &c.EntryID
	}

	entries, err := s.ledgerRepo.Query(ctx, params)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("query ledger: %w", err))
	}

	page := &ports.LedgerPage{Entries: entries}
	if len(entries) == limit {
		last := entries[len(entries)-1]
		page.NextCursor = encodeCursor(ledgerCursor{PostedAt: last.PostedAt, EntryID: last.ID})
	}
	return page, nil
}

// GetBalances projects per-(account_type, currency) balances from the entry
// store.
func (s *LedgerServiceImpl) GetBalances(ctx context.Context, merchantID uuid.UUID, currency *string) ([]domain.AccountBalance, error) {
	if currency != nil && !s.currencies.IsActive(*currency) {
		return nil, apperror.ErrUnknownCurrency(*currency)
	}
	balances, err := s.ledgerRepo.AggregateBalances(ctx, merchantID, currency)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("aggregate balances: %w", err))
	}
	return balances, nil
}

// GetMerchantBalancesSummary rolls up the projection per currency. The
// merchant net balance is the signed total across asset accounts (funds the
// merchant holds anywhere on the platform); available and pending come from
// the two named settlement accounts.
func (s *LedgerServiceImpl) GetMerchantBalancesSummary(ctx context.Context, merchantID uuid.UUID) (*domain.BalancesSummary, error) {
	balances, err := s.ledgerRepo.AggregateBalances(ctx, merchantID, nil)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("aggregate balances: %w", err))
	}

	byCurrency := make(map[string][]domain.AccountBalance)
	for _, b := range balances {
		byCurrency[b.Currency] = append(byCurrency[b.Currency], b)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	summary := &domain.BalancesSummary{
		CurrencySummary: make(map[string]domain.CurrencySummary, len(byCurrency)),
	}
	for currency, accounts := range byCurrency {
		available, err := s.ledgerRepo.AccountNet(ctx, dbTx, merchantID, currency, domain.AccountMerchantAvailable)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("available net: %w", err))
		}
		pending, err := s.ledgerRepo.AccountNet(ctx, dbTx, merchantID, currency, domain.AccountPendingSettlement)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("pending net: %w", err))
		}

		cs := domain.CurrencySummary{
			Accounts:         accounts,
			AvailableBalance: available,
			PendingBalance:   pending,
		}
		for _, a := range accounts {
			if a.AccountType == domain.AccountTypeAssets {
				cs.MerchantNetBalance = cs.MerchantNetBalance.Add(a.Net())
			}
		}
		summary.CurrencySummary[currency] = cs
		summary.AvailableCurrencies = append(summary.AvailableCurrencies, currency)
	}
	sort.Strings(summary.AvailableCurrencies)
	summary.TotalCurrencies = len(summary.CurrencySummary)

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return summary, nil
}
