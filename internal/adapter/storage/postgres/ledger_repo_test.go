package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerTestColumns() []string {
	return []string{
		"id", "transaction_id", "merchant_id", "currency", "account_type", "account_name",
		"entry_type", "amount", "description", "related_kind", "related_id", "posted_at",
	}
}

func newTestEntryPair(merchantID uuid.UUID) []domain.LedgerEntry {
	txID := uuid.New()
	postedAt := time.Now().UTC().Truncate(time.Microsecond)
	amount := decimal.RequireFromString("250.00")
	walletID := uuid.New()
	return []domain.LedgerEntry{
		{
			ID: uuid.New(), TransactionID: txID, MerchantID: merchantID,
			Currency: "KES", AccountType: domain.AccountTypeAssets,
			AccountName: domain.WalletAccountName(walletID),
			EntryType:   domain.EntryTypeDebit, Amount: amount,
			Description: "wallet top-up", RelatedKind: domain.RelatedWalletTopUp,
			PostedAt: postedAt,
		},
		{
			ID: uuid.New(), TransactionID: txID, MerchantID: merchantID,
			Currency: "KES", AccountType: domain.AccountTypeAssets,
			AccountName: domain.AccountGatewayClearing,
			EntryType:   domain.EntryTypeCredit, Amount: amount,
			Description: "wallet top-up", RelatedKind: domain.RelatedWalletTopUp,
			PostedAt: postedAt,
		},
	}
}

func TestLedgerRepo_InsertEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	merchantID := uuid.New()
	entries := newTestEntryPair(merchantID)

	mock.ExpectBegin()
	for _, e := range entries {
		kind := string(e.RelatedKind)
		mock.ExpectExec("INSERT INTO ledger_entries").
			WithArgs(e.ID, e.TransactionID, e.MerchantID, e.Currency, e.AccountType, e.AccountName,
				e.EntryType, e.Amount, e.Description, &kind, e.RelatedID, e.PostedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.InsertEntries(context.Background(), tx, entries)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Query_WithFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	merchantID := uuid.New()
	entries := newTestEntryPair(merchantID)
	e := entries[0]
	kind := string(e.RelatedKind)

	accountType := domain.AccountTypeAssets
	currency := "KES"

	rows := pgxmock.NewRows(ledgerTestColumns()).AddRow(
		e.ID, e.TransactionID, e.MerchantID, e.Currency, e.AccountType, e.AccountName,
		e.EntryType, e.Amount, e.Description, &kind, e.RelatedID, e.PostedAt,
	)

	mock.ExpectQuery("SELECT .+ FROM ledger_entries").
		WithArgs(merchantID, accountType, currency, 50).
		WillReturnRows(rows)

	result, err := repo.Query(context.Background(), ports.LedgerQueryParams{
		MerchantID:  merchantID,
		AccountType: &accountType,
		Currency:    &currency,
		Limit:       50,
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, e.ID, result[0].ID)
	assert.Equal(t, domain.RelatedWalletTopUp, result[0].RelatedKind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Query_CursorPagination(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	merchantID := uuid.New()
	cursorAt := time.Now().UTC().Truncate(time.Microsecond)
	cursorID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM ledger_entries").
		WithArgs(merchantID, cursorAt, cursorID, 25).
		WillReturnRows(pgxmock.NewRows(ledgerTestColumns()))

	result, err := repo.Query(context.Background(), ports.LedgerQueryParams{
		MerchantID:     merchantID,
		CursorPostedAt: &cursorAt,
		CursorEntryID:  &cursorID,
		Limit:          25,
	})
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_AggregateBalances(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	merchantID := uuid.New()

	rows := pgxmock.NewRows([]string{"account_type", "currency", "debit_total", "credit_total"}).
		AddRow(domain.AccountTypeAssets, "KES",
			decimal.RequireFromString("500.00"), decimal.RequireFromString("120.00")).
		AddRow(domain.AccountTypeFees, "KES",
			decimal.RequireFromString("12.50"), decimal.Zero)

	mock.ExpectQuery("SELECT account_type, currency").
		WithArgs(merchantID).
		WillReturnRows(rows)

	balances, err := repo.AggregateBalances(context.Background(), merchantID, nil)
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.True(t, balances[0].Net().Equal(decimal.RequireFromString("380.00")))
	assert.True(t, balances[1].Net().Equal(decimal.RequireFromString("12.50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_AccountNet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	merchantID := uuid.New()
	walletID := uuid.New()
	accountName := domain.WalletAccountName(walletID)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(merchantID, "KES", accountName).
		WillReturnRows(pgxmock.NewRows([]string{"net"}).AddRow(decimal.RequireFromString("840.25")))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	net, err := repo.AccountNet(context.Background(), tx, merchantID, "KES", accountName)
	require.NoError(t, err)
	assert.True(t, net.Equal(decimal.RequireFromString("840.25")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_SumsByTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	merchantID := uuid.New()
	txID := uuid.New()
	start := time.Now().Add(-24 * time.Hour)
	end := time.Now()

	rows := pgxmock.NewRows([]string{"transaction_id", "currency", "debit_total", "credit_total"}).
		AddRow(txID, "KES", decimal.RequireFromString("100.00"), decimal.RequireFromString("100.00"))

	mock.ExpectQuery("SELECT transaction_id, currency").
		WithArgs(merchantID, start, end).
		WillReturnRows(rows)

	sums, err := repo.SumsByTransaction(context.Background(), merchantID, start, end, nil)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, txID, sums[0].TransactionID)
	assert.True(t, sums[0].DebitTotal.Equal(sums[0].CreditTotal))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_PendingSettlements_SkipsNonPositive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	merchantID := uuid.New()
	maturedBefore := time.Now()

	rows := pgxmock.NewRows([]string{"currency", "pending"}).
		AddRow("KES", decimal.RequireFromString("320.00")).
		AddRow("USD", decimal.Zero)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT currency").
		WithArgs(merchantID, domain.AccountPendingSettlement, maturedBefore).
		WillReturnRows(rows)

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	pending, err := repo.PendingSettlements(context.Background(), tx, merchantID, maturedBefore)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.True(t, pending["KES"].Equal(decimal.RequireFromString("320.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
