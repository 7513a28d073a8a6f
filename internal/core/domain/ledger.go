package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"
)

// AccountType classifies a ledger account.
type AccountType string

const (
	AccountTypeAssets      AccountType = "assets"
	AccountTypeLiabilities AccountType = "liabilities"
	AccountTypeRevenue     AccountType = "revenue"
	AccountTypeFees        AccountType = "fees"
	AccountTypeFXGains     AccountType = "fx_gains"
	AccountTypeFXLosses    AccountType = "fx_losses"
)

// DebitNormal reports whether the account type increases on debits
// (assets, fees, fx_losses). Credit-normal types increase on credits.
func (t AccountType) DebitNormal() bool {
	switch t {
	case AccountTypeAssets, AccountTypeFees, AccountTypeFXLosses:
		return true
	default:
		return false
	}
}

// EntryType distinguishes debit from credit postings.
type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

// RelatedKind tags the originating object of a ledger entry.
type RelatedKind string

const (
	RelatedNone         RelatedKind = ""
	RelatedDisbursement RelatedKind = "disbursement"
	RelatedWalletTopUp  RelatedKind = "wallet_topup"
	RelatedPayment      RelatedKind = "payment_transaction"
	RelatedTransfer     RelatedKind = "transfer"
)

// Well-known ledger account names.
const (
	AccountMerchantAvailable = "merchant_available"  // settled funds not yet swept into wallets
	AccountPendingSettlement = "pending_settlement"  // captured but unsettled funds
	AccountGatewayClearing   = "gateway_clearing"    // funds in flight at a payment gateway
	AccountPayoutClearing    = "payout_clearing"     // disbursement holds awaiting gateway confirmation
	AccountGatewayPayouts    = "gateway_payouts"     // funds handed to the payout gateway
	AccountProcessingFees    = "processing_fees"     // fee expense charged to the merchant
	AccountDisbursementFees  = "disbursement_fees"   // fee expense on payouts
)

// WalletAccountName returns the per-wallet asset account name.
func WalletAccountName(walletID uuid.UUID) string {
	return "wallet:" + walletID.String()
}

// LedgerEntry is one immutable debit or credit posting. Entries are created in
// balanced groups sharing a TransactionID and are never updated or deleted;
// corrections are reversing entries under a new transaction.
type LedgerEntry struct {
	ID            uuid.UUID       `json:"id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	MerchantID    uuid.UUID       `json:"merchant_id"`
	Currency      string          `json:"currency"`
	AccountType   AccountType     `json:"account_type"`
	AccountName   string          `json:"account_name"`
	EntryType     EntryType       `json:"entry_type"`
	Amount        decimal.Decimal `json:"amount"` // always positive
	Description   string          `json:"description"`
	RelatedKind   RelatedKind     `json:"related_kind,omitempty"`
	RelatedID     *uuid.UUID      `json:"related_id,omitempty"`
	PostedAt      time.Time       `json:"posted_at"`
}

// EntryDraft is an unposted ledger entry. ID and PostedAt are assigned by the
// store at commit time.
type EntryDraft struct {
	MerchantID  uuid.UUID
	Currency    string
	AccountType AccountType
	AccountName string
	EntryType   EntryType
	Amount      decimal.Decimal
	Description string
	RelatedKind RelatedKind
	RelatedID   *uuid.UUID
}

// BuildTransaction validates a draft set and materialises it into postable
// entries sharing transactionID. It enforces the double-entry invariant:
// at least two entries, strictly positive amounts, and per-currency
// sum(debits) == sum(credits).
func BuildTransaction(transactionID uuid.UUID, postedAt time.Time, drafts []EntryDraft) ([]LedgerEntry, error) {
	if len(drafts) < 2 {
		return nil, apperror.Validation("a ledger transaction requires at least two entries")
	}

	debits := make(map[string]decimal.Decimal)
	credits := make(map[string]decimal.Decimal)

	entries := make([]LedgerEntry, 0, len(drafts))
	for _, d := range drafts {
		if !d.Amount.IsPositive() {
			return nil, apperror.ErrInvalidAmount("ledger entry amounts must be positive")
		}
		switch d.EntryType {
		case EntryTypeDebit:
			debits[d.Currency] = debits[d.Currency].Add(d.Amount)
		case EntryTypeCredit:
			credits[d.Currency] = credits[d.Currency].Add(d.Amount)
		default:
			return nil, apperror.Validation("entry_type must be debit or credit")
		}

		entries = append(entries, LedgerEntry{
			ID:            uuid.New(),
			TransactionID: transactionID,
			MerchantID:    d.MerchantID,
			Currency:      d.Currency,
			AccountType:   d.AccountType,
			AccountName:   d.AccountName,
			EntryType:     d.EntryType,
			Amount:        d.Amount,
			Description:   d.Description,
			RelatedKind:   d.RelatedKind,
			RelatedID:     d.RelatedID,
			PostedAt:      postedAt,
		})
	}

	for currency, debit := range debits {
		if !debit.Equal(credits[currency]) {
			return nil, apperror.ErrUnbalancedEntry(currency, debit.String(), credits[currency].String())
		}
	}
	for currency, credit := range credits {
		if _, ok := debits[currency]; !ok {
			return nil, apperror.ErrUnbalancedEntry(currency, "0", credit.String())
		}
	}

	return entries, nil
}

// AccountBalance is the projected position of one account type in one currency.
type AccountBalance struct {
	AccountType AccountType     `json:"account_type"`
	Currency    string          `json:"currency"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`
}

// Net returns the signed balance using the account type's normal side:
// debit-normal accounts net debits minus credits, credit-normal the reverse.
func (b AccountBalance) Net() decimal.Decimal {
	if b.AccountType.DebitNormal() {
		return b.DebitTotal.Sub(b.CreditTotal)
	}
	return b.CreditTotal.Sub(b.DebitTotal)
}

// CurrencySummary aggregates a merchant's position in one currency.
type CurrencySummary struct {
	Accounts           []AccountBalance `json:"accounts"`
	MerchantNetBalance decimal.Decimal  `json:"merchant_net_balance"`
	AvailableBalance   decimal.Decimal  `json:"available_balance"`
	PendingBalance     decimal.Decimal  `json:"pending_balance"`
}

// BalancesSummary is the merchant-level roll-up across currencies.
type BalancesSummary struct {
	CurrencySummary     map[string]CurrencySummary `json:"currency_summary"`
	TotalCurrencies     int                        `json:"total_currencies"`
	AvailableCurrencies []string                   `json:"available_currencies"`
}
