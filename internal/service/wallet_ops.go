package service

import (
	"github.com/wachira141/payment-gateway-sub003/internal/core/domain"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// applyCredit increases available balance on a locked wallet. Credits are
// permitted while frozen; freezing only blocks debits.
func applyCredit(w *domain.MerchantWallet, amount decimal.Decimal) {
	w.AvailableBalance = w.AvailableBalance.Add(amount)
}

// checkDebit enforces freeze state, sufficient funds and withdrawal limits
// against a locked wallet, without mutating it.
func checkDebit(w *domain.MerchantWallet, amount decimal.Decimal, purpose domain.DebitPurpose) error {
	if w.IsFrozen() {
		reason := ""
		if w.FreezeReason != nil {
			reason = *w.FreezeReason
		}
		return apperror.ErrWalletFrozen(reason)
	}
	if w.AvailableBalance.LessThan(amount) {
		return apperror.ErrInsufficientFunds(w.AvailableBalance.String(), amount.String())
	}
	if purpose.CountsAgainstLimits() {
		// A zero limit means unlimited.
		if w.DailyWithdrawalLimit.IsPositive() &&
			w.DailyWithdrawalUsed.Add(amount).GreaterThan(w.DailyWithdrawalLimit) {
			return apperror.ErrDailyLimitExceeded(
				w.DailyWithdrawalUsed.String(), w.DailyWithdrawalLimit.String(), amount.String())
		}
		if w.MonthlyWithdrawalLimit.IsPositive() &&
			w.MonthlyWithdrawalUsed.Add(amount).GreaterThan(w.MonthlyWithdrawalLimit) {
			return apperror.ErrMonthlyLimitExceeded(
				w.MonthlyWithdrawalUsed.String(), w.MonthlyWithdrawalLimit.String(), amount.String())
		}
	}
	return nil
}

// applyDebit decreases available balance and bumps the usage counters for
// withdrawal-type purposes. Callers run checkDebit first.
func applyDebit(w *domain.MerchantWallet, amount decimal.Decimal, purpose domain.DebitPurpose) {
	w.AvailableBalance = w.AvailableBalance.Sub(amount)
	if purpose.CountsAgainstLimits() {
		w.DailyWithdrawalUsed = w.DailyWithdrawalUsed.Add(amount)
		w.MonthlyWithdrawalUsed = w.MonthlyWithdrawalUsed.Add(amount)
	}
}

// lockFunds moves amount from available into the locked balance, bumping the
// usage counters for withdrawal-type purposes. Callers run checkDebit first.
func lockFunds(w *domain.MerchantWallet, amount decimal.Decimal, purpose domain.DebitPurpose) {
	w.AvailableBalance = w.AvailableBalance.Sub(amount)
	w.LockedBalance = w.LockedBalance.Add(amount)
	if purpose.CountsAgainstLimits() {
		w.DailyWithdrawalUsed = w.DailyWithdrawalUsed.Add(amount)
		w.MonthlyWithdrawalUsed = w.MonthlyWithdrawalUsed.Add(amount)
	}
}

// unlockFunds returns a held amount to the available balance.
func unlockFunds(w *domain.MerchantWallet, amount decimal.Decimal) {
	w.LockedBalance = w.LockedBalance.Sub(amount)
	w.AvailableBalance = w.AvailableBalance.Add(amount)
}

// settleHold removes a confirmed hold from the locked balance; the funds
// have left the platform.
func settleHold(w *domain.MerchantWallet, amount decimal.Decimal) {
	w.LockedBalance = w.LockedBalance.Sub(amount)
}

// walletCreditDrafts builds the balanced entry pair for a wallet credit:
// debit the wallet asset account, credit the contra account funds came from.
func walletCreditDrafts(w *domain.MerchantWallet, amount decimal.Decimal, contraName string, contraType domain.AccountType, description string, kind domain.RelatedKind, relatedID *uuid.UUID) []domain.EntryDraft {
	return []domain.EntryDraft{
		{
			MerchantID:  w.MerchantID,
			Currency:    w.Currency,
			AccountType: domain.AccountTypeAssets,
			AccountName: domain.WalletAccountName(w.ID),
			EntryType:   domain.EntryTypeDebit,
			Amount:      amount,
			Description: description,
			RelatedKind: kind,
			RelatedID:   relatedID,
		},
		{
			MerchantID:  w.MerchantID,
			Currency:    w.Currency,
			AccountType: contraType,
			AccountName: contraName,
			EntryType:   domain.EntryTypeCredit,
			Amount:      amount,
			Description: description,
			RelatedKind: kind,
			RelatedID:   relatedID,
		},
	}
}

// walletDebitDrafts builds the balanced entry pair for a wallet debit:
// credit the wallet asset account, debit the destination contra account.
func walletDebitDrafts(w *domain.MerchantWallet, amount decimal.Decimal, contraName string, contraType domain.AccountType, description string, kind domain.RelatedKind, relatedID *uuid.UUID) []domain.EntryDraft {
	return []domain.EntryDraft{
		{
			MerchantID:  w.MerchantID,
			Currency:    w.Currency,
			AccountType: contraType,
			AccountName: contraName,
			EntryType:   domain.EntryTypeDebit,
			Amount:      amount,
			Description: description,
			RelatedKind: kind,
			RelatedID:   relatedID,
		},
		{
			MerchantID:  w.MerchantID,
			Currency:    w.Currency,
			AccountType: domain.AccountTypeAssets,
			AccountName: domain.WalletAccountName(w.ID),
			EntryType:   domain.EntryTypeCredit,
			Amount:      amount,
			Description: description,
			RelatedKind: kind,
			RelatedID:   relatedID,
		},
	}
}
