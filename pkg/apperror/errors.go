package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ledger (LED) ----

func ErrInvalidAmount(detail string) *AppError {
	return New("LED_001", fmt.Sprintf("Invalid amount: %s", detail), http.StatusBadRequest)
}

func ErrUnbalancedEntry(currency string, debits, credits string) *AppError {
	return New("LED_002",
		fmt.Sprintf("Unbalanced ledger transaction for %s: debits %s != credits %s", currency, debits, credits),
		http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("LED_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrUnknownCurrency(code string) *AppError {
	return New("LED_004", fmt.Sprintf("Unknown or inactive currency: %s", code), http.StatusBadRequest)
}

// ---- Wallet (WAL) ----

func ErrInsufficientFunds(available, requested string) *AppError {
	return New("WAL_001",
		fmt.Sprintf("Insufficient funds: available %s, requested %s", available, requested),
		http.StatusUnprocessableEntity)
}

func ErrWalletFrozen(reason string) *AppError {
	msg := "Wallet is frozen"
	if reason != "" {
		msg = fmt.Sprintf("Wallet is frozen: %s", reason)
	}
	return New("WAL_002", msg, http.StatusConflict)
}

func ErrDailyLimitExceeded(used, limit, requested string) *AppError {
	return New("WAL_003",
		fmt.Sprintf("Daily withdrawal limit exceeded: used %s of %s, requested %s", used, limit, requested),
		http.StatusUnprocessableEntity)
}

func ErrMonthlyLimitExceeded(used, limit, requested string) *AppError {
	return New("WAL_004",
		fmt.Sprintf("Monthly withdrawal limit exceeded: used %s of %s, requested %s", used, limit, requested),
		http.StatusUnprocessableEntity)
}

func ErrDuplicateWallet(currency, walletType string) *AppError {
	return New("WAL_005",
		fmt.Sprintf("An active %s wallet already exists for %s", walletType, currency),
		http.StatusConflict)
}

// ---- Transfers (TRF) ----

func ErrInsufficientBalance(available, requested string) *AppError {
	return New("TRF_001",
		fmt.Sprintf("Insufficient settled balance: available %s, requested %s", available, requested),
		http.StatusUnprocessableEntity)
}

func ErrCrossMerchantTransferDenied() *AppError {
	return New("TRF_002", "Transfers between different merchants are not permitted", http.StatusForbidden)
}

func ErrCurrencyMismatch(from, to string) *AppError {
	return New("TRF_003",
		fmt.Sprintf("Wallet currencies differ (%s vs %s); conversion requires the FX engine", from, to),
		http.StatusBadRequest)
}

func ErrSameWalletTransfer() *AppError {
	return New("TRF_004", "Source and destination wallets are the same", http.StatusBadRequest)
}

// ---- State machines (STA) ----

func ErrInvalidStateTransition(entity, from, to string) *AppError {
	return New("STA_001",
		fmt.Sprintf("Invalid %s state transition: %s -> %s", entity, from, to),
		http.StatusConflict)
}

func ErrMaxRetriesExceeded(attempts int) *AppError {
	return New("STA_002",
		fmt.Sprintf("Maximum retry attempts exceeded (%d)", attempts),
		http.StatusConflict)
}

// ---- Fees & pricing (FEE) ----

func ErrNoPricingConfig(gateway, method, currency string) *AppError {
	return New("FEE_001",
		fmt.Sprintf("No pricing configuration for gateway=%s method=%s currency=%s", gateway, method, currency),
		http.StatusUnprocessableEntity)
}

func ErrFeeExceedsAmount(fee, amount string) *AppError {
	return New("FEE_002",
		fmt.Sprintf("Calculated fee %s meets or exceeds amount %s", fee, amount),
		http.StatusUnprocessableEntity)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

func ErrStorageUnavailable(err error) *AppError {
	return Wrap("SYS_003", "Storage unavailable", http.StatusServiceUnavailable, err)
}

func ErrRateLimitExceeded() *AppError {
	return New("SYS_004", "Rate limit exceeded", http.StatusTooManyRequests)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("LED_001", message, http.StatusBadRequest)
}
