package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("WAL_001", "Insufficient funds", http.StatusUnprocessableEntity)
	assert.Equal(t, "[WAL_001] Insufficient funds", e.Error())

	wrapped := Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, errors.New("connection refused"))
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("deadlock detected")
	e := ErrDatabaseError(inner)
	assert.True(t, errors.Is(e, inner))
}

func TestAppError_ErrorsAs(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("debit wallet: %w", ErrWalletFrozen("compliance review"))
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "WAL_002", appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
}

func TestErrorConstructors_CodesAndStatuses(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrInvalidAmount("must be positive"), "LED_001", http.StatusBadRequest},
		{ErrUnbalancedEntry("KES", "100", "90"), "LED_002", http.StatusBadRequest},
		{ErrNotFound("wallet"), "LED_003", http.StatusNotFound},
		{ErrUnknownCurrency("XXX"), "LED_004", http.StatusBadRequest},
		{ErrInsufficientFunds("100", "200"), "WAL_001", http.StatusUnprocessableEntity},
		{ErrWalletFrozen(""), "WAL_002", http.StatusConflict},
		{ErrDailyLimitExceeded("5000", "5000", "1"), "WAL_003", http.StatusUnprocessableEntity},
		{ErrMonthlyLimitExceeded("1", "2", "3"), "WAL_004", http.StatusUnprocessableEntity},
		{ErrDuplicateWallet("KES", "operating"), "WAL_005", http.StatusConflict},
		{ErrInsufficientBalance("0", "10"), "TRF_001", http.StatusUnprocessableEntity},
		{ErrCrossMerchantTransferDenied(), "TRF_002", http.StatusForbidden},
		{ErrCurrencyMismatch("KES", "USD"), "TRF_003", http.StatusBadRequest},
		{ErrInvalidStateTransition("top-up", "completed", "cancelled"), "STA_001", http.StatusConflict},
		{ErrMaxRetriesExceeded(3), "STA_002", http.StatusConflict},
		{ErrNoPricingConfig("mpesa", "mobile_money", "KES"), "FEE_001", http.StatusUnprocessableEntity},
		{ErrFeeExceedsAmount("10", "5"), "FEE_002", http.StatusUnprocessableEntity},
		{ErrLockTimeout(errors.New("timeout")), "SYS_002", http.StatusServiceUnavailable},
		{ErrStorageUnavailable(errors.New("down")), "SYS_003", http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestErrorMessages_CarryContext(t *testing.T) {
	e := ErrInsufficientFunds("1500.00", "2000.00")
	assert.Contains(t, e.Message, "1500.00")
	assert.Contains(t, e.Message, "2000.00")

	e = ErrDailyLimitExceeded("5000", "5000", "1")
	assert.Contains(t, e.Message, "used 5000 of 5000")
}
