package domain

import (
	"github.com/shopspring/decimal"
)

// Currency is immutable reference data describing a settlement currency.
type Currency struct {
	Code          string `json:"code"`           // ISO 4217, 3 letters
	DecimalPlaces int32  `json:"decimal_places"` // 0, 2 or 3
	Active        bool   `json:"active"`
}

// CurrencyRegistry resolves currency metadata by code. It is read-only after
// construction and safe for concurrent use.
type CurrencyRegistry struct {
	currencies map[string]Currency
}

// NewCurrencyRegistry builds a registry from the given currencies.
func NewCurrencyRegistry(currencies []Currency) *CurrencyRegistry {
	m := make(map[string]Currency, len(currencies))
	for _, c := range currencies {
		m[c.Code] = c
	}
	return &CurrencyRegistry{currencies: m}
}

// DefaultCurrencyRegistry returns the registry of currencies the platform settles.
func DefaultCurrencyRegistry() *CurrencyRegistry {
	return NewCurrencyRegistry([]Currency{
		{Code: "KES", DecimalPlaces: 2, Active: true},
		{Code: "USD", DecimalPlaces: 2, Active: true},
		{Code: "EUR", DecimalPlaces: 2, Active: true},
		{Code: "GBP", DecimalPlaces: 2, Active: true},
		{Code: "ETB", DecimalPlaces: 2, Active: true},
		{Code: "NGN", DecimalPlaces: 2, Active: true},
		{Code: "TZS", DecimalPlaces: 2, Active: true},
		{Code: "UGX", DecimalPlaces: 0, Active: true},
		{Code: "GHS", DecimalPlaces: 2, Active: true},
		{Code: "ZAR", DecimalPlaces: 2, Active: true},
		{Code: "JPY", DecimalPlaces: 0, Active: true},
		{Code: "BHD", DecimalPlaces: 3, Active: true},
	})
}

// Get returns the currency for code, or false if unknown.
func (r *CurrencyRegistry) Get(code string) (Currency, bool) {
	c, ok := r.currencies[code]
	return c, ok
}

// IsActive reports whether code is a known, active currency.
func (r *CurrencyRegistry) IsActive(code string) bool {
	c, ok := r.currencies[code]
	return ok && c.Active
}

// Round rounds amount to the currency's minor-unit precision, half-up.
// Unknown codes round to 2 places.
func (r *CurrencyRegistry) Round(code string, amount decimal.Decimal) decimal.Decimal {
	places := int32(2)
	if c, ok := r.currencies[code]; ok {
		places = c.DecimalPlaces
	}
	// decimal.Round is half-away-from-zero; amounts here are non-negative,
	// which makes it equivalent to round-half-up.
	return amount.Round(places)
}
