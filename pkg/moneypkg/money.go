// Package moneypkg provides fixed-point monetary amount validation.
package moneypkg

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxFractionalDigits is the monetary precision accepted at the interface boundary.
const MaxFractionalDigits = 2

// Parse parses a caller-supplied monetary amount. The amount must be a
// positive decimal with at most MaxFractionalDigits fractional digits.
func Parse(amount string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, false
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, false
	}

	if d.Exponent() < -MaxFractionalDigits {
		return decimal.Decimal{}, false
	}

	return d, true
}

// IsValid reports whether amount is a positive decimal with at most 2 fractional digits.
func IsValid(amount string) bool {
	_, ok := Parse(amount)
	return ok
}

// ValidAmount implements validator.Func to use with the gin binding tag "amount".
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	if amount, ok := fl.Field().Interface().(string); ok {
		return IsValid(amount)
	}

	return false
}
