package converter

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// amountInputRe is the grammar for amount input: empty, a lone decimal
// point, or an optionally-decimal non-negative number. Anything else is
// rejected and the previously stored amount is kept.
var amountInputRe = regexp.MustCompile(`^$|^\.$|^\d*\.?\d*$`)

// Fractional digits of the derived amount. Selling the base asset yields a
// quote amount rendered with 2 digits; selling the quote asset yields a
// base amount rendered with 6 digits.
const (
	QuotePrecision = 2
	BasePrecision  = 6
)

// ValidAmountInput reports whether s is acceptable amount input.
func ValidAmountInput(s string) bool {
	return amountInputRe.MatchString(s)
}

// ParseAmount parses raw amount input into a usable positive amount.
// Empty input, a lone decimal point, and non-positive values are not
// usable; ok is false for them.
func ParseAmount(raw string) (amount decimal.Decimal, ok bool) {
	if raw == "" || raw == "." {
		return decimal.Zero, false
	}

	// The input grammar allows "2." and ".5"; normalize before parsing.
	s := raw
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}

	amount, err := decimal.NewFromString(s)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// Derive computes the "to" amount for raw input sold in direction swapType
// at the given price of the base asset in quote units. Non-usable input
// yields an empty string.
func Derive(raw string, swapType models.SwapType, price decimal.Decimal) string {
	amount, ok := ParseAmount(raw)
	if !ok || !price.IsPositive() {
		return ""
	}

	if swapType.BaseToQuote() {
		return amount.Mul(price).StringFixed(QuotePrecision)
	}
	return amount.DivRound(price, BasePrecision).StringFixed(BasePrecision)
}

// Insufficient reports whether raw input exceeds the available balance.
// Non-usable input is never insufficient.
func Insufficient(raw string, available decimal.Decimal) bool {
	amount, ok := ParseAmount(raw)
	if !ok {
		return false
	}
	return amount.GreaterThan(available)
}

// MaxAmount renders the full available balance as amount input, used by
// the "Max" helper.
func MaxAmount(available decimal.Decimal) string {
	if !available.IsPositive() {
		return ""
	}
	return available.String()
}
