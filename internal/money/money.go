// Package money converts between user-entered amounts, integer cents and
// display strings. All arithmetic is exact decimal arithmetic.
package money

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAmount   = errors.New("amount is empty")
	ErrInvalidAmount = errors.New("amount is not a number")
	ErrAmountRange   = errors.New("amount is out of range")
)

// maxExponent bounds the decimal exponent of an accepted amount.
const maxExponent = 18

var (
	hundred  = decimal.NewFromInt(100)
	maxUnits = decimal.NewFromInt(math.MaxInt64 / 100)
)

// ParseAmount converts a decimal string in currency units ("10.50") to
// integer cents (1050). Fractions of a cent are rounded half away from zero.
// The sign is preserved; rejecting non-positive amounts is the caller's job.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmptyAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Rescaling to cents costs time proportional to the exponent.
	if e := d.Exponent(); e < -maxExponent || e > maxExponent {
		return 0, ErrAmountRange
	}
	if d.Abs().GreaterThanOrEqual(maxUnits) {
		return 0, ErrAmountRange
	}

	return d.Mul(hundred).Round(0).IntPart(), nil
}

// ToUnits returns cents as a decimal amount in currency units.
func ToUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCurrency renders cents as US dollars, e.g. 105000 -> "$1,050.00".
func FormatCurrency(cents int64) string {
	d := ToUnits(cents)

	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(groupThousands(whole))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
