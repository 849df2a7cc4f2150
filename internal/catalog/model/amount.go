package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxExponent bounds the decimal exponent accepted from typed input or the
// data file. Converting and comparing a decimal costs time proportional to
// its exponent.
const MaxExponent = 20

var ErrAmountRange = errors.New("number out of range")

// ParseAmount parses a decimal written with a dot separator, rejecting
// exponents beyond ±MaxExponent.
func ParseAmount(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, err
	}
	if e := d.Exponent(); e > MaxExponent || e < -MaxExponent {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrAmountRange, text)
	}
	return d, nil
}
