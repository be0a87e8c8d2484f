// Package moneypkg converts monetary amounts between their textual, float and decimal forms.
package moneypkg

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotANumber indicates that the input is not a finite decimal number.
	ErrNotANumber = errors.New("not a number")
	// ErrOutOfRange indicates a number too large or too precise to be an amount.
	ErrOutOfRange = errors.New("amount out of range")
)

const (
	// displayPlaces is the number of fractional digits used when formatting.
	displayPlaces = 2

	// Bounds on parsed amounts. Rescaling a decimal costs time and memory
	// proportional to its exponent, so 1e2000000000 must never get through.
	maxExponent = 18
	minExponent = -18
	maxDigits   = 20
)

// Parse reads s as an exact decimal. Numbers with more than 20 significant
// digits or an exponent outside [-18, 18] are rejected with ErrOutOfRange.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}

	if !inRange(d) {
		return decimal.Zero, ErrOutOfRange
	}

	return d, nil
}

func inRange(d decimal.Decimal) bool {
	if d.Exponent() > maxExponent || d.Exponent() < minExponent {
		return false
	}

	c := d.Coefficient()

	return len(c.Abs(c).String()) <= maxDigits
}

// FromFloat converts f to the shortest decimal that round trips to f.
func FromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, ErrNotANumber
	}

	return decimal.NewFromFloat(f), nil
}

// Format renders d with exactly two fractional digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(displayPlaces)
}
