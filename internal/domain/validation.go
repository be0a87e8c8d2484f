package domain

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-account/pkg/moneypkg"
)

const (
	// maxAmountPlaces is the number of fractional digits an amount may carry.
	maxAmountPlaces = 2

	// maxBMPRune is the largest rune that fits a single UTF-16 code unit.
	maxBMPRune = '\uFFFF'
)

// IsAmountValid reports whether amount is a non-negative value with at most two
// fractional digits. Trailing zeros do not count, so 1.100 is valid.
func IsAmountValid(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		return false
	}

	return amount.Equal(amount.Truncate(maxAmountPlaces))
}

// normalizeAmount drops trailing zeros past the second fractional digit of a
// valid amount, so 1.100 is stored as 1.10.
func normalizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Truncate(maxAmountPlaces)
}

// IsFloatAmountValid is IsAmountValid for float64 input. The float is read as its
// shortest decimal representation, so 100.11 is valid and 100.111 is not.
func IsFloatAmountValid(amount float64) bool {
	d, err := moneypkg.FromFloat(amount)
	if err != nil {
		return false
	}

	return IsAmountValid(d)
}

// IsEmailValid reports whether email looks like local@domain.tld.
//
// This is a simplified structural check, not an RFC 5322 parser. Only ASCII
// control characters and spaces are trimmed, and letters and digits outside
// the Basic Multilingual Plane are rejected.
func IsEmailValid(email string) bool {
	email = trimEmail(email)
	if email == "" {
		return false
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return false
	}

	local, domain := email[:at], email[at+1:]
	if local == "" || domain == "" {
		return false
	}

	return isLocalPartValid(local) && isDomainValid(domain)
}

func isLocalPartValid(local string) bool {
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") ||
		strings.HasPrefix(local, "-") || strings.HasSuffix(local, "-") {
		return false
	}

	if strings.Contains(local, "..") {
		return false
	}

	for _, r := range local {
		if !isLetterOrDigit(r) && !strings.ContainsRune("._%+-", r) {
			return false
		}
	}

	return true
}

func isDomainValid(domain string) bool {
	if !strings.Contains(domain, ".") {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}

	last := len(labels) - 1

	for i, label := range labels {
		if label == "" {
			return false
		}

		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}

		if i == last {
			if !isTopLevelLabelValid(label) {
				return false
			}

			continue
		}

		for _, r := range label {
			if !isLetterOrDigit(r) && r != '-' {
				return false
			}
		}
	}

	return true
}

// isTopLevelLabelValid requires at least two letters and nothing else.
func isTopLevelLabelValid(label string) bool {
	n := 0

	for _, r := range label {
		if r > maxBMPRune || !unicode.IsLetter(r) {
			return false
		}
		n++
	}

	return n >= 2
}

func isLetterOrDigit(r rune) bool {
	if r > maxBMPRune {
		return false
	}

	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// trimEmail strips leading and trailing runes up to and including U+0020.
// Unicode spaces such as U+00A0 are kept.
func trimEmail(email string) string {
	return strings.TrimFunc(email, func(r rune) bool {
		return r <= ' '
	})
}
