package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestIsAmountValid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		amount string
		want   bool
	}{
		{"0", true},
		{"100", true},
		{"100.1", true},
		{"100.11", true},
		{"100.110", true},
		{"1e20", true},
		{"100.111", false},
		{"0.001", false},
		{"-0.01", false},
		{"-100", false},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.amount, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, IsAmountValid(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestIsFloatAmountValid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		amount float64
		want   bool
	}{
		{"Integer", 200, true},
		{"TwoPlaces", 100.11, true},
		{"ThreePlaces", 100.111, false},
		{"BinaryArtifact", 0.1 + 0.2, false},
		{"NegativeZero", math.Copysign(0, -1), true},
		{"Negative", -100, false},
		{"NaN", math.NaN(), false},
		{"PositiveInf", math.Inf(1), false},
		{"NegativeInf", math.Inf(-1), false},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, IsFloatAmountValid(tc.amount))
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"1.100", "2.5", "100", "1e3", "0.000"} {
		got := normalizeAmount(decimal.RequireFromString(s))
		require.GreaterOrEqual(t, got.Exponent(), int32(-2), s)
		require.True(t, got.Equal(decimal.RequireFromString(s)), s)
	}
}

func TestIsEmailValid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"abc.def@mail.com", true},
		{"first_last+tag%x@sub-domain.example.org", true},
		{"  a@b.com  ", true},
		{"user@mail2.example.io", true},
		{"", false},
		{"   ", false},
		{"abc..def@mail.com", false},
		{"user@domain", false},
		{"user@-domain.com", false},
		{"user@domain-.com", false},
		{"user@domain.c", false},
		{"user@domain.c0m", false},
		{"user@domain.co-m", false},
		{"user@domain..com", false},
		{"user@.domain.com", false},
		{"user@domain.com.", false},
		{"user@dom_ain.com", false},
		{"@domain.com", false},
		{"user@", false},
		{"user@@domain.com", false},
		{"us@er@domain.com", false},
		{".user@domain.com", false},
		{"user.@domain.com", false},
		{"-user@domain.com", false},
		{"user-@domain.com", false},
		{"us er@domain.com", false},
		{"us!er@domain.com", false},
		{"\x00a@b.com\x1f", true},
		{"\u00a0a@b.com", false},
		{"a@b.com\u2003", false},
		{"j\u00fcrgen@b\u00fccher.de", true},
		{"a\U0001D49C@b.com", false},
		{"a@b.\U0001D49C\U0001D49C", false},
		{"a@\U0001D7D8x.com", false},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.email, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, IsEmailValid(tc.email))
		})
	}
}
