package bindingvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type request struct {
	Email  string `validate:"account_email"`
	Amount string `validate:"amount"`
}

func TestRegister(t *testing.T) {
	t.Parallel()

	v := validator.New()
	require.NoError(t, Register(v))

	testCases := []struct {
		name    string
		req     request
		wantErr bool
	}{
		{name: "OK", req: request{Email: "a@b.com", Amount: "100.11"}},
		{name: "BadEmail", req: request{Email: "user@domain", Amount: "1"}, wantErr: true},
		{name: "TooPrecise", req: request{Email: "a@b.com", Amount: "100.111"}, wantErr: true},
		{name: "Negative", req: request{Email: "a@b.com", Amount: "-1"}, wantErr: true},
		{name: "NotANumber", req: request{Email: "a@b.com", Amount: "NaN"}, wantErr: true},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := v.Struct(tc.req)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidAmountRejectsNonString(t *testing.T) {
	t.Parallel()

	v := validator.New()
	require.NoError(t, Register(v))

	require.Error(t, v.Var(100, "amount"))
	require.Error(t, v.Var(100, "account_email"))
}
