package accountservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-account/internal/domain"
	"github.com/go-petr/pet-account/pkg/errorspkg"
	"github.com/go-petr/pet-account/pkg/randompkg"
)

func randomAccount(t *testing.T, balance string) *domain.Account {
	acc, err := domain.NewAccount(randompkg.Email(), decimal.RequireFromString(balance))
	require.NoError(t, err)

	return acc
}

func TestCreate(t *testing.T) {
	email := randompkg.Email()

	testCases := []struct {
		name            string
		email           string
		startingBalance string
		buildStubs      func(repo *MockRepo)
		checkResponse   func(t *testing.T, res domain.AccountView, err error)
	}{
		{
			name:            "OK",
			email:           "  " + email,
			startingBalance: "200",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(nil)
			},
			checkResponse: func(t *testing.T, res domain.AccountView, err error) {
				require.NoError(t, err)
				require.Equal(t, email, res.Email)
				require.Equal(t, "200.00", res.Balance)
				require.NotEqual(t, uuid.Nil, res.ID)
			},
		},
		{
			name:            "DefaultBalance",
			email:           email,
			startingBalance: "",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(nil)
			},
			checkResponse: func(t *testing.T, res domain.AccountView, err error) {
				require.NoError(t, err)
				require.Equal(t, "0.00", res.Balance)
			},
		},
		{
			name:            "UnparsableBalance",
			email:           email,
			startingBalance: "!@#$",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.AccountView, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInvalidStartingBalance)
			},
		},
		{
			name:            "NegativeBalance",
			email:           email,
			startingBalance: "-100",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.AccountView, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInvalidStartingBalance)
			},
		},
		{
			name:            "InvalidEmail",
			email:           "abc..def@mail.com",
			startingBalance: "100",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.AccountView, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInvalidEmail)
			},
		},
		{
			name:            "RepoErr",
			email:           email,
			startingBalance: "100",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1).Return(errorspkg.ErrInternal)
			},
			checkResponse: func(t *testing.T, res domain.AccountView, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			res, err := New(repo).Create(context.Background(), tc.email, tc.startingBalance)
			tc.checkResponse(t, res, err)
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	acc := randomAccount(t, "12.5")
	missing := uuid.New()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(acc.ID())).Times(1).Return(acc, nil)
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(missing)).Times(1).Return(nil, domain.ErrAccountNotFound)

	service := New(repo)

	got, err := service.Get(context.Background(), acc.ID())
	require.NoError(t, err)
	require.Equal(t, acc.View(), got)
	require.Equal(t, "12.50", got.Balance)

	_, err = service.Get(context.Background(), missing)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Remove(gomock.Any(), gomock.Eq(id)).Times(1).Return(nil)

	require.NoError(t, New(repo).Delete(context.Background(), id))
}

func TestDepositAndWithdraw(t *testing.T) {
	testCases := []struct {
		name        string
		withdraw    bool
		amount      string
		getTimes    int
		wantBalance string
		wantErr     error
	}{
		{name: "DepositOK", amount: "50.25", getTimes: 1, wantBalance: "250.25"},
		{name: "DepositNegative", amount: "-1", getTimes: 1, wantBalance: "200.00", wantErr: domain.ErrInvalidAmount},
		{name: "DepositUnparsable", amount: "abc", getTimes: 0, wantBalance: "200.00", wantErr: domain.ErrInvalidAmount},
		{name: "WithdrawOK", withdraw: true, amount: "100", getTimes: 1, wantBalance: "100.00"},
		{name: "WithdrawAll", withdraw: true, amount: "200", getTimes: 1, wantBalance: "0.00"},
		{name: "WithdrawTooMuch", withdraw: true, amount: "300", getTimes: 1, wantBalance: "200.00", wantErr: domain.ErrInsufficientFunds},
		{name: "WithdrawTooPrecise", withdraw: true, amount: "1.001", getTimes: 1, wantBalance: "200.00", wantErr: domain.ErrInvalidAmount},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			acc := randomAccount(t, "200")

			repo := NewMockRepo(ctrl)
			repo.EXPECT().Get(gomock.Any(), gomock.Eq(acc.ID())).Times(tc.getTimes).Return(acc, nil)

			service := New(repo)

			var (
				res domain.AccountView
				err error
			)

			if tc.withdraw {
				res, err = service.Withdraw(context.Background(), acc.ID(), tc.amount)
			} else {
				res, err = service.Deposit(context.Background(), acc.ID(), tc.amount)
			}

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, res)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantBalance, res.Balance)
			}

			require.Equal(t, tc.wantBalance, acc.View().Balance)
		})
	}
}

func TestDepositAccountNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(id)).Times(1).Return(nil, domain.ErrAccountNotFound)

	_, err := New(repo).Deposit(context.Background(), id, "10")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	service := New(nil)

	require.Equal(t, domain.ValidationResult{EmailValid: true, AmountValid: true}, service.Validate("a@b.com", "100.11"))
	require.Equal(t, domain.ValidationResult{EmailValid: false, AmountValid: false}, service.Validate("user@domain.c", "100.111"))
	require.Equal(t, domain.ValidationResult{EmailValid: true, AmountValid: false}, service.Validate("a@b.com", "NaN"))
}
