// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-account/internal/domain"
	"github.com/go-petr/pet-account/pkg/moneypkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Add(ctx context.Context, acc *domain.Account) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create opens an account for email. An empty startingBalance means zero.
func (s *Service) Create(ctx context.Context, email, startingBalance string) (domain.AccountView, error) {
	l := zerolog.Ctx(ctx)

	balance := decimal.Zero

	if startingBalance != "" {
		var err error

		balance, err = moneypkg.Parse(startingBalance)
		if err != nil {
			l.Info().Err(err).Str("starting_balance", startingBalance).Send()
			return domain.AccountView{}, domain.ErrInvalidStartingBalance
		}
	}

	acc, err := domain.NewAccount(email, balance)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.AccountView{}, err
	}

	if err := s.repo.Add(ctx, acc); err != nil {
		l.Error().Err(err).Send()
		return domain.AccountView{}, err
	}

	return acc.View(), nil
}

// Get returns the account with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.AccountView, error) {
	acc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.AccountView{}, err
	}

	return acc.View(), nil
}

// Delete closes the account with the given id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Remove(ctx, id)
}

// Deposit adds amount to the account with the given id.
func (s *Service) Deposit(ctx context.Context, id uuid.UUID, amount string) (domain.AccountView, error) {
	return s.apply(ctx, id, amount, (*domain.Account).DepositTx)
}

// Withdraw takes amount from the account with the given id.
func (s *Service) Withdraw(ctx context.Context, id uuid.UUID, amount string) (domain.AccountView, error) {
	return s.apply(ctx, id, amount, (*domain.Account).WithdrawTx)
}

func (s *Service) apply(ctx context.Context, id uuid.UUID, amount string,
	op func(*domain.Account, decimal.Decimal) (domain.AccountView, error),
) (domain.AccountView, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := moneypkg.Parse(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return domain.AccountView{}, domain.ErrInvalidAmount
	}

	acc, err := s.repo.Get(ctx, id)
	if err != nil {
		l.Info().Err(err).Str("account_id", id.String()).Send()
		return domain.AccountView{}, err
	}

	view, err := op(acc, amountDecimal)
	if err != nil {
		l.Info().Err(err).Str("account_id", id.String()).Send()
		return domain.AccountView{}, err
	}

	return view, nil
}

// Validate runs the email and amount predicates without touching any account.
func (s *Service) Validate(email, amount string) domain.ValidationResult {
	amountDecimal, err := moneypkg.Parse(amount)

	return domain.ValidationResult{
		EmailValid:  domain.IsEmailValid(email),
		AmountValid: err == nil && domain.IsAmountValid(amountDecimal),
	}
}
