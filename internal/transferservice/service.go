// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-account/internal/domain"
	"github.com/go-petr/pet-account/pkg/moneypkg"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo Repo
}

// New return transfer service struct to manage transfer bussines logic.
func New(ar Repo) *Service {
	return &Service{
		repo: ar,
	}
}

// Transfer moves money between two registered accounts.
//
// An unknown destination is reported as domain.ErrInvalidTarget.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	amount, err := moneypkg.Parse(arg.Amount)
	if err != nil {
		l.Info().Err(err).Str("amount", arg.Amount).Send()
		return domain.TransferResult{}, domain.ErrInvalidAmount
	}

	fromAccount, err := s.repo.Get(ctx, arg.FromAccountID)
	if err != nil {
		l.Info().Err(err).Str("from_account_id", arg.FromAccountID.String()).Send()
		return domain.TransferResult{}, err
	}

	toAccount, err := s.repo.Get(ctx, arg.ToAccountID)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		l.Error().Err(err).Send()
		return domain.TransferResult{}, err
	}

	result, err := fromAccount.TransferTx(toAccount, amount)
	if err != nil {
		l.Info().Err(err).
			Str("from_account_id", arg.FromAccountID.String()).
			Str("to_account_id", arg.ToAccountID.String()).
			Send()

		return domain.TransferResult{}, err
	}

	return result, nil
}
