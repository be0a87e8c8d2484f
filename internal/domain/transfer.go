package domain

import "github.com/google/uuid"

// CreateTransferParams is the input data for a transfer between two registered accounts.
type CreateTransferParams struct {
	FromAccountID uuid.UUID `json:"from_account_id"`
	ToAccountID   uuid.UUID `json:"to_account_id"`
	Amount        string    `json:"amount"`
}

// TransferResult is the result of a transfer between two accounts.
type TransferResult struct {
	FromAccount AccountView `json:"from_account"`
	ToAccount   AccountView `json:"to_account"`
	Amount      string      `json:"amount"`
}
