package domain

import (
	"github.com/google/uuid"

	"github.com/go-petr/pet-account/pkg/moneypkg"
)

// AccountView is a point in time snapshot of an Account.
type AccountView struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Balance string    `json:"balance"`
}

// View returns a snapshot of the account.
func (a *Account) View() AccountView {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.viewLocked()
}

// viewLocked is View for callers already holding a.mu.
func (a *Account) viewLocked() AccountView {
	return AccountView{
		ID:      a.id,
		Email:   a.email,
		Balance: moneypkg.Format(a.balance),
	}
}

// ValidationResult reports the outcome of the amount and email predicates.
type ValidationResult struct {
	EmailValid  bool `json:"email_valid"`
	AmountValid bool `json:"amount_valid"`
}
