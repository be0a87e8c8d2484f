// Package domain provides defenitions of all entities.
package domain

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-account/pkg/moneypkg"
)

var (
	// ErrInvalidArgument is the kind of every error caused by malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientFunds indicates that a withdrawal exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that an account with the same id is already registered.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrInvalidEmail indicates a malformed account email.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email", ErrInvalidArgument)
	// ErrInvalidStartingBalance indicates a starting balance that is not a valid amount.
	ErrInvalidStartingBalance = fmt.Errorf("%w: invalid starting balance", ErrInvalidArgument)
	// ErrInvalidAmount indicates an amount that is negative, non-finite or too precise.
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrInvalidArgument)
	// ErrInvalidTarget indicates a missing transfer target.
	ErrInvalidTarget = fmt.Errorf("%w: invalid target account", ErrInvalidArgument)
	// ErrTransferExceedsBalance indicates a transfer amount that is not below the source balance.
	ErrTransferExceedsBalance = fmt.Errorf("%w: insufficient funds", ErrInvalidArgument)
)

// Account holds an email identified balance.
//
// The balance is never negative and never has more than two fractional digits.
// It changes only through Deposit, Withdraw and Transfer, each of which either
// applies fully or returns an error without touching any balance.
type Account struct {
	mu      sync.Mutex
	id      uuid.UUID
	email   string
	balance decimal.Decimal
}

// NewAccount validates email and startingBalance and returns a new account.
func NewAccount(email string, startingBalance decimal.Decimal) (*Account, error) {
	if !IsEmailValid(email) {
		return nil, ErrInvalidEmail
	}

	if !IsAmountValid(startingBalance) {
		return nil, ErrInvalidStartingBalance
	}

	return &Account{
		id:      uuid.New(),
		email:   trimEmail(email),
		balance: normalizeAmount(startingBalance),
	}, nil
}

// NewAccountWithZeroBalance returns a new account with an empty balance.
func NewAccountWithZeroBalance(email string) (*Account, error) {
	return NewAccount(email, decimal.Zero)
}

// ID returns the account identifier.
func (a *Account) ID() uuid.UUID {
	return a.id
}

// Email returns the trimmed account email.
func (a *Account) Email() string {
	return a.email
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	_, err := a.DepositTx(amount)
	return err
}

// DepositTx is Deposit returning the snapshot taken right after the deposit.
func (a *Account) DepositTx(amount decimal.Decimal) (AccountView, error) {
	if !IsAmountValid(amount) {
		return AccountView{}, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(normalizeAmount(amount))

	return a.viewLocked(), nil
}

// Withdraw subtracts amount from the balance. The whole balance may be withdrawn.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	_, err := a.WithdrawTx(amount)
	return err
}

// WithdrawTx is Withdraw returning the snapshot taken right after the withdrawal.
func (a *Account) WithdrawTx(amount decimal.Decimal) (AccountView, error) {
	if !IsAmountValid(amount) {
		return AccountView{}, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.GreaterThan(a.balance) {
		return AccountView{}, ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(normalizeAmount(amount))

	return a.viewLocked(), nil
}

// Transfer moves amount from a to target.
//
// Unlike Withdraw, the amount must be strictly less than the balance: moving
// the whole balance fails with ErrTransferExceedsBalance, which is an
// ErrInvalidArgument rather than an ErrInsufficientFunds.
func (a *Account) Transfer(target *Account, amount decimal.Decimal) error {
	_, err := a.TransferTx(target, amount)
	return err
}

// TransferTx is Transfer returning both accounts as they were while still locked.
func (a *Account) TransferTx(target *Account, amount decimal.Decimal) (TransferResult, error) {
	if target == nil {
		return TransferResult{}, ErrInvalidTarget
	}

	if !IsAmountValid(amount) {
		return TransferResult{}, ErrInvalidAmount
	}

	amount = normalizeAmount(amount)

	unlock := lockPair(a, target)
	defer unlock()

	if amount.GreaterThanOrEqual(a.balance) {
		return TransferResult{}, ErrTransferExceedsBalance
	}

	if target != a {
		a.balance = a.balance.Sub(amount)
		target.credit(amount)
	}

	return TransferResult{
		FromAccount: a.viewLocked(),
		ToAccount:   target.viewLocked(),
		Amount:      moneypkg.Format(amount),
	}, nil
}

// credit adds amount to the balance. The caller must hold a.mu.
func (a *Account) credit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// lockPair locks both accounts in id order and returns the matching unlock.
func lockPair(a, b *Account) func() {
	if a == b {
		a.mu.Lock()
		return a.mu.Unlock
	}

	first, second := a, b
	if bytes.Compare(b.id[:], a.id[:]) < 0 {
		first, second = b, a
	}

	first.mu.Lock()
	second.mu.Lock()

	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}
