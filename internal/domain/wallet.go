// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrWalletNotFound indicates that the wallet is not found.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrUserNotFound indicates that no wallet exists for the given username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken indicates that a wallet with the given username already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidUsername indicates that the username is outside the 2-50 character range.
	ErrInvalidUsername = errors.New("username must be between 2 and 50 characters")
	// ErrNegativeBalance indicates an attempt to set a negative balance.
	ErrNegativeBalance = errors.New("balance must be non-negative")
	// ErrWalletHasTransactions indicates that the wallet is referenced by transactions
	// and therefore cannot be deleted.
	ErrWalletHasTransactions = errors.New("wallet with transactions cannot be deleted")
)

// Wallet holds a user balance addressed by a unique username.
type Wallet struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateWalletParams is the input data for wallet creation.
type CreateWalletParams struct {
	Username       string `json:"username"`
	InitialBalance string `json:"initial_balance"`
}
