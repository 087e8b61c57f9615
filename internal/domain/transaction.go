package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidAmount indicates a malformed or non-positive amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrAmountPrecision indicates an amount with more than 2 fractional digits.
	ErrAmountPrecision = errors.New("amount supports at most 2 fractional digits")
	// ErrInvalidTransactionType indicates a type outside the allowed set.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	// ErrSelfTransfer indicates a transfer where sender and receiver are the same wallet.
	ErrSelfTransfer = errors.New("cannot transfer to the same wallet")
	// ErrInsufficientFunds indicates that the wallet balance does not cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrMissingThirdParty indicates a third-party operation without party id or name.
	ErrMissingThirdParty = errors.New("third party id and name are required")
)

// InsufficientFundsError carries the balance and the requested amount
// so the caller can display both.
type InsufficientFundsError struct {
	CurrentBalance  string
	RequestedAmount string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, requested %s", e.CurrentBalance, e.RequestedAmount)
}

// Unwrap lets callers match the error with errors.Is(err, ErrInsufficientFunds).
func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// TransactionType classifies balance-affecting events.
type TransactionType string

// Allowed transaction types.
const (
	TypeTransfer          TransactionType = "transfer"
	TypeInitialDeposit    TransactionType = "initial_deposit"
	TypeInterestCredit    TransactionType = "interest_credit"
	TypeInterestDebit     TransactionType = "interest_debit"
	TypeThirdPartyPayment TransactionType = "third_party_payment"
	TypeThirdPartyReceipt TransactionType = "third_party_receipt"
)

// ValidTransactionType reports whether t is in the allowed set.
func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TypeTransfer, TypeInitialDeposit, TypeInterestCredit,
		TypeInterestDebit, TypeThirdPartyPayment, TypeThirdPartyReceipt:
		return true
	}

	return false
}

// Transaction is an immutable record of a balance-affecting event.
// An empty FromWalletID denotes funds entering the system from outside;
// an empty ToWalletID denotes funds leaving it.
type Transaction struct {
	ID           string          `json:"id"`
	FromWalletID string          `json:"from_wallet_id,omitempty"`
	ToWalletID   string          `json:"to_wallet_id,omitempty"`
	Amount       string          `json:"amount"`
	Type         TransactionType `json:"type"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CreateTransactionParams is the input data for recording a transaction.
type CreateTransactionParams struct {
	FromWalletID string
	ToWalletID   string
	Amount       string
	Type         TransactionType
	Description  string
}

// ListTransactionsParams is the input data for the paginated wallet history query.
type ListTransactionsParams struct {
	WalletID string
	Type     TransactionType // empty means no type filter
	Limit    int32
	Offset   int32
}

// TransactionStats aggregates per-wallet transaction counts and sums.
type TransactionStats struct {
	TotalTransactions    int64  `json:"total_transactions"`
	TransferTransactions int64  `json:"transfer_transactions"`
	DepositTransactions  int64  `json:"deposit_transactions"`
	TotalSent            string `json:"total_sent"`
	TotalReceived        string `json:"total_received"`
}

// CreateTransferParams is the input data for the transfer transaction.
type CreateTransferParams struct {
	FromWalletID string `json:"from_wallet_id"`
	ToWalletID   string `json:"to_wallet_id"`
	Amount       string `json:"amount"`
	Description  string `json:"description"`
}

// TransferTxResult is the result of the transfer transaction.
type TransferTxResult struct {
	FromWallet  Wallet      `json:"from_wallet"`
	ToWallet    Wallet      `json:"to_wallet"`
	Transaction Transaction `json:"transaction"`
}

// ThirdPartyTxParams is the input data for third-party payment and receipt
// transactions. Only one wallet side exists; the counterpart is external.
type ThirdPartyTxParams struct {
	WalletID    string
	Amount      string
	PartyID     string
	PartyName   string
	Description string
}

// ThirdPartyTxResult is the result of a third-party payment or receipt.
type ThirdPartyTxResult struct {
	Wallet      Wallet      `json:"wallet"`
	Transaction Transaction `json:"transaction"`
}

// InterestRunResult reports the outcome of one interest accrual run.
type InterestRunResult struct {
	ProcessedCount int    `json:"processed_count"`
	TotalInterest  string `json:"total_interest"`
}
