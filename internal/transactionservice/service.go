// Package transactionservice manages business logic layer of transaction queries.
package transactionservice

import (
	"context"

	"github.com/go-wallet/walletd/internal/domain"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Get(ctx context.Context, id string) (domain.Transaction, error)
	ListByWallet(ctx context.Context, arg domain.ListTransactionsParams) ([]domain.Transaction, error)
	CountByWallet(ctx context.Context, walletID string, txType domain.TransactionType) (int64, error)
	Stats(ctx context.Context, walletID string) (domain.TransactionStats, error)
}

// WalletService provides the wallet lookup needed to reject queries for
// unknown wallets.
type WalletService interface {
	Get(ctx context.Context, id string) (domain.Wallet, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo          Repo
	walletService WalletService
}

// New returns transaction service struct to manage transaction queries.
func New(tr Repo, ws WalletService) *Service {
	return &Service{
		repo:          tr,
		walletService: ws,
	}
}

// Pagination describes the page of a transaction history response.
type Pagination struct {
	CurrentPage       int32 `json:"current_page"`
	TotalPages        int32 `json:"total_pages"`
	TotalTransactions int64 `json:"total_transactions"`
	PageSize          int32 `json:"page_size"`
	HasNextPage       bool  `json:"has_next_page"`
	HasPreviousPage   bool  `json:"has_previous_page"`
}

// Get returns the transaction with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.Transaction, error) {
	return s.repo.Get(ctx, id)
}

// History returns one page of the wallet's transactions, newest first,
// optionally filtered by type.
func (s *Service) History(ctx context.Context, walletID string, page, pageSize int32, txType domain.TransactionType) ([]domain.Transaction, Pagination, error) {
	if txType != "" && !domain.ValidTransactionType(txType) {
		return nil, Pagination{}, domain.ErrInvalidTransactionType
	}

	if _, err := s.walletService.Get(ctx, walletID); err != nil {
		return nil, Pagination{}, err
	}

	transactions, err := s.repo.ListByWallet(ctx, domain.ListTransactionsParams{
		WalletID: walletID,
		Type:     txType,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	})
	if err != nil {
		return nil, Pagination{}, err
	}

	total, err := s.repo.CountByWallet(ctx, walletID, txType)
	if err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int32((total + int64(pageSize) - 1) / int64(pageSize))

	pagination := Pagination{
		CurrentPage:       page,
		TotalPages:        totalPages,
		TotalTransactions: total,
		PageSize:          pageSize,
		HasNextPage:       page < totalPages,
		HasPreviousPage:   page > 1,
	}

	return transactions, pagination, nil
}

// Stats returns aggregate counts and sums for the wallet.
func (s *Service) Stats(ctx context.Context, walletID string) (domain.TransactionStats, error) {
	if _, err := s.walletService.Get(ctx, walletID); err != nil {
		return domain.TransactionStats{}, err
	}

	return s.repo.Stats(ctx, walletID)
}
