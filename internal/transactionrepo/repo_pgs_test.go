package transactionrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/pkg/configpkg"
	"github.com/go-wallet/walletd/pkg/randompkg"
)

var (
	testRepo *RepoPGS
	testDB   *sql.DB
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err = sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)

	os.Exit(m.Run())
}

// createRandomWallet inserts directly to keep this package free of the wallet
// repository import.
func createRandomWallet(t *testing.T, balance string) domain.Wallet {
	const query = `
	INSERT INTO wallets (id, username, balance)
	VALUES (gen_random_uuid(), $1, $2)
	RETURNING id, username, balance, created_at, updated_at
	`

	var w domain.Wallet

	err := testDB.QueryRowContext(context.Background(), query, randompkg.Username(), balance).
		Scan(&w.ID, &w.Username, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	require.NoError(t, err)

	return w
}

func createRandomTransfer(t *testing.T, from, to domain.Wallet, amount string) domain.Transaction {
	transaction, err := testRepo.Create(context.Background(), domain.CreateTransactionParams{
		FromWalletID: from.ID,
		ToWalletID:   to.ID,
		Amount:       amount,
		Type:         domain.TypeTransfer,
		Description:  "transfer from " + from.Username + " to " + to.Username,
	})
	require.NoError(t, err)
	require.NotEmpty(t, transaction)

	require.Equal(t, from.ID, transaction.FromWalletID)
	require.Equal(t, to.ID, transaction.ToWalletID)
	require.Equal(t, amount, transaction.Amount)
	require.Equal(t, domain.TypeTransfer, transaction.Type)
	require.NotZero(t, transaction.ID)
	require.NotZero(t, transaction.CreatedAt)

	return transaction
}

func TestCreate(t *testing.T) {
	wallet1 := createRandomWallet(t, "1000")
	wallet2 := createRandomWallet(t, "1000")

	createRandomTransfer(t, wallet1, wallet2, "100")
}

func TestCreateOneSided(t *testing.T) {
	wallet := createRandomWallet(t, "1000")

	receipt, err := testRepo.Create(context.Background(), domain.CreateTransactionParams{
		ToWalletID:  wallet.ID,
		Amount:      "50",
		Type:        domain.TypeThirdPartyReceipt,
		Description: "receipt from Acme Corp (ID: acme-1)",
	})
	require.NoError(t, err)
	require.Empty(t, receipt.FromWalletID)
	require.Equal(t, wallet.ID, receipt.ToWalletID)

	payment, err := testRepo.Create(context.Background(), domain.CreateTransactionParams{
		FromWalletID: wallet.ID,
		Amount:       "25",
		Type:         domain.TypeThirdPartyPayment,
		Description:  "payment to Acme Corp (ID: acme-1)",
	})
	require.NoError(t, err)
	require.Equal(t, wallet.ID, payment.FromWalletID)
	require.Empty(t, payment.ToWalletID)
}

func TestCreateViolations(t *testing.T) {
	wallet := createRandomWallet(t, "1000")

	testCases := []struct {
		name    string
		arg     domain.CreateTransactionParams
		wantErr error
	}{
		{
			name: "InvalidType",
			arg: domain.CreateTransactionParams{
				ToWalletID: wallet.ID,
				Amount:     "10",
				Type:       "withdrawal",
			},
			wantErr: domain.ErrInvalidTransactionType,
		},
		{
			name: "NonPositiveAmount",
			arg: domain.CreateTransactionParams{
				ToWalletID: wallet.ID,
				Amount:     "0",
				Type:       domain.TypeThirdPartyReceipt,
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "UnknownWallet",
			arg: domain.CreateTransactionParams{
				ToWalletID: "00000000-0000-0000-0000-000000000000",
				Amount:     "10",
				Type:       domain.TypeThirdPartyReceipt,
			},
			wantErr: domain.ErrWalletNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			transaction, err := testRepo.Create(context.Background(), tc.arg)
			require.ErrorIs(t, err, tc.wantErr)
			require.Empty(t, transaction)
		})
	}
}

func TestGet(t *testing.T) {
	wallet1 := createRandomWallet(t, "1000")
	wallet2 := createRandomWallet(t, "1000")
	transaction := createRandomTransfer(t, wallet1, wallet2, "100")

	got, err := testRepo.Get(context.Background(), transaction.ID)
	require.NoError(t, err)
	require.Equal(t, transaction.ID, got.ID)
	require.Equal(t, transaction.Amount, got.Amount)

	_, err = testRepo.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestListByWallet(t *testing.T) {
	wallet1 := createRandomWallet(t, "1000")
	wallet2 := createRandomWallet(t, "1000")

	for i := 0; i < 3; i++ {
		createRandomTransfer(t, wallet1, wallet2, "10")
	}

	_, err := testRepo.Create(context.Background(), domain.CreateTransactionParams{
		ToWalletID: wallet1.ID,
		Amount:     "5",
		Type:       domain.TypeThirdPartyReceipt,
	})
	require.NoError(t, err)

	all, err := testRepo.ListByWallet(context.Background(), domain.ListTransactionsParams{
		WalletID: wallet1.ID,
		Limit:    10,
	})
	require.NoError(t, err)
	require.Len(t, all, 4)

	for i := 1; i < len(all); i++ {
		require.False(t, all[i-1].CreatedAt.Before(all[i].CreatedAt), "transactions not newest first")
	}

	transfersOnly, err := testRepo.ListByWallet(context.Background(), domain.ListTransactionsParams{
		WalletID: wallet1.ID,
		Type:     domain.TypeTransfer,
		Limit:    10,
	})
	require.NoError(t, err)
	require.Len(t, transfersOnly, 3)

	paged, err := testRepo.ListByWallet(context.Background(), domain.ListTransactionsParams{
		WalletID: wallet1.ID,
		Limit:    2,
		Offset:   2,
	})
	require.NoError(t, err)
	require.Len(t, paged, 2)
}

func TestCountByWallet(t *testing.T) {
	wallet1 := createRandomWallet(t, "1000")
	wallet2 := createRandomWallet(t, "1000")

	createRandomTransfer(t, wallet1, wallet2, "10")
	createRandomTransfer(t, wallet2, wallet1, "20")

	count, err := testRepo.CountByWallet(context.Background(), wallet1.ID, "")
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = testRepo.CountByWallet(context.Background(), wallet1.ID, domain.TypeInterestCredit)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestStats(t *testing.T) {
	wallet1 := createRandomWallet(t, "1000")
	wallet2 := createRandomWallet(t, "1000")

	createRandomTransfer(t, wallet1, wallet2, "100")
	createRandomTransfer(t, wallet2, wallet1, "40")

	_, err := testRepo.Create(context.Background(), domain.CreateTransactionParams{
		ToWalletID: wallet1.ID,
		Amount:     "500",
		Type:       domain.TypeInitialDeposit,
	})
	require.NoError(t, err)

	stats, err := testRepo.Stats(context.Background(), wallet1.ID)
	require.NoError(t, err)

	require.Equal(t, int64(3), stats.TotalTransactions)
	require.Equal(t, int64(2), stats.TransferTransactions)
	require.Equal(t, int64(1), stats.DepositTransactions)
	require.True(t, decimal.RequireFromString(stats.TotalSent).Equal(decimal.NewFromInt(100)))
	require.True(t, decimal.RequireFromString(stats.TotalReceived).Equal(decimal.NewFromInt(540)))
}

func TestStatsEmptyWallet(t *testing.T) {
	wallet := createRandomWallet(t, "0")

	stats, err := testRepo.Stats(context.Background(), wallet.ID)
	require.NoError(t, err)
	require.Zero(t, stats.TotalTransactions)
	require.True(t, decimal.RequireFromString(stats.TotalSent).IsZero())
	require.True(t, decimal.RequireFromString(stats.TotalReceived).IsZero())
}
