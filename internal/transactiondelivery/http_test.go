package transactiondelivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/internal/transactionservice"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func randomTransaction(walletID string) domain.Transaction {
	return domain.Transaction{
		ID:          uuid.New().String(),
		ToWalletID:  walletID,
		Amount:      "100",
		Type:        domain.TypeTransfer,
		CreatedAt:   time.Now().Truncate(time.Second).UTC(),
		Description: "transfer",
	}
}

func TestGetTransactionAPI(t *testing.T) {
	walletID := uuid.New().String()
	testTransaction := randomTransaction(walletID)

	testCases := []struct {
		name          string
		transactionID string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:          "InvalidID",
			transactionID: "not-a-uuid",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:          "NotFound",
			transactionID: testTransaction.ID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(testTransaction.ID)).
					Times(1).
					Return(domain.Transaction{}, domain.ErrTransactionNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:          "OK",
			transactionID: testTransaction.ID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(testTransaction.ID)).
					Times(1).
					Return(testTransaction, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp struct {
					Data getData `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

				if diff := cmp.Diff(testTransaction, resp.Data.Transaction); diff != "" {
					t.Errorf("transaction mismatch (-want +got):\n%s", diff)
				}
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			tc.buildStubs(service)

			server := gin.New()
			server.GET("/transactions/:id", handler.Get)

			url := fmt.Sprintf("/transactions/%v", tc.transactionID)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestHistoryAPI(t *testing.T) {
	walletID := uuid.New().String()
	testTransactions := []domain.Transaction{
		randomTransaction(walletID),
		randomTransaction(walletID),
	}
	testPagination := transactionservice.Pagination{
		CurrentPage:       1,
		TotalPages:        1,
		TotalTransactions: 2,
		PageSize:          20,
	}

	testCases := []struct {
		name          string
		url           string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "InvalidPage",
			url:  fmt.Sprintf("/wallets/%v/transactions?page=0", walletID),
			buildStubs: func(service *MockService) {
				service.EXPECT().History(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "PageSizeTooLarge",
			url:  fmt.Sprintf("/wallets/%v/transactions?page_size=500", walletID),
			buildStubs: func(service *MockService) {
				service.EXPECT().History(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "UnknownType",
			url:  fmt.Sprintf("/wallets/%v/transactions?type=bogus", walletID),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					History(gomock.Any(), gomock.Eq(walletID), gomock.Eq(int32(1)), gomock.Eq(int32(20)), gomock.Eq(domain.TransactionType("bogus"))).
					Times(1).
					Return(nil, transactionservice.Pagination{}, domain.ErrInvalidTransactionType)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "WalletNotFound",
			url:  fmt.Sprintf("/wallets/%v/transactions", walletID),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					History(gomock.Any(), gomock.Eq(walletID), gomock.Eq(int32(1)), gomock.Eq(int32(20)), gomock.Eq(domain.TransactionType(""))).
					Times(1).
					Return(nil, transactionservice.Pagination{}, domain.ErrWalletNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "OK",
			url:  fmt.Sprintf("/wallets/%v/transactions?page=1&page_size=20", walletID),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					History(gomock.Any(), gomock.Eq(walletID), gomock.Eq(int32(1)), gomock.Eq(int32(20)), gomock.Eq(domain.TransactionType(""))).
					Times(1).
					Return(testTransactions, testPagination, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp struct {
					Data historyData `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

				if diff := cmp.Diff(testTransactions, resp.Data.Transactions); diff != "" {
					t.Errorf("transactions mismatch (-want +got):\n%s", diff)
				}

				require.Equal(t, testPagination, resp.Data.Pagination)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			tc.buildStubs(service)

			server := gin.New()
			server.GET("/wallets/:id/transactions", handler.History)

			request, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestStatsAPI(t *testing.T) {
	walletID := uuid.New().String()
	testStats := domain.TransactionStats{
		TotalTransactions:    5,
		TransferTransactions: 3,
		DepositTransactions:  1,
		TotalSent:            "120",
		TotalReceived:        "640",
	}

	testCases := []struct {
		name          string
		walletID      string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:     "WalletNotFound",
			walletID: walletID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Stats(gomock.Any(), gomock.Eq(walletID)).
					Times(1).
					Return(domain.TransactionStats{}, domain.ErrWalletNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:     "InternalError",
			walletID: walletID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Stats(gomock.Any(), gomock.Eq(walletID)).
					Times(1).
					Return(domain.TransactionStats{}, errors.New("query failed"))
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name:     "OK",
			walletID: walletID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Stats(gomock.Any(), gomock.Eq(walletID)).
					Times(1).
					Return(testStats, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp struct {
					Data statsData `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Equal(t, testStats, resp.Data.Stats)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			tc.buildStubs(service)

			server := gin.New()
			server.GET("/wallets/:id/stats", handler.Stats)

			url := fmt.Sprintf("/wallets/%v/stats", tc.walletID)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}
