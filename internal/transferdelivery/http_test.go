package transferdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/internal/transferservice"
	"github.com/go-wallet/walletd/pkg/errorspkg"
	"github.com/go-wallet/walletd/pkg/moneypkg"
	"github.com/go-wallet/walletd/pkg/randompkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("amount", moneypkg.ValidAmount); err != nil {
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func randomWallet(id string) domain.Wallet {
	return domain.Wallet{
		ID:        id,
		Username:  randompkg.Username(),
		Balance:   randompkg.MoneyAmountBetween(1000, 10_000),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreateTransferAPI(t *testing.T) {
	testWallet1 := randomWallet("f3b6f3f0-87cf-44a7-9f3f-dc2fca14c1fd")
	testWallet2 := randomWallet("7af1e0a7-5272-4a27-bf31-72e0cbb7e5a0")
	amount := "100"

	testTxResult := domain.TransferTxResult{
		FromWallet: testWallet1,
		ToWallet:   testWallet2,
		Transaction: domain.Transaction{
			FromWalletID: testWallet1.ID,
			ToWalletID:   testWallet2.ID,
			Amount:       amount,
			Type:         domain.TypeTransfer,
		},
	}

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "InvalidBindFromWalletID",
			requestBody: gin.H{
				"from_wallet_id": "not-a-uuid",
				"to_wallet_id":   testWallet2.ID,
				"amount":         amount,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InvalidBindAmount",
			requestBody: gin.H{
				"from_wallet_id": testWallet1.ID,
				"to_wallet_id":   testWallet2.ID,
				"amount":         "12.345",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "SelfTransfer",
			requestBody: gin.H{
				"from_wallet_id": testWallet1.ID,
				"to_wallet_id":   testWallet1.ID,
				"amount":         amount,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrSelfTransfer)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "WalletNotFound",
			requestBody: gin.H{
				"from_wallet_id": testWallet1.ID,
				"to_wallet_id":   testWallet2.ID,
				"amount":         amount,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrWalletNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "InsufficientFunds",
			requestBody: gin.H{
				"from_wallet_id": testWallet1.ID,
				"to_wallet_id":   testWallet2.ID,
				"amount":         "99999",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, &domain.InsufficientFundsError{
						CurrentBalance:  testWallet1.Balance,
						RequestedAmount: "99999",
					})
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				var resp insufficientFundsResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Equal(t, domain.ErrInsufficientFunds.Error(), resp.Error)
				require.Equal(t, testWallet1.Balance, resp.CurrentBalance)
				require.Equal(t, "99999", resp.RequestedAmount)
			},
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"from_wallet_id": testWallet1.ID,
				"to_wallet_id":   testWallet2.ID,
				"amount":         amount,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			requestBody: gin.H{
				"from_wallet_id": testWallet1.ID,
				"to_wallet_id":   testWallet2.ID,
				"amount":         amount,
				"description":    "lunch",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(domain.CreateTransferParams{
						FromWalletID: testWallet1.ID,
						ToWalletID:   testWallet2.ID,
						Amount:       amount,
						Description:  "lunch",
					})).
					Times(1).
					Return(testTxResult, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
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
			server.POST("/transfers", handler.Create)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestThirdPartyPaymentAPI(t *testing.T) {
	testWallet := randomWallet("f3b6f3f0-87cf-44a7-9f3f-dc2fca14c1fd")

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "MissingPartyName",
			requestBody: gin.H{
				"wallet_id":      testWallet.ID,
				"amount":         "50",
				"third_party_id": "acme-1",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().ThirdPartyPayment(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NoWalletReference",
			requestBody: gin.H{
				"amount":           "50",
				"third_party_id":   "acme-1",
				"third_party_name": "Acme Corp",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ThirdPartyPayment(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.ThirdPartyTxResult{}, domain.ErrWalletNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "OK",
			requestBody: gin.H{
				"wallet_id":        testWallet.ID,
				"amount":           "50",
				"third_party_id":   "acme-1",
				"third_party_name": "Acme Corp",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ThirdPartyPayment(gomock.Any(), gomock.Eq(transferservice.ThirdPartyParams{
						WalletID:  testWallet.ID,
						Amount:    "50",
						PartyID:   "acme-1",
						PartyName: "Acme Corp",
					})).
					Times(1).
					Return(domain.ThirdPartyTxResult{Wallet: testWallet}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
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
			server.POST("/third-party/payments", handler.Payment)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/third-party/payments", bytes.NewReader(body))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestThirdPartyReceiptAPI(t *testing.T) {
	testWallet := randomWallet("f3b6f3f0-87cf-44a7-9f3f-dc2fca14c1fd")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	handler := NewHandler(service)

	service.EXPECT().
		ThirdPartyReceipt(gomock.Any(), gomock.Eq(transferservice.ThirdPartyParams{
			Username:  testWallet.Username,
			Amount:    "75.25",
			PartyID:   "employer-1",
			PartyName: "Employer Inc",
		})).
		Times(1).
		Return(domain.ThirdPartyTxResult{Wallet: testWallet}, nil)

	server := gin.New()
	server.POST("/third-party/receipts", handler.Receipt)

	body, err := json.Marshal(gin.H{
		"username":         testWallet.Username,
		"amount":           "75.25",
		"third_party_id":   "employer-1",
		"third_party_name": "Employer Inc",
	})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/third-party/receipts", bytes.NewReader(body))
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code)
}
