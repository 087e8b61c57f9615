package interestdelivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/go-wallet/walletd/internal/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestRunAPI(t *testing.T) {
	testResult := domain.InterestRunResult{
		ProcessedCount: 12,
		TotalInterest:  "3.6",
	}

	testCases := []struct {
		name          string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "InternalError",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					AccrueAll(gomock.Any()).
					Times(1).
					Return(domain.InterestRunResult{}, errors.New("accrual failed"))
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					AccrueAll(gomock.Any()).
					Times(1).
					Return(testResult, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp struct {
					Data domain.InterestRunResult `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

				if diff := cmp.Diff(testResult, resp.Data); diff != "" {
					t.Errorf("interest run result mismatch (-want +got):\n%s", diff)
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
			server.POST("/interests/run", handler.Run)

			request, err := http.NewRequest(http.MethodPost, "/interests/run", nil)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}
