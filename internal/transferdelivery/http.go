// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/internal/transferservice"
	"github.com/go-wallet/walletd/pkg/errorspkg"
	"github.com/go-wallet/walletd/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error)
	TransferByUsername(ctx context.Context, fromUsername, toUsername, amount, description string) (domain.TransferTxResult, error)
	ThirdPartyPayment(ctx context.Context, arg transferservice.ThirdPartyParams) (domain.ThirdPartyTxResult, error)
	ThirdPartyReceipt(ctx context.Context, arg transferservice.ThirdPartyParams) (domain.ThirdPartyTxResult, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{service: ts}
}

type transferData struct {
	Transfer domain.TransferTxResult `json:"transfer"`
}

// insufficientFundsResponse reports the balance rule violation together with
// the numbers the caller needs for display.
type insufficientFundsResponse struct {
	Error           string `json:"error"`
	CurrentBalance  string `json:"current_balance"`
	RequestedAmount string `json:"requested_amount"`
}

type createRequest struct {
	FromWalletID string `json:"from_wallet_id" binding:"required,uuid"`
	ToWalletID   string `json:"to_wallet_id" binding:"required,uuid"`
	Amount       string `json:"amount" binding:"required,amount"`
	Description  string `json:"description"`
}

// Create handles http request to transfer money between two wallets.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	result, err := h.service.Transfer(ctx, domain.CreateTransferParams{
		FromWalletID: req.FromWalletID,
		ToWalletID:   req.ToWalletID,
		Amount:       req.Amount,
		Description:  req.Description,
	})
	if err != nil {
		respondTransferError(gctx, l, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: transferData{result}})
}

type createByUsernameRequest struct {
	FromUsername string `json:"from_username" binding:"required,min=2,max=50"`
	ToUsername   string `json:"to_username" binding:"required,min=2,max=50"`
	Amount       string `json:"amount" binding:"required,amount"`
	Description  string `json:"description"`
}

// CreateByUsername handles http request to transfer money addressed by usernames.
func (h *Handler) CreateByUsername(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createByUsernameRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	result, err := h.service.TransferByUsername(ctx, req.FromUsername, req.ToUsername, req.Amount, req.Description)
	if err != nil {
		respondTransferError(gctx, l, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: transferData{result}})
}

type thirdPartyData struct {
	Wallet      domain.Wallet      `json:"wallet"`
	Transaction domain.Transaction `json:"transaction"`
}

type thirdPartyRequest struct {
	WalletID    string `json:"wallet_id" binding:"omitempty,uuid"`
	Username    string `json:"username" binding:"omitempty,min=2,max=50"`
	Amount      string `json:"amount" binding:"required,amount"`
	PartyID     string `json:"third_party_id" binding:"required"`
	PartyName   string `json:"third_party_name" binding:"required"`
	Description string `json:"description"`
}

func (r thirdPartyRequest) params() transferservice.ThirdPartyParams {
	return transferservice.ThirdPartyParams{
		WalletID:    r.WalletID,
		Username:    r.Username,
		Amount:      r.Amount,
		PartyID:     r.PartyID,
		PartyName:   r.PartyName,
		Description: r.Description,
	}
}

// Payment handles http request to pay an external third party from a wallet.
func (h *Handler) Payment(gctx *gin.Context) {
	h.thirdParty(gctx, h.service.ThirdPartyPayment)
}

// Receipt handles http request to credit a wallet from an external third party.
func (h *Handler) Receipt(gctx *gin.Context) {
	h.thirdParty(gctx, h.service.ThirdPartyReceipt)
}

func (h *Handler) thirdParty(gctx *gin.Context, op func(context.Context, transferservice.ThirdPartyParams) (domain.ThirdPartyTxResult, error)) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req thirdPartyRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	result, err := op(ctx, req.params())
	if err != nil {
		respondTransferError(gctx, l, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: thirdPartyData{result.Wallet, result.Transaction}})
}

func respondTransferError(gctx *gin.Context, l *zerolog.Logger, err error) {
	l.Info().Err(err).Send()

	var insufficientErr *domain.InsufficientFundsError
	if errors.As(err, &insufficientErr) {
		gctx.JSON(http.StatusBadRequest, insufficientFundsResponse{
			Error:           domain.ErrInsufficientFunds.Error(),
			CurrentBalance:  insufficientErr.CurrentBalance,
			RequestedAmount: insufficientErr.RequestedAmount,
		})

		return
	}

	switch {
	case errors.Is(err, domain.ErrWalletNotFound), errors.Is(err, domain.ErrUserNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrSelfTransfer),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountPrecision),
		errors.Is(err, domain.ErrMissingThirdParty),
		errors.Is(err, domain.ErrInsufficientFunds):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return err.Error()
}
