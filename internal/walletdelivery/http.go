// Package walletdelivery manages delivery layer of wallets.
package walletdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-wallet/walletd/internal/domain"
	"github.com/go-wallet/walletd/pkg/errorspkg"
	"github.com/go-wallet/walletd/pkg/web"
)

// Service provides service layer interface needed by wallet delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package walletdelivery
type Service interface {
	Create(ctx context.Context, username, initialBalance string) (domain.Wallet, error)
	Get(ctx context.Context, id string) (domain.Wallet, error)
	GetByUsername(ctx context.Context, username string) (domain.Wallet, error)
	UpdateBalance(ctx context.Context, id, balance string) (domain.Wallet, error)
	Delete(ctx context.Context, id string) error
}

// Handler facilitates wallet delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns wallet handler.
func NewHandler(ws Service) *Handler {
	return &Handler{service: ws}
}

type data struct {
	Wallet domain.Wallet `json:"wallet"`
}

type createRequest struct {
	Username       string `json:"username" binding:"required,min=2,max=50"`
	InitialBalance string `json:"initial_balance" binding:"omitempty,amount"`
}

// Create handles http request to create a wallet.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	wallet, err := h.service.Create(ctx, req.Username, req.InitialBalance)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			gctx.JSON(http.StatusConflict, web.Error(err))
		case errors.Is(err, domain.ErrInvalidUsername),
			errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrAmountPrecision),
			errors.Is(err, domain.ErrNegativeBalance):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: data{wallet}})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles http request to get a wallet by id.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	wallet, err := h.service.Get(ctx, req.ID)
	if err != nil {
		respondLookupError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{wallet}})
}

type usernameRequest struct {
	Username string `uri:"username" binding:"required,min=2,max=50"`
}

// GetByUsername handles http request to get a wallet by username.
func (h *Handler) GetByUsername(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req usernameRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	wallet, err := h.service.GetByUsername(ctx, req.Username)
	if err != nil {
		respondLookupError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{wallet}})
}

type updateBalanceRequest struct {
	Balance string `json:"balance" binding:"required"`
}

// UpdateBalance handles http request to set a wallet's balance.
func (h *Handler) UpdateBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	var req updateBalanceRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	wallet, err := h.service.UpdateBalance(ctx, uri.ID, req.Balance)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWalletNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		case errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrNegativeBalance):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{wallet}})
}

// Delete handles http request to delete a wallet without transactions.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	if err := h.service.Delete(ctx, req.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrWalletNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		case errors.Is(err, domain.ErrWalletHasTransactions):
			gctx.JSON(http.StatusConflict, web.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.Status(http.StatusNoContent)
}

func respondLookupError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrWalletNotFound), errors.Is(err, domain.ErrUserNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
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
